package t2048

// Snapshot captures the complete game state for determinism testing.
type Snapshot struct {
	Tick    uint64
	Size    int
	Score   int
	Moves   int
	Board   [][]int
	MaxTile int
	State   State
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	if g.engine == nil {
		return Snapshot{Tick: g.tick, State: StateNotStarted}
	}

	board := g.engine.Board()
	return Snapshot{
		Tick:    g.tick,
		Size:    board.Size(),
		Score:   g.engine.Score(),
		Moves:   g.engine.Moves(),
		Board:   board.Rows(),
		MaxTile: int(g.engine.MaxTile()),
		State:   g.engine.State(),
	}
}
