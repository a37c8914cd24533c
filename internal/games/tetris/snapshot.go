package tetris

// Snapshot captures the complete game state for determinism testing.
type Snapshot struct {
	Tick    uint64
	Score   int
	HiScore int
	Lines   int
	State   State
	Piece   Shape
	X, Y    int
	Grid    [][]bool
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	if g.engine == nil {
		return Snapshot{Tick: g.tick, State: StateNotStarted}
	}

	piece, x, y := g.engine.Piece()
	return Snapshot{
		Tick:    g.tick,
		Score:   g.engine.Score(),
		HiScore: g.engine.HiScore(),
		Lines:   g.engine.Lines(),
		State:   g.engine.State(),
		Piece:   piece.Shape(),
		X:       x,
		Y:       y,
		Grid:    g.engine.Grid().Snapshot(),
	}
}
