package tetris

// ScoreObserver receives points awarded when rows are cleared.
type ScoreObserver func(points int)

type scoreListener struct {
	id string
	fn ScoreObserver
}

// Grid is a Columns×Rows board of occupancy bits; row 0 is the top.
type Grid struct {
	cols      int
	rows      int
	cells     [][]bool // [row][col]
	observers []scoreListener
}

// NewGrid creates an empty grid. Dimensions below 4 are raised to 4 so every
// piece fits.
func NewGrid(cols, rows int) *Grid {
	g := &Grid{
		cols: max(cols, 4),
		rows: max(rows, 4),
	}
	g.Reset()
	return g
}

// Columns returns the grid width.
func (g *Grid) Columns() int {
	return g.cols
}

// Rows returns the grid height.
func (g *Grid) Rows() int {
	return g.rows
}

// Reset clears every cell. Observers stay registered.
func (g *Grid) Reset() {
	g.cells = make([][]bool, g.rows)
	for y := range g.cells {
		g.cells[y] = make([]bool, g.cols)
	}
}

func (g *Grid) inBounds(x, y int) bool {
	return x >= 0 && x < g.cols && y >= 0 && y < g.rows
}

// Occupied reports whether (x, y) is filled. Out-of-range cells read as empty.
func (g *Grid) Occupied(x, y int) bool {
	if !g.inBounds(x, y) {
		return false
	}
	return g.cells[y][x]
}

// Validate reports whether every cell of p anchored at (x, y) is in bounds
// and unoccupied.
func (g *Grid) Validate(p Tetromino, x, y int) bool {
	for _, c := range p.Cells(x, y) {
		if !g.inBounds(c.X, c.Y) || g.cells[c.Y][c.X] {
			return false
		}
	}
	return true
}

// Merge marks the cells of p anchored at (x, y) occupied, then compacts.
// Cells outside the grid are skipped.
func (g *Grid) Merge(p Tetromino, x, y int) int {
	for _, c := range p.Cells(x, y) {
		if g.inBounds(c.X, c.Y) {
			g.cells[c.Y][c.X] = true
		}
	}
	return g.Compact()
}

func (g *Grid) rowFull(y int) bool {
	for _, filled := range g.cells[y] {
		if !filled {
			return false
		}
	}
	return true
}

// Compact removes every full row, shifts the rows above down and backfills
// the top with empty rows. Observers receive Columns×removed points. It
// returns the number of rows removed; with none removed nothing is notified.
func (g *Grid) Compact() int {
	kept := make([][]bool, 0, g.rows)
	for y := range g.rows {
		if !g.rowFull(y) {
			kept = append(kept, g.cells[y])
		}
	}

	removed := g.rows - len(kept)
	if removed == 0 {
		return 0
	}

	cells := make([][]bool, 0, g.rows)
	for range removed {
		cells = append(cells, make([]bool, g.cols))
	}
	g.cells = append(cells, kept...)

	points := g.cols * removed
	for _, l := range g.observers {
		l.fn(points)
	}
	return removed
}

// IsFull reports whether the top row has any occupied cell.
func (g *Grid) IsFull() bool {
	for _, filled := range g.cells[0] {
		if filled {
			return true
		}
	}
	return false
}

// AddObserver registers fn under id. Re-adding an id replaces its callback
// and keeps its position.
func (g *Grid) AddObserver(id string, fn ScoreObserver) {
	for i, l := range g.observers {
		if l.id == id {
			g.observers[i].fn = fn
			return
		}
	}
	g.observers = append(g.observers, scoreListener{id: id, fn: fn})
}

// RemoveObserver unregisters id. Unknown ids are ignored.
func (g *Grid) RemoveObserver(id string) {
	for i, l := range g.observers {
		if l.id == id {
			g.observers = append(g.observers[:i], g.observers[i+1:]...)
			return
		}
	}
}

// Snapshot returns a copy of the occupancy bits, indexed [row][col].
func (g *Grid) Snapshot() [][]bool {
	out := make([][]bool, g.rows)
	for y, row := range g.cells {
		out[y] = make([]bool, g.cols)
		copy(out[y], row)
	}
	return out
}
