package t2048

import (
	"github.com/kode/tui-arcade/internal/core"
)

// Direction is a move direction.
type Direction int

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
)

// String returns the direction name.
func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "unknown"
	}
}

// Board is a square grid of cells indexed by (row, col) from 0.
// The size is fixed when the board is created.
type Board struct {
	size  int
	cells []Cell
}

// NewBoard returns an empty size×size board.
func NewBoard(size int) Board {
	size = max(size, 1)
	return Board{
		size:  size,
		cells: make([]Cell, size*size),
	}
}

// BoardFromRows builds a board from a square matrix of values (0 = empty).
// Rows shorter than the first row's length are padded with empties.
func BoardFromRows(rows [][]int) Board {
	b := NewBoard(len(rows))
	for r, row := range rows {
		for c, v := range row {
			b.Set(r, c, Cell(v))
		}
	}
	return b
}

// Size returns the board dimension.
func (b Board) Size() int {
	return b.size
}

func (b Board) inRange(row, col int) bool {
	return row >= 0 && row < b.size && col >= 0 && col < b.size
}

// At returns the cell at (row, col). Out-of-range coordinates read as Empty.
func (b Board) At(row, col int) Cell {
	if !b.inRange(row, col) {
		return Empty
	}
	return b.cells[row*b.size+col]
}

// Set stores a cell at (row, col). Out-of-range coordinates are ignored.
func (b *Board) Set(row, col int, c Cell) {
	if !b.inRange(row, col) {
		return
	}
	b.cells[row*b.size+col] = c
}

// Clone returns an independent copy of the board.
func (b Board) Clone() Board {
	cells := make([]Cell, len(b.cells))
	copy(cells, b.cells)
	return Board{size: b.size, cells: cells}
}

// Equal reports whether both boards have the same size and cells.
func (b Board) Equal(other Board) bool {
	if b.size != other.size {
		return false
	}
	for i := range b.cells {
		if b.cells[i] != other.cells[i] {
			return false
		}
	}
	return true
}

// Rows returns the board as a matrix of ints (0 = empty).
func (b Board) Rows() [][]int {
	rows := make([][]int, b.size)
	for r := range b.size {
		rows[r] = make([]int, b.size)
		for c := range b.size {
			rows[r][c] = int(b.At(r, c))
		}
	}
	return rows
}

// EmptyCells returns the coordinates of all empty cells in row-major order.
// X is the column, Y the row.
func (b Board) EmptyCells() []core.Point {
	var cells []core.Point
	for r := range b.size {
		for c := range b.size {
			if b.At(r, c).IsEmpty() {
				cells = append(cells, core.Point{X: c, Y: r})
			}
		}
	}
	return cells
}

// MaxTile returns the largest value on the board.
func (b Board) MaxTile() Cell {
	best := Empty
	for _, c := range b.cells {
		if c > best {
			best = c
		}
	}
	return best
}

// HasPossibleMerge reports whether two horizontally or vertically adjacent
// cells hold equal tiles.
func (b Board) HasPossibleMerge() bool {
	for r := range b.size {
		for c := range b.size {
			v := b.At(r, c)
			if v.IsEmpty() {
				continue
			}
			if c < b.size-1 && b.At(r, c+1) == v {
				return true
			}
			if r < b.size-1 && b.At(r+1, c) == v {
				return true
			}
		}
	}
	return false
}

// lineCoord maps position k of line i, counted from the wall the tiles slide
// toward, to board coordinates.
func (b Board) lineCoord(dir Direction, i, k int) (row, col int) {
	last := b.size - 1
	switch dir {
	case DirLeft:
		return i, k
	case DirRight:
		return i, last - k
	case DirUp:
		return k, i
	default: // DirDown
		return last - k, i
	}
}

// slide applies the compactor to every line in the given direction.
// It returns the points scored and whether any cell changed.
func (b *Board) slide(dir Direction) (int, bool) {
	points := 0
	changed := false
	line := make([]Cell, b.size)

	for i := range b.size {
		for k := range b.size {
			line[k] = b.At(b.lineCoord(dir, i, k))
		}

		slid, p := slideLine(line)
		points += p

		for k, c := range slid {
			if c != line[k] {
				changed = true
			}
			r, col := b.lineCoord(dir, i, k)
			b.Set(r, col, c)
		}
	}

	return points, changed
}

// Slide returns a copy of the board moved in the given direction, the points
// scored, and whether anything changed. The receiver is not modified.
func (b Board) Slide(dir Direction) (Board, int, bool) {
	next := b.Clone()
	points, changed := next.slide(dir)
	return next, points, changed
}
