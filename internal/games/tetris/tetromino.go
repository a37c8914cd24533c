// Package tetris implements falling-block Tetris: an occupancy grid that
// validates, merges and clears rows, an immutable tetromino value type, a
// lifecycle-gated engine, and the arcade adapter that drives gravity.
package tetris

import "github.com/kode/tui-arcade/internal/core"

// Shape identifies one of the seven tetrominoes.
type Shape int

const (
	ShapeLine Shape = iota
	ShapeBox
	ShapeT
	ShapeS
	ShapeZ
	ShapeJ
	ShapeL

	shapeCount = 7
)

// String returns the shape's letter.
func (s Shape) String() string {
	switch s {
	case ShapeLine:
		return "I"
	case ShapeBox:
		return "O"
	case ShapeT:
		return "T"
	case ShapeS:
		return "S"
	case ShapeZ:
		return "Z"
	case ShapeJ:
		return "J"
	case ShapeL:
		return "L"
	default:
		return "?"
	}
}

var shapeOffsets = [shapeCount][4]core.Point{
	ShapeLine: {{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 0}, {X: 3, Y: 0}},
	ShapeBox:  {{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: 1}, {X: 1, Y: 1}},
	ShapeT:    {{X: 1, Y: 0}, {X: 0, Y: 1}, {X: 1, Y: 1}, {X: 2, Y: 1}},
	ShapeS:    {{X: 1, Y: 0}, {X: 2, Y: 0}, {X: 0, Y: 1}, {X: 1, Y: 1}},
	ShapeZ:    {{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 2, Y: 1}},
	ShapeJ:    {{X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 2}, {X: 1, Y: 2}},
	ShapeL:    {{X: 0, Y: 0}, {X: 0, Y: 1}, {X: 0, Y: 2}, {X: 1, Y: 2}},
}

var shapeColors = [shapeCount]core.Color{
	ShapeLine: core.ColorBrightCyan,
	ShapeBox:  core.ColorBrightYellow,
	ShapeT:    core.ColorMagenta,
	ShapeS:    core.ColorBrightGreen,
	ShapeZ:    core.ColorBrightRed,
	ShapeJ:    core.ColorBrightBlue,
	ShapeL:    core.ColorOrange,
}

// Tetromino is an immutable piece: four cell offsets relative to an anchor
// held by whoever places the piece.
type Tetromino struct {
	shape   Shape
	offsets [4]core.Point
}

// NewTetromino returns the piece for shape s in its spawn orientation.
func NewTetromino(s Shape) Tetromino {
	if s < 0 || s >= shapeCount {
		s = ShapeLine
	}
	return Tetromino{shape: s, offsets: shapeOffsets[s]}
}

// Shape returns the piece's shape.
func (t Tetromino) Shape() Shape {
	return t.shape
}

// Color returns the display color for the piece.
func (t Tetromino) Color() core.Color {
	return shapeColors[t.shape]
}

// Offsets returns the relative cell offsets.
func (t Tetromino) Offsets() [4]core.Point {
	return t.offsets
}

// Cells returns the absolute cells of the piece anchored at (x, y).
func (t Tetromino) Cells(x, y int) [4]core.Point {
	var out [4]core.Point
	anchor := core.Point{X: x, Y: y}
	for i, o := range t.offsets {
		out[i] = anchor.Add(o)
	}
	return out
}

// Toggle returns the piece with every offset's x and y swapped.
// Toggling twice yields the original piece.
func (t Tetromino) Toggle() Tetromino {
	next := t
	for i, o := range t.offsets {
		next.offsets[i] = core.Point{X: o.Y, Y: o.X}
	}
	return next
}

// Size returns the width and height of the piece's bounding box.
func (t Tetromino) Size() (w, h int) {
	for _, o := range t.offsets {
		w = max(w, o.X+1)
		h = max(h, o.Y+1)
	}
	return w, h
}
