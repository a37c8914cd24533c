package tetris

import (
	"github.com/gammazero/deque"

	"github.com/kode/tui-arcade/internal/core"
)

// Factory deals tetrominoes chosen uniformly among the seven shapes and keeps
// a queue of upcoming pieces for the preview panel.
type Factory struct {
	rng      core.Rand
	upcoming deque.Deque[Tetromino]
	preview  int
}

// NewFactory creates a factory that keeps preview pieces queued ahead.
func NewFactory(rng core.Rand, preview int) *Factory {
	f := &Factory{
		rng:     rng,
		preview: max(preview, 0),
	}
	f.fill()
	return f
}

func (f *Factory) random() Tetromino {
	return NewTetromino(Shape(f.rng.Intn(shapeCount)))
}

func (f *Factory) fill() {
	for f.upcoming.Len() < f.preview {
		f.upcoming.PushBack(f.random())
	}
}

// Next returns the next piece and tops the preview queue back up.
func (f *Factory) Next() Tetromino {
	if f.upcoming.Len() == 0 {
		return f.random()
	}
	t := f.upcoming.PopFront()
	f.fill()
	return t
}

// Preview returns the queued pieces, soonest first.
func (f *Factory) Preview() []Tetromino {
	out := make([]Tetromino, f.upcoming.Len())
	for i := range out {
		out[i] = f.upcoming.At(i)
	}
	return out
}
