package tetris

import (
	"fmt"

	"github.com/kode/tui-arcade/internal/core"
)

const (
	cellW      = 2  // Screen columns per grid cell
	panelWidth = 14 // Side panel with preview and stats
	hudHeight  = 1
)

// layoutSize returns the minimum screen size for the configured grid.
func (g *Game) layoutSize() (w, h int) {
	boardW := g.cfg.Grid.Columns*cellW + 2
	boardH := g.cfg.Grid.Rows + 2
	return boardW + panelWidth, boardH + hudHeight
}

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.engine == nil {
		return
	}
	if g.tooSmall {
		y := g.screenH / 2
		dst.DrawTextCentered(y, "Window too small")
		dst.DrawTextCentered(y+1, "Please resize terminal")
		return
	}

	totalW, _ := g.layoutSize()
	grid := g.engine.Grid()
	board := core.Rect{
		X: (g.screenW - totalW) / 2,
		Y: hudHeight,
		W: grid.Columns()*cellW + 2,
		H: grid.Rows() + 2,
	}

	dst.DrawText(board.X, 0, fmt.Sprintf("TETRIS  Score: %d  Hi: %d", g.engine.Score(), g.engine.HiScore()))
	dst.DrawBox(board)
	g.renderGrid(dst, board)
	g.renderPanel(dst, board.Right()+2, board.Y)
	g.renderOverlay(dst, board)
}

func (g *Game) renderGrid(dst *core.Screen, board core.Rect) {
	grid := g.engine.Grid()
	originX, originY := board.X+1, board.Y+1

	for y := range grid.Rows() {
		for x := range grid.Columns() {
			px := originX + x*cellW
			if grid.Occupied(x, y) {
				dst.SetColor(px, originY+y, '█', core.ColorGray)
				dst.SetColor(px+1, originY+y, '█', core.ColorGray)
			} else {
				dst.SetColor(px+1, originY+y, '·', core.ColorGray)
			}
		}
	}

	if s := g.engine.State(); s == StateNotStarted || s == StateAborted {
		return
	}

	piece, ax, ay := g.engine.Piece()
	for _, c := range piece.Cells(ax, ay) {
		if c.X < 0 || c.X >= grid.Columns() || c.Y < 0 || c.Y >= grid.Rows() {
			continue
		}
		px := originX + c.X*cellW
		dst.SetColor(px, originY+c.Y, '█', piece.Color())
		dst.SetColor(px+1, originY+c.Y, '█', piece.Color())
	}
}

func (g *Game) renderPanel(dst *core.Screen, x, y int) {
	dst.DrawText(x, y, "Next:")
	y += 2

	for _, p := range g.engine.Preview() {
		drawPiece(dst, p, x, y)
		_, h := p.Size()
		y += h + 1
	}

	dst.DrawText(x, y, fmt.Sprintf("Lines: %d", g.engine.Lines()))
	dst.DrawText(x, y+1, g.engine.State().String())
}

func drawPiece(dst *core.Screen, p Tetromino, x, y int) {
	for _, o := range p.Offsets() {
		dst.SetColor(x+o.X*cellW, y+o.Y, '█', p.Color())
		dst.SetColor(x+o.X*cellW+1, y+o.Y, '█', p.Color())
	}
}

func (g *Game) renderOverlay(dst *core.Screen, board core.Rect) {
	var lines []string
	switch g.engine.State() {
	case StateNotStarted:
		lines = []string{"Press Space", "to start"}
	case StatePaused:
		lines = []string{"PAUSED", "P to resume"}
	case StateFinished:
		lines = []string{"GAME OVER", fmt.Sprintf("Score: %d", g.engine.Score()), "Space: reset"}
	case StateAborted:
		lines = []string{"ABORTED", "Space: new game"}
	default:
		return
	}

	maxLen := 0
	for _, l := range lines {
		maxLen = max(maxLen, len(l))
	}
	box := core.Rect{W: maxLen + 4, H: len(lines) + 2}
	box.X = board.X + (board.W-box.W)/2
	box.Y = board.Y + (board.H-box.H)/2

	dst.FillRect(box, ' ')
	dst.DrawBox(box)
	for i, l := range lines {
		dst.DrawText(box.X+(box.W-len(l))/2, box.Y+1+i, l)
	}
}

// Controls returns the control hints for the game.
func (g *Game) Controls() string {
	return "←/→: Move | ↓: Drop | ↑/X: Rotate | Space: Start | P: Pause | Q: Quit"
}
