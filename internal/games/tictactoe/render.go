package tictactoe

import (
	"fmt"

	"github.com/kode/tui-arcade/internal/core"
)

const (
	cellW     = 5
	boardW    = 3*cellW + 4
	boardH    = 7
	hudHeight = 4
)

var markColors = map[Mark]core.Color{
	MarkX: core.ColorBrightCyan,
	MarkO: core.ColorBrightYellow,
}

// Render draws the board, the cursor and the session tallies.
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

	dst.DrawTextCentered(0, "TIC-TAC-TOE")
	dst.DrawTextCentered(1, fmt.Sprintf("X: %d  O: %d  Draws: %d", g.xWins, g.oWins, g.draws))
	dst.DrawTextCentered(2, g.statusLine())

	originX := (g.screenW - boardW) / 2
	originY := hudHeight
	dst.DrawBox(core.Rect{X: originX, Y: originY, W: boardW, H: boardH})

	board := g.engine.Board()
	for i, m := range board {
		row, col := i/3, i%3
		x := originX + 1 + col*(cellW+1)
		y := originY + 1 + row*2

		if col > 0 {
			dst.Set(x-1, y, '│')
		}
		if row > 0 {
			for dx := range cellW {
				dst.Set(x+dx, y-1, '─')
			}
			if col > 0 {
				dst.Set(x-1, y-1, '┼')
			}
		}

		text := "  " + m.String() + "  "
		if i == g.cursor && !g.engine.Finished() {
			text = " [" + m.String() + "] "
		}
		dst.DrawTextColor(x, y, text, markColors[m])
	}
}

func (g *Game) statusLine() string {
	switch g.engine.State() {
	case StateXWon:
		return "X wins! Enter for a new round"
	case StateOWon:
		return "O wins! Enter for a new round"
	case StateDraw:
		return "Draw. Enter for a new round"
	default:
		return g.engine.Current().String() + " to move"
	}
}

// Controls returns the control hints for the game.
func (g *Game) Controls() string {
	return "Arrows/WASD: Select | Enter/Space: Place | Q: Quit"
}
