package t2048

import (
	"fmt"
	"strconv"

	"github.com/kode/tui-arcade/internal/core"
)

const (
	cellWidth  = 7 // Columns per cell including the left border
	cellHeight = 2 // Rows per cell including the top border
	hudHeight  = 3
)

// boardExtent returns the board size in characters, borders included.
func boardExtent(size int) (w, h int) {
	return size*cellWidth + 1, size*cellHeight + 1
}

// tileColors maps tile values to colors; larger tiles fall back to magenta.
var tileColors = map[Cell]core.Color{
	2:    core.ColorWhite,
	4:    core.ColorBrightWhite,
	8:    core.ColorYellow,
	16:   core.ColorOrange,
	32:   core.ColorBrightRed,
	64:   core.ColorRed,
	128:  core.ColorBrightYellow,
	256:  core.ColorBrightGreen,
	512:  core.ColorGreen,
	1024: core.ColorBrightCyan,
	2048: core.ColorBrightBlue,
}

func tileColor(c Cell) core.Color {
	if col, ok := tileColors[c]; ok {
		return col
	}
	return core.ColorBrightMagenta
}

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.engine == nil {
		return
	}
	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	board := g.engine.Board()
	boardW, boardH := boardExtent(board.Size())
	boardX := (g.screenW - boardW) / 2
	boardY := hudHeight + 1

	g.renderHUD(dst, board, boardX, boardW)
	renderBoard(dst, board, boardX, boardY)
	g.renderOverlays(dst, board, boardX+boardW/2, boardY+boardH/2)
}

func (g *Game) renderTooSmall(dst *core.Screen) {
	y := g.screenH / 2
	dst.DrawTextCentered(y, "Window too small")
	dst.DrawTextCentered(y+1, "Please resize terminal")
}

func (g *Game) renderHUD(dst *core.Screen, board Board, boardX, boardW int) {
	title := "2048"
	dst.DrawText(boardX+(boardW-len(title))/2, 0, title)

	dst.DrawText(boardX, 1, fmt.Sprintf("Score: %d", g.engine.Score()))

	maxStr := fmt.Sprintf("Max: %d", board.MaxTile())
	dst.DrawText(max(boardX+boardW-len(maxStr), boardX), 1, maxStr)

	status := "Status: " + g.engine.State().String()
	dst.DrawText(boardX+(boardW-len(status))/2, 2, status)
}

func renderBoard(dst *core.Screen, board Board, boardX, boardY int) {
	n := board.Size()

	for y := range n + 1 {
		for x := range n + 1 {
			px := boardX + x*cellWidth
			py := boardY + y*cellHeight
			dst.Set(px, py, gridJunction(x, y, n))

			if x < n {
				for i := 1; i < cellWidth; i++ {
					dst.Set(px+i, py, '─')
				}
			}
			if y < n {
				for i := 1; i < cellHeight; i++ {
					dst.Set(px, py+i, '│')
				}
			}
		}
	}

	for row := range n {
		for col := range n {
			v := board.At(row, col)
			if v.IsEmpty() {
				continue
			}
			s := strconv.Itoa(int(v))
			pad := max((cellWidth-1-len(s))/2, 0)
			dst.DrawTextColor(boardX+col*cellWidth+1+pad, boardY+row*cellHeight+1, s, tileColor(v))
		}
	}
}

// gridJunction picks the box-drawing rune for grid intersection (x, y).
func gridJunction(x, y, n int) rune {
	switch {
	case y == 0 && x == 0:
		return '┌'
	case y == 0 && x == n:
		return '┐'
	case y == n && x == 0:
		return '└'
	case y == n && x == n:
		return '┘'
	case y == 0:
		return '┬'
	case y == n:
		return '┴'
	case x == 0:
		return '├'
	case x == n:
		return '┤'
	default:
		return '┼'
	}
}

func (g *Game) renderOverlays(dst *core.Screen, board Board, centerX, centerY int) {
	switch g.engine.State() {
	case StateNotStarted:
		drawOverlay(dst, centerX, centerY, "2048", "Press Space to start")
	case StateFinished:
		drawOverlay(dst, centerX, centerY,
			"GAME OVER",
			fmt.Sprintf("Max tile: %d", board.MaxTile()),
			"Space: new game")
	}
}

// drawOverlay draws a boxed block of centered lines.
func drawOverlay(dst *core.Screen, centerX, centerY int, lines ...string) {
	maxLen := 0
	for _, line := range lines {
		maxLen = max(maxLen, len(line))
	}

	box := core.Rect{W: maxLen + 4, H: len(lines) + 2}
	box.X = centerX - box.W/2
	box.Y = centerY - box.H/2

	dst.FillRect(box, ' ')
	dst.DrawBox(box)
	for i, line := range lines {
		dst.DrawText(centerX-len(line)/2, box.Y+1+i, line)
	}
}

// Controls returns the control hints for the game.
func (g *Game) Controls() string {
	return "Arrows/WASD: Move | Space: Start/Give up/Reset | Q: Quit"
}
