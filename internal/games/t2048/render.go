package t2048

import (
	"fmt"
	"strconv"

	"github.com/vovakirdan/tui-2048/internal/core"
)

const (
	cellWidth  = 7 // Width of each cell (including left border), fits 6 digits
	cellHeight = 2 // Height of each cell (including top border)
	hudHeight  = 3

	boardW = BoardSize*cellWidth + 1  // +1 for right border
	boardH = BoardSize*cellHeight + 1 // +1 for bottom border

	minScreenW = boardW + 2
	minScreenH = hudHeight + 1 + boardH + 2
)

// tileColors maps tile values to their color, ramping up with the value.
var tileColors = map[int]core.Color{
	2:    core.ColorGray,
	4:    core.ColorBlue,
	8:    core.ColorBrightBlue,
	16:   core.ColorIndigo,
	32:   core.ColorBrightIndigo,
	64:   core.ColorViolet,
	128:  core.ColorBrightViolet,
	256:  core.ColorPurple,
	512:  core.ColorBrightPurple,
	1024: core.ColorFuchsia,
	2048: core.ColorBrightFuchsia,
	4096: core.ColorPink,
	8192: core.ColorBrightPink,
}

// TileColor returns the color for a tile value.
func TileColor(value int) core.Color {
	if c, ok := tileColors[value]; ok {
		return c
	}
	if value > 8192 {
		return core.ColorBrightRed
	}
	return core.ColorDefault
}

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	boardX := (g.screenW - boardW) / 2
	boardY := hudHeight + 1

	g.renderHUD(dst, boardX)
	g.renderBoard(dst, boardX, boardY)
	g.renderOverlays(dst, boardX, boardY)
}

// renderTooSmall shows a "window too small" message, shortened to fit
// narrow windows.
func (g *Game) renderTooSmall(dst *core.Screen) {
	msg := "Window too small"
	if dst.Width() < len(msg) {
		msg = "Too small"
	}
	y := max(dst.Height()/2-1, 0)
	dst.DrawTextCentered(y, msg)
	dst.DrawTextCentered(y+1, fmt.Sprintf("Need %dx%d", minScreenW, minScreenH))
}

// renderHUD draws the title, score and best score.
func (g *Game) renderHUD(dst *core.Screen, boardX int) {
	title := g.title
	titleX := boardX + (boardW-len(title))/2
	dst.DrawText(titleX, 0, title)

	scoreStr := fmt.Sprintf("Score: %d", g.session.Score())
	dst.DrawText(boardX, 1, scoreStr)

	bestStr := fmt.Sprintf("Best: %d", g.session.HighScore())
	bestX := max(boardX+boardW-len(bestStr), boardX)
	dst.DrawText(bestX, 1, bestStr)

	infoStr := fmt.Sprintf("Moves: %d  Max: %d", g.session.Moves(), MaxTile(g.session.Board()))
	infoX := boardX + (boardW-len(infoStr))/2
	dst.DrawTextColored(infoX, 2, infoStr, core.ColorGray)
}

// renderBoard draws the 4x4 grid with tiles.
func (g *Game) renderBoard(dst *core.Screen, boardX, boardY int) {
	for y := range BoardSize + 1 {
		for x := range BoardSize + 1 {
			px := boardX + x*cellWidth
			py := boardY + y*cellHeight

			var corner rune
			switch {
			case y == 0 && x == 0:
				corner = '┌'
			case y == 0 && x == BoardSize:
				corner = '┐'
			case y == BoardSize && x == 0:
				corner = '└'
			case y == BoardSize && x == BoardSize:
				corner = '┘'
			case y == 0:
				corner = '┬'
			case y == BoardSize:
				corner = '┴'
			case x == 0:
				corner = '├'
			case x == BoardSize:
				corner = '┤'
			default:
				corner = '┼'
			}
			dst.Set(px, py, corner)

			if x < BoardSize {
				dst.DrawHLine(px+1, py, cellWidth-1, '─')
			}
			if y < BoardSize {
				dst.DrawVLine(px, py+1, cellHeight-1, '│')
			}
		}
	}

	board := g.session.Board()
	for y := range BoardSize {
		for x := range BoardSize {
			val := board.At(x, y)
			if val == 0 {
				continue
			}

			cellX := boardX + x*cellWidth + 1
			cellY := boardY + y*cellHeight + 1

			valStr := strconv.Itoa(val)
			padLeft := max((cellWidth-1-len(valStr))/2, 0)

			color := TileColor(val)
			if g.justSpawned(Cell{X: x, Y: y}) {
				color = core.ColorYellow
			}
			dst.DrawTextColored(cellX+padLeft, cellY, valStr, color)
		}
	}
}

// justSpawned reports whether c was filled by the last move.
func (g *Game) justSpawned(c Cell) bool {
	for _, s := range g.lastSpawn {
		if s == c {
			return true
		}
	}
	return false
}

// renderOverlays draws game state overlays.
func (g *Game) renderOverlays(dst *core.Screen, boardX, boardY int) {
	centerX := boardX + boardW/2
	centerY := boardY + boardH/2

	if g.paused {
		g.drawOverlay(dst, centerX, centerY, "PAUSED", "Press P to resume")
		return
	}

	if g.session.Won() {
		tileStr := fmt.Sprintf("%d reached!", g.session.Rules().WinTile)
		g.drawOverlay(dst, centerX, centerY, "YOU WIN!", tileStr, "Press R to restart")
		return
	}

	if g.session.Stuck() {
		maxStr := fmt.Sprintf("Max tile: %d", MaxTile(g.session.Board()))
		g.drawOverlay(dst, centerX, centerY, "NO MOVES LEFT", maxStr, "Press R to restart")
	}
}

// drawOverlay draws a centered text overlay.
func (g *Game) drawOverlay(dst *core.Screen, centerX, centerY int, lines ...string) {
	maxLen := 0
	for _, line := range lines {
		maxLen = max(maxLen, len(line))
	}

	boxW := maxLen + 4
	boxH := len(lines) + 2
	boxX := centerX - boxW/2
	boxY := centerY - boxH/2

	dst.DrawRect(core.Rect{X: boxX, Y: boxY, W: boxW, H: boxH}, ' ')
	dst.DrawBox(core.Rect{X: boxX, Y: boxY, W: boxW, H: boxH})

	for i, line := range lines {
		x := centerX - len(line)/2
		dst.DrawText(x, boxY+1+i, line)
	}
}

// Controls returns the control hints for the game.
func (g *Game) Controls() string {
	return "Arrows/WASD/hjkl or drag: Move | P: Pause | R: Restart | Q: Quit"
}
