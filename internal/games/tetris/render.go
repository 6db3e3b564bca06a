package tetris

import (
	"fmt"

	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/games/tetris/engine"
)

const (
	cellWidth = 2 // screen columns per board cell
	wellW     = engine.Width*cellWidth + 2
	wellH     = engine.Height + 2
	hudGap    = 2
	hudW      = 16

	// MinScreenW and MinScreenH are the smallest screen the game draws on.
	MinScreenW = wellW + hudGap + hudW
	MinScreenH = wellH
)

// Render draws the session snapshot.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.session == nil {
		return
	}

	if g.screenW < MinScreenW || g.screenH < MinScreenH {
		g.renderTooSmall(dst)
		return
	}

	snap := g.session.Snapshot()

	wellX := (g.screenW - MinScreenW) / 2
	wellY := (g.screenH - wellH) / 2

	g.renderWell(dst, snap, wellX, wellY)
	g.renderHUD(dst, snap, wellX+wellW+hudGap, wellY)
	g.renderOverlays(dst, snap, wellX+wellW/2, wellY+wellH/2)
}

// renderTooSmall shows a "window too small" message.
func (g *Game) renderTooSmall(dst *core.Screen) {
	y := g.screenH / 2
	dst.DrawTextCentered(y, "Window too small")
	dst.DrawTextCentered(y+1, fmt.Sprintf("Need %dx%d", MinScreenW, MinScreenH))
}

// renderWell draws the border and every board cell, two columns per cell.
func (g *Game) renderWell(dst *core.Screen, snap engine.Snapshot, x0, y0 int) {
	dst.DrawBox(core.NewRect(x0, y0, wellW, wellH), core.ColorGray)

	// Clearing rows blink while they wait for the collapse.
	flash := (g.tick/8)%2 == 0

	for y := range engine.Height {
		for x := range engine.Width {
			cell := snap.Board[y][x]
			px := x0 + 1 + x*cellWidth
			py := y0 + 1 + y

			switch {
			case cell.State == engine.LifecycleClearing:
				color := engine.Definition(cell.Label).Color
				if flash {
					color = color.Bright()
				}
				dst.SetColored(px, py, '▓', color)
				dst.SetColored(px+1, py, '▓', color)
			case cell.Occupied():
				color := engine.Definition(cell.Label).Color
				dst.SetColored(px, py, '[', color)
				dst.SetColored(px+1, py, ']', color)
			default:
				dst.SetColored(px+1, py, '·', core.ColorGray)
			}
		}
	}
}

// renderHUD draws the score panel to the right of the well.
func (g *Game) renderHUD(dst *core.Screen, snap engine.Snapshot, x, y int) {
	dst.DrawTextColored(x, y, "TETRIS", core.ColorBrightCyan)

	lines := []struct {
		label string
		value string
	}{
		{"Score", fmt.Sprintf("%d", snap.Score)},
		{"Rows", fmt.Sprintf("%d", snap.Rows)},
		{"Level", fmt.Sprintf("%d", snap.Level)},
		{"Time", formatElapsed(snap)},
	}
	for i, line := range lines {
		dst.DrawTextColored(x, y+2+i*2, line.label, core.ColorGray)
		dst.DrawText(x, y+3+i*2, line.value)
	}

	status := snap.State.String()
	if snap.CollapsePending {
		status = fmt.Sprintf("clear x%d", snap.LastCleared)
	}
	dst.DrawTextColored(x, y+2+len(lines)*2, status, core.ColorYellow)
}

// formatElapsed renders session time as mm:ss.
func formatElapsed(snap engine.Snapshot) string {
	secs := int(snap.Elapsed.Seconds())
	return fmt.Sprintf("%02d:%02d", secs/60, secs%60)
}

// renderOverlays draws the idle, pause and game-over boxes over the well.
func (g *Game) renderOverlays(dst *core.Screen, snap engine.Snapshot, centerX, centerY int) {
	switch snap.State {
	case engine.StateIdle:
		g.drawOverlay(dst, centerX, centerY, "TETRIS", "Enter to start")
	case engine.StatePaused:
		g.drawOverlay(dst, centerX, centerY, "PAUSED", "P to resume")
	case engine.StateGameOver:
		g.drawOverlay(dst, centerX, centerY, "GAME OVER", fmt.Sprintf("Score %d", snap.Score), "Enter to restart")
	}
}

// drawOverlay draws a centered text box.
func (g *Game) drawOverlay(dst *core.Screen, centerX, centerY int, lines ...string) {
	maxLen := 0
	for _, line := range lines {
		maxLen = core.Max(maxLen, len([]rune(line)))
	}

	boxW := maxLen + 4
	boxH := len(lines) + 2
	box := core.NewRect(centerX-boxW/2, centerY-boxH/2, boxW, boxH)

	dst.DrawRect(box, ' ')
	dst.DrawBox(box, core.ColorWhite)

	for i, line := range lines {
		x := centerX - len([]rune(line))/2
		dst.DrawText(x, box.Y+1+i, line)
	}
}
