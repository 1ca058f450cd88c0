package runner

import (
	"fmt"

	"github.com/vovakirdan/tui-runner/internal/core"
	"github.com/vovakirdan/tui-runner/internal/modes"
)

// Visual characters for rendering
const (
	ObstacleChar = '▓'
	GroundChar   = '═'
	CeilingChar  = '─'
	ProgressOn   = '■'
	ProgressOff  = '·'
)

// Render draws the current state into the screen buffer. The buffer is
// cleared first; the platform owns converting it to terminal output.
func (c *Controller) Render(dst *core.Screen) {
	dst.Clear()
	snap := c.Snapshot()

	groundY := int(snap.GroundY)
	dst.DrawHLine(0, groundY, dst.Width(), GroundChar, core.ColorGray)
	if snap.Mode.Motion == modes.MotionFlip {
		dst.DrawHLine(0, 0, dst.Width(), CeilingChar, core.ColorGray)
	}

	for _, o := range snap.Obstacles {
		drawObstacle(dst, o)
	}
	drawPlayer(dst, snap)
	drawHUD(dst, snap)

	switch snap.Phase {
	case PhaseMenu:
		drawCenteredMessage(dst, "TUI RUNNER",
			fmt.Sprintf("%s - %s", snap.Mode.Name, snap.Mode.Hint),
			"Space to start  |  M for modes  |  Q to quit")
	case PhasePaused:
		drawCenteredMessage(dst, "PAUSED", "Press P to resume", "")
	case PhaseGameOver:
		drawCenteredMessage(dst, "GAME OVER",
			fmt.Sprintf("Score: %d   Best: %d", snap.Score, snap.Best),
			"R or Space to run again  |  M for modes")
	}
}

func drawObstacle(dst *core.Screen, o Obstacle) {
	x := int(o.Body.X)
	y := int(o.Body.Y)
	w := core.Max(int(o.Body.W), 1)
	h := core.Max(int(o.Body.H), 1)
	dst.DrawRect(x, y, w, h, ObstacleChar, core.ColorRed)
}

func drawPlayer(dst *core.Screen, snap Snapshot) {
	p := snap.Player
	x := int(p.Body.X)
	y := int(p.Body.Y)
	w := core.Max(int(p.Body.W), 1)
	h := core.Max(int(p.Body.H), 1)

	color := snap.Mode.Color
	if snap.Ability == modes.AbilityPhase {
		color = core.ColorMagenta
	}
	dst.DrawRect(x, y, w, h, snap.Mode.Glyph, color)
}

func drawHUD(dst *core.Screen, snap Snapshot) {
	scoreText := fmt.Sprintf(" Score: %d  Best: %d ", snap.Score, snap.Best)
	dst.DrawText(2, 0, scoreText)

	// Difficulty ramp as a small bar on the right
	const barLen = 10
	filled := int(snap.Progress*barLen + 0.5)
	bar := make([]rune, barLen)
	for i := range bar {
		if i < filled {
			bar[i] = ProgressOn
		} else {
			bar[i] = ProgressOff
		}
	}
	barText := " " + string(bar) + " "
	dst.DrawTextColored(dst.Width()-len(barText)-2, 0, barText, core.ColorYellow)

	if snap.Phase == PhasePlaying && snap.Hint != "" {
		dst.DrawTextCentered(dst.Height()-1, snap.Hint)
	}
	if snap.InGrace {
		dst.DrawTextCentered(1, "* * *")
	}
}

// drawCenteredMessage draws a message box in the center of the screen.
func drawCenteredMessage(dst *core.Screen, title, subtitle, footer string) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Max(core.Max(len(title), len(subtitle)), len(footer)) + 4
	boxH := 5
	if footer != "" {
		boxH = 6
	}
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(boxX, boxY, boxW, boxH, ' ', core.ColorDefault)
	dst.DrawBox(boxX, boxY, boxW, boxH)

	dst.DrawText(boxX+(boxW-len(title))/2, boxY+1, title)
	dst.DrawText(boxX+(boxW-len(subtitle))/2, boxY+3, subtitle)
	if footer != "" {
		dst.DrawText(boxX+(boxW-len(footer))/2, boxY+4, footer)
	}
}
