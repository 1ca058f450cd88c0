package runner

import "github.com/vovakirdan/tui-runner/internal/modes"

// Snapshot is the read-only view handed to the presentation layer every
// tick. Consumers never mutate core state through it.
type Snapshot struct {
	Phase   Phase
	Mode    modes.Mode
	Ability modes.Ability // Active ability, after any in-run upgrades

	Player    Player
	Obstacles []Obstacle // Spawn order; reused between ticks, do not retain
	GroundY   float64

	Score    int
	Best     int // Best score for the active mode
	Progress float64
	Hint     string
	InGrace  bool
}

// Snapshot captures the current state for rendering and score display.
func (c *Controller) Snapshot() Snapshot {
	return Snapshot{
		Phase:     c.phase,
		Mode:      c.mode,
		Ability:   c.engine.Ability(),
		Player:    c.engine.Player(),
		Obstacles: c.engine.Obstacles(),
		GroundY:   c.engine.GroundY(),
		Score:     c.engine.Score(),
		Best:      c.best[c.mode.ID],
		Progress:  c.engine.Progress(),
		Hint:      c.engine.Hint(),
		InGrace:   c.engine.InGrace(),
	}
}
