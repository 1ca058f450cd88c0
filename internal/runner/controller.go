package runner

import (
	"errors"
	"time"

	"github.com/vovakirdan/tui-runner/internal/core"
	"github.com/vovakirdan/tui-runner/internal/modes"
)

// ErrModeLocked is returned when a mode switch is requested mid-run.
var ErrModeLocked = errors.New("runner: mode can only be changed outside a run")

// Phase is a state of the game-phase machine.
type Phase int

const (
	PhaseMenu Phase = iota
	PhasePlaying
	PhasePaused
	PhaseGameOver
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseMenu:
		return "Menu"
	case PhasePlaying:
		return "Playing"
	case PhasePaused:
		return "Paused"
	case PhaseGameOver:
		return "GameOver"
	default:
		return "Unknown"
	}
}

// Controller owns the scene lifecycle around the Engine: the
// menu/playing/paused/gameOver state machine, scene resets, the per-mode
// best-score map, and the translation of commands into simulation input.
// All mutation happens inside Tick or a transition method; there is a single
// logical thread of control.
type Controller struct {
	rt     core.RuntimeConfig
	mode   modes.Mode
	engine *Engine
	phase  Phase

	best        map[string]int
	finalScore  int
	pendingJump bool
}

// NewController creates a controller in the menu phase for the given mode.
func NewController(modeID string, rt core.RuntimeConfig) (*Controller, error) {
	mode, err := modes.Get(modeID)
	if err != nil {
		return nil, err
	}

	c := &Controller{
		rt:   rt,
		mode: mode,
		best: make(map[string]int),
	}
	c.engine = NewEngine(mode, rt)
	return c, nil
}

// nextSeed picks the seed for a fresh run. A non-zero configured seed is
// reused for reproducible sessions; otherwise every run gets a new one.
func (c *Controller) nextSeed() int64 {
	if c.rt.Seed != 0 {
		return c.rt.Seed
	}
	return time.Now().UnixNano()
}

// Phase returns the current game phase.
func (c *Controller) Phase() Phase {
	return c.phase
}

// Mode returns the active mode.
func (c *Controller) Mode() modes.Mode {
	return c.mode
}

// Start begins a run from the menu or game-over phase: full scene reset
// with a fresh session. Starting from an active run restarts it.
func (c *Controller) Start() {
	c.engine.Reset(c.nextSeed())
	c.finalScore = 0
	c.pendingJump = false
	c.phase = PhasePlaying
}

// SelectMode atomically switches the active mode and performs a full scene
// reset. Rejected mid-run: mode changes are a menu/game-over decision.
func (c *Controller) SelectMode(id string) error {
	if c.phase == PhasePlaying || c.phase == PhasePaused {
		return ErrModeLocked
	}

	mode, err := modes.Get(id)
	if err != nil {
		return err
	}

	c.mode = mode
	c.engine = NewEngine(mode, c.rt)
	c.finalScore = 0
	c.pendingJump = false
	c.phase = PhaseMenu
	return nil
}

// Resize re-derives the play field bounds and resets the scene so the run
// is never squeezed into an invalid state. An active run restarts.
func (c *Controller) Resize(w, h int) {
	c.rt.ViewW = w
	c.rt.ViewH = h
	c.engine = NewEngine(c.mode, c.rt)

	switch c.phase {
	case PhasePlaying, PhasePaused:
		c.Start()
	}
}

// SeedBest merges stored best scores into the in-process map, keeping the
// maximum per mode. Called once at startup from the persistence layer.
func (c *Controller) SeedBest(stored map[string]int) {
	for id, score := range stored {
		if score > c.best[id] {
			c.best[id] = score
		}
	}
}

// Best returns a copy of the per-mode best-score map.
func (c *Controller) Best() map[string]int {
	out := make(map[string]int, len(c.best))
	for id, score := range c.best {
		out[id] = score
	}
	return out
}

// BestFor returns the best score recorded for a mode, 0 if none.
func (c *Controller) BestFor(modeID string) int {
	return c.best[modeID]
}

// FinalScore returns the floored score of the last finished run.
func (c *Controller) FinalScore() int {
	return c.finalScore
}

// Tick processes one frame: it samples the input set, applies phase
// transitions, and, while playing, advances the simulation by deltaMs.
// No simulation runs while paused or outside a run, so state is frozen
// exactly as of the last completed tick.
func (c *Controller) Tick(in core.InputFrame, deltaMs float64) {
	if in.Has(core.ActionPause) {
		switch c.phase {
		case PhasePlaying:
			c.phase = PhasePaused
			return
		case PhasePaused:
			c.phase = PhasePlaying
			return
		}
	}

	if in.Has(core.ActionRestart) && c.phase == PhaseGameOver {
		c.Start()
		return
	}

	if in.Has(core.ActionJump) {
		switch c.phase {
		case PhaseMenu, PhaseGameOver:
			// Tap to start: the run begins now, the jump itself fires
			// on the immediately following tick.
			c.Start()
			c.pendingJump = true
			return
		}
	}

	if c.phase != PhasePlaying {
		return
	}

	if c.pendingJump {
		in.Press(core.ActionJump)
		c.pendingJump = false
	}

	if c.engine.Advance(in, deltaMs) == OutcomeCollided {
		c.phase = PhaseGameOver
		c.finalScore = c.engine.Score()
		if c.finalScore > c.best[c.mode.ID] {
			c.best[c.mode.ID] = c.finalScore
		}
	}
}
