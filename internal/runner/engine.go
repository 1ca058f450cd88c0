package runner

import (
	"math/rand"

	"github.com/vovakirdan/tui-runner/internal/core"
	"github.com/vovakirdan/tui-runner/internal/modes"
)

// Outcome reports the result of one simulation tick.
type Outcome int

const (
	OutcomeContinue Outcome = iota
	OutcomeCollided         // Terminal for this run
)

const (
	// playerXFrac places the player at a fixed fraction of the view width.
	playerXFrac = 0.125

	// scoreCoeff converts elapsed milliseconds into score, scaled by the
	// mode's base speed and the ramp so score rate tracks difficulty.
	scoreCoeff = 0.06
)

// Engine advances one run of the game: kinematics, spawning, collision,
// score and progression. It owns the session state exclusively and performs
// no I/O; determinism under a fixed seed is part of the contract.
type Engine struct {
	mode         modes.Mode
	viewW, viewH float64
	groundY      float64
	rng          *rand.Rand

	player Player
	pool   obstaclePool

	elapsedMs    float64
	score        float64
	ramp         float64
	spawnTimerMs float64
	graceMs      float64
	milestoneIdx int
	upgradeIdx   int
	ability      modes.Ability
	hint         string
}

// NewEngine creates an engine for the given mode and play field, ready to run.
func NewEngine(mode modes.Mode, rt core.RuntimeConfig) *Engine {
	e := &Engine{
		mode:  mode,
		viewW: float64(rt.ViewW),
		viewH: float64(rt.ViewH),
	}
	e.Reset(rt.Seed)
	return e
}

// Reset prepares a fresh session: player back on the floor at its fixed
// offset, obstacle sequence and id counter cleared, score and timers zeroed,
// first spawn delay re-rolled, default hint restored.
func (e *Engine) Reset(seed int64) {
	e.rng = rand.New(rand.NewSource(seed))
	e.groundY = e.viewH - e.mode.Player.GroundOffset

	ph := e.mode.Player
	e.player = Player{
		Body:        core.NewRect(e.viewW*playerXFrac, e.groundY-ph.Height, ph.Width, ph.Height),
		GravityDown: true,
	}

	e.pool.reset()
	e.elapsedMs = 0
	e.score = 0
	e.ramp = 1
	e.graceMs = 0
	e.milestoneIdx = 0
	e.upgradeIdx = 0
	e.ability = e.mode.Ability
	e.hint = e.mode.Hint
	e.spawnTimerMs = e.uniform(e.mode.Spawn.MinIntervalMs, e.mode.Spawn.MaxIntervalMs)
}

// Advance runs one fixed tick. deltaMs is clamped to MaxDeltaMs so a stalled
// frame can never tunnel the player through an obstacle. Returns
// OutcomeCollided when the run ends; the engine state then freezes at the
// tick of impact.
func (e *Engine) Advance(in core.InputFrame, deltaMs float64) Outcome {
	delta := core.ClampF(deltaMs, 0, core.MaxDeltaMs)
	frames := delta / core.RefFrameMs
	e.elapsedMs += delta

	// Vertical motion, one model per mode
	switch e.mode.Motion {
	case modes.MotionFlip:
		e.stepFlip(in, frames)
	default:
		e.stepRun(in, frames)
	}

	// Difficulty ramp grows with play time, capped
	phys := e.mode.Physics
	e.ramp = core.ClampF(1+phys.RampRate*(e.elapsedMs/1000), 1, phys.RampCap)

	// Scroll the world and drop obstacles past the left margin
	scroll := phys.BaseSpeed * phys.SpeedScale * e.ramp * frames
	e.pool.advance(scroll, frames)
	e.pool.compact(e.mode.Spawn.DespawnMargin)

	// Spawning and scoring are suspended during a grace period
	inGrace := e.graceMs > 0
	if inGrace {
		e.graceMs -= delta
		if e.graceMs < 0 {
			e.graceMs = 0
		}
	} else {
		e.spawnTimerMs -= delta
		if e.spawnTimerMs <= 0 {
			e.spawnWave()
		}
	}

	// Any hit ends the run immediately
	hitbox := e.player.Body
	if e.ability == modes.AbilityPhase {
		hitbox = hitbox.Inset(phys.HitboxInset)
	}
	for _, o := range e.pool.live() {
		if hitbox.Intersects(o.Body) {
			return OutcomeCollided
		}
	}

	if !inGrace {
		e.score += delta * scoreCoeff * phys.BaseSpeed * e.ramp
	}

	e.applyMilestones()
	e.applyUpgrades()

	return OutcomeContinue
}

// stepRun integrates the default gravity/jump model.
func (e *Engine) stepRun(in core.InputFrame, frames float64) {
	p := &e.player
	phys := e.mode.Physics

	if in.Has(core.ActionJump) && p.JumpsUsed < phys.MaxJumps {
		p.VelY = -phys.JumpImpulse
		p.JumpsUsed++
	}

	gravity := phys.Gravity
	if e.ability == modes.AbilityGlide && in.IsHeld(core.ActionJump) && p.VelY > 0 {
		gravity *= phys.GlideFactor
	}

	p.VelY += gravity * frames
	if p.VelY > phys.MaxFallSpeed {
		p.VelY = phys.MaxFallSpeed
	}
	p.Body.Y += p.VelY * frames

	floor := e.groundY - p.Body.H
	if p.Body.Y >= floor {
		p.Body.Y = floor
		p.VelY = 0
		p.JumpsUsed = 0 // Ground contact re-arms the jump ability
	}
	if p.Body.Y < 0 {
		p.Body.Y = 0
		p.VelY = 0
	}
}

// stepFlip integrates the alternate motion model: gravity points at the
// floor or the ceiling under a binary flag, toggled by the jump command.
func (e *Engine) stepFlip(in core.InputFrame, frames float64) {
	p := &e.player
	phys := e.mode.Physics

	if in.Has(core.ActionJump) {
		p.GravityDown = !p.GravityDown
	}

	gravity := phys.Gravity
	if !p.GravityDown {
		gravity = -gravity
	}
	p.VelY += gravity * frames
	p.VelY = core.ClampF(p.VelY, -phys.MaxFallSpeed, phys.MaxFallSpeed)
	p.Body.Y += p.VelY * frames

	floor := e.groundY - p.Body.H
	if p.Body.Y >= floor {
		p.Body.Y = floor
		p.VelY = 0
	}
	if p.Body.Y <= 0 {
		p.Body.Y = 0
		p.VelY = 0
	}
}

// spawnWave generates one obstacle, or a short cluster, just beyond the
// right edge, then re-rolls the countdown timer from the mode's interval
// range (plus recovery delay after a cluster).
func (e *Engine) spawnWave() {
	s := e.mode.Spawn

	count := 1
	burst := false
	if s.BurstChance > 0 && e.rng.Float64() < s.BurstChance {
		count = 2 + e.rng.Intn(s.BurstMax-1)
		burst = true
	}

	x := e.viewW + 1
	for i := 0; i < count; i++ {
		w := e.uniform(s.MinWidth, s.MaxWidth)
		h := e.uniform(s.MinHeight, s.MaxHeight)
		speed := e.uniform(s.MinSpeed, s.MaxSpeed)

		onCeiling := e.mode.Motion == modes.MotionFlip && e.rng.Intn(2) == 1
		y := e.groundY - h
		if onCeiling {
			y = 0
		}

		e.pool.spawn(core.NewRect(x, y, w, h), speed, onCeiling)
		x += w + s.BurstGap
	}

	e.spawnTimerMs = e.uniform(s.MinIntervalMs, s.MaxIntervalMs)
	if burst {
		e.spawnTimerMs += s.BurstRecoveryMs
	}
}

// applyMilestones advances the strictly increasing milestone pointer,
// surfacing each hint exactly once.
func (e *Engine) applyMilestones() {
	ms := e.mode.Milestones
	sc := e.Score()
	for e.milestoneIdx < len(ms) && sc >= ms[e.milestoneIdx].AtScore {
		e.hint = ms[e.milestoneIdx].Hint
		e.milestoneIdx++
	}
}

// applyUpgrades swaps the active ability when a stage threshold is crossed
// and starts the stage's grace period so the player can adapt.
func (e *Engine) applyUpgrades() {
	ups := e.mode.Upgrades
	sc := e.Score()
	for e.upgradeIdx < len(ups) && sc >= ups[e.upgradeIdx].AtScore {
		u := ups[e.upgradeIdx]
		e.ability = u.Ability
		if u.Hint != "" {
			e.hint = u.Hint
		}
		e.graceMs = u.GraceMs
		e.upgradeIdx++
	}
}

func (e *Engine) uniform(min, max float64) float64 {
	if max <= min {
		return min
	}
	return min + e.rng.Float64()*(max-min)
}

// Score returns the displayed score, the floor of the accumulated value.
func (e *Engine) Score() int {
	return int(e.score)
}

// Progress returns the difficulty ramp as a normalized value in [0,1].
func (e *Engine) Progress() float64 {
	rampCap := e.mode.Physics.RampCap
	if rampCap <= 1 {
		return 0
	}
	return (e.ramp - 1) / (rampCap - 1)
}

// Hint returns the current advisory banner text.
func (e *Engine) Hint() string {
	return e.hint
}

// Ability returns the currently active ability, which upgrade stages may
// have changed since the run started.
func (e *Engine) Ability() modes.Ability {
	return e.ability
}

// InGrace reports whether a post-upgrade grace period is active.
func (e *Engine) InGrace() bool {
	return e.graceMs > 0
}

// Player returns the current player state.
func (e *Engine) Player() Player {
	return e.player
}

// Obstacles returns the live obstacle sequence in spawn order. The slice is
// reused between ticks; callers must not retain or mutate it.
func (e *Engine) Obstacles() []Obstacle {
	return e.pool.live()
}

// GroundY returns the y-coordinate of the ground line.
func (e *Engine) GroundY() float64 {
	return e.groundY
}
