// Package modes holds the catalog of playable runner modes. A mode is a
// declarative bundle of physics and spawn tuning plus an ability tag; the
// engine never branches on mode identity, only on the data carried here.
package modes

import "github.com/vovakirdan/tui-runner/internal/core"

// Ability is a mode-specific special movement rule.
type Ability int

const (
	AbilityNone       Ability = iota
	AbilityDoubleJump         // One extra mid-air jump
	AbilityGlide              // Reduced gravity while jump is held
	AbilityPhase              // Slimmer hitbox via symmetric inset
	AbilityChill              // Slower world scroll
)

// String returns a human-readable name for the ability.
func (a Ability) String() string {
	switch a {
	case AbilityNone:
		return "None"
	case AbilityDoubleJump:
		return "DoubleJump"
	case AbilityGlide:
		return "Glide"
	case AbilityPhase:
		return "Phase"
	case AbilityChill:
		return "Chill"
	default:
		return "Unknown"
	}
}

// Motion selects the vertical motion model for a mode. The models are
// mutually exclusive; a mode runs exactly one of them.
type Motion int

const (
	// MotionRun is the default gravity/jump model: gravity pulls the player
	// to the ground, jump applies an upward impulse.
	MotionRun Motion = iota

	// MotionFlip moves the player between floor and ceiling under a binary
	// gravity-direction flag toggled by the jump command.
	MotionFlip
)

// String returns a human-readable name for the motion model.
func (m Motion) String() string {
	switch m {
	case MotionRun:
		return "Run"
	case MotionFlip:
		return "Flip"
	default:
		return "Unknown"
	}
}

// Physics holds the per-frame motion tuning for a mode. Values are in world
// cells per reference frame (60Hz), so they are tick-rate independent.
type Physics struct {
	Gravity      float64 `yaml:"gravity"`        // Downward acceleration per frame
	JumpImpulse  float64 `yaml:"jump_impulse"`   // Upward velocity applied on jump (positive = up)
	MaxFallSpeed float64 `yaml:"max_fall_speed"` // Terminal velocity
	BaseSpeed    float64 `yaml:"base_speed"`     // World scroll speed per frame
	SpeedScale   float64 `yaml:"speed_scale"`    // Mode modifier on scroll speed (chill < 1)
	RampRate     float64 `yaml:"ramp_rate"`      // Ramp multiplier growth per second of play
	RampCap      float64 `yaml:"ramp_cap"`       // Ceiling for the ramp multiplier
	GlideFactor  float64 `yaml:"glide_factor"`   // Gravity multiplier while gliding
	HitboxInset  float64 `yaml:"hitbox_inset"`   // Symmetric hitbox shrink (phase)
	MaxJumps     int     `yaml:"max_jumps"`      // Jumps allowed before touching ground again
}

// Spawn holds the obstacle spawn tuning for a mode. Intervals are in
// milliseconds, sizes in world cells.
type Spawn struct {
	MinIntervalMs   float64 `yaml:"min_interval_ms"`
	MaxIntervalMs   float64 `yaml:"max_interval_ms"`
	MinWidth        float64 `yaml:"min_width"`
	MaxWidth        float64 `yaml:"max_width"`
	MinHeight       float64 `yaml:"min_height"`
	MaxHeight       float64 `yaml:"max_height"`
	MinSpeed        float64 `yaml:"min_speed"` // Extra per-obstacle drift, added to scroll
	MaxSpeed        float64 `yaml:"max_speed"`
	BurstChance     float64 `yaml:"burst_chance"`      // Probability a spawn becomes a cluster
	BurstMax        int     `yaml:"burst_max"`         // Upper bound on cluster size
	BurstGap        float64 `yaml:"burst_gap"`         // Cells between cluster members
	BurstRecoveryMs float64 `yaml:"burst_recovery_ms"` // Extra delay after a cluster
	DespawnMargin   float64 `yaml:"despawn_margin"`    // Cells past the left edge before removal
}

// Player holds the player shape for a mode, in world cells.
type Player struct {
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	GroundOffset float64 `yaml:"ground_offset"` // Rows reserved below the ground line
}

// Upgrade is an automatic in-run ability change unlocked at a score
// threshold. Crossing the threshold swaps the active ability and starts a
// grace period during which spawning and scoring are suspended so the
// player can adapt. Thresholds must be strictly ascending.
type Upgrade struct {
	AtScore int
	Ability Ability
	Hint    string
	GraceMs float64
}

// Milestone is an advisory hint surfaced once the score crosses its
// threshold. Milestones are visited in order and never revisited.
type Milestone struct {
	AtScore int
	Hint    string
}

// Mode is an immutable configuration record selected from the catalog at
// session start. Fields are read-only during a run; switching mode forces a
// full scene reset.
type Mode struct {
	ID    string
	Name  string
	Hint  string // Default banner text shown on scene reset
	Glyph rune   // Player sprite rune, cosmetic only
	Color core.Color

	Ability Ability
	Motion  Motion

	Physics Physics
	Spawn   Spawn
	Player  Player

	Upgrades   []Upgrade
	Milestones []Milestone
}
