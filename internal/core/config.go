package core

// RuntimeConfig contains configuration passed to the game at initialization.
// The game uses it to derive the play field bounds and for deterministic
// simulation under a fixed seed.
type RuntimeConfig struct {
	ViewW    int   // Play field width in cells
	ViewH    int   // Play field height in cells
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed, 0 means the platform picks one from the clock
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ViewW:    80,
		ViewH:    24,
		TickRate: 60,
		Seed:     0,
	}
}

// Timing constants shared by the simulation and the platform tick loop.
const (
	// MaxDeltaMs bounds the worst-case integration step after a stall
	// (tab suspend, slow frame). Larger deltas are clamped to this.
	MaxDeltaMs = 32.0

	// RefFrameMs is the nominal frame duration used to normalize physics,
	// so tuning values mean "per 60Hz frame" regardless of real tick rate.
	RefFrameMs = 1000.0 / 60.0
)
