package modes

import "github.com/vovakirdan/tui-runner/internal/core"

// The built-in catalog. Numeric tuning can be overridden from YAML at
// startup (see internal/config); identity, abilities and motion models are
// fixed in code.

func defaultSpawn() Spawn {
	return Spawn{
		MinIntervalMs:   1600,
		MaxIntervalMs:   2100,
		MinWidth:        1,
		MaxWidth:        3,
		MinHeight:       2,
		MaxHeight:       4,
		BurstChance:     0,
		BurstMax:        0,
		BurstGap:        3,
		BurstRecoveryMs: 0,
		DespawnMargin:   4,
	}
}

func defaultPhysics() Physics {
	return Physics{
		Gravity:      0.3,
		JumpImpulse:  2.4,
		MaxFallSpeed: 4.0,
		BaseSpeed:    0.5,
		SpeedScale:   1.0,
		RampRate:     0.009,
		RampCap:      1.75,
		GlideFactor:  0,
		HitboxInset:  0,
		MaxJumps:     1,
	}
}

func defaultPlayer() Player {
	return Player{Width: 3, Height: 2, GroundOffset: 2}
}

func init() {
	// Glide factor and hitbox inset stay inert until the matching ability
	// is active, so sprint carries tuning for its upgrade stages.
	sprintPhysics := defaultPhysics()
	sprintPhysics.GlideFactor = 0.5
	sprintPhysics.HitboxInset = 0.5

	sprint := Mode{
		ID:      "sprint",
		Name:    "Sprint",
		Hint:    "Tap to jump. Survive.",
		Glyph:   '▶',
		Color:   core.ColorGreen,
		Ability: AbilityNone,
		Motion:  MotionRun,
		Physics: sprintPhysics,
		Spawn:   defaultSpawn(),
		Player:  defaultPlayer(),
		Upgrades: []Upgrade{
			{AtScore: 400, Ability: AbilityGlide, Hint: "Wings! Hold jump to glide.", GraceMs: 1500},
			{AtScore: 1200, Ability: AbilityPhase, Hint: "Phasing: you run slimmer now.", GraceMs: 1500},
		},
		Milestones: []Milestone{
			{AtScore: 100, Hint: "Warming up."},
			{AtScore: 800, Hint: "The world speeds up with you."},
			{AtScore: 2000, Hint: "Few make it this far."},
		},
	}
	Register(sprint)

	bounder := sprint
	bounder.ID = "bounder"
	bounder.Name = "Bounder"
	bounder.Hint = "Double jump: tap again mid-air."
	bounder.Glyph = '◆'
	bounder.Color = core.ColorYellow
	bounder.Ability = AbilityDoubleJump
	bounder.Physics.MaxJumps = 2
	bounder.Physics.Gravity = 0.34
	bounder.Upgrades = nil
	bounder.Milestones = []Milestone{
		{AtScore: 150, Hint: "Save the second jump for tall ones."},
		{AtScore: 1000, Hint: "Bounding champion."},
	}
	Register(bounder)

	drifter := sprint
	drifter.ID = "drifter"
	drifter.Name = "Drifter"
	drifter.Hint = "Hold jump to glide down slowly."
	drifter.Glyph = '◠'
	drifter.Color = core.ColorCyan
	drifter.Ability = AbilityGlide
	drifter.Physics.GlideFactor = 0.5
	drifter.Physics.JumpImpulse = 2.2
	drifter.Upgrades = nil
	drifter.Milestones = []Milestone{
		{AtScore: 150, Hint: "Glide over the clusters."},
	}
	drifter.Spawn.BurstChance = 0.25
	drifter.Spawn.BurstMax = 3
	drifter.Spawn.BurstRecoveryMs = 700
	Register(drifter)

	phantom := sprint
	phantom.ID = "phantom"
	phantom.Name = "Phantom"
	phantom.Hint = "Slim hitbox: graze, don't touch."
	phantom.Glyph = '◌'
	phantom.Color = core.ColorMagenta
	phantom.Ability = AbilityPhase
	phantom.Physics.HitboxInset = 0.5
	phantom.Physics.BaseSpeed = 0.55
	phantom.Upgrades = nil
	phantom.Milestones = []Milestone{
		{AtScore: 150, Hint: "Edges forgive, centers don't."},
	}
	Register(phantom)

	glacier := sprint
	glacier.ID = "glacier"
	glacier.Name = "Glacier"
	glacier.Hint = "The world runs slower here."
	glacier.Glyph = '●'
	glacier.Color = core.ColorBlue
	glacier.Ability = AbilityChill
	glacier.Physics.SpeedScale = 0.75
	glacier.Physics.RampRate = 0.011
	glacier.Upgrades = nil
	glacier.Milestones = []Milestone{
		{AtScore: 150, Hint: "Slow world, long run."},
	}
	Register(glacier)

	flux := Mode{
		ID:      "flux",
		Name:    "Flux",
		Hint:    "Tap to flip gravity.",
		Glyph:   '◈',
		Color:   core.ColorOrange,
		Ability: AbilityNone,
		Motion:  MotionFlip,
		Physics: Physics{
			Gravity:      0.5,
			JumpImpulse:  0, // Unused: flip motion has no jump impulse
			MaxFallSpeed: 3.0,
			BaseSpeed:    0.5,
			SpeedScale:   1.0,
			RampRate:     0.009,
			RampCap:      1.75,
			MaxJumps:     1,
		},
		Spawn:  defaultSpawn(),
		Player: defaultPlayer(),
		Milestones: []Milestone{
			{AtScore: 150, Hint: "Ceiling is a floor too."},
			{AtScore: 1000, Hint: "Flux master."},
		},
	}
	flux.Spawn.MinHeight = 3
	flux.Spawn.MaxHeight = 6
	Register(flux)
}
