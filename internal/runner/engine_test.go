package runner

import (
	"testing"

	"github.com/vovakirdan/tui-runner/internal/core"
	"github.com/vovakirdan/tui-runner/internal/modes"
)

// openMode is a run-model mode with spawning pushed effectively to infinity,
// so physics can be tested without obstacle interference.
func openMode() modes.Mode {
	m := baseMode()
	m.Spawn.MinIntervalMs = 1e12
	m.Spawn.MaxIntervalMs = 1e12
	return m
}

func baseMode() modes.Mode {
	return modes.Mode{
		ID:      "test",
		Name:    "Test",
		Hint:    "test hint",
		Glyph:   '▶',
		Ability: modes.AbilityNone,
		Motion:  modes.MotionRun,
		Physics: modes.Physics{
			Gravity:      0.3,
			JumpImpulse:  2.4,
			MaxFallSpeed: 4.0,
			BaseSpeed:    0.5,
			SpeedScale:   1.0,
			RampRate:     0.009,
			RampCap:      1.75,
			GlideFactor:  0.5,
			HitboxInset:  0.5,
			MaxJumps:     1,
		},
		Spawn: modes.Spawn{
			MinIntervalMs: 1600,
			MaxIntervalMs: 2100,
			MinWidth:      1,
			MaxWidth:      3,
			MinHeight:     2,
			MaxHeight:     4,
			BurstGap:      3,
			DespawnMargin: 4,
		},
		Player: modes.Player{Width: 3, Height: 2, GroundOffset: 2},
	}
}

func defaultRuntime() core.RuntimeConfig {
	return core.RuntimeConfig{ViewW: 80, ViewH: 24, TickRate: 60, Seed: 7}
}

func noInput() core.InputFrame {
	return core.NewInputFrame()
}

func jumpInput() core.InputFrame {
	in := core.NewInputFrame()
	in.Press(core.ActionJump)
	return in
}

func TestFrameRateIndependence(t *testing.T) {
	// One 32ms tick vs two 16ms ticks from the same airborne state must
	// land within integration error, not diverge.
	e1 := NewEngine(openMode(), defaultRuntime())
	e2 := NewEngine(openMode(), defaultRuntime())

	e1.Advance(jumpInput(), 16.0)
	e2.Advance(jumpInput(), 16.0)
	if e1.Player() != e2.Player() {
		t.Fatal("identical ticks must produce identical players")
	}

	e1.Advance(noInput(), 32.0)
	e2.Advance(noInput(), 16.0)
	e2.Advance(noInput(), 16.0)

	p1 := e1.Player()
	p2 := e2.Player()

	dy := p1.Body.Y - p2.Body.Y
	if dy < 0 {
		dy = -dy
	}
	// One extra half-step of gravity is the expected integration error
	if dy > 0.5 {
		t.Errorf("position diverged: 32ms tick y=%v, 2x16ms y=%v", p1.Body.Y, p2.Body.Y)
	}

	dv := p1.VelY - p2.VelY
	if dv < 0 {
		dv = -dv
	}
	if dv > 0.01 {
		t.Errorf("velocity diverged: %v vs %v", p1.VelY, p2.VelY)
	}
}

func TestDeltaClamp(t *testing.T) {
	// A stalled frame is clamped to MaxDeltaMs, bounding the worst-case step.
	e1 := NewEngine(openMode(), defaultRuntime())
	e2 := NewEngine(openMode(), defaultRuntime())

	e1.Advance(jumpInput(), 16.0)
	e2.Advance(jumpInput(), 16.0)

	e1.Advance(noInput(), 5000.0)
	e2.Advance(noInput(), core.MaxDeltaMs)

	if e1.Player() != e2.Player() {
		t.Errorf("oversized delta should behave like MaxDeltaMs: %+v vs %+v", e1.Player(), e2.Player())
	}
}

func TestGroundAndCeilingClamp(t *testing.T) {
	mode := openMode()
	rt := defaultRuntime()
	e := NewEngine(mode, rt)

	floor := e.GroundY() - mode.Player.Height
	for i := 0; i < 2000; i++ {
		in := noInput()
		if i%13 == 0 {
			in = jumpInput()
		}
		e.Advance(in, core.RefFrameMs)

		y := e.Player().Body.Y
		if y < 0 {
			t.Fatalf("tick %d: player above ceiling, y=%v", i, y)
		}
		if y > floor {
			t.Fatalf("tick %d: player below floor, y=%v > %v", i, y, floor)
		}
	}
}

func TestJumpReturnsToGround(t *testing.T) {
	// Projectile scenario from a known tuning: airtime must be consistent
	// with t = 2*impulse/gravity reference frames.
	mode := openMode()
	mode.Physics.Gravity = 0.78
	mode.Physics.JumpImpulse = 11
	mode.Physics.MaxFallSpeed = 1000
	mode.Player = modes.Player{Width: 56, Height: 56, GroundOffset: 2}

	rt := core.RuntimeConfig{ViewW: 640, ViewH: 306, TickRate: 60, Seed: 1}
	e := NewEngine(mode, rt)

	if e.GroundY() != 304 {
		t.Fatalf("ground level = %v, expected 304", e.GroundY())
	}
	floor := 304.0 - 56.0

	e.Advance(jumpInput(), core.RefFrameMs)
	if e.Player().VelY >= 0 {
		t.Fatal("jump should give upward velocity")
	}

	landed := -1
	for i := 1; i <= 60; i++ {
		e.Advance(noInput(), core.RefFrameMs)
		p := e.Player()
		if p.Body.Y < 0 {
			t.Fatalf("player escaped above ceiling, y=%v", p.Body.Y)
		}
		if p.Body.Y == floor && p.VelY == 0 {
			landed = i + 1
			break
		}
	}

	// t ~= 2*11/0.78 ~= 28 frames
	if landed < 20 || landed > 40 {
		t.Errorf("player landed after %d frames, expected around 28", landed)
	}
	if e.Player().JumpsUsed != 0 {
		t.Error("landing should re-arm the jump")
	}
}

func TestDoubleJump(t *testing.T) {
	mode := openMode()
	mode.Ability = modes.AbilityDoubleJump
	mode.Physics.MaxJumps = 2
	e := NewEngine(mode, defaultRuntime())

	e.Advance(jumpInput(), core.RefFrameMs)
	if e.Player().JumpsUsed != 1 {
		t.Fatalf("JumpsUsed = %d after first jump, expected 1", e.Player().JumpsUsed)
	}

	e.Advance(jumpInput(), core.RefFrameMs)
	if e.Player().JumpsUsed != 2 {
		t.Fatalf("JumpsUsed = %d after second jump, expected 2", e.Player().JumpsUsed)
	}
	velAfterSecond := e.Player().VelY

	// Third jump mid-air is ignored
	e.Advance(jumpInput(), core.RefFrameMs)
	if e.Player().VelY < velAfterSecond {
		t.Error("third mid-air jump should be ignored")
	}
}

func TestGlideSlowsDescent(t *testing.T) {
	mode := openMode()
	mode.Ability = modes.AbilityGlide

	gliding := NewEngine(mode, defaultRuntime())
	falling := NewEngine(mode, defaultRuntime())

	gliding.Advance(jumpInput(), core.RefFrameMs)
	falling.Advance(jumpInput(), core.RefFrameMs)

	held := noInput()
	held.Hold(core.ActionJump, true)

	// Ride both past the apex, then compare mid-descent
	for i := 0; i < 12; i++ {
		gliding.Advance(held, core.RefFrameMs)
		falling.Advance(noInput(), core.RefFrameMs)
	}

	gp := gliding.Player()
	fp := falling.Player()
	if fp.VelY == 0 && gp.VelY == 0 {
		t.Fatal("both players already landed, test window too long")
	}
	if gp.Body.Y >= fp.Body.Y {
		t.Errorf("glide should keep the player higher: glide y=%v, plain y=%v", gp.Body.Y, fp.Body.Y)
	}
}

func TestFlipMotion(t *testing.T) {
	mode := openMode()
	mode.Motion = modes.MotionFlip
	mode.Physics.Gravity = 0.5
	mode.Physics.MaxFallSpeed = 3.0
	e := NewEngine(mode, defaultRuntime())

	floor := e.GroundY() - mode.Player.Height

	if e.Player().Body.Y != floor {
		t.Fatalf("flip mode should start on the floor, y=%v", e.Player().Body.Y)
	}

	// Toggle gravity: the player must travel to the ceiling and stick
	e.Advance(jumpInput(), core.RefFrameMs)
	for i := 0; i < 200 && e.Player().Body.Y > 0; i++ {
		e.Advance(noInput(), core.RefFrameMs)
	}
	if e.Player().Body.Y != 0 {
		t.Fatalf("player should reach the ceiling, y=%v", e.Player().Body.Y)
	}

	// Toggle back: return to the floor
	e.Advance(jumpInput(), core.RefFrameMs)
	for i := 0; i < 200 && e.Player().Body.Y < floor; i++ {
		e.Advance(noInput(), core.RefFrameMs)
	}
	if e.Player().Body.Y != floor {
		t.Fatalf("player should return to the floor, y=%v", e.Player().Body.Y)
	}
}

func TestScoreMonotonic(t *testing.T) {
	e := NewEngine(openMode(), defaultRuntime())

	prev := -1
	for i := 0; i < 1000; i++ {
		e.Advance(noInput(), core.RefFrameMs)
		sc := e.Score()
		if sc < prev {
			t.Fatalf("tick %d: score decreased from %d to %d", i, prev, sc)
		}
		prev = sc
	}
	if prev == 0 {
		t.Error("score should have accrued over 1000 ticks")
	}
}

func TestRampCapAndProgress(t *testing.T) {
	mode := openMode()
	e := NewEngine(mode, defaultRuntime())

	prevProgress := 0.0
	// Simulate well past the cap (~83s to cap at rate 0.009)
	for i := 0; i < 7000; i++ {
		e.Advance(noInput(), core.RefFrameMs)
		p := e.Progress()
		if p < prevProgress {
			t.Fatalf("tick %d: progress regressed from %v to %v", i, prevProgress, p)
		}
		if p < 0 || p > 1 {
			t.Fatalf("tick %d: progress %v outside [0,1]", i, p)
		}
		prevProgress = p
	}
	if prevProgress != 1 {
		t.Errorf("progress should reach 1 at the ramp cap, got %v", prevProgress)
	}
}

func TestSpawnTimerDrawBounds(t *testing.T) {
	// The re-rolled countdown must always land in the configured range.
	e := NewEngine(baseMode(), defaultRuntime())

	for i := 0; i < 100; i++ {
		e.spawnWave()
		if e.spawnTimerMs < 1600 || e.spawnTimerMs > 2100 {
			t.Fatalf("spawn %d: timer %v outside [1600,2100]", i, e.spawnTimerMs)
		}
	}
}

func TestSpawnInterArrivalBounds(t *testing.T) {
	// Observed inter-arrival times over a long run stay within the
	// configured window, modulo one tick of quantization.
	mode := baseMode()
	mode.Physics.Gravity = 1e-9 // Keeps the parked player airborne
	e := NewEngine(mode, defaultRuntime())
	e.player.Body.Y = 0 // Park at the ceiling, out of obstacle reach
	e.player.VelY = 0

	var lastID uint64
	lastSpawnAt := 0.0
	elapsed := 0.0
	spawns := 0

	for spawns < 100 {
		e.Advance(noInput(), core.RefFrameMs)
		elapsed += core.RefFrameMs

		for _, o := range e.Obstacles() {
			if o.ID > lastID {
				lastID = o.ID
				if lastSpawnAt > 0 {
					gap := elapsed - lastSpawnAt
					if gap < 1600 || gap > 2100+core.RefFrameMs {
						t.Fatalf("spawn %d: inter-arrival %vms outside [1600,2100]", spawns, gap)
					}
				}
				lastSpawnAt = elapsed
				spawns++
			}
		}
	}
}

func TestObstacleLifecycle(t *testing.T) {
	mode := baseMode()
	mode.Physics.Gravity = 1e-9
	e := NewEngine(mode, defaultRuntime())
	e.player.Body.Y = 0
	e.player.VelY = 0

	seen := make(map[uint64]bool)
	lastRight := make(map[uint64]float64)
	margin := mode.Spawn.DespawnMargin

	for i := 0; i < 20000; i++ {
		e.Advance(noInput(), core.RefFrameMs)

		current := make(map[uint64]bool)
		for _, o := range e.Obstacles() {
			current[o.ID] = true
			if o.Body.Right() <= -margin {
				t.Fatalf("tick %d: obstacle %d kept past the despawn margin", i, o.ID)
			}
			if _, ok := lastRight[o.ID]; !ok && seen[o.ID] {
				t.Fatalf("tick %d: obstacle id %d reused", i, o.ID)
			}
			seen[o.ID] = true
			lastRight[o.ID] = o.Body.Right()
		}

		// Anything that vanished must have crossed the margin first
		for id, right := range lastRight {
			if !current[id] {
				// Allow up to one tick of scroll past the boundary
				if right > -margin+2 {
					t.Fatalf("obstacle %d removed early, last right edge %v", id, right)
				}
				delete(lastRight, id)
			}
		}
	}

	if len(seen) < 5 {
		t.Errorf("expected several obstacles over the run, saw %d", len(seen))
	}
}

func TestCollisionEndsRun(t *testing.T) {
	e := NewEngine(openMode(), defaultRuntime())

	// Plant an obstacle fully overlapping the player
	e.pool.spawn(e.player.Body, 0, false)

	outcome := e.Advance(noInput(), core.RefFrameMs)
	if outcome != OutcomeCollided {
		t.Fatalf("expected OutcomeCollided, got %v", outcome)
	}
}

func TestCollisionDoesNotAccrueScore(t *testing.T) {
	e := NewEngine(openMode(), defaultRuntime())
	e.score = 123.9
	e.pool.spawn(e.player.Body, 0, false)

	if e.Advance(noInput(), core.RefFrameMs) != OutcomeCollided {
		t.Fatal("expected collision")
	}
	if e.Score() != 123 {
		t.Errorf("final score = %d, expected floor(123.9) = 123", e.Score())
	}
}

func TestPhaseInsetAvoidsGraze(t *testing.T) {
	mode := openMode()
	mode.Ability = modes.AbilityPhase
	mode.Physics.HitboxInset = 0.5
	mode.Physics.SpeedScale = 0 // Freeze the scroll so the overlap stays put
	e := NewEngine(mode, defaultRuntime())

	// An obstacle overlapping only the outer 0.4 cells of the player body
	// is inside the inset and must not collide.
	graze := core.NewRect(e.player.Body.Right()-0.4, e.player.Body.Y, 2, e.player.Body.H)
	e.pool.spawn(graze, 0, false)

	mode2 := openMode()
	mode2.Physics.SpeedScale = 0
	full := NewEngine(mode2, defaultRuntime())
	graze2 := core.NewRect(full.player.Body.Right()-0.4, full.player.Body.Y, 2, full.player.Body.H)
	full.pool.spawn(graze2, 0, false)

	if full.Advance(noInput(), core.RefFrameMs) != OutcomeCollided {
		t.Fatal("full hitbox should collide with the graze")
	}
	if e.Advance(noInput(), core.RefFrameMs) == OutcomeCollided {
		t.Error("phase hitbox should survive the graze")
	}
}

func TestUpgradeGracePeriod(t *testing.T) {
	mode := openMode()
	mode.Spawn.MinIntervalMs = 100
	mode.Spawn.MaxIntervalMs = 150
	mode.Upgrades = []modes.Upgrade{
		{AtScore: 3, Ability: modes.AbilityGlide, Hint: "wings", GraceMs: 1000},
	}
	e := NewEngine(mode, defaultRuntime())
	e.player.Body.Y = 0 // Keep clear of obstacles
	e.player.VelY = 0
	e.mode.Physics.Gravity = 1e-9

	// Run until the upgrade fires
	for i := 0; i < 2000 && e.Ability() != modes.AbilityGlide; i++ {
		e.Advance(noInput(), core.RefFrameMs)
	}
	if e.Ability() != modes.AbilityGlide {
		t.Fatal("upgrade never fired")
	}
	if !e.InGrace() {
		t.Fatal("upgrade should start a grace period")
	}
	if e.Hint() != "wings" {
		t.Errorf("upgrade hint not surfaced, got %q", e.Hint())
	}

	// During grace: score frozen, no new spawns
	scoreAt := e.Score()
	countAt := len(e.Obstacles())
	for i := 0; i < 30 && e.InGrace(); i++ {
		e.Advance(noInput(), core.RefFrameMs)
		if e.Score() != scoreAt {
			t.Fatalf("score accrued during grace: %d -> %d", scoreAt, e.Score())
		}
		if len(e.Obstacles()) > countAt {
			t.Fatal("obstacle spawned during grace")
		}
		countAt = len(e.Obstacles())
	}

	// After grace: scoring resumes
	for i := 0; i < 120; i++ {
		e.Advance(noInput(), core.RefFrameMs)
	}
	if e.Score() <= scoreAt {
		t.Error("score should resume after grace expires")
	}
}

func TestMilestonesFireInOrderOnce(t *testing.T) {
	mode := openMode()
	mode.Milestones = []modes.Milestone{
		{AtScore: 2, Hint: "first"},
		{AtScore: 5, Hint: "second"},
	}
	e := NewEngine(mode, defaultRuntime())

	var hints []string
	last := e.Hint()
	for i := 0; i < 1000; i++ {
		e.Advance(noInput(), core.RefFrameMs)
		if h := e.Hint(); h != last {
			hints = append(hints, h)
			last = h
		}
	}

	if len(hints) != 2 || hints[0] != "first" || hints[1] != "second" {
		t.Errorf("milestone hints fired as %v, expected [first second]", hints)
	}
	if e.milestoneIdx != 2 {
		t.Errorf("milestone pointer = %d, expected 2", e.milestoneIdx)
	}
}

func TestDeterminism(t *testing.T) {
	// Same seed and inputs must produce identical runs
	run := func() (int, Player, int) {
		e := NewEngine(baseMode(), defaultRuntime())
		for i := 0; i < 500; i++ {
			in := noInput()
			if i%15 == 0 {
				in = jumpInput()
			}
			if e.Advance(in, core.RefFrameMs) == OutcomeCollided {
				break
			}
		}
		return e.Score(), e.Player(), len(e.Obstacles())
	}

	s1, p1, n1 := run()
	s2, p2, n2 := run()

	if s1 != s2 {
		t.Errorf("scores differ: %d vs %d", s1, s2)
	}
	if p1 != p2 {
		t.Errorf("players differ: %+v vs %+v", p1, p2)
	}
	if n1 != n2 {
		t.Errorf("obstacle counts differ: %d vs %d", n1, n2)
	}
}

func TestBurstSpawnsClusterWithRecovery(t *testing.T) {
	mode := baseMode()
	mode.Spawn.BurstChance = 1.0
	mode.Spawn.BurstMax = 3
	mode.Spawn.BurstRecoveryMs = 700
	e := NewEngine(mode, defaultRuntime())

	e.spawnWave()

	n := len(e.Obstacles())
	if n < 2 || n > 3 {
		t.Errorf("burst should spawn 2..3 obstacles, got %d", n)
	}
	if e.spawnTimerMs < 1600+700 || e.spawnTimerMs > 2100+700 {
		t.Errorf("burst recovery not applied, timer = %v", e.spawnTimerMs)
	}

	// Cluster members are laid out left to right in spawn order
	obs := e.Obstacles()
	for i := 1; i < len(obs); i++ {
		if obs[i].Body.X <= obs[i-1].Body.Right() {
			t.Errorf("cluster members overlap: %v then %v", obs[i-1].Body, obs[i].Body)
		}
	}
}
