package modes

import "testing"

func TestCatalogValid(t *testing.T) {
	all := List()
	if len(all) == 0 {
		t.Fatal("catalog should not be empty")
	}

	for _, m := range all {
		if err := Validate(m); err != nil {
			t.Errorf("registered mode %q fails validation: %v", m.ID, err)
		}
	}
}

func TestCatalogCoversAbilities(t *testing.T) {
	seen := make(map[Ability]bool)
	flipSeen := false
	for _, m := range List() {
		seen[m.Ability] = true
		if m.Motion == MotionFlip {
			flipSeen = true
		}
	}

	for _, a := range []Ability{AbilityNone, AbilityDoubleJump, AbilityGlide, AbilityPhase, AbilityChill} {
		if !seen[a] {
			t.Errorf("no catalog mode carries ability %s", a)
		}
	}
	if !flipSeen {
		t.Error("no catalog mode uses the flip motion model")
	}
}

func TestGetAndExists(t *testing.T) {
	if !Exists("sprint") {
		t.Fatal("sprint mode should be registered")
	}

	m, err := Get("sprint")
	if err != nil {
		t.Fatalf("Get(sprint) failed: %v", err)
	}
	if m.ID != "sprint" {
		t.Errorf("Get returned wrong mode: %q", m.ID)
	}

	if _, err := Get("no-such-mode"); err == nil {
		t.Error("Get of unknown mode should fail")
	}
	if Exists("no-such-mode") {
		t.Error("Exists of unknown mode should be false")
	}
}

func TestGetReturnsCopy(t *testing.T) {
	m, err := Get("sprint")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}

	m.Physics.Gravity = 999

	again, err := Get("sprint")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if again.Physics.Gravity == 999 {
		t.Error("mutating a returned mode must not affect the catalog")
	}
}

func TestValidateRejectsBadModes(t *testing.T) {
	base, err := Get("sprint")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}

	tests := []struct {
		name   string
		mutate func(*Mode)
		code   string
	}{
		{"empty id", func(m *Mode) { m.ID = "" }, "EMPTY_ID"},
		{"zero gravity", func(m *Mode) { m.Physics.Gravity = 0 }, "INVALID_PHYSICS"},
		{"negative base speed", func(m *Mode) { m.Physics.BaseSpeed = -1 }, "INVALID_PHYSICS"},
		{"ramp cap below one", func(m *Mode) { m.Physics.RampCap = 0.5 }, "INVALID_PHYSICS"},
		{"empty interval range", func(m *Mode) {
			m.Spawn.MinIntervalMs = 2000
			m.Spawn.MaxIntervalMs = 1000
		}, "INVALID_SPAWN"},
		{"zero height minimum", func(m *Mode) { m.Spawn.MinHeight = 0 }, "INVALID_SPAWN"},
		{"burst without size", func(m *Mode) {
			m.Spawn.BurstChance = 0.5
			m.Spawn.BurstMax = 1
		}, "INVALID_SPAWN"},
		{"zero player size", func(m *Mode) { m.Player.Height = 0 }, "INVALID_PLAYER"},
		{"non-ascending upgrades", func(m *Mode) {
			m.Upgrades = []Upgrade{
				{AtScore: 500, Ability: AbilityGlide},
				{AtScore: 500, Ability: AbilityPhase},
			}
		}, "INVALID_UPGRADES"},
		{"non-ascending milestones", func(m *Mode) {
			m.Milestones = []Milestone{
				{AtScore: 300, Hint: "a"},
				{AtScore: 200, Hint: "b"},
			}
		}, "INVALID_MILESTONES"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			m := base
			tc.mutate(&m)

			err := Validate(m)
			if err == nil {
				t.Fatal("Validate should have failed")
			}
			verr, ok := err.(ValidationError)
			if !ok {
				t.Fatalf("expected ValidationError, got %T", err)
			}
			if verr.Code != tc.code {
				t.Errorf("expected code %s, got %s", tc.code, verr.Code)
			}
		})
	}
}

func TestRetune(t *testing.T) {
	m, err := Get("glacier")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}

	phys := m.Physics
	phys.BaseSpeed = 0.9
	if err := Retune("glacier", phys, m.Spawn, m.Player); err != nil {
		t.Fatalf("Retune failed: %v", err)
	}

	updated, _ := Get("glacier")
	if updated.Physics.BaseSpeed != 0.9 {
		t.Errorf("Retune not applied, base speed = %v", updated.Physics.BaseSpeed)
	}

	// Restore and verify invalid tuning is rejected
	if err := Retune("glacier", m.Physics, m.Spawn, m.Player); err != nil {
		t.Fatalf("restore Retune failed: %v", err)
	}

	bad := m.Physics
	bad.Gravity = -1
	if err := Retune("glacier", bad, m.Spawn, m.Player); err == nil {
		t.Error("Retune with invalid physics should fail")
	}
	after, _ := Get("glacier")
	if after.Physics.Gravity != m.Physics.Gravity {
		t.Error("rejected Retune must not modify the catalog")
	}

	if err := Retune("no-such-mode", phys, m.Spawn, m.Player); err == nil {
		t.Error("Retune of unknown mode should fail")
	}
}
