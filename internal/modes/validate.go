package modes

import "fmt"

// ValidationError contains details about an invalid mode definition.
type ValidationError struct {
	Code    string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Validate checks a mode's numeric ranges. Invalid catalog entries are
// programming errors: Register panics on them so they surface at startup,
// never mid-run.
func Validate(m Mode) error {
	if m.ID == "" {
		return ValidationError{Code: "EMPTY_ID", Message: "mode has no id"}
	}
	if m.Name == "" {
		return ValidationError{Code: "EMPTY_NAME", Message: fmt.Sprintf("mode %q has no name", m.ID)}
	}

	if err := validatePhysics(m); err != nil {
		return err
	}
	if err := validateSpawn(m); err != nil {
		return err
	}
	if err := validatePlayer(m); err != nil {
		return err
	}
	if err := validateThresholds(m); err != nil {
		return err
	}
	return nil
}

func validatePhysics(m Mode) error {
	p := m.Physics

	if p.Gravity <= 0 {
		return physErr(m, "gravity must be positive, got %v", p.Gravity)
	}
	if p.JumpImpulse <= 0 && m.Motion == MotionRun {
		return physErr(m, "jump impulse must be positive, got %v", p.JumpImpulse)
	}
	if p.MaxFallSpeed <= 0 {
		return physErr(m, "max fall speed must be positive, got %v", p.MaxFallSpeed)
	}
	if p.BaseSpeed <= 0 {
		return physErr(m, "base speed must be positive, got %v", p.BaseSpeed)
	}
	if p.SpeedScale <= 0 {
		return physErr(m, "speed scale must be positive, got %v", p.SpeedScale)
	}
	if p.RampRate < 0 {
		return physErr(m, "ramp rate must not be negative, got %v", p.RampRate)
	}
	if p.RampCap < 1 {
		return physErr(m, "ramp cap must be at least 1, got %v", p.RampCap)
	}
	if p.GlideFactor < 0 || p.GlideFactor > 1 {
		return physErr(m, "glide factor must be in [0,1], got %v", p.GlideFactor)
	}
	if p.HitboxInset < 0 {
		return physErr(m, "hitbox inset must not be negative, got %v", p.HitboxInset)
	}
	if m.Motion == MotionRun && p.MaxJumps < 1 {
		return physErr(m, "max jumps must be at least 1, got %d", p.MaxJumps)
	}
	return nil
}

func validateSpawn(m Mode) error {
	s := m.Spawn

	ranges := []struct {
		name     string
		min, max float64
	}{
		{"interval", s.MinIntervalMs, s.MaxIntervalMs},
		{"width", s.MinWidth, s.MaxWidth},
		{"height", s.MinHeight, s.MaxHeight},
	}
	for _, r := range ranges {
		if r.min <= 0 {
			return spawnErr(m, "%s minimum must be positive, got %v", r.name, r.min)
		}
		if r.max < r.min {
			return spawnErr(m, "%s range [%v,%v] is empty", r.name, r.min, r.max)
		}
	}
	if s.MinSpeed < 0 || s.MaxSpeed < s.MinSpeed {
		return spawnErr(m, "speed range [%v,%v] is invalid", s.MinSpeed, s.MaxSpeed)
	}
	if s.BurstChance < 0 || s.BurstChance > 1 {
		return spawnErr(m, "burst chance must be in [0,1], got %v", s.BurstChance)
	}
	if s.BurstChance > 0 && s.BurstMax < 2 {
		return spawnErr(m, "burst max must be at least 2 when bursts are enabled, got %d", s.BurstMax)
	}
	if s.BurstRecoveryMs < 0 {
		return spawnErr(m, "burst recovery must not be negative, got %v", s.BurstRecoveryMs)
	}
	if s.DespawnMargin < 0 {
		return spawnErr(m, "despawn margin must not be negative, got %v", s.DespawnMargin)
	}
	return nil
}

func validatePlayer(m Mode) error {
	p := m.Player
	if p.Width <= 0 || p.Height <= 0 {
		return ValidationError{
			Code:    "INVALID_PLAYER",
			Message: fmt.Sprintf("mode %q: player size %vx%v must be positive", m.ID, p.Width, p.Height),
		}
	}
	if p.GroundOffset < 0 {
		return ValidationError{
			Code:    "INVALID_PLAYER",
			Message: fmt.Sprintf("mode %q: ground offset must not be negative, got %v", m.ID, p.GroundOffset),
		}
	}
	return nil
}

func validateThresholds(m Mode) error {
	last := -1
	for i, u := range m.Upgrades {
		if u.AtScore <= last {
			return ValidationError{
				Code:    "INVALID_UPGRADES",
				Message: fmt.Sprintf("mode %q: upgrade %d threshold %d not ascending", m.ID, i, u.AtScore),
			}
		}
		if u.GraceMs < 0 {
			return ValidationError{
				Code:    "INVALID_UPGRADES",
				Message: fmt.Sprintf("mode %q: upgrade %d grace must not be negative", m.ID, i),
			}
		}
		last = u.AtScore
	}

	last = -1
	for i, ms := range m.Milestones {
		if ms.AtScore <= last {
			return ValidationError{
				Code:    "INVALID_MILESTONES",
				Message: fmt.Sprintf("mode %q: milestone %d threshold %d not ascending", m.ID, i, ms.AtScore),
			}
		}
		last = ms.AtScore
	}
	return nil
}

func physErr(m Mode, format string, args ...any) error {
	return ValidationError{
		Code:    "INVALID_PHYSICS",
		Message: fmt.Sprintf("mode %q: ", m.ID) + fmt.Sprintf(format, args...),
	}
}

func spawnErr(m Mode, format string, args ...any) error {
	return ValidationError{
		Code:    "INVALID_SPAWN",
		Message: fmt.Sprintf("mode %q: ", m.ID) + fmt.Sprintf(format, args...),
	}
}
