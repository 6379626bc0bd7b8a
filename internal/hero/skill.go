package hero

type SkillKind string

const (
	SkillDamage SkillKind = "damage"
	SkillHeal   SkillKind = "heal"
	SkillBuff   SkillKind = "buff"
)

type Skill struct {
	Name        string    `json:"name"`
	Kind        SkillKind `json:"kind"`
	UnlockLevel int       `json:"unlockLevel"`
	CooldownMs  float64   `json:"cooldownMs"`
	RemainingMs float64   `json:"remainingMs"`
	Power       float64   `json:"power"`
}

// Advance burns elapsed cooldown and reports whether the skill fires this
// tick. force skips the remaining cooldown but not the unlock level. The
// cooldown restarts on fire.
func (s *Skill) Advance(level int, elapsedMs float64, force bool) bool {
	if s == nil {
		return false
	}
	s.RemainingMs -= elapsedMs
	if s.RemainingMs < 0 {
		s.RemainingMs = 0
	}
	if level < s.UnlockLevel {
		return false
	}
	if s.RemainingMs > 0 && !force {
		return false
	}
	s.RemainingMs = s.CooldownMs
	return true
}
