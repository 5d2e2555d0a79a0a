package combat

// School is the tradition a spell is memorized under
type School string

const (
	SchoolArcane School = "arcane"
	SchoolDivine School = "divine"
)

// Effect tags the effect variant a spell dispatches to
type Effect string

const (
	EffectDamage       Effect = "damage"
	EffectHeal         Effect = "heal"
	EffectBuff         Effect = "buff"
	EffectProtection   Effect = "protection"
	EffectControl      Effect = "control"
	EffectUtility      Effect = "utility"
	EffectDispel       Effect = "dispel"
	EffectConcealment  Effect = "concealment"
	EffectResurrection Effect = "resurrection"
)

// NeedsTarget reports whether the effect resolves against an explicit target
func (e Effect) NeedsTarget() bool {
	switch e {
	case EffectDamage, EffectHeal, EffectControl, EffectDispel, EffectResurrection:
		return true
	}
	return false
}

// Spell is a memorizable spell definition
type Spell struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	School School `json:"school"`
	Level  int    `json:"level"`
	Effect Effect `json:"effect"`
	Dice   Dice   `json:"dice"`
}

// PrimaryAttribute returns the caster attribute that drives success for the spell's school
func (s *Spell) PrimaryAttribute(caster *Combatant) int {
	if s.School == SchoolDivine {
		return caster.Attributes.Piety
	}
	return caster.Attributes.Intelligence
}
