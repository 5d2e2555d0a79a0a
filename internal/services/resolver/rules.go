package resolver

import (
	"github.com/KirkDiggler/dungeon-combat/internal/domain/combat"
)

const (
	// BaseArmorClass is the armor class of an unarmored, average combatant
	BaseArmorClass = 10
	// DefendBonus is the one-shot armor bonus of the defend action
	DefendBonus = 2
	// SleepingTargetBonus is added to attacks against asleep targets
	SleepingTargetBonus = 4
	// CriticalThreshold is the attack total that calls for a confirming roll
	CriticalThreshold = 20
	// CriticalConfirm is the confirming d20 that doubles damage
	CriticalConfirm = 18
	// InstantKillChance is the percent chance on a natural 20 confirm
	InstantKillChance = 5

	spellBaseChance = 85
	spellMinChance  = 5
	spellMaxChance  = 95

	escapeChance = 50
)

// EscapeChance is the fixed escape success percentage. No attribute,
// formation or condition modifies it.
func EscapeChance() int {
	return escapeChance
}

// AttackBonus is the to-hit bonus before positional and condition modifiers
func AttackBonus(c *combat.Combatant) int {
	if !c.IsPlayer() {
		if c.Monster == nil {
			return 0
		}
		return c.Monster.AttackBonus
	}

	bonus := combat.Modifier(c.Attributes.Strength)
	if c.Equipment.Weapon != nil {
		bonus += c.Equipment.Weapon.HitBonus
	}
	if c.Class().IsWarrior() {
		bonus += c.Level
	} else {
		bonus += c.Level / 2
	}
	return bonus
}

// ArmorClass computes the target's armor class without consuming a defend bonus.
// Lower is better.
func ArmorClass(c *combat.Combatant) int {
	ac := BaseArmorClass -
		combat.Modifier(c.Attributes.Agility) -
		c.Equipment.ArmorBonus() -
		c.Equipment.ShieldBonus() -
		c.ConditionACBonus()
	if c.Defending {
		ac -= DefendBonus
	}
	return ac
}

// UnarmedBonus is the class bonus for fighting without a weapon
func UnarmedBonus(c *combat.Combatant) int {
	if c.Class() == combat.ClassNinja {
		return c.Level / 2
	}
	return 0
}

// SpellChance is 85 + 5 x (caster level - spell level) + (primary - 10), clamped to [5, 95]
func SpellChance(caster *combat.Combatant, spell *combat.Spell) int {
	chance := spellBaseChance +
		5*(caster.Level-spell.Level) +
		(spell.PrimaryAttribute(caster) - 10)
	if chance < spellMinChance {
		return spellMinChance
	}
	if chance > spellMaxChance {
		return spellMaxChance
	}
	return chance
}
