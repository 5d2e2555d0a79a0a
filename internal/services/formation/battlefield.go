package formation

import "github.com/KirkDiggler/dungeon-combat/internal/domain/combat"

// Battlefield holds both sides' formations and answers positional questions
// for the action resolver.
type Battlefield struct {
	Party *Formation
	Enemy *Formation
}

// NewEnemyFormation places a wave into rows of the given capacity. The first
// group and any monster preferring the front go to the front row, the rest to
// the back. A monster whose row is full spills into the other row; when both
// are full it stays in its row so Validate reports the overflow.
func NewEnemyFormation(wave *combat.Wave, frontCapacity, backCapacity int) *Formation {
	f := New(frontCapacity, backCapacity)
	for i, group := range wave.Groups {
		for _, m := range group.Members {
			row := combat.RowBack
			if i == 0 {
				row = combat.RowFront
			}
			if m.Monster != nil && m.Monster.PreferredRow != "" {
				row = m.Monster.PreferredRow
			}
			if f.isFull(row) && !f.isFull(other(row)) {
				row = other(row)
			}
			if row == combat.RowFront {
				f.front = append(f.front, m)
			} else {
				f.back = append(f.back, m)
			}
		}
	}
	return f
}

// For returns the formation of a side
func (b *Battlefield) For(side combat.Side) *Formation {
	if side == combat.SideParty {
		return b.Party
	}
	return b.Enemy
}

// RowOf returns the row of a combatant, front when unplaced
func (b *Battlefield) RowOf(c *combat.Combatant) combat.Row {
	f := b.For(c.Side())
	if f == nil {
		return combat.RowFront
	}
	if row, ok := f.RowOf(c.ID); ok {
		return row
	}
	return combat.RowFront
}

// Remove takes a combatant off the field
func (b *Battlefield) Remove(c *combat.Combatant) {
	if f := b.For(c.Side()); f != nil {
		f.Remove(c.ID)
	}
}

// CanAttackFromPosition reports whether the attacker may make this attack.
// Melee from the back row needs an open front row or a reach weapon; ranged,
// reach and spell attacks are always permitted.
func (b *Battlefield) CanAttackFromPosition(attacker, target *combat.Combatant, attackType combat.AttackType) bool {
	if attacker == nil || target == nil {
		return false
	}
	if attackType != combat.AttackMelee {
		return true
	}
	if attacker.Equipment.AttackType() == combat.AttackReach {
		return true
	}
	if b.RowOf(attacker) != combat.RowBack {
		return true
	}
	own := b.For(attacker.Side())
	return own == nil || own.FrontRowOpen()
}

// AttackModifier is the positional to-hit modifier for the attacker
func (b *Battlefield) AttackModifier(attacker *combat.Combatant, attackType combat.AttackType) int {
	if attackType == combat.AttackRanged && b.RowOf(attacker) == combat.RowBack {
		return RangedAccuracyBonus
	}
	return 0
}

// DamageModifier is the positional damage modifier for the attacker
func (b *Battlefield) DamageModifier(attacker *combat.Combatant, attackType combat.AttackType) int {
	if attackType == combat.AttackMelee && b.RowOf(attacker) == combat.RowBack {
		return -MeleeDamagePenalty
	}
	return 0
}

// DamageTaken applies the back row's 25% damage reduction
func (b *Battlefield) DamageTaken(target *combat.Combatant, damage int) int {
	if damage <= 0 || b.RowOf(target) != combat.RowBack {
		return damage
	}
	reduced := damage * 3 / 4
	if reduced < 1 {
		reduced = 1
	}
	return reduced
}
