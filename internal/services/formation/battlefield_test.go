package formation_test

import (
	"testing"

	"github.com/KirkDiggler/dungeon-combat/internal/domain/combat"
	"github.com/KirkDiggler/dungeon-combat/internal/services/formation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type battlefieldFixture struct {
	field   *formation.Battlefield
	fighter *combat.Combatant
	mage    *combat.Combatant
	goblin  *combat.Combatant
}

func newBattlefieldFixture(t *testing.T) *battlefieldFixture {
	fx := &battlefieldFixture{
		fighter: player("fighter", combat.ClassFighter),
		mage:    player("mage", combat.ClassMage),
		goblin:  combat.NewMonster("goblin", "Goblin", 1, 5, combat.Attributes{}, combat.MonsterTraits{}),
	}
	party := formation.NewDefault()
	require.NoError(t, party.Arrange([]*combat.Combatant{fx.fighter, fx.mage}))
	fx.field = &formation.Battlefield{
		Party: party,
		Enemy: formation.NewEnemyFormation(combat.NewWave("goblins", fx.goblin), formation.DefaultFrontCapacity, formation.DefaultBackCapacity),
	}
	return fx
}

func TestCanAttackFromPosition(t *testing.T) {
	t.Run("front row melee is allowed", func(t *testing.T) {
		fx := newBattlefieldFixture(t)
		assert.True(t, fx.field.CanAttackFromPosition(fx.fighter, fx.goblin, combat.AttackMelee))
	})

	t.Run("back row melee is blocked while the front row stands", func(t *testing.T) {
		fx := newBattlefieldFixture(t)
		assert.False(t, fx.field.CanAttackFromPosition(fx.mage, fx.goblin, combat.AttackMelee))
	})

	t.Run("back row melee is allowed once the front row falls", func(t *testing.T) {
		fx := newBattlefieldFixture(t)
		fx.fighter.KnockOut()
		assert.True(t, fx.field.CanAttackFromPosition(fx.mage, fx.goblin, combat.AttackMelee))
	})

	t.Run("reach weapon ignores the front row", func(t *testing.T) {
		fx := newBattlefieldFixture(t)
		fx.mage.Equipment.Weapon = &combat.Weapon{Key: "spear", Range: combat.AttackReach}
		assert.True(t, fx.field.CanAttackFromPosition(fx.mage, fx.goblin, combat.AttackMelee))
	})

	t.Run("ranged and spell attacks are always permitted", func(t *testing.T) {
		fx := newBattlefieldFixture(t)
		assert.True(t, fx.field.CanAttackFromPosition(fx.mage, fx.goblin, combat.AttackRanged))
		assert.True(t, fx.field.CanAttackFromPosition(fx.mage, fx.goblin, combat.AttackSpell))
		assert.True(t, fx.field.CanAttackFromPosition(fx.mage, fx.goblin, combat.AttackReach))
	})

	t.Run("missing participants", func(t *testing.T) {
		fx := newBattlefieldFixture(t)
		assert.False(t, fx.field.CanAttackFromPosition(fx.mage, nil, combat.AttackSpell))
	})
}

func TestModifiers(t *testing.T) {
	fx := newBattlefieldFixture(t)

	assert.Equal(t, 0, fx.field.AttackModifier(fx.fighter, combat.AttackRanged))
	assert.Equal(t, formation.RangedAccuracyBonus, fx.field.AttackModifier(fx.mage, combat.AttackRanged))
	assert.Equal(t, 0, fx.field.AttackModifier(fx.mage, combat.AttackMelee))

	assert.Equal(t, 0, fx.field.DamageModifier(fx.fighter, combat.AttackMelee))
	assert.Equal(t, -formation.MeleeDamagePenalty, fx.field.DamageModifier(fx.mage, combat.AttackMelee))

	assert.Equal(t, 8, fx.field.DamageTaken(fx.fighter, 8))
	assert.Equal(t, 6, fx.field.DamageTaken(fx.mage, 8))
	assert.Equal(t, 1, fx.field.DamageTaken(fx.mage, 1))
	assert.Equal(t, 0, fx.field.DamageTaken(fx.mage, 0))
}

func TestBattlefield_Remove(t *testing.T) {
	fx := newBattlefieldFixture(t)
	fx.field.Remove(fx.fighter)

	_, placed := fx.field.Party.RowOf("fighter")
	assert.False(t, placed)
	assert.True(t, fx.field.Party.FrontRowOpen())
}
