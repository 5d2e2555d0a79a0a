package spelleffect_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	mockdice "github.com/KirkDiggler/dungeon-combat/internal/dice/mock"
	"github.com/KirkDiggler/dungeon-combat/internal/domain/combat"
	"github.com/KirkDiggler/dungeon-combat/internal/interfaces"
	"github.com/KirkDiggler/dungeon-combat/internal/services/spelleffect"
)

var average = combat.Attributes{
	Strength: 10, Intelligence: 10, Piety: 10, Vitality: 10, Agility: 10, Luck: 10,
}

func caster(level int) *combat.Combatant {
	return combat.NewPlayer("mage", "Mage", combat.ClassMage, level, 12, average)
}

func ogre(level, hp int) *combat.Combatant {
	return combat.NewMonster("ogre", "Ogre", level, hp, average, combat.MonsterTraits{})
}

func spell(effect combat.Effect, d combat.Dice) *combat.Spell {
	return &combat.Spell{ID: string(effect), Name: string(effect), School: combat.SchoolArcane, Level: 1, Effect: effect, Dice: d}
}

func TestExecutor_Registry(t *testing.T) {
	empty := spelleffect.NewEmptyExecutor()
	assert.False(t, empty.Ready())

	outcome, err := empty.Execute(context.Background(), &interfaces.EffectRequest{Spell: spell(combat.EffectUtility, combat.Dice{}), Caster: caster(1)})
	require.NoError(t, err)
	assert.Equal(t, "utility has no effect", outcome.Message)

	full := spelleffect.NewExecutor(&spelleffect.ExecutorConfig{Roller: mockdice.NewManualMockRoller()})
	assert.True(t, full.Ready())
	for _, effect := range []combat.Effect{
		combat.EffectDamage, combat.EffectHeal, combat.EffectBuff,
		combat.EffectProtection, combat.EffectControl, combat.EffectUtility,
		combat.EffectDispel, combat.EffectConcealment, combat.EffectResurrection,
	} {
		assert.True(t, full.Has(effect), "missing %s", effect)
	}
}

func TestDamage(t *testing.T) {
	tests := []struct {
		name     string
		row      combat.Row
		rolls    []int
		expected int
	}{
		{name: "front row", row: combat.RowFront, rolls: []int{4, 3}, expected: 10},
		{name: "back row halves", row: combat.RowBack, rolls: []int{4, 3}, expected: 5},
		{name: "minimum one", row: combat.RowBack, rolls: []int{1, 1}, expected: 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			roller := mockdice.NewManualMockRoller()
			roller.SetRolls(tt.rolls)
			exec := spelleffect.NewExecutor(&spelleffect.ExecutorConfig{Roller: roller})
			level := 3
			if tt.expected == 1 {
				level = 0
			}
			target := ogre(2, 30)

			outcome, err := exec.Execute(context.Background(), &interfaces.EffectRequest{
				Spell:     spell(combat.EffectDamage, combat.Dice{Count: 2, Sides: 4}),
				Caster:    caster(level),
				Target:    target,
				TargetRow: tt.row,
			})
			require.NoError(t, err)

			assert.Equal(t, tt.expected, outcome.Amount)
			assert.Equal(t, 30-tt.expected, target.HP)
		})
	}
}

func TestHeal(t *testing.T) {
	roller := mockdice.NewManualMockRoller()
	roller.SetRolls([]int{8})
	exec := spelleffect.NewExecutor(&spelleffect.ExecutorConfig{Roller: roller})
	friend := combat.NewPlayer("f", "Fighter", combat.ClassFighter, 2, 20, average)
	friend.ApplyDamage(20)
	require.Equal(t, combat.StatusUnconscious, friend.Status)

	outcome, err := exec.Execute(context.Background(), &interfaces.EffectRequest{
		Spell:  spell(combat.EffectHeal, combat.Dice{Count: 1, Sides: 8}),
		Caster: caster(2),
		Target: friend,
	})
	require.NoError(t, err)

	assert.Equal(t, 10, outcome.Amount)
	assert.Equal(t, 10, friend.HP)
	assert.Equal(t, combat.StatusOK, friend.Status)
}

func TestHeal_CapsAtMax(t *testing.T) {
	roller := mockdice.NewManualMockRoller()
	roller.SetRolls([]int{8})
	exec := spelleffect.NewExecutor(&spelleffect.ExecutorConfig{Roller: roller})
	self := caster(4)
	self.ApplyDamage(3)

	outcome, err := exec.Execute(context.Background(), &interfaces.EffectRequest{
		Spell:  spell(combat.EffectHeal, combat.Dice{Count: 1, Sides: 8}),
		Caster: self,
	})
	require.NoError(t, err)

	assert.Equal(t, 3, outcome.Amount)
	assert.Equal(t, self.MaxHP, self.HP)
}

func TestBuffAndProtection(t *testing.T) {
	exec := spelleffect.NewExecutor(&spelleffect.ExecutorConfig{Roller: mockdice.NewManualMockRoller()})
	priest := caster(5)
	friend := combat.NewPlayer("f", "Fighter", combat.ClassFighter, 2, 20, average)

	outcome, err := exec.Execute(context.Background(), &interfaces.EffectRequest{
		Spell: spell(combat.EffectBuff, combat.Dice{}), Caster: priest, Target: friend,
	})
	require.NoError(t, err)
	assert.Equal(t, combat.ConditionBlessed, outcome.Condition)
	blessed := friend.Condition(combat.ConditionBlessed)
	require.NotNil(t, blessed)
	assert.Equal(t, 4, blessed.RoundsLeft)
	assert.Equal(t, 1, friend.ConditionAttackBonus())

	_, err = exec.Execute(context.Background(), &interfaces.EffectRequest{
		Spell: spell(combat.EffectProtection, combat.Dice{}), Caster: priest,
	})
	require.NoError(t, err)
	assert.True(t, priest.HasCondition(combat.ConditionShielded))
	assert.Equal(t, 2, priest.ConditionACBonus())
}

func TestControl(t *testing.T) {
	t.Run("target falls asleep", func(t *testing.T) {
		roller := mockdice.NewManualMockRoller()
		roller.SetRolls([]int{9})
		target := ogre(2, 20)

		outcome, err := spelleffect.NewExecutor(&spelleffect.ExecutorConfig{Roller: roller}).Execute(context.Background(), &interfaces.EffectRequest{
			Spell: spell(combat.EffectControl, combat.Dice{}), Caster: caster(2), Target: target,
		})
		require.NoError(t, err)

		assert.False(t, outcome.Resisted)
		assert.True(t, target.HasCondition(combat.ConditionAsleep))
	})

	t.Run("target saves", func(t *testing.T) {
		roller := mockdice.NewManualMockRoller()
		roller.SetRolls([]int{10})
		target := ogre(2, 20)

		outcome, err := spelleffect.NewExecutor(&spelleffect.ExecutorConfig{Roller: roller}).Execute(context.Background(), &interfaces.EffectRequest{
			Spell: spell(combat.EffectControl, combat.Dice{}), Caster: caster(2), Target: target,
		})
		require.NoError(t, err)

		assert.True(t, outcome.Resisted)
		assert.False(t, target.HasCondition(combat.ConditionAsleep))
	})
}

func TestDispel(t *testing.T) {
	exec := spelleffect.NewExecutor(&spelleffect.ExecutorConfig{Roller: mockdice.NewManualMockRoller()})

	t.Run("destroys weaker undead", func(t *testing.T) {
		zombie := combat.NewMonster("z", "Zombie", 2, 15, average, combat.MonsterTraits{Undead: true})

		outcome, err := exec.Execute(context.Background(), &interfaces.EffectRequest{
			Spell: spell(combat.EffectDispel, combat.Dice{}), Caster: caster(3), Target: zombie,
		})
		require.NoError(t, err)

		assert.True(t, outcome.Destroyed)
		assert.True(t, zombie.IsDead())
		assert.Equal(t, 0, zombie.HP)
	})

	t.Run("strips timed conditions", func(t *testing.T) {
		target := ogre(5, 20)
		target.AddCondition(&combat.Condition{Key: combat.ConditionShielded, RoundsLeft: 3, ACBonus: 2})
		target.AddCondition(&combat.Condition{Key: combat.ConditionConfused, RoundsLeft: combat.Permanent})

		outcome, err := exec.Execute(context.Background(), &interfaces.EffectRequest{
			Spell: spell(combat.EffectDispel, combat.Dice{}), Caster: caster(3), Target: target,
		})
		require.NoError(t, err)

		assert.Equal(t, []combat.ConditionKey{combat.ConditionShielded}, outcome.Removed)
		assert.True(t, target.HasCondition(combat.ConditionConfused))
		assert.False(t, target.IsDead())
	})
}

func TestConcealment(t *testing.T) {
	self := caster(1)

	outcome, err := spelleffect.NewExecutor(&spelleffect.ExecutorConfig{Roller: mockdice.NewManualMockRoller()}).Execute(context.Background(), &interfaces.EffectRequest{
		Spell: spell(combat.EffectConcealment, combat.Dice{}), Caster: self,
	})
	require.NoError(t, err)

	assert.Equal(t, combat.ConditionConcealed, outcome.Condition)
	assert.Equal(t, 3, self.Condition(combat.ConditionConcealed).RoundsLeft)
}

func TestResurrection(t *testing.T) {
	exec := spelleffect.NewExecutor(&spelleffect.ExecutorConfig{Roller: mockdice.NewManualMockRoller()})
	fallen := combat.NewPlayer("f", "Fighter", combat.ClassFighter, 2, 20, average)
	fallen.Kill()

	outcome, err := exec.Execute(context.Background(), &interfaces.EffectRequest{
		Spell: spell(combat.EffectResurrection, combat.Dice{}), Caster: caster(7), Target: fallen,
	})
	require.NoError(t, err)

	assert.True(t, outcome.Revived)
	assert.Equal(t, 1, fallen.HP)
	assert.Equal(t, combat.StatusOK, fallen.Status)

	again, err := exec.Execute(context.Background(), &interfaces.EffectRequest{
		Spell: spell(combat.EffectResurrection, combat.Dice{}), Caster: caster(7), Target: fallen,
	})
	require.NoError(t, err)
	assert.False(t, again.Revived)
}

func TestResurrection_MonstersStayDown(t *testing.T) {
	exec := spelleffect.NewExecutor(&spelleffect.ExecutorConfig{Roller: mockdice.NewManualMockRoller()})
	corpse := ogre(3, 30)
	corpse.Kill()

	outcome, err := exec.Execute(context.Background(), &interfaces.EffectRequest{
		Spell: spell(combat.EffectResurrection, combat.Dice{}), Caster: caster(7), Target: corpse,
	})
	require.NoError(t, err)

	assert.False(t, outcome.Revived)
	assert.Equal(t, "Ogre cannot be raised", outcome.Message)
	assert.Equal(t, 0, corpse.HP)
	assert.True(t, corpse.IsDead())
}
