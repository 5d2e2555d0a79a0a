package testutils

import "github.com/KirkDiggler/dungeon-combat/internal/domain/combat"

// AverageAttributes is a stat block of tens: every modifier is zero
var AverageAttributes = combat.Attributes{
	Strength:     10,
	Intelligence: 10,
	Piety:        10,
	Vitality:     10,
	Agility:      10,
	Luck:         10,
}

// CreateTestFighter creates a level 1 fighter with a longsword
func CreateTestFighter(id, name string, hp int) *combat.Combatant {
	c := combat.NewPlayer(id, name, combat.ClassFighter, 1, hp, AverageAttributes)
	c.Equipment.Weapon = &combat.Weapon{
		Key:    "longsword",
		Name:   "Longsword",
		Range:  combat.AttackMelee,
		Damage: combat.Dice{Count: 1, Sides: 10},
	}
	return c
}

// CreateTestMonster creates a level 1 front-row monster hitting for 1d4
func CreateTestMonster(id, name string, hp int) *combat.Combatant {
	return combat.NewMonster(id, name, 1, hp, AverageAttributes, combat.MonsterTraits{
		AttackBonus: 1,
		DamageDice:  combat.Dice{Count: 1, Sides: 4},
	})
}

// CreateTestOutcome creates a finished victory with one defeated monster
func CreateTestOutcome(sessionID string) *combat.Outcome {
	return &combat.Outcome{
		SessionID: sessionID,
		Kind:      combat.OutcomeVictory,
		Winner:    combat.SideParty,
		Rewards: &combat.Rewards{
			Experience:      10,
			Gold:            3,
			Loot:            []*combat.Item{{Key: "potion-of-healing", Name: "Potion of Healing", Kind: combat.ItemConsumable, Value: 50}},
			DefeatedEnemies: 1,
		},
		Disconnected: []*combat.Combatant{},
		Rounds:       2,
		WavesCleared: 1,
		Log:          []string{"Round 1: Combat begins", "Round 2: Victory"},
	}
}
