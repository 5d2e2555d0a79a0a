package main

import (
	"fmt"
	"strings"

	"github.com/KirkDiggler/dungeon-combat/internal/domain/combat"
	"github.com/KirkDiggler/dungeon-combat/internal/services/party"
)

var (
	spellHalito = &combat.Spell{
		ID: "halito", Name: "Halito", School: combat.SchoolArcane, Level: 1,
		Effect: combat.EffectDamage, Dice: combat.Dice{Count: 1, Sides: 8},
	}
	spellKatino = &combat.Spell{
		ID: "katino", Name: "Katino", School: combat.SchoolArcane, Level: 1,
		Effect: combat.EffectControl,
	}
	spellDios = &combat.Spell{
		ID: "dios", Name: "Dios", School: combat.SchoolDivine, Level: 1,
		Effect: combat.EffectHeal, Dice: combat.Dice{Count: 1, Sides: 8},
	}
	spellPorfic = &combat.Spell{
		ID: "porfic", Name: "Porfic", School: combat.SchoolDivine, Level: 1,
		Effect: combat.EffectProtection,
	}

	healingPotion = &combat.Item{Key: "healing-potion", Name: "Healing Potion", Kind: combat.ItemConsumable, Value: 50}
)

func newParty() (*party.Roster, error) {
	aldric := combat.NewPlayer("aldric", "Aldric", combat.ClassFighter, 3, 28,
		combat.Attributes{Strength: 16, Intelligence: 8, Piety: 9, Vitality: 15, Agility: 11, Luck: 10})
	aldric.Equipment = combat.Equipment{
		Weapon: &combat.Weapon{Key: "longsword", Name: "Longsword", Range: combat.AttackMelee, Damage: combat.Dice{Count: 1, Sides: 8}},
		Armor:  &combat.Armor{Key: "chain-mail", Name: "Chain Mail", ArmorBonus: 4},
		Shield: &combat.Shield{Key: "shield", Name: "Shield", ShieldBonus: 1},
	}

	brenna := combat.NewPlayer("brenna", "Brenna", combat.ClassLord, 3, 24,
		combat.Attributes{Strength: 15, Intelligence: 10, Piety: 13, Vitality: 13, Agility: 10, Luck: 11})
	brenna.Equipment = combat.Equipment{
		Weapon: &combat.Weapon{Key: "spear", Name: "Spear", Range: combat.AttackReach, Damage: combat.Dice{Count: 1, Sides: 6}},
		Armor:  &combat.Armor{Key: "scale-mail", Name: "Scale Mail", ArmorBonus: 3},
	}

	cedric := combat.NewPlayer("cedric", "Cedric", combat.ClassPriest, 3, 18,
		combat.Attributes{Strength: 11, Intelligence: 10, Piety: 16, Vitality: 12, Agility: 9, Luck: 10})
	cedric.Equipment = combat.Equipment{
		Weapon: &combat.Weapon{Key: "mace", Name: "Mace", Range: combat.AttackMelee, Damage: combat.Dice{Count: 1, Sides: 6}},
		Armor:  &combat.Armor{Key: "leather-armor", Name: "Leather Armor", ArmorBonus: 1},
	}
	cedric.Memorize(spellDios)
	cedric.Memorize(spellDios)
	cedric.Memorize(spellPorfic)

	dara := combat.NewPlayer("dara", "Dara", combat.ClassThief, 3, 15,
		combat.Attributes{Strength: 10, Intelligence: 11, Piety: 8, Vitality: 10, Agility: 17, Luck: 14})
	dara.Equipment = combat.Equipment{
		Weapon: &combat.Weapon{Key: "shortbow", Name: "Shortbow", Range: combat.AttackRanged, Damage: combat.Dice{Count: 1, Sides: 6}},
	}

	elwen := combat.NewPlayer("elwen", "Elwen", combat.ClassMage, 3, 12,
		combat.Attributes{Strength: 8, Intelligence: 17, Piety: 10, Vitality: 9, Agility: 12, Luck: 11})
	elwen.Equipment = combat.Equipment{
		Weapon: &combat.Weapon{Key: "dagger", Name: "Dagger", Range: combat.AttackMelee, Damage: combat.Dice{Count: 1, Sides: 4}},
	}
	elwen.Memorize(spellKatino)
	elwen.Memorize(spellHalito)
	elwen.Memorize(spellHalito)
	elwen.Memorize(spellHalito)

	return party.NewRoster(aldric, brenna, cedric, dara, elwen)
}

// waveSpec describes one wave as groups of identical monsters
type waveSpec struct {
	groups []groupSpec
}

type groupSpec struct {
	name   string
	count  int
	level  int
	hp     int
	traits combat.MonsterTraits
	weapon *combat.Weapon
}

func newWaves() []*waveSpec {
	bow := &combat.Weapon{Key: "shortbow", Name: "Shortbow", Range: combat.AttackRanged, Damage: combat.Dice{Count: 1, Sides: 6}}

	return []*waveSpec{
		{groups: []groupSpec{
			{name: "Kobold", count: 3, level: 1, hp: 5, traits: combat.MonsterTraits{ExperienceValue: 5, DamageDice: combat.Dice{Count: 1, Sides: 4}}},
		}},
		{groups: []groupSpec{
			{name: "Goblin", count: 2, level: 1, hp: 7, traits: combat.MonsterTraits{AttackBonus: 1, DamageDice: combat.Dice{Count: 1, Sides: 6}}},
			{name: "Goblin Archer", count: 2, level: 1, hp: 6, traits: combat.MonsterTraits{DamageDice: combat.Dice{Count: 1, Sides: 6}}, weapon: bow},
		}},
		{groups: []groupSpec{
			{name: "Ogre", count: 1, level: 3, hp: 30, traits: combat.MonsterTraits{ExperienceValue: 50, AttackBonus: 3, DamageDice: combat.Dice{Count: 2, Sides: 6}}},
			{name: "Skeleton", count: 2, level: 2, hp: 10, traits: combat.MonsterTraits{ExperienceValue: 15, AttackBonus: 2, DamageDice: combat.Dice{Count: 1, Sides: 6}, Undead: true, PreferredRow: combat.RowFront}},
		}},
	}
}

func buildWaves(specs []*waveSpec) []*combat.Wave {
	average := combat.Attributes{Strength: 10, Intelligence: 6, Piety: 6, Vitality: 10, Agility: 10, Luck: 8}

	waves := make([]*combat.Wave, 0, len(specs))
	for w, ws := range specs {
		wave := &combat.Wave{}
		for _, g := range ws.groups {
			group := &combat.Group{Name: g.name}
			for i := 0; i < g.count; i++ {
				id := fmt.Sprintf("w%d-%s-%d", w+1, slugify(g.name), i+1)
				name := g.name
				if g.count > 1 {
					name = fmt.Sprintf("%s %c", g.name, 'A'+i)
				}
				m := combat.NewMonster(id, name, g.level, g.hp, average, g.traits)
				m.Equipment.Weapon = g.weapon
				group.Members = append(group.Members, m)
			}
			wave.Groups = append(wave.Groups, group)
		}
		waves = append(waves, wave)
	}
	return waves
}

func slugify(name string) string {
	return strings.ToLower(strings.ReplaceAll(name, " ", "-"))
}
