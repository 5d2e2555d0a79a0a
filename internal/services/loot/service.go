package loot

//go:generate mockgen -destination=mock/mock_service.go -package=mockloot -source=service.go

import (
	"context"
	"log"
	"strings"

	"github.com/KirkDiggler/dungeon-combat/internal/clients/dnd5e"
	"github.com/KirkDiggler/dungeon-combat/internal/dice"
	"github.com/KirkDiggler/dungeon-combat/internal/domain/combat"
	combaterr "github.com/KirkDiggler/dungeon-combat/internal/errors"
)

// EquipmentChance is the percent chance a drop comes from the SRD equipment list
const EquipmentChance = 20

// Service generates loot for defeated enemies
type Service interface {
	// GenerateLoot returns count items suited to the given level
	GenerateLoot(ctx context.Context, level, count int) ([]*combat.Item, error)
}

// entry is one row of a loot table
type entry struct {
	name  string
	value int
}

var tables = []struct {
	maxLevel int
	entries  []entry
}{
	{maxLevel: 2, entries: []entry{
		{"healing potion", 25},
		{"torch", 1},
		{"rations", 2},
		{"dagger", 2},
	}},
	{maxLevel: 5, entries: []entry{
		{"healing potion", 25},
		{"greater healing potion", 75},
		{"antitoxin", 50},
		{"alchemist's fire", 50},
	}},
	{maxLevel: 0, entries: []entry{
		{"greater healing potion", 75},
		{"superior healing potion", 250},
		{"potion of speed", 500},
		{"potion of giant strength", 500},
	}},
}

type service struct {
	dndClient dnd5e.Client
	roller    dice.Roller
}

// ServiceConfig holds configuration for the service
type ServiceConfig struct {
	DNDClient dnd5e.Client // Optional - tables only if nil
	Roller    dice.Roller
}

// NewService creates a new loot service
func NewService(cfg *ServiceConfig) Service {
	svc := &service{}

	if cfg != nil {
		svc.dndClient = cfg.DNDClient
		svc.roller = cfg.Roller
	}
	if svc.roller == nil {
		svc.roller = dice.NewRandomRoller()
	}

	return svc
}

// GenerateLoot returns count items suited to the given level
func (s *service) GenerateLoot(ctx context.Context, level, count int) ([]*combat.Item, error) {
	if level < 1 {
		return nil, combaterr.InvalidArgumentf("level must be positive, got %d", level)
	}
	if count < 0 {
		return nil, combaterr.InvalidArgumentf("count must not be negative, got %d", count)
	}

	items := make([]*combat.Item, 0, count)
	for i := 0; i < count; i++ {
		item, err := s.generateItem(ctx, level)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}

func (s *service) generateItem(ctx context.Context, level int) (*combat.Item, error) {
	if s.dndClient != nil {
		fromAPI, err := dice.Chance(s.roller, EquipmentChance)
		if err != nil {
			return nil, combaterr.WrapWithCode(err, combaterr.CodeInternal, "failed to roll loot source")
		}
		if fromAPI {
			item, err := s.randomEquipment(ctx, level)
			if err == nil {
				return item, nil
			}
			log.Printf("Loot: falling back to tables: %v", err)
		}
	}

	entries := tableFor(level)
	pick, err := dice.Pick(s.roller, len(entries))
	if err != nil {
		return nil, combaterr.WrapWithCode(err, combaterr.CodeInternal, "failed to roll loot table")
	}
	chosen := entries[pick]

	return &combat.Item{
		Key:   slug(chosen.name),
		Name:  chosen.name,
		Kind:  combat.ItemConsumable,
		Value: chosen.value,
	}, nil
}

// randomEquipment picks from the SRD equipment list
func (s *service) randomEquipment(_ context.Context, level int) (*combat.Item, error) {
	equipment, err := s.dndClient.ListEquipment()
	if err != nil {
		return nil, err
	}
	if len(equipment) == 0 {
		return nil, combaterr.NotFoundf("no equipment available")
	}

	pick, err := dice.Pick(s.roller, len(equipment))
	if err != nil {
		return nil, combaterr.WrapWithCode(err, combaterr.CodeInternal, "failed to roll equipment")
	}
	chosen := equipment[pick]

	return &combat.Item{
		Key:   chosen.Key,
		Name:  chosen.Name,
		Kind:  combat.ItemEquipment,
		Value: level * 10,
	}, nil
}

func tableFor(level int) []entry {
	for _, t := range tables {
		if t.maxLevel == 0 || level <= t.maxLevel {
			return t.entries
		}
	}
	return tables[len(tables)-1].entries
}

func slug(name string) string {
	name = strings.ToLower(name)
	name = strings.ReplaceAll(name, "'", "")
	return strings.ReplaceAll(name, " ", "-")
}
