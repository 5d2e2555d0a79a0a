package services

import (
	"github.com/KirkDiggler/dungeon-combat/internal/clients/dnd5e"
	"github.com/KirkDiggler/dungeon-combat/internal/dice"
	"github.com/KirkDiggler/dungeon-combat/internal/interfaces"
	"github.com/KirkDiggler/dungeon-combat/internal/repositories/combatants"
	"github.com/KirkDiggler/dungeon-combat/internal/services/encounter"
	"github.com/KirkDiggler/dungeon-combat/internal/services/items"
	"github.com/KirkDiggler/dungeon-combat/internal/services/loot"
	"github.com/KirkDiggler/dungeon-combat/internal/services/spelleffect"
	"github.com/KirkDiggler/dungeon-combat/internal/services/terminology"
	"github.com/KirkDiggler/dungeon-combat/internal/uuid"
)

// Provider holds all service instances
type Provider struct {
	EncounterManager *encounter.Manager
	LootService      loot.Service
	SpellExecutor    *spelleffect.Executor
	ItemHandler      *items.Handler
	Combatants       combatants.Repository
}

// ProviderConfig holds configuration for creating services
type ProviderConfig struct {
	Roller      dice.Roller
	DNDClient   dnd5e.Client // Optional - loot tables only if nil
	Repository  combatants.Repository
	Bus         interfaces.NotificationBus
	Terminology interfaces.TerminologyProvider

	UUIDGenerator uuid.Generator
	FrontCapacity int
	BackCapacity  int
}

// NewProvider creates a new service provider with all services initialized
func NewProvider(cfg *ProviderConfig) *Provider {
	if cfg == nil {
		cfg = &ProviderConfig{}
	}

	roller := cfg.Roller
	if roller == nil {
		roller = dice.NewRandomRoller()
	}

	// Use in-memory repository if none provided
	repo := cfg.Repository
	if repo == nil {
		repo = combatants.NewInMemoryRepository()
	}

	terms := cfg.Terminology
	if terms == nil {
		terms = terminology.Default()
	}

	lootService := loot.NewService(&loot.ServiceConfig{
		DNDClient: cfg.DNDClient,
		Roller:    roller,
	})
	spells := spelleffect.NewExecutor(&spelleffect.ExecutorConfig{Roller: roller})
	itemHandler := items.NewHandler(&items.HandlerConfig{Roller: roller})

	manager := encounter.NewManager(&encounter.ManagerConfig{
		Session: encounter.SessionConfig{
			Roller:        roller,
			Persistence:   repo,
			Bus:           cfg.Bus,
			Loot:          lootService,
			Spells:        spells,
			Items:         itemHandler,
			Terminology:   terms,
			FrontCapacity: cfg.FrontCapacity,
			BackCapacity:  cfg.BackCapacity,
		},
		UUIDGenerator: cfg.UUIDGenerator,
	})

	return &Provider{
		EncounterManager: manager,
		LootService:      lootService,
		SpellExecutor:    spells,
		ItemHandler:      itemHandler,
		Combatants:       repo,
	}
}
