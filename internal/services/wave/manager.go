package wave

import (
	"context"
	"fmt"
	"log"
	"math"

	"github.com/KirkDiggler/dungeon-combat/internal/dice"
	"github.com/KirkDiggler/dungeon-combat/internal/domain/combat"
	combaterr "github.com/KirkDiggler/dungeon-combat/internal/errors"
	"github.com/KirkDiggler/dungeon-combat/internal/interfaces"
)

const (
	// MaxLootChance caps the per-enemy loot percentage
	MaxLootChance = 80
	// FallbackCurrencyPerLevel is the value of the currency drop used when loot is unavailable
	FallbackCurrencyPerLevel = 5
)

// Manager tracks the ordered enemy waves of one encounter
type Manager struct {
	roller dice.Roller
	loot   interfaces.LootGenerator

	waves   []*combat.Wave
	index   int
	escaped map[string]bool
}

// Config holds configuration for the manager
type Config struct {
	Roller dice.Roller
	// Loot is optional; a currency drop is used without it
	Loot interfaces.LootGenerator
}

// NewManager creates a wave manager
func NewManager(cfg *Config) *Manager {
	if cfg == nil || cfg.Roller == nil {
		panic("dice roller is required")
	}
	return &Manager{
		roller:  cfg.Roller,
		loot:    cfg.Loot,
		escaped: make(map[string]bool),
	}
}

// Load replaces the waves and rewinds to the first
func (m *Manager) Load(waves []*combat.Wave) error {
	if len(waves) == 0 {
		return combaterr.InvalidArgument("at least one wave is required")
	}
	for i, w := range waves {
		if w == nil || len(w.Enemies()) == 0 {
			return combaterr.Validationf("wave %d has no enemies", i+1)
		}
		for _, e := range w.Enemies() {
			if e.IsPlayer() {
				return combaterr.Validationf("wave %d contains player %s", i+1, e.ID)
			}
		}
	}

	m.waves = waves
	m.index = 0
	m.escaped = make(map[string]bool)
	return nil
}

// Current returns the active wave
func (m *Manager) Current() *combat.Wave {
	if m.index >= len(m.waves) {
		return nil
	}
	return m.waves[m.index]
}

// Number is the 1-based number of the active wave
func (m *Manager) Number() int {
	return m.index + 1
}

// Count is the number of waves
func (m *Manager) Count() int {
	return len(m.waves)
}

// Cleared counts the waves fully defeated
func (m *Manager) Cleared() int {
	cleared := m.index
	if m.IsCurrentWaveDefeated() {
		cleared++
	}
	return cleared
}

// HasNext reports whether another wave follows the active one
func (m *Manager) HasNext() bool {
	return m.index+1 < len(m.waves)
}

// MarkEscaped records an enemy that left combat. It no longer counts toward
// clearing the wave nor toward rewards.
func (m *Manager) MarkEscaped(id string) {
	m.escaped[id] = true
}

// IsCurrentWaveDefeated reports whether no enemy of the active wave still stands
func (m *Manager) IsCurrentWaveDefeated() bool {
	w := m.Current()
	if w == nil {
		return false
	}
	for _, e := range w.Enemies() {
		if e.IsAlive() && !m.escaped[e.ID] {
			return false
		}
	}
	return true
}

// AdvanceWave moves to the next wave and returns it, or nil when none remain.
// The index stays on the last wave once the waves are exhausted.
func (m *Manager) AdvanceWave() *combat.Wave {
	if !m.HasNext() {
		return nil
	}
	m.index++
	return m.waves[m.index]
}

// Defeated returns the fallen enemies of every wave reached so far
func (m *Manager) Defeated() []*combat.Combatant {
	var out []*combat.Combatant
	for i := 0; i <= m.index && i < len(m.waves); i++ {
		for _, e := range m.waves[i].Enemies() {
			if !e.IsAlive() && !m.escaped[e.ID] {
				out = append(out, e)
			}
		}
	}
	return out
}

// LootChance is min(80, defeated x 15 + average level x 5) percent
func LootChance(defeated int, averageLevel float64) int {
	chance := defeated*15 + int(math.Floor(averageLevel*5))
	if chance > MaxLootChance {
		return MaxLootChance
	}
	return chance
}

// Rewards aggregates experience, gold and loot over every defeated enemy.
// Gold is rolled first, one d6 per enemy, then one loot check per enemy.
func (m *Manager) Rewards(ctx context.Context) (*combat.Rewards, error) {
	defeated := m.Defeated()
	rewards := &combat.Rewards{
		Loot:            []*combat.Item{},
		DefeatedEnemies: len(defeated),
	}
	if len(defeated) == 0 {
		return rewards, nil
	}

	levels := 0
	for _, e := range defeated {
		rewards.Experience += e.Monster.Experience()
		levels += e.Level

		d6, err := dice.D6(m.roller)
		if err != nil {
			return nil, combaterr.WrapWithCode(err, combaterr.CodeInternal, "failed to roll gold")
		}
		rewards.Gold += d6 * e.Level
	}

	average := float64(levels) / float64(len(defeated))
	lootLevel := int(math.Round(average))
	if lootLevel < 1 {
		lootLevel = 1
	}
	chance := LootChance(len(defeated), average)

	for range defeated {
		drop, err := dice.Chance(m.roller, chance)
		if err != nil {
			return nil, combaterr.WrapWithCode(err, combaterr.CodeInternal, "failed to roll loot")
		}
		if !drop {
			continue
		}
		rewards.Loot = append(rewards.Loot, m.generate(ctx, lootLevel)...)
	}

	return rewards, nil
}

// generate pulls one drop from the loot generator, degrading to currency
func (m *Manager) generate(ctx context.Context, level int) []*combat.Item {
	if m.loot != nil {
		items, err := m.loot.GenerateLoot(ctx, level, 1)
		if err == nil && len(items) > 0 {
			return items
		}
		if err != nil {
			log.Printf("WaveManager: loot generator failed, using currency: %v", err)
		}
	}

	return []*combat.Item{{
		Key:   "gold-coins",
		Name:  fmt.Sprintf("%d gold coins", level*FallbackCurrencyPerLevel),
		Kind:  combat.ItemCurrency,
		Value: level * FallbackCurrencyPerLevel,
	}}
}
