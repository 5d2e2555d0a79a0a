package initiative

import (
	"math"
	"sort"

	"github.com/KirkDiggler/dungeon-combat/internal/dice"
	"github.com/KirkDiggler/dungeon-combat/internal/domain/combat"
	combaterr "github.com/KirkDiggler/dungeon-combat/internal/errors"
)

// classBonus is the fixed initiative bonus table. Unlisted classes and monsters get 0.
var classBonus = map[combat.Class]int{
	combat.ClassFighter: 1,
	combat.ClassThief:   2,
	combat.ClassNinja:   4,
	combat.ClassMage:    -1,
	combat.ClassPriest:  -1,
	combat.ClassLord:    1,
	combat.ClassSamurai: 2,
	combat.ClassBishop:  0,
}

// ClassBonus returns the initiative bonus for a class
func ClassBonus(class combat.Class) int {
	return classBonus[class]
}

// Engine computes turn order and surprise
type Engine struct {
	roller dice.Roller
}

// EngineConfig holds configuration for the engine
type EngineConfig struct {
	Roller dice.Roller
}

// NewEngine creates an initiative engine
func NewEngine(cfg *EngineConfig) *Engine {
	if cfg == nil || cfg.Roller == nil {
		panic("dice roller is required")
	}
	return &Engine{roller: cfg.Roller}
}

// Roll computes agility + class bonus + d6
func (e *Engine) Roll(c *combat.Combatant) (int, error) {
	d6, err := dice.D6(e.roller)
	if err != nil {
		return 0, combaterr.WrapWithCode(err, combaterr.CodeInternal, "failed to roll initiative")
	}
	return c.Attributes.Agility + ClassBonus(c.Class()) + d6, nil
}

// Order rolls for every combatant in input order and sorts descending.
// Ties keep their input order.
func (e *Engine) Order(combatants []*combat.Combatant) ([]*combat.TurnEntry, error) {
	entries := make([]*combat.TurnEntry, 0, len(combatants))
	for _, c := range combatants {
		score, err := e.Roll(c)
		if err != nil {
			return nil, err
		}
		entries = append(entries, &combat.TurnEntry{
			Combatant:  c,
			Initiative: score,
			Side:       c.Side(),
		})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Initiative > entries[j].Initiative
	})

	return entries, nil
}

// Surprise is the result of the surprise check
type Surprise struct {
	Chance       int
	Triggered    bool
	Favored      combat.Side
	PartyAverage float64
	EnemyAverage float64
}

// SurpriseChance compares average agility of the living members of each side.
// The chance is |difference| x 2 percent, clamped to [0, 100], and favors the
// side with the higher average.
func SurpriseChance(party, enemies []*combat.Combatant) *Surprise {
	s := &Surprise{
		PartyAverage: averageAgility(party),
		EnemyAverage: averageAgility(enemies),
	}

	diff := s.PartyAverage - s.EnemyAverage
	chance := int(math.Floor(math.Abs(diff) * 2))
	if chance > 100 {
		chance = 100
	}
	s.Chance = chance

	switch {
	case diff > 0:
		s.Favored = combat.SideParty
	case diff < 0:
		s.Favored = combat.SideEnemy
	default:
		s.Chance = 0
	}
	return s
}

// CheckSurprise rolls the surprise check. No die is rolled when the chance is zero.
func (e *Engine) CheckSurprise(party, enemies []*combat.Combatant) (*Surprise, error) {
	s := SurpriseChance(party, enemies)
	triggered, err := dice.Chance(e.roller, s.Chance)
	if err != nil {
		return nil, combaterr.WrapWithCode(err, combaterr.CodeInternal, "failed to roll surprise")
	}
	s.Triggered = triggered
	if !triggered {
		s.Favored = combat.SideNone
	}
	return s, nil
}

// Forced builds a surprise result from an override without rolling
func Forced(mode combat.SurpriseMode) *Surprise {
	switch mode {
	case combat.SurpriseParty:
		return &Surprise{Chance: 100, Triggered: true, Favored: combat.SideParty}
	case combat.SurpriseEnemies:
		return &Surprise{Chance: 100, Triggered: true, Favored: combat.SideEnemy}
	default:
		return &Surprise{}
	}
}

func averageAgility(members []*combat.Combatant) float64 {
	total, count := 0, 0
	for _, m := range members {
		if !m.IsAlive() {
			continue
		}
		total += m.Attributes.Agility
		count++
	}
	if count == 0 {
		return 0
	}
	return float64(total) / float64(count)
}
