package resolver

import (
	"github.com/KirkDiggler/dungeon-combat/internal/domain/combat"
	"github.com/KirkDiggler/dungeon-combat/internal/services/formation"
)

// State is the slice of session state an action resolves against
type State struct {
	SessionID string
	Round     int
	Wave      int
	Field     *formation.Battlefield
	// Active is the active combatant list, escaped combatants excluded
	Active []*combat.Combatant
}

// Find returns the active combatant with the given ID
func (s *State) Find(id string) *combat.Combatant {
	if id == "" {
		return nil
	}
	for _, c := range s.Active {
		if c.ID == id {
			return c
		}
	}
	return nil
}

// LivingOpponents returns the active, standing combatants opposing side
func (s *State) LivingOpponents(side combat.Side) []*combat.Combatant {
	var out []*combat.Combatant
	for _, c := range s.Active {
		if c.Side() == side.Opponent() && c.IsAlive() {
			out = append(out, c)
		}
	}
	return out
}

func (s *State) rowOf(c *combat.Combatant) combat.Row {
	if s.Field == nil || c == nil {
		return combat.RowFront
	}
	return s.Field.RowOf(c)
}
