package party

import (
	"sync"

	"github.com/KirkDiggler/dungeon-combat/internal/domain/combat"
	combaterr "github.com/KirkDiggler/dungeon-combat/internal/errors"
)

// Roster is an in-memory party. Phased out members keep their membership but
// are hidden from LivingMembers.
type Roster struct {
	mu        sync.RWMutex
	members   []*combat.Combatant
	phasedOut map[string]bool
}

// NewRoster creates a roster in marching order
func NewRoster(members ...*combat.Combatant) (*Roster, error) {
	r := &Roster{phasedOut: make(map[string]bool)}
	for _, m := range members {
		if err := r.Add(m); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// Add appends a player to the end of the marching order
func (r *Roster) Add(c *combat.Combatant) error {
	if c == nil {
		return combaterr.InvalidArgument("member is required")
	}
	if !c.IsPlayer() {
		return combaterr.InvalidArgumentf("%s is not a player", c.ID)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	for _, m := range r.members {
		if m.ID == c.ID {
			return combaterr.Validationf("%s is already in the party", c.ID)
		}
	}
	r.members = append(r.members, c)
	return nil
}

// Get returns a member by ID
func (r *Roster) Get(id string) (*combat.Combatant, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, m := range r.members {
		if m.ID == id {
			return m, nil
		}
	}
	return nil, combaterr.NotFoundf("member %s not found", id)
}

// Members returns every member in marching order
func (r *Roster) Members() []*combat.Combatant {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*combat.Combatant, len(r.members))
	copy(out, r.members)
	return out
}

// LivingMembers returns standing members that are not phased out
func (r *Roster) LivingMembers() []*combat.Combatant {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []*combat.Combatant
	for _, m := range r.members {
		if m.IsAlive() && !r.phasedOut[m.ID] {
			out = append(out, m)
		}
	}
	return out
}

// AverageLevel is the mean level of all members
func (r *Roster) AverageLevel() float64 {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if len(r.members) == 0 {
		return 0
	}
	total := 0
	for _, m := range r.members {
		total += m.Level
	}
	return float64(total) / float64(len(r.members))
}

// Size is the membership count, phased out members included
func (r *Roster) Size() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.members)
}

// PhaseOut hides a member from active rosters
func (r *Roster) PhaseOut(id string) error {
	if _, err := r.Get(id); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.phasedOut[id] = true
	return nil
}

// PhaseIn returns a phased out member to active rosters
func (r *Roster) PhaseIn(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.phasedOut, id)
}

// IsPhasedOut reports whether a member is hidden
func (r *Roster) IsPhasedOut(id string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.phasedOut[id]
}
