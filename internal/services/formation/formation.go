package formation

import (
	"github.com/KirkDiggler/dungeon-combat/internal/domain/combat"
	combaterr "github.com/KirkDiggler/dungeon-combat/internal/errors"
)

const (
	DefaultFrontCapacity = 3
	DefaultBackCapacity  = 3

	// RangedAccuracyBonus is added to ranged attacks made from the back row
	RangedAccuracyBonus = 2
	// MeleeDamagePenalty is subtracted from melee damage dealt from the back row
	MeleeDamagePenalty = 2
)

// Priority is how likely a combatant is to be targeted
type Priority int

const (
	PriorityLow  Priority = 1
	PriorityHigh Priority = 2
)

// frontLiners prefer the front row, everybody else the back
var frontLiners = map[combat.Class]bool{
	combat.ClassFighter: true,
	combat.ClassNinja:   true,
	combat.ClassLord:    true,
	combat.ClassSamurai: true,
}

// DefaultRow returns a combatant's preferred row
func DefaultRow(c *combat.Combatant) combat.Row {
	if c.Monster != nil {
		if c.Monster.PreferredRow == combat.RowBack {
			return combat.RowBack
		}
		return combat.RowFront
	}
	if frontLiners[c.Class()] {
		return combat.RowFront
	}
	return combat.RowBack
}

// Formation places one side's combatants in a front and a back row
type Formation struct {
	frontCapacity int
	backCapacity  int
	front         []*combat.Combatant
	back          []*combat.Combatant
}

// New creates an empty formation with the given row capacities
func New(frontCapacity, backCapacity int) *Formation {
	return &Formation{
		frontCapacity: frontCapacity,
		backCapacity:  backCapacity,
	}
}

// NewDefault creates an empty 3/3 formation
func NewDefault() *Formation {
	return New(DefaultFrontCapacity, DefaultBackCapacity)
}

// Arrange places members by class affinity, spilling into the other row when
// the preferred one is full.
func (f *Formation) Arrange(members []*combat.Combatant) error {
	for _, member := range members {
		row := DefaultRow(member)
		if f.isFull(row) {
			row = other(row)
		}
		if err := f.Place(member, row); err != nil {
			return err
		}
	}
	return nil
}

// Place puts a combatant into a row
func (f *Formation) Place(c *combat.Combatant, row combat.Row) error {
	if c == nil {
		return combaterr.InvalidArgument("combatant is required")
	}
	if _, placed := f.RowOf(c.ID); placed {
		return combaterr.Validationf("%s is already placed", c.Name)
	}
	if f.isFull(row) {
		return combaterr.Validationf("%s row is full", row)
	}

	if row == combat.RowBack {
		f.back = append(f.back, c)
	} else {
		f.front = append(f.front, c)
	}
	return nil
}

// Remove takes a combatant out of the formation
func (f *Formation) Remove(id string) bool {
	var removed bool
	f.front, removed = without(f.front, id)
	if removed {
		return true
	}
	f.back, removed = without(f.back, id)
	return removed
}

// RowOf returns the row holding the combatant
func (f *Formation) RowOf(id string) (combat.Row, bool) {
	for _, c := range f.front {
		if c.ID == id {
			return combat.RowFront, true
		}
	}
	for _, c := range f.back {
		if c.ID == id {
			return combat.RowBack, true
		}
	}
	return "", false
}

func (f *Formation) Front() []*combat.Combatant { return f.front }
func (f *Formation) Back() []*combat.Combatant  { return f.back }

// Size returns the number of placed combatants
func (f *Formation) Size() int {
	return len(f.front) + len(f.back)
}

// FrontRowOpen reports whether no living combatant holds the front row
func (f *Formation) FrontRowOpen() bool {
	for _, c := range f.front {
		if c.IsAlive() {
			return false
		}
	}
	return true
}

// Validate enforces a non-empty formation, per-row capacity and single occupancy
func (f *Formation) Validate() error {
	if f.Size() == 0 {
		return combaterr.Validationf("formation is empty")
	}
	if len(f.front) > f.frontCapacity {
		return combaterr.Validationf("front row holds %d, capacity %d", len(f.front), f.frontCapacity)
	}
	if len(f.back) > f.backCapacity {
		return combaterr.Validationf("back row holds %d, capacity %d", len(f.back), f.backCapacity)
	}

	seen := make(map[string]combat.Row, f.Size())
	for _, c := range f.front {
		if _, dup := seen[c.ID]; dup {
			return combaterr.Validationf("%s appears twice in the front row", c.Name)
		}
		seen[c.ID] = combat.RowFront
	}
	for _, c := range f.back {
		if row, dup := seen[c.ID]; dup {
			return combaterr.Validationf("%s occupies both the %s and back rows", c.Name, row)
		}
		seen[c.ID] = combat.RowBack
	}
	return nil
}

// TargetPriority returns how attractive a combatant is as a target
func (f *Formation) TargetPriority(id string) Priority {
	if row, ok := f.RowOf(id); ok && row == combat.RowBack {
		return PriorityLow
	}
	return PriorityHigh
}

// Targets lists living combatants, high priority first
func (f *Formation) Targets() []*combat.Combatant {
	var out []*combat.Combatant
	for _, c := range f.front {
		if c.IsAlive() {
			out = append(out, c)
		}
	}
	for _, c := range f.back {
		if c.IsAlive() {
			out = append(out, c)
		}
	}
	return out
}

func (f *Formation) isFull(row combat.Row) bool {
	if row == combat.RowBack {
		return len(f.back) >= f.backCapacity
	}
	return len(f.front) >= f.frontCapacity
}

func other(row combat.Row) combat.Row {
	if row == combat.RowBack {
		return combat.RowFront
	}
	return combat.RowBack
}

func without(list []*combat.Combatant, id string) ([]*combat.Combatant, bool) {
	for i, c := range list {
		if c.ID == id {
			return append(list[:i:i], list[i+1:]...), true
		}
	}
	return list, false
}
