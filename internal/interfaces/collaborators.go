package interfaces

//go:generate mockgen -destination=mock/mock_collaborators.go -package=mockinterfaces -source=collaborators.go

import (
	"context"

	"github.com/KirkDiggler/dungeon-combat/internal/domain/combat"
	"github.com/KirkDiggler/dungeon-combat/internal/events"
)

// PartyProvider exposes the party roster. Combat reads it, it never edits membership.
type PartyProvider interface {
	// Members returns every member in marching order, living or not
	Members() []*combat.Combatant

	// LivingMembers returns the members able to fight, in marching order
	LivingMembers() []*combat.Combatant

	// AverageLevel is the mean level across all members
	AverageLevel() float64

	// Size is the membership count
	Size() int
}

// PhaseOuter is implemented by rosters that track phased out members
type PhaseOuter interface {
	PhaseOut(combatantID string) error
}

// PersistenceSink stores a mutated combatant. Failures are logged by the caller and never
// alter combat state.
type PersistenceSink interface {
	Persist(ctx context.Context, combatant *combat.Combatant) error
}

// NotificationBus receives combat events
type NotificationBus interface {
	Publish(event *events.Event) error
}

// LootGenerator produces items for defeated enemies
type LootGenerator interface {
	GenerateLoot(ctx context.Context, level, count int) ([]*combat.Item, error)
}

// EffectRequest carries the inputs of one spell effect
type EffectRequest struct {
	Spell  *combat.Spell
	Caster *combat.Combatant
	Target *combat.Combatant
	// TargetRow is the row the target stands in, front when there is no target
	TargetRow combat.Row
}

// SpellEffectExecutor resolves the effect variant named by a spell
type SpellEffectExecutor interface {
	// Ready reports whether spells can be cast at all
	Ready() bool

	Execute(ctx context.Context, req *EffectRequest) (*combat.EffectOutcome, error)
}

// ItemEffectHandler applies the effect of a used item
type ItemEffectHandler interface {
	ApplyItem(ctx context.Context, user, target *combat.Combatant, item *combat.Item) (string, error)
}

// TerminologyProvider maps canonical keys to display strings
type TerminologyProvider interface {
	Term(key string) string
}
