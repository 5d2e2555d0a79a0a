package combatants

import (
	"context"

	"github.com/KirkDiggler/dungeon-combat/internal/domain/combat"
)

// Repository stores combatant snapshots written during combat. It satisfies
// the encounter's persistence sink.
type Repository interface {
	Persist(ctx context.Context, c *combat.Combatant) error
	Get(ctx context.Context, id string) (*combat.Combatant, error)
	ListByKind(ctx context.Context, kind combat.Kind) ([]*combat.Combatant, error)
	Delete(ctx context.Context, id string) error
}
