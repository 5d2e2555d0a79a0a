package encounter

import (
	"context"
	"log"

	"golang.org/x/sync/errgroup"

	"github.com/KirkDiggler/dungeon-combat/internal/domain/combat"
	combaterr "github.com/KirkDiggler/dungeon-combat/internal/errors"
)

// persistLimit bounds concurrent writes to the sink
const persistLimit = 4

// persistAll writes every combatant and waits for all of them. Each failure
// is logged on its own; one failed write does not cancel the others.
func (s *Session) persistAll(ctx context.Context, combatants []*combat.Combatant) {
	if s.sink == nil || len(combatants) == 0 {
		return
	}

	var g errgroup.Group
	g.SetLimit(persistLimit)
	for _, c := range combatants {
		c := c
		g.Go(func() error {
			if err := s.sink.Persist(ctx, c); err != nil {
				log.Printf("Encounter: %v", combaterr.Wrapf(err, "failed to persist %s", c.ID))
			}
			return nil
		})
	}
	_ = g.Wait()
}
