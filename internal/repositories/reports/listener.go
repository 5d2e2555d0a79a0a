package reports

import (
	"context"
	"log"
	"time"

	"github.com/KirkDiggler/dungeon-combat/internal/domain/combat"
	combaterr "github.com/KirkDiggler/dungeon-combat/internal/errors"
	"github.com/KirkDiggler/dungeon-combat/internal/events"
)

// archiveTimeout bounds one archive write
const archiveTimeout = 5 * time.Second

// archive is the part of Store the listener needs
type archive interface {
	Save(ctx context.Context, outcome *combat.Outcome, endedAt time.Time) (int64, error)
}

// Archiver writes every combat_ended outcome to the store
type Archiver struct {
	store archive
}

// NewArchiver creates the bus listener
func NewArchiver(store *Store) *Archiver {
	if store == nil {
		panic("report store is required")
	}
	return &Archiver{store: store}
}

// Register subscribes the archiver to combat_ended
func (a *Archiver) Register(bus *events.Bus) {
	bus.Subscribe(events.EventTypeCombatEnded, a)
}

func (a *Archiver) HandleEvent(event *events.Event) error {
	if event.Type != events.EventTypeCombatEnded {
		return nil
	}
	if event.Outcome == nil {
		return combaterr.InvalidArgument("combat_ended event has no outcome")
	}

	ctx, cancel := context.WithTimeout(context.Background(), archiveTimeout)
	defer cancel()

	endedAt := event.OccurredAt
	if endedAt.IsZero() {
		endedAt = time.Now().UTC()
	}

	id, err := a.store.Save(ctx, event.Outcome, endedAt)
	if err != nil {
		return combaterr.Wrapf(err, "failed to archive session %s", event.SessionID)
	}
	log.Printf("Reports: archived %s outcome for session %s as report %d", event.Outcome.Kind, event.SessionID, id)
	return nil
}

func (a *Archiver) Priority() int { return events.PriorityArchive }
func (a *Archiver) ID() string    { return "reports-archiver" }
