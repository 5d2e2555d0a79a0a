package reports_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/dungeon-combat/internal/domain/combat"
	combaterr "github.com/KirkDiggler/dungeon-combat/internal/errors"
	"github.com/KirkDiggler/dungeon-combat/internal/events"
	"github.com/KirkDiggler/dungeon-combat/internal/repositories/reports"
	"github.com/KirkDiggler/dungeon-combat/internal/testutils"
)

func openTempStore(t *testing.T) *reports.Store {
	t.Helper()
	store, err := reports.Open(filepath.Join(t.TempDir(), "reports.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestOpenRequiresPath(t *testing.T) {
	_, err := reports.Open(" ")
	assert.True(t, combaterr.IsInvalidArgument(err))
}

func TestOpenIsIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "reports.db")
	first, err := reports.Open(path)
	require.NoError(t, err)
	require.NoError(t, first.Close())

	second, err := reports.Open(path)
	require.NoError(t, err)
	require.NoError(t, second.Close())
}

func TestSaveAndGetRoundTrip(t *testing.T) {
	store := openTempStore(t)
	ctx := context.Background()
	endedAt := time.Date(2026, time.March, 4, 12, 30, 0, 0, time.UTC)

	outcome := testutils.CreateTestOutcome("session-1")
	outcome.Disconnected = []*combat.Combatant{testutils.CreateTestFighter("runner", "Runner", 10)}

	id, err := store.Save(ctx, outcome, endedAt)
	require.NoError(t, err)
	assert.Positive(t, id)

	report, err := store.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "session-1", report.SessionID)
	assert.Equal(t, combat.OutcomeVictory, report.Kind)
	assert.Equal(t, combat.SideParty, report.Winner)
	assert.Equal(t, 10, report.Experience)
	assert.Equal(t, 3, report.Gold)
	assert.Equal(t, 1, report.DefeatedEnemies)
	assert.Equal(t, 2, report.Rounds)
	assert.Equal(t, 1, report.WavesCleared)
	require.Len(t, report.Loot, 1)
	assert.Equal(t, "potion-of-healing", report.Loot[0].Key)
	assert.Equal(t, []string{"runner"}, report.Disconnected)
	assert.Equal(t, outcome.Log, report.Log)
	assert.True(t, endedAt.Equal(report.EndedAt))
}

func TestSaveValidation(t *testing.T) {
	store := openTempStore(t)

	_, err := store.Save(context.Background(), nil, time.Now())
	assert.True(t, combaterr.IsInvalidArgument(err))

	_, err = store.Save(context.Background(), &combat.Outcome{}, time.Now())
	assert.True(t, combaterr.IsInvalidArgument(err))
}

func TestSaveWithoutRewards(t *testing.T) {
	store := openTempStore(t)
	ctx := context.Background()

	id, err := store.Save(ctx, &combat.Outcome{SessionID: "s", Kind: combat.OutcomeUnusual, Winner: combat.SideNone}, time.Now())
	require.NoError(t, err)

	report, err := store.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, 0, report.Experience)
	assert.Empty(t, report.Loot)
	assert.Empty(t, report.Disconnected)
}

func TestGetMissing(t *testing.T) {
	store := openTempStore(t)

	_, err := store.Get(context.Background(), 42)
	assert.True(t, combaterr.IsNotFound(err))
}

func TestListBySession(t *testing.T) {
	store := openTempStore(t)
	ctx := context.Background()

	first := testutils.CreateTestOutcome("session-1")
	second := testutils.CreateTestOutcome("session-1")
	second.Kind = combat.OutcomeTotalDefeat
	other := testutils.CreateTestOutcome("session-2")

	for _, o := range []*combat.Outcome{first, other, second} {
		_, err := store.Save(ctx, o, time.Now())
		require.NoError(t, err)
	}

	list, err := store.ListBySession(ctx, "session-1")
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, combat.OutcomeVictory, list[0].Kind)
	assert.Equal(t, combat.OutcomeTotalDefeat, list[1].Kind)
}

func TestArchiverStoresCombatEnded(t *testing.T) {
	store := openTempStore(t)
	bus := events.NewBus()
	reports.NewArchiver(store).Register(bus)

	outcome := testutils.CreateTestOutcome("session-9")
	require.NoError(t, bus.Publish(&events.Event{
		Type:       events.EventTypeCombatEnded,
		SessionID:  "session-9",
		OccurredAt: time.Now().UTC(),
		Outcome:    outcome,
	}))
	require.NoError(t, bus.Publish(&events.Event{Type: events.EventTypeCombatStarted, SessionID: "session-9"}))

	list, err := store.ListBySession(context.Background(), "session-9")
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, combat.OutcomeVictory, list[0].Kind)
}

func TestArchiverRejectsMissingOutcome(t *testing.T) {
	archiver := reports.NewArchiver(openTempStore(t))

	err := archiver.HandleEvent(&events.Event{Type: events.EventTypeCombatEnded})
	assert.True(t, combaterr.IsInvalidArgument(err))
	assert.Equal(t, events.PriorityArchive, archiver.Priority())
}
