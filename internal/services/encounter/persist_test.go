package encounter

import (
	"bytes"
	"context"
	"errors"
	"log"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	mockdice "github.com/KirkDiggler/dungeon-combat/internal/dice/mock"
	"github.com/KirkDiggler/dungeon-combat/internal/domain/combat"
	mockinterfaces "github.com/KirkDiggler/dungeon-combat/internal/interfaces/mock"
)

// syncBuffer lets concurrent log writes land in one buffer
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func TestPersistAll_LogsEveryFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	out := &syncBuffer{}
	prev := log.Writer()
	log.SetOutput(out)
	defer log.SetOutput(prev)

	hero := combat.NewPlayer("hero", "hero", combat.ClassFighter, 1, 20, combat.Attributes{})
	mage := combat.NewPlayer("mage", "mage", combat.ClassMage, 1, 8, combat.Attributes{})
	thief := combat.NewPlayer("thief", "thief", combat.ClassThief, 1, 10, combat.Attributes{})

	sink := mockinterfaces.NewMockPersistenceSink(ctrl)
	sink.EXPECT().Persist(gomock.Any(), hero).Return(errors.New("redis down"))
	sink.EXPECT().Persist(gomock.Any(), mage).Return(errors.New("redis timeout"))
	sink.EXPECT().Persist(gomock.Any(), thief).Return(nil)

	session := NewSession(&SessionConfig{ID: "session-1", Roller: mockdice.NewManualMockRoller(), Persistence: sink})
	session.persistAll(context.Background(), []*combat.Combatant{hero, mage, thief})

	logged := out.String()
	assert.Contains(t, logged, "failed to persist hero")
	assert.Contains(t, logged, "redis down")
	assert.Contains(t, logged, "failed to persist mage")
	assert.Contains(t, logged, "redis timeout")
	assert.NotContains(t, logged, "failed to persist thief")
}
