package uuid_test

import (
	"strings"
	"sync"
	"testing"

	googleuuid "github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/dungeon-combat/internal/uuid"
)

func TestGoogleUUIDGenerator(t *testing.T) {
	gen := uuid.NewGoogleUUIDGenerator()

	first := gen.New()
	_, err := googleuuid.Parse(first)
	require.NoError(t, err)
	assert.NotEqual(t, first, gen.New())
}

func TestPrefixedGenerator(t *testing.T) {
	id := uuid.NewPrefixedGenerator("combat").New()

	require.True(t, strings.HasPrefix(id, "combat-"))
	_, err := googleuuid.Parse(strings.TrimPrefix(id, "combat-"))
	assert.NoError(t, err)
}

func TestSequenceGenerator(t *testing.T) {
	gen := uuid.NewSequenceGenerator("sim")
	assert.Equal(t, "sim-0001", gen.New())
	assert.Equal(t, "sim-0002", gen.New())
}

func TestSequenceGenerator_Concurrent(t *testing.T) {
	gen := uuid.NewSequenceGenerator("sim")

	var mu sync.Mutex
	seen := make(map[string]bool)
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			id := gen.New()
			mu.Lock()
			seen[id] = true
			mu.Unlock()
		}()
	}
	wg.Wait()

	assert.Len(t, seen, 50)
}
