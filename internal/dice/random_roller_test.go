package dice_test

import (
	"testing"

	"github.com/KirkDiggler/dungeon-combat/internal/dice"
	mockdice "github.com/KirkDiggler/dungeon-combat/internal/dice/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeededRoller_Deterministic(t *testing.T) {
	a := dice.NewSeededRoller(42)
	b := dice.NewSeededRoller(42)

	for i := 0; i < 50; i++ {
		ra, err := a.Roll(2, 6, 1)
		require.NoError(t, err)
		rb, err := b.Roll(2, 6, 1)
		require.NoError(t, err)
		assert.Equal(t, ra.Rolls, rb.Rolls)
		assert.Equal(t, ra.RawTotal+1, ra.Total)
		for _, roll := range ra.Rolls {
			assert.GreaterOrEqual(t, roll, 1)
			assert.LessOrEqual(t, roll, 6)
		}
	}
}

func TestRandomRoller_InvalidInput(t *testing.T) {
	r := dice.NewRandomRoller()

	_, err := r.Roll(0, 6, 0)
	assert.Error(t, err)

	_, err = r.Roll(1, 0, 0)
	assert.Error(t, err)
}

func TestChance_CertainOutcomesSkipRoll(t *testing.T) {
	roller := mockdice.NewManualMockRoller()

	ok, err := dice.Chance(roller, 0)
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = dice.Chance(roller, 100)
	require.NoError(t, err)
	assert.True(t, ok)

	assert.Equal(t, 0, roller.RollCount())
}

func TestChance_Boundary(t *testing.T) {
	roller := mockdice.NewManualMockRoller()
	roller.SetRolls([]int{50, 51})

	ok, err := dice.Chance(roller, 50)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = dice.Chance(roller, 50)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestPick(t *testing.T) {
	roller := mockdice.NewManualMockRoller()
	roller.SetRolls([]int{3})

	idx, err := dice.Pick(roller, 1)
	require.NoError(t, err)
	assert.Equal(t, 0, idx)
	assert.Equal(t, 0, roller.RollCount())

	idx, err = dice.Pick(roller, 4)
	require.NoError(t, err)
	assert.Equal(t, 2, idx)
}
