package loot_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/dungeon-combat/internal/clients/dnd5e"
	mockdnd5e "github.com/KirkDiggler/dungeon-combat/internal/clients/dnd5e/mock"
	mockdice "github.com/KirkDiggler/dungeon-combat/internal/dice/mock"
	"github.com/KirkDiggler/dungeon-combat/internal/domain/combat"
	combaterr "github.com/KirkDiggler/dungeon-combat/internal/errors"
	"github.com/KirkDiggler/dungeon-combat/internal/services/loot"
)

func TestGenerateLoot_Tables(t *testing.T) {
	roller := mockdice.NewManualMockRoller()
	roller.SetRolls([]int{1, 4})
	svc := loot.NewService(&loot.ServiceConfig{Roller: roller})

	items, err := svc.GenerateLoot(context.Background(), 1, 2)
	require.NoError(t, err)

	require.Len(t, items, 2)
	assert.Equal(t, "healing-potion", items[0].Key)
	assert.Equal(t, combat.ItemConsumable, items[0].Kind)
	assert.Equal(t, "dagger", items[1].Key)
}

func TestGenerateLoot_HigherLevelTable(t *testing.T) {
	roller := mockdice.NewManualMockRoller()
	roller.SetRolls([]int{4, 3})
	svc := loot.NewService(&loot.ServiceConfig{Roller: roller})

	items, err := svc.GenerateLoot(context.Background(), 4, 1)
	require.NoError(t, err)
	assert.Equal(t, "alchemists-fire", items[0].Key)

	items, err = svc.GenerateLoot(context.Background(), 9, 1)
	require.NoError(t, err)
	assert.Equal(t, "potion of speed", items[0].Name)
}

func TestGenerateLoot_FromEquipmentList(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mockdnd5e.NewMockClient(ctrl)
	client.EXPECT().ListEquipment().Return([]*dnd5e.Equipment{
		{Key: "longsword", Name: "Longsword"},
		{Key: "chain-mail", Name: "Chain Mail"},
	}, nil)

	roller := mockdice.NewManualMockRoller()
	// source roll, equipment pick
	roller.SetRolls([]int{20, 2})
	svc := loot.NewService(&loot.ServiceConfig{Roller: roller, DNDClient: client})

	items, err := svc.GenerateLoot(context.Background(), 3, 1)
	require.NoError(t, err)

	assert.Equal(t, "chain-mail", items[0].Key)
	assert.Equal(t, combat.ItemEquipment, items[0].Kind)
	assert.Equal(t, 30, items[0].Value)
}

func TestGenerateLoot_EquipmentFailureFallsBack(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mockdnd5e.NewMockClient(ctrl)
	client.EXPECT().ListEquipment().Return(nil, errors.New("api down"))

	roller := mockdice.NewManualMockRoller()
	roller.SetRolls([]int{5, 3})
	svc := loot.NewService(&loot.ServiceConfig{Roller: roller, DNDClient: client})

	items, err := svc.GenerateLoot(context.Background(), 1, 1)
	require.NoError(t, err)
	assert.Equal(t, "rations", items[0].Key)
}

func TestGenerateLoot_InvalidInput(t *testing.T) {
	svc := loot.NewService(nil)

	_, err := svc.GenerateLoot(context.Background(), 0, 1)
	assert.True(t, combaterr.IsInvalidArgument(err))

	_, err = svc.GenerateLoot(context.Background(), 1, -1)
	assert.True(t, combaterr.IsInvalidArgument(err))

	items, err := svc.GenerateLoot(context.Background(), 1, 0)
	require.NoError(t, err)
	assert.Empty(t, items)
}
