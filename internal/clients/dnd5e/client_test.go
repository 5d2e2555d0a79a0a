package dnd5e

import (
	"errors"
	"testing"

	apiEntities "github.com/fadedpez/dnd5e-api/entities"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	combaterr "github.com/KirkDiggler/dungeon-combat/internal/errors"
)

type fakeAPI struct {
	refs  []*apiEntities.ReferenceItem
	err   error
	calls int
}

func (f *fakeAPI) ListEquipment() ([]*apiEntities.ReferenceItem, error) {
	f.calls++
	return f.refs, f.err
}

func TestListEquipment_ConvertsAndCaches(t *testing.T) {
	api := &fakeAPI{refs: []*apiEntities.ReferenceItem{
		{Key: "longsword", Name: "Longsword"},
		{Key: "", Name: "broken"},
		nil,
		{Key: "shield", Name: "Shield"},
	}}
	c := &client{api: api}

	first, err := c.ListEquipment()
	require.NoError(t, err)
	require.Len(t, first, 2)
	assert.Equal(t, "longsword", first[0].Key)
	assert.Equal(t, "Shield", first[1].Name)

	_, err = c.ListEquipment()
	require.NoError(t, err)
	assert.Equal(t, 1, api.calls)
}

func TestListEquipment_Unavailable(t *testing.T) {
	c := &client{api: &fakeAPI{err: errors.New("connection refused")}}

	_, err := c.ListEquipment()
	require.Error(t, err)
	assert.True(t, combaterr.IsUnavailable(err))
}

func TestNew_RequiresConfig(t *testing.T) {
	_, err := New(nil)
	assert.True(t, combaterr.IsInvalidArgument(err))
}
