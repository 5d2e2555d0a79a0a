package party_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/dungeon-combat/internal/domain/combat"
	combaterr "github.com/KirkDiggler/dungeon-combat/internal/errors"
	"github.com/KirkDiggler/dungeon-combat/internal/interfaces"
	"github.com/KirkDiggler/dungeon-combat/internal/services/party"
)

var (
	_ interfaces.PartyProvider = (*party.Roster)(nil)
	_ interfaces.PhaseOuter    = (*party.Roster)(nil)
)

func member(id string, level int) *combat.Combatant {
	return combat.NewPlayer(id, id, combat.ClassFighter, level, 10, combat.Attributes{})
}

func TestNewRoster(t *testing.T) {
	a, b := member("a", 2), member("b", 5)
	r, err := party.NewRoster(a, b)
	require.NoError(t, err)

	assert.Equal(t, []*combat.Combatant{a, b}, r.Members())
	assert.Equal(t, 2, r.Size())
	assert.InDelta(t, 3.5, r.AverageLevel(), 0.001)
}

func TestNewRoster_Rejects(t *testing.T) {
	_, err := party.NewRoster(member("a", 1), member("a", 1))
	assert.True(t, combaterr.IsValidation(err))

	goblin := combat.NewMonster("g", "g", 1, 5, combat.Attributes{}, combat.MonsterTraits{})
	_, err = party.NewRoster(goblin)
	assert.True(t, combaterr.IsInvalidArgument(err))
}

func TestLivingMembers(t *testing.T) {
	a, b, c := member("a", 1), member("b", 1), member("c", 1)
	r, err := party.NewRoster(a, b, c)
	require.NoError(t, err)

	b.KnockOut()
	require.NoError(t, r.PhaseOut(c.ID))

	assert.Equal(t, []*combat.Combatant{a}, r.LivingMembers())
	assert.Equal(t, 3, r.Size())
	assert.True(t, r.IsPhasedOut(c.ID))

	r.PhaseIn(c.ID)
	assert.Equal(t, []*combat.Combatant{a, c}, r.LivingMembers())
}

func TestPhaseOut_UnknownMember(t *testing.T) {
	r, err := party.NewRoster()
	require.NoError(t, err)

	assert.True(t, combaterr.IsNotFound(r.PhaseOut("nobody")))
	assert.Zero(t, r.AverageLevel())
}
