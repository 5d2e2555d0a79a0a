package formation_test

import (
	"fmt"
	"testing"

	"github.com/KirkDiggler/dungeon-combat/internal/domain/combat"
	combaterr "github.com/KirkDiggler/dungeon-combat/internal/errors"
	"github.com/KirkDiggler/dungeon-combat/internal/services/formation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func player(id string, class combat.Class) *combat.Combatant {
	return combat.NewPlayer(id, id, class, 1, 10, combat.Attributes{})
}

func TestArrange_ClassAffinity(t *testing.T) {
	f := formation.NewDefault()
	fighter := player("fighter", combat.ClassFighter)
	mage := player("mage", combat.ClassMage)
	samurai := player("samurai", combat.ClassSamurai)
	priest := player("priest", combat.ClassPriest)

	require.NoError(t, f.Arrange([]*combat.Combatant{fighter, mage, samurai, priest}))

	assert.Equal(t, []*combat.Combatant{fighter, samurai}, f.Front())
	assert.Equal(t, []*combat.Combatant{mage, priest}, f.Back())
	assert.NoError(t, f.Validate())
}

func TestArrange_SpillsIntoOtherRow(t *testing.T) {
	f := formation.New(2, 3)
	members := []*combat.Combatant{
		player("f1", combat.ClassFighter),
		player("f2", combat.ClassFighter),
		player("f3", combat.ClassFighter),
	}

	require.NoError(t, f.Arrange(members))

	row, ok := f.RowOf("f3")
	require.True(t, ok)
	assert.Equal(t, combat.RowBack, row)
}

func TestArrange_TooManyMembers(t *testing.T) {
	f := formation.New(1, 1)
	err := f.Arrange([]*combat.Combatant{
		player("a", combat.ClassFighter),
		player("b", combat.ClassFighter),
		player("c", combat.ClassFighter),
	})

	require.Error(t, err)
	assert.True(t, combaterr.IsValidation(err))
}

func TestPlace_Twice(t *testing.T) {
	f := formation.NewDefault()
	c := player("a", combat.ClassThief)
	require.NoError(t, f.Place(c, combat.RowBack))

	err := f.Place(c, combat.RowFront)
	assert.True(t, combaterr.IsValidation(err))
}

func TestValidate_Empty(t *testing.T) {
	assert.True(t, combaterr.IsValidation(formation.NewDefault().Validate()))
}

func TestRemove(t *testing.T) {
	f := formation.NewDefault()
	c := player("a", combat.ClassThief)
	require.NoError(t, f.Place(c, combat.RowBack))

	assert.True(t, f.Remove("a"))
	assert.False(t, f.Remove("a"))
	assert.Equal(t, 0, f.Size())
}

func TestTargets_FrontFirst(t *testing.T) {
	f := formation.NewDefault()
	mage := player("mage", combat.ClassMage)
	fighter := player("fighter", combat.ClassFighter)
	downed := player("downed", combat.ClassLord)
	downed.KnockOut()
	require.NoError(t, f.Arrange([]*combat.Combatant{mage, downed, fighter}))

	assert.Equal(t, []*combat.Combatant{fighter, mage}, f.Targets())
	assert.Equal(t, formation.PriorityHigh, f.TargetPriority("fighter"))
	assert.Equal(t, formation.PriorityLow, f.TargetPriority("mage"))
}

func TestNewEnemyFormation(t *testing.T) {
	orc := combat.NewMonster("orc", "Orc", 1, 6, combat.Attributes{}, combat.MonsterTraits{})
	archer := combat.NewMonster("archer", "Archer", 1, 6, combat.Attributes{}, combat.MonsterTraits{PreferredRow: combat.RowBack})
	wolf := combat.NewMonster("wolf", "Wolf", 1, 6, combat.Attributes{}, combat.MonsterTraits{})
	wave := &combat.Wave{Groups: []*combat.Group{
		{Name: "orcs", Members: []*combat.Combatant{orc, archer}},
		{Name: "wolves", Members: []*combat.Combatant{wolf}},
	}}

	f := formation.NewEnemyFormation(wave, formation.DefaultFrontCapacity, formation.DefaultBackCapacity)

	assert.Equal(t, []*combat.Combatant{orc}, f.Front())
	assert.Equal(t, []*combat.Combatant{archer, wolf}, f.Back())
	assert.NoError(t, f.Validate())
}

func TestNewEnemyFormation_Capacity(t *testing.T) {
	pack := func(n int) []*combat.Combatant {
		out := make([]*combat.Combatant, n)
		for i := range out {
			id := fmt.Sprintf("kobold-%d", i+1)
			out[i] = combat.NewMonster(id, id, 1, 4, combat.Attributes{}, combat.MonsterTraits{})
		}
		return out
	}

	t.Run("full front row spills into the back", func(t *testing.T) {
		kobolds := pack(4)
		f := formation.NewEnemyFormation(combat.NewWave("kobolds", kobolds...), 3, 3)

		assert.Equal(t, kobolds[:3], f.Front())
		assert.Equal(t, kobolds[3:], f.Back())
		assert.NoError(t, f.Validate())
	})

	t.Run("wave larger than both rows fails validation", func(t *testing.T) {
		f := formation.NewEnemyFormation(combat.NewWave("kobolds", pack(7)...), 3, 3)

		assert.Len(t, f.Back(), 3)
		err := f.Validate()
		require.Error(t, err)
		assert.True(t, combaterr.IsValidation(err))
		assert.Contains(t, err.Error(), "front row holds 4, capacity 3")
	})

	t.Run("custom capacity", func(t *testing.T) {
		f := formation.NewEnemyFormation(combat.NewWave("kobolds", pack(3)...), 2, 1)

		assert.Len(t, f.Front(), 2)
		assert.Len(t, f.Back(), 1)
		assert.NoError(t, f.Validate())
	})
}
