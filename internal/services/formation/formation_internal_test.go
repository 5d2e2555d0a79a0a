package formation

import (
	"testing"

	"github.com/KirkDiggler/dungeon-combat/internal/domain/combat"
	combaterr "github.com/KirkDiggler/dungeon-combat/internal/errors"
	"github.com/stretchr/testify/assert"
)

func TestValidate_CorruptedRows(t *testing.T) {
	c := combat.NewPlayer("a", "A", combat.ClassFighter, 1, 10, combat.Attributes{})

	t.Run("both rows", func(t *testing.T) {
		f := NewDefault()
		f.front = []*combat.Combatant{c}
		f.back = []*combat.Combatant{c}
		assert.True(t, combaterr.IsValidation(f.Validate()))
	})

	t.Run("over capacity", func(t *testing.T) {
		f := New(1, 1)
		other := combat.NewPlayer("b", "B", combat.ClassFighter, 1, 10, combat.Attributes{})
		f.front = []*combat.Combatant{c, other}
		assert.True(t, combaterr.IsValidation(f.Validate()))
	})
}
