package errors_test

import (
	"errors"
	"testing"

	combaterr "github.com/KirkDiggler/dungeon-combat/internal/errors"
	"github.com/stretchr/testify/assert"
)

func TestWrap_PreservesCode(t *testing.T) {
	base := combaterr.Unavailable("loot generator not configured").WithMeta("component", "loot")

	wrapped := combaterr.Wrap(base, "aggregate rewards")

	assert.True(t, combaterr.IsUnavailable(wrapped))
	assert.Equal(t, "aggregate rewards: loot generator not configured", wrapped.Error())
	assert.Equal(t, "loot", combaterr.GetMeta(wrapped)["component"])
	assert.True(t, errors.Is(wrapped, base))
}

func TestWrap_ForeignError(t *testing.T) {
	wrapped := combaterr.Wrap(errors.New("connection refused"), "persist combatant")

	assert.Equal(t, combaterr.CodeUnknown, combaterr.GetCode(wrapped))
	assert.Nil(t, combaterr.Wrap(nil, "ignored"))
}

func TestWrapWithCode(t *testing.T) {
	wrapped := combaterr.WrapWithCode(errors.New("no more rolls"), combaterr.CodeInternal, "roll attack")

	assert.Equal(t, combaterr.CodeInternal, combaterr.GetCode(wrapped))
	assert.False(t, combaterr.IsValidation(wrapped))
}
