package items

import (
	"context"
	"fmt"

	"github.com/KirkDiggler/dungeon-combat/internal/dice"
	"github.com/KirkDiggler/dungeon-combat/internal/domain/combat"
	combaterr "github.com/KirkDiggler/dungeon-combat/internal/errors"
)

// potion describes a healing consumable as dice plus a flat bonus
type potion struct {
	count int
	sides int
	bonus int
}

var potions = map[string]potion{
	"healing-potion":          {count: 2, sides: 4, bonus: 2},
	"potion-of-healing":       {count: 2, sides: 4, bonus: 2},
	"greater-healing-potion":  {count: 4, sides: 4, bonus: 4},
	"superior-healing-potion": {count: 8, sides: 4, bonus: 8},
}

// Handler applies consumable items used in combat
type Handler struct {
	roller dice.Roller
}

// HandlerConfig holds configuration for the item handler
type HandlerConfig struct {
	Roller dice.Roller
}

// NewHandler creates an item handler
func NewHandler(cfg *HandlerConfig) *Handler {
	if cfg == nil || cfg.Roller == nil {
		panic("dice roller is required")
	}
	return &Handler{roller: cfg.Roller}
}

// ApplyItem heals the target for potions. Other items have no combat effect.
func (h *Handler) ApplyItem(_ context.Context, user, target *combat.Combatant, item *combat.Item) (string, error) {
	if user == nil || target == nil {
		return "", combaterr.InvalidArgument("user and target are required")
	}
	if item == nil {
		return "", combaterr.InvalidArgument("item is required")
	}
	if item.Kind != combat.ItemConsumable {
		return "", combaterr.InvalidArgumentf("%s cannot be used in combat", item.Name)
	}

	p, ok := potions[item.Key]
	if !ok {
		return "", combaterr.InvalidArgumentf("%s has no combat effect", item.Name)
	}
	if target.IsDead() {
		return "", combaterr.FailedPreconditionf("%s is beyond healing", target.Name)
	}

	roll, err := h.roller.Roll(p.count, p.sides, p.bonus)
	if err != nil {
		return "", combaterr.Wrap(err, "failed to roll potion")
	}

	healed := target.Heal(roll.Total)
	if user.ID == target.ID {
		return fmt.Sprintf("%s drinks %s and recovers %d HP", user.Name, item.Name, healed), nil
	}
	return fmt.Sprintf("%s gives %s to %s, restoring %d HP", user.Name, item.Name, target.Name, healed), nil
}
