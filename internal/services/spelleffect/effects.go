package spelleffect

import (
	"context"
	"fmt"

	"github.com/KirkDiggler/dungeon-combat/internal/dice"
	"github.com/KirkDiggler/dungeon-combat/internal/domain/combat"
	combaterr "github.com/KirkDiggler/dungeon-combat/internal/errors"
	"github.com/KirkDiggler/dungeon-combat/internal/interfaces"
)

const (
	// BlessAttackBonus and BlessACBonus are granted by buff spells
	BlessAttackBonus = 1
	BlessACBonus     = 1
	// ShieldACBonus is granted by protection spells
	ShieldACBonus = 2
	// ConcealACBonus is granted to a concealed caster
	ConcealACBonus = 2
	ConcealRounds  = 3
	SleepRounds    = 2
	// SaveBase is the control save difficulty before caster level
	SaveBase = 10
)

// BuffRounds is the duration of buff and protection spells
func BuffRounds(casterLevel int) int {
	return 2 + casterLevel/2
}

func rollSpellDice(roller dice.Roller, spell *combat.Spell) (int, error) {
	d := spell.Dice.OrDefault()
	roll, err := roller.Roll(d.Count, d.Sides, 0)
	if err != nil {
		return 0, combaterr.WrapWithCode(err, combaterr.CodeInternal, "failed to roll spell dice").
			WithMeta("spell", spell.ID)
	}
	return roll.Total, nil
}

// targetOrCaster lets self-targeting effects omit a target
func targetOrCaster(req *interfaces.EffectRequest) *combat.Combatant {
	if req.Target != nil {
		return req.Target
	}
	return req.Caster
}

func noTarget(req *interfaces.EffectRequest) *combat.EffectOutcome {
	return &combat.EffectOutcome{
		Effect:  req.Spell.Effect,
		Message: fmt.Sprintf("%s has no target", req.Spell.Name),
	}
}

type damageHandler struct {
	roller dice.Roller
}

func (h *damageHandler) Effect() combat.Effect { return combat.EffectDamage }

// Apply deals NdS + caster level, halved against the back row
func (h *damageHandler) Apply(_ context.Context, req *interfaces.EffectRequest) (*combat.EffectOutcome, error) {
	if req.Target == nil {
		return noTarget(req), nil
	}

	rolled, err := rollSpellDice(h.roller, req.Spell)
	if err != nil {
		return nil, err
	}
	amount := rolled + req.Caster.Level
	if req.TargetRow == combat.RowBack {
		amount /= 2
	}
	if amount < 1 {
		amount = 1
	}

	req.Target.ApplyDamage(amount)
	req.Target.RemoveCondition(combat.ConditionAsleep)

	return &combat.EffectOutcome{
		Effect:  combat.EffectDamage,
		Amount:  amount,
		Message: fmt.Sprintf("%s's %s hits %s for %d damage", req.Caster.Name, req.Spell.Name, req.Target.Name, amount),
	}, nil
}

type healHandler struct {
	roller dice.Roller
}

func (h *healHandler) Effect() combat.Effect { return combat.EffectHeal }

// Apply restores NdS + caster level, capped at max hit points
func (h *healHandler) Apply(_ context.Context, req *interfaces.EffectRequest) (*combat.EffectOutcome, error) {
	target := targetOrCaster(req)

	rolled, err := rollSpellDice(h.roller, req.Spell)
	if err != nil {
		return nil, err
	}
	healed := target.Heal(rolled + req.Caster.Level)

	return &combat.EffectOutcome{
		Effect:  combat.EffectHeal,
		Amount:  healed,
		Message: fmt.Sprintf("%s's %s restores %d hit points to %s", req.Caster.Name, req.Spell.Name, healed, target.Name),
	}, nil
}

type buffHandler struct{}

func (h *buffHandler) Effect() combat.Effect { return combat.EffectBuff }

func (h *buffHandler) Apply(_ context.Context, req *interfaces.EffectRequest) (*combat.EffectOutcome, error) {
	target := targetOrCaster(req)
	rounds := BuffRounds(req.Caster.Level)
	target.AddCondition(&combat.Condition{
		Key:         combat.ConditionBlessed,
		RoundsLeft:  rounds,
		AttackBonus: BlessAttackBonus,
		ACBonus:     BlessACBonus,
	})

	return &combat.EffectOutcome{
		Effect:    combat.EffectBuff,
		Amount:    rounds,
		Condition: combat.ConditionBlessed,
		Message:   fmt.Sprintf("%s is blessed for %d rounds", target.Name, rounds),
	}, nil
}

type protectionHandler struct{}

func (h *protectionHandler) Effect() combat.Effect { return combat.EffectProtection }

func (h *protectionHandler) Apply(_ context.Context, req *interfaces.EffectRequest) (*combat.EffectOutcome, error) {
	target := targetOrCaster(req)
	rounds := BuffRounds(req.Caster.Level)
	target.AddCondition(&combat.Condition{
		Key:        combat.ConditionShielded,
		RoundsLeft: rounds,
		ACBonus:    ShieldACBonus,
	})

	return &combat.EffectOutcome{
		Effect:    combat.EffectProtection,
		Amount:    rounds,
		Condition: combat.ConditionShielded,
		Message:   fmt.Sprintf("%s is shielded for %d rounds", target.Name, rounds),
	}, nil
}

type controlHandler struct {
	roller dice.Roller
}

func (h *controlHandler) Effect() combat.Effect { return combat.EffectControl }

// Apply puts the target to sleep unless d20 + target level reaches 10 + caster level
func (h *controlHandler) Apply(_ context.Context, req *interfaces.EffectRequest) (*combat.EffectOutcome, error) {
	if req.Target == nil {
		return noTarget(req), nil
	}

	save, err := dice.D20(h.roller)
	if err != nil {
		return nil, combaterr.WrapWithCode(err, combaterr.CodeInternal, "failed to roll save")
	}

	if save+req.Target.Level >= SaveBase+req.Caster.Level {
		return &combat.EffectOutcome{
			Effect:   combat.EffectControl,
			Resisted: true,
			Message:  fmt.Sprintf("%s resists %s", req.Target.Name, req.Spell.Name),
		}, nil
	}

	req.Target.AddCondition(&combat.Condition{Key: combat.ConditionAsleep, RoundsLeft: SleepRounds})
	return &combat.EffectOutcome{
		Effect:    combat.EffectControl,
		Amount:    SleepRounds,
		Condition: combat.ConditionAsleep,
		Message:   fmt.Sprintf("%s falls asleep", req.Target.Name),
	}, nil
}

type utilityHandler struct{}

func (h *utilityHandler) Effect() combat.Effect { return combat.EffectUtility }

func (h *utilityHandler) Apply(_ context.Context, req *interfaces.EffectRequest) (*combat.EffectOutcome, error) {
	return &combat.EffectOutcome{
		Effect:  combat.EffectUtility,
		Message: fmt.Sprintf("%s casts %s", req.Caster.Name, req.Spell.Name),
	}, nil
}

type dispelHandler struct{}

func (h *dispelHandler) Effect() combat.Effect { return combat.EffectDispel }

// Apply destroys weaker undead outright, otherwise strips timed conditions
func (h *dispelHandler) Apply(_ context.Context, req *interfaces.EffectRequest) (*combat.EffectOutcome, error) {
	target := req.Target
	if target == nil {
		return noTarget(req), nil
	}

	if target.Monster != nil && target.Monster.Undead && target.Level < req.Caster.Level {
		target.Kill()
		return &combat.EffectOutcome{
			Effect:    combat.EffectDispel,
			Destroyed: true,
			Message:   fmt.Sprintf("%s is destroyed", target.Name),
		}, nil
	}

	removed := target.RemoveTimedConditions()
	message := fmt.Sprintf("%s's %s has no effect on %s", req.Caster.Name, req.Spell.Name, target.Name)
	if len(removed) > 0 {
		message = fmt.Sprintf("%s dispels %d effects from %s", req.Caster.Name, len(removed), target.Name)
	}
	return &combat.EffectOutcome{
		Effect:  combat.EffectDispel,
		Removed: removed,
		Message: message,
	}, nil
}

type concealmentHandler struct{}

func (h *concealmentHandler) Effect() combat.Effect { return combat.EffectConcealment }

// Apply always conceals the caster
func (h *concealmentHandler) Apply(_ context.Context, req *interfaces.EffectRequest) (*combat.EffectOutcome, error) {
	req.Caster.AddCondition(&combat.Condition{
		Key:        combat.ConditionConcealed,
		RoundsLeft: ConcealRounds,
		ACBonus:    ConcealACBonus,
	})

	return &combat.EffectOutcome{
		Effect:    combat.EffectConcealment,
		Amount:    ConcealRounds,
		Condition: combat.ConditionConcealed,
		Message:   fmt.Sprintf("%s fades from sight", req.Caster.Name),
	}, nil
}

type resurrectionHandler struct{}

func (h *resurrectionHandler) Effect() combat.Effect { return combat.EffectResurrection }

// Apply brings a fallen target back with one hit point
func (h *resurrectionHandler) Apply(_ context.Context, req *interfaces.EffectRequest) (*combat.EffectOutcome, error) {
	target := req.Target
	if target == nil {
		return noTarget(req), nil
	}
	if !target.IsPlayer() {
		return &combat.EffectOutcome{
			Effect:  combat.EffectResurrection,
			Message: fmt.Sprintf("%s cannot be raised", target.Name),
		}, nil
	}
	if target.IsAlive() {
		return &combat.EffectOutcome{
			Effect:  combat.EffectResurrection,
			Message: fmt.Sprintf("%s is already standing", target.Name),
		}, nil
	}

	target.Revive(1)
	return &combat.EffectOutcome{
		Effect:  combat.EffectResurrection,
		Amount:  1,
		Revived: true,
		Message: fmt.Sprintf("%s rises again", target.Name),
	}, nil
}
