package resolver

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/KirkDiggler/dungeon-combat/internal/dice"
	"github.com/KirkDiggler/dungeon-combat/internal/domain/combat"
	combaterr "github.com/KirkDiggler/dungeon-combat/internal/errors"
	"github.com/KirkDiggler/dungeon-combat/internal/events"
	"github.com/KirkDiggler/dungeon-combat/internal/interfaces"
	"github.com/KirkDiggler/dungeon-combat/internal/services/terminology"
)

// Resolver resolves one submitted action against session state
type Resolver struct {
	roller dice.Roller
	spells interfaces.SpellEffectExecutor
	items  interfaces.ItemEffectHandler
	sink   interfaces.PersistenceSink
	bus    interfaces.NotificationBus
	terms  interfaces.TerminologyProvider
}

// Config holds the resolver's collaborators. Only Roller is required.
type Config struct {
	Roller      dice.Roller
	Spells      interfaces.SpellEffectExecutor
	Items       interfaces.ItemEffectHandler
	Persistence interfaces.PersistenceSink
	Bus         interfaces.NotificationBus
	Terminology interfaces.TerminologyProvider
}

// New creates a resolver
func New(cfg *Config) *Resolver {
	if cfg == nil || cfg.Roller == nil {
		panic("dice roller is required")
	}

	r := &Resolver{
		roller: cfg.Roller,
		spells: cfg.Spells,
		items:  cfg.Items,
		sink:   cfg.Persistence,
		bus:    cfg.Bus,
		terms:  cfg.Terminology,
	}
	if r.terms == nil {
		r.terms = terminology.Default()
	}
	return r
}

// Validate runs the type specific checks of an action without touching state.
// It returns the failure result, or nil when the action can be resolved.
func (r *Resolver) Validate(st *State, action *combat.Action) *combat.ActionResult {
	actor := st.Find(action.ActorID)
	if actor == nil {
		return combat.Invalid(action.Type, combat.ReasonActorNotActive)
	}

	var reason string
	switch action.Type {
	case combat.ActionAttack:
		reason = attackReason(st, action, actor)
	case combat.ActionSpell:
		reason = r.spellReason(st, action, actor)
	case combat.ActionItem:
		reason = itemReason(st, action)
	case combat.ActionDefend, combat.ActionEscape:
	case "":
		reason = combat.ReasonMissingType
	default:
		reason = combat.ReasonUnknownType
	}

	if reason == "" {
		return nil
	}
	return combat.Invalid(action.Type, reason)
}

// Resolve validates the type specific parts of an action and resolves it.
// The caller has already checked the phase and that the actor is current.
// Validation failures come back as a result with a Reason and leave state
// untouched; the only error is a dice failure.
func (r *Resolver) Resolve(ctx context.Context, st *State, action *combat.Action) (*combat.ActionResult, error) {
	if invalid := r.Validate(st, action); invalid != nil {
		return invalid, nil
	}
	actor := st.Find(action.ActorID)

	switch action.Type {
	case combat.ActionAttack:
		return r.strike(ctx, st, actor, st.Find(action.TargetID))
	case combat.ActionSpell:
		return r.castSpell(ctx, st, action, actor)
	case combat.ActionDefend:
		return r.defend(ctx, st, actor), nil
	case combat.ActionItem:
		return r.useItem(ctx, st, action, actor), nil
	default:
		return r.escape(ctx, st, actor)
	}
}

func attackReason(st *State, action *combat.Action, attacker *combat.Combatant) string {
	if action.TargetID == "" {
		return combat.ReasonMissingTarget
	}
	target := st.Find(action.TargetID)
	if target == nil {
		return combat.ReasonTargetNotActive
	}
	if target.IsDead() {
		return combat.ReasonTargetDead
	}
	if st.Field != nil && !st.Field.CanAttackFromPosition(attacker, target, attacker.Equipment.AttackType()) {
		return combat.ReasonIllegalPosition
	}
	return ""
}

func (r *Resolver) spellReason(st *State, action *combat.Action, caster *combat.Combatant) string {
	spell := action.Spell
	if spell == nil {
		return combat.ReasonMissingSpell
	}
	if r.spells == nil || !r.spells.Ready() {
		return combat.ReasonSpellsUnavailable
	}
	if !caster.HasMemorized(spell) {
		return combat.ReasonSpellNotMemorized
	}

	var target *combat.Combatant
	if action.TargetID != "" {
		target = st.Find(action.TargetID)
		if target == nil {
			return combat.ReasonTargetNotActive
		}
	}
	if spell.Effect.NeedsTarget() {
		if target == nil {
			return combat.ReasonNoTargetForEffect
		}
		if target.IsDead() && spell.Effect != combat.EffectResurrection {
			return combat.ReasonTargetDead
		}
	}
	if spell.Effect == combat.EffectResurrection && !target.IsPlayer() {
		return combat.ReasonNotPartyMember
	}
	return ""
}

func itemReason(st *State, action *combat.Action) string {
	if action.Item == nil {
		return combat.ReasonMissingItem
	}
	if action.TargetID != "" && st.Find(action.TargetID) == nil {
		return combat.ReasonTargetNotActive
	}
	return ""
}

// strike runs the attack pipeline: to-hit, critical confirm, instant kill, damage
func (r *Resolver) strike(ctx context.Context, st *State, attacker, target *combat.Combatant) (*combat.ActionResult, error) {
	attackType := attacker.Equipment.AttackType()
	result := &combat.ActionResult{
		Type:     combat.ActionAttack,
		Success:  true,
		ActorID:  attacker.ID,
		TargetID: target.ID,
	}

	d20, err := dice.D20(r.roller)
	if err != nil {
		return nil, combaterr.WrapWithCode(err, combaterr.CodeInternal, "failed to roll attack")
	}

	bonus := AttackBonus(attacker) + attacker.ConditionAttackBonus()
	if st.Field != nil {
		bonus += st.Field.AttackModifier(attacker, attackType)
	}
	if target.HasCondition(combat.ConditionAsleep) {
		bonus += SleepingTargetBonus
	}

	result.AttackRoll = d20 + bonus
	result.ArmorClass = ArmorClass(target)
	// the defend bonus is one-shot
	target.Defending = false

	if result.AttackRoll < result.ArmorClass {
		result.TargetStatus = target.Status
		result.Message = fmt.Sprintf("%s attacks %s and misses (%d vs AC %d)",
			attacker.Name, target.Name, result.AttackRoll, result.ArmorClass)
		return result, nil
	}
	result.Hit = true

	multiplier := 1
	if result.AttackRoll >= CriticalThreshold {
		confirm, err := dice.D20(r.roller)
		if err != nil {
			return nil, combaterr.WrapWithCode(err, combaterr.CodeInternal, "failed to roll critical confirmation")
		}
		result.ConfirmRoll = confirm
		if confirm >= CriticalConfirm {
			result.Critical = true
			multiplier = 2
		}
		if confirm == 20 {
			kill, err := dice.Chance(r.roller, InstantKillChance)
			if err != nil {
				return nil, combaterr.WrapWithCode(err, combaterr.CodeInternal, "failed to roll instant kill")
			}
			if kill {
				target.Kill()
				result.InstantKill = true
				result.TargetStatus = target.Status
				result.Message = fmt.Sprintf("%s strikes a mortal blow! %s is slain instantly",
					attacker.Name, target.Name)
				r.changed(ctx, st, target)
				return result, nil
			}
		}
	}

	damage, err := r.rollDamage(attacker)
	if err != nil {
		return nil, err
	}
	damage *= multiplier
	if st.Field != nil {
		damage += st.Field.DamageModifier(attacker, attackType)
	}
	if damage < 1 {
		damage = 1
	}
	if st.Field != nil {
		damage = st.Field.DamageTaken(target, damage)
	}

	target.ApplyDamage(damage)
	target.RemoveCondition(combat.ConditionAsleep)

	result.Damage = damage
	result.TargetStatus = target.Status
	verb := "hits"
	if result.Critical {
		verb = "critically hits"
	}
	result.Message = fmt.Sprintf("%s %s %s for %d damage", attacker.Name, verb, target.Name, damage)
	switch target.Status {
	case combat.StatusDead:
		result.Message += fmt.Sprintf(" (%s)", r.terms.Term(terminology.KeyDead))
	case combat.StatusUnconscious:
		result.Message += fmt.Sprintf(" (%s)", r.terms.Term(terminology.KeyUnconscious))
	}

	r.changed(ctx, st, target)
	return result, nil
}

// rollDamage is the pre-critical, pre-positional damage of a hit
func (r *Resolver) rollDamage(attacker *combat.Combatant) (int, error) {
	weapon := attacker.Equipment.Weapon

	var base int
	switch {
	case !attacker.IsPlayer():
		var natural combat.Dice
		if attacker.Monster != nil {
			natural = attacker.Monster.DamageDice
		}
		roll, err := r.rollDice(natural.OrDefault())
		if err != nil {
			return 0, err
		}
		base = roll
	case weapon != nil:
		roll, err := r.rollDice(weapon.Damage.OrDefault())
		if err != nil {
			return 0, err
		}
		base = roll
	default:
		base = 1 + UnarmedBonus(attacker)
	}

	damage := base + combat.Modifier(attacker.Attributes.Strength)
	if weapon != nil {
		damage += weapon.DamageBonus
	}
	return damage, nil
}

func (r *Resolver) rollDice(d combat.Dice) (int, error) {
	roll, err := r.roller.Roll(d.Count, d.Sides, 0)
	if err != nil {
		return 0, combaterr.WrapWithCode(err, combaterr.CodeInternal, "failed to roll damage").
			WithMeta("dice", d.String())
	}
	return roll.Total, nil
}

func (r *Resolver) castSpell(ctx context.Context, st *State, action *combat.Action, caster *combat.Combatant) (*combat.ActionResult, error) {
	spell := action.Spell
	var target *combat.Combatant
	if action.TargetID != "" {
		target = st.Find(action.TargetID)
	}

	chance := SpellChance(caster, spell)
	caster.ConsumeMemorized(spell)

	result := &combat.ActionResult{
		Type:        combat.ActionSpell,
		Success:     true,
		ActorID:     caster.ID,
		TargetID:    action.TargetID,
		SpellChance: chance,
	}

	cast, err := dice.Chance(r.roller, chance)
	if err != nil {
		return nil, combaterr.WrapWithCode(err, combaterr.CodeInternal, "failed to roll spell success")
	}
	if !cast {
		result.Message = fmt.Sprintf("%s's %s fizzles", caster.Name, spell.Name)
		r.changed(ctx, st, caster)
		return result, nil
	}
	result.SpellCast = true

	outcome, err := r.spells.Execute(ctx, &interfaces.EffectRequest{
		Spell:     spell,
		Caster:    caster,
		Target:    target,
		TargetRow: st.rowOf(target),
	})
	if err != nil {
		return nil, combaterr.Wrapf(err, "failed to resolve %s", spell.Name)
	}

	result.Effect = outcome
	result.Message = outcome.Message
	if target != nil {
		result.TargetStatus = target.Status
		if target != caster {
			r.changed(ctx, st, target)
		}
	}
	r.changed(ctx, st, caster)
	return result, nil
}

func (r *Resolver) defend(ctx context.Context, st *State, defender *combat.Combatant) *combat.ActionResult {
	defender.Defending = true
	r.changed(ctx, st, defender)

	return &combat.ActionResult{
		Type:    combat.ActionDefend,
		Success: true,
		ActorID: defender.ID,
		Message: fmt.Sprintf("%s takes a defensive stance", defender.Name),
	}
}

func (r *Resolver) useItem(ctx context.Context, st *State, action *combat.Action, user *combat.Combatant) *combat.ActionResult {
	target := user
	if action.TargetID != "" {
		target = st.Find(action.TargetID)
	}

	message := fmt.Sprintf("%s uses %s", user.Name, action.Item.Name)
	if r.items != nil {
		applied, err := r.items.ApplyItem(ctx, user, target, action.Item)
		if err != nil {
			log.Printf("Resolver: item %s failed for %s: %v", action.Item.Key, user.ID, err)
		} else {
			if applied != "" {
				message = applied
			}
			r.changed(ctx, st, target)
		}
	}

	return &combat.ActionResult{
		Type:         combat.ActionItem,
		Success:      true,
		ActorID:      user.ID,
		TargetID:     target.ID,
		TargetStatus: target.Status,
		Message:      message,
	}
}

// escape covers flee and disconnect. The session removes a successful
// escapee from the active list; the resolver only rolls and applies conditions.
func (r *Resolver) escape(ctx context.Context, st *State, actor *combat.Combatant) (*combat.ActionResult, error) {
	result := &combat.ActionResult{
		Type:    combat.ActionEscape,
		ActorID: actor.ID,
	}

	if actor.HasCondition(combat.ConditionConfused) {
		result.Blocked = true
		result.Reason = combat.ReasonConfused
		result.Message = fmt.Sprintf("%s is %s and cannot %s", actor.Name,
			r.terms.Term(terminology.KeyConfused), r.terms.Term(terminology.KeyEscape))
		return result, nil
	}

	escaped, err := dice.Chance(r.roller, EscapeChance())
	if err != nil {
		return nil, combaterr.WrapWithCode(err, combaterr.CodeInternal, "failed to roll escape")
	}

	if escaped {
		actor.AddCondition(&combat.Condition{Key: combat.ConditionConfused, RoundsLeft: combat.Permanent})
		result.Success = true
		result.Escaped = true
		result.Message = fmt.Sprintf("%s %s", actor.Name, r.terms.Term(terminology.KeyDisconnected))
		r.changed(ctx, st, actor)
		return result, nil
	}

	opponents := st.LivingOpponents(actor.Side())
	if len(opponents) == 0 {
		actor.KnockOut()
		result.TargetStatus = actor.Status
		result.Message = fmt.Sprintf("%s fails to escape and collapses", actor.Name)
		r.changed(ctx, st, actor)
		return result, nil
	}

	pick, err := dice.Pick(r.roller, len(opponents))
	if err != nil {
		return nil, combaterr.WrapWithCode(err, combaterr.CodeInternal, "failed to pick pursuer")
	}

	retaliation, err := r.strike(ctx, st, opponents[pick], actor)
	if err != nil {
		return nil, err
	}
	result.Retaliation = retaliation
	result.TargetStatus = actor.Status
	result.Message = fmt.Sprintf("%s fails to escape! %s", actor.Name, retaliation.Message)
	return result, nil
}

// changed persists a mutated combatant and announces it. Both are best effort.
func (r *Resolver) changed(ctx context.Context, st *State, c *combat.Combatant) {
	if r.sink != nil {
		if err := r.sink.Persist(ctx, c); err != nil {
			log.Printf("Resolver: failed to persist %s: %v", c.ID, err)
		}
	}

	if r.bus != nil {
		err := r.bus.Publish(&events.Event{
			Type:       events.EventTypeCharacterUpdated,
			SessionID:  st.SessionID,
			Round:      st.Round,
			Wave:       st.Wave,
			OccurredAt: time.Now().UTC(),
			Combatant:  c,
		})
		if err != nil {
			log.Printf("Resolver: failed to publish update for %s: %v", c.ID, err)
		}
	}
}
