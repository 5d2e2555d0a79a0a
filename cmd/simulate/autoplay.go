package main

import (
	"context"
	"fmt"
	"log"

	"github.com/KirkDiggler/dungeon-combat/internal/domain/combat"
	"github.com/KirkDiggler/dungeon-combat/internal/services/encounter"
)

// maxTurns stops a stalemate where neither side can reach the other
const maxTurns = 500

// autoplay drives both sides until combat ends
func autoplay(ctx context.Context, session *encounter.Session) (*combat.Outcome, error) {
	potions := map[string]int{"aldric": 1, "dara": 1}

	for turns := 0; turns < maxTurns; turns++ {
		if ctx.Err() != nil {
			log.Println("Interrupted, ending combat early")
			return session.EndCombat(context.WithoutCancel(ctx))
		}

		actor := session.CurrentActor()
		if actor == nil {
			return nil, fmt.Errorf("no actor in phase %s", session.Phase())
		}

		action := choose(session, actor, potions)
		turn, err := session.ProcessAction(ctx, action)
		if err != nil {
			return nil, fmt.Errorf("process %s for %s: %w", action.Type, actor.Name, err)
		}

		if rejected(turn.Result) {
			log.Printf("Simulate: %s cannot %s (%s), defending instead", actor.Name, action.Type, turn.Result.Reason)
			turn, err = session.ProcessAction(ctx, combat.Defend(actor.ID))
			if err != nil {
				return nil, fmt.Errorf("defend for %s: %w", actor.Name, err)
			}
		} else if action.Type == combat.ActionItem {
			potions[actor.ID]--
		}

		if turn.WaveAdvanced {
			fmt.Printf("Wave %d approaches\n", session.WaveNumber())
		}
		if turn.CombatEnded {
			return turn.Outcome, nil
		}
	}

	log.Printf("Simulate: no result after %d turns, ending combat", maxTurns)
	return session.EndCombat(ctx)
}

func rejected(result *combat.ActionResult) bool {
	return result != nil && !result.Success && result.Reason != "" && !result.Blocked
}

// choose picks an action: heal the wounded, spend spell charges, then attack
// the highest priority opponent
func choose(session *encounter.Session, actor *combat.Combatant, potions map[string]int) *combat.Action {
	field := session.Battlefield()
	allies := field.For(actor.Side()).Targets()
	opponents := field.For(actor.Side().Opponent()).Targets()
	if len(opponents) == 0 {
		return combat.Defend(actor.ID)
	}
	target := opponents[0]

	if actor.IsPlayer() {
		if actor.HP*3 < actor.MaxHP && potions[actor.ID] > 0 {
			return combat.UseItem(actor.ID, healingPotion, "")
		}
		if wounded := mostWounded(allies); wounded != nil && actor.HasMemorized(spellDios) {
			return combat.Cast(actor.ID, spellDios, wounded.ID)
		}
		if actor.HasMemorized(spellPorfic) && session.Round() == 1 {
			return combat.Cast(actor.ID, spellPorfic, "")
		}
		if len(opponents) > 2 && actor.HasMemorized(spellKatino) {
			return combat.Cast(actor.ID, spellKatino, target.ID)
		}
		if actor.HasMemorized(spellHalito) {
			return combat.Cast(actor.ID, spellHalito, target.ID)
		}
	}

	return combat.Attack(actor.ID, target.ID)
}

// mostWounded returns the living ally below half health with the fewest hit points
func mostWounded(allies []*combat.Combatant) *combat.Combatant {
	var pick *combat.Combatant
	for _, c := range allies {
		if c.HP*2 >= c.MaxHP {
			continue
		}
		if pick == nil || c.HP < pick.HP {
			pick = c
		}
	}
	return pick
}
