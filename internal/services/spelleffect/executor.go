package spelleffect

import (
	"context"
	"fmt"
	"sync"

	"github.com/KirkDiggler/dungeon-combat/internal/dice"
	"github.com/KirkDiggler/dungeon-combat/internal/domain/combat"
	"github.com/KirkDiggler/dungeon-combat/internal/interfaces"
)

// Handler resolves one effect variant
type Handler interface {
	// Effect returns the effect tag this handler resolves
	Effect() combat.Effect

	// Apply mutates caster and target and describes the result
	Apply(ctx context.Context, req *interfaces.EffectRequest) (*combat.EffectOutcome, error)
}

// Executor dispatches spells to the handler registered for their effect tag
type Executor struct {
	mu       sync.RWMutex
	handlers map[combat.Effect]Handler
}

// ExecutorConfig holds configuration for the executor
type ExecutorConfig struct {
	Roller dice.Roller
}

// NewExecutor creates an executor with the nine standard effects registered
func NewExecutor(cfg *ExecutorConfig) *Executor {
	if cfg == nil || cfg.Roller == nil {
		panic("dice roller is required")
	}

	e := NewEmptyExecutor()
	for _, h := range Defaults(cfg.Roller) {
		e.Register(h)
	}
	return e
}

// NewEmptyExecutor creates an executor with no handlers. It is not Ready until one is registered.
func NewEmptyExecutor() *Executor {
	return &Executor{handlers: make(map[combat.Effect]Handler)}
}

// Register adds or replaces the handler for its effect
func (e *Executor) Register(h Handler) {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.handlers[h.Effect()] = h
}

// Has reports whether an effect has a handler
func (e *Executor) Has(effect combat.Effect) bool {
	e.mu.RLock()
	defer e.mu.RUnlock()

	_, ok := e.handlers[effect]
	return ok
}

// Ready reports whether any handler is registered
func (e *Executor) Ready() bool {
	e.mu.RLock()
	defer e.mu.RUnlock()

	return len(e.handlers) > 0
}

// Execute resolves the spell's effect. An effect without a handler does nothing.
func (e *Executor) Execute(ctx context.Context, req *interfaces.EffectRequest) (*combat.EffectOutcome, error) {
	e.mu.RLock()
	h, ok := e.handlers[req.Spell.Effect]
	e.mu.RUnlock()

	if !ok {
		return &combat.EffectOutcome{
			Effect:  req.Spell.Effect,
			Message: fmt.Sprintf("%s has no effect", req.Spell.Name),
		}, nil
	}
	return h.Apply(ctx, req)
}

// Defaults returns the standard handlers
func Defaults(roller dice.Roller) []Handler {
	return []Handler{
		&damageHandler{roller: roller},
		&healHandler{roller: roller},
		&buffHandler{},
		&protectionHandler{},
		&controlHandler{roller: roller},
		&utilityHandler{},
		&dispelHandler{},
		&concealmentHandler{},
		&resurrectionHandler{},
	}
}
