package combatants

import (
	"context"
	"encoding/json"
	"sort"
	"sync"

	"github.com/KirkDiggler/dungeon-combat/internal/domain/combat"
	combaterr "github.com/KirkDiggler/dungeon-combat/internal/errors"
)

type inMemoryRepository struct {
	mu        sync.RWMutex
	snapshots map[string][]byte
	byKind    map[combat.Kind]map[string]bool
}

// NewInMemoryRepository creates a repository that keeps JSON snapshots in memory
func NewInMemoryRepository() Repository {
	return &inMemoryRepository{
		snapshots: make(map[string][]byte),
		byKind:    make(map[combat.Kind]map[string]bool),
	}
}

// Persist stores a copy so later mutations of the live combatant are not visible
func (r *inMemoryRepository) Persist(_ context.Context, c *combat.Combatant) error {
	if c == nil {
		return combaterr.InvalidArgument("combatant cannot be nil")
	}
	if c.ID == "" {
		return combaterr.InvalidArgument("combatant ID is required")
	}

	data, err := json.Marshal(c)
	if err != nil {
		return combaterr.Wrapf(err, "failed to marshal combatant %s", c.ID)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.snapshots[c.ID] = data
	if r.byKind[c.Kind] == nil {
		r.byKind[c.Kind] = make(map[string]bool)
	}
	r.byKind[c.Kind][c.ID] = true
	return nil
}

func (r *inMemoryRepository) Get(_ context.Context, id string) (*combat.Combatant, error) {
	r.mu.RLock()
	data, exists := r.snapshots[id]
	r.mu.RUnlock()

	if !exists {
		return nil, combaterr.NotFoundf("combatant %s not found", id).WithMeta("combatant_id", id)
	}

	var c combat.Combatant
	if err := json.Unmarshal(data, &c); err != nil {
		return nil, combaterr.Wrapf(err, "failed to unmarshal combatant %s", id)
	}
	return &c, nil
}

func (r *inMemoryRepository) ListByKind(ctx context.Context, kind combat.Kind) ([]*combat.Combatant, error) {
	r.mu.RLock()
	ids := make([]string, 0, len(r.byKind[kind]))
	for id := range r.byKind[kind] {
		ids = append(ids, id)
	}
	r.mu.RUnlock()
	sort.Strings(ids)

	out := make([]*combat.Combatant, 0, len(ids))
	for _, id := range ids {
		c, err := r.Get(ctx, id)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, nil
}

func (r *inMemoryRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.snapshots[id]; !exists {
		return combaterr.NotFoundf("combatant %s not found", id).WithMeta("combatant_id", id)
	}
	delete(r.snapshots, id)
	for _, ids := range r.byKind {
		delete(ids, id)
	}
	return nil
}
