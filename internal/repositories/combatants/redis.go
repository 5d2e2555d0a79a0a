package combatants

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/errgroup"

	"github.com/KirkDiggler/dungeon-combat/internal/domain/combat"
	combaterr "github.com/KirkDiggler/dungeon-combat/internal/errors"
)

// Data is the stored form of a combatant snapshot
type Data struct {
	Combatant *combat.Combatant `json:"combatant"`
	UpdatedAt time.Time         `json:"updated_at"`
}

type redisRepo struct {
	client       redis.UniversalClient
	timeProvider TimeProvider
}

// RedisRepoConfig holds configuration for the Redis repository
type RedisRepoConfig struct {
	Client       redis.UniversalClient
	TimeProvider TimeProvider
}

// NewRedisRepository creates a Redis-backed combatant repository
func NewRedisRepository(cfg *RedisRepoConfig) Repository {
	if cfg == nil {
		panic("RedisRepoConfig cannot be nil")
	}
	if cfg.Client == nil {
		panic("Redis client cannot be nil")
	}

	timeProvider := cfg.TimeProvider
	if timeProvider == nil {
		timeProvider = RealTimeProvider{}
	}

	return &redisRepo{
		client:       cfg.Client,
		timeProvider: timeProvider,
	}
}

func key(id string) string {
	return fmt.Sprintf("combatant:%s", id)
}

func kindKey(kind combat.Kind) string {
	return fmt.Sprintf("combatants:%s", kind)
}

// Persist overwrites the snapshot and indexes it by kind
func (r *redisRepo) Persist(ctx context.Context, c *combat.Combatant) error {
	if c == nil {
		return combaterr.InvalidArgument("combatant cannot be nil")
	}
	if c.ID == "" {
		return combaterr.InvalidArgument("combatant ID is required")
	}

	jsonData, err := json.Marshal(&Data{
		Combatant: c,
		UpdatedAt: r.timeProvider.Now(),
	})
	if err != nil {
		return combaterr.Wrapf(err, "failed to marshal combatant %s", c.ID)
	}

	pipe := r.client.Pipeline()
	pipe.Set(ctx, key(c.ID), string(jsonData), 0)
	pipe.SAdd(ctx, kindKey(c.Kind), c.ID)
	if _, err := pipe.Exec(ctx); err != nil {
		return combaterr.WrapWithCode(err, combaterr.CodeUnavailable, "failed to persist combatant").
			WithMeta("combatant_id", c.ID)
	}

	return nil
}

// Get loads the latest snapshot
func (r *redisRepo) Get(ctx context.Context, id string) (*combat.Combatant, error) {
	if id == "" {
		return nil, combaterr.InvalidArgument("combatant ID is required")
	}

	jsonData, err := r.client.Get(ctx, key(id)).Bytes()
	if err == redis.Nil {
		return nil, combaterr.NotFoundf("combatant %s not found", id).WithMeta("combatant_id", id)
	}
	if err != nil {
		return nil, combaterr.WrapWithCode(err, combaterr.CodeUnavailable, "failed to get combatant")
	}

	var data Data
	if err := json.Unmarshal(jsonData, &data); err != nil {
		return nil, combaterr.Wrapf(err, "failed to unmarshal combatant %s", id)
	}
	if data.Combatant == nil {
		return nil, combaterr.Internalf("combatant %s has no snapshot", id)
	}

	return data.Combatant, nil
}

// ListByKind returns every stored combatant of a kind, sorted by ID
func (r *redisRepo) ListByKind(ctx context.Context, kind combat.Kind) ([]*combat.Combatant, error) {
	ids, err := r.client.SMembers(ctx, kindKey(kind)).Result()
	if err != nil {
		return nil, combaterr.WrapWithCode(err, combaterr.CodeUnavailable, "failed to list combatants")
	}
	sort.Strings(ids)

	out := make([]*combat.Combatant, len(ids))

	g, ctx := errgroup.WithContext(ctx)
	for i, id := range ids {
		i, id := i, id
		g.Go(func() error {
			c, err := r.Get(ctx, id)
			if err != nil {
				return combaterr.Wrapf(err, "failed to get combatant %s", id)
			}
			out[i] = c
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return out, nil
}

// Delete removes the snapshot and its index entry
func (r *redisRepo) Delete(ctx context.Context, id string) error {
	c, err := r.Get(ctx, id)
	if err != nil {
		return err
	}

	pipe := r.client.Pipeline()
	pipe.Del(ctx, key(id))
	pipe.SRem(ctx, kindKey(c.Kind), id)
	if _, err := pipe.Exec(ctx); err != nil {
		return combaterr.WrapWithCode(err, combaterr.CodeUnavailable, "failed to delete combatant").
			WithMeta("combatant_id", id)
	}

	return nil
}
