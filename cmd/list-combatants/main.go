package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/dungeon-combat/internal/domain/combat"
	"github.com/KirkDiggler/dungeon-combat/internal/repositories/combatants"
)

func main() {
	ctx := context.Background()

	// Set up Redis
	redisURL := os.Getenv("REDIS_URL")
	if redisURL == "" {
		redisURL = "redis://localhost:6379/0"
	}

	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		log.Fatalf("Failed to parse Redis URL: %v", err)
	}

	client := redis.NewClient(opts)
	defer client.Close()

	// Test connection
	if _, pingErr := client.Ping(ctx).Result(); pingErr != nil {
		log.Fatalf("Failed to connect to Redis: %v", pingErr)
	}

	repo := combatants.NewRedisRepository(&combatants.RedisRepoConfig{Client: client})

	for _, kind := range []combat.Kind{combat.KindPlayer, combat.KindMonster} {
		list, listErr := repo.ListByKind(ctx, kind)
		if listErr != nil {
			log.Fatalf("Failed to list %s combatants: %v", kind, listErr)
		}

		fmt.Printf("Found %d %s combatants:\n", len(list), kind)
		for _, c := range list {
			fmt.Printf("  %s: %s L%d %d/%d HP (%s)\n", c.ID, c.Name, c.Level, c.HP, c.MaxHP, c.Status)
		}
		fmt.Println()
	}
}
