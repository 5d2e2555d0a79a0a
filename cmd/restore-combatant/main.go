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
	if len(os.Args) < 2 {
		fmt.Println("Usage: restore-combatant <combatant-id>")
		os.Exit(1)
	}

	combatantID := os.Args[1]
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

	// Test connection first
	if _, pingErr := client.Ping(ctx).Result(); pingErr != nil {
		log.Fatalf("Failed to connect to Redis: %v", pingErr)
	}
	defer func() {
		clientErr := client.Close()
		if clientErr != nil {
			log.Printf("Failed to close Redis connection: %v", clientErr)
		}
	}()

	repo := combatants.NewRedisRepository(&combatants.RedisRepoConfig{
		Client: client,
	})

	c, err := repo.Get(ctx, combatantID)
	if err != nil {
		log.Printf("Failed to get combatant: %v", err)
		return
	}

	log.Printf("Combatant: %s, HP: %d/%d, Status: %s, Conditions: %d",
		c.Name, c.HP, c.MaxHP, c.Status, len(c.Conditions))

	restore(c)

	if err := repo.Persist(ctx, c); err != nil {
		log.Printf("Failed to save combatant: %v", err)
		return
	}

	log.Printf("Restored %s to %d/%d HP", c.Name, c.HP, c.MaxHP)
}

// restore brings a combatant back to full health with no lingering effects
func restore(c *combat.Combatant) {
	c.Revive(c.MaxHP)
	c.Conditions = nil
	c.Defending = false
}
