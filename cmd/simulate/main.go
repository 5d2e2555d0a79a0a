package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/dungeon-combat/internal/clients/dnd5e"
	"github.com/KirkDiggler/dungeon-combat/internal/config"
	"github.com/KirkDiggler/dungeon-combat/internal/dice"
	"github.com/KirkDiggler/dungeon-combat/internal/events"
	"github.com/KirkDiggler/dungeon-combat/internal/interfaces"
	"github.com/KirkDiggler/dungeon-combat/internal/notify/discord"
	"github.com/KirkDiggler/dungeon-combat/internal/repositories/combatants"
	"github.com/KirkDiggler/dungeon-combat/internal/repositories/reports"
	"github.com/KirkDiggler/dungeon-combat/internal/services"
	"github.com/KirkDiggler/dungeon-combat/internal/services/encounter"
	"github.com/KirkDiggler/dungeon-combat/internal/services/terminology"
	"github.com/KirkDiggler/dungeon-combat/internal/uuid"
)

func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	} else {
		log.Println("Loaded .env file")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var roller dice.Roller
	var ids uuid.Generator
	if cfg.Combat.DiceSeed != 0 {
		log.Printf("Using seeded dice (seed=%d)", cfg.Combat.DiceSeed)
		roller = dice.NewSeededRoller(cfg.Combat.DiceSeed)
		ids = uuid.NewSequenceGenerator("sim")
	} else {
		roller = dice.NewRandomRoller()
		ids = uuid.NewPrefixedGenerator("combat")
	}

	terms, err := terminology.NewProvider(cfg.Combat.Locale)
	if err != nil {
		log.Printf("Unknown locale %q, using defaults: %v", cfg.Combat.Locale, err)
		terms = terminology.Default()
	}

	bus := events.NewBus()

	var redisClient *redis.Client
	sink := combatants.NewInMemoryRepository()
	if cfg.Redis.URL != "" {
		log.Printf("Connecting to Redis at: %s", cfg.Redis.URL)

		opts, parseErr := redis.ParseURL(cfg.Redis.URL)
		if parseErr != nil {
			log.Printf("Failed to parse Redis URL: %v", parseErr)
			log.Println("Falling back to in-memory persistence")
		} else {
			redisClient = redis.NewClient(opts)

			pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
			if pingErr := redisClient.Ping(pingCtx).Err(); pingErr != nil {
				log.Printf("Failed to connect to Redis: %v", pingErr)
				log.Println("Falling back to in-memory persistence")
				_ = redisClient.Close()
				redisClient = nil
			} else {
				log.Println("Successfully connected to Redis")
				sink = combatants.NewRedisRepository(&combatants.RedisRepoConfig{Client: redisClient})
			}
			cancel()
		}
	} else {
		log.Println("No REDIS_URL found, using in-memory persistence")
	}
	defer func() {
		if redisClient != nil {
			if closeErr := redisClient.Close(); closeErr != nil {
				log.Printf("Failed to close Redis connection: %v", closeErr)
			}
		}
	}()

	if cfg.Reports.DBPath != "" {
		store, openErr := reports.Open(cfg.Reports.DBPath)
		if openErr != nil {
			log.Fatalf("Failed to open reports database: %v", openErr)
		}
		defer func() {
			if closeErr := store.Close(); closeErr != nil {
				log.Printf("Failed to close reports database: %v", closeErr)
			}
		}()
		reports.NewArchiver(store).Register(bus)
		log.Printf("Archiving outcomes to %s", cfg.Reports.DBPath)
	}

	if cfg.Discord.Enabled() {
		dg, dgErr := discordgo.New("Bot " + cfg.Discord.Token)
		if dgErr != nil {
			log.Fatalf("Failed to create Discord session: %v", dgErr)
		}
		discord.NewNotifier(&discord.NotifierConfig{
			Sender:      dg,
			ChannelID:   cfg.Discord.ChannelID,
			Terminology: terms,
		}).Register(bus)
		log.Printf("Posting combat updates to channel %s", cfg.Discord.ChannelID)
	}

	var dndClient dnd5e.Client
	if cfg.DND5E.UseLoot {
		dndClient, err = dnd5e.New(&dnd5e.Config{
			HttpClient: &http.Client{
				Timeout: cfg.DND5E.Timeout,
			},
		})
		if err != nil {
			log.Fatalf("Failed to create D&D 5e client: %v", err)
		}
	}

	provider := services.NewProvider(&services.ProviderConfig{
		Roller:        roller,
		DNDClient:     dndClient,
		Repository:    sink,
		Bus:           bus,
		Terminology:   terms,
		UUIDGenerator: ids,
		FrontCapacity: cfg.Formation.FrontCapacity,
		BackCapacity:  cfg.Formation.BackCapacity,
	})
	manager := provider.EncounterManager

	session := manager.Create()
	defer func() {
		if delErr := manager.Delete(session.ID()); delErr != nil {
			log.Printf("Failed to delete session %s: %v", session.ID(), delErr)
		}
	}()

	roster, err := newParty()
	if err != nil {
		log.Fatalf("Failed to build party: %v", err)
	}

	if err := run(ctx, session, roster, newWaves(), terms); err != nil {
		log.Printf("Simulation stopped: %v", err)
		return
	}
}

func run(ctx context.Context, session *encounter.Session, roster interfaces.PartyProvider, waves []*waveSpec, terms interfaces.TerminologyProvider) error {
	first, err := session.Start(ctx, roster, buildWaves(waves), &encounter.Options{})
	if err != nil {
		return fmt.Errorf("start combat: %w", err)
	}
	fmt.Printf("Combat %s begins, %s acts first\n", session.ID(), first.Name)

	outcome, err := autoplay(ctx, session)
	if err != nil {
		return err
	}

	fmt.Println()
	for _, line := range outcome.Log {
		fmt.Println(line)
	}
	fmt.Println()
	fmt.Printf("%s after %d rounds, %d/%d waves cleared\n",
		terms.Term(terminology.OutcomeKey(outcome.Kind)), outcome.Rounds, outcome.WavesCleared, len(waves))
	if outcome.Rewards != nil {
		fmt.Printf("Rewards: %d exp, %d gold, %d items\n",
			outcome.Rewards.Experience, outcome.Rewards.Gold, len(outcome.Rewards.Loot))
		for _, item := range outcome.Rewards.Loot {
			fmt.Printf("  - %s (%s, %d gp)\n", item.Name, item.Kind, item.Value)
		}
	}
	for _, c := range outcome.Disconnected {
		fmt.Printf("Fled: %s\n", c.Name)
	}
	return nil
}
