package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/KirkDiggler/dungeon-combat/internal/repositories/reports"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Println("Usage: show-reports <session-id>")
		os.Exit(1)
	}

	sessionID := os.Args[1]
	ctx := context.Background()

	dbPath := os.Getenv("REPORTS_DB_PATH")
	if dbPath == "" {
		dbPath = "reports.db"
	}

	store, err := reports.Open(dbPath)
	if err != nil {
		log.Fatalf("Failed to open reports database: %v", err)
	}
	defer func() {
		if closeErr := store.Close(); closeErr != nil {
			log.Printf("Failed to close reports database: %v", closeErr)
		}
	}()

	list, err := store.ListBySession(ctx, sessionID)
	if err != nil {
		log.Printf("Failed to list reports: %v", err)
		return
	}

	fmt.Printf("Found %d reports for session %s:\n", len(list), sessionID)
	for _, report := range list {
		fmt.Printf("\n#%d %s at %s\n", report.ID, report.Kind, report.EndedAt.Format("2006-01-02 15:04:05"))
		fmt.Printf("  Winner: %s\n", orNone(string(report.Winner)))
		fmt.Printf("  Rounds: %d, Waves cleared: %d\n", report.Rounds, report.WavesCleared)
		fmt.Printf("  Rewards: %d exp, %d gold, %d defeated\n", report.Experience, report.Gold, report.DefeatedEnemies)
		for _, item := range report.Loot {
			fmt.Printf("    %s (%s)\n", item.Name, item.Kind)
		}
		if len(report.Disconnected) > 0 {
			fmt.Printf("  Escaped: %v\n", report.Disconnected)
		}
		fmt.Printf("  Log: %d entries\n", len(report.Log))
		for _, line := range report.Log {
			fmt.Printf("    %s\n", line)
		}
	}
}

func orNone(value string) string {
	if value == "" {
		return "none"
	}
	return value
}
