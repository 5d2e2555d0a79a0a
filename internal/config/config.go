package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds all configuration for the simulator and its collaborators
type Config struct {
	Redis     RedisConfig
	Reports   ReportsConfig
	Discord   DiscordConfig
	DND5E     DND5EConfig
	Combat    CombatConfig
	Formation FormationConfig
}

// RedisConfig holds Redis-specific configuration. An empty URL selects the in-memory sink.
type RedisConfig struct {
	URL string `env:"REDIS_URL"`
}

// ReportsConfig configures the SQLite outcome archive. An empty path disables it.
type ReportsConfig struct {
	DBPath string `env:"REPORTS_DB_PATH"`
}

// DiscordConfig holds the optional combat notifier settings
type DiscordConfig struct {
	Token     string `env:"DISCORD_TOKEN"`
	ChannelID string `env:"DISCORD_CHANNEL_ID"`
}

// Enabled reports whether both token and channel are set
func (c DiscordConfig) Enabled() bool {
	return c.Token != "" && c.ChannelID != ""
}

// DND5EConfig holds D&D 5e API configuration
type DND5EConfig struct {
	Timeout time.Duration `env:"DND5E_TIMEOUT" envDefault:"10s"`
	UseLoot bool          `env:"USE_DND5E_LOOT" envDefault:"false"`
}

// CombatConfig holds encounter tuning knobs
type CombatConfig struct {
	Locale   string `env:"COMBAT_LOCALE" envDefault:"en"`
	DiceSeed int64  `env:"DICE_SEED" envDefault:"0"`
}

// FormationConfig holds row capacities
type FormationConfig struct {
	FrontCapacity int `env:"FORMATION_FRONT_CAPACITY" envDefault:"3"`
	BackCapacity  int `env:"FORMATION_BACK_CAPACITY" envDefault:"3"`
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	if cfg.Formation.FrontCapacity < 1 || cfg.Formation.BackCapacity < 0 {
		return nil, fmt.Errorf("formation capacities must be positive (front=%d back=%d)",
			cfg.Formation.FrontCapacity, cfg.Formation.BackCapacity)
	}
	if cfg.Discord.Token != "" && cfg.Discord.ChannelID == "" {
		return nil, fmt.Errorf("DISCORD_CHANNEL_ID is required when DISCORD_TOKEN is set")
	}

	return cfg, nil
}
