// Package gatekeeper parses gatekeeper command flags and launches the runtime.
package gatekeeper

import (
	"context"
	"flag"

	entrypoint "github.com/solboost/boostgate/internal/platform/cmd"
	registration "github.com/solboost/boostgate/internal/services/registration/app"
	"github.com/solboost/boostgate/internal/services/registration/domain"
)

// Config holds gatekeeper command configuration.
type Config struct {
	Token             string `env:"BOOSTGATE_TOKEN"`
	AnnounceChannelID string `env:"BOOSTGATE_ANNOUNCE_CHANNEL_ID"`
	Capacity          int    `env:"BOOSTGATE_CAPACITY" envDefault:"99"`
	Port              int    `env:"BOOSTGATE_HEALTH_PORT" envDefault:"8090"`
	DBPath            string `env:"BOOSTGATE_DB_PATH" envDefault:"data/gatekeeper.db"`
}

// ParseConfig parses environment and flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}
	fs.StringVar(&cfg.Token, "token", cfg.Token, "The Discord bot token")
	fs.StringVar(&cfg.AnnounceChannelID, "announce-channel", cfg.AnnounceChannelID, "The announcement channel ID")
	fs.IntVar(&cfg.Capacity, "capacity", cfg.Capacity, "The standard registration cap")
	fs.IntVar(&cfg.Port, "port", cfg.Port, "The health gRPC server port")
	fs.StringVar(&cfg.DBPath, "db-path", cfg.DBPath, "The telemetry journal SQLite path (empty disables)")
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	if cfg.Capacity <= 0 {
		cfg.Capacity = domain.DefaultCapacity
	}
	return cfg, nil
}

// Run starts the gatekeeper runtime.
func Run(ctx context.Context, cfg Config) error {
	return entrypoint.RunWithTelemetry(ctx, entrypoint.ServiceGatekeeper, func(context.Context) error {
		return registration.Run(ctx, registration.RuntimeConfig{
			Token:             cfg.Token,
			AnnounceChannelID: cfg.AnnounceChannelID,
			Capacity:          cfg.Capacity,
			Port:              cfg.Port,
			DBPath:            cfg.DBPath,
		})
	})
}
