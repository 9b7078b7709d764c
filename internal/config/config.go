package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

// NotifyChannels holds the default destination channels for the notifier.
// Any of them may be overridden per guild through storage.
type NotifyChannels struct {
	Welcome     string `env:"CHANNEL_WELCOME"`
	Goodbye     string `env:"CHANNEL_GOODBYE"`
	DeletedMsg  string `env:"CHANNEL_DELETED_MSG"`
	RoleLog     string `env:"CHANNEL_ROLE_LOG"`
	VoiceJoin   string `env:"CHANNEL_VC_JOIN"`
	VoiceLeave  string `env:"CHANNEL_VC_LEAVE"`
	VoiceMove   string `env:"CHANNEL_VC_MOVE"`
	BotActivity string `env:"CHANNEL_BOT_ACTIVITY"`
}

type Config struct {
	DiscordToken  string `env:"DISCORD_TOKEN"`
	CommandPrefix string `env:"COMMAND_PREFIX" envDefault:"!"`
	StoragePath   string `env:"STORAGE_PATH" envDefault:"datastore.json"`

	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
	LogFile  string `env:"LOG_FILE"`

	StatusAddr string `env:"STATUS_ADDR" envDefault:":8787"`

	Notify NotifyChannels
}

// New loads .env (if present) and parses the environment into a Config.
func New() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Info().Msg("no .env file found, using system environment")
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse environment: %w", err)
	}

	if cfg.DiscordToken == "" {
		return nil, fmt.Errorf("DISCORD_TOKEN is not set")
	}

	return cfg, nil
}
