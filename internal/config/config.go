// Package config reads the bot configuration from the environment, with an
// optional .env file for local development.
package config

import (
	"fmt"
	"log"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

func init() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, falling back to system environment variables")
	}
}

// Config is everything the bot reads from the environment.
type Config struct {
	DiscordToken string `env:"DISCORD_TOKEN,required"`

	// AppID overrides the application ID used for command registration.
	// Leave empty to resolve it from the bot account.
	AppID string `env:"DISCORD_APP_ID"`

	// GuildIDs are the guilds commands are published to. Empty means global
	// registration (propagation can take up to an hour on Discord's side).
	GuildIDs []string `env:"DISCORD_GUILD_IDS" envSeparator:","`

	// Owners are user IDs allowed to run owner-restricted commands.
	Owners []string `env:"BOT_OWNERS" envSeparator:","`

	// RegisterOnStart publishes the command set on every gateway ready.
	// Off by default; use the register tool or /reload instead.
	RegisterOnStart bool `env:"REGISTER_COMMANDS_ON_START" envDefault:"false"`

	LogFile  string `env:"LOG_FILE" envDefault:"logs/bot.log"`
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
}

// New parses the environment into a Config.
func New() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse environment: %w", err)
	}
	return cfg, nil
}
