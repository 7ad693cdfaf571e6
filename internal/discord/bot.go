// Package discord connects the command registry to the Discord gateway:
// session lifecycle, interaction dispatch, and command publication.
package discord

import (
	"context"
	"fmt"

	"github.com/PineFruitDev/TSTemplateBot/internal/command"
	"github.com/PineFruitDev/TSTemplateBot/internal/config"
	"github.com/PineFruitDev/TSTemplateBot/internal/logger"
	"github.com/PineFruitDev/TSTemplateBot/internal/version"
	"github.com/bwmarrin/discordgo"
)

// Bot owns the gateway session and routes its interaction events through a
// dispatcher built over an immutable registry.
type Bot struct {
	session    *discordgo.Session
	cfg        *config.Config
	registry   *command.Registry
	dispatcher *Dispatcher
}

// NewBot wires a registry and config into a runnable bot.
func NewBot(cfg *config.Config, reg *command.Registry) *Bot {
	return &Bot{
		cfg:        cfg,
		registry:   reg,
		dispatcher: NewDispatcher(reg, cfg.Owners),
	}
}

// Run opens the gateway connection and blocks until ctx is cancelled.
func (b *Bot) Run(ctx context.Context) error {
	dg, err := discordgo.New("Bot " + b.cfg.DiscordToken)
	if err != nil {
		return fmt.Errorf("create session: %w", err)
	}
	b.session = dg

	// Slash interactions arrive regardless of intents; guild state is all we need.
	dg.Identify.Intents = discordgo.IntentsGuilds

	dg.AddHandler(b.onReady)
	dg.AddHandler(b.dispatcher.HandleInteraction)

	if err := dg.Open(); err != nil {
		return fmt.Errorf("open gateway: %w", err)
	}
	defer dg.Close()

	<-ctx.Done()
	logger.Info("shutdown signal received, closing gateway")
	return nil
}

func (b *Bot) onReady(s *discordgo.Session, r *discordgo.Ready) {
	logger.Info("gateway ready",
		"app", version.AppName,
		"username", r.User.Username,
		"guilds", len(r.Guilds),
		"commands", b.registry.Len(),
	)

	if !b.cfg.RegisterOnStart {
		logger.Info("startup command registration skipped")
		return
	}
	go func() {
		defs := b.registry.Definitions()
		if err := PublishCommands(context.Background(), s, b.cfg.AppID, b.cfg.GuildIDs, defs); err != nil {
			logger.Error("startup command registration failed", "error", err)
		}
	}()
}
