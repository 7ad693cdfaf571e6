// Registers the slash command set with Discord and exits. Meant for deploy
// pipelines, so the bot itself can run with REGISTER_COMMANDS_ON_START off.
package main

import (
	"context"
	"time"

	"github.com/PineFruitDev/TSTemplateBot/internal/commands"
	"github.com/PineFruitDev/TSTemplateBot/internal/config"
	"github.com/PineFruitDev/TSTemplateBot/internal/discord"
	"github.com/PineFruitDev/TSTemplateBot/internal/logger"
	"github.com/bwmarrin/discordgo"
)

func main() {
	cfg, err := config.New()
	if err != nil {
		logger.Fatal("load configuration", "error", err)
	}
	logger.Init(cfg.LogFile, logger.ParseLevel(cfg.LogLevel))

	reg, err := commands.New(cfg, time.Now())
	if err != nil {
		logger.Fatal("build command catalog", "error", err)
	}

	// REST only; the session never opens a gateway connection.
	dg, err := discordgo.New("Bot " + cfg.DiscordToken)
	if err != nil {
		logger.Fatal("create session", "error", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	if err := discord.PublishCommands(ctx, dg, cfg.AppID, cfg.GuildIDs, reg.Definitions()); err != nil {
		logger.Fatal("publish commands", "error", err)
	}
	logger.Info("command registration complete", "commands", reg.Len())
}
