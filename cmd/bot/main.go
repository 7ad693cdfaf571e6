package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/PineFruitDev/TSTemplateBot/internal/commands"
	"github.com/PineFruitDev/TSTemplateBot/internal/config"
	"github.com/PineFruitDev/TSTemplateBot/internal/discord"
	"github.com/PineFruitDev/TSTemplateBot/internal/logger"
	"github.com/PineFruitDev/TSTemplateBot/internal/version"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg, err := config.New()
	if err != nil {
		logger.Fatal("load configuration", "error", err)
	}
	logger.Init(cfg.LogFile, logger.ParseLevel(cfg.LogLevel))

	logger.Info("starting bot", "app", version.AppName, "version", version.Version)

	reg, err := commands.New(cfg, time.Now())
	if err != nil {
		logger.Fatal("build command catalog", "error", err)
	}

	bot := discord.NewBot(cfg, reg)

	errCh := make(chan error, 1)
	go func() {
		if err := bot.Run(ctx); err != nil {
			errCh <- err
		}
		close(errCh)
	}()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)

	select {
	case s := <-sig:
		logger.Info("received signal, shutting down", "signal", s.String())
		cancel()
		<-errCh
	case err := <-errCh:
		if err != nil {
			logger.Error("bot stopped with error", "error", err)
		}
		cancel()
	}

	logger.Info("bot exited cleanly")
}
