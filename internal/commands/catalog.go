// Package commands assembles the bot's command catalog.
package commands

import (
	"time"

	"github.com/PineFruitDev/TSTemplateBot/internal/command"
	"github.com/PineFruitDev/TSTemplateBot/internal/command/admin"
	"github.com/PineFruitDev/TSTemplateBot/internal/command/general"
	"github.com/PineFruitDev/TSTemplateBot/internal/config"
)

// New builds the full command registry. Registration order here is the order
// commands appear in help and documentation.
func New(cfg *config.Config, started time.Time) (*command.Registry, error) {
	help := general.NewHelp()
	reload := admin.NewReload(cfg.AppID, cfg.GuildIDs)

	reg, err := command.NewRegistry(
		general.NewPing(),
		general.NewUser(),
		general.NewServer(),
		general.NewInfo(started),
		help,
		admin.NewAnnounce(),
		reload,
	)
	if err != nil {
		return nil, err
	}

	// Help and reload operate on the registry that contains them; close the
	// cycle after construction, before any dispatch.
	help.Index = command.NewHelpIndex(reg)
	reload.Registry = reg

	return reg, nil
}
