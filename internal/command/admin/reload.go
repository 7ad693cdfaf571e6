package admin

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/PineFruitDev/TSTemplateBot/internal/command"
	"github.com/PineFruitDev/TSTemplateBot/internal/discord"
	"github.com/bwmarrin/discordgo"
)

// publishTimeout bounds a reload; bulk overwrites across many guilds can
// crawl once Discord starts rate limiting.
const publishTimeout = 2 * time.Minute

// Reload republishes the slash command set so Discord picks up definition
// changes without a restart.
type Reload struct {
	command.Access

	// Registry is wired after construction, once the full command set
	// (including this command) exists.
	Registry *command.Registry

	appID    string
	guildIDs []string
}

func NewReload(appID string, guildIDs []string) *Reload {
	return &Reload{
		Access:   command.Access{Restriction: command.RestrictOwnerOnly},
		appID:    appID,
		guildIDs: guildIDs,
	}
}

func (c *Reload) Descriptor() command.Descriptor {
	return command.Descriptor{
		Name:        "reload",
		Description: "Republish the slash command set to Discord",
		Usage:       "/reload",
		Examples:    []string{"/reload"},
		Category:    "Admin",
	}
}

func (c *Reload) Definition() *discordgo.ApplicationCommand {
	d := c.Descriptor()
	return &discordgo.ApplicationCommand{
		Name:        d.Name,
		Description: d.Description,
		Type:        discordgo.ChatApplicationCommand,
	}
}

func (c *Reload) Execute(inv *command.Invocation) error {
	if c.Registry == nil {
		return errors.New("reload: registry not wired")
	}
	if err := inv.Defer(); err != nil {
		return fmt.Errorf("acknowledge reload: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), publishTimeout)
	defer cancel()

	defs := c.Registry.Definitions()
	if err := discord.PublishCommands(ctx, inv.Session, c.appID, c.guildIDs, defs); err != nil {
		return fmt.Errorf("republish commands: %w", err)
	}
	return inv.EditReply(fmt.Sprintf("Republished %d commands.", len(defs)))
}
