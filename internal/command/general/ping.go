// Package general holds the commands available to every caller.
package general

import (
	"fmt"

	"github.com/PineFruitDev/TSTemplateBot/internal/command"
	"github.com/bwmarrin/discordgo"
)

// Ping reports the gateway heartbeat latency.
type Ping struct {
	command.Access
}

func NewPing() *Ping { return &Ping{} }

func (c *Ping) Descriptor() command.Descriptor {
	return command.Descriptor{
		Name:        "ping",
		Description: "Check the bot's response time",
		Usage:       "/ping",
		Examples:    []string{"/ping"},
		Category:    "General",
	}
}

func (c *Ping) Definition() *discordgo.ApplicationCommand {
	d := c.Descriptor()
	return &discordgo.ApplicationCommand{
		Name:        d.Name,
		Description: d.Description,
		Type:        discordgo.ChatApplicationCommand,
	}
}

func (c *Ping) Execute(inv *command.Invocation) error {
	latency := inv.Session.HeartbeatLatency().Milliseconds()
	return inv.Reply(fmt.Sprintf("🏓 Pong! Response time: `%dms`", latency))
}
