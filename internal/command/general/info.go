package general

import (
	"fmt"
	"strings"
	"time"

	"github.com/PineFruitDev/TSTemplateBot/internal/command"
	"github.com/PineFruitDev/TSTemplateBot/internal/version"
	"github.com/bwmarrin/discordgo"
	embed "github.com/clinet/discordgo-embed"
)

// Info shows build and runtime details, handy for checking which deployment
// is actually live.
type Info struct {
	command.Access
	started time.Time
}

func NewInfo(started time.Time) *Info {
	return &Info{started: started}
}

func (c *Info) Descriptor() command.Descriptor {
	return command.Descriptor{
		Name:        "info",
		Description: "Show version and runtime details for the bot",
		Usage:       "/info",
		Examples:    []string{"/info"},
		Category:    "General",
	}
}

func (c *Info) Definition() *discordgo.ApplicationCommand {
	d := c.Descriptor()
	return &discordgo.ApplicationCommand{
		Name:        d.Name,
		Description: d.Description,
		Type:        discordgo.ChatApplicationCommand,
	}
}

func (c *Info) Execute(inv *command.Invocation) error {
	buildDate := "unknown"
	if version.BuildDate != "" {
		if t, err := time.Parse(time.RFC3339, version.BuildDate); err == nil {
			buildDate = t.Format("2006-01-02")
		}
	}
	goVer := strings.TrimPrefix(version.GoVersion, "go")

	msg := embed.NewEmbed().
		SetTitle(version.AppName).
		SetDescription(version.AppDescription).
		SetColor(command.EmbedColor).
		AddField("Version", version.Version).
		AddField("Built", buildDate).
		AddField("Go", goVer).
		AddField("Uptime", formatUptime(time.Since(c.started)))

	return inv.ReplyEmbed(msg.MessageEmbed)
}

func formatUptime(d time.Duration) string {
	d = d.Round(time.Second)
	days := int(d.Hours()) / 24
	hours := int(d.Hours()) % 24
	minutes := int(d.Minutes()) % 60
	switch {
	case days > 0:
		return fmt.Sprintf("%dd %dh %dm", days, hours, minutes)
	case hours > 0:
		return fmt.Sprintf("%dh %dm", hours, minutes)
	default:
		return fmt.Sprintf("%dm %ds", minutes, int(d.Seconds())%60)
	}
}
