package general

import (
	"errors"
	"fmt"
	"strings"

	"github.com/PineFruitDev/TSTemplateBot/internal/command"
	"github.com/PineFruitDev/TSTemplateBot/internal/version"
	"github.com/bwmarrin/discordgo"
	embed "github.com/clinet/discordgo-embed"
)

// Help lists every registered command grouped by category, or describes a
// single command in detail. The command option autocompletes from the
// registry.
type Help struct {
	command.Access

	// Index is wired after the registry is built, since help describes the
	// very registry it belongs to.
	Index *command.HelpIndex
}

func NewHelp() *Help { return &Help{} }

func (c *Help) Descriptor() command.Descriptor {
	return command.Descriptor{
		Name:        "help",
		Description: "Show the available commands",
		Usage:       "/help [command:<name>]",
		Examples:    []string{"/help", "/help command:ping"},
		Category:    "General",
	}
}

func (c *Help) Definition() *discordgo.ApplicationCommand {
	d := c.Descriptor()
	return &discordgo.ApplicationCommand{
		Name:        d.Name,
		Description: d.Description,
		Type:        discordgo.ChatApplicationCommand,
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:         discordgo.ApplicationCommandOptionString,
				Name:         "command",
				Description:  "Command to describe in detail",
				Autocomplete: true,
			},
		},
	}
}

func (c *Help) Execute(inv *command.Invocation) error {
	if c.Index == nil {
		return errors.New("help index not wired")
	}
	if opt := inv.Option("command"); opt != nil {
		name := strings.ToLower(strings.TrimPrefix(strings.TrimSpace(opt.StringValue()), "/"))
		return c.describeOne(inv, name)
	}
	return c.listAll(inv)
}

// Complete suggests command names matching what the caller typed so far.
func (c *Help) Complete(inv *command.Invocation) []*discordgo.ApplicationCommandOptionChoice {
	if c.Index == nil {
		return nil
	}
	partial := ""
	for _, opt := range inv.Options() {
		if opt.Focused && opt.Type == discordgo.ApplicationCommandOptionString {
			partial = opt.StringValue()
			break
		}
	}

	entries := c.Index.Complete(partial)
	choices := make([]*discordgo.ApplicationCommandOptionChoice, 0, len(entries))
	for _, e := range entries {
		choices = append(choices, &discordgo.ApplicationCommandOptionChoice{
			Name:  e.Name,
			Value: e.Name,
		})
	}
	return choices
}

func (c *Help) describeOne(inv *command.Invocation, name string) error {
	desc, ok := c.Index.Describe(name)
	if !ok {
		return inv.ReplyEphemeral(fmt.Sprintf("No command named `%s`.", name))
	}

	msg := embed.NewEmbed().
		SetTitle("/" + desc.Name).
		SetDescription(desc.Description).
		SetColor(command.EmbedColor)
	if desc.Usage != "" {
		msg = msg.AddField("Usage", desc.Usage)
	}
	if len(desc.Examples) > 0 {
		msg = msg.AddField("Examples", strings.Join(desc.Examples, "\n"))
	}
	if desc.Category != "" {
		msg = msg.AddField("Category", desc.Category)
	}

	return inv.ReplyEmbedEphemeral(msg.MessageEmbed)
}

func (c *Help) listAll(inv *command.Invocation) error {
	msg := embed.NewEmbed().
		SetTitle(version.AppName + " Help").
		SetDescription("Use `/help command:<name>` for details on a single command.").
		SetColor(command.EmbedColor)

	for _, cat := range c.Index.DescribeAll() {
		var sb strings.Builder
		for _, entry := range cat.Entries {
			fmt.Fprintf(&sb, "`/%s` - %s\n", entry.Name, entry.Short)
		}
		msg = msg.AddField(cat.Category, sb.String())
	}

	return inv.ReplyEmbedEphemeral(msg.MessageEmbed)
}
