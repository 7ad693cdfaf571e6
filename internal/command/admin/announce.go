// Package admin holds commands gated behind elevated capabilities or the
// owner list.
package admin

import (
	"fmt"

	"github.com/PineFruitDev/TSTemplateBot/internal/command"
	"github.com/bwmarrin/discordgo"
	embed "github.com/clinet/discordgo-embed"
)

// Announce posts a styled announcement embed to a chosen channel.
type Announce struct {
	command.Access
}

func NewAnnounce() *Announce {
	return &Announce{Access: command.Access{
		Restriction:  command.RestrictGuildOnly,
		Capabilities: []command.Capability{command.CapManageServer},
	}}
}

func (c *Announce) Descriptor() command.Descriptor {
	return command.Descriptor{
		Name:        "announce",
		Description: "Post an announcement to a channel",
		Usage:       "/announce message:<text> [channel:#channel] [title:<text>]",
		Examples: []string{
			"/announce message:Maintenance starts at midnight UTC",
			"/announce channel:#news message:The event is live title:Event",
		},
		Category: "Admin",
	}
}

func (c *Announce) Definition() *discordgo.ApplicationCommand {
	d := c.Descriptor()
	return &discordgo.ApplicationCommand{
		Name:        d.Name,
		Description: d.Description,
		Type:        discordgo.ChatApplicationCommand,
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "message",
				Description: "Announcement text",
				Required:    true,
			},
			{
				Type:        discordgo.ApplicationCommandOptionChannel,
				Name:        "channel",
				Description: "Channel to post in, defaults to the current one",
				ChannelTypes: []discordgo.ChannelType{
					discordgo.ChannelTypeGuildText,
					discordgo.ChannelTypeGuildNews,
				},
			},
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "title",
				Description: "Optional headline",
			},
		},
	}
}

func (c *Announce) Execute(inv *command.Invocation) error {
	opt := inv.Option("message")
	if opt == nil {
		return inv.ReplyEphemeral("The announcement needs a message.")
	}
	text := opt.StringValue()

	channelID := inv.Event.ChannelID
	if ch := inv.Option("channel"); ch != nil {
		channelID = ch.ChannelValue(nil).ID
	}

	title := "📣 Announcement"
	if t := inv.Option("title"); t != nil && t.StringValue() != "" {
		title = "📣 " + t.StringValue()
	}

	msg := embed.NewEmbed().
		SetTitle(title).
		SetDescription(text).
		SetColor(command.EmbedColor).
		SetFooter(fmt.Sprintf("Posted by %s", inv.Caller.Username))

	if _, err := inv.Session.ChannelMessageSendEmbed(channelID, msg.MessageEmbed); err != nil {
		return fmt.Errorf("send announcement to channel %s: %w", channelID, err)
	}
	return inv.ReplyEphemeral(fmt.Sprintf("Announcement posted in <#%s>.", channelID))
}
