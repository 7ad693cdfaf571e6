package general

import (
	"errors"

	"github.com/PineFruitDev/TSTemplateBot/internal/command"
	"github.com/bwmarrin/discordgo"
	embed "github.com/clinet/discordgo-embed"
)

// User shows profile details for the caller or a chosen member.
type User struct {
	command.Access
}

func NewUser() *User {
	return &User{Access: command.Access{Restriction: command.RestrictGuildOnly}}
}

func (c *User) Descriptor() command.Descriptor {
	return command.Descriptor{
		Name:        "user",
		Description: "Show profile details for you or another member",
		Usage:       "/user [target:@member]",
		Examples:    []string{"/user", "/user target:@someone"},
		Category:    "General",
	}
}

func (c *User) Definition() *discordgo.ApplicationCommand {
	d := c.Descriptor()
	return &discordgo.ApplicationCommand{
		Name:        d.Name,
		Description: d.Description,
		Type:        discordgo.ChatApplicationCommand,
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionUser,
				Name:        "target",
				Description: "Member to inspect, defaults to you",
			},
		},
	}
}

func (c *User) Execute(inv *command.Invocation) error {
	target := inv.Caller
	if opt := inv.Option("target"); opt != nil {
		target = opt.UserValue(inv.Session)
	}
	if target == nil {
		return errors.New("interaction carries no resolvable user")
	}

	msg := embed.NewEmbed().
		SetTitle(target.Username).
		SetColor(command.EmbedColor).
		SetThumbnail(target.AvatarURL("256")).
		AddField("ID", target.ID).
		AddField("Mention", target.Mention())

	if created, err := discordgo.SnowflakeTimestamp(target.ID); err == nil {
		msg = msg.AddField("Account created", created.Format("2006-01-02"))
	}
	// Join date comes from the event payload, so it is only known for the caller.
	if m := inv.Event.Member; m != nil && target.ID == inv.Caller.ID && !m.JoinedAt.IsZero() {
		msg = msg.AddField("Joined this server", m.JoinedAt.Format("2006-01-02"))
	}

	return inv.ReplyEmbed(msg.MessageEmbed)
}
