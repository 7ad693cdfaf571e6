package general

import (
	"fmt"
	"strconv"

	"github.com/PineFruitDev/TSTemplateBot/internal/command"
	"github.com/bwmarrin/discordgo"
	embed "github.com/clinet/discordgo-embed"
)

// Server summarizes the guild the command was invoked in.
type Server struct {
	command.Access
}

func NewServer() *Server {
	return &Server{Access: command.Access{Restriction: command.RestrictGuildOnly}}
}

func (c *Server) Descriptor() command.Descriptor {
	return command.Descriptor{
		Name:        "server",
		Description: "Show details about this server",
		Usage:       "/server",
		Examples:    []string{"/server"},
		Category:    "General",
	}
}

func (c *Server) Definition() *discordgo.ApplicationCommand {
	d := c.Descriptor()
	return &discordgo.ApplicationCommand{
		Name:        d.Name,
		Description: d.Description,
		Type:        discordgo.ChatApplicationCommand,
	}
}

func (c *Server) Execute(inv *command.Invocation) error {
	guild, err := c.fetchGuild(inv)
	if err != nil {
		return fmt.Errorf("fetch guild %s: %w", inv.GuildID, err)
	}

	msg := embed.NewEmbed().
		SetTitle(guild.Name).
		SetColor(command.EmbedColor).
		AddField("ID", guild.ID).
		AddField("Owner", fmt.Sprintf("<@%s>", guild.OwnerID)).
		AddField("Members", strconv.Itoa(guild.MemberCount))

	if created, err := discordgo.SnowflakeTimestamp(guild.ID); err == nil {
		msg = msg.AddField("Created", created.Format("2006-01-02"))
	}
	if icon := guild.IconURL("256"); icon != "" {
		msg = msg.SetThumbnail(icon)
	}

	return inv.ReplyEmbed(msg.MessageEmbed)
}

// fetchGuild prefers gateway state and falls back to the REST API for
// guilds the session has not cached yet.
func (c *Server) fetchGuild(inv *command.Invocation) (*discordgo.Guild, error) {
	if inv.Session.State != nil {
		if g, err := inv.Session.State.Guild(inv.GuildID); err == nil {
			return g, nil
		}
	}
	return inv.Session.Guild(inv.GuildID)
}
