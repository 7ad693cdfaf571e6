package command

import (
	"errors"

	"github.com/bwmarrin/discordgo"
)

// ErrAlreadyAcknowledged is returned by initial-reply helpers when the
// interaction was already replied to or deferred; send a followup instead.
var ErrAlreadyAcknowledged = errors.New("command: interaction already acknowledged")

// Responder carries interaction traffic to the platform. Commands reply
// through it rather than the raw session, so tests can swap in a recorder.
type Responder interface {
	Respond(s *discordgo.Session, e *discordgo.InteractionCreate, resp *discordgo.InteractionResponse) error
	Followup(s *discordgo.Session, e *discordgo.InteractionCreate, params *discordgo.WebhookParams) error
	Edit(s *discordgo.Session, e *discordgo.InteractionCreate, edit *discordgo.WebhookEdit) error
}

// Invocation is one interaction in flight: the event, the caller's identity
// and granted capabilities, and reply helpers that enforce the
// one-initial-reply rule.
type Invocation struct {
	Session *discordgo.Session
	Event   *discordgo.InteractionCreate
	Caller  *discordgo.User
	GuildID string
	Granted Capability // caller's permissions where invoked; zero in DMs
	Owners  []string

	responder    Responder
	acknowledged bool
}

// NewInvocation resolves the caller and granted capabilities from the event:
// the member inside a guild, the bare user in DMs.
func NewInvocation(s *discordgo.Session, e *discordgo.InteractionCreate, owners []string, r Responder) *Invocation {
	inv := &Invocation{
		Session:   s,
		Event:     e,
		GuildID:   e.GuildID,
		Owners:    owners,
		responder: r,
	}
	switch {
	case e.Member != nil && e.Member.User != nil:
		inv.Caller = e.Member.User
		inv.Granted = Capability(e.Member.Permissions)
	case e.User != nil:
		inv.Caller = e.User
	}
	return inv
}

// FromOwner reports whether the caller is in the owner list.
func (inv *Invocation) FromOwner() bool {
	if inv.Caller == nil {
		return false
	}
	for _, id := range inv.Owners {
		if id == inv.Caller.ID {
			return true
		}
	}
	return false
}

// Acknowledged reports whether an initial reply or deferral was sent.
func (inv *Invocation) Acknowledged() bool { return inv.acknowledged }

// Options returns the option payload of the interaction.
func (inv *Invocation) Options() []*discordgo.ApplicationCommandInteractionDataOption {
	return inv.Event.ApplicationCommandData().Options
}

// Option returns the named option, or nil when the caller omitted it.
func (inv *Invocation) Option(name string) *discordgo.ApplicationCommandInteractionDataOption {
	for _, opt := range inv.Options() {
		if opt.Name == name {
			return opt
		}
	}
	return nil
}

func (inv *Invocation) respondOnce(resp *discordgo.InteractionResponse) error {
	if inv.acknowledged {
		return ErrAlreadyAcknowledged
	}
	if err := inv.responder.Respond(inv.Session, inv.Event, resp); err != nil {
		return err
	}
	inv.acknowledged = true
	return nil
}

// Reply sends the initial public reply.
func (inv *Invocation) Reply(content string) error {
	return inv.respondOnce(&discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{Content: content},
	})
}

// ReplyEphemeral sends the initial reply visible only to the caller.
func (inv *Invocation) ReplyEphemeral(content string) error {
	return inv.respondOnce(&discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content: content,
			Flags:   discordgo.MessageFlagsEphemeral,
		},
	})
}

// ReplyEmbed sends the initial reply as a public embed.
func (inv *Invocation) ReplyEmbed(embed *discordgo.MessageEmbed) error {
	return inv.respondOnce(&discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{Embeds: []*discordgo.MessageEmbed{embed}},
	})
}

// ReplyEmbedEphemeral sends the initial reply as an embed only the caller sees.
func (inv *Invocation) ReplyEmbedEphemeral(embed *discordgo.MessageEmbed) error {
	return inv.respondOnce(&discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Embeds: []*discordgo.MessageEmbed{embed},
			Flags:  discordgo.MessageFlagsEphemeral,
		},
	})
}

// Defer acknowledges the interaction with an ephemeral placeholder, buying
// time for slow work. Finish with EditReply or a followup.
func (inv *Invocation) Defer() error {
	return inv.respondOnce(&discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseDeferredChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{Flags: discordgo.MessageFlagsEphemeral},
	})
}

// EditReply rewrites the initial reply, or fills in a deferred one.
func (inv *Invocation) EditReply(content string) error {
	return inv.responder.Edit(inv.Session, inv.Event, &discordgo.WebhookEdit{Content: &content})
}

// Followup sends an additional public message after the initial reply.
func (inv *Invocation) Followup(content string) error {
	return inv.responder.Followup(inv.Session, inv.Event, &discordgo.WebhookParams{Content: content})
}

// FollowupEphemeral sends an additional message only the caller sees.
func (inv *Invocation) FollowupEphemeral(content string) error {
	return inv.responder.Followup(inv.Session, inv.Event, &discordgo.WebhookParams{
		Content: content,
		Flags:   discordgo.MessageFlagsEphemeral,
	})
}
