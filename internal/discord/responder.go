package discord

import (
	"github.com/PineFruitDev/TSTemplateBot/internal/command"
	"github.com/bwmarrin/discordgo"
)

// sessionResponder implements command.Responder over the live session, so
// commands can reply without importing the discord package directly.
type sessionResponder struct{}

func (sessionResponder) Respond(s *discordgo.Session, e *discordgo.InteractionCreate, resp *discordgo.InteractionResponse) error {
	return s.InteractionRespond(e.Interaction, resp)
}

func (sessionResponder) Followup(s *discordgo.Session, e *discordgo.InteractionCreate, params *discordgo.WebhookParams) error {
	_, err := s.FollowupMessageCreate(e.Interaction, true, params)
	return err
}

func (sessionResponder) Edit(s *discordgo.Session, e *discordgo.InteractionCreate, edit *discordgo.WebhookEdit) error {
	_, err := s.InteractionResponseEdit(e.Interaction, edit)
	return err
}

// DefaultResponder is the production responder wired into every invocation.
var DefaultResponder command.Responder = sessionResponder{}
