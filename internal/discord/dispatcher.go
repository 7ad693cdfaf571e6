package discord

import (
	"fmt"

	"github.com/PineFruitDev/TSTemplateBot/internal/command"
	"github.com/PineFruitDev/TSTemplateBot/internal/logger"
	"github.com/bwmarrin/discordgo"
)

// failureNotice is all a caller sees when a command errors; details go to the logs.
const failureNotice = "Something went wrong while running this command."

// Dispatcher routes interaction events to registry commands and owns the
// reply on every path a command does not cover: rejections get the reason,
// failures get a generic notice, unknown names get nothing.
type Dispatcher struct {
	registry  *command.Registry
	owners    []string
	responder command.Responder
}

// NewDispatcher builds a dispatcher over an immutable registry.
func NewDispatcher(reg *command.Registry, owners []string) *Dispatcher {
	return &Dispatcher{registry: reg, owners: owners, responder: DefaultResponder}
}

// HandleInteraction is the discordgo handler for InteractionCreate events.
// discordgo runs each event on its own goroutine; the registry is the only
// shared state and is read-only.
func (d *Dispatcher) HandleInteraction(s *discordgo.Session, e *discordgo.InteractionCreate) {
	switch e.Type {
	case discordgo.InteractionApplicationCommand:
		d.dispatchCommand(s, e)
	case discordgo.InteractionApplicationCommandAutocomplete:
		d.dispatchAutocomplete(s, e)
	default:
		logger.Debug("ignoring interaction", "type", int(e.Type))
	}
}

func (d *Dispatcher) dispatchCommand(s *discordgo.Session, e *discordgo.InteractionCreate) {
	data := e.ApplicationCommandData()
	if data.CommandType != 0 && data.CommandType != discordgo.ChatApplicationCommand {
		logger.Debug("ignoring non-chat application command", "command", data.Name)
		return
	}

	cmd, ok := d.registry.Lookup(data.Name)
	if !ok {
		// Stale registration or foreign command; no reply on purpose.
		logger.Warn("unknown command", "command", data.Name, "user", callerID(e))
		return
	}

	inv := command.NewInvocation(s, e, d.owners, d.responder)

	if res := cmd.Validate(inv); !res.OK {
		logger.Info("command rejected", "command", data.Name, "user", callerID(e), "reason", res.Reason)
		if err := inv.ReplyEphemeral(res.Reason); err != nil {
			logger.Error("rejection reply failed", "command", data.Name, "error", err)
		}
		return
	}

	if err := d.execute(cmd, inv); err != nil {
		logger.Error("command failed", "command", data.Name, "user", callerID(e), "error", err)
		d.notifyFailure(inv, data.Name)
		return
	}

	if !inv.Acknowledged() {
		logger.Warn("command returned without replying", "command", data.Name)
	}
	logger.Info("command executed", "command", data.Name, "user", callerID(e))
}

// execute contains panics so one bad interaction cannot take the loop down.
func (d *Dispatcher) execute(cmd command.Command, inv *command.Invocation) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic: %v", r)
		}
	}()
	return cmd.Execute(inv)
}

// notifyFailure delivers exactly one terminal reply for a failed execution:
// an initial reply when the command never acknowledged, a followup when it
// already replied or deferred.
func (d *Dispatcher) notifyFailure(inv *command.Invocation, name string) {
	if inv.Acknowledged() {
		if err := inv.FollowupEphemeral(failureNotice); err != nil {
			logger.Error("failure followup failed", "command", name, "error", err)
		}
		return
	}
	if err := inv.ReplyEphemeral(failureNotice); err != nil {
		// The initial reply lost a race with an acknowledgement; follow up instead.
		if err := inv.FollowupEphemeral(failureNotice); err != nil {
			logger.Error("failure notice failed", "command", name, "error", err)
		}
	}
}

func (d *Dispatcher) dispatchAutocomplete(s *discordgo.Session, e *discordgo.InteractionCreate) {
	data := e.ApplicationCommandData()

	cmd, ok := d.registry.Lookup(data.Name)
	if !ok {
		logger.Warn("autocomplete for unknown command", "command", data.Name)
		return
	}
	completer, ok := cmd.(command.Completer)
	if !ok {
		return
	}

	choices := completer.Complete(command.NewInvocation(s, e, d.owners, d.responder))
	if len(choices) > command.MaxSuggestions {
		choices = choices[:command.MaxSuggestions]
	}

	resp := &discordgo.InteractionResponse{
		Type: discordgo.InteractionApplicationCommandAutocompleteResult,
		Data: &discordgo.InteractionResponseData{Choices: choices},
	}
	if err := d.responder.Respond(s, e, resp); err != nil {
		logger.Warn("autocomplete reply failed", "command", data.Name, "error", err)
	}
}

func callerID(e *discordgo.InteractionCreate) string {
	if e.Member != nil && e.Member.User != nil {
		return e.Member.User.ID
	}
	if e.User != nil {
		return e.User.ID
	}
	return "unknown"
}
