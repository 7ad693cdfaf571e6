// Package command defines the slash-command contract and everything the
// dispatcher needs around it: descriptors, access rules, invocations, the
// registry, and the help index derived from it.
package command

import "github.com/bwmarrin/discordgo"

// EmbedColor is the accent color for embeds across the bot.
const EmbedColor = 0x5865f2

// Command is one slash command. Implementations are constructed at startup,
// handed to NewRegistry, and not mutated afterwards; Validate and Execute
// run concurrently across interactions.
type Command interface {
	// Descriptor returns the static identity used by the registry, help, and docs.
	Descriptor() Descriptor

	// Definition builds the registration payload for publishing. Same
	// descriptor and options in, same payload out.
	Definition() *discordgo.ApplicationCommand

	// Validate decides whether this invocation may run. The verdict is a
	// value, never an error.
	Validate(inv *Invocation) Result

	// Execute runs the command. It sends exactly one initial reply on the
	// success path; when it returns an error the dispatcher owns the reply.
	Execute(inv *Invocation) error
}

// Completer is implemented by commands that serve autocomplete suggestions
// for one of their options.
type Completer interface {
	Complete(inv *Invocation) []*discordgo.ApplicationCommandOptionChoice
}
