package command

import (
	"fmt"
	"strings"
)

// Restriction narrows where a command may run.
type Restriction int

const (
	// RestrictNone allows the command anywhere it is registered.
	RestrictNone Restriction = iota
	// RestrictGuildOnly rejects invocations outside a server (DMs).
	RestrictGuildOnly
	// RestrictOwnerOnly rejects callers not in the configured owner list.
	RestrictOwnerOnly
)

// Rejection reasons surfaced to callers.
const (
	ReasonServerOnly = "This command can only be used in a server."
	ReasonOwnerOnly  = "This command is reserved for the bot owners."
)

// Result is a validation verdict. Reason is set only when OK is false and is
// exactly what the caller sees.
type Result struct {
	OK     bool
	Reason string
}

func allow() Result             { return Result{OK: true} }
func deny(reason string) Result { return Result{Reason: reason} }

// Access is the declarative gate a command embeds. The zero value allows
// everyone everywhere.
type Access struct {
	Restriction  Restriction
	Capabilities []Capability // the caller must hold all of them
}

// Validate checks place, then capabilities, then ownership, stopping at the
// first failure so a given invocation always gets the same rejection reason.
func (a Access) Validate(inv *Invocation) Result {
	if a.Restriction == RestrictGuildOnly && inv.GuildID == "" {
		return deny(ReasonServerOnly)
	}
	if missing := a.missing(inv.Granted); len(missing) > 0 {
		return deny(fmt.Sprintf(
			"You need the following permissions to run this command:\n`%s`",
			strings.Join(missing, "`, `"),
		))
	}
	if a.Restriction == RestrictOwnerOnly && !inv.FromOwner() {
		return deny(ReasonOwnerOnly)
	}
	return allow()
}

// missing lists required capabilities absent from granted, by name.
// Administrators hold everything.
func (a Access) missing(granted Capability) []string {
	if len(a.Capabilities) == 0 || granted.Has(CapAdministrator) {
		return nil
	}
	var missing []string
	for _, c := range a.Capabilities {
		if !granted.Has(c) {
			missing = append(missing, c.String())
		}
	}
	return missing
}
