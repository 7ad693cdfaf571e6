package command

import (
	"errors"
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"
)

// Registry construction errors.
var (
	ErrDuplicateName = errors.New("command: duplicate name")
	ErrInvalidName   = errors.New("command: invalid name")
)

// maxNameLength is the platform's limit for command names.
const maxNameLength = 32

// Registry is the immutable command set the bot serves. The order commands
// were passed to NewRegistry is the order every listing preserves.
type Registry struct {
	ordered []Command
	byName  map[string]Command
}

// NewRegistry indexes cmds by name, rejecting duplicates and names the
// platform would refuse. Errors here are configuration mistakes and should
// abort startup.
func NewRegistry(cmds ...Command) (*Registry, error) {
	r := &Registry{
		ordered: make([]Command, 0, len(cmds)),
		byName:  make(map[string]Command, len(cmds)),
	}
	for _, c := range cmds {
		name := c.Descriptor().Name
		if err := checkName(name); err != nil {
			return nil, err
		}
		if _, exists := r.byName[name]; exists {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateName, name)
		}
		r.byName[name] = c
		r.ordered = append(r.ordered, c)
	}
	return r, nil
}

func checkName(name string) error {
	switch {
	case name == "":
		return fmt.Errorf("%w: empty name", ErrInvalidName)
	case len(name) > maxNameLength:
		return fmt.Errorf("%w: %q exceeds %d characters", ErrInvalidName, name, maxNameLength)
	case strings.ContainsRune(name, ' '):
		return fmt.Errorf("%w: %q contains spaces", ErrInvalidName, name)
	case name != strings.ToLower(name):
		return fmt.Errorf("%w: %q is not lowercase", ErrInvalidName, name)
	}
	return nil
}

// Lookup returns the command registered under name. A miss is a normal
// outcome (stale platform registrations), reported through ok.
func (r *Registry) Lookup(name string) (Command, bool) {
	c, ok := r.byName[name]
	return c, ok
}

// All returns the commands in registration order.
func (r *Registry) All() []Command {
	out := make([]Command, len(r.ordered))
	copy(out, r.ordered)
	return out
}

// Len returns the number of registered commands.
func (r *Registry) Len() int { return len(r.ordered) }

// CategoryGroup is one help or docs section: a category and its commands in
// registration order.
type CategoryGroup struct {
	Name     string
	Commands []Command
}

// Categories groups commands by descriptor category. Categories appear in
// the order they first occur; commands keep registration order within them.
func (r *Registry) Categories() []CategoryGroup {
	index := make(map[string]int)
	var groups []CategoryGroup
	for _, c := range r.ordered {
		cat := c.Descriptor().Category
		i, ok := index[cat]
		if !ok {
			i = len(groups)
			index[cat] = i
			groups = append(groups, CategoryGroup{Name: cat})
		}
		groups[i].Commands = append(groups[i].Commands, c)
	}
	return groups
}

// Definitions returns every registration payload in registration order,
// ready for a bulk overwrite.
func (r *Registry) Definitions() []*discordgo.ApplicationCommand {
	defs := make([]*discordgo.ApplicationCommand, 0, len(r.ordered))
	for _, c := range r.ordered {
		defs = append(defs, c.Definition())
	}
	return defs
}
