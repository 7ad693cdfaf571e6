package command

import "strings"

// MaxSuggestions caps Complete output at the platform's autocomplete limit.
const MaxSuggestions = 25

// HelpEntry is one row in a help listing.
type HelpEntry struct {
	Name  string
	Short string
}

// CategoryHelp is one category section of the full listing.
type CategoryHelp struct {
	Category string
	Entries  []HelpEntry
}

// HelpIndex is a read-only view over a registry for help output and name
// autocomplete. It holds no state of its own; every call derives from the
// registry it wraps.
type HelpIndex struct {
	reg *Registry
}

// NewHelpIndex returns a help view over reg.
func NewHelpIndex(reg *Registry) *HelpIndex { return &HelpIndex{reg: reg} }

// DescribeAll lists every command grouped by category, in registry order.
func (h *HelpIndex) DescribeAll() []CategoryHelp {
	var out []CategoryHelp
	for _, group := range h.reg.Categories() {
		section := CategoryHelp{Category: group.Name}
		for _, c := range group.Commands {
			d := c.Descriptor()
			section.Entries = append(section.Entries, HelpEntry{Name: d.Name, Short: d.Description})
		}
		out = append(out, section)
	}
	return out
}

// Describe returns the full descriptor for one command name. A miss is a
// normal outcome, reported through ok.
func (h *HelpIndex) Describe(name string) (Descriptor, bool) {
	c, ok := h.reg.Lookup(name)
	if !ok {
		return Descriptor{}, false
	}
	return c.Descriptor(), true
}

// Complete suggests command names matching a case-insensitive prefix, in
// registration order, truncated to MaxSuggestions.
func (h *HelpIndex) Complete(partial string) []HelpEntry {
	prefix := strings.ToLower(partial)
	var out []HelpEntry
	for _, c := range h.reg.ordered {
		d := c.Descriptor()
		if !strings.HasPrefix(d.Name, prefix) {
			continue
		}
		out = append(out, HelpEntry{Name: d.Name, Short: d.Description})
		if len(out) == MaxSuggestions {
			break
		}
	}
	return out
}
