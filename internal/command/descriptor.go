package command

// Descriptor is the static identity of a command: everything help and docs
// can show without running it.
type Descriptor struct {
	Name        string // unique, lowercase; what users type after /
	Description string // one-line summary, also shown by the platform
	Usage       string // e.g. "/announce message:<text> [channel:<channel>]"
	Examples    []string
	Category    string // help and README section, e.g. "General"
}
