package input

import "strings"

// Description tells the renderer how to refer to an input.
type Description struct {
	name    string
	kind    string
	summary string
}

// NewDescription creates a description for an input. The name should
// uniquely describe where the input came from (e.g. "README.md").
func NewDescription(name string) Description {
	return Description{name: name}
}

// WithKind sets the type label for the input (e.g. "File"). An empty kind
// clears the label.
func (d Description) WithKind(kind string) Description {
	d.kind = kind
	return d
}

// WithSummary overrides the derived summary. An empty summary restores the
// default derivation.
func (d Description) WithSummary(summary string) Description {
	d.summary = summary
	return d
}

// Name returns the unique name of the input.
func (d Description) Name() string { return d.name }

// Kind returns the type label, or "" when none is set.
func (d Description) Kind() string { return d.kind }

// Summary returns the explicit summary if one was set. Otherwise it derives
// "{kind} '{name}'" with the kind lowercased, or the bare name when no kind
// is set.
func (d Description) Summary() string {
	if d.summary != "" {
		return d.summary
	}
	if d.kind != "" {
		return strings.ToLower(d.kind) + " '" + d.name + "'"
	}
	return d.name
}
