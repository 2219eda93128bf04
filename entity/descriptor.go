package entity

import "strings"

// Kind selects the comparison semantics of a descriptor.
type Kind string

const (
	Text   Kind = "text"
	Email  Kind = "email" // matched as Text
	Number Kind = "number"
	Date   Kind = "date"
)

// Known reports whether the kind is one of the supported kinds.
// An empty kind is known and means Text.
func (kind Kind) Known() bool {
	switch kind {
	case "", Text, Email, Number, Date:
		return true
	}
	return false
}

// Descriptor names one selectable filter: a label for the user, a dotted path
// into each record and the kind of comparison to apply to the leaf found there.
type Descriptor struct {
	Label string `yaml:"label"`
	Path  string `yaml:"path"`
	Kind  Kind   `yaml:"kind,omitempty"`
}

// Segments splits the dotted path into field names.
func (dsc Descriptor) Segments() []string {
	return strings.Split(dsc.Path, ".")
}

// String returns the label.
func (dsc Descriptor) String() string {
	return dsc.Label
}
