// Package capability implements the ordered trait list attached to every
// generated coding binding. Capabilities decorate a factory's construction
// path; the list's order is part of the resulting binding's identity.
package capability

import (
	"strings"

	"github.com/rmarchant/codabind/internal/coding"
)

// Capability is an orthogonal trait attachable to any (template, field)
// instantiation. A capability decorates the factory so that coders it
// builds carry the trait.
type Capability interface {
	// Tag returns the capability's identity tag.
	Tag() string

	// WrapFactory returns a factory whose built coders carry the trait.
	WrapFactory(f coding.Factory) coding.Factory
}

// List is an ordered, immutable set of capabilities. Two lists holding the
// same capabilities in different order are distinct identities; the
// underlying coding libraries treat such instantiations as distinct types.
type List struct {
	caps []Capability
}

// NewList creates a list preserving the given insertion order.
func NewList(caps ...Capability) List {
	return List{caps: caps}
}

// Len returns the number of capabilities in the list.
func (l List) Len() int {
	return len(l.caps)
}

// Tags returns the capability tags in list order.
func (l List) Tags() []string {
	tags := make([]string, len(l.caps))
	for i, c := range l.caps {
		tags[i] = c.Tag()
	}
	return tags
}

// Fingerprint returns the order-sensitive identity of the list.
// The empty list fingerprints to the empty string.
func (l List) Fingerprint() string {
	return strings.Join(l.Tags(), "+")
}

// Apply decorates a factory with every capability in list order.
func (l List) Apply(f coding.Factory) coding.Factory {
	for _, c := range l.caps {
		f = c.WrapFactory(f)
	}
	return f
}
