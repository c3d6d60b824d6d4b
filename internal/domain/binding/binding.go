package binding

import (
	"github.com/rmarchant/codabind/internal/capability"
	"github.com/rmarchant/codabind/internal/coding"
	"github.com/rmarchant/codabind/internal/domain/field"
)

// Constructor builds a capability-decorated factory for the binding's
// (template, field) combination.
type Constructor func(maxSymbols, maxSymbolSize int) (coding.Factory, error)

// Binding represents one registered native type: a factory, encoder, or
// decoder for a specific (stack, field) pair.
type Binding struct {
	name        string          // derived registry name, e.g. "full_rlnc_binary8_encoder"
	stack       string          // caller-supplied stack identifier
	fld         field.Variant   // field variant the type is specialized for
	role        Role            // factory, encoder, or decoder
	caps        capability.List // capability list, order-sensitive
	construct   Constructor     // set for factory bindings
	factoryName string          // set for role bindings: the paired factory
}

// newBinding creates a binding (used by builder)
func newBinding(name, stack string, fld field.Variant, role Role,
	caps capability.List, construct Constructor, factoryName string) *Binding {
	return &Binding{
		name:        name,
		stack:       stack,
		fld:         fld,
		role:        role,
		caps:        caps,
		construct:   construct,
		factoryName: factoryName,
	}
}

// Name returns the derived registry name.
func (b *Binding) Name() string {
	return b.name
}

// Stack returns the stack identifier.
func (b *Binding) Stack() string {
	return b.stack
}

// Field returns the field variant.
func (b *Binding) Field() field.Variant {
	return b.fld
}

// Role returns the binding role.
func (b *Binding) Role() Role {
	return b.role
}

// Capabilities returns the capability list.
func (b *Binding) Capabilities() capability.List {
	return b.caps
}

// Constructor returns the factory constructor. Nil for role bindings.
func (b *Binding) Constructor() Constructor {
	return b.construct
}

// FactoryName returns the paired factory binding's name. Empty for factory
// bindings.
func (b *Binding) FactoryName() string {
	return b.factoryName
}
