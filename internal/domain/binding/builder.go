package binding

import (
	"errors"

	"github.com/rmarchant/codabind/internal/capability"
	"github.com/rmarchant/codabind/internal/domain/field"
)

// Builder errors
var (
	ErrEmptyStack         = errors.New("binding stack identifier cannot be empty")
	ErrInvalidField       = errors.New("binding field variant is invalid")
	ErrInvalidRole        = errors.New("binding role is invalid")
	ErrMissingConstructor = errors.New("factory binding requires a constructor")
	ErrMissingFactoryName = errors.New("role binding requires a paired factory name")
)

// Builder provides a fluent API for creating bindings
type Builder struct {
	stack       string
	fld         field.Variant
	role        Role
	caps        capability.List
	construct   Constructor
	factoryName string
}

// NewBuilder creates a new binding builder for a stack identifier
func NewBuilder(stack string) *Builder {
	return &Builder{
		stack: stack,
	}
}

// Field sets the field variant
func (b *Builder) Field(v field.Variant) *Builder {
	b.fld = v
	return b
}

// Role sets the binding role
func (b *Builder) Role(r Role) *Builder {
	b.role = r
	return b
}

// Capabilities sets the capability list
func (b *Builder) Capabilities(caps capability.List) *Builder {
	b.caps = caps
	return b
}

// Constructor sets the factory constructor (factory bindings only)
func (b *Builder) Constructor(c Constructor) *Builder {
	b.construct = c
	return b
}

// FactoryName sets the paired factory binding name (role bindings only)
func (b *Builder) FactoryName(name string) *Builder {
	b.factoryName = name
	return b
}

// Build creates the binding, deriving its name and validating required
// fields for the chosen role.
func (b *Builder) Build() (*Binding, error) {
	if b.stack == "" {
		return nil, ErrEmptyStack
	}
	if b.fld.IsZero() {
		return nil, ErrInvalidField
	}
	if !b.role.Valid() {
		return nil, ErrInvalidRole
	}
	if b.role == RoleFactory && b.construct == nil {
		return nil, ErrMissingConstructor
	}
	if b.role != RoleFactory && b.factoryName == "" {
		return nil, ErrMissingFactoryName
	}

	name := DeriveName(b.stack, b.fld.Tag(), b.role)
	return newBinding(name, b.stack, b.fld, b.role, b.caps, b.construct, b.factoryName), nil
}
