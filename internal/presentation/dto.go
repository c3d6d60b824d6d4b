package presentation

import (
	"github.com/rmarchant/codabind/internal/domain/binding"
)

// BindingDTO represents a registered binding for presentation
type BindingDTO struct {
	Name         string   `json:"name"`
	Stack        string   `json:"stack"`
	Field        string   `json:"field"`
	FieldBits    int      `json:"field_bits"`
	Role         string   `json:"role"`
	Capabilities []string `json:"capabilities"`
	FactoryName  string   `json:"factory_name,omitempty"`
}

// FromDomainBinding converts a domain binding to a DTO
func FromDomainBinding(b *binding.Binding) BindingDTO {
	return BindingDTO{
		Name:         b.Name(),
		Stack:        b.Stack(),
		Field:        b.Field().Tag(),
		FieldBits:    b.Field().Bits(),
		Role:         string(b.Role()),
		Capabilities: b.Capabilities().Tags(),
		FactoryName:  b.FactoryName(),
	}
}

// FromDomainBindings converts a slice of domain bindings to DTOs,
// preserving registration order.
func FromDomainBindings(bs []*binding.Binding) []BindingDTO {
	dtos := make([]BindingDTO, len(bs))
	for i, b := range bs {
		dtos[i] = FromDomainBinding(b)
	}
	return dtos
}
