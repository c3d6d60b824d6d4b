package binding

import (
	"errors"
)

// Registry errors
var (
	ErrNotFound      = errors.New("binding not found")
	ErrDuplicateName = errors.New("duplicate binding name")
	ErrNilBinding    = errors.New("binding cannot be nil")
)

// Registry is the name-to-type table bindings are registered in. It
// preserves insertion order, which is the observable registration order.
// Registration is initialization-time work on a single goroutine; the
// registry does no locking of its own.
type Registry struct {
	bindings []*Binding
	byName   map[string]*Binding
}

// NewRegistry creates a new empty registry
func NewRegistry() *Registry {
	return &Registry{
		bindings: make([]*Binding, 0),
		byName:   make(map[string]*Binding),
	}
}

// Add registers a binding. Registering a name twice fails with
// ErrDuplicateName and leaves the registry unchanged.
func (r *Registry) Add(b *Binding) error {
	if b == nil {
		return ErrNilBinding
	}
	if _, exists := r.byName[b.Name()]; exists {
		return ErrDuplicateName
	}

	r.bindings = append(r.bindings, b)
	r.byName[b.Name()] = b
	return nil
}

// List returns all bindings in insertion order
func (r *Registry) List() []*Binding {
	return r.bindings
}

// Names returns all binding names in insertion order
func (r *Registry) Names() []string {
	names := make([]string, len(r.bindings))
	for i, b := range r.bindings {
		names[i] = b.Name()
	}
	return names
}

// Lookup returns the binding registered under name
func (r *Registry) Lookup(name string) (*Binding, error) {
	b, ok := r.byName[name]
	if !ok {
		return nil, ErrNotFound
	}
	return b, nil
}

// GetByStack returns all bindings for a stack identifier, in insertion order
func (r *Registry) GetByStack(stack string) []*Binding {
	result := make([]*Binding, 0)
	for _, b := range r.bindings {
		if b.Stack() == stack {
			result = append(result, b)
		}
	}
	return result
}

// GetByRole returns all bindings with the given role, in insertion order
func (r *Registry) GetByRole(role Role) []*Binding {
	result := make([]*Binding, 0)
	for _, b := range r.bindings {
		if b.Role() == role {
			result = append(result, b)
		}
	}
	return result
}
