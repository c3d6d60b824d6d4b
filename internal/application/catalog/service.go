package catalog

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/rmarchant/codabind/internal/coding"
	"github.com/rmarchant/codabind/internal/coding/rs"
	"github.com/rmarchant/codabind/internal/domain/binding"
	"github.com/rmarchant/codabind/internal/stacks"
)

// ErrNotAFactory is returned when a binding looked up for construction is
// an encoder or decoder binding rather than a factory binding.
var ErrNotAFactory = errors.New("binding is not a factory binding")

// Built-in stack identifiers. Encoder and decoder expansions of the same
// scheme carry distinct identifiers because the factory name is derived
// from the stack identifier alone.
const (
	StackFullVectorEncoder = "full_vector_encoder"
	StackFullVectorDecoder = "full_vector_decoder"
)

// Service owns the binding registry and seeds it with the built-in coder
// templates at construction time.
type Service struct {
	reg *binding.Registry
	log *zap.Logger
}

// NewService creates the service and registers the built-in stacks.
// Seeding is all-or-nothing: any registration failure is returned and the
// service is not usable.
func NewService(log *zap.Logger) (*Service, error) {
	if log == nil {
		log = zap.NewNop()
	}

	s := &Service{
		reg: binding.NewRegistry(),
		log: log,
	}

	tpl := rs.Template()
	if err := s.RegisterEncoderStack(tpl, StackFullVectorEncoder); err != nil {
		return nil, fmt.Errorf("seed built-in stacks: %w", err)
	}
	if err := s.RegisterDecoderStack(tpl, StackFullVectorDecoder); err != nil {
		return nil, fmt.Errorf("seed built-in stacks: %w", err)
	}
	return s, nil
}

// RegisterEncoderStack exposes a coder template's encoder stacks under the
// given stack identifier.
func (s *Service) RegisterEncoderStack(tpl coding.Template, stack string) error {
	if err := stacks.RegisterEncoder(s.reg, tpl, stack); err != nil {
		s.log.Error("encoder stack registration failed",
			zap.String("stack", stack),
			zap.Error(err))
		return err
	}
	s.log.Info("encoder stack registered",
		zap.String("stack", stack),
		zap.Int("bindings", len(s.reg.GetByStack(stack))))
	return nil
}

// RegisterDecoderStack exposes a coder template's decoder stacks under the
// given stack identifier.
func (s *Service) RegisterDecoderStack(tpl coding.Template, stack string) error {
	if err := stacks.RegisterDecoder(s.reg, tpl, stack); err != nil {
		s.log.Error("decoder stack registration failed",
			zap.String("stack", stack),
			zap.Error(err))
		return err
	}
	s.log.Info("decoder stack registered",
		zap.String("stack", stack),
		zap.Int("bindings", len(s.reg.GetByStack(stack))))
	return nil
}

// List returns all bindings in registration order.
func (s *Service) List() []*binding.Binding {
	return s.reg.List()
}

// GetByStack returns all bindings for a stack identifier.
func (s *Service) GetByStack(stack string) []*binding.Binding {
	return s.reg.GetByStack(stack)
}

// GetByRole returns all bindings with the given role.
func (s *Service) GetByRole(role binding.Role) []*binding.Binding {
	return s.reg.GetByRole(role)
}

// Lookup returns the binding registered under a derived name.
func (s *Service) Lookup(name string) (*binding.Binding, error) {
	return s.reg.Lookup(name)
}

// BuildFactory looks up a factory binding by name and constructs a factory
// with the given generation geometry. This is the host-side path from a
// registered name to a usable coder factory.
func (s *Service) BuildFactory(name string, symbols, symbolSize int) (coding.Factory, error) {
	b, err := s.reg.Lookup(name)
	if err != nil {
		return nil, fmt.Errorf("lookup %q: %w", name, err)
	}
	if b.Role() != binding.RoleFactory {
		return nil, fmt.Errorf("%q: %w", name, ErrNotAFactory)
	}
	return b.Constructor()(symbols, symbolSize)
}
