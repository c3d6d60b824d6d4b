// Package stacks drives the combinatorial expansion that exposes a coder
// template under human-readable names: for every field variant, a factory
// binding followed by the requested role binding, all carrying the same
// capability list.
package stacks

import (
	"errors"
	"fmt"

	"github.com/rmarchant/codabind/internal/capability"
	"github.com/rmarchant/codabind/internal/coding"
	"github.com/rmarchant/codabind/internal/domain/binding"
	"github.com/rmarchant/codabind/internal/domain/field"
)

// ErrFactoryMissing is returned when a role binding is registered without
// its paired factory binding. The drivers in this package never trigger it;
// it guards direct registrar callers.
var ErrFactoryMissing = errors.New("factory binding must be registered before its role binding")

// RegisterEncoder expands a coder template into encoder stacks: for each
// field variant in registration order, the factory binding then the encoder
// binding. The first failing registration aborts the expansion; bindings
// registered earlier in the same call stay registered. Calling this twice
// for the same stack identifier fails with binding.ErrDuplicateName.
func RegisterEncoder(reg *binding.Registry, tpl coding.Template, stack string) error {
	caps := capability.NewList(capability.Trace())
	for _, v := range field.Variants() {
		if err := registerFactoryAndRole(reg, tpl, v, stack, binding.RoleEncoder, caps); err != nil {
			return err
		}
	}
	return nil
}

// RegisterDecoder expands a coder template into decoder stacks, with the
// same ordering and failure semantics as RegisterEncoder.
func RegisterDecoder(reg *binding.Registry, tpl coding.Template, stack string) error {
	caps := capability.NewList(capability.Trace())
	for _, v := range field.Variants() {
		if err := registerFactoryAndRole(reg, tpl, v, stack, binding.RoleDecoder, caps); err != nil {
			return err
		}
	}
	return nil
}

// registerFactoryAndRole registers the pair for one field variant.
// Factory first, then the role type; the pair is the unit of correctness.
func registerFactoryAndRole(reg *binding.Registry, tpl coding.Template,
	v field.Variant, stack string, role binding.Role, caps capability.List) error {

	if err := registerFactory(reg, tpl, v, stack, caps); err != nil {
		return fmt.Errorf("register %s %s factory: %w", stack, v, err)
	}
	if err := registerRole(reg, v, stack, role, caps); err != nil {
		return fmt.Errorf("register %s %s %s: %w", stack, v, role, err)
	}
	return nil
}

// registerFactory registers the factory binding for one (stack, field)
// pair. The constructor specializes the template for the field variant and
// applies the capability list, so every factory handed out later carries
// the same capabilities as the paired role binding.
func registerFactory(reg *binding.Registry, tpl coding.Template,
	v field.Variant, stack string, caps capability.List) error {

	construct := func(maxSymbols, maxSymbolSize int) (coding.Factory, error) {
		f, err := tpl.NewFactory(v, maxSymbols, maxSymbolSize)
		if err != nil {
			return nil, err
		}
		return caps.Apply(f), nil
	}

	b, err := binding.NewBuilder(stack).
		Field(v).
		Role(binding.RoleFactory).
		Capabilities(caps).
		Constructor(construct).
		Build()
	if err != nil {
		return err
	}
	return reg.Add(b)
}

// registerRole registers the encoder or decoder binding for one
// (stack, field) pair. Precondition: the paired factory binding exists.
func registerRole(reg *binding.Registry, v field.Variant, stack string,
	role binding.Role, caps capability.List) error {

	factoryName := binding.DeriveName(stack, v.Tag(), binding.RoleFactory)
	if _, err := reg.Lookup(factoryName); err != nil {
		return ErrFactoryMissing
	}

	b, err := binding.NewBuilder(stack).
		Field(v).
		Role(role).
		Capabilities(caps).
		FactoryName(factoryName).
		Build()
	if err != nil {
		return err
	}
	return reg.Add(b)
}
