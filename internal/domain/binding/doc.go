// Package binding implements the domain layer for the coding stack
// registration system.
//
// # Core Types
//
// Binding represents one registered native type: a factory that constructs
// coders, or an encoder/decoder, for a specific (stack, field) pair. Names
// are derived deterministically via DeriveName, so the same triple always
// collides on double registration and distinct triples never collide.
// Use Builder for construction.
//
// Role distinguishes the three binding kinds: factory, encoder, decoder.
// A role binding records the name of its paired factory binding; the
// registrars in internal/stacks enforce that the factory is registered
// first.
//
// # Registry
//
// Registry is the name-to-type table. It provides:
//   - Add with duplicate-name detection (ErrDuplicateName)
//   - Lookup by derived name
//   - List/Names in insertion order, which is the registration order
//   - GetByStack/GetByRole filtering
//
// The registry is an explicit value owned by the caller, not ambient global
// state; registration reports collisions as errors rather than panicking.
package binding
