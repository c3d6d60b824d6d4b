package binding

import "fmt"

// Role is the operational specialization a binding registers: the factory
// that constructs coders, or one of the two coder roles.
type Role string

const (
	RoleFactory Role = "factory"
	RoleEncoder Role = "encoder"
	RoleDecoder Role = "decoder"
)

// Valid reports whether the role is one of the three known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleFactory, RoleEncoder, RoleDecoder:
		return true
	}
	return false
}

// DeriveName constructs the registry name for a (stack, field, role)
// triple. Format: {stack}_{field-tag}_{role}
// Example: full_rlnc_binary8_encoder
//
// Distinct triples derive distinct names as long as stack identifiers are
// unique per coder template; the same triple always derives the same name,
// which is what makes double registration detectable.
func DeriveName(stack, fieldTag string, role Role) string {
	return fmt.Sprintf("%s_%s_%s", stack, fieldTag, role)
}
