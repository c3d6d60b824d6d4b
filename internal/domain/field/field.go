// Package field defines the closed set of finite-field variants that coding
// stacks are instantiated against. The arithmetic itself lives in external
// coding libraries; variants here are opaque tags.
package field

// Variant identifies one finite-field algebra from the closed four-variant
// set. The zero value is not a valid variant; use the package-level
// variables. Variants are comparable and safe to use as map keys.
type Variant struct {
	tag  string
	bits int
}

// The closed set of supported field variants. Symbol arithmetic over these
// fields is performed by external coding collaborators; this package only
// provides the tags used for instantiation and binding-name derivation.
var (
	// Binary is the binary field GF(2).
	Binary = Variant{tag: "binary", bits: 1}

	// Binary4 is the extension field GF(2^4).
	Binary4 = Variant{tag: "binary4", bits: 4}

	// Binary8 is the extension field GF(2^8).
	Binary8 = Variant{tag: "binary8", bits: 8}

	// Binary16 is the extension field GF(2^16).
	Binary16 = Variant{tag: "binary16", bits: 16}
)

// Tag returns the textual tag used in derived binding names.
func (v Variant) Tag() string {
	return v.tag
}

// Bits returns the symbol width of the field in bits.
func (v Variant) Bits() int {
	return v.bits
}

// IsZero reports whether the variant is the invalid zero value.
func (v Variant) IsZero() bool {
	return v.tag == ""
}

// String returns the tag for logging and error messages.
func (v Variant) String() string {
	if v.IsZero() {
		return "<invalid field>"
	}
	return v.tag
}

// Variants returns the full variant set in registration order.
// The order is fixed: binary, binary4, binary8, binary16. Callers must not
// mutate the returned slice.
func Variants() []Variant {
	return variants
}

var variants = []Variant{Binary, Binary4, Binary8, Binary16}
