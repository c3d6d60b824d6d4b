// Package coding defines the collaborator surface between the binding layer
// and the erasure-coding libraries it exposes. Implementations live
// elsewhere (see the rs subpackage for a Reed-Solomon backed template); this
// package only names the contracts.
package coding

import (
	"errors"

	"github.com/rmarchant/codabind/internal/domain/field"
)

// Coding errors
var (
	// ErrUnsupportedField is returned by a Template asked to specialize
	// for a field variant its backing library cannot operate over.
	ErrUnsupportedField = errors.New("field variant not supported by coder template")

	// ErrBlockNotSet is returned by an encoder asked to produce payloads
	// before its constant symbols have been set.
	ErrBlockNotSet = errors.New("encoder has no symbol block set")

	// ErrIncomplete is returned by a decoder asked for its symbols before
	// decoding has completed.
	ErrIncomplete = errors.New("decoder has not reached full rank")
)

// Template is a role-agnostic coder definition. A template is specialized
// by field variant into a Factory; the same template serves both the
// encoder and decoder roles.
type Template interface {
	// NewFactory specializes the template for a field variant with the
	// given generation geometry. Returns ErrUnsupportedField if the
	// backing library has no arithmetic for the variant.
	NewFactory(v field.Variant, maxSymbols, maxSymbolSize int) (Factory, error)
}

// Factory builds coder instances for one (template, field) combination.
// Geometry setters affect coders built afterwards, not ones already built.
type Factory interface {
	// Symbols returns the current number of symbols per generation.
	Symbols() int

	// SymbolSize returns the current symbol size in bytes.
	SymbolSize() int

	// SetSymbols changes the number of symbols per generation.
	SetSymbols(n int)

	// SetSymbolSize changes the symbol size in bytes.
	SetSymbolSize(n int)

	// BuildEncoder constructs an encoder with the current geometry.
	BuildEncoder() (Encoder, error)

	// BuildDecoder constructs a decoder with the current geometry.
	BuildDecoder() (Decoder, error)
}

// Encoder produces coded payloads from a constant block of source symbols.
type Encoder interface {
	// PayloadSize returns the size in bytes of payloads produced by Encode.
	PayloadSize() int

	// BlockSize returns the size in bytes of the source block.
	BlockSize() int

	// SetConstSymbols sets the source block. The block must be exactly
	// BlockSize bytes.
	SetConstSymbols(block []byte) error

	// Encode produces the next coded payload.
	Encode() ([]byte, error)
}

// Decoder consumes coded payloads and reconstructs the source block.
type Decoder interface {
	// PayloadSize returns the expected payload size in bytes.
	PayloadSize() int

	// BlockSize returns the size in bytes of the reconstructed block.
	BlockSize() int

	// Rank returns the number of linearly independent payloads seen so far.
	Rank() int

	// IsComplete reports whether the block can be fully reconstructed.
	IsComplete() bool

	// Decode consumes one coded payload. Redundant payloads are not an
	// error; they simply do not advance the rank.
	Decode(payload []byte) error

	// CopySymbols returns the reconstructed source block. Returns
	// ErrIncomplete until IsComplete reports true.
	CopySymbols() ([]byte, error)
}
