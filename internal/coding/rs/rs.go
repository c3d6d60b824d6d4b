// Package rs implements a systematic Reed-Solomon coder template backed by
// github.com/klauspost/reedsolomon. The backing library operates over
// GF(2^8), so only the binary8 field variant is supported; factories for
// the other variants fail at construction time with
// coding.ErrUnsupportedField.
//
// Payload framing: a 4-byte big-endian shard index followed by the shard
// bytes. The encoder emits the k data shards first, then k parity shards,
// cycling; any k distinct payloads complete the decoder.
package rs

import (
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/klauspost/reedsolomon"

	"github.com/rmarchant/codabind/internal/coding"
	"github.com/rmarchant/codabind/internal/domain/field"
)

// headerSize is the payload framing overhead: one big-endian uint32 shard index.
const headerSize = 4

// maxShards is the GF(2^8) Reed-Solomon limit on data+parity shards.
const maxShards = 255

var (
	ErrInvalidGeometry = errors.New("symbols and symbol size must be positive")
	ErrTooManySymbols  = errors.New("symbols exceed the GF(2^8) shard limit")
	ErrInvalidPayload  = errors.New("payload is malformed for this geometry")
)

// Template returns the Reed-Solomon coder template.
func Template() coding.Template {
	return template{}
}

type template struct{}

func (template) NewFactory(v field.Variant, maxSymbols, maxSymbolSize int) (coding.Factory, error) {
	if v != field.Binary8 {
		return nil, fmt.Errorf("reed-solomon over %s: %w", v, coding.ErrUnsupportedField)
	}
	if maxSymbols <= 0 || maxSymbolSize <= 0 {
		return nil, ErrInvalidGeometry
	}
	return &factory{symbols: maxSymbols, symbolSize: maxSymbolSize}, nil
}

// factory builds Reed-Solomon coders. Parity shard count equals the symbol
// count, so an encoder can emit twice the generation before repeating.
type factory struct {
	symbols    int
	symbolSize int
}

func (f *factory) Symbols() int        { return f.symbols }
func (f *factory) SymbolSize() int     { return f.symbolSize }
func (f *factory) SetSymbols(n int)    { f.symbols = n }
func (f *factory) SetSymbolSize(n int) { f.symbolSize = n }

// geometry validates and snapshots the current factory settings.
func (f *factory) geometry() (data, parity, symbolSize int, err error) {
	if f.symbols <= 0 || f.symbolSize <= 0 {
		return 0, 0, 0, ErrInvalidGeometry
	}
	if 2*f.symbols > maxShards {
		return 0, 0, 0, ErrTooManySymbols
	}
	return f.symbols, f.symbols, f.symbolSize, nil
}

func (f *factory) BuildEncoder() (coding.Encoder, error) {
	data, parity, symbolSize, err := f.geometry()
	if err != nil {
		return nil, err
	}
	codec, err := reedsolomon.New(data, parity)
	if err != nil {
		return nil, fmt.Errorf("reed-solomon codec: %w", err)
	}
	return &encoder{codec: codec, data: data, parity: parity, symbolSize: symbolSize}, nil
}

func (f *factory) BuildDecoder() (coding.Decoder, error) {
	data, parity, symbolSize, err := f.geometry()
	if err != nil {
		return nil, err
	}
	codec, err := reedsolomon.New(data, parity)
	if err != nil {
		return nil, fmt.Errorf("reed-solomon codec: %w", err)
	}
	return &decoder{
		codec:      codec,
		data:       data,
		parity:     parity,
		symbolSize: symbolSize,
		shards:     make([][]byte, data+parity),
	}, nil
}

type encoder struct {
	codec      reedsolomon.Encoder
	data       int
	parity     int
	symbolSize int
	shards     [][]byte
	next       int
}

func (e *encoder) PayloadSize() int { return headerSize + e.symbolSize }
func (e *encoder) BlockSize() int   { return e.data * e.symbolSize }

func (e *encoder) SetConstSymbols(block []byte) error {
	if len(block) != e.BlockSize() {
		return fmt.Errorf("block must be %d bytes, got %d: %w",
			e.BlockSize(), len(block), ErrInvalidPayload)
	}

	shards := make([][]byte, e.data+e.parity)
	for i := 0; i < e.data; i++ {
		shard := make([]byte, e.symbolSize)
		copy(shard, block[i*e.symbolSize:(i+1)*e.symbolSize])
		shards[i] = shard
	}
	for i := e.data; i < e.data+e.parity; i++ {
		shards[i] = make([]byte, e.symbolSize)
	}
	if err := e.codec.Encode(shards); err != nil {
		return fmt.Errorf("compute parity: %w", err)
	}

	e.shards = shards
	e.next = 0
	return nil
}

func (e *encoder) Encode() ([]byte, error) {
	if e.shards == nil {
		return nil, coding.ErrBlockNotSet
	}

	payload := make([]byte, headerSize+e.symbolSize)
	binary.BigEndian.PutUint32(payload, uint32(e.next))
	copy(payload[headerSize:], e.shards[e.next])
	e.next = (e.next + 1) % (e.data + e.parity)
	return payload, nil
}

type decoder struct {
	codec      reedsolomon.Encoder
	data       int
	parity     int
	symbolSize int
	shards     [][]byte
	seen       int
	decoded    []byte
}

func (d *decoder) PayloadSize() int { return headerSize + d.symbolSize }
func (d *decoder) BlockSize() int   { return d.data * d.symbolSize }

func (d *decoder) Rank() int {
	if d.seen > d.data {
		return d.data
	}
	return d.seen
}

func (d *decoder) IsComplete() bool {
	return d.seen >= d.data
}

func (d *decoder) Decode(payload []byte) error {
	if len(payload) != d.PayloadSize() {
		return fmt.Errorf("payload must be %d bytes, got %d: %w",
			d.PayloadSize(), len(payload), ErrInvalidPayload)
	}
	index := int(binary.BigEndian.Uint32(payload))
	if index >= d.data+d.parity {
		return fmt.Errorf("shard index %d out of range: %w", index, ErrInvalidPayload)
	}

	// Redundant payloads do not advance the rank.
	if d.shards[index] != nil {
		return nil
	}
	shard := make([]byte, d.symbolSize)
	copy(shard, payload[headerSize:])
	d.shards[index] = shard
	d.seen++
	return nil
}

func (d *decoder) CopySymbols() ([]byte, error) {
	if !d.IsComplete() {
		return nil, coding.ErrIncomplete
	}
	if d.decoded != nil {
		return d.decoded, nil
	}

	if err := d.codec.ReconstructData(d.shards); err != nil {
		return nil, fmt.Errorf("reconstruct: %w", err)
	}
	block := make([]byte, 0, d.BlockSize())
	for i := 0; i < d.data; i++ {
		block = append(block, d.shards[i]...)
	}
	d.decoded = block
	return block, nil
}
