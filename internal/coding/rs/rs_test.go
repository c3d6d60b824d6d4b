package rs

import (
	"crypto/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rmarchant/codabind/internal/coding"
	"github.com/rmarchant/codabind/internal/domain/field"
)

func randomBlock(t *testing.T, size int) []byte {
	t.Helper()
	block := make([]byte, size)
	_, err := rand.Read(block)
	require.NoError(t, err)
	return block
}

func TestTemplate_Binary8Only(t *testing.T) {
	tpl := Template()

	for _, v := range field.Variants() {
		f, err := tpl.NewFactory(v, 8, 16)
		if v == field.Binary8 {
			require.NoError(t, err)
			require.NotNil(t, f)
			continue
		}
		require.ErrorIs(t, err, coding.ErrUnsupportedField, "variant %s", v)
	}
}

func TestTemplate_InvalidGeometry(t *testing.T) {
	tpl := Template()

	_, err := tpl.NewFactory(field.Binary8, 0, 16)
	require.ErrorIs(t, err, ErrInvalidGeometry)

	_, err = tpl.NewFactory(field.Binary8, 8, -1)
	require.ErrorIs(t, err, ErrInvalidGeometry)
}

func TestFactory_GeometrySetters(t *testing.T) {
	f, err := Template().NewFactory(field.Binary8, 8, 16)
	require.NoError(t, err)

	require.Equal(t, 8, f.Symbols())
	require.Equal(t, 16, f.SymbolSize())

	f.SetSymbols(12)
	f.SetSymbolSize(32)
	require.Equal(t, 12, f.Symbols())
	require.Equal(t, 32, f.SymbolSize())

	enc, err := f.BuildEncoder()
	require.NoError(t, err)
	require.Equal(t, 12*32, enc.BlockSize())
}

func TestFactory_ShardLimit(t *testing.T) {
	f, err := Template().NewFactory(field.Binary8, 8, 16)
	require.NoError(t, err)
	f.SetSymbols(200) // 2*200 > 255

	_, err = f.BuildEncoder()
	require.ErrorIs(t, err, ErrTooManySymbols)

	_, err = f.BuildDecoder()
	require.ErrorIs(t, err, ErrTooManySymbols)
}

func TestEncoder_RequiresBlock(t *testing.T) {
	f, err := Template().NewFactory(field.Binary8, 4, 8)
	require.NoError(t, err)
	enc, err := f.BuildEncoder()
	require.NoError(t, err)

	_, err = enc.Encode()
	require.ErrorIs(t, err, coding.ErrBlockNotSet)

	err = enc.SetConstSymbols(make([]byte, 7))
	require.ErrorIs(t, err, ErrInvalidPayload)
}

func TestRoundtrip_Lossless(t *testing.T) {
	f, err := Template().NewFactory(field.Binary8, 8, 64)
	require.NoError(t, err)

	enc, err := f.BuildEncoder()
	require.NoError(t, err)
	dec, err := f.BuildDecoder()
	require.NoError(t, err)

	block := randomBlock(t, enc.BlockSize())
	require.NoError(t, enc.SetConstSymbols(block))

	for !dec.IsComplete() {
		payload, err := enc.Encode()
		require.NoError(t, err)
		require.Len(t, payload, enc.PayloadSize())
		require.NoError(t, dec.Decode(payload))
	}

	require.Equal(t, 8, dec.Rank())
	decoded, err := dec.CopySymbols()
	require.NoError(t, err)
	require.Equal(t, block, decoded)
}

func TestRoundtrip_RecoversFromLoss(t *testing.T) {
	f, err := Template().NewFactory(field.Binary8, 8, 32)
	require.NoError(t, err)

	enc, err := f.BuildEncoder()
	require.NoError(t, err)
	dec, err := f.BuildDecoder()
	require.NoError(t, err)

	block := randomBlock(t, enc.BlockSize())
	require.NoError(t, enc.SetConstSymbols(block))

	// Drop every second payload; the parity shards absorb the loss.
	for i := 0; !dec.IsComplete(); i++ {
		require.Less(t, i, 16, "decoder should complete within one cycle")
		payload, err := enc.Encode()
		require.NoError(t, err)
		if i%2 == 0 {
			continue
		}
		require.NoError(t, dec.Decode(payload))
	}

	decoded, err := dec.CopySymbols()
	require.NoError(t, err)
	require.Equal(t, block, decoded)
}

func TestDecoder_RedundantPayloadsDoNotAdvanceRank(t *testing.T) {
	f, err := Template().NewFactory(field.Binary8, 4, 8)
	require.NoError(t, err)

	enc, err := f.BuildEncoder()
	require.NoError(t, err)
	dec, err := f.BuildDecoder()
	require.NoError(t, err)

	require.NoError(t, enc.SetConstSymbols(randomBlock(t, enc.BlockSize())))

	payload, err := enc.Encode()
	require.NoError(t, err)
	require.NoError(t, dec.Decode(payload))
	require.Equal(t, 1, dec.Rank())

	require.NoError(t, dec.Decode(payload))
	require.Equal(t, 1, dec.Rank())
}

func TestDecoder_IncompleteCopyFails(t *testing.T) {
	f, err := Template().NewFactory(field.Binary8, 4, 8)
	require.NoError(t, err)
	dec, err := f.BuildDecoder()
	require.NoError(t, err)

	_, err = dec.CopySymbols()
	require.ErrorIs(t, err, coding.ErrIncomplete)
}

func TestDecoder_MalformedPayloads(t *testing.T) {
	f, err := Template().NewFactory(field.Binary8, 4, 8)
	require.NoError(t, err)
	dec, err := f.BuildDecoder()
	require.NoError(t, err)

	err = dec.Decode(make([]byte, 3))
	require.ErrorIs(t, err, ErrInvalidPayload)

	// Index beyond data+parity shards
	bad := make([]byte, dec.PayloadSize())
	bad[3] = 200
	err = dec.Decode(bad)
	require.ErrorIs(t, err, ErrInvalidPayload)
}
