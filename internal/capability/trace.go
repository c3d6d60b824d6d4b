package capability

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/rmarchant/codabind/internal/coding"
)

// Span attribute keys for traced coder operations.
const (
	AttrPayloadSize = "codabind.payload_size"
	AttrBlockSize   = "codabind.block_size"
	AttrRank        = "codabind.rank"
	AttrComplete    = "codabind.complete"
)

// tracerName identifies this instrumentation library in exported spans.
const tracerName = "github.com/rmarchant/codabind/internal/capability"

// Trace returns the tracing capability backed by the globally registered
// tracer provider.
func Trace() Capability {
	return TraceWith(otel.Tracer(tracerName))
}

// TraceWith returns the tracing capability using an explicit tracer.
// A nil tracer falls back to the global provider.
func TraceWith(tracer trace.Tracer) Capability {
	if tracer == nil {
		tracer = otel.Tracer(tracerName)
	}
	return &traceCapability{tracer: tracer}
}

type traceCapability struct {
	tracer trace.Tracer
}

func (c *traceCapability) Tag() string {
	return "trace"
}

func (c *traceCapability) WrapFactory(f coding.Factory) coding.Factory {
	return &tracedFactory{Factory: f, tracer: c.tracer}
}

// tracedFactory wraps every built coder so its operations emit spans.
type tracedFactory struct {
	coding.Factory
	tracer trace.Tracer
}

func (f *tracedFactory) BuildEncoder() (coding.Encoder, error) {
	_, span := f.tracer.Start(context.Background(), "codabind.build_encoder",
		trace.WithSpanKind(trace.SpanKindInternal),
	)
	defer span.End()

	enc, err := f.Factory.BuildEncoder()
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	span.SetAttributes(
		attribute.Int(AttrPayloadSize, enc.PayloadSize()),
		attribute.Int(AttrBlockSize, enc.BlockSize()),
	)
	return &tracedEncoder{Encoder: enc, tracer: f.tracer}, nil
}

func (f *tracedFactory) BuildDecoder() (coding.Decoder, error) {
	_, span := f.tracer.Start(context.Background(), "codabind.build_decoder",
		trace.WithSpanKind(trace.SpanKindInternal),
	)
	defer span.End()

	dec, err := f.Factory.BuildDecoder()
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	span.SetAttributes(
		attribute.Int(AttrPayloadSize, dec.PayloadSize()),
		attribute.Int(AttrBlockSize, dec.BlockSize()),
	)
	return &tracedDecoder{Decoder: dec, tracer: f.tracer}, nil
}

type tracedEncoder struct {
	coding.Encoder
	tracer trace.Tracer
}

func (e *tracedEncoder) Encode() ([]byte, error) {
	_, span := e.tracer.Start(context.Background(), "codabind.encode",
		trace.WithSpanKind(trace.SpanKindInternal),
	)
	defer span.End()

	payload, err := e.Encoder.Encode()
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	span.SetAttributes(attribute.Int(AttrPayloadSize, len(payload)))
	return payload, nil
}

type tracedDecoder struct {
	coding.Decoder
	tracer trace.Tracer
}

func (d *tracedDecoder) Decode(payload []byte) error {
	_, span := d.tracer.Start(context.Background(), "codabind.decode",
		trace.WithSpanKind(trace.SpanKindInternal),
	)
	defer span.End()

	err := d.Decoder.Decode(payload)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}
	span.SetAttributes(
		attribute.Int(AttrRank, d.Decoder.Rank()),
		attribute.Bool(AttrComplete, d.Decoder.IsComplete()),
	)
	return nil
}
