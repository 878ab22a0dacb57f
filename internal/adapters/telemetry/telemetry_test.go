package telemetry_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.trai.ch/ppd/internal/adapters/telemetry"
	"go.trai.ch/ppd/internal/core/ports"
)

func TestInterfaceSatisfaction(_ *testing.T) {
	var _ ports.Tracer = (*telemetry.OTelTracer)(nil)
	var _ ports.Span = (*telemetry.OTelSpan)(nil)
	var _ ports.Tracer = (*telemetry.NoOpTracer)(nil)
	var _ ports.Span = (*telemetry.NoOpSpan)(nil)
}

func TestOTelTracer_RecordsAttributes(t *testing.T) {
	sr := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(sr))
	prev := otel.GetTracerProvider()
	otel.SetTracerProvider(tp)
	defer otel.SetTracerProvider(prev)

	tracer := telemetry.NewOTelTracer("test")
	_, span := tracer.Start(context.Background(), "probe", ports.WithFile("/data/case.sav"))
	span.SetAttribute(ports.ResultAttribute, "secondary")
	span.SetAttribute("ppd.workers", 2)
	span.SetAttribute("ppd.skipped", false)
	span.RecordError(nil)
	span.End()

	ended := sr.Ended()
	if assert.Len(t, ended, 1) {
		attrs := ended[0].Attributes()
		assert.Contains(t, attrs, attribute.String(telemetry.FileAttribute, "/data/case.sav"))
		assert.Contains(t, attrs, attribute.String(ports.ResultAttribute, "secondary"))
		assert.Contains(t, attrs, attribute.Int("ppd.workers", 2))
		assert.Contains(t, attrs, attribute.Bool("ppd.skipped", false))
		assert.Equal(t, "probe", ended[0].Name())
	}
}

func TestNoOpTracer(t *testing.T) {
	tracer := telemetry.NewNoOpTracer()
	ctx := context.Background()

	newCtx, span := tracer.Start(ctx, "history")
	assert.Equal(t, ctx, newCtx)

	span.SetAttribute("key", "value")
	span.RecordError(errors.New("ignored"))
	span.End()
}
