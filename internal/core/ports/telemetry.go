package ports

import "context"

// Tracer is the entry point for creating spans.
type Tracer interface {
	// Start creates a new span.
	Start(ctx context.Context, name string, opts ...SpanOption) (context.Context, Span)
}

// Span represents one tier of a decision.
type Span interface {
	// End completes the span.
	End()
	// RecordError records an error for the span.
	RecordError(err error)
	// SetAttribute adds a key-value pair to the span.
	SetAttribute(key string, value any)
}

// SpanConfig holds configuration for a starting span.
type SpanConfig struct {
	// File is the target file the span is about.
	File string
}

// SpanOption is a functional option for configuring a span.
type SpanOption func(*SpanConfig)

// WithFile attaches the target file to the span.
func WithFile(path string) SpanOption {
	return func(c *SpanConfig) {
		c.File = path
	}
}

// ResultAttribute is the span attribute carrying a tier's serialised result.
const ResultAttribute = "ppd.result"
