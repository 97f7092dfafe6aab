package ports

import "context"

// SpanConfig holds options applied when starting a span.
type SpanConfig struct {
	// Attributes are key/value pairs attached to the span at start.
	Attributes map[string]any
}

// SpanOption configures a span at start time.
type SpanOption func(*SpanConfig)

// WithAttribute attaches an attribute to the span at start time.
func WithAttribute(key string, value any) SpanOption {
	return func(cfg *SpanConfig) {
		if cfg.Attributes == nil {
			cfg.Attributes = make(map[string]any)
		}
		cfg.Attributes[key] = value
	}
}

// Span represents an in-flight traced operation.
type Span interface {
	// End completes the span.
	End()

	// RecordError records an error against the span.
	RecordError(err error)

	// SetAttribute sets an attribute on the span.
	SetAttribute(key string, value any)
}

// Tracer creates spans around cart store operations such as hydration
// batches and checkout.
//
//go:generate mockgen -source=tracer.go -destination=mocks/mock_tracer.go -package=mocks
type Tracer interface {
	// Start begins a new span and returns a context carrying it.
	Start(ctx context.Context, name string, opts ...SpanOption) (context.Context, Span)
}
