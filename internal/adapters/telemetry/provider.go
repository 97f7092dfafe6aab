package telemetry

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.trai.ch/shopfront/internal/core/ports"
)

// Setup installs a global OpenTelemetry tracer provider that reports
// completed spans through the given logger. It returns a shutdown function
// that flushes the provider.
func Setup(logger ports.Logger) func(context.Context) error {
	tp := sdktrace.NewTracerProvider(
		sdktrace.WithSpanProcessor(NewLogBridge(logger)),
	)
	otel.SetTracerProvider(tp)
	return tp.Shutdown
}

var _ sdktrace.SpanProcessor = (*LogBridge)(nil)

// LogBridge is a SpanProcessor that reports completed spans to the logger.
// It carries timing information for slow-path debugging without requiring
// an external collector.
type LogBridge struct {
	logger ports.Logger
}

// NewLogBridge creates a new LogBridge reporting to the given logger.
func NewLogBridge(logger ports.Logger) *LogBridge {
	return &LogBridge{logger: logger}
}

// OnStart implements sdktrace.SpanProcessor.
func (b *LogBridge) OnStart(_ context.Context, _ sdktrace.ReadWriteSpan) {}

// OnEnd logs the completed span with its duration.
func (b *LogBridge) OnEnd(s sdktrace.ReadOnlySpan) {
	duration := s.EndTime().Sub(s.StartTime()).Round(time.Microsecond)
	b.logger.Info(fmt.Sprintf("%s took %s", s.Name(), duration))
}

// Shutdown implements sdktrace.SpanProcessor.
func (b *LogBridge) Shutdown(_ context.Context) error { return nil }

// ForceFlush implements sdktrace.SpanProcessor.
func (b *LogBridge) ForceFlush(_ context.Context) error { return nil }
