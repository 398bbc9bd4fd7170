package telemetry

import (
	"context"

	"go.trai.ch/clustertap/internal/core/ports"
)

// NoOpTracer is a no-op implementation of ports.Tracer.
type NoOpTracer struct{}

// NewNoOpTracer creates a new NoOpTracer.
func NewNoOpTracer() *NoOpTracer {
	return &NoOpTracer{}
}

// Start returns ctx unchanged and a no-op span.
func (t *NoOpTracer) Start(ctx context.Context, _ string, _ ...ports.SpanOption) (context.Context, ports.Span) {
	return ctx, NoOpSpan{}
}

// NoOpSpan is a no-op implementation of ports.Span.
type NoOpSpan struct{}

// End does nothing.
func (NoOpSpan) End() {}

// RecordError does nothing.
func (NoOpSpan) RecordError(_ error) {}

// SetAttribute does nothing.
func (NoOpSpan) SetAttribute(_ string, _ any) {}

// NoOpMetrics is a no-op implementation of ports.Metrics, used by the
// offline commands.
type NoOpMetrics struct{}

// ObservationReceived does nothing.
func (NoOpMetrics) ObservationReceived(string) {}

// Classified does nothing.
func (NoOpMetrics) Classified(bool, string) {}

// Extracted does nothing.
func (NoOpMetrics) Extracted(ports.ExtractResult) {}

// CacheEntries does nothing.
func (NoOpMetrics) CacheEntries(int) {}

// Swept does nothing.
func (NoOpMetrics) Swept(int) {}

// GraphPushed does nothing.
func (NoOpMetrics) GraphPushed(bool) {}
