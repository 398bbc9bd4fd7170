package telemetry_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.trai.ch/clustertap/internal/adapters/telemetry"
	"go.trai.ch/clustertap/internal/core/ports"
	"go.trai.ch/clustertap/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func argMap(args []any) map[string]any {
	m := make(map[string]any, len(args)/2)
	for i := 0; i+1 < len(args); i += 2 {
		m[args[i].(string)] = args[i+1]
	}
	return m
}

func TestBridge_LogsFinishedSpans(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)

	var got map[string]any
	mockLogger.EXPECT().Debug("span finished", gomock.Any()).Do(func(_ string, args ...any) {
		got = argMap(args)
	}).Times(1)

	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(telemetry.NewBridge(mockLogger)))
	t.Cleanup(func() { _ = tp.Shutdown(t.Context()) })

	_, span := tp.Tracer("test").Start(t.Context(), "observe")
	span.SetAttributes(attribute.String("endpoint", "https://x/graphql"))
	span.SetStatus(codes.Error, "no graph")
	span.End()

	require.NotNil(t, got)
	assert.Equal(t, "observe", got["span"])
	assert.Equal(t, "no graph", got["error"])
	assert.Equal(t, "https://x/graphql", got["endpoint"])
	assert.NotEmpty(t, got["trace_id"])
}

func TestBridge_NilLogger(t *testing.T) {
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(telemetry.NewBridge(nil)))
	t.Cleanup(func() { _ = tp.Shutdown(t.Context()) })

	_, span := tp.Tracer("test").Start(t.Context(), "observe")
	assert.NotPanics(t, func() { span.End() })
}

func TestOTelTracer_Spans(t *testing.T) {
	recorder := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
	otel.SetTracerProvider(tp)
	t.Cleanup(func() { _ = tp.Shutdown(t.Context()) })

	tracer := telemetry.NewOTelTracer("test")
	_, span := tracer.Start(t.Context(), "observe",
		ports.WithAttribute("endpoint", "https://x/graphql"),
		ports.WithAttribute("source", "fetch"),
	)
	span.SetAttribute("nodes", 3)
	span.SetAttribute("classified", true)
	span.SetAttribute("ratio", 0.5)
	span.SetAttribute("ids", []string{"a", "b"})
	span.SetAttribute("other", struct{ X int }{1})
	span.RecordError(errors.New("boom"))
	span.End()

	ended := recorder.Ended()
	require.Len(t, ended, 1)
	assert.Equal(t, "observe", ended[0].Name())
	assert.Equal(t, codes.Error, ended[0].Status().Code)

	attrs := make(map[attribute.Key]attribute.Value)
	for _, kv := range ended[0].Attributes() {
		attrs[kv.Key] = kv.Value
	}
	assert.Equal(t, "https://x/graphql", attrs["endpoint"].AsString())
	assert.Equal(t, "fetch", attrs["source"].AsString())
	assert.Equal(t, int64(3), attrs["nodes"].AsInt64())
	assert.True(t, attrs["classified"].AsBool())
	assert.InDelta(t, 0.5, attrs["ratio"].AsFloat64(), 1e-9)
	assert.Equal(t, []string{"a", "b"}, attrs["ids"].AsStringSlice())
	assert.Equal(t, "{1}", attrs["other"].AsString())
}

func TestProviderTracer_Shutdown(t *testing.T) {
	prev := otel.GetTracerProvider()
	t.Cleanup(func() { otel.SetTracerProvider(prev) })

	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Debug("span finished", gomock.Any()).Times(1)

	tracer := telemetry.NewProviderTracer("test", mockLogger)
	_, span := tracer.Start(t.Context(), "before")
	span.End()

	require.NoError(t, tracer.Shutdown(t.Context()))

	_, span = tracer.Start(t.Context(), "after")
	span.End()
}

func TestOTelTracer_ShutdownWithoutProvider(t *testing.T) {
	assert.NoError(t, telemetry.NewOTelTracer("test").Shutdown(t.Context()))
}
