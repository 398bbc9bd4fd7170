package telemetry_test

import (
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/clustertap/internal/adapters/telemetry"
	"go.trai.ch/clustertap/internal/core/ports"
)

func scrape(t *testing.T, m *telemetry.Metrics) string {
	t.Helper()
	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", http.NoBody))
	require.Equal(t, http.StatusOK, rec.Code)
	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	return string(body)
}

func TestMetrics_Exposition(t *testing.T) {
	m := telemetry.NewMetrics()
	m.SetBuildInfo("v1.2.3", "abc123")

	m.ObservationReceived("fetch")
	m.ObservationReceived("fetch")
	m.ObservationReceived("header")
	m.Classified(true, "query")
	m.Classified(false, "anonymous")
	m.Extracted(ports.ExtractGraph)
	m.Extracted(ports.ExtractParseError)
	m.CacheEntries(7)
	m.Swept(3)
	m.Swept(2)
	m.GraphPushed(false)
	m.GraphPushed(true)

	body := scrape(t, m)
	for _, want := range []string{
		`clustertap_observations_total{source="fetch"} 2`,
		`clustertap_observations_total{source="header"} 1`,
		`clustertap_classified_total{of_interest="true",operation="query"} 1`,
		`clustertap_classified_total{of_interest="false",operation="anonymous"} 1`,
		`clustertap_extractions_total{result="graph"} 1`,
		`clustertap_extractions_total{result="parse_error"} 1`,
		`clustertap_cache_entries 7`,
		`clustertap_cache_evictions_total 5`,
		`clustertap_graphs_pushed_total{duplicate="false"} 1`,
		`clustertap_graphs_pushed_total{duplicate="true"} 1`,
		`clustertap_build_info{commit="abc123",version="v1.2.3"} 1`,
	} {
		assert.Contains(t, body, want)
	}
}

func TestMetrics_ClassifiedLabelIsBounded(t *testing.T) {
	m := telemetry.NewMetrics()
	for i := range 50 {
		m.Classified(true, fmt.Sprintf("ClientChosenName%d", i))
	}
	m.Classified(true, "mutation")

	body := scrape(t, m)
	assert.Contains(t, body, `clustertap_classified_total{of_interest="true",operation="other"} 50`)
	assert.Contains(t, body, `clustertap_classified_total{of_interest="true",operation="mutation"} 1`)
	assert.NotContains(t, body, "ClientChosenName")
}

func TestMetrics_SeparateRegistries(t *testing.T) {
	a := telemetry.NewMetrics()
	b := telemetry.NewMetrics()

	a.ObservationReceived("xhr")
	assert.NotContains(t, scrape(t, b), `source="xhr"`)
}

func TestNoOps(t *testing.T) {
	var m ports.Metrics = telemetry.NoOpMetrics{}
	m.ObservationReceived("fetch")
	m.Classified(true, "q")
	m.Extracted(ports.ExtractNone)
	m.CacheEntries(1)
	m.Swept(1)
	m.GraphPushed(true)

	tracer := telemetry.NewNoOpTracer()
	ctx, span := tracer.Start(t.Context(), "noop")
	assert.Equal(t, t.Context(), ctx)
	span.SetAttribute("k", "v")
	span.RecordError(assert.AnError)
	span.End()
}

func TestMetrics_Instrument(t *testing.T) {
	m := telemetry.NewMetrics()
	handler := m.Instrument("observations", http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusAccepted)
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/v1/observations", http.NoBody))
	assert.Equal(t, http.StatusAccepted, rec.Code)

	body := scrape(t, m)
	assert.Contains(t, body, `clustertap_http_requests_total{route="observations",status="2xx"} 1`)
	assert.Contains(t, body, `clustertap_http_in_flight_requests{route="observations"} 0`)
	assert.Contains(t, body, `clustertap_http_request_duration_seconds_count{route="observations"} 1`)
}
