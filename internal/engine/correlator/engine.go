// Package correlator reconciles partial observations of an exchange and turns
// classified responses into published cluster graphs.
package correlator

import (
	"context"
	"encoding/json"
	"strconv"
	"time"

	"github.com/google/uuid"
	"go.trai.ch/clustertap/internal/core/domain"
	"go.trai.ch/clustertap/internal/core/ports"
)

// Outcome describes what happened to one observation.
type Outcome struct {
	// Classified is set when the exchange was judged to be query traffic.
	Classified bool
	// Operation describes the request when Classified is set.
	Operation domain.Operation
	// Graph is the published graph, or nil.
	Graph *domain.ClusterGraph
}

// Engine runs observations through the cache, the classifier and the extractor.
// It is safe for concurrent use as long as its collaborators are.
type Engine struct {
	cache      ports.CorrelationCache
	classifier ports.Classifier
	extractor  ports.Extractor
	history    ports.PayloadHistory
	sink       ports.GraphSink
	tracer     ports.Tracer
	metrics    ports.Metrics
	logger     ports.Logger
	idKeys     []string
}

// New creates an Engine. idKeys are the request variable names tried, in
// order, to learn which cluster a response is expected to describe.
func New(
	cache ports.CorrelationCache,
	classifier ports.Classifier,
	extractor ports.Extractor,
	history ports.PayloadHistory,
	sink ports.GraphSink,
	tracer ports.Tracer,
	metrics ports.Metrics,
	logger ports.Logger,
	idKeys []string,
) *Engine {
	return &Engine{
		cache:      cache,
		classifier: classifier,
		extractor:  extractor,
		history:    history,
		sink:       sink,
		tracer:     tracer,
		metrics:    metrics,
		logger:     logger,
		idKeys:     idKeys,
	}
}

// Observe records one observation and, when it completes a classified
// exchange with a recognisable response, pushes the extracted graph to the
// sink. Failures never surface as errors; they produce an Outcome without a graph.
func (e *Engine) Observe(ctx context.Context, rec domain.ExchangeRecord) Outcome {
	rec.EndpointID = domain.NormalizeEndpoint(rec.EndpointID)
	if rec.EndpointID == "" {
		e.logger.Debug("observation without endpoint ignored", "source", rec.SourceKind)
		return Outcome{}
	}
	if rec.ObservationID == "" {
		rec.ObservationID = uuid.NewString()
	}
	if rec.ObservedAt.IsZero() {
		rec.ObservedAt = time.Now()
	}
	if rec.SourceKind == "" {
		rec.SourceKind = domain.SourceUnknown
	}

	_, span := e.tracer.Start(ctx, "observe",
		ports.WithAttribute("endpoint", rec.EndpointID),
		ports.WithAttribute("source", string(rec.SourceKind)),
		ports.WithAttribute("observation_id", rec.ObservationID),
	)
	defer span.End()

	e.metrics.ObservationReceived(string(rec.SourceKind))

	// Borrow before writing so the lookup sees the other source's record.
	request := rec.RequestPayload
	if request.IsEmpty() {
		if borrowed, ok := e.borrowRequest(rec.EndpointID); ok {
			request = borrowed
			span.SetAttribute("request_borrowed", true)
		}
	}

	e.cache.Put(rec.EndpointID, rec)

	if !e.classifier.IsOfInterest(rec.EndpointID, request) {
		e.metrics.Classified(false, "")
		span.SetAttribute("classified", false)
		return Outcome{}
	}

	op := e.classifier.Describe(request)
	e.metrics.Classified(true, op.Kind())
	span.SetAttribute("classified", true)
	span.SetAttribute("operation", op.Label())
	out := Outcome{Classified: true, Operation: op}

	if rec.ResponsePayload.IsEmpty() {
		return out
	}

	body, err := rec.ResponsePayload.Decode()
	if err != nil {
		e.metrics.Extracted(ports.ExtractParseError)
		e.logger.Debug("response is not structured data",
			"endpoint", rec.EndpointID, "observation", rec.ObservationID)
		return out
	}
	e.history.Add(body)

	expected := expectedID(request, e.idKeys)
	g, ok := e.extractor.Extract(rec.ResponsePayload, expected)
	if !ok {
		e.metrics.Extracted(ports.ExtractNone)
		e.logger.Debug("no cluster graph in response",
			"endpoint", rec.EndpointID, "expected", expected, "observation", rec.ObservationID)
		return out
	}

	e.metrics.Extracted(ports.ExtractGraph)
	span.SetAttribute("cluster", g.ID)
	span.SetAttribute("nodes", len(g.Nodes))
	span.SetAttribute("edges", len(g.Edges))
	e.logger.Info("cluster graph extracted",
		"cluster", g.ID, "nodes", len(g.Nodes), "edges", len(g.Edges), "operation", op.Label())

	e.sink.PushGraph(g)
	out.Graph = g
	return out
}

// borrowRequest finds a request payload recorded for the same exchange by
// another source, first under the exact key and then by address prefix.
func (e *Engine) borrowRequest(endpointID string) (domain.Payload, bool) {
	if prior, ok := e.cache.Get(endpointID); ok && !prior.RequestPayload.IsEmpty() {
		return prior.RequestPayload, true
	}
	if prior, ok := e.cache.GetByPrefix(domain.StripQuery(endpointID)); ok && !prior.RequestPayload.IsEmpty() {
		return prior.RequestPayload, true
	}
	return nil, false
}

// expectedID returns the first variables.<key> value, for key in keys, found
// in the request. Batched requests use their first operation.
func expectedID(request domain.Payload, keys []string) string {
	body, err := request.Decode()
	if err != nil {
		return ""
	}
	if batch, ok := body.([]any); ok {
		if len(batch) == 0 {
			return ""
		}
		body = batch[0]
	}

	obj, _ := body.(map[string]any)
	variables, _ := obj["variables"].(map[string]any)
	for _, key := range keys {
		switch v := variables[key].(type) {
		case string:
			if v != "" {
				return v
			}
		case json.Number:
			return v.String()
		case float64:
			return strconv.FormatFloat(v, 'f', -1, 64)
		}
	}
	return ""
}
