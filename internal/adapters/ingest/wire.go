// Package ingest implements the transports that feed observations into the
// correlation engine and publish finished graphs.
package ingest

import (
	"bytes"
	"context"
	"encoding/json"
	"time"

	"go.trai.ch/clustertap/internal/core/domain"
	"go.trai.ch/zerr"
)

// ObserveFunc hands one decoded observation to the engine.
type ObserveFunc func(ctx context.Context, record domain.ExchangeRecord)

// WireRecord is the JSON form of an observation. Payloads are kept verbatim:
// either embedded JSON or a JSON string holding the captured body text.
type WireRecord struct {
	ObservationID   string            `json:"observationId,omitempty"`
	EndpointID      string            `json:"endpointId"`
	Method          string            `json:"method,omitempty"`
	RequestPayload  json.RawMessage   `json:"requestPayload,omitempty"`
	ResponsePayload json.RawMessage   `json:"responsePayload,omitempty"`
	StatusCode      int               `json:"statusCode,omitempty"`
	Headers         map[string]string `json:"headers,omitempty"`
	SourceKind      string            `json:"sourceKind,omitempty"`
	ObservedAt      *time.Time        `json:"observedAt,omitempty"`
}

// Record converts the wire form to a domain record.
func (w *WireRecord) Record() domain.ExchangeRecord {
	rec := domain.ExchangeRecord{
		ObservationID: w.ObservationID,
		EndpointID:    w.EndpointID,
		Method:        w.Method,
		StatusCode:    w.StatusCode,
		Headers:       w.Headers,
		SourceKind:    domain.ParseSourceKind(w.SourceKind),
	}
	if len(w.RequestPayload) > 0 {
		rec.RequestPayload = domain.Payload(w.RequestPayload)
	}
	if len(w.ResponsePayload) > 0 {
		rec.ResponsePayload = domain.Payload(w.ResponsePayload)
	}
	if w.ObservedAt != nil {
		rec.ObservedAt = *w.ObservedAt
	}
	return rec
}

// DecodeRecords parses a single wire record or an array of them. Every record
// must carry an endpoint id.
func DecodeRecords(data []byte) ([]domain.ExchangeRecord, error) {
	trimmed := bytes.TrimSpace(data)

	var wires []WireRecord
	if len(trimmed) > 0 && trimmed[0] == '[' {
		if err := json.Unmarshal(trimmed, &wires); err != nil {
			return nil, zerr.Wrap(err, domain.ErrInvalidObservation.Error())
		}
	} else {
		var one WireRecord
		if err := json.Unmarshal(trimmed, &one); err != nil {
			return nil, zerr.Wrap(err, domain.ErrInvalidObservation.Error())
		}
		wires = []WireRecord{one}
	}

	records := make([]domain.ExchangeRecord, 0, len(wires))
	for i := range wires {
		if wires[i].EndpointID == "" {
			return nil, zerr.With(domain.ErrMissingEndpoint, "index", i)
		}
		records = append(records, wires[i].Record())
	}
	return records, nil
}
