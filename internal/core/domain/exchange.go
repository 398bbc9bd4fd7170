// Package domain contains the core types of clustertap.
package domain

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/url"
	"strings"
	"time"
)

// SourceKind identifies the instrumentation source that reported an observation.
type SourceKind string

const (
	// SourceFetch is the fetch method-override hook.
	SourceFetch SourceKind = "fetch"
	// SourceXHR is the XMLHttpRequest method-override hook.
	SourceXHR SourceKind = "xhr"
	// SourceHeader is the header-interception hook. It usually sees the request
	// but never the response body.
	SourceHeader SourceKind = "header"
	// SourceUnknown is used for any kind the ingest layer does not recognise.
	SourceUnknown SourceKind = "unknown"
)

// ParseSourceKind maps a wire value onto a known SourceKind.
func ParseSourceKind(s string) SourceKind {
	switch SourceKind(strings.ToLower(strings.TrimSpace(s))) {
	case SourceFetch:
		return SourceFetch
	case SourceXHR:
		return SourceXHR
	case SourceHeader:
		return SourceHeader
	default:
		return SourceUnknown
	}
}

// Payload is a raw request or response body as observed on the wire.
// It may or may not hold JSON.
type Payload []byte

// IsEmpty reports whether the payload is absent.
func (p Payload) IsEmpty() bool {
	trimmed := bytes.TrimSpace(p)
	return len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null"))
}

// Decode parses the payload as JSON. A top-level JSON string is parsed once
// more, since bodies are frequently captured as text; when that second parse
// fails the string itself is returned.
func (p Payload) Decode() (any, error) {
	if p.IsEmpty() {
		return nil, ErrEmptyPayload
	}

	v, err := decodeJSON(p)
	if err != nil {
		return nil, err
	}

	if s, ok := v.(string); ok {
		return DecodeText(s), nil
	}
	return v, nil
}

// DecodeText parses s as JSON, returning s unchanged when it is not JSON.
func DecodeText(s string) any {
	inner, err := decodeJSON([]byte(s))
	if err != nil {
		return s
	}
	return inner
}

// decodeJSON parses a single JSON value. Numbers are kept as json.Number so
// ids above 2^53 survive intact.
func decodeJSON(b []byte) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(b))
	dec.UseNumber()

	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, err
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, ErrTrailingData
	}
	return v, nil
}

// ExchangeRecord is one raw observation of a request/response exchange.
// Any field except EndpointID may be missing, depending on the source.
type ExchangeRecord struct {
	ObservationID   string
	EndpointID      string
	Method          string
	RequestPayload  Payload
	ResponsePayload Payload
	StatusCode      int
	Headers         map[string]string
	ObservedAt      time.Time
	SourceKind      SourceKind
}

// StripQuery returns the address without its query string and fragment.
func StripQuery(address string) string {
	if i := strings.IndexAny(address, "?#"); i >= 0 {
		return address[:i]
	}
	return address
}

// NormalizeEndpoint produces the correlation key for an address: scheme and
// host are lower-cased, everything else is kept verbatim. Addresses that do
// not parse as absolute URLs are returned trimmed.
func NormalizeEndpoint(address string) string {
	address = strings.TrimSpace(address)
	u, err := url.Parse(address)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return address
	}
	u.Scheme = strings.ToLower(u.Scheme)
	u.Host = strings.ToLower(u.Host)
	return u.String()
}
