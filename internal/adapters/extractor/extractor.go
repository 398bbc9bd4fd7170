// Package extractor finds cluster graphs in response payloads of varying shape
// and converts them to the canonical domain form.
package extractor

import (
	"go.trai.ch/clustertap/internal/core/domain"
	"go.trai.ch/clustertap/internal/core/ports"
)

// Extractor implements ports.Extractor by trying its matchers in order.
type Extractor struct {
	matchers []Matcher
}

// New creates an Extractor with the list, envelope and object matchers
// configured from cfg. The envelope matcher falls back to history.
func New(cfg domain.ExtractorConfig, history ports.PayloadHistory) *Extractor {
	list := &ListMatcher{CollectionFields: cfg.CollectionFields}
	object := &ObjectMatcher{CollectionFields: cfg.CollectionFields}
	envelope := &EnvelopeMatcher{
		BodyFields:    cfg.BodyFields,
		RequestFields: cfg.RequestFields,
		IDKeys:        cfg.IDKeys,
		Inner:         []CandidateSource{list, object},
		History:       history,
	}
	return NewWithMatchers(list, envelope, object)
}

// NewWithMatchers creates an Extractor from an explicit matcher list.
func NewWithMatchers(matchers ...Matcher) *Extractor {
	return &Extractor{matchers: matchers}
}

// Extract returns the first graph any matcher accepts. A payload that does not
// decode, or that no matcher recognises, yields no graph.
func (e *Extractor) Extract(responsePayload domain.Payload, expectedID string) (*domain.ClusterGraph, bool) {
	body, err := responsePayload.Decode()
	if err != nil {
		return nil, false
	}
	return e.ExtractValue(body, expectedID)
}

// ExtractValue is Extract for an already decoded payload.
func (e *Extractor) ExtractValue(body any, expectedID string) (*domain.ClusterGraph, bool) {
	for _, m := range e.matchers {
		if g, ok := m.Match(body, expectedID); ok {
			return g, true
		}
	}
	return nil, false
}
