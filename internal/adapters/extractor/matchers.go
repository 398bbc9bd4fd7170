package extractor

import (
	"slices"

	"go.trai.ch/clustertap/internal/core/domain"
	"go.trai.ch/clustertap/internal/core/ports"
)

// Matcher recognises one payload shape and produces a graph from it.
type Matcher interface {
	Match(payload any, expectedID string) (*domain.ClusterGraph, bool)
}

// CandidateSource is a matcher that can also list its raw cluster candidates,
// in the order they would be tried.
type CandidateSource interface {
	Matcher
	Candidates(payload any) []map[string]any
}

// ListMatcher matches a list whose first element holds data.<field>.
type ListMatcher struct {
	CollectionFields []string
}

// Candidates returns the first node of each collection found under the
// first element's data object.
func (m *ListMatcher) Candidates(payload any) []map[string]any {
	items, ok := payload.([]any)
	if !ok || len(items) == 0 {
		return nil
	}
	first, ok := items[0].(map[string]any)
	if !ok {
		return nil
	}
	return collectionCandidates(first, m.CollectionFields)
}

// Match implements Matcher.
func (m *ListMatcher) Match(payload any, expectedID string) (*domain.ClusterGraph, bool) {
	return firstAccepted(m.Candidates(payload), expectedID, nil)
}

// ObjectMatcher matches an object directly holding data.<field>.
type ObjectMatcher struct {
	CollectionFields []string
}

// Candidates returns the first node of each collection found under data.
func (m *ObjectMatcher) Candidates(payload any) []map[string]any {
	obj, ok := payload.(map[string]any)
	if !ok {
		return nil
	}
	return collectionCandidates(obj, m.CollectionFields)
}

// Match implements Matcher.
func (m *ObjectMatcher) Match(payload any, expectedID string) (*domain.ClusterGraph, bool) {
	return firstAccepted(m.Candidates(payload), expectedID, nil)
}

// EnvelopeMatcher matches an object that wraps the response body in one of
// BodyFields. The body is retried against Inner. Failing that, ids taken from
// the companion request are used to pick a candidate out of History.
type EnvelopeMatcher struct {
	BodyFields    []string
	RequestFields []string
	IDKeys        []string
	Inner         []CandidateSource
	History       ports.PayloadHistory
}

// Match implements Matcher.
func (m *EnvelopeMatcher) Match(payload any, expectedID string) (*domain.ClusterGraph, bool) {
	obj, ok := payload.(map[string]any)
	if !ok {
		return nil, false
	}

	body, ok := m.body(obj)
	if !ok {
		return nil, false
	}

	for _, inner := range m.Inner {
		if g, ok := inner.Match(body, expectedID); ok {
			return g, true
		}
	}

	return m.fromHistory(obj, expectedID)
}

func (m *EnvelopeMatcher) body(obj map[string]any) (any, bool) {
	for _, field := range m.BodyFields {
		raw, ok := obj[field]
		if !ok || raw == nil {
			continue
		}
		if s, isString := raw.(string); isString {
			return domain.DecodeText(s), true
		}
		return raw, true
	}
	return nil, false
}

func (m *EnvelopeMatcher) fromHistory(obj map[string]any, expectedID string) (*domain.ClusterGraph, bool) {
	if m.History == nil {
		return nil, false
	}

	ids := m.requestIDs(obj)
	if len(ids) == 0 {
		return nil, false
	}
	wanted := func(id string) bool { return slices.Contains(ids, id) }

	for _, past := range m.History.Snapshot() {
		for _, inner := range m.Inner {
			if g, ok := firstAccepted(inner.Candidates(past), expectedID, wanted); ok {
				return g, true
			}
		}
	}
	return nil, false
}

// requestIDs collects the values of IDKeys found at any depth of the request
// fields. String requests are parsed first.
func (m *EnvelopeMatcher) requestIDs(obj map[string]any) []string {
	var ids []string
	for _, field := range m.RequestFields {
		raw, ok := obj[field]
		if !ok {
			continue
		}
		if s, isString := raw.(string); isString {
			raw = domain.DecodeText(s)
		}
		ids = collectIDs(raw, m.IDKeys, ids)
	}
	return ids
}

func collectIDs(v any, keys []string, ids []string) []string {
	switch node := v.(type) {
	case map[string]any:
		for _, key := range keys {
			if id, ok := idString(node[key]); ok && !slices.Contains(ids, id) {
				ids = append(ids, id)
			}
		}
		for _, child := range node {
			ids = collectIDs(child, keys, ids)
		}
	case []any:
		for _, child := range node {
			ids = collectIDs(child, keys, ids)
		}
	}
	return ids
}

// collectionCandidates returns, per collection field present under
// obj.data, the node of the collection's first entry. A collection is either
// a list of entries or a connection object with an edges list.
func collectionCandidates(obj map[string]any, fields []string) []map[string]any {
	data, ok := obj["data"].(map[string]any)
	if !ok {
		return nil
	}

	var candidates []map[string]any
	for _, field := range fields {
		entries := collectionEntries(data[field])
		if len(entries) == 0 {
			continue
		}
		entry, ok := entries[0].(map[string]any)
		if !ok {
			continue
		}
		if node, ok := entry["node"].(map[string]any); ok {
			candidates = append(candidates, node)
		}
	}
	return candidates
}

func collectionEntries(collection any) []any {
	switch c := collection.(type) {
	case []any:
		return c
	case map[string]any:
		entries, _ := c["edges"].([]any)
		return entries
	}
	return nil
}
