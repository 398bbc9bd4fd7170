// Package classifier decides whether an exchange carries structured query traffic.
package classifier

import (
	"regexp"

	"go.trai.ch/clustertap/internal/core/domain"
	"go.trai.ch/zerr"
)

// Classifier implements ports.Classifier with an ordered ladder of address
// patterns followed by a look at the request body.
type Classifier struct {
	patterns []*regexp.Regexp
}

// New compiles patterns, in order, as case-insensitive regular expressions.
func New(patterns []string) (*Classifier, error) {
	compiled := make([]*regexp.Regexp, 0, len(patterns))
	for _, p := range patterns {
		re, err := regexp.Compile("(?i)" + p)
		if err != nil {
			return nil, zerr.With(zerr.Wrap(err, domain.ErrInvalidPattern.Error()), "pattern", p)
		}
		compiled = append(compiled, re)
	}
	return &Classifier{patterns: compiled}, nil
}

// IsOfInterest reports whether the exchange at endpointID looks like query
// traffic. The payload is only decoded when no address pattern matches, and a
// payload that does not decode is not of interest.
func (c *Classifier) IsOfInterest(endpointID string, requestPayload domain.Payload) bool {
	if c.MatchesAddress(endpointID) {
		return true
	}

	body, err := requestPayload.Decode()
	if err != nil {
		return false
	}
	return looksLikeOperation(body)
}

// MatchesAddress reports whether any address pattern matches endpointID.
func (c *Classifier) MatchesAddress(endpointID string) bool {
	for _, re := range c.patterns {
		if re.MatchString(endpointID) {
			return true
		}
	}
	return false
}

func looksLikeOperation(body any) bool {
	switch v := body.(type) {
	case map[string]any:
		return isOperationObject(v)
	case []any:
		for _, item := range v {
			if obj, ok := item.(map[string]any); ok && isOperationObject(obj) {
				return true
			}
		}
	}
	return false
}

func isOperationObject(obj map[string]any) bool {
	for _, key := range []string{"query", "mutation", "operationName"} {
		if _, ok := obj[key]; ok {
			return true
		}
	}
	return persistedQuery(obj) != nil
}

func persistedQuery(obj map[string]any) map[string]any {
	ext, ok := obj["extensions"].(map[string]any)
	if !ok {
		return nil
	}
	pq, _ := ext["persistedQuery"].(map[string]any)
	return pq
}
