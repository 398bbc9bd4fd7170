package ports

import "go.trai.ch/clustertap/internal/core/domain"

// Classifier decides whether an exchange carries structured query traffic.
//
//go:generate mockgen -source=classifier.go -destination=mocks/mock_classifier.go -package=mocks
type Classifier interface {
	// IsOfInterest reports whether the exchange should be considered for extraction.
	// Unparseable payloads are never of interest; this never fails.
	IsOfInterest(endpointID string, requestPayload domain.Payload) bool

	// Describe extracts what it can about the operation in the request payload.
	Describe(requestPayload domain.Payload) domain.Operation
}
