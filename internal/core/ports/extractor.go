package ports

import "go.trai.ch/clustertap/internal/core/domain"

// Extractor finds a cluster graph inside a response payload.
//
//go:generate mockgen -source=extractor.go -destination=mocks/mock_extractor.go -package=mocks
type Extractor interface {
	// Extract returns the first canonical graph found in the payload, or false.
	// When expectedID is non-empty, candidates with a different id are skipped.
	Extract(responsePayload domain.Payload, expectedID string) (*domain.ClusterGraph, bool)
}

// PayloadHistory keeps recently observed response payloads.
type PayloadHistory interface {
	// Add records a decoded payload.
	Add(payload any)

	// Snapshot returns the recorded payloads, newest first.
	Snapshot() []any
}
