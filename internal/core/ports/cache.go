// Package ports defines the core interfaces for the application.
package ports

import "go.trai.ch/clustertap/internal/core/domain"

// CorrelationCache maps endpoint addresses to the latest observation seen for them.
//
//go:generate mockgen -source=cache.go -destination=mocks/mock_cache.go -package=mocks
type CorrelationCache interface {
	// Put stores the record under endpointID, replacing any previous record.
	Put(endpointID string, record domain.ExchangeRecord)

	// Get returns the record stored under exactly endpointID.
	Get(endpointID string) (domain.ExchangeRecord, bool)

	// GetByPrefix returns a record whose address, ignoring its query string,
	// starts with prefix. Which record wins among several is unspecified.
	GetByPrefix(prefix string) (domain.ExchangeRecord, bool)

	// Sweep removes every entry older than the configured maximum age and
	// returns how many were removed.
	Sweep() int

	// Len returns the number of stored entries.
	Len() int
}
