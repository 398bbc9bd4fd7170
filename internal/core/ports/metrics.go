package ports

// ExtractResult labels the outcome of an extraction attempt.
type ExtractResult string

const (
	// ExtractGraph means a graph was produced.
	ExtractGraph ExtractResult = "graph"
	// ExtractNone means no candidate matched.
	ExtractNone ExtractResult = "none"
	// ExtractParseError means the response payload was not structured data.
	ExtractParseError ExtractResult = "parse_error"
)

// Metrics records operational counters for the correlation engine.
//
//go:generate mockgen -source=metrics.go -destination=mocks/mock_metrics.go -package=mocks
type Metrics interface {
	// ObservationReceived counts an ingested observation by source kind.
	ObservationReceived(source string)
	// Classified counts a classifier decision by operation kind, as returned
	// by domain.Operation.Kind.
	Classified(ofInterest bool, kind string)
	// Extracted counts an extraction outcome.
	Extracted(result ExtractResult)
	// CacheEntries reports the current cache size.
	CacheEntries(n int)
	// Swept counts entries removed by a sweep.
	Swept(n int)
	// GraphPushed counts a graph delivered to the sink; duplicate pushes are counted separately.
	GraphPushed(duplicate bool)
}
