package ports

import "go.trai.ch/clustertap/internal/core/domain"

// GraphSink receives finished cluster graphs.
//
// Delivery is at-least-once: the same logical graph may be pushed repeatedly
// when several sources report the same exchange. Implementations must treat a
// push equal to the previous one as a no-op.
//
//go:generate mockgen -source=sink.go -destination=mocks/mock_sink.go -package=mocks
type GraphSink interface {
	// PushGraph publishes a graph. It must not block on slow consumers.
	PushGraph(graph *domain.ClusterGraph)
}
