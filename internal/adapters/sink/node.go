package sink

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/clustertap/internal/adapters/logger"
	"go.trai.ch/clustertap/internal/adapters/telemetry"
	"go.trai.ch/clustertap/internal/core/ports"
)

// NodeID is the unique identifier for the graph hub Graft node.
const NodeID graft.ID = "adapter.sink"

func init() {
	graft.Register(graft.Node[*Hub]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID, telemetry.MetricsNodeID},
		Run: func(ctx context.Context) (*Hub, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			metrics, err := graft.Dep[*telemetry.Metrics](ctx)
			if err != nil {
				return nil, err
			}
			return NewHub(log, metrics), nil
		},
	})
}
