package collector

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/lambdazip/internal/adapters/logger"
	"go.trai.ch/lambdazip/internal/core/ports"
)

// NodeID is the unique identifier for the dependency collector Graft node.
const NodeID graft.ID = "adapter.collector"

func init() {
	graft.Register(graft.Node[ports.DependencyCollector]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.DependencyCollector, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewDispatcher(log), nil
		},
	})
}
