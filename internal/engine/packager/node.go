package packager

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/lambdazip/internal/adapters/collector"          //nolint:depguard // Wired in engine wiring
	"go.trai.ch/lambdazip/internal/adapters/fs"                 //nolint:depguard // Wired in engine wiring
	"go.trai.ch/lambdazip/internal/adapters/logger"             //nolint:depguard // Wired in engine wiring
	"go.trai.ch/lambdazip/internal/adapters/sandbox"            //nolint:depguard // Wired in engine wiring
	"go.trai.ch/lambdazip/internal/adapters/telemetry/progrock" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/lambdazip/internal/core/ports"
)

// NodeID is the unique identifier for the packager Graft node.
const NodeID graft.ID = "engine.packager"

func init() {
	graft.Register(graft.Node[*Packager]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			sandbox.NodeID,
			collector.NodeID,
			fs.HasherNodeID,
			progrock.NodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Packager, error) {
			sandboxes, err := graft.Dep[ports.SandboxFactory](ctx)
			if err != nil {
				return nil, err
			}

			deps, err := graft.Dep[ports.DependencyCollector](ctx)
			if err != nil {
				return nil, err
			}

			hasher, err := graft.Dep[ports.Hasher](ctx)
			if err != nil {
				return nil, err
			}

			tel, err := graft.Dep[ports.Telemetry](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return New(sandboxes, deps, hasher, tel, log), nil
		},
	})
}
