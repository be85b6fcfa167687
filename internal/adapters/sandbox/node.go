package sandbox

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/lambdazip/internal/adapters/fs"
	"go.trai.ch/lambdazip/internal/adapters/shell"
	"go.trai.ch/lambdazip/internal/core/ports"
)

// NodeID is the unique identifier for the sandbox factory Graft node.
const NodeID graft.ID = "adapter.sandbox"

func init() {
	graft.Register(graft.Node[ports.SandboxFactory]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{shell.NodeID, fs.WalkerNodeID},
		Run: func(ctx context.Context) (ports.SandboxFactory, error) {
			executor, err := graft.Dep[ports.Executor](ctx)
			if err != nil {
				return nil, err
			}
			walker, err := graft.Dep[*fs.Walker](ctx)
			if err != nil {
				return nil, err
			}
			return NewFactory(executor, walker), nil
		},
	})
}
