package builder

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/bakery/internal/adapters/cas"                //nolint:depguard // Wired in engine wiring
	"go.trai.ch/bakery/internal/adapters/fs"                 //nolint:depguard // Wired in engine wiring
	"go.trai.ch/bakery/internal/adapters/logger"             //nolint:depguard // Wired in engine wiring
	"go.trai.ch/bakery/internal/adapters/telemetry/progrock" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/bakery/internal/core/ports"
)

// NodeID is the unique identifier for the builder Graft node.
const NodeID graft.ID = "engine.builder"

func init() {
	graft.Register(graft.Node[ports.ProjectBuilder]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			cas.NodeID,
			fs.HasherNodeID,
			fs.CopierNodeID,
			logger.NodeID,
			progrock.NodeID,
		},
		Run: func(ctx context.Context) (ports.ProjectBuilder, error) {
			store, err := graft.Dep[ports.HashStore](ctx)
			if err != nil {
				return nil, err
			}

			hasher, err := graft.Dep[ports.Hasher](ctx)
			if err != nil {
				return nil, err
			}

			copier, err := graft.Dep[ports.ArtifactCopier](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			telemetry, err := graft.Dep[ports.Telemetry](ctx)
			if err != nil {
				return nil, err
			}

			return NewBuilder(store, hasher, copier, log, telemetry), nil
		},
	})
}
