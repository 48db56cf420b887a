package config

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/bakery/internal/adapters/cas"
	"go.trai.ch/bakery/internal/adapters/fs"
	"go.trai.ch/bakery/internal/core/ports"
)

// NodeID is the unique identifier for the project loader Graft node.
const NodeID graft.ID = "adapter.project_loader"

func init() {
	graft.Register(graft.Node[ports.ProjectLoader]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{fs.HasherNodeID, fs.ResolverNodeID, cas.NodeID},
		Run: func(ctx context.Context) (ports.ProjectLoader, error) {
			hasher, err := graft.Dep[ports.Hasher](ctx)
			if err != nil {
				return nil, err
			}
			resolver, err := graft.Dep[ports.PathResolver](ctx)
			if err != nil {
				return nil, err
			}
			store, err := graft.Dep[ports.HashStore](ctx)
			if err != nil {
				return nil, err
			}
			return NewLoader(hasher, store, resolver), nil
		},
	})
}
