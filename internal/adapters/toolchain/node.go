package toolchain

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/bakery/internal/core/ports"
)

const (
	// FactoryNodeID is the unique identifier for the toolchain factory Graft node.
	FactoryNodeID graft.ID = "adapter.toolchain.factory"
	// LocatorNodeID is the unique identifier for the toolchain locator Graft node.
	LocatorNodeID graft.ID = "adapter.toolchain.locator"
)

func init() {
	graft.Register(graft.Node[ports.ToolchainFactory]{
		ID:        FactoryNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.ToolchainFactory, error) {
			return NewFactory(), nil
		},
	})

	graft.Register(graft.Node[ports.ToolchainLocator]{
		ID:        LocatorNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.ToolchainLocator, error) {
			dir, err := DefaultSettingsDir()
			if err != nil {
				return nil, err
			}
			return NewLocator(dir), nil
		},
	})
}
