package ports

import (
	"context"

	"go.trai.ch/bakery/internal/core/domain"
)

//go:generate mockgen -source=builder.go -destination=mocks/mock_builder.go -package=mocks

// ProjectBuilder builds a project tree with a toolchain.
type ProjectBuilder interface {
	// Build builds p after every project it depends on.
	Build(ctx context.Context, p *domain.Project, tc Toolchain) error
}
