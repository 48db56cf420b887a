// Package ports defines the core interfaces for the application.
package ports

import "go.trai.ch/bakery/internal/core/domain"

// ProjectLoader resolves a project directory into a project tree.
//
//go:generate mockgen -source=project_loader.go -destination=mocks/mock_project_loader.go -package=mocks
type ProjectLoader interface {
	// Open reads the configuration in dir and recursively resolves its dependencies.
	Open(dir string) (*domain.Project, error)
}
