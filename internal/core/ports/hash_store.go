package ports

import "go.trai.ch/bakery/internal/core/domain"

// HashStore persists the incremental build cache of a project.
//
//go:generate mockgen -source=hash_store.go -destination=mocks/mock_hash_store.go -package=mocks
type HashStore interface {
	// Load returns the cache of the project rooted at root.
	// A missing cache file yields an empty snapshot.
	Load(root string) (domain.Hashes, error)

	// Save replaces the cache of the project rooted at root.
	Save(root string, hashes domain.Hashes) error
}
