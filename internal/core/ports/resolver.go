package ports

// PathResolver expands and validates the paths a project configuration declares.
//
//go:generate mockgen -source=resolver.go -destination=mocks/mock_resolver.go -package=mocks
type PathResolver interface {
	// ResolveSources expands each pattern below base, in declaration order, and returns
	// the matches relative to base. Matches of different patterns are not deduplicated.
	ResolveSources(base string, patterns []string) ([]string, error)

	// ResolveIncludes validates each include directory below base and returns it joined
	// to base.
	ResolveIncludes(base string, includes []string) ([]string, error)
}
