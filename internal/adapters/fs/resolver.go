package fs

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"go.trai.ch/bakery/internal/core/domain"
	"go.trai.ch/bakery/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.PathResolver = (*Resolver)(nil)

// Resolver expands source globs and validates include directories.
type Resolver struct{}

// NewResolver creates a new Resolver.
func NewResolver() *Resolver {
	return &Resolver{}
}

// ResolveSources expands every pattern rooted at base. Each match must be a regular file
// below base that is not a symlink.
func (r *Resolver) ResolveSources(base string, patterns []string) ([]string, error) {
	var sources []string

	for _, pattern := range patterns {
		if filepath.IsAbs(pattern) {
			return nil, zerr.With(domain.ErrIncorrectSource, "source", pattern)
		}

		matches, err := doublestar.FilepathGlob(filepath.Join(escapeMeta(base), pattern))
		if err != nil {
			return nil, zerr.With(zerr.Wrap(err, domain.ErrIncorrectWildcard.Error()), "pattern", pattern)
		}

		for _, match := range matches {
			source, err := relativeSource(base, match)
			if err != nil {
				return nil, err
			}
			sources = append(sources, source)
		}
	}

	return sources, nil
}

// ResolveIncludes checks that every include is a relative directory that is not a
// symlink and returns the includes joined to base.
func (r *Resolver) ResolveIncludes(base string, includes []string) ([]string, error) {
	resolved := make([]string, 0, len(includes))

	for _, include := range includes {
		if filepath.IsAbs(include) {
			return nil, zerr.With(domain.ErrIncorrectInclude, "include", include)
		}

		path := filepath.Join(base, include)
		info, err := os.Lstat(path)
		if err != nil {
			return nil, zerr.With(zerr.Wrap(err, domain.ErrIncorrectInclude.Error()), "include", include)
		}
		if info.Mode()&os.ModeSymlink != 0 || !info.IsDir() {
			return nil, zerr.With(domain.ErrIncorrectInclude, "include", include)
		}

		resolved = append(resolved, path)
	}

	return resolved, nil
}

// relativeSource converts a glob match into a path relative to base.
func relativeSource(base, match string) (string, error) {
	rel, err := filepath.Rel(base, match)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", zerr.With(domain.ErrIncorrectSource, "source", match)
	}

	info, err := os.Lstat(match)
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, domain.ErrIncorrectSource.Error()), "source", rel)
	}
	if !info.Mode().IsRegular() {
		return "", zerr.With(domain.ErrIncorrectSource, "source", rel)
	}

	return rel, nil
}

// escapeMeta quotes glob metacharacters in a literal path prefix.
func escapeMeta(path string) string {
	if runtime.GOOS == "windows" {
		// Backslash is the separator there and cannot escape.
		return path
	}

	var b strings.Builder
	for _, r := range path {
		switch r {
		case '*', '?', '[', ']', '{', '}', '\\':
			b.WriteRune('\\')
		}
		b.WriteRune(r)
	}
	return b.String()
}
