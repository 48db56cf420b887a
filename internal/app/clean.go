package app

import (
	"context"
	"errors"
	"os"
	"path/filepath"

	"go.trai.ch/bakery/internal/core/domain"
	"go.trai.ch/zerr"
)

// CleanOptions configuration for the Clean method.
type CleanOptions struct {
	// All cleans every project of the tree instead of the root project only.
	All bool
}

// Clean removes the build outputs and the cache of the project rooted at dir.
//
// The root project is cleaned without reading its configuration, so a broken
// configuration does not prevent cleaning. Cleaning the whole tree needs it.
func (a *App) Clean(_ context.Context, dir string, opts CleanOptions) error {
	roots := []string{dir}

	if opts.All {
		project, err := a.loader.Open(dir)
		if err != nil {
			return err
		}

		roots = roots[:0]
		seen := make(map[string]bool)
		for p := range project.Walk() {
			if seen[p.BasePath] {
				continue
			}
			seen[p.BasePath] = true
			roots = append(roots, p.BasePath)
		}
	}

	var errs error
	for _, root := range roots {
		for _, rel := range []string{domain.DefaultBuildPath(), domain.DefaultCachePath()} {
			path := filepath.Join(root, rel)
			if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
				continue
			}

			a.logger.Info("Removing " + path)
			if err := os.RemoveAll(path); err != nil {
				errs = errors.Join(errs, zerr.With(zerr.Wrap(err, domain.ErrCleanFailed.Error()), "path", path))
			}
		}
	}
	return errs
}
