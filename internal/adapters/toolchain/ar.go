package toolchain

import (
	"context"

	"go.trai.ch/bakery/internal/core/domain"
	"go.trai.ch/bakery/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Archiver = (*Ar)(nil)

// Ar bundles objects with ar.
type Ar struct {
	path string
}

// NewAr creates an archiver running the executable at path.
func NewAr(path string) *Ar {
	return &Ar{path: path}
}

// ArchiveArgs returns the argument vector archiving objects into output.
func (a *Ar) ArchiveArgs(objects []string, output string) []string {
	return append([]string{"rcs", output}, objects...)
}

// Archive replaces the members of output with objects, creating it if needed.
func (a *Ar) Archive(ctx context.Context, objects []string, output string) error {
	if _, err := run(ctx, a.path, a.ArchiveArgs(objects, output)); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrArchiveFailed.Error()), "output", output)
	}
	return nil
}
