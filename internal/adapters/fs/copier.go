package fs

import (
	"io"
	"os"
	"path/filepath"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/bakery/internal/core/domain"
	"go.trai.ch/bakery/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.ArtifactCopier = (*Copier)(nil)

// Copier copies artifacts between build directories. A destination that already holds
// the same bytes is left untouched so its modification time survives no-op builds.
type Copier struct{}

// NewCopier creates a new Copier.
func NewCopier() *Copier {
	return &Copier{}
}

// Copy replaces dst with the content and mode of src.
func (c *Copier) Copy(src, dst string) error {
	srcSum, err := checksum(src)
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrArtifactCopyFailed.Error()), "source", src)
	}
	if dstSum, err := checksum(dst); err == nil && dstSum == srcSum {
		return nil
	}

	if err := copyFile(src, dst); err != nil {
		return zerr.With(zerr.With(zerr.Wrap(err, domain.ErrArtifactCopyFailed.Error()), "source", src), "destination", dst)
	}
	return nil
}

// copyFile writes src to a temporary file next to dst and renames it into place.
func copyFile(src, dst string) error {
	in, err := os.Open(src) //nolint:gosec // Artifact paths are derived from the project tree
	if err != nil {
		return err
	}
	defer in.Close() //nolint:errcheck // Best effort close in defer

	info, err := in.Stat()
	if err != nil {
		return err
	}

	out, err := os.CreateTemp(filepath.Dir(dst), "."+filepath.Base(dst)+".*")
	if err != nil {
		return err
	}
	tmp := out.Name()
	defer os.Remove(tmp) //nolint:errcheck // No-op once renamed

	if _, err := io.Copy(out, in); err != nil {
		_ = out.Close()
		return err
	}
	if err := out.Close(); err != nil {
		return err
	}
	if err := os.Chmod(tmp, info.Mode().Perm()); err != nil {
		return err
	}
	return os.Rename(tmp, dst)
}

func checksum(path string) (uint64, error) {
	f, err := os.Open(path) //nolint:gosec // Path is controlled by caller
	if err != nil {
		return 0, err
	}
	defer f.Close() //nolint:errcheck // Best effort close in defer

	hasher := xxhash.New()
	if _, err := io.Copy(hasher, f); err != nil {
		return 0, err
	}
	return hasher.Sum64(), nil
}
