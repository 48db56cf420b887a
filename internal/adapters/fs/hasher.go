// Package fs implements file system adapters: content digests, path resolution and
// artifact copies.
package fs

import (
	"encoding/hex"
	"io"

	"go.trai.ch/bakery/internal/core/domain"
	"go.trai.ch/bakery/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/exp/mmap"
	"lukechampine.com/blake3"
)

var _ ports.Hasher = (*Hasher)(nil)

// digestSize is the BLAKE3 output length in bytes.
const digestSize = 32

// Hasher computes BLAKE3 digests over memory-mapped file contents.
type Hasher struct{}

// NewHasher creates a new Hasher.
func NewHasher() *Hasher {
	return &Hasher{}
}

// DigestFile returns the hex encoded BLAKE3 digest of the file's full content.
func (h *Hasher) DigestFile(path string) (string, error) {
	r, err := mmap.Open(path)
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, domain.ErrFileOpenFailed.Error()), "path", path)
	}
	defer r.Close() //nolint:errcheck // Read-only mapping

	hasher := blake3.New(digestSize, nil)
	if _, err := io.Copy(hasher, io.NewSectionReader(r, 0, int64(r.Len()))); err != nil {
		return "", zerr.With(zerr.Wrap(err, domain.ErrFileDigestFailed.Error()), "path", path)
	}

	return hex.EncodeToString(hasher.Sum(nil)), nil
}

// DigestBytes returns the hex encoded BLAKE3 digest of data.
func (h *Hasher) DigestBytes(data []byte) string {
	sum := blake3.Sum256(data)
	return hex.EncodeToString(sum[:])
}
