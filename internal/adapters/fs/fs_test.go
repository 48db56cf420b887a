package fs_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/bakery/internal/adapters/fs"
	"go.trai.ch/bakery/internal/core/domain"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), domain.DirPerm))
	require.NoError(t, os.WriteFile(path, []byte(content), domain.FilePerm))
}

func TestHasher_DigestFile(t *testing.T) {
	dir := t.TempDir()
	h := fs.NewHasher()

	a := filepath.Join(dir, "a.c")
	b := filepath.Join(dir, "b.c")
	writeFile(t, a, "int main(void) { return 0; }\n")
	writeFile(t, b, "int main(void) { return 0; }\n")

	digestA, err := h.DigestFile(a)
	require.NoError(t, err)
	digestB, err := h.DigestFile(b)
	require.NoError(t, err)

	assert.Len(t, digestA, 64)
	assert.Equal(t, digestA, digestB)
	assert.Equal(t, h.DigestBytes([]byte("int main(void) { return 0; }\n")), digestA)

	// A whitespace change is a different digest.
	writeFile(t, b, "int main(void) { return 0; } \n")
	digestB, err = h.DigestFile(b)
	require.NoError(t, err)
	assert.NotEqual(t, digestA, digestB)
}

func TestHasher_DigestFile_Empty(t *testing.T) {
	dir := t.TempDir()
	h := fs.NewHasher()

	path := filepath.Join(dir, "empty.c")
	writeFile(t, path, "")

	digest, err := h.DigestFile(path)
	require.NoError(t, err)
	assert.Equal(t, h.DigestBytes(nil), digest)
}

func TestHasher_DigestFile_Missing(t *testing.T) {
	h := fs.NewHasher()

	_, err := h.DigestFile(filepath.Join(t.TempDir(), "missing.c"))
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrFileOpenFailed.Error())
}
