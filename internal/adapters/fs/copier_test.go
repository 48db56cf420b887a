package fs_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/bakery/internal/adapters/fs"
	"go.trai.ch/bakery/internal/core/domain"
)

func TestCopier_Copy(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "dep", "libdep.so")
	dst := filepath.Join(dir, "app", "libdep.so")
	writeFile(t, src, "shared object v1")
	require.NoError(t, os.MkdirAll(filepath.Dir(dst), domain.DirPerm))

	c := fs.NewCopier()
	require.NoError(t, c.Copy(src, dst))

	data, err := os.ReadFile(dst)
	require.NoError(t, err)
	assert.Equal(t, "shared object v1", string(data))

	writeFile(t, src, "shared object v2")
	require.NoError(t, c.Copy(src, dst))

	data, err = os.ReadFile(dst)
	require.NoError(t, err)
	assert.Equal(t, "shared object v2", string(data))
}

func TestCopier_Copy_SkipsIdenticalDestination(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "src.so")
	dst := filepath.Join(dir, "dst.so")
	writeFile(t, src, "same bytes")
	writeFile(t, dst, "same bytes")

	past := time.Now().Add(-time.Hour).Truncate(time.Second)
	require.NoError(t, os.Chtimes(dst, past, past))

	require.NoError(t, fs.NewCopier().Copy(src, dst))

	info, err := os.Stat(dst)
	require.NoError(t, err)
	assert.True(t, info.ModTime().Equal(past), "identical destination must not be rewritten")
}

func TestCopier_Copy_MissingSource(t *testing.T) {
	dir := t.TempDir()

	err := fs.NewCopier().Copy(filepath.Join(dir, "missing.so"), filepath.Join(dir, "out.so"))
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrArtifactCopyFailed.Error())
}
