package cas_test

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/bakery/internal/adapters/cas"
	"go.trai.ch/bakery/internal/core/domain"
)

func TestStore_SaveAndLoad(t *testing.T) {
	root := t.TempDir()
	store := cas.NewStore()

	hashes := domain.Hashes{
		domain.ConfigFileName: "c0ffee",
		"src/main.c":          "beef",
	}
	require.NoError(t, store.Save(root, hashes))

	got, err := store.Load(root)
	require.NoError(t, err)
	assert.Equal(t, hashes, got)

	// The file is a flat path -> hex digest object.
	data, err := os.ReadFile(filepath.Join(root, ".bakery", "cache", "hashes.json"))
	require.NoError(t, err)

	var raw map[string]string
	require.NoError(t, json.Unmarshal(data, &raw))
	assert.Equal(t, "beef", raw["src/main.c"])
}

func TestStore_SaveReplacesWholesale(t *testing.T) {
	root := t.TempDir()
	store := cas.NewStore()

	require.NoError(t, store.Save(root, domain.Hashes{"a.c": "1", "b.c": "2"}))
	require.NoError(t, store.Save(root, domain.Hashes{"a.c": "3"}))

	got, err := store.Load(root)
	require.NoError(t, err)
	assert.Equal(t, domain.Hashes{"a.c": "3"}, got)

	entries, err := os.ReadDir(filepath.Join(root, ".bakery", "cache"))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "no temporary files are left behind")
}

func TestStore_LoadMissing(t *testing.T) {
	got, err := cas.NewStore().Load(t.TempDir())
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestStore_LoadCorrupted(t *testing.T) {
	root := t.TempDir()
	path := filepath.Join(root, ".bakery", "cache", "hashes.json")
	require.NoError(t, os.MkdirAll(filepath.Dir(path), domain.DirPerm))
	require.NoError(t, os.WriteFile(path, []byte("{not json"), domain.FilePerm))

	_, err := cas.NewStore().Load(root)
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrHashesUnmarshalFailed.Error())
}
