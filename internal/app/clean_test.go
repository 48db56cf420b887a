package app_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/bakery/internal/app"
	"go.trai.ch/bakery/internal/core/domain"
	"go.uber.org/mock/gomock"
)

// seedOutputs creates build and cache outputs below root.
func seedOutputs(t *testing.T, root string) {
	t.Helper()
	for _, rel := range []string{domain.DefaultBuildPath(), domain.DefaultCachePath()} {
		dir := filepath.Join(root, rel)
		require.NoError(t, os.MkdirAll(dir, domain.DirPerm))
		require.NoError(t, os.WriteFile(filepath.Join(dir, "file"), nil, domain.FilePerm))
	}
}

func TestApp_Clean_RootOnly(t *testing.T) {
	f := newFixture(t)
	root := t.TempDir()
	seedOutputs(t, root)
	require.NoError(t, os.WriteFile(filepath.Join(root, "main.c"), nil, domain.FilePerm))

	f.logger.EXPECT().Info("Removing " + filepath.Join(root, domain.DefaultBuildPath()))
	f.logger.EXPECT().Info("Removing " + filepath.Join(root, domain.DefaultCachePath()))

	require.NoError(t, f.app.Clean(context.Background(), root, app.CleanOptions{}))

	assert.NoDirExists(t, filepath.Join(root, domain.DefaultBuildPath()))
	assert.NoDirExists(t, filepath.Join(root, domain.DefaultCachePath()))
	assert.FileExists(t, filepath.Join(root, "main.c"))
}

func TestApp_Clean_NothingToRemove(t *testing.T) {
	f := newFixture(t)

	// No logging when there is nothing to remove.
	require.NoError(t, f.app.Clean(context.Background(), t.TempDir(), app.CleanOptions{}))
}

func TestApp_Clean_All(t *testing.T) {
	f := newFixture(t)
	base := t.TempDir()

	common := &domain.Project{Name: "common", BasePath: filepath.Join(base, "common"), Distribution: domain.StaticLibrary}
	commonAgain := *common
	lib := &domain.Project{
		Name:         "lib",
		BasePath:     filepath.Join(base, "lib"),
		Distribution: domain.StaticLibrary,
		Dependencies: []domain.Dependency{domain.ProjectDependency(common)},
	}
	root := &domain.Project{
		Name:     "app",
		BasePath: filepath.Join(base, "app"),
		Dependencies: []domain.Dependency{
			domain.ProjectDependency(lib),
			domain.ProjectDependency(&commonAgain),
		},
	}
	for p := range root.Walk() {
		seedOutputs(t, p.BasePath)
	}

	f.loader.EXPECT().Open(root.BasePath).Return(root, nil)
	// Two directories per distinct project.
	f.logger.EXPECT().Info(gomock.Any()).Times(6)

	require.NoError(t, f.app.Clean(context.Background(), root.BasePath, app.CleanOptions{All: true}))

	for p := range root.Walk() {
		assert.NoDirExists(t, p.BuildDir())
		assert.NoDirExists(t, p.CacheDir())
	}
}

func TestApp_Clean_AllNeedsConfiguration(t *testing.T) {
	f := newFixture(t)
	f.loader.EXPECT().Open(".").Return(nil, domain.ErrConfigSyntax)

	err := f.app.Clean(context.Background(), ".", app.CleanOptions{All: true})
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrConfigSyntax.Error())
}
