package app_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/bakery/internal/app"
	"go.trai.ch/bakery/internal/core/domain"
	"go.trai.ch/bakery/internal/core/ports/mocks"
	"go.trai.ch/zerr"
	"go.uber.org/mock/gomock"
)

type fixture struct {
	loader    *mocks.MockProjectLoader
	builder   *mocks.MockProjectBuilder
	locator   *mocks.MockToolchainLocator
	factory   *mocks.MockToolchainFactory
	toolchain *mocks.MockToolchain
	executor  *mocks.MockExecutor
	watcher   *mocks.MockWatcher
	logger    *mocks.MockLogger

	stdout *bytes.Buffer
	stderr *bytes.Buffer
	app    *app.App
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	f := &fixture{
		loader:    mocks.NewMockProjectLoader(ctrl),
		builder:   mocks.NewMockProjectBuilder(ctrl),
		locator:   mocks.NewMockToolchainLocator(ctrl),
		factory:   mocks.NewMockToolchainFactory(ctrl),
		toolchain: mocks.NewMockToolchain(ctrl),
		executor:  mocks.NewMockExecutor(ctrl),
		watcher:   mocks.NewMockWatcher(ctrl),
		logger:    mocks.NewMockLogger(ctrl),
		stdout:    new(bytes.Buffer),
		stderr:    new(bytes.Buffer),
	}
	f.app = app.New(f.loader, f.builder, f.locator, f.factory, f.executor, f.watcher, f.logger).
		WithOutput(f.stdout, f.stderr)
	return f
}

var settings = domain.ToolchainSettings{CCompiler: "/usr/bin/gcc", CppCompiler: "/usr/bin/g++", Archiver: "/usr/bin/ar"}

// expectPrepare expects the project at dir to be opened and the toolchain located once.
func (f *fixture) expectPrepare(dir string, p *domain.Project) {
	f.loader.EXPECT().Open(dir).Return(p, nil)
	f.locator.EXPECT().Locate().Return(settings, nil)
	f.factory.EXPECT().New(settings).Return(f.toolchain)
}

// newTree returns an executable depending on a static library and on libm.
func newTree() *domain.Project {
	lib := &domain.Project{
		Name:         "lib",
		BasePath:     "/work/lib",
		Language:     domain.LanguageC,
		Distribution: domain.StaticLibrary,
		Sources:      []string{"lib.c"},
		Includes:     []string{"/work/lib/include"},
	}
	return &domain.Project{
		Name:         "app",
		BasePath:     "/work/app",
		Language:     domain.LanguageC,
		Distribution: domain.Executable,
		Optimization: domain.OptimizationTwo,
		Sources:      []string{"main.c", "src/util.c"},
		Includes:     []string{"/work/lib/include"},
		Dependencies: []domain.Dependency{domain.ProjectDependency(lib), domain.SystemDependency("m")},
	}
}

func TestApp_Build(t *testing.T) {
	f := newFixture(t)
	project := newTree()

	f.expectPrepare("/work/app", project)
	f.builder.EXPECT().Build(gomock.Any(), project, f.toolchain).Return(nil)

	require.NoError(t, f.app.Build(context.Background(), "/work/app"))
}

func TestApp_Build_LoadError(t *testing.T) {
	f := newFixture(t)
	f.loader.EXPECT().Open(".").Return(nil, domain.ErrConfigNotFound)

	err := f.app.Build(context.Background(), ".")
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrConfigNotFound.Error())
}

func TestApp_Build_LocateError(t *testing.T) {
	f := newFixture(t)
	f.loader.EXPECT().Open(".").Return(newTree(), nil)
	f.locator.EXPECT().Locate().Return(domain.ToolchainSettings{}, domain.ErrToolchainConfigFailed)

	err := f.app.Build(context.Background(), ".")
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrToolchainConfigFailed.Error())
}

func TestApp_Build_Failure(t *testing.T) {
	f := newFixture(t)
	project := newTree()

	f.expectPrepare(".", project)
	compileErr := &domain.CompilationError{Errors: []error{errors.New("main.c:1: error")}}
	f.builder.EXPECT().Build(gomock.Any(), project, f.toolchain).Return(compileErr)

	err := f.app.Build(context.Background(), ".")
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrTaskFailed.Error())

	var target *domain.CompilationError
	require.ErrorAs(t, err, &target)
	assert.Same(t, compileErr, target)
}

func TestApp_Run(t *testing.T) {
	f := newFixture(t)
	project := newTree()

	f.expectPrepare(".", project)
	gomock.InOrder(
		f.builder.EXPECT().Build(gomock.Any(), project, f.toolchain).Return(nil),
		f.executor.EXPECT().Execute(gomock.Any(), "/work/app/.bakery/build/app", []string{"--verbose", "input.txt"},
			"/work/app", f.stdout, f.stderr).Return(nil),
	)

	require.NoError(t, f.app.Run(context.Background(), ".", []string{"--verbose", "input.txt"}))
}

func TestApp_Run_NonExecutable(t *testing.T) {
	f := newFixture(t)
	project := newTree()
	project.Distribution = domain.DynamicLibrary

	f.loader.EXPECT().Open(".").Return(project, nil)
	f.locator.EXPECT().Locate().Return(settings, nil)

	err := f.app.Run(context.Background(), ".", nil)
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrCannotRunNonExecutable.Error())
}

func TestApp_Run_BuildFailureSkipsExecution(t *testing.T) {
	f := newFixture(t)
	project := newTree()

	f.expectPrepare(".", project)
	f.builder.EXPECT().Build(gomock.Any(), project, f.toolchain).Return(domain.ErrLinkFailed)

	err := f.app.Run(context.Background(), ".", nil)
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrLinkFailed.Error())
}

func TestApp_Run_ForwardsExitCode(t *testing.T) {
	f := newFixture(t)
	project := newTree()

	f.expectPrepare(".", project)
	f.builder.EXPECT().Build(gomock.Any(), project, f.toolchain).Return(nil)
	f.executor.EXPECT().Execute(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(zerr.With(domain.ErrExecutableFailed, "exit_code", 42))

	err := f.app.Run(context.Background(), ".", nil)
	require.Error(t, err)

	code, ok := domain.ExitCode(err)
	require.True(t, ok)
	assert.Equal(t, 42, code)
}
