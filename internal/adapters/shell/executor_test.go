package shell_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/bakery/internal/adapters/shell"
	"go.trai.ch/bakery/internal/core/domain"
	"go.trai.ch/bakery/internal/core/ports/mocks"
	"go.trai.ch/zerr"
	"go.uber.org/mock/gomock"
)

func writeScript(t *testing.T, dir, name, body string) string {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("shell scripts are not executable on windows")
	}
	path := filepath.Join(dir, name)
	//nolint:gosec // test requires an executable file
	require.NoError(t, os.WriteFile(path, []byte("#!/bin/sh\n"+body+"\n"), 0o755))
	return path
}

func TestExecutor_Execute_Streams(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Info("Running hello")

	dir := t.TempDir()
	path := writeScript(t, dir, "hello", `pwd; echo "args: $*"; cat; echo oops >&2`)

	var stdout, stderr bytes.Buffer
	executor := shell.NewExecutor(mockLogger).WithStdin(strings.NewReader("from stdin\n"))

	err := executor.Execute(context.Background(), path, []string{"a", "b c"}, dir, &stdout, &stderr)
	require.NoError(t, err)

	resolved, err := filepath.EvalSymlinks(dir)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(stdout.String()), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, resolved, lines[0])
	assert.Equal(t, "args: a b c", lines[1])
	assert.Equal(t, "from stdin", lines[2])
	assert.Equal(t, "oops\n", stderr.String())
}

func TestExecutor_Execute_ExitCode(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Info(gomock.Any())

	dir := t.TempDir()
	path := writeScript(t, dir, "fail", "exit 3")

	err := shell.NewExecutor(mockLogger).WithStdin(strings.NewReader("")).
		Execute(context.Background(), path, nil, dir, &bytes.Buffer{}, &bytes.Buffer{})
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrExecutableFailed.Error())

	code, ok := domain.ExitCode(err)
	require.True(t, ok)
	assert.Equal(t, 3, code)

	wrapped := zerr.Wrap(err, domain.ErrTaskFailed.Error())
	code, ok = domain.ExitCode(wrapped)
	require.True(t, ok, "the exit code survives further wrapping")
	assert.Equal(t, 3, code)
}

func TestExecutor_Execute_MissingProgram(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Info(gomock.Any())

	dir := t.TempDir()
	err := shell.NewExecutor(mockLogger).
		Execute(context.Background(), filepath.Join(dir, "missing"), nil, dir, &bytes.Buffer{}, &bytes.Buffer{})
	require.Error(t, err)

	code, ok := domain.ExitCode(err)
	require.True(t, ok)
	assert.Equal(t, -1, code)
}

func TestExitCode_PlainError(t *testing.T) {
	_, ok := domain.ExitCode(os.ErrNotExist)
	assert.False(t, ok)

	_, ok = domain.ExitCode(nil)
	assert.False(t, ok)
}
