package ports

import (
	"context"
	"io"
)

// Executor runs a produced executable.
//
//go:generate mockgen -source=executor.go -destination=mocks/mock_executor.go -package=mocks
type Executor interface {
	// Execute runs path with args in dir and waits for it to exit.
	//
	// A non-zero exit is returned as an error carrying the "exit_code" metadata.
	Execute(ctx context.Context, path string, args []string, dir string, stdout, stderr io.Writer) error
}
