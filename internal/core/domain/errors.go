package domain

import (
	"errors"
	"strings"

	"go.trai.ch/zerr"
)

var (
	// ErrConfigNotFound is returned when a project directory has no configuration file.
	ErrConfigNotFound = zerr.New("could not find " + ConfigFileName)

	// ErrConfigReadFailed is returned when the configuration file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read configuration file")

	// ErrConfigSyntax is returned when the configuration file cannot be parsed.
	ErrConfigSyntax = zerr.New("syntax error in configuration file")

	// ErrInvalidName is returned when a project name does not match [a-zA-Z][a-zA-Z0-9]+.
	ErrInvalidName = zerr.New("project name must start with a letter and contain only letters and digits")

	// ErrInvalidDependency is returned when a dependency entry has neither a path nor a name.
	ErrInvalidDependency = zerr.New("dependency must declare either a path or a name")

	// ErrDependencyIsNotALibrary is returned when a project depends on an executable project.
	ErrDependencyIsNotALibrary = zerr.New("dependency must be a library")

	// ErrIncorrectWildcard is returned when a source pattern cannot be compiled.
	ErrIncorrectWildcard = zerr.New("incorrect wildcard")

	// ErrIncorrectSource is returned when a matched source is not a relative, regular, non-symlink file.
	ErrIncorrectSource = zerr.New("incorrect source")

	// ErrIncorrectInclude is returned when an include is not a relative, non-symlink directory.
	ErrIncorrectInclude = zerr.New("incorrect include")

	// ErrHashesReadFailed is returned when the incremental build cache cannot be read.
	ErrHashesReadFailed = zerr.New("failed to read hashes")

	// ErrHashesUnmarshalFailed is returned when the incremental build cache is malformed.
	ErrHashesUnmarshalFailed = zerr.New("failed to unmarshal hashes")

	// ErrHashesWriteFailed is returned when the incremental build cache cannot be saved.
	ErrHashesWriteFailed = zerr.New("failed to save hashes")

	// ErrFileOpenFailed is returned when a file cannot be opened.
	ErrFileOpenFailed = zerr.New("failed to open file")

	// ErrFileDigestFailed is returned when hashing a file fails.
	ErrFileDigestFailed = zerr.New("failed to digest file content")

	// ErrCreateDirectoryFailed is returned when the build or cache directory cannot be created.
	ErrCreateDirectoryFailed = zerr.New("failed to create bakery directories")

	// ErrCompilerNotFound is returned when a required compiler cannot be located.
	ErrCompilerNotFound = zerr.New("compiler not found")

	// ErrArchiverNotFound is returned when the archiver cannot be located.
	ErrArchiverNotFound = zerr.New("archiver not found")

	// ErrToolchainConfigFailed is returned when the toolchain settings cannot be loaded or written.
	ErrToolchainConfigFailed = zerr.New("failed to load toolchain settings")

	// ErrCompilationFailed is returned for a single source that failed to compile.
	ErrCompilationFailed = zerr.New("failed to compile")

	// ErrLinkFailed is returned when linking the project artifact fails.
	ErrLinkFailed = zerr.New("linkage error")

	// ErrArchiveFailed is returned when archiving the project artifact fails.
	ErrArchiveFailed = zerr.New("archival error")

	// ErrArtifactCopyFailed is returned when a propagated artifact cannot be copied.
	ErrArtifactCopyFailed = zerr.New("failed to copy artifact to build directory")

	// ErrFailedToBuildDependency is returned when a dependency of the project fails to build.
	ErrFailedToBuildDependency = zerr.New("failed to build dependency")

	// ErrCannotRunNonExecutable is returned when run is requested for a library project.
	ErrCannotRunNonExecutable = zerr.New("cannot run a project that is not an executable")

	// ErrExecutableFailed is returned when the produced executable exits unsuccessfully.
	ErrExecutableFailed = zerr.New("executable failed")

	// ErrTaskNotFound is returned when a requested task is not registered.
	ErrTaskNotFound = zerr.New("task not found")

	// ErrTaskFailed is returned when a scheduled task fails.
	ErrTaskFailed = zerr.New("task execution failed")

	// ErrCleanFailed is returned when build outputs cannot be removed.
	ErrCleanFailed = zerr.New("failed to clean project")

	// ErrWatchFailed is returned when the watcher cannot be started.
	ErrWatchFailed = zerr.New("failed to watch project")

	// ErrUnsupportedGraphFormat is returned when the project graph is requested in an unknown format.
	ErrUnsupportedGraphFormat = zerr.New("unsupported graph format")
)

// CompilationError aggregates the per-source failures of one compile batch.
type CompilationError struct {
	Errors []error
}

// Error lists every failure, one per line.
func (e *CompilationError) Error() string {
	lines := make([]string, 0, len(e.Errors)+1)
	lines = append(lines, "compilation error")
	for _, err := range e.Errors {
		lines = append(lines, err.Error())
	}
	return strings.Join(lines, "\n")
}

// Unwrap exposes the individual failures to errors.Is and errors.As.
func (e *CompilationError) Unwrap() []error {
	return e.Errors
}

// ExitCode returns the "exit_code" attached to err or to one of the errors it wraps.
func ExitCode(err error) (int, bool) {
	for err != nil {
		var z *zerr.Error
		if !errors.As(err, &z) {
			return 0, false
		}
		if code, ok := z.Metadata()["exit_code"].(int); ok {
			return code, true
		}
		err = z.Unwrap()
	}
	return 0, false
}
