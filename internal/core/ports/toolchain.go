package ports

import (
	"context"

	"go.trai.ch/bakery/internal/core/domain"
)

//go:generate mockgen -source=toolchain.go -destination=mocks/mock_toolchain.go -package=mocks

// Compiler compiles and links sources of one language family.
type Compiler interface {
	// Compile compiles source into object. On success it returns the diagnostics the tool
	// printed, typically warnings. On failure the error carries them.
	Compile(ctx context.Context, source, object string, settings domain.CompileSettings) (string, error)

	// Link links objects into output.
	Link(ctx context.Context, objects []string, output string, settings domain.LinkSettings) error
}

// Archiver bundles object files into a static library.
type Archiver interface {
	// Archive writes objects into the archive output.
	Archive(ctx context.Context, objects []string, output string) error
}

// Toolchain hands out the tools located for a build.
type Toolchain interface {
	// Compiler returns the compiler for lang, or an error if it was not located.
	Compiler(lang domain.Language) (Compiler, error)
	// Archiver returns the archiver, or an error if it was not located.
	Archiver() (Archiver, error)
}

// ToolchainFactory builds a Toolchain from located tool paths.
type ToolchainFactory interface {
	New(settings domain.ToolchainSettings) Toolchain
}

// ToolchainLocator resolves where the external tools live.
type ToolchainLocator interface {
	// Locate returns the tool locations, writing the default settings file on first use.
	Locate() (domain.ToolchainSettings, error)
}
