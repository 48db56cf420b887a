// Package toolchain drives the GCC-family compilers and the ar archiver.
package toolchain

import (
	"bytes"
	"context"
	"errors"
	"os/exec"
	"strings"

	"go.trai.ch/bakery/internal/core/domain"
	"go.trai.ch/bakery/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Compiler = (*GCC)(nil)

var optimizationFlags = map[domain.OptimizationLevel]string{
	domain.OptimizationZero:  "-O0",
	domain.OptimizationOne:   "-O1",
	domain.OptimizationTwo:   "-O2",
	domain.OptimizationThree: "-O3",
	domain.OptimizationFour:  "-Ofast",
	domain.OptimizationSize:  "-Os",
	domain.OptimizationDebug: "-Og",
}

// GCC invokes gcc or g++ for one language.
type GCC struct {
	path     string
	language domain.Language
}

// NewGCC creates a compiler running the executable at path for lang.
func NewGCC(path string, lang domain.Language) *GCC {
	return &GCC{path: path, language: lang}
}

// CompileArgs returns the argument vector compiling source into object.
func (g *GCC) CompileArgs(source, object string, s domain.CompileSettings) []string {
	args := make([]string, 0, len(s.Arguments.Pre)+len(s.Includes)+len(s.Arguments.Post)+10)
	args = append(args, s.Arguments.Pre...)
	args = append(args, "-c")

	if s.Distribution == domain.DynamicLibrary {
		args = append(args, "-fPIC")
	}

	if g.language == domain.LanguageCpp {
		args = append(args, "-xc++", "-std=c++"+string(s.CppStandard))
	} else {
		args = append(args, "-xc", "-std=c"+string(s.CStandard))
	}

	args = append(args, optimizationFlags[s.Optimization])

	if s.EnableAllWarnings {
		args = append(args, "-Wall", "-Wpedantic")
	}
	if s.TreatWarningsAsErrors {
		args = append(args, "-Werror")
	}

	args = append(args, source, "-o"+object)
	for _, inc := range s.Includes {
		args = append(args, "-I"+inc)
	}

	return append(args, s.Arguments.Post...)
}

// LinkArgs returns the argument vector linking objects into output.
func (g *GCC) LinkArgs(objects []string, output string, s domain.LinkSettings) []string {
	args := make([]string, 0, len(objects)+len(s.Includes)+len(s.LibrarySearchPaths)+len(s.Libraries)+2)

	if s.Distribution == domain.DynamicLibrary {
		args = append(args, "-shared")
	}

	args = append(args, objects...)
	args = append(args, "-o"+output)

	for _, inc := range s.Includes {
		args = append(args, "-I"+inc)
	}
	for _, dir := range s.LibrarySearchPaths {
		args = append(args, "-L"+dir)
	}
	for _, lib := range s.Libraries {
		args = append(args, "-l"+lib)
	}

	return args
}

// Compile compiles source into object and returns the diagnostics printed on success.
func (g *GCC) Compile(ctx context.Context, source, object string, s domain.CompileSettings) (string, error) {
	diagnostics, err := run(ctx, g.path, g.CompileArgs(source, object, s))
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, domain.ErrCompilationFailed.Error()+" "+source), "source", source)
	}
	return diagnostics, nil
}

// Link links objects into output.
func (g *GCC) Link(ctx context.Context, objects []string, output string, s domain.LinkSettings) error {
	if _, err := run(ctx, g.path, g.LinkArgs(objects, output, s)); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrLinkFailed.Error()), "output", output)
	}
	return nil
}

// run executes name with args and returns what it printed. When the tool fails, the
// printed text becomes the error so the caller sees the tool's own diagnostics.
func run(ctx context.Context, name string, args []string) (string, error) {
	var out bytes.Buffer
	cmd := exec.CommandContext(ctx, name, args...) //nolint:gosec // configured toolchain
	cmd.Stdout = &out
	cmd.Stderr = &out

	err := cmd.Run()
	diagnostics := strings.TrimSpace(out.String())
	if err == nil {
		return diagnostics, nil
	}

	exitCode := -1
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		exitCode = exitErr.ExitCode()
	}
	if diagnostics == "" {
		return "", zerr.With(err, "exit_code", exitCode)
	}
	return "", zerr.With(zerr.New(diagnostics), "exit_code", exitCode)
}
