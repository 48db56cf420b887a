package toolchain

import (
	"go.trai.ch/bakery/internal/core/domain"
	"go.trai.ch/bakery/internal/core/ports"
	"go.trai.ch/zerr"
)

var (
	_ ports.ToolchainFactory = (*Factory)(nil)
	_ ports.Toolchain        = (*Toolchain)(nil)
)

// Factory implements ports.ToolchainFactory for the GCC family.
type Factory struct{}

// NewFactory creates a new Factory.
func NewFactory() *Factory {
	return &Factory{}
}

// New returns the toolchain backed by the tools in settings.
func (f *Factory) New(settings domain.ToolchainSettings) ports.Toolchain {
	return &Toolchain{settings: settings}
}

// Toolchain hands out gcc, g++ and ar. Missing tools are reported when asked for.
type Toolchain struct {
	settings domain.ToolchainSettings
}

// Compiler returns gcc for C and g++ for C++.
func (t *Toolchain) Compiler(lang domain.Language) (ports.Compiler, error) {
	path := t.settings.CCompiler
	if lang == domain.LanguageCpp {
		path = t.settings.CppCompiler
	}
	if path == "" {
		return nil, zerr.With(domain.ErrCompilerNotFound, "language", lang.String())
	}
	return NewGCC(path, lang), nil
}

// Archiver returns ar.
func (t *Toolchain) Archiver() (ports.Archiver, error) {
	if t.settings.Archiver == "" {
		return nil, domain.ErrArchiverNotFound
	}
	return NewAr(t.settings.Archiver), nil
}
