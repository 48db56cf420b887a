// Package builder compiles, links and archives project trees.
package builder

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"go.trai.ch/bakery/internal/core/domain"
	"go.trai.ch/bakery/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.ProjectBuilder = (*Builder)(nil)

// Builder builds a project after its dependencies.
//
// Only the compilation of one project's stale sources runs concurrently. Dependencies
// are built one after the other, and a shared dependency is built once per dependent.
type Builder struct {
	store     ports.HashStore
	hasher    ports.Hasher
	copier    ports.ArtifactCopier
	logger    ports.Logger
	telemetry ports.Telemetry

	parallelism int
}

// NewBuilder creates a new Builder compiling up to runtime.NumCPU() sources at a time.
func NewBuilder(
	store ports.HashStore,
	hasher ports.Hasher,
	copier ports.ArtifactCopier,
	logger ports.Logger,
	telemetry ports.Telemetry,
) *Builder {
	return &Builder{
		store:       store,
		hasher:      hasher,
		copier:      copier,
		logger:      logger,
		telemetry:   telemetry,
		parallelism: runtime.NumCPU(),
	}
}

// Build builds p and every project it depends on.
//
// The tools every project of the tree needs are checked before anything is compiled.
func (b *Builder) Build(ctx context.Context, p *domain.Project, tc ports.Toolchain) error {
	if err := RequireTools(p, tc); err != nil {
		return err
	}
	return b.build(ctx, p, tc)
}

// RequireTools fails when a compiler or the archiver needed by the tree of p is missing.
func RequireTools(p *domain.Project, tc ports.Toolchain) error {
	for project := range p.Walk() {
		if _, err := tc.Compiler(project.Language); err != nil {
			return zerr.With(err, "project", project.Name)
		}
		if project.Distribution == domain.StaticLibrary {
			if _, err := tc.Archiver(); err != nil {
				return zerr.With(err, "project", project.Name)
			}
		}
	}
	return nil
}

func (b *Builder) build(ctx context.Context, p *domain.Project, tc ports.Toolchain) (err error) {
	ctx, vertex := b.telemetry.Record(ctx, p.Name)
	defer func() { vertex.Complete(err) }()

	for dep := range p.ProjectDependencies() {
		if err := b.build(ctx, dep, tc); err != nil {
			return zerr.With(zerr.Wrap(err, domain.ErrFailedToBuildDependency.Error()), "dependency", dep.Name)
		}
	}

	stale, err := b.SelectStale(ctx, p)
	if err != nil {
		return err
	}
	if len(stale) == 0 {
		b.logger.Info("Nothing to build in " + p.Name)
		vertex.Cached()
		return nil
	}

	if err := createDirectories(p); err != nil {
		return err
	}

	compiler, err := tc.Compiler(p.Language)
	if err != nil {
		return err
	}

	digests, err := b.compile(ctx, p, compiler, stale)
	if err != nil {
		return err
	}

	// The cache is rewritten from this build's digests only.
	digests[domain.ConfigFileName] = p.ConfigurationDigest
	if err := b.store.Save(p.BasePath, digests); err != nil {
		return zerr.With(err, "project", p.Name)
	}

	if err := b.produce(ctx, p, compiler, tc); err != nil {
		return err
	}

	return b.propagate(p)
}

func createDirectories(p *domain.Project) error {
	for _, dir := range []string{p.BuildDir(), p.CacheDir()} {
		if err := os.MkdirAll(dir, domain.DirPerm); err != nil {
			return zerr.With(zerr.Wrap(err, domain.ErrCreateDirectoryFailed.Error()), "path", dir)
		}
	}
	return nil
}

// produce links or archives the objects of p into its artifact.
func (b *Builder) produce(ctx context.Context, p *domain.Project, compiler ports.Compiler, tc ports.Toolchain) error {
	objects := Objects(p)
	output := p.ArtifactPath()

	if p.Distribution == domain.StaticLibrary {
		archiver, err := tc.Archiver()
		if err != nil {
			return err
		}
		b.logger.Info("Archiving " + p.Name)
		return archiver.Archive(ctx, objects, output)
	}

	b.logger.Info("Linking " + p.Name)
	return compiler.Link(ctx, objects, output, LinkSettingsFor(p))
}

// Objects returns the object files of every source of p followed by the archives of its
// direct static library dependencies.
func Objects(p *domain.Project) []string {
	objects := make([]string, 0, len(p.Sources)+len(p.Dependencies))
	for _, source := range p.Sources {
		objects = append(objects, p.ObjectPath(source))
	}
	for dep := range p.ProjectDependencies() {
		if dep.Distribution == domain.StaticLibrary {
			objects = append(objects, dep.ArtifactPath())
		}
	}
	return objects
}

// LinkSettingsFor returns the link settings of p. System libraries and dynamic library
// dependencies keep their declaration order, and every project dependency's build
// directory is a search path.
func LinkSettingsFor(p *domain.Project) domain.LinkSettings {
	settings := domain.LinkSettings{
		Distribution: p.Distribution,
		Includes:     p.Includes,
	}

	for _, dep := range p.Dependencies {
		switch {
		case dep.Kind == domain.DependencySystem:
			settings.Libraries = append(settings.Libraries, dep.Name)
		case dep.Project.Distribution == domain.DynamicLibrary:
			settings.Libraries = append(settings.Libraries, dep.Project.Name)
		}
	}
	for dep := range p.ProjectDependencies() {
		settings.LibrarySearchPaths = append(settings.LibrarySearchPaths, dep.BuildDir())
	}

	return settings
}

// DynamicArtifacts returns the dynamic library artifacts of the tree of p: the one of p
// itself first, then those of its dependencies in declaration order.
func DynamicArtifacts(p *domain.Project) []string {
	var artifacts []string
	if p.Distribution == domain.DynamicLibrary {
		artifacts = append(artifacts, p.ArtifactPath())
	}
	for dep := range p.ProjectDependencies() {
		artifacts = append(artifacts, DynamicArtifacts(dep)...)
	}
	return artifacts
}

// propagate copies the dynamic libraries of the tree into the build directory of p.
func (b *Builder) propagate(p *domain.Project) error {
	for i, artifact := range DynamicArtifacts(p) {
		// The artifact of p already lives in its build directory.
		if i == 0 && p.Distribution == domain.DynamicLibrary {
			continue
		}

		dst := filepath.Join(p.BuildDir(), filepath.Base(artifact))
		if err := b.copier.Copy(artifact, dst); err != nil {
			return zerr.With(err, "artifact", artifact)
		}
	}
	return nil
}

func (b *Builder) logDiagnostics(vertex ports.Vertex, diagnostics string) {
	if diagnostics == "" {
		return
	}
	_, _ = fmt.Fprintln(vertex.Stderr(), diagnostics)
	b.logger.Warn(diagnostics)
}
