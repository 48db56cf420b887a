// Package config resolves bakery.toml files into project trees.
package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"go.trai.ch/bakery/internal/core/domain"
	"go.trai.ch/bakery/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.ProjectLoader = (*Loader)(nil)

// Loader implements ports.ProjectLoader.
type Loader struct {
	hasher   ports.Hasher
	store    ports.HashStore
	resolver ports.PathResolver
}

// NewLoader creates a new Loader.
func NewLoader(hasher ports.Hasher, store ports.HashStore, resolver ports.PathResolver) *Loader {
	return &Loader{
		hasher:   hasher,
		store:    store,
		resolver: resolver,
	}
}

// Open reads dir/bakery.toml and resolves the project tree rooted there.
//
// Local dependencies are opened recursively and owned by the returned project, so a
// project reachable along two paths is opened twice. Cycles are not detected.
func (l *Loader) Open(dir string) (*domain.Project, error) {
	base, err := filepath.Abs(dir)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrConfigReadFailed.Error()), "path", dir)
	}

	path := filepath.Join(base, domain.ConfigFileName)
	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, zerr.With(domain.ErrConfigNotFound, "path", base)
		}
		return nil, zerr.With(zerr.Wrap(err, domain.ErrConfigReadFailed.Error()), "path", path)
	}

	// The digest covers the raw bytes, so formatting-only edits invalidate the cache too.
	digest := l.hasher.DigestBytes(data)

	file, err := parse(data)
	if err != nil {
		return nil, zerr.With(err, "path", path)
	}

	if !domain.IsValidProjectName(file.Project.Name) {
		return nil, zerr.With(domain.ErrInvalidName, "name", file.Project.Name)
	}

	s, err := resolveSettings(file)
	if err != nil {
		return nil, zerr.With(err, "path", path)
	}

	project := &domain.Project{
		Name:                  file.Project.Name,
		Description:           file.Project.Description,
		Author:                file.Project.Author,
		BasePath:              base,
		Language:              s.language,
		Distribution:          s.distribution,
		Optimization:          s.optimization,
		EnableAllWarnings:     file.Project.EnableAllWarnings,
		TreatWarningsAsErrors: file.Project.TreatAllWarningsAsErrors,
		CStandard:             s.cStandard,
		CppStandard:           s.cppStandard,
		GCCArguments:          s.gcc,
		GPPArguments:          s.gpp,
		ConfigurationDigest:   digest,
	}

	if project.Dependencies, err = l.resolveDependencies(base, file.Project.Dependencies); err != nil {
		return nil, zerr.With(err, "project", project.Name)
	}

	for dep := range project.ProjectDependencies() {
		if !dep.Distribution.IsLibrary() {
			return nil, zerr.With(zerr.With(domain.ErrDependencyIsNotALibrary, "dependency", dep.Name), "project", project.Name)
		}
	}

	if project.Sources, err = l.resolver.ResolveSources(base, file.Project.Sources); err != nil {
		return nil, zerr.With(err, "project", project.Name)
	}

	if project.Includes, err = l.resolver.ResolveIncludes(base, file.Project.Includes); err != nil {
		return nil, zerr.With(err, "project", project.Name)
	}
	for dep := range project.ProjectDependencies() {
		project.Includes = append(project.Includes, dep.Includes...)
	}

	if project.Hashes, err = l.store.Load(base); err != nil {
		return nil, zerr.With(err, "project", project.Name)
	}
	cached, ok := project.Hashes.Lookup(domain.ConfigFileName)
	project.HasConfigurationChanged = !ok || cached != digest

	return project, nil
}

func (l *Loader) resolveDependencies(base string, dtos []DependencyDTO) ([]domain.Dependency, error) {
	deps := make([]domain.Dependency, 0, len(dtos))

	for _, dto := range dtos {
		switch {
		case dto.Path != "":
			nested, err := l.Open(filepath.Join(base, dto.Path))
			if err != nil {
				return nil, zerr.With(err, "dependency", dto.Path)
			}
			deps = append(deps, domain.ProjectDependency(nested))
		case dto.Name != "":
			deps = append(deps, domain.SystemDependency(dto.Name))
		default:
			return nil, domain.ErrInvalidDependency
		}
	}

	return deps, nil
}
