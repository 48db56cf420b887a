package domain

import (
	"iter"
	"path/filepath"
	"regexp"
)

// projectNamePattern is the accepted shape of a project name.
var projectNamePattern = regexp.MustCompile(`^[a-zA-Z][a-zA-Z0-9]+$`)

// IsValidProjectName reports whether name can be used as a project name.
func IsValidProjectName(name string) bool {
	return projectNamePattern.MatchString(name)
}

// Project is a resolved, validated build unit.
//
// A Project owns its nested project dependencies exclusively. A project reachable through
// two dependents is resolved twice and held as two distinct values. A Project is never
// mutated after the loader returns it.
type Project struct {
	Name        string
	Description string
	Author      string
	BasePath    string

	Language     Language
	Distribution Distribution
	Optimization OptimizationLevel

	// Sources are paths relative to BasePath, in glob declaration order.
	Sources []string
	// Includes are the project's own include directories followed by the includes
	// inherited from every project dependency.
	Includes []string

	EnableAllWarnings     bool
	TreatWarningsAsErrors bool

	CStandard   CStandard
	CppStandard CppStandard

	// GCCArguments are passed through when the project is compiled as C.
	GCCArguments ToolchainArguments
	// GPPArguments are passed through when the project is compiled as C++.
	GPPArguments ToolchainArguments

	Dependencies []Dependency

	// ConfigurationDigest is the digest of the configuration file bytes at open time.
	ConfigurationDigest string
	// HasConfigurationChanged is true when the cached configuration digest is absent or
	// differs from ConfigurationDigest.
	HasConfigurationChanged bool
	// Hashes is the incremental build cache snapshot loaded at open time.
	Hashes Hashes
}

// ToolchainArguments are extra compiler arguments injected around the engine's own flags.
type ToolchainArguments struct {
	Pre  []string
	Post []string
}

// DependencyKind discriminates the Dependency variant.
type DependencyKind uint8

const (
	// DependencySystem is an opaque library name resolved by the linker.
	DependencySystem DependencyKind = iota
	// DependencyProject is a nested local project.
	DependencyProject
)

// Dependency is either a system library name or an owned nested Project.
type Dependency struct {
	Kind    DependencyKind
	Name    string
	Project *Project
}

// SystemDependency returns a dependency on the system library name.
func SystemDependency(name string) Dependency {
	return Dependency{Kind: DependencySystem, Name: name}
}

// ProjectDependency returns a dependency owning the nested project p.
func ProjectDependency(p *Project) Dependency {
	return Dependency{Kind: DependencyProject, Name: p.Name, Project: p}
}

// ProjectDependencies yields the nested projects among the direct dependencies, in
// declaration order.
func (p *Project) ProjectDependencies() iter.Seq[*Project] {
	return func(yield func(*Project) bool) {
		for _, dep := range p.Dependencies {
			if dep.Kind != DependencyProject {
				continue
			}
			if !yield(dep.Project) {
				return
			}
		}
	}
}

// Walk yields p and then every nested project of the tree in pre-order. Duplicated
// sub-trees are yielded once per occurrence.
func (p *Project) Walk() iter.Seq[*Project] {
	return func(yield func(*Project) bool) {
		p.walk(yield)
	}
}

func (p *Project) walk(yield func(*Project) bool) bool {
	if !yield(p) {
		return false
	}
	for dep := range p.ProjectDependencies() {
		if !dep.walk(yield) {
			return false
		}
	}
	return true
}

// BuildDir returns the absolute build output directory of the project.
func (p *Project) BuildDir() string {
	return filepath.Join(p.BasePath, DefaultBuildPath())
}

// CacheDir returns the absolute cache directory of the project.
func (p *Project) CacheDir() string {
	return filepath.Join(p.BasePath, DefaultCachePath())
}

// ConfigurationPath returns the absolute path of the project's configuration file.
func (p *Project) ConfigurationPath() string {
	return filepath.Join(p.BasePath, ConfigFileName)
}

// ArtifactPath returns the absolute path of the project's distribution artifact.
func (p *Project) ArtifactPath() string {
	return filepath.Join(p.BuildDir(), p.Distribution.ArtifactName(p.Name))
}

// ObjectPath returns the absolute path of the object file compiled from source.
func (p *Project) ObjectPath(source string) string {
	return filepath.Join(p.BuildDir(), ObjectName(source))
}

// Arguments returns the pass-through arguments of the compiler used for p.
func (p *Project) Arguments() ToolchainArguments {
	if p.Language == LanguageCpp {
		return p.GPPArguments
	}
	return p.GCCArguments
}
