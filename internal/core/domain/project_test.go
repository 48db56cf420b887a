package domain_test

import (
	"path/filepath"
	"runtime"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/bakery/internal/core/domain"
)

func TestIsValidProjectName(t *testing.T) {
	tests := []struct {
		name  string
		valid bool
	}{
		{"app", true},
		{"liba", true},
		{"Lib2", true},
		{"a", false},
		{"2lib", false},
		{"my-lib", false},
		{"my_lib", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.valid, domain.IsValidProjectName(tt.name))
		})
	}
}

func TestObjectName(t *testing.T) {
	assert.Equal(t, "main.o", domain.ObjectName("main.c"))
	assert.Equal(t, "util.o", domain.ObjectName(filepath.Join("src", "util.cpp")))
	assert.Equal(t, "noext.o", domain.ObjectName("noext"))
}

func TestDistribution_ArtifactName(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("unix artifact names")
	}

	assert.Equal(t, "app", domain.Executable.ArtifactName("app"))
	assert.Equal(t, "liba.a", domain.StaticLibrary.ArtifactName("liba"))
	assert.Equal(t, "libso.so", domain.DynamicLibrary.ArtifactName("libso"))
}

func TestDistribution_IsLibrary(t *testing.T) {
	assert.False(t, domain.Executable.IsLibrary())
	assert.True(t, domain.StaticLibrary.IsLibrary())
	assert.True(t, domain.DynamicLibrary.IsLibrary())
}

func TestProject_Paths(t *testing.T) {
	p := &domain.Project{Name: "liba", BasePath: "/work/liba", Distribution: domain.StaticLibrary}

	assert.Equal(t, filepath.Join("/work/liba", ".bakery", "build"), p.BuildDir())
	assert.Equal(t, filepath.Join("/work/liba", ".bakery", "cache"), p.CacheDir())
	assert.Equal(t, filepath.Join("/work/liba", "bakery.toml"), p.ConfigurationPath())
	assert.Equal(t, filepath.Join(p.BuildDir(), "a.o"), p.ObjectPath(filepath.Join("src", "a.c")))
}

func TestProject_Walk(t *testing.T) {
	shared := func() *domain.Project {
		return &domain.Project{Name: "common", Distribution: domain.StaticLibrary}
	}
	left := &domain.Project{Name: "left", Distribution: domain.StaticLibrary,
		Dependencies: []domain.Dependency{domain.ProjectDependency(shared())}}
	right := &domain.Project{Name: "right", Distribution: domain.DynamicLibrary,
		Dependencies: []domain.Dependency{domain.SystemDependency("m"), domain.ProjectDependency(shared())}}
	root := &domain.Project{Name: "app", Dependencies: []domain.Dependency{
		domain.ProjectDependency(left),
		domain.ProjectDependency(right),
	}}

	var names []string
	for p := range root.Walk() {
		names = append(names, p.Name)
	}

	// The shared dependency is held once per path.
	assert.Equal(t, []string{"app", "left", "common", "right", "common"}, names)

	direct := slices.Collect(right.ProjectDependencies())
	assert.Len(t, direct, 1)
	assert.Equal(t, "common", direct[0].Name)
}

func TestProject_Arguments(t *testing.T) {
	p := &domain.Project{
		Language:     domain.LanguageCpp,
		GCCArguments: domain.ToolchainArguments{Pre: []string{"-g"}},
		GPPArguments: domain.ToolchainArguments{Post: []string{"-pthread"}},
	}
	assert.Equal(t, []string{"-pthread"}, p.Arguments().Post)

	p.Language = domain.LanguageC
	assert.Equal(t, []string{"-g"}, p.Arguments().Pre)
}

func TestParseEnumerations(t *testing.T) {
	lang, ok := domain.ParseLanguage("c++")
	assert.True(t, ok)
	assert.Equal(t, domain.LanguageCpp, lang)

	_, ok = domain.ParseLanguage("rust")
	assert.False(t, ok)

	dist, ok := domain.ParseDistribution("dynamicLibrary")
	assert.True(t, ok)
	assert.Equal(t, domain.DynamicLibrary, dist)

	opt, ok := domain.ParseOptimizationLevel("Size")
	assert.True(t, ok)
	assert.Equal(t, domain.OptimizationSize, opt)

	opt, ok = domain.ParseOptimizationLevel("4")
	assert.True(t, ok)
	assert.Equal(t, domain.OptimizationFour, opt)

	_, ok = domain.ParseOptimizationLevel("5")
	assert.False(t, ok)

	cstd, ok := domain.ParseCStandard("99")
	assert.True(t, ok)
	assert.Equal(t, domain.C99, cstd)

	_, ok = domain.ParseCppStandard("c++17")
	assert.False(t, ok)
}

func TestHashes_Lookup(t *testing.T) {
	hashes := domain.Hashes{"a.c": "1"}

	digest, ok := hashes.Lookup("a.c")
	assert.True(t, ok)
	assert.Equal(t, "1", digest)

	_, ok = hashes.Lookup("b.c")
	assert.False(t, ok)
}
