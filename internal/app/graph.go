package app

import (
	"context"
	"encoding/json"
	"io"

	"go.trai.ch/bakery/internal/core/domain"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Graph output formats.
const (
	FormatYAML = "yaml"
	FormatJSON = "json"
)

// graphNode is the exported shape of one project of the tree.
type graphNode struct {
	Name         string            `json:"name"                   yaml:"name"`
	Path         string            `json:"path"                   yaml:"path"`
	Language     string            `json:"language"               yaml:"language"`
	Distribution string            `json:"distribution"           yaml:"distribution"`
	Optimization string            `json:"optimization"           yaml:"optimization"`
	Sources      []string          `json:"sources,omitempty"      yaml:"sources,omitempty"`
	Includes     []string          `json:"includes,omitempty"     yaml:"includes,omitempty"`
	Dependencies []graphDependency `json:"dependencies,omitempty" yaml:"dependencies,omitempty"`
}

// graphDependency holds exactly one of System and Project.
type graphDependency struct {
	System  string     `json:"system,omitempty"  yaml:"system,omitempty"`
	Project *graphNode `json:"project,omitempty" yaml:"project,omitempty"`
}

func newGraphNode(p *domain.Project) *graphNode {
	node := &graphNode{
		Name:         p.Name,
		Path:         p.BasePath,
		Language:     p.Language.String(),
		Distribution: p.Distribution.String(),
		Optimization: p.Optimization.String(),
		Sources:      p.Sources,
		Includes:     p.Includes,
	}
	for _, dep := range p.Dependencies {
		if dep.Kind == domain.DependencyProject {
			node.Dependencies = append(node.Dependencies, graphDependency{Project: newGraphNode(dep.Project)})
			continue
		}
		node.Dependencies = append(node.Dependencies, graphDependency{System: dep.Name})
	}
	return node
}

// Graph prints the resolved project tree rooted at dir in format.
func (a *App) Graph(_ context.Context, dir, format string) error {
	if format != FormatYAML && format != FormatJSON {
		return zerr.With(domain.ErrUnsupportedGraphFormat, "format", format)
	}

	project, err := a.loader.Open(dir)
	if err != nil {
		return err
	}

	return writeGraph(a.stdout, newGraphNode(project), format)
}

func writeGraph(w io.Writer, node *graphNode, format string) error {
	if format == FormatJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(node)
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(node); err != nil {
		return err
	}
	return enc.Close()
}
