package builder

import (
	"context"
	"os"
	"path/filepath"

	"go.trai.ch/bakery/internal/core/domain"
	"go.trai.ch/bakery/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// SelectStale returns the sources of p that must be compiled, in declaration order.
//
// Every source is stale when the configuration changed. Otherwise a source is stale when
// it has no cached digest, its object file is missing, or its digest differs from the
// cached one.
func (b *Builder) SelectStale(ctx context.Context, p *domain.Project) ([]string, error) {
	if p.HasConfigurationChanged {
		return p.Sources, nil
	}

	isStale := make([]bool, len(p.Sources))

	g, _ := errgroup.WithContext(ctx)
	g.SetLimit(b.parallelism)
	for i, source := range p.Sources {
		g.Go(func() error {
			stale, err := b.isStale(p, source)
			isStale[i] = stale
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var stale []string
	for i, source := range p.Sources {
		if isStale[i] {
			stale = append(stale, source)
		}
	}
	return stale, nil
}

func (b *Builder) isStale(p *domain.Project, source string) (bool, error) {
	cached, ok := p.Hashes.Lookup(source)
	if !ok {
		return true, nil
	}

	if _, err := os.Stat(p.ObjectPath(source)); err != nil {
		return true, nil //nolint:nilerr // a missing object only means the source must be compiled
	}

	digest, err := b.hasher.DigestFile(filepath.Join(p.BasePath, source))
	if err != nil {
		return false, zerr.With(err, "source", source)
	}
	return digest != cached, nil
}

// compileResult is what one worker reports for one source.
type compileResult struct {
	digest string
	err    error
}

// compile compiles sources concurrently. A failing source does not stop the others; all
// failures are returned together as a *domain.CompilationError once every worker is done.
func (b *Builder) compile(
	ctx context.Context,
	p *domain.Project,
	compiler ports.Compiler,
	sources []string,
) (domain.Hashes, error) {
	settings := domain.CompileSettingsFor(p)
	results := make([]compileResult, len(sources))

	var g errgroup.Group
	g.SetLimit(b.parallelism)
	for i, source := range sources {
		g.Go(func() error {
			results[i] = b.compileOne(ctx, p, compiler, source, settings)
			return nil
		})
	}
	_ = g.Wait()

	digests := make(domain.Hashes, len(sources))
	var errs []error
	for i, res := range results {
		if res.err != nil {
			errs = append(errs, res.err)
			continue
		}
		digests[sources[i]] = res.digest
	}

	if len(errs) > 0 {
		return nil, &domain.CompilationError{Errors: errs}
	}
	return digests, nil
}

func (b *Builder) compileOne(
	ctx context.Context,
	p *domain.Project,
	compiler ports.Compiler,
	source string,
	settings domain.CompileSettings,
) (res compileResult) {
	b.logger.Info("Compiling " + source + " in " + p.Name)

	ctx, vertex := b.telemetry.Record(ctx, source)
	defer func() { vertex.Complete(res.err) }()

	path := filepath.Join(p.BasePath, source)

	diagnostics, err := compiler.Compile(ctx, path, p.ObjectPath(source), settings)
	if err != nil {
		return compileResult{err: err}
	}
	b.logDiagnostics(vertex, diagnostics)

	digest, err := b.hasher.DigestFile(path)
	if err != nil {
		return compileResult{err: zerr.With(err, "source", source)}
	}
	return compileResult{digest: digest}
}
