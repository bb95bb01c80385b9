// Package app implements the application layer for filedep.
package app

import (
	"context"
	"fmt"
	"path/filepath"

	"go.trai.ch/filedep/internal/core/domain"
	"go.trai.ch/filedep/internal/core/ports"
	"go.trai.ch/filedep/internal/engine/pattern"
	"go.trai.ch/filedep/internal/engine/resolver"
	"go.trai.ch/zerr"
)

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	fs           ports.FileSystem
	reader       ports.ManifestReader
	tokens       ports.ChangeTokenSource
	watcher      ports.Watcher
	logger       ports.Logger
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	fs ports.FileSystem,
	reader ports.ManifestReader,
	tokens ports.ChangeTokenSource,
	watcher ports.Watcher,
	logger ports.Logger,
) *App {
	return &App{
		configLoader: loader,
		fs:           fs,
		reader:       reader,
		tokens:       tokens,
		watcher:      watcher,
		logger:       logger,
	}
}

// Options configures a single invocation.
type Options struct {
	// Cwd is the directory relative paths and lockfile discovery start from.
	// Empty means the process working directory.
	Cwd string

	// Overrides are settings keyed by the domain.Key* constants.
	Overrides map[string]any
}

func (o Options) cwd() string {
	if o.Cwd == "" {
		return "."
	}
	return o.Cwd
}

// Config returns the effective configuration for opts.
func (a *App) Config(opts Options) (*domain.Config, error) {
	cfg, err := a.configLoader.Load(opts.cwd(), opts.Overrides)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to load configuration")
	}
	return cfg, nil
}

// Pattern returns the canonical pattern of a dependency declared in dir.
func (a *App) Pattern(opts Options, name, rng, dir string) (string, error) {
	cfg, err := a.Config(opts)
	if err != nil {
		return "", err
	}

	declaring, err := a.absolute(opts, dir)
	if err != nil {
		return "", err
	}

	return pattern.NewBuilder(cfg, a.fs, a.logger).Build(name, rng, declaring)
}

// Patterns reads the manifest in manifestDir and returns the canonical
// patterns of all of its dependencies, sorted.
func (a *App) Patterns(ctx context.Context, opts Options, manifestDir string) ([]string, error) {
	cfg, err := a.Config(opts)
	if err != nil {
		return nil, err
	}

	dir, err := a.absolute(opts, manifestDir)
	if err != nil {
		return nil, err
	}

	manifest, err := a.reader.ReadManifest(ctx, dir, cfg.Registry)
	if err != nil {
		return nil, err
	}

	return pattern.NewBuilder(cfg, a.fs, a.logger).BuildAll(manifest, dir)
}

// WatchPatterns calls emit with the patterns of the manifest in manifestDir,
// then again every time the directory changes, until ctx is done.
// Failures after the first run are logged and watching continues, since
// editors often leave a manifest briefly unparsable while saving.
func (a *App) WatchPatterns(ctx context.Context, opts Options, manifestDir string, emit func([]string) error) error {
	patterns, err := a.Patterns(ctx, opts, manifestDir)
	if err != nil {
		return err
	}
	if err := emit(patterns); err != nil {
		return err
	}

	dir, err := a.absolute(opts, manifestDir)
	if err != nil {
		return err
	}
	if err := a.watcher.Start(ctx, dir); err != nil {
		return err
	}
	defer func() {
		if err := a.watcher.Stop(); err != nil {
			a.logger.Error(err)
		}
	}()

	for paths := range a.watcher.Changes() {
		a.logger.Debug("manifest directory changed", "paths", paths)

		patterns, err := a.Patterns(ctx, opts, manifestDir)
		if err != nil {
			a.logger.Error(err)
			continue
		}
		if err := emit(patterns); err != nil {
			return err
		}
	}
	return nil
}

// ResolveChain resolves the last pattern of chain. chain lists the requests
// from the top-level dependency down to the one to resolve, as "name@range".
func (a *App) ResolveChain(ctx context.Context, opts Options, chain []string) (*domain.Manifest, error) {
	cfg, err := a.Config(opts)
	if err != nil {
		return nil, err
	}

	req, err := buildRequest(cfg, chain)
	if err != nil {
		return nil, err
	}

	return a.resolver(cfg).New(req.Node, req.Fragment).Resolve(ctx)
}

// ResolveChains resolves many chains concurrently. Results keep the order of chains.
func (a *App) ResolveChains(ctx context.Context, opts Options, chains [][]string) ([]*domain.Manifest, error) {
	cfg, err := a.Config(opts)
	if err != nil {
		return nil, err
	}

	reqs := make([]resolver.Request, len(chains))
	for i, chain := range chains {
		req, err := buildRequest(cfg, chain)
		if err != nil {
			return nil, err
		}
		reqs[i] = req
	}

	return a.resolver(cfg).ResolveAll(ctx, reqs)
}

func (a *App) resolver(cfg *domain.Config) *resolver.Resolver {
	return resolver.NewResolver(cfg, a.fs, a.reader, a.tokens, a.logger)
}

func (a *App) absolute(opts Options, dir string) (string, error) {
	if dir == "" {
		dir = "."
	}
	if !filepath.IsAbs(dir) {
		dir = filepath.Join(opts.cwd(), dir)
	}
	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, "failed to resolve directory"), "path", dir)
	}
	return abs, nil
}

// buildRequest turns a root-to-leaf list of patterns into a request tree and
// returns its leaf. Each node is requested under the name of its parent.
func buildRequest(cfg *domain.Config, chain []string) (resolver.Request, error) {
	if len(chain) == 0 {
		return resolver.Request{}, zerr.Wrap(domain.ErrEmptyChain, "nothing to resolve")
	}

	for _, p := range chain {
		if domain.PatternName(p) == "" || domain.PatternRange(p) == "" {
			return resolver.Request{}, zerr.With(zerr.Wrap(domain.ErrInvalidPattern, "malformed request"), "pattern", p)
		}
	}

	node := domain.NewRootRequest(chain[0])
	node.Registry = cfg.Registry
	for i := 1; i < len(chain); i++ {
		node = node.Child(domain.PatternName(chain[i-1]), chain[i])
	}

	fragment := domain.PatternRange(node.Pattern)
	if !domain.IsLocalPath(fragment) {
		return resolver.Request{}, zerr.With(
			zerr.Wrap(domain.ErrInvalidPattern, fmt.Sprintf("range %q is not a local file dependency", fragment)),
			"pattern", node.Pattern,
		)
	}

	return resolver.Request{Node: node, Fragment: fragment}, nil
}
