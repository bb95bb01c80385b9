// Package resolver resolves local file dependencies into package manifests.
package resolver

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"runtime"

	"go.trai.ch/filedep/internal/core/domain"
	"go.trai.ch/filedep/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// Resolver holds the collaborators shared by every file dependency resolution.
type Resolver struct {
	cfg    *domain.Config
	fs     ports.FileSystem
	reader ports.ManifestReader
	tokens ports.ChangeTokenSource
	log    ports.Logger
}

// NewResolver creates a new Resolver.
func NewResolver(
	cfg *domain.Config,
	fs ports.FileSystem,
	reader ports.ManifestReader,
	tokens ports.ChangeTokenSource,
	log ports.Logger,
) *Resolver {
	return &Resolver{
		cfg:    cfg,
		fs:     fs,
		reader: reader,
		tokens: tokens,
		log:    log,
	}
}

// FileResolver resolves one file dependency. It is created per request and
// must not be reused for another one.
type FileResolver struct {
	*Resolver

	req *domain.PackageRequest
	loc string
}

// New creates a FileResolver for req. fragment is the declared range, with or
// without the "file:" protocol.
func (r *Resolver) New(req *domain.PackageRequest, fragment string) *FileResolver {
	return &FileResolver{
		Resolver: r,
		req:      req,
		loc:      domain.StripProtocol(fragment),
	}
}

// Resolve returns the manifest of the dependency.
//
// In link mode no filesystem access happens. In copy mode a missing location
// is an error matching domain.ErrDependencyNotFound, while a missing manifest
// file inside an existing location yields a default manifest.
func (f *FileResolver) Resolve(ctx context.Context) (*domain.Manifest, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	loc, err := Location(f.cfg.LockfileRoot, f.req, f.loc)
	if err != nil {
		return nil, err
	}

	f.log.Debug("resolving file dependency",
		"pattern", f.req.Pattern,
		"location", loc,
		"link", f.cfg.LinkFileDependencies,
	)

	if f.cfg.LinkFileDependencies {
		return linkManifest(loc), nil
	}

	exists, err := f.fs.Exists(loc)
	if err != nil {
		return nil, err
	}
	if !exists {
		name := f.req.Name()
		return nil, zerr.With(zerr.With(
			zerr.Wrap(domain.ErrDependencyNotFound, fmt.Sprintf("package %q refers to a non-existing file %q", name, loc)),
			"dependency", name),
			"path", loc,
		)
	}

	registry := f.req.RegistryOrDefault()
	manifest, err := f.reader.ReadManifest(ctx, loc, registry)
	if err != nil {
		if !errors.Is(err, domain.ErrManifestNotFound) {
			return nil, err
		}
		f.log.Debug("no manifest found, using default", "location", loc)
		manifest = defaultManifest(loc)
	}

	token, err := f.tokens.Next()
	if err != nil {
		return nil, err
	}

	if manifest.Registry == "" {
		manifest.Registry = registry
	}
	manifest.Remote = &domain.RemoteDescriptor{
		Kind:      domain.RemoteCopy,
		Registry:  manifest.Registry,
		Hash:      token,
		Reference: loc,
	}
	manifest.UID = manifest.Version

	return manifest, nil
}

// Request pairs a request node with the range it declares.
type Request struct {
	Node     *domain.PackageRequest
	Fragment string
}

// ResolveAll resolves independent requests concurrently. Results keep the order
// of reqs. The first failure cancels the remaining resolutions.
func (r *Resolver) ResolveAll(ctx context.Context, reqs []Request) ([]*domain.Manifest, error) {
	results := make([]*domain.Manifest, len(reqs))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(r.concurrency())

	for i, req := range reqs {
		g.Go(func() error {
			manifest, err := r.New(req.Node, req.Fragment).Resolve(ctx)
			if err != nil {
				return zerr.With(err, "pattern", req.Node.Pattern)
			}
			results[i] = manifest
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func (r *Resolver) concurrency() int {
	if r.cfg.Concurrency > 0 {
		return r.cfg.Concurrency
	}
	return runtime.NumCPU()
}

func linkManifest(loc string) *domain.Manifest {
	return &domain.Manifest{
		Name:     "",
		Version:  domain.DefaultVersion,
		UID:      domain.DefaultVersion,
		Registry: domain.DefaultRegistry,
		Remote: &domain.RemoteDescriptor{
			Kind:      domain.RemoteLink,
			Registry:  domain.DefaultRegistry,
			Reference: loc,
		},
	}
}

func defaultManifest(loc string) *domain.Manifest {
	return &domain.Manifest{
		Name:     filepath.Base(loc),
		Version:  domain.DefaultVersion,
		UID:      domain.DefaultVersion,
		Registry: domain.DefaultRegistry,
	}
}
