// Package pattern builds canonical lockfile patterns for local file dependencies.
package pattern

import (
	"path/filepath"
	"slices"

	"go.trai.ch/filedep/internal/core/domain"
	"go.trai.ch/filedep/internal/core/ports"
	"go.trai.ch/zerr"
)

// Builder rewrites local path ranges into "name@file:./<path>" patterns
// relative to the lockfile root, so the same dependency yields the same
// pattern no matter which manifest declared it.
type Builder struct {
	root string
	fs   ports.FileSystem
	log  ports.Logger
}

// NewBuilder creates a Builder anchored at cfg.LockfileRoot.
func NewBuilder(cfg *domain.Config, fs ports.FileSystem, log ports.Logger) *Builder {
	return &Builder{
		root: cfg.LockfileRoot,
		fs:   fs,
		log:  log,
	}
}

// Build returns the canonical pattern for a dependency named name with range rng,
// declared by the manifest at declaringPath (the manifest file or its directory).
//
// Non-local and absolute ranges are returned as "name@rng" without touching the filesystem.
func (b *Builder) Build(name, rng, declaringPath string) (string, error) {
	if !domain.IsLocalPath(rng) || filepath.IsAbs(rng) {
		return domain.JoinPattern(name, rng), nil
	}

	b.log.Debug("building pattern", "name", name, "range", rng, "declaring_path", declaringPath)

	base := declaringPath
	info, err := b.fs.Stat(declaringPath)
	if err != nil {
		return "", err
	}
	if info.Mode().IsRegular() {
		base = filepath.Dir(declaringPath)
	}

	full := domain.ResolvePath(base, domain.StripProtocol(rng))
	rel, err := filepath.Rel(b.root, full)
	if err != nil {
		return "", zerr.With(zerr.With(zerr.Wrap(err, "failed to relativize dependency path"), "lockfile_root", b.root), "path", full)
	}
	rel = filepath.ToSlash(rel)
	if rel == "." {
		rel = ""
	}

	b.log.Debug("built pattern", "name", name, "relative_path", rel)
	return domain.JoinPattern(name, domain.FileProtocolPrefix+"./"+rel), nil
}

// BuildAll returns the sorted patterns for every dependency map of manifest.
func (b *Builder) BuildAll(manifest *domain.Manifest, manifestPath string) ([]string, error) {
	deps := manifest.AllDependencies()
	patterns := make([]string, 0, len(deps))
	for name, rng := range deps {
		p, err := b.Build(name, rng, manifestPath)
		if err != nil {
			return nil, zerr.With(err, "dependency", name)
		}
		patterns = append(patterns, p)
	}
	slices.Sort(patterns)
	return patterns, nil
}
