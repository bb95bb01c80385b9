// Package manifest reads package manifests from disk.
package manifest

import (
	"context"
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/tidwall/jsonc"
	"go.trai.ch/filedep/internal/core/domain"
	"go.trai.ch/filedep/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.ManifestReader = (*Reader)(nil)

// Reader implements ports.ManifestReader for JSON manifests.
// Comments and trailing commas are tolerated.
type Reader struct{}

// NewReader creates a new Reader.
func NewReader() *Reader {
	return &Reader{}
}

// Filename returns the manifest file name used by registry.
func Filename(registry string) (string, error) {
	if registry == "" {
		registry = domain.DefaultRegistry
	}
	name, ok := registryFilenames[registry]
	if !ok {
		return "", zerr.With(zerr.Wrap(domain.ErrUnknownRegistry, "no manifest file name"), "registry", registry)
	}
	return name, nil
}

// ReadManifest reads the registry's manifest file from dir.
func (r *Reader) ReadManifest(ctx context.Context, dir, registry string) (*domain.Manifest, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	filename, err := Filename(registry)
	if err != nil {
		return nil, err
	}
	if registry == "" {
		registry = domain.DefaultRegistry
	}

	path := filepath.Join(dir, filename)

	//nolint:gosec // path is derived from a declared dependency location
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, zerr.With(zerr.Wrap(domain.ErrManifestNotFound, "no manifest file"), "path", path)
		}
		return nil, zerr.With(zerr.Wrap(domain.ErrManifestReadFailed, err.Error()), "path", path)
	}

	var file packageFile
	if err := json.Unmarshal(jsonc.ToJSON(data), &file); err != nil {
		return nil, zerr.With(zerr.Wrap(domain.ErrManifestParseFailed, err.Error()), "path", path)
	}

	return &domain.Manifest{
		Name:                 file.Name,
		Version:              file.Version,
		Description:          file.Description,
		Dependencies:         file.Dependencies,
		DevDependencies:      file.DevDependencies,
		OptionalDependencies: file.OptionalDependencies,
		Registry:             registry,
	}, nil
}
