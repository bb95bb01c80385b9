package ports

import (
	"context"

	"go.trai.ch/filedep/internal/core/domain"
)

// ManifestReader reads package manifests from disk.
//
//go:generate go run go.uber.org/mock/mockgen -source=manifest_reader.go -destination=mocks/mock_manifest_reader.go -package=mocks
type ManifestReader interface {
	// ReadManifest reads the manifest of the given registry from dir.
	//
	// It returns an error matching domain.ErrManifestNotFound when dir holds no
	// manifest file. Every other failure is a different error.
	ReadManifest(ctx context.Context, dir, registry string) (*domain.Manifest, error)
}
