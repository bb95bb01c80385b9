// Package fs provides the filesystem probe used by the resolvers.
package fs

import (
	"errors"
	iofs "io/fs"
	"os"
	"path/filepath"

	"go.trai.ch/filedep/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.FileSystem = (*OSFileSystem)(nil)

// OSFileSystem implements ports.FileSystem using the os package.
type OSFileSystem struct{}

// NewOSFileSystem creates a new OSFileSystem.
func NewOSFileSystem() *OSFileSystem {
	return &OSFileSystem{}
}

// Exists reports whether path exists. Only a missing path yields (false, nil).
func (f *OSFileSystem) Exists(path string) (bool, error) {
	path = filepath.Clean(path)
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, iofs.ErrNotExist) {
			return false, nil
		}
		return false, zerr.With(zerr.Wrap(err, "failed to stat path"), "path", path)
	}
	return true, nil
}

// Stat returns file information for path.
func (f *OSFileSystem) Stat(path string) (iofs.FileInfo, error) {
	path = filepath.Clean(path)
	info, err := os.Stat(path)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to stat path"), "path", path)
	}
	return info, nil
}
