// Package ports defines the core interfaces for the application.
package ports

import "io/fs"

// FileSystem is the filesystem probe consumed by the resolvers.
//
//go:generate go run go.uber.org/mock/mockgen -source=filesystem.go -destination=mocks/mock_filesystem.go -package=mocks
type FileSystem interface {
	// Exists reports whether path exists.
	// A missing path is (false, nil); any other failure is returned unchanged.
	Exists(path string) (bool, error)

	// Stat returns file information for path.
	Stat(path string) (fs.FileInfo, error)
}
