package domain

import (
	"errors"

	"go.trai.ch/zerr"
)

var (
	// ErrMalformedRequestTree is returned when a request has a parent but no label naming it.
	ErrMalformedRequestTree = zerr.New("parent request is present, but parent names are empty")

	// ErrDependencyNotFound is returned when a file dependency points at a location that does not exist.
	ErrDependencyNotFound = zerr.New("file dependency does not exist")

	// ErrManifestNotFound is returned by manifest readers when a directory holds no manifest file.
	ErrManifestNotFound = zerr.New("manifest not found")

	// ErrManifestReadFailed is returned when a manifest file exists but cannot be read.
	ErrManifestReadFailed = zerr.New("failed to read manifest")

	// ErrManifestParseFailed is returned when a manifest file cannot be parsed.
	ErrManifestParseFailed = zerr.New("failed to parse manifest")

	// ErrInvalidPattern is returned when a pattern has no name or no range.
	ErrInvalidPattern = zerr.New("invalid pattern, expected name@range")

	// ErrRelativeLockfileRoot is returned when the configured lockfile root is not absolute.
	ErrRelativeLockfileRoot = zerr.New("lockfile root must be an absolute path")

	// ErrUnknownRegistry is returned when no manifest file name is known for a registry.
	ErrUnknownRegistry = zerr.New("unknown registry")

	// ErrConfigReadFailed is returned when the settings file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the settings file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrEmptyChain is returned when a request chain without any pattern is resolved.
	ErrEmptyChain = zerr.New("request chain is empty")
)

// ErrorKind tags a resolution failure with its class.
type ErrorKind int

const (
	// KindNone means no error.
	KindNone ErrorKind = iota
	// KindMalformedTree is a request tree invariant violation. It signals a caller bug.
	KindMalformedTree
	// KindNotFound is a missing file dependency location.
	KindNotFound
	// KindManifestAbsent is a missing manifest file inside an existing location.
	KindManifestAbsent
	// KindIO is any other failure, propagated unchanged.
	KindIO
)

// String returns the human-readable name of the kind.
func (k ErrorKind) String() string {
	switch k {
	case KindNone:
		return "none"
	case KindMalformedTree:
		return "malformed-tree"
	case KindNotFound:
		return "not-found"
	case KindManifestAbsent:
		return "manifest-absent"
	default:
		return "io"
	}
}

// KindOf returns the kind of err.
func KindOf(err error) ErrorKind {
	switch {
	case err == nil:
		return KindNone
	case errors.Is(err, ErrMalformedRequestTree):
		return KindMalformedTree
	case errors.Is(err, ErrDependencyNotFound):
		return KindNotFound
	case errors.Is(err, ErrManifestNotFound):
		return KindManifestAbsent
	default:
		return KindIO
	}
}
