// Package domain contains the core models for local file dependency resolution.
package domain

import (
	"path/filepath"
	"strings"
)

const (
	// FileProtocol is the protocol name of local file dependencies.
	FileProtocol = "file"

	// FileProtocolPrefix is the prefix a protocol-form range starts with (e.g. "file:../libs/a").
	FileProtocolPrefix = FileProtocol + ":"
)

// RangeKind classifies a declared dependency range.
type RangeKind int

const (
	// RangeOpaque is any range that is not a local path (semver ranges, tags, git urls).
	// Opaque ranges are passed through untouched.
	RangeOpaque RangeKind = iota
	// RangeRelativePath is a bare relative path starting with "./" or "../".
	RangeRelativePath
	// RangeAbsolutePath is an absolute filesystem path.
	RangeAbsolutePath
	// RangeProtocolForm is a range carrying the explicit "file:" protocol.
	RangeProtocolForm
)

// String returns the human-readable name of the kind.
func (k RangeKind) String() string {
	switch k {
	case RangeRelativePath:
		return "relative-path"
	case RangeAbsolutePath:
		return "absolute-path"
	case RangeProtocolForm:
		return "protocol-form"
	default:
		return "opaque"
	}
}

// ClassifyRange classifies a raw range string. It is pure and stateless.
//
// The protocol check comes first: it is the generic exotic matcher every
// protocol based resolver shares. The path checks extend it so that bare
// relative or absolute paths are recognized without a "file:" prefix.
func ClassifyRange(rng string) RangeKind {
	switch {
	case hasProtocol(rng, FileProtocol):
		return RangeProtocolForm
	case strings.HasPrefix(rng, "./"), strings.HasPrefix(rng, "../"):
		return RangeRelativePath
	case filepath.IsAbs(rng):
		return RangeAbsolutePath
	default:
		return RangeOpaque
	}
}

// IsLocalPath reports whether the range denotes a local filesystem dependency.
func IsLocalPath(rng string) bool {
	return ClassifyRange(rng) != RangeOpaque
}

// StripProtocol removes a single leading "file:" from the range.
func StripProtocol(rng string) string {
	return strings.TrimPrefix(rng, FileProtocolPrefix)
}

func hasProtocol(rng, protocol string) bool {
	return strings.HasPrefix(rng, protocol+":")
}
