package domain

import (
	"path/filepath"

	"go.trai.ch/zerr"
)

const (
	// DefaultLockfileName is the lockfile whose directory becomes the lockfile root.
	DefaultLockfileName = "yarn.lock"

	// ConfigFileName is the optional settings file read from the lockfile root.
	ConfigFileName = ".filedeprc.yaml"

	// EnvPrefix prefixes environment variables overriding settings (e.g. FILEDEP_LINK_FILE_DEPENDENCIES).
	EnvPrefix = "FILEDEP"
)

// Config holds the process configuration consumed by the resolvers.
type Config struct {
	// LockfileRoot is the absolute directory every canonical file pattern is relative to.
	LockfileRoot string `json:"lockfile_root" yaml:"lockfile_root"`

	// LinkFileDependencies switches file dependencies from copy mode to link mode.
	LinkFileDependencies bool `json:"link_file_dependencies" yaml:"link_file_dependencies"`

	// Registry is the default registry hint for manifest reads.
	Registry string `json:"registry" yaml:"registry"`

	// LockfileName is the file used to discover LockfileRoot.
	LockfileName string `json:"lockfile_name" yaml:"lockfile_name"`

	// Concurrency bounds parallel resolutions. Zero or less means runtime.NumCPU().
	Concurrency int `json:"concurrency" yaml:"concurrency"`
}

// DefaultConfig returns a Config rooted at root with default settings.
func DefaultConfig(root string) *Config {
	return &Config{
		LockfileRoot: root,
		Registry:     DefaultRegistry,
		LockfileName: DefaultLockfileName,
	}
}

// Setting keys shared by the settings file, the environment and CLI overrides.
const (
	KeyLockfileRoot         = "lockfile_root"
	KeyLinkFileDependencies = "link_file_dependencies"
	KeyRegistry             = "registry"
	KeyLockfileName         = "lockfile_name"
	KeyConcurrency          = "concurrency"
)

// Validate checks the invariants the resolvers rely on.
func (c *Config) Validate() error {
	if !filepath.IsAbs(c.LockfileRoot) {
		return zerr.With(zerr.Wrap(ErrRelativeLockfileRoot, "invalid configuration"), "lockfile_root", c.LockfileRoot)
	}
	return nil
}
