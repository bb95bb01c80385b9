// Package config provides the configuration loader for filedep.
package config

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
	"go.trai.ch/filedep/internal/core/domain"
	"go.trai.ch/filedep/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.ConfigLoader = (*Loader)(nil)

// Loader implements ports.ConfigLoader on top of viper.
//
// Layers, lowest first: defaults, .filedeprc.yaml in the lockfile root,
// FILEDEP_* environment variables, overrides.
type Loader struct {
	Logger ports.Logger
}

// NewLoader creates a new Loader with the given logger.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{Logger: logger}
}

// Load discovers the lockfile root from cwd and returns the layered configuration.
func (l *Loader) Load(cwd string, overrides map[string]any) (*domain.Config, error) {
	absCwd, err := filepath.Abs(cwd)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to resolve working directory"), "cwd", cwd)
	}

	v := newViper(overrides)

	root, err := l.lockfileRoot(v, absCwd)
	if err != nil {
		return nil, err
	}

	if err := readSettingsFile(v, root); err != nil {
		return nil, err
	}

	var s settings
	if err := v.Unmarshal(&s); err != nil {
		return nil, zerr.With(zerr.Wrap(domain.ErrConfigParseFailed, err.Error()), "path", filepath.Join(root, domain.ConfigFileName))
	}

	cfg := &domain.Config{
		LockfileRoot:         root,
		LinkFileDependencies: s.LinkFileDependencies,
		Registry:             s.Registry,
		LockfileName:         s.LockfileName,
		Concurrency:          s.Concurrency,
	}
	if cfg.Registry == "" {
		cfg.Registry = domain.DefaultRegistry
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	l.Logger.Debug("configuration loaded",
		"lockfile_root", cfg.LockfileRoot,
		"link_file_dependencies", cfg.LinkFileDependencies,
		"registry", cfg.Registry,
	)
	return cfg, nil
}

func newViper(overrides map[string]any) *viper.Viper {
	v := viper.New()
	v.SetDefault(domain.KeyLockfileRoot, "")
	v.SetDefault(domain.KeyLinkFileDependencies, false)
	v.SetDefault(domain.KeyRegistry, domain.DefaultRegistry)
	v.SetDefault(domain.KeyLockfileName, domain.DefaultLockfileName)
	v.SetDefault(domain.KeyConcurrency, 0)

	v.SetEnvPrefix(domain.EnvPrefix)
	v.AutomaticEnv()

	for key, value := range overrides {
		v.Set(key, value)
	}
	return v
}

// lockfileRoot returns the explicit root when one is set, otherwise the closest
// directory above cwd holding the lockfile, otherwise cwd.
func (l *Loader) lockfileRoot(v *viper.Viper, cwd string) (string, error) {
	if explicit := v.GetString(domain.KeyLockfileRoot); explicit != "" {
		if !filepath.IsAbs(explicit) {
			explicit = filepath.Join(cwd, explicit)
		}
		return filepath.Clean(explicit), nil
	}

	name := v.GetString(domain.KeyLockfileName)
	root, found, err := findLockfile(cwd, name)
	if err != nil {
		return "", err
	}
	if !found {
		l.Logger.Debug("no lockfile found, using working directory", "lockfile", name, "cwd", cwd)
		return cwd, nil
	}
	return root, nil
}

func findLockfile(cwd, name string) (string, bool, error) {
	currentDir := cwd
	for {
		_, err := os.Stat(filepath.Join(currentDir, name))
		if err == nil {
			return currentDir, true, nil
		}
		if !errors.Is(err, os.ErrNotExist) {
			return "", false, zerr.With(zerr.Wrap(err, "failed to look up lockfile"), "path", filepath.Join(currentDir, name))
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			// Reached root
			return "", false, nil
		}
		currentDir = parentDir
	}
}

func readSettingsFile(v *viper.Viper, root string) error {
	path := filepath.Join(root, domain.ConfigFileName)
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return zerr.With(zerr.Wrap(domain.ErrConfigReadFailed, err.Error()), "path", path)
	}

	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	if err := v.ReadInConfig(); err != nil {
		var parseErr viper.ConfigParseError
		if errors.As(err, &parseErr) {
			return zerr.With(zerr.Wrap(domain.ErrConfigParseFailed, err.Error()), "path", path)
		}
		return zerr.With(zerr.Wrap(domain.ErrConfigReadFailed, err.Error()), "path", path)
	}
	return nil
}
