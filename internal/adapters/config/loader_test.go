package config_test

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/filedep/internal/adapters/config"
	"go.trai.ch/filedep/internal/adapters/logger"
	"go.trai.ch/filedep/internal/core/domain"
)

func newLoader() *config.Loader {
	return config.NewLoader(logger.NewWithWriter(io.Discard, slog.LevelDebug))
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o750))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
}

func TestLoad_DiscoversLockfileRoot(t *testing.T) {
	// Structure:
	// root/
	//   yarn.lock
	//   packages/app/src (cwd)
	root := t.TempDir()
	writeFile(t, filepath.Join(root, domain.DefaultLockfileName), "")
	cwd := filepath.Join(root, "packages", "app", "src")
	require.NoError(t, os.MkdirAll(cwd, 0o750))

	cfg, err := newLoader().Load(cwd, nil)
	require.NoError(t, err)

	assert.Equal(t, root, cfg.LockfileRoot)
	assert.False(t, cfg.LinkFileDependencies)
	assert.Equal(t, domain.DefaultRegistry, cfg.Registry)
	assert.Equal(t, domain.DefaultLockfileName, cfg.LockfileName)
	assert.Equal(t, 0, cfg.Concurrency)
}

func TestLoad_ClosestLockfileWins(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, domain.DefaultLockfileName), "")
	nested := filepath.Join(root, "nested")
	writeFile(t, filepath.Join(nested, domain.DefaultLockfileName), "")

	cfg, err := newLoader().Load(nested, nil)
	require.NoError(t, err)
	assert.Equal(t, nested, cfg.LockfileRoot)
}

func TestLoad_FallsBackToCwd(t *testing.T) {
	cwd := t.TempDir()

	cfg, err := newLoader().Load(cwd, map[string]any{
		domain.KeyLockfileName: "no-such-lockfile-anywhere.lock",
	})
	require.NoError(t, err)
	assert.Equal(t, cwd, cfg.LockfileRoot)
}

func TestLoad_SettingsFile(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, domain.DefaultLockfileName), "")
	writeFile(t, filepath.Join(root, domain.ConfigFileName), `
link_file_dependencies: true
registry: bower
concurrency: 3
`)

	cfg, err := newLoader().Load(root, nil)
	require.NoError(t, err)

	assert.True(t, cfg.LinkFileDependencies)
	assert.Equal(t, "bower", cfg.Registry)
	assert.Equal(t, 3, cfg.Concurrency)
}

func TestLoad_EnvironmentOverridesSettingsFile(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, domain.DefaultLockfileName), "")
	writeFile(t, filepath.Join(root, domain.ConfigFileName), "link_file_dependencies: false\n")
	t.Setenv("FILEDEP_LINK_FILE_DEPENDENCIES", "true")

	cfg, err := newLoader().Load(root, nil)
	require.NoError(t, err)
	assert.True(t, cfg.LinkFileDependencies)
}

func TestLoad_OverridesWin(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, domain.DefaultLockfileName), "")
	writeFile(t, filepath.Join(root, domain.ConfigFileName), "link_file_dependencies: true\n")
	t.Setenv("FILEDEP_LINK_FILE_DEPENDENCIES", "true")

	cfg, err := newLoader().Load(root, map[string]any{
		domain.KeyLinkFileDependencies: false,
	})
	require.NoError(t, err)
	assert.False(t, cfg.LinkFileDependencies)
}

func TestLoad_ExplicitLockfileRoot(t *testing.T) {
	cwd := t.TempDir()
	explicit := t.TempDir()

	cfg, err := newLoader().Load(cwd, map[string]any{domain.KeyLockfileRoot: explicit})
	require.NoError(t, err)
	assert.Equal(t, explicit, cfg.LockfileRoot)
}

func TestLoad_RelativeLockfileRootIsMadeAbsolute(t *testing.T) {
	cwd := t.TempDir()

	cfg, err := newLoader().Load(cwd, map[string]any{domain.KeyLockfileRoot: "sub/.."})
	require.NoError(t, err)
	assert.Equal(t, cwd, cfg.LockfileRoot)
	assert.True(t, filepath.IsAbs(cfg.LockfileRoot))
}

func TestLoad_InvalidSettingsFile(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, domain.DefaultLockfileName), "")
	writeFile(t, filepath.Join(root, domain.ConfigFileName), "link_file_dependencies: [unclosed\n")

	_, err := newLoader().Load(root, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrConfigParseFailed)
}

func TestLoad_SettingsFileIsDirectory(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, domain.DefaultLockfileName), "")
	require.NoError(t, os.MkdirAll(filepath.Join(root, domain.ConfigFileName), 0o750))

	_, err := newLoader().Load(root, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrConfigReadFailed)
}
