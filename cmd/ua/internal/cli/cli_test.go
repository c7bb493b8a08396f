//go:build unit

package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/lerenn/usage-analyzer/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// resetFlags restores package flag state when the test ends.
func resetFlags(t *testing.T) {
	t.Helper()
	quiet, configPath, root, overrides := Quiet, ConfigPath, Root, Overrides
	t.Cleanup(func() {
		Quiet, ConfigPath, Root, Overrides = quiet, configPath, root, overrides
	})
}

func TestGetConfigPath(t *testing.T) {
	resetFlags(t)

	ConfigPath, Root = "", ""
	assert.Equal(t, config.DefaultConfigFile, GetConfigPath())

	Root = "/project"
	assert.Equal(t, filepath.Join("/project", config.DefaultConfigFile), GetConfigPath())

	ConfigPath = "/etc/ua.yaml"
	assert.Equal(t, "/etc/ua.yaml", GetConfigPath())
}

func TestLoadConfig_DefaultsWhenNoFile(t *testing.T) {
	resetFlags(t)

	ConfigPath = ""
	Root = t.TempDir()
	Overrides = FlagOverrides{Name: "Element", PagesPath: "app/routes"}

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, Root, cfg.Root)
	assert.Equal(t, "Element", cfg.Name)
	assert.Equal(t, "src/elements", cfg.TargetPath)
	assert.Equal(t, "app/routes", cfg.PagesPath)
}

func TestLoadConfig_ExplicitFileMustExist(t *testing.T) {
	resetFlags(t)

	ConfigPath = filepath.Join(t.TempDir(), "missing.yaml")
	Root = ""

	_, err := LoadConfig()
	assert.ErrorIs(t, err, config.ErrConfigFileRead)
}

func TestLoadConfig_FileAndOverrides(t *testing.T) {
	resetFlags(t)

	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, config.DefaultConfigFile),
		[]byte("name: Widget\ntarget_path: src/widgets\n"), 0o644))

	ConfigPath = ""
	Root = root
	Overrides = FlagOverrides{Extension: ".jsx"}

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "Widget", cfg.Name)
	assert.Equal(t, ".jsx", cfg.Extension)
	assert.Equal(t, "@/widgets", cfg.Params().Alias)
}

func TestLoadConfig_InvalidOverride(t *testing.T) {
	resetFlags(t)

	ConfigPath = ""
	Root = t.TempDir()
	Overrides = FlagOverrides{Extension: "tsx"}

	_, err := LoadConfig()
	assert.ErrorIs(t, err, config.ErrInvalidExtension)
}

func TestLoadConfig_RootRelativeToConfigFile(t *testing.T) {
	resetFlags(t)

	dir := t.TempDir()
	configPath := filepath.Join(dir, config.DefaultConfigFile)
	require.NoError(t, os.WriteFile(configPath, []byte("root: web\n"), 0o644))

	ConfigPath = configPath
	Root = ""

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "web"), cfg.Root)

	Root = "elsewhere"
	cfg, err = LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "elsewhere", cfg.Root)
}

func TestLoadConfig_DefaultRootIsConfigDir(t *testing.T) {
	resetFlags(t)

	dir := t.TempDir()
	configPath := filepath.Join(dir, "ua.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte("name: Widget\n"), 0o644))

	ConfigPath = configPath
	Root = ""

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, dir, cfg.Root)
}
