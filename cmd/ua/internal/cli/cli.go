// Package cli provides configuration loading and analyzer construction for the ua CLI.
package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/lerenn/usage-analyzer/pkg/config"
	"github.com/lerenn/usage-analyzer/pkg/fs"
	"github.com/lerenn/usage-analyzer/pkg/logger"
	"github.com/lerenn/usage-analyzer/pkg/usage"
)

var (
	// Quiet suppresses progress diagnostics.
	Quiet bool
	// ConfigPath specifies a custom config file path.
	ConfigPath string
	// Root overrides the project root.
	Root string
	// Overrides holds config values set from flags.
	Overrides FlagOverrides
)

// FlagOverrides are flag values replacing config file values when non-empty.
type FlagOverrides struct {
	Name       string
	TargetPath string
	PagesPath  string
	Extension  string
	Alias      string
}

// GetConfigPath returns the config file path that would be used by LoadConfig.
func GetConfigPath() string {
	if ConfigPath != "" {
		return ConfigPath
	}
	root := Root
	if root == "" {
		root = "."
	}
	return filepath.Join(root, config.DefaultConfigFile)
}

// NewConfigManager creates a config manager for GetConfigPath.
func NewConfigManager() config.Manager {
	return config.NewManager(fs.NewFS(), GetConfigPath())
}

// LoadConfig loads the configuration and applies flag overrides.
// An explicit --config must exist; the default config file is optional.
func LoadConfig() (config.Config, error) {
	manager := NewConfigManager()

	var cfg config.Config
	var err error
	if ConfigPath != "" {
		cfg, err = manager.GetConfig()
	} else {
		cfg, err = manager.GetConfigWithFallback()
	}
	if err != nil {
		return config.Config{}, err
	}

	cfg = resolveRoot(cfg)
	cfg = applyOverrides(cfg)
	if err := cfg.Validate(); err != nil {
		return config.Config{}, fmt.Errorf("%w: %w", config.ErrInvalidConfig, err)
	}

	return cfg, nil
}

// resolveRoot makes a relative config root relative to the config file's directory.
func resolveRoot(cfg config.Config) config.Config {
	if !filepath.IsAbs(cfg.Root) {
		cfg.Root = filepath.Join(filepath.Dir(GetConfigPath()), cfg.Root)
	}
	return cfg
}

func applyOverrides(cfg config.Config) config.Config {
	if Root != "" {
		cfg.Root = Root
	}
	if Overrides.Name != "" {
		cfg.Name = Overrides.Name
	}
	if Overrides.TargetPath != "" {
		cfg.TargetPath = Overrides.TargetPath
	}
	if Overrides.PagesPath != "" {
		cfg.PagesPath = Overrides.PagesPath
	}
	if Overrides.Extension != "" {
		cfg.Extension = Overrides.Extension
	}
	if Overrides.Alias != "" {
		cfg.Alias = Overrides.Alias
	}
	return cfg
}

// NewLogger returns the diagnostic logger: stderr, or nothing in quiet mode.
func NewLogger() logger.Logger {
	if Quiet {
		return logger.NewNoopLogger()
	}
	return logger.NewWriterLogger(os.Stderr)
}

// NewAnalyzer loads the configuration and creates an analyzer for it.
func NewAnalyzer() (*usage.Analyzer, config.Config, error) {
	cfg, err := LoadConfig()
	if err != nil {
		return nil, config.Config{}, err
	}

	analyzer := usage.NewAnalyzer(usage.NewAnalyzerParams{
		FS:     fs.NewFS(),
		Logger: NewLogger(),
		Params: cfg.Params(),
	})

	return analyzer, cfg, nil
}

// RunAnalyzer creates an analyzer and runs the analysis.
func RunAnalyzer() (*usage.Analyzer, config.Config, error) {
	analyzer, cfg, err := NewAnalyzer()
	if err != nil {
		return nil, config.Config{}, err
	}

	if err := analyzer.Run(); err != nil {
		return nil, config.Config{}, fmt.Errorf("failed to analyze %s usage: %w", cfg.Name, err)
	}

	return analyzer, cfg, nil
}
