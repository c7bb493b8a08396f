package config

import (
	"fmt"

	"github.com/lerenn/usage-analyzer/pkg/fs"
	"gopkg.in/yaml.v3"
)

// Manager interface provides configuration management with an embedded config path.
type Manager interface {
	// GetConfig loads the config file; a missing file is an error.
	GetConfig() (Config, error)
	// GetConfigWithFallback loads the config file, falling back to Default when it is missing.
	GetConfigWithFallback() (Config, error)
	// Init writes a config file template to the config path.
	// An existing file is only replaced when force is set.
	Init(template []byte, force bool) error
	// GetConfigPath returns the embedded config path.
	GetConfigPath() string
}

type realManager struct {
	fs         fs.FS
	configPath string
}

// NewManager creates a new Manager instance reading and writing configPath through fsys.
func NewManager(fsys fs.FS, configPath string) Manager {
	return &realManager{
		fs:         fsys,
		configPath: configPath,
	}
}

func (c *realManager) GetConfig() (Config, error) {
	data, err := c.fs.ReadFile(c.configPath)
	if err != nil {
		return Config{}, fmt.Errorf("%w: %w", ErrConfigFileRead, err)
	}

	// Keys missing from the file keep their default value.
	config := Default()
	if err := yaml.Unmarshal(data, &config); err != nil {
		return Config{}, fmt.Errorf("%w: %w", ErrConfigFileParse, err)
	}

	if err := config.Validate(); err != nil {
		return Config{}, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	return config, nil
}

func (c *realManager) GetConfigWithFallback() (Config, error) {
	config, err := c.GetConfig()
	if err != nil && c.fs.IsNotExist(err) {
		return Default(), nil
	}
	return config, err
}

func (c *realManager) Init(template []byte, force bool) error {
	config := Default()
	if err := yaml.Unmarshal(template, &config); err != nil {
		return fmt.Errorf("%w: %w", ErrConfigFileParse, err)
	}
	if err := config.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	if !force {
		exists, err := c.fs.Exists(c.configPath)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrConfigFileWrite, err)
		}
		if exists {
			return fmt.Errorf("%w: %s", ErrConfigExists, c.configPath)
		}
	}

	if err := c.fs.WriteFileAtomic(c.configPath, template, 0o644); err != nil {
		return fmt.Errorf("%w: %w", ErrConfigFileWrite, err)
	}

	return nil
}

func (c *realManager) GetConfigPath() string {
	return c.configPath
}
