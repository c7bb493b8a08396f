// Package config provides configuration management for the usage analyzer.
package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/lerenn/usage-analyzer/pkg/usage"
)

// DefaultConfigFile is the config file name looked up in the project root.
const DefaultConfigFile = ".usage-analyzer.yaml"

// Config represents the application configuration.
type Config struct {
	Name             string `yaml:"name"`
	Root             string `yaml:"root"`
	TargetPath       string `yaml:"target_path"`
	PagesPath        string `yaml:"pages_path"`
	Extension        string `yaml:"extension"`
	Alias            string `yaml:"alias,omitempty"`
	MarkdownOutput   string `yaml:"markdown_output"`
	ExcalidrawOutput string `yaml:"excalidraw_output"`
}

// Default returns the default configuration.
func Default() Config {
	return Config{
		Name:             usage.DefaultName,
		Root:             ".",
		TargetPath:       usage.DefaultTargetPath,
		PagesPath:        usage.DefaultPagesPath,
		Extension:        usage.DefaultExtension,
		MarkdownOutput:   usage.DefaultMarkdownOutput,
		ExcalidrawOutput: usage.DefaultExcalidrawOutput,
	}
}

// Validate validates the configuration values.
func (c Config) Validate() error {
	if c.Name == "" {
		return ErrNameEmpty
	}
	if c.TargetPath == "" {
		return ErrTargetPathEmpty
	}
	if c.PagesPath == "" {
		return ErrPagesPathEmpty
	}
	if !strings.HasPrefix(c.Extension, ".") {
		return fmt.Errorf("%w: %q", ErrInvalidExtension, c.Extension)
	}

	for _, output := range []string{c.MarkdownOutput, c.ExcalidrawOutput} {
		if filepath.IsAbs(output) {
			return fmt.Errorf("%w: %s", ErrAbsoluteOutput, output)
		}
	}

	return nil
}

// ImportAlias returns the configured alias, or the one derived from the target path.
func (c Config) ImportAlias() string {
	if c.Alias != "" {
		return c.Alias
	}
	return usage.DefaultAlias(c.TargetPath)
}

// Params converts the configuration into analyzer parameters.
func (c Config) Params() usage.Params {
	return usage.Params{
		Name:       c.Name,
		Root:       c.Root,
		TargetPath: c.TargetPath,
		PagesPath:  c.PagesPath,
		Extension:  c.Extension,
		Alias:      c.ImportAlias(),
	}
}
