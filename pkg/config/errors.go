package config

import "errors"

// Error definitions for config package.
var (
	// Configuration file errors.
	ErrConfigFileRead  = errors.New("failed to read config file")
	ErrConfigFileParse = errors.New("failed to parse config file")
	ErrConfigFileWrite = errors.New("failed to write config file")
	ErrConfigExists    = errors.New("config file already exists")

	// Configuration validation errors.
	ErrInvalidConfig    = errors.New("invalid configuration")
	ErrNameEmpty        = errors.New("name cannot be empty")
	ErrTargetPathEmpty  = errors.New("target_path cannot be empty")
	ErrPagesPathEmpty   = errors.New("pages_path cannot be empty")
	ErrInvalidExtension = errors.New("extension must start with a dot")
	ErrAbsoluteOutput   = errors.New("output paths must be relative to the project root")
)
