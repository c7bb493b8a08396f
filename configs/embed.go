// Package configs provides embedded configuration files for the usage analyzer.
package configs

import _ "embed"

// DefaultConfigYAML contains the config file template written by "ua init".
//
//go:embed default.yaml
var DefaultConfigYAML []byte
