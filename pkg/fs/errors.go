// Package fs provides file system operations and error definitions.
package fs

import "errors"

// Error definitions for fs package.
var (
	// Pattern errors.
	ErrInvalidPattern = errors.New("invalid glob pattern")
)
