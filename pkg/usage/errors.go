package usage

import "errors"

// Error definitions for usage package.
var (
	// Scan errors.
	ErrDirectoryUnreadable = errors.New("directory is not accessible")
	ErrNotADirectory       = errors.New("path is not a directory")
	ErrListFiles           = errors.New("failed to list source files")
	ErrReadFile            = errors.New("failed to read source file")

	// Report errors.
	ErrNotAnalyzed  = errors.New("usage has not been analyzed yet")
	ErrEmptyRecord  = errors.New("no exports were found, nothing to report")
	ErrRenderReport = errors.New("failed to render report")
	ErrWriteReport  = errors.New("failed to write report")
)
