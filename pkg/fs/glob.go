package fs

import (
	"fmt"
	"path/filepath"

	"github.com/bmatcuk/doublestar"
)

// Glob finds files matching the pattern.
// Unlike filepath.Glob, a "**" path segment matches zero or more directories.
// Only regular files are returned.
func (f *realFS) Glob(pattern string) ([]string, error) {
	matches, err := doublestar.Glob(filepath.Clean(pattern))
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %w", ErrInvalidPattern, pattern, err)
	}

	files := make([]string, 0, len(matches))
	for _, match := range matches {
		isDir, err := f.IsDir(match)
		if err != nil {
			return nil, err
		}
		if !isDir {
			files = append(files, match)
		}
	}

	return files, nil
}
