package fs

import "os"

// MkdirAll creates a directory and all parent directories.
// It is a no-op when the directory already exists.
func (f *realFS) MkdirAll(path string, perm os.FileMode) error {
	return os.MkdirAll(path, perm)
}
