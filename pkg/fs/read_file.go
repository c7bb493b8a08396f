package fs

import "os"

// ReadFile reads the whole contents of a source file.
func (f *realFS) ReadFile(path string) ([]byte, error) {
	return os.ReadFile(path)
}
