package fs

import "os"

// Exists checks if a file or directory exists at the given path.
// A missing path is not an error; any other stat failure is returned.
func (f *realFS) Exists(path string) (bool, error) {
	_, err := os.Stat(path)
	switch {
	case err == nil:
		return true, nil
	case os.IsNotExist(err):
		return false, nil
	default:
		return false, err
	}
}
