package fs

import "os"

// IsDir reports whether path is a directory. Symlinks are followed.
func (f *realFS) IsDir(path string) (bool, error) {
	info, err := os.Stat(path)
	if err != nil {
		return false, err
	}
	return info.IsDir(), nil
}
