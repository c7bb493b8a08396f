package fs

import (
	"errors"
	"io/fs"
)

// IsNotExist checks if an error, or any error it wraps, indicates a missing file or directory.
func (f *realFS) IsNotExist(err error) bool {
	return errors.Is(err, fs.ErrNotExist)
}
