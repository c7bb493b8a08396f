package fs

import (
	"os"
)

//go:generate mockgen -source=interface.go -destination=mocks/fs.gen.go -package=mocks

// FS interface provides the file system operations used to scan source trees
// and write reports.
type FS interface {
	// Exists checks if a file or directory exists at the given path.
	Exists(path string) (bool, error)

	// IsDir checks if the path is a directory.
	IsDir(path string) (bool, error)

	// ReadFile reads the contents of a file.
	ReadFile(path string) ([]byte, error)

	// Glob finds files matching the pattern. "**" matches any number of directories.
	Glob(pattern string) ([]string, error)

	// MkdirAll creates a directory and all parent directories.
	MkdirAll(path string, perm os.FileMode) error

	// IsNotExist checks if an error indicates that a file or directory doesn't exist.
	IsNotExist(err error) bool

	// WriteFileAtomic writes data to a file atomically using a temporary file and rename.
	WriteFileAtomic(filename string, data []byte, perm os.FileMode) error
}

type realFS struct{}

// NewFS creates a new FS instance backed by the operating system.
func NewFS() FS {
	return &realFS{}
}
