// Package fsutil provides utility functions and constants for file system operations.
package fsutil

import (
	"os"
	"path/filepath"
)

// EnsureDir creates a directory and all necessary parent directories with
// default permissions if they don't exist. Returns an error if the directory
// cannot be created or if the path exists but is not a directory.
func EnsureDir(path string) error {
	return os.MkdirAll(path, DirModeDefault)
}

// EnsureFileDir creates the parent directory of a file path if it doesn't
// exist. This is useful when you want to ensure a directory exists before
// creating a file.
func EnsureFileDir(filePath string) error {
	return EnsureDir(filepath.Dir(filePath))
}
