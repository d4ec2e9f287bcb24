package ioutils

import (
	"os"
	"path/filepath"

	"github.com/pkg/errors"
)

// WriteFile writes data to path, creating it if necessary.
//
// The file is created with mode 0644. An existing file is truncated and
// overwritten in place; there is no backup and no atomic rename, so a crash
// mid-write can leave a truncated file behind.
//
// Example:
//
//	err := WriteFile("/home/me/.config/iopaint/config.json", data)
func WriteFile(path string, data []byte) error {
	if err := os.WriteFile(path, data, 0644); err != nil {
		return errors.Wrapf(err, "write %s", path)
	}
	return nil
}

// EnsureDir creates a directory and all parent directories if they don't exist.
//
// Directories are created with mode 0755 (rwxr-xr-x).
// If the directory already exists, no error is returned.
func EnsureDir(path string) error {
	if err := os.MkdirAll(path, 0755); err != nil {
		return errors.Wrapf(err, "create directory %s", path)
	}
	return nil
}

// EnsureParentDir creates the directory that will hold path.
func EnsureParentDir(path string) error {
	dir := filepath.Dir(path)
	if dir == "." || dir == "" {
		return nil
	}
	return EnsureDir(dir)
}

// Exists reports whether path names an existing file or directory.
//
// Permission errors are treated as "exists": the entry is there even if
// it cannot be inspected.
func Exists(path string) bool {
	_, err := os.Stat(path)
	if err == nil {
		return true
	}
	return !os.IsNotExist(err)
}

// AbsPath returns the absolute form of path, falling back to path itself
// when the working directory cannot be determined.
func AbsPath(path string) string {
	abs, err := filepath.Abs(path)
	if err != nil {
		return path
	}
	return abs
}
