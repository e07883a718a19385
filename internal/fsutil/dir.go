package fsutil

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// ErrExists is returned by CreateFreshDir when the path is already taken.
var ErrExists = fs.ErrExist

// CheckAbsent returns nil when nothing exists at path yet.
func CheckAbsent(path string) error {
	_, err := os.Lstat(path)
	switch {
	case err == nil:
		return fmt.Errorf("%s: %w", path, ErrExists)
	case errors.Is(err, fs.ErrNotExist):
		return nil
	default:
		return err
	}
}

// CreateFreshDir creates path and any missing parents. The final element
// must not exist beforehand, so two runs can never mix their outputs.
func CreateFreshDir(path string, perm fs.FileMode) error {
	if parent := filepath.Dir(path); parent != "." {
		if err := os.MkdirAll(parent, perm); err != nil {
			return err
		}
	}
	return os.Mkdir(path, perm)
}
