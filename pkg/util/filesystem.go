package util

import (
	"os"
	"path/filepath"

	"github.com/pkg/errors"
)

// Exists checks whether the file exists
func Exists(path string) bool {
	_, err := os.Stat(path)
	return !os.IsNotExist(err)
}

// CreateDirectoryIfNotExists creates directory if it doesn't yet exist
func CreateDirectoryIfNotExists(path string, mode os.FileMode) error {
	if !Exists(path) {
		if err := os.MkdirAll(path, mode); err != nil {
			return errors.Wrapf(err, "failed to create directory %s", path)
		}
	}

	return nil
}

// WriteFileAtomic writes data into a temporary file next to the target
// and then renames it over the target, so readers never observe a
// partially written file
// NOTE: the rename is atomic on POSIX filesystems only, there is no fsync
func WriteFileAtomic(path string, data []byte, mode os.FileMode) (err error) {
	f, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".tmp-*")
	if err != nil {
		return errors.Wrapf(err, "failed to create temporary file for %s", path)
	}

	tmp := f.Name()

	// removing the temporary file unless it has been renamed
	defer func() {
		if err != nil {
			_ = os.Remove(tmp)
		}
	}()

	if _, err = f.Write(data); err != nil {
		_ = f.Close()
		return errors.Wrapf(err, "failed to write temporary file %s", tmp)
	}

	if err = f.Chmod(mode); err != nil {
		_ = f.Close()
		return errors.Wrapf(err, "failed to chmod temporary file %s", tmp)
	}

	if err = f.Close(); err != nil {
		return errors.Wrapf(err, "failed to close temporary file %s", tmp)
	}

	if err = os.Rename(tmp, path); err != nil {
		return errors.Wrapf(err, "failed to replace %s", path)
	}

	return nil
}
