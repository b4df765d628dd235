package util

import (
	"os"

	"github.com/cespare/xxhash"
	"github.com/pkg/errors"
)

// Checksum produces a `xxhash` hash from a given byte slice
// NOTE: https://github.com/cespare/xxhash for more details
func Checksum(payload []byte) uint64 {
	return xxhash.Sum64(payload)
}

// FileChecksum hashes the contents of a file, reporting whether the file
// exists at all; a missing file is not an error
func FileChecksum(path string) (sum uint64, exists bool, err error) {
	payload, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return 0, false, nil
		}

		return 0, false, errors.Wrapf(err, "failed to read %s", path)
	}

	return Checksum(payload), true, nil
}
