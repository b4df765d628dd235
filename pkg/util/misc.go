package util

import (
	"github.com/pkg/errors"
	"github.com/r3labs/diff"
)

// Changelog describes the changes between two string maps,
// every change path holds a single map key
func Changelog(before, after map[string]string) (diff.Changelog, error) {
	changelog, err := diff.Diff(CopyStringMap(before), CopyStringMap(after))
	if err != nil {
		return nil, errors.Wrap(err, "failed to diff maps")
	}

	return changelog, nil
}

// ChangedKey returns the map key a change refers to
func ChangedKey(c diff.Change) string {
	if len(c.Path) == 0 {
		return ""
	}

	return c.Path[0]
}
