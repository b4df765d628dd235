package util

import "sort"

// SortedStringKeys returns map keys in ascending order
func SortedStringKeys(m map[string]string) (keys []string) {
	keys = make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}

	sort.Strings(keys)

	return keys
}

// CopyStringMap returns a shallow copy of a given map, never nil
func CopyStringMap(m map[string]string) map[string]string {
	out := make(map[string]string, len(m))
	for k, v := range m {
		out[k] = v
	}

	return out
}
