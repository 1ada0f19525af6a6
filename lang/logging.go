package lang

import "sort"

// sortedKeys returns the keys of m in sorted order, used for introspection
// and help output where determinism matters more than the map's natural
// (random) iteration order.
func sortedKeys[V any](m map[string]V) []string {
	if len(m) == 0 {
		return nil
	}

	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}

	sort.Strings(keys)

	return keys
}
