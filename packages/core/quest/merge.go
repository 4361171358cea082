package quest

import "sort"

// Merge overlays layers from lowest to highest precedence. Within a layer
// and across layers the last write for a name wins. The inputs are never
// modified and a fresh map is returned on every call.
func Merge(layers ...Layer) map[string]ValueSource {
	result := make(map[string]ValueSource)
	for _, layer := range layers {
		for _, entry := range layer {
			result[entry.Name] = entry.Source
		}
	}
	return result
}

// sortedKeys returns the keys of m in ascending order.
func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
