package util

import (
	"fmt"
	"sort"
	"strings"
)

// FormatDistribution renders a distribution as a compact, stable string,
// e.g. "advanced40_basic30_intermediate30". Keys are sorted so the same
// distribution always yields the same string, which makes it usable in
// cache keys.
func FormatDistribution(dist map[string]float64) string {
	keys := make([]string, 0, len(dist))
	for k := range dist {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s%d", k, int(dist[k]*100)))
	}
	return strings.Join(parts, "_")
}
