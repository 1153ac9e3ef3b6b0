package util

import "math"

// Apportion splits total into integer counts proportional to the given
// distribution, using the largest-remainder method: each key gets the
// floor of its exact share, then the remaining units go to the keys with
// the largest fractional remainders. Ties are broken by the position of
// the key in orderedKeys, which makes the result fully deterministic.
//
// Keys present in orderedKeys but absent from dist get a zero count.
// For a valid distribution (non-negative fractions summing to 1.0) the
// returned counts sum exactly to total.
func Apportion(total int, orderedKeys []string, dist map[string]float64) map[string]int {
	counts := make(map[string]int, len(orderedKeys))
	if total <= 0 {
		for _, key := range orderedKeys {
			counts[key] = 0
		}
		return counts
	}

	type share struct {
		key       string
		remainder float64
	}

	allocated := 0
	remainders := make([]share, 0, len(orderedKeys))
	for _, key := range orderedKeys {
		exact := float64(total) * dist[key]
		floor := int(math.Floor(exact))
		counts[key] = floor
		allocated += floor
		remainders = append(remainders, share{key: key, remainder: exact - float64(floor)})
	}

	// Stable selection sort by remainder keeps the orderedKeys tie-break.
	for i := 0; i < len(remainders); i++ {
		best := i
		for j := i + 1; j < len(remainders); j++ {
			if remainders[j].remainder > remainders[best].remainder {
				best = j
			}
		}
		if best != i {
			picked := remainders[best]
			copy(remainders[i+1:best+1], remainders[i:best])
			remainders[i] = picked
		}
	}

	for i := 0; allocated < total && i < len(remainders); i++ {
		counts[remainders[i].key]++
		allocated++
	}

	return counts
}
