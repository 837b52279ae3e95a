package mock

import (
	"net/url"
	"slices"
)

// MatchURLVals reports whether two query value sets hold the same keys with
// the same values in the same order
func MatchURLVals(v1, v2 url.Values) bool {
	if len(v1) != len(v2) {
		return false
	}
	for key, val := range v1 {
		val2, ok := v2[key]
		if !ok || !slices.Equal(val, val2) {
			return false
		}
	}
	return true
}
