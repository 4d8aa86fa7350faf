package edition

import (
	"maps"
	"slices"
)

// Cumulative is the feature set an edition requires: its own features plus
// those of every older fixed edition.
type Cumulative struct {
	Edition  Edition
	Features []string
}

// Accumulate builds the cumulative feature set of every edition in added,
// ordered oldest first. Features are listed in first-seen order and a
// feature named by more than one edition appears once, under the oldest.
//
// Every key must be year-named; anything else returns an *Error.
func Accumulate(added map[Edition][]string) ([]Cumulative, error) {
	editions := slices.Collect(maps.Keys(added))
	if err := Sort(editions); err != nil {
		return nil, err
	}

	seen := make(map[string]bool)
	var running []string
	result := make([]Cumulative, 0, len(editions))
	for _, e := range editions {
		for _, feature := range added[e] {
			if seen[feature] {
				continue
			}
			seen[feature] = true
			running = append(running, feature)
		}
		result = append(result, Cumulative{
			Edition:  e,
			Features: append([]string(nil), running...),
		})
	}
	return result, nil
}

// Default accumulates the built-in feature lists.
func Default() []Cumulative {
	// featuresAdded only has year-named keys.
	sets, _ := Accumulate(featuresAdded)
	return sets
}
