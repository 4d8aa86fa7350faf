package edition

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestAccumulate(t *testing.T) {
	added := map[Edition][]string{
		ES2017: {"c"},
		ES2015: {"a", "b"},
		ES2016: {"b", "d"},
	}

	got, err := Accumulate(added)
	if err != nil {
		t.Fatalf("Accumulate() error = %v", err)
	}

	want := []Cumulative{
		{Edition: ES2015, Features: []string{"a", "b"}},
		{Edition: ES2016, Features: []string{"a", "b", "d"}},
		{Edition: ES2017, Features: []string{"a", "b", "d", "c"}},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Accumulate() mismatch (-want +got):\n%s", diff)
	}
}

func TestAccumulateRejectsYearlessEdition(t *testing.T) {
	_, err := Accumulate(map[Edition][]string{
		ES2015: {"a"},
		ES6:    {"b"},
	})
	var editionErr *Error
	if !errors.As(err, &editionErr) {
		t.Fatalf("Accumulate() error = %v, want *Error", err)
	}
}

func TestAccumulateEmpty(t *testing.T) {
	got, err := Accumulate(nil)
	if err != nil {
		t.Fatalf("Accumulate(nil) error = %v", err)
	}
	if len(got) != 0 {
		t.Errorf("Accumulate(nil) = %v, want empty", got)
	}
}

// Each cumulative set must contain the previous one.
func TestDefaultIsMonotonic(t *testing.T) {
	sets := Default()
	if len(sets) != len(Fixed()) {
		t.Fatalf("Default() returned %d sets, want %d", len(sets), len(Fixed()))
	}

	for i := 1; i < len(sets); i++ {
		prev, cur := sets[i-1], sets[i]
		if Compare(prev.Edition, cur.Edition) >= 0 {
			t.Errorf("%s is not older than %s", prev.Edition, cur.Edition)
		}
		have := make(map[string]bool, len(cur.Features))
		for _, f := range cur.Features {
			have[f] = true
		}
		for _, f := range prev.Features {
			if !have[f] {
				t.Errorf("%s is missing %q from %s", cur.Edition, f, prev.Edition)
			}
		}
	}

	es2015 := sets[0]
	if es2015.Edition != ES2015 || len(es2015.Features) != 18 {
		t.Errorf("first set = %s with %d features, want es2015 with 18", es2015.Edition, len(es2015.Features))
	}
	last := sets[len(sets)-1]
	if last.Edition != ES2022 || len(last.Features) != 29 {
		t.Errorf("last set = %s with %d features, want es2022 with 29", last.Edition, len(last.Features))
	}
}
