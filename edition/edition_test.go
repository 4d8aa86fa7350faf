package edition

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestIsEditionLike(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"es2018", true},
		{"ES2018", true},
		{"esnext", true},
		{"es1999", true},
		{"Es5", true},
		{"Chrome 100", false},
		{"fully supports es6-module", false},
		{"", false},
		{"e", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := IsEditionLike(tt.input); got != tt.want {
				t.Errorf("IsEditionLike(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestNormalize(t *testing.T) {
	if got := Normalize("ESNext"); got != ESNext {
		t.Errorf("Normalize(%q) = %q, want %q", "ESNext", got, ESNext)
	}
	if got := Normalize("ES2015"); !got.IsKnown() {
		t.Errorf("Normalize(%q) = %q, want a known edition", "ES2015", got)
	}
	if Normalize("es1999").IsKnown() {
		t.Error("es1999 should not be known")
	}
}

func TestYear(t *testing.T) {
	tests := []struct {
		edition Edition
		want    int
		wantOK  bool
	}{
		{ES2015, 2015, true},
		{ES2024, 2024, true},
		{ES5, 0, false},
		{ES6, 0, false},
		{ESNext, 0, false},
		{Edition("es20x5"), 0, false},
		{Edition("chrome"), 0, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.edition), func(t *testing.T) {
			got, ok := tt.edition.Year()
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("%q.Year() = (%d, %v), want (%d, %v)", tt.edition, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestIsLatest(t *testing.T) {
	for _, e := range Known {
		want := e == ES2023 || e == ES2024 || e == ESNext
		if got := e.IsLatest(); got != want {
			t.Errorf("%q.IsLatest() = %v, want %v", e, got, want)
		}
	}
}

func TestSort(t *testing.T) {
	editions := []Edition{ES2022, ES2015, ES2019, ES2016}
	if err := Sort(editions); err != nil {
		t.Fatalf("Sort() error = %v", err)
	}
	want := []Edition{ES2015, ES2016, ES2019, ES2022}
	if diff := cmp.Diff(want, editions); diff != "" {
		t.Errorf("Sort() mismatch (-want +got):\n%s", diff)
	}

	err := Sort([]Edition{ES2015, ESNext})
	var editionErr *Error
	if !errors.As(err, &editionErr) {
		t.Fatalf("Sort() error = %v, want *Error", err)
	}
	if editionErr.Edition != ESNext {
		t.Errorf("Error.Edition = %q, want %q", editionErr.Edition, ESNext)
	}
}

func TestFixed(t *testing.T) {
	want := []Edition{ES2015, ES2016, ES2017, ES2018, ES2019, ES2020, ES2021, ES2022}
	if diff := cmp.Diff(want, Fixed()); diff != "" {
		t.Errorf("Fixed() mismatch (-want +got):\n%s", diff)
	}
}

func TestFeaturesAddedIsCopy(t *testing.T) {
	added := FeaturesAdded()
	added[ES2016][0] = "mutated"
	delete(added, ES2015)

	again := FeaturesAdded()
	if again[ES2016][0] != "transform-exponentiation-operator" {
		t.Errorf("FeaturesAdded() leaked a mutation: %q", again[ES2016][0])
	}
	if _, ok := again[ES2015]; !ok {
		t.Error("FeaturesAdded() leaked a deletion")
	}
}
