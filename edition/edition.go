package edition

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
)

// Edition is a normalized (lowercase) ECMAScript edition name.
type Edition string

const (
	ES5    Edition = "es5"
	ES6    Edition = "es6"
	ES2015 Edition = "es2015"
	ES2016 Edition = "es2016"
	ES2017 Edition = "es2017"
	ES2018 Edition = "es2018"
	ES2019 Edition = "es2019"
	ES2020 Edition = "es2020"
	ES2021 Edition = "es2021"
	ES2022 Edition = "es2022"
	ES2023 Edition = "es2023"
	ES2024 Edition = "es2024"
	ESNext Edition = "esnext"
)

// prefix marks a descriptor as edition-shaped.
const prefix = "es"

// Known lists every edition name, oldest first.
var Known = []Edition{
	ES5, ES6,
	ES2015, ES2016, ES2017, ES2018, ES2019, ES2020, ES2021, ES2022,
	ES2023, ES2024, ESNext,
}

// Error reports an edition key that cannot be ordered by year.
type Error struct {
	Edition Edition
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("edition %q: %s", e.Edition, e.Message)
}

// IsEditionLike reports whether s has the edition shape, i.e. starts with
// "es" ignoring case. "ES2018", "esnext" and "es1999" all qualify;
// "Chrome 100" does not.
func IsEditionLike(s string) bool {
	return strings.HasPrefix(strings.ToLower(s), prefix)
}

// Normalize lowercases s. It does not check that s names a known edition.
func Normalize(s string) Edition {
	return Edition(strings.ToLower(s))
}

// IsKnown reports whether e is one of the editions in [Known].
func (e Edition) IsKnown() bool {
	return slices.Contains(Known, e)
}

// IsLatest reports whether e has no fixed feature list. The newest
// editions track whatever the deployment target currently ships.
func (e Edition) IsLatest() bool {
	switch e {
	case ES2023, ES2024, ESNext:
		return true
	}
	return false
}

// Year returns the numeric suffix of a year-named edition ("es2018" -> 2018).
// The second result is false for es5, es6, esnext and anything unknown-shaped.
func (e Edition) Year() (int, bool) {
	suffix, ok := strings.CutPrefix(string(e), prefix)
	if !ok || len(suffix) != 4 {
		return 0, false
	}
	year, err := strconv.Atoi(suffix)
	if err != nil {
		return 0, false
	}
	return year, true
}

// String returns the edition name.
func (e Edition) String() string {
	return string(e)
}

// Compare orders year-named editions by year. Editions without a year sort
// before all year-named editions and compare by name among themselves.
func Compare(a, b Edition) int {
	ya, oka := a.Year()
	yb, okb := b.Year()
	switch {
	case oka && okb:
		return ya - yb
	case oka:
		return 1
	case okb:
		return -1
	}
	return strings.Compare(string(a), string(b))
}

// Sort orders editions ascending by year, returning an error if any of them
// has no numeric suffix.
func Sort(editions []Edition) error {
	for _, e := range editions {
		if _, ok := e.Year(); !ok {
			return &Error{Edition: e, Message: "no numeric year suffix"}
		}
	}
	slices.SortFunc(editions, Compare)
	return nil
}
