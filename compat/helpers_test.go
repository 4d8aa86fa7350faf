package compat

import (
	"fmt"

	"github.com/Masterminds/semver/v3"
)

// tightens returns a description of the first way newer fails to be at
// least as strict as older, or "" if it is.
func tightens(older, newer *Requirement) string {
	for _, engine := range newer.Engines() {
		ov, ok := older.Version(engine)
		if !ok {
			return fmt.Sprintf("engine %s reappeared", engine)
		}
		nv, _ := newer.Version(engine)
		if semver.MustParse(nv).LessThan(semver.MustParse(ov)) {
			return fmt.Sprintf("engine %s loosened from %s to %s", engine, ov, nv)
		}
	}
	return ""
}
