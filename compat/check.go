package compat

import (
	"fmt"

	"github.com/Masterminds/semver/v3"

	"github.com/albertocavalcante/go-esx/edition"
)

// EngineWarning describes an engine version that cannot run an edition
// natively.
type EngineWarning struct {
	Edition edition.Edition
	Engine  string
	// MinVersion is empty when the engine cannot run the edition at any version.
	MinVersion  string
	UsedVersion string
}

// String returns a human-readable warning message.
func (w *EngineWarning) String() string {
	if w.MinVersion == "" {
		return fmt.Sprintf("%s does not support %s at any version (target is %s)",
			w.Engine, w.Edition, w.UsedVersion)
	}
	return fmt.Sprintf("%s requires %s %s+, but target is %s",
		w.Edition, w.Engine, w.MinVersion, w.UsedVersion)
}

// UnknownEditionError reports an edition the table has no entry for.
type UnknownEditionError struct {
	Edition edition.Edition
}

func (e *UnknownEditionError) Error() string {
	return fmt.Sprintf("edition %s not in table", e.Edition)
}

// CheckEngine reports whether engine at version runs every feature of e.
// It returns nil when it does, and a warning otherwise.
func (t *Table) CheckEngine(e edition.Edition, engine, version string) (*EngineWarning, error) {
	req, ok := t.Lookup(e)
	if !ok {
		return nil, &UnknownEditionError{Edition: e}
	}
	used, err := semver.NewVersion(version)
	if err != nil {
		return nil, fmt.Errorf("bad %s version %q: %w", engine, version, err)
	}

	minVersion, ok := req.Version(engine)
	if !ok {
		return &EngineWarning{Edition: e, Engine: engine, UsedVersion: version}, nil
	}
	constraint, err := semver.NewConstraint(">= " + minVersion)
	if err != nil {
		return nil, fmt.Errorf("bad %s requirement %q: %w", engine, minVersion, err)
	}
	if constraint.Check(used) {
		return nil, nil
	}
	return &EngineWarning{
		Edition:     e,
		Engine:      engine,
		MinVersion:  minVersion,
		UsedVersion: version,
	}, nil
}

// IsSupported is CheckEngine without the details. Unknown editions and
// unparsable versions count as unsupported.
func (t *Table) IsSupported(e edition.Edition, engine, version string) bool {
	w, err := t.CheckEngine(e, engine, version)
	return err == nil && w == nil
}
