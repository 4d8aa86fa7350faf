package compat

import (
	"errors"
	"testing"

	"github.com/albertocavalcante/go-esx/edition"
)

func TestCheckEngine(t *testing.T) {
	table := mustDefaultTable(t)

	tests := []struct {
		name        string
		edition     edition.Edition
		engine      string
		version     string
		wantWarning bool
		wantMin     string
	}{
		{"exact minimum", edition.ES2018, "chrome", "60", false, ""},
		{"newer", edition.ES2018, "chrome", "120.0.1", false, ""},
		{"older", edition.ES2020, "chrome", "85", true, "91"},
		{"minor segments", edition.ES2022, "node", "16.9", true, "16.11"},
		{"minor segments ok", edition.ES2022, "node", "16.12", false, ""},
		{"dropped engine", edition.ES2015, "ie", "11", true, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, err := table.CheckEngine(tt.edition, tt.engine, tt.version)
			if err != nil {
				t.Fatalf("CheckEngine() error = %v", err)
			}
			if (w != nil) != tt.wantWarning {
				t.Fatalf("CheckEngine() warning = %v, want warning %v", w, tt.wantWarning)
			}
			if w != nil && w.MinVersion != tt.wantMin {
				t.Errorf("MinVersion = %q, want %q", w.MinVersion, tt.wantMin)
			}
			if got := table.IsSupported(tt.edition, tt.engine, tt.version); got == tt.wantWarning {
				t.Errorf("IsSupported() = %v, want %v", got, !tt.wantWarning)
			}
		})
	}
}

func TestCheckEngineErrors(t *testing.T) {
	table := mustDefaultTable(t)

	_, err := table.CheckEngine(edition.ESNext, "chrome", "100")
	var unknown *UnknownEditionError
	if !errors.As(err, &unknown) {
		t.Errorf("CheckEngine(esnext) error = %v, want *UnknownEditionError", err)
	}

	if _, err := table.CheckEngine(edition.ES2015, "chrome", "latest"); err == nil {
		t.Error("CheckEngine() with a bad version should fail")
	}
	if table.IsSupported(edition.ES2015, "chrome", "latest") {
		t.Error("IsSupported() with a bad version should be false")
	}
}

func TestEngineWarningString(t *testing.T) {
	w := &EngineWarning{Edition: edition.ES2020, Engine: "chrome", MinVersion: "91", UsedVersion: "85"}
	if got, want := w.String(), "es2020 requires chrome 91+, but target is 85"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
	w = &EngineWarning{Edition: edition.ES2015, Engine: "ie", UsedVersion: "11"}
	if got, want := w.String(), "ie does not support es2015 at any version (target is 11)"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}
