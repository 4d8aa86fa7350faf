package syntax

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParseTarget(t *testing.T) {
	tests := []struct {
		input   string
		want    Target
		wantErr bool
	}{
		{"", TargetAny, false},
		{"node", TargetNode, false},
		{"web", TargetWeb, false},
		{"web-worker", TargetWebWorker, false},
		{"Web", "", true},
		{"deno", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseTarget(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseTarget(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseTarget(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestLatestQueries(t *testing.T) {
	web := LatestQueries(TargetWeb)
	if diff := cmp.Diff(web, LatestQueries(TargetWebWorker)); diff != "" {
		t.Errorf("web and web-worker differ:\n%s", diff)
	}

	node := LatestQueries(TargetNode)
	if diff := cmp.Diff([]string{"last 1 node versions"}, node); diff != "" {
		t.Errorf("node mismatch (-want +got):\n%s", diff)
	}

	both := LatestQueries(TargetAny)
	if diff := cmp.Diff(append(node, web...), both); diff != "" {
		t.Errorf("any target is not node then web (-want +got):\n%s", diff)
	}

	web[0] = "mutated"
	if LatestQueries(TargetWeb)[0] == "mutated" {
		t.Error("LatestQueries() shares storage between calls")
	}
}
