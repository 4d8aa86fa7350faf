package syntax

import (
	"fmt"
	"slices"
)

// Target is the deployment environment class. It only matters when a
// latest edition (es2024, esnext) has to be resolved to browserslist.
type Target string

const (
	// TargetAny means no target was configured; latest editions resolve
	// for both node and web.
	TargetAny       Target = ""
	TargetNode      Target = "node"
	TargetWeb       Target = "web"
	TargetWebWorker Target = "web-worker"
)

// ParseTarget validates a configured target name. The empty string is
// [TargetAny].
func ParseTarget(s string) (Target, error) {
	switch t := Target(s); t {
	case TargetAny, TargetNode, TargetWeb, TargetWebWorker:
		return t, nil
	}
	return "", fmt.Errorf("unknown target %q (want node, web or web-worker)", s)
}

var (
	latestNodeQueries = []string{"last 1 node versions"}
	latestWebQueries  = []string{
		"last 1 Chrome versions",
		"last 1 Firefox versions",
		"last 1 Edge versions",
		"last 1 Safari versions",
		"last 1 ios_saf versions",
		"not dead",
	}
)

// LatestQueries returns the queries standing in for "the newest syntax" on
// target. web-worker shares the web queries. TargetAny yields the node
// queries followed by the web ones. The result is a fresh slice.
func LatestQueries(target Target) []string {
	switch target {
	case TargetAny:
		return slices.Concat(latestNodeQueries, latestWebQueries)
	case TargetNode:
		return slices.Clone(latestNodeQueries)
	default:
		return slices.Clone(latestWebQueries)
	}
}
