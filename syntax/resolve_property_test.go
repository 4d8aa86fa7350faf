//go:build property
// +build property

package syntax

import (
	"slices"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/albertocavalcante/go-esx/edition"
)

var descriptorPool = []string{
	"es5", "es6", "ES2015", "es2016", "es2017", "es2018", "es2019",
	"es2020", "es2021", "es2022", "es2023", "es2024", "esnext",
	"Chrome 100", "node 14", "not dead", "fully supports es6-module",
}

func genSyntax() gopter.Gen {
	return gen.SliceOf(gen.IntRange(0, len(descriptorPool)-1)).Map(func(idx []int) Syntax {
		s := make(Syntax, 0, len(idx))
		for _, i := range idx {
			s = append(s, descriptorPool[i])
		}
		return s
	})
}

// TestTargetsPreservesOrderProperty verifies one token per descriptor, in order.
func TestTargetsPreservesOrderProperty(t *testing.T) {
	table := mustTable(t)
	properties := gopter.NewProperties(gopter.DefaultTestParameters())

	properties.Property("token i comes from descriptor i", prop.ForAll(
		func(s Syntax) bool {
			tokens, err := table.Targets(s)
			if err != nil || len(tokens) != len(s) {
				return false
			}
			for i, item := range s {
				if !edition.IsEditionLike(item) {
					if tokens[i] != BrowserslistPrefix+item {
						return false
					}
					continue
				}
				single, err := table.Targets(Syntax{item})
				if err != nil || single[0] != tokens[i] {
					return false
				}
			}
			return true
		},
		genSyntax(),
	))

	properties.TestingRun(t)
}

// TestBrowserslistConcatenatesProperty verifies resolving a list equals
// concatenating each descriptor's own resolution.
func TestBrowserslistConcatenatesProperty(t *testing.T) {
	table := mustTable(t)
	properties := gopter.NewProperties(gopter.DefaultTestParameters())

	properties.Property("list resolution is the concatenation of item resolutions", prop.ForAll(
		func(s Syntax, targetIdx int) bool {
			target := []Target{TargetAny, TargetNode, TargetWeb, TargetWebWorker}[targetIdx]
			got, err := table.Browserslist(s, target)
			if err != nil {
				return false
			}
			var want []string
			for _, item := range s {
				q, err := table.Browserslist(Syntax{item}, target)
				if err != nil {
					return false
				}
				want = append(want, q...)
			}
			return slices.Equal(want, got)
		},
		genSyntax(),
		gen.IntRange(0, 3),
	))

	properties.TestingRun(t)
}
