package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/corewidgets/uicore/layout"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check layout cache soundness on the demo tree: repeated resolves at an unchanged size must not recompute",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(strings.Repeat("=", 60))
		fmt.Println("Layout cache soundness report")
		fmt.Println(strings.Repeat("=", 60))

		tree := newDemoTree()
		calls := 0
		probe := layout.NewLeaf(layout.Spec{}, nil, tree.sys.Counter())
		probe.Declare(layout.Vector{X: 5, Y: 1}, 1, 0)

		// Wrap the row in a counting shim by recomputing the fixed leaf's own
		// requirements directly through the cacher helper, since Leaf itself
		// doesn't expose a hook — two calls at the same counter must hit the
		// cache and never invoke the compute closure twice.
		counter := tree.sys.Counter()
		req1 := layout.CacheHorizontalLayoutRequirements(tree.fixed.Cache, counter(), func() layout.Requirements {
			calls++
			return layout.Requirements{Size: 10}
		})
		req2 := layout.CacheHorizontalLayoutRequirements(tree.fixed.Cache, counter(), func() layout.Requirements {
			calls++
			return layout.Requirements{Size: 10}
		})

		ok := calls == 1 && req1 == req2
		if ok {
			fmt.Println("PASS: unchanged content-change counter served cached requirements without recomputation")
		} else {
			fmt.Printf("FAIL: expected exactly one recomputation, got %d (req1=%v req2=%v)\n", calls, req1, req2)
		}

		tree.root.SetRelativeAssignment(layout.Assignment{Region: layout.Box{Size: layout.Vector{X: 40, Y: 3}}})
		a1, _ := tree.fixed.Cache.LastAssignment()
		tree.root.SetRelativeAssignment(layout.Assignment{Region: layout.Box{Size: layout.Vector{X: 40, Y: 3}}})
		a2, _ := tree.fixed.Cache.LastAssignment()
		if a1 == a2 {
			fmt.Println("PASS: repeated identical assignment input resolved to the same cached region")
		} else {
			fmt.Println("FAIL: identical assignment input produced different regions")
		}
	},
}
