package main

import (
	"github.com/corewidgets/uicore/layout"
	"github.com/corewidgets/uicore/system"
)

// demoTree builds a small fixed tree: a row holding two leaves, one fixed
// and one that grows to fill remaining width. It exists purely so the CLI
// has something concrete to dump/validate/trace against without requiring
// any widget set or DSL loader, both of which are out of scope for the
// core this CLI inspects.
type demoTree struct {
	sys    *system.System
	root   *layout.Row
	fixed  *layout.Leaf
	grower *layout.Leaf
}

func newDemoTree() *demoTree {
	sys := system.New()
	counter := sys.Counter()

	fixed := layout.NewLeaf(layout.Spec{XAlign: layout.AlignFill, YAlign: layout.AlignFill}, sys.Root, counter)
	fixed.Declare(layout.Vector{X: 10, Y: 3}, 2, 1)

	grower := layout.NewLeaf(layout.Spec{XAlign: layout.AlignGrow, YAlign: layout.AlignFill, Growth: 1}, sys.Root, counter)
	grower.Declare(layout.Vector{X: 10, Y: 3}, 2, 1)

	row := layout.NewRow(layout.Spec{}, sys.Root, counter, []layout.Node{fixed, grower})

	return &demoTree{sys: sys, root: row, fixed: fixed, grower: grower}
}

func (d *demoTree) resolve(width, height layout.Scalar) {
	d.root.SetRelativeAssignment(layout.Assignment{Region: layout.Box{Size: layout.Vector{X: width, Y: height}}})
}
