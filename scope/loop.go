package scope

import "github.com/corewidgets/uicore/graph"

type loopState struct {
	blocks []*graph.Block
}

// While runs body for i = 0, 1, … as long as cond(i) holds. Each iteration
// occupies a nested data block; blocks are created lazily as the loop grows
// and the tail is dropped, in insertion order, when the loop comes up
// shorter than a previous traversal.
func While(ctx Context, cond func(i int) bool, body func(Context, int)) {
	state, _ := graph.GetDataNode[loopState](ctx.Block())
	i := 0
	for cond(i) {
		for len(state.blocks) <= i {
			state.blocks = append(state.blocks, graph.NewBlock())
		}
		blk := state.blocks[i]
		idx := i
		ScopedDataBlock(ctx, blk, func(inner Context) { body(inner, idx) })
		i++
	}
	if len(state.blocks) > i {
		// Truncating drops the tail blocks' only reference; their data
		// nodes (and any named blocks they referenced) are destroyed as
		// a unit, in the insertion order they appear in the slice.
		state.blocks = state.blocks[:i]
	}
}

// For runs body for i = 0, …, n-1. It is While with a fixed iteration count.
func For(ctx Context, n int, body func(Context, int)) {
	While(ctx, func(i int) bool { return i < n }, body)
}
