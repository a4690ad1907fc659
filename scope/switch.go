package scope

import (
	"github.com/corewidgets/uicore/graph"
	"github.com/corewidgets/uicore/identity"
)

type switchState struct {
	nm *graph.NamingMap
}

// Switch dispatches to a case using key as an identity-bearing discriminant:
// each taken case becomes a named block under a naming map owned by this
// call site, so a key keeps its block across traversals. Every Switch call
// site has its own naming map: two call sites given the same key get two
// separate blocks, and case bodies never share a block through fall-through.
func Switch(ctx Context, key identity.ID, manualDelete bool, body func(Context)) {
	state, isNew := graph.GetDataNode[switchState](ctx.Block())
	if isNew {
		state.nm = ctx.traversal.g.NewNamingMap("switch")
	}
	nb := state.nm.Activate(ctx.Block(), key, manualDelete)
	ctx.traversal.cancelPendingClear(&nb.Block)
	body(ctx.withBlock(&nb.Block))
}
