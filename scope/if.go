package scope

import "github.com/corewidgets/uicore/graph"

// IfBranch is one arm of an if-chain: a condition (nil only for the final
// else arm) paired with the body to run when it is the first true arm.
type IfBranch struct {
	cond   Cond
	body   func(Context)
	isElse bool
}

// When declares a conditional arm.
func When(cond Cond, body func(Context)) IfBranch {
	return IfBranch{cond: cond, body: body}
}

// Else declares the unconditional final arm.
func Else(body func(Context)) IfBranch {
	return IfBranch{isElse: true, body: body}
}

type ifState struct {
	blocks []*graph.Block
}

// If evaluates branches in order and runs the body of the first true one.
// Inactive branches have their cached nodes cleared (honoring any ancestor
// disabler); persistent nodes are left alone. If an earlier
// condition signal reports no value at all, the whole chain — including any
// trailing Else — is skipped.
func If(ctx Context, branches ...IfBranch) {
	ifImpl(ctx, branches, true)
}

// EventIf behaves like If but never clears a skipped branch's cached
// state, so branches taken only intermittently (e.g. once per input event)
// keep their data across the refreshes where they are not taken.
func EventIf(ctx Context, branches ...IfBranch) {
	ifImpl(ctx, branches, false)
}

func ifImpl(ctx Context, branches []IfBranch, clearSkipped bool) {
	state, _ := graph.GetDataNode[ifState](ctx.Block())
	for len(state.blocks) < len(branches) {
		state.blocks = append(state.blocks, graph.NewBlock())
	}

	active := resolveActiveBranch(branches)

	for i, br := range branches {
		blk := state.blocks[i]
		if i == active {
			ScopedDataBlock(ctx, blk, br.body)
			continue
		}
		if clearSkipped {
			ctx.traversal.Deactivate(blk)
		}
	}
}

// resolveActiveBranch returns the index of the first true branch, or -1 if
// none are (including the "poisoned" case where an earlier condition
// signal has no value at all, which suppresses the whole chain).
func resolveActiveBranch(branches []IfBranch) int {
	for i, br := range branches {
		if br.isElse {
			return i
		}
		if !br.cond.HasValue() {
			return -1
		}
		if br.cond.Bool() {
			return i
		}
	}
	return -1
}
