package scope

import "github.com/corewidgets/uicore/graph"

// Traversal is the top-level scope of a pass over the data graph: it owns
// one in-flight pass over a graph.Graph, the stack discipline for the
// cache-clearing disabler, and the panic-safe commit/abort policy.
type Traversal struct {
	g             *graph.Graph
	gcDisabled    bool
	disablerDepth int
	pending       []*graph.Block // deferred ClearCached calls, while disablerDepth > 0
	safe          SafeRunner
}

// NewTraversal returns a traversal over g. gcDisabled opts this traversal
// out of named-block collection — used for partial (targeted)
// dispatch that must not collect blocks it never visited.
func NewTraversal(g *graph.Graph, gcDisabled bool) *Traversal {
	return &Traversal{g: g, gcDisabled: gcDisabled}
}

// Graph returns the underlying data graph.
func (t *Traversal) Graph() *graph.Graph { return t.g }

// OnPanic installs an observer called with every recovered programmer-error
// panic, before it is converted to a returned error.
func (t *Traversal) OnPanic(fn func(r any)) { t.safe.OnPanic = fn }

// Run begins a traversal, invokes controller with the root context, and on
// normal return commits the graph (running named-block GC unless this
// traversal is GC-disabled). If controller panics with a
// *graph.ProgrammerError, the graph is left uncommitted (Abort) and the
// error is returned instead of panicking further; any other panic value is
// not ours to swallow and propagates to the caller.
func (t *Traversal) Run(controller func(Context)) error {
	t.g.BeginTraversal()
	t.disablerDepth = 0
	t.pending = t.pending[:0]
	onPanic := t.safe.OnPanic
	t.safe.OnPanic = func(r any) {
		t.g.Abort()
		if onPanic != nil {
			onPanic(r)
		}
	}
	defer func() { t.safe.OnPanic = onPanic }()
	return t.safe.Run(func() error {
		root := Context{traversal: t, block: t.g.Root()}
		controller(root)
		return t.g.Commit(t.gcDisabled)
	})
}

// Deactivate clears b's cached slots now, unless a cache-clearing disabler
// is currently in scope, in which case the clear is deferred until the
// disabler's outermost instance exits without b being reactivated first.
// Control-flow adapters call this for every sibling branch/iteration they
// do not enter on a given traversal; it is exported so custom adapters can
// follow the same discipline.
func (t *Traversal) Deactivate(b *graph.Block) {
	if t.disablerDepth > 0 {
		t.pending = append(t.pending, b)
		return
	}
	b.ClearCached()
}

// cancelPendingClear removes b from the deferred-clear list, called
// whenever b is reactivated (re-entered) before a disabler flushes.
func (t *Traversal) cancelPendingClear(b *graph.Block) {
	if len(t.pending) == 0 {
		return
	}
	for i, p := range t.pending {
		if p == b {
			t.pending = append(t.pending[:i], t.pending[i+1:]...)
			return
		}
	}
}

// ScopedCacheClearingDisabler suppresses cache clearing for blocks
// deactivated inside body; they remember they need clearing, and the
// outermost enclosing disabler clears them when it exits, unless they are
// re-entered first.
func ScopedCacheClearingDisabler(ctx Context, body func(Context)) {
	t := ctx.traversal
	t.disablerDepth++
	start := len(t.pending)
	defer func() {
		t.disablerDepth--
		if t.disablerDepth == 0 {
			toFlush := append([]*graph.Block(nil), t.pending[start:]...)
			t.pending = t.pending[:start]
			for _, b := range toFlush {
				b.ClearCached()
			}
		}
	}()
	body(ctx)
}

// ScopedDataBlock makes block active for the duration of body, restoring
// the caller's previously active block when body returns (achieved here by
// Go value semantics on Context rather than an explicit stack, since the
// call stack already nests correctly).
func ScopedDataBlock(ctx Context, block *graph.Block, body func(Context)) {
	t := ctx.traversal
	t.cancelPendingClear(block)
	block.Reset()
	body(ctx.withBlock(block))
}
