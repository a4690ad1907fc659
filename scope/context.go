// Package scope implements the traversal scaffolding: the
// per-traversal context struct, the top-level traversal scope with its
// panic-safe commit, scoped block activation, the cache-clearing disabler,
// and the control-flow adapters (if/switch/for/while/event-if/untracked)
// that controllers use instead of touching the data graph directly.
package scope

import (
	"reflect"

	"github.com/corewidgets/uicore/graph"
)

// Context is the small, pass-by-value struct threaded through the
// controller on every call's "data traversal context": it carries
// the active block, an untracked flag, and a bag of user-installable typed
// extensions (e.g. a renderer handle). Extensions are looked up dynamically
// by type, per the reference's tag-based mode.
type Context struct {
	traversal  *Traversal
	block      *graph.Block
	untracked  bool
	extensions map[reflect.Type]any
}

// Traversal returns the owning traversal, for adapters and signal code that
// need access to scheduling (pending-clear bookkeeping, the underlying
// graph) beyond the active block.
func (c Context) Traversal() *Traversal { return c.traversal }

// Block returns the currently active data block. It panics with a
// *graph.ProgrammerError if called from inside an untracked scope, since
// untracked bodies must not be able to allocate data nodes.
func (c Context) Block() *graph.Block {
	if c.untracked {
		panic(graph.NewUntrackedAccess())
	}
	return c.block
}

// Untracked reports whether this context forbids data graph access.
func (c Context) Untracked() bool { return c.untracked }

// extensionKey identifies a bag entry by the extension's static type.
func extensionKey[T any]() reflect.Type {
	return reflect.TypeOf((*T)(nil)).Elem()
}

// WithExtension returns a derived context carrying v, retrievable later via
// Extension[T]. The bag is copied, not mutated in place, so sibling
// branches of a control-flow adapter never see each other's extensions.
func WithExtension[T any](ctx Context, v T) Context {
	next := ctx
	m := make(map[reflect.Type]any, len(ctx.extensions)+1)
	for k, val := range ctx.extensions {
		m[k] = val
	}
	m[extensionKey[T]()] = v
	next.extensions = m
	return next
}

// Extension retrieves a previously installed extension of type T.
func Extension[T any](ctx Context) (T, bool) {
	var zero T
	v, ok := ctx.extensions[extensionKey[T]()]
	if !ok {
		return zero, false
	}
	return v.(T), true
}

func (c Context) withBlock(b *graph.Block) Context {
	next := c
	next.block = b
	next.untracked = false
	return next
}
