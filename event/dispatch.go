package event

import (
	"github.com/corewidgets/uicore/identity"
	"github.com/corewidgets/uicore/scope"
)

// Dispatch performs targeted delivery: it enters each key of path in
// order via scope.Switch, skipping every other referenced block at each
// level, then invokes leaf once inside the innermost step. leaf still
// receives the full path as an identity.ID slice via closure if needed.
//
// Because this walk deliberately leaves most of the tree unreferenced this
// pass, it must run inside a traversal built with gcDisabled=true — running
// it under a GC-enabled traversal would destroy every named block not on
// path the moment the traversal commits.
func Dispatch(ctx scope.Context, path []identity.ID, leaf func(scope.Context)) {
	if len(path) == 0 {
		leaf(ctx)
		return
	}
	scope.Switch(ctx, path[0], false, func(inner scope.Context) {
		Dispatch(inner, path[1:], leaf)
	})
}

// Route is Dispatch specialized to a single hop, for the common case of an
// event handler descending one container level at a time rather than
// supplying a whole precomputed path up front.
func Route(ctx scope.Context, key identity.ID, body func(scope.Context)) {
	scope.Switch(ctx, key, false, body)
}
