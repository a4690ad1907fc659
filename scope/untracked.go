package scope

// Untracked runs body with data-graph access removed from the propagated
// context: the body cannot allocate data nodes, so it is safe for
// pure control flow (e.g. computing a condition) that must not affect the
// graph's shape. Calling ctx.Block() inside body panics with a
// *graph.ProgrammerError.
func Untracked(ctx Context, body func(Context)) {
	next := ctx
	next.block = nil
	next.untracked = true
	body(next)
}
