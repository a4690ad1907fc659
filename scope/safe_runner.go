package scope

import "github.com/corewidgets/uicore/graph"

// SafeRunner recovers a panic raised while running a traversal body,
// generalized from a terminal-restoring Recovery/SafeRunner pair to
// data-graph-state cleanup: a *graph.ProgrammerError is converted into a
// returned error, and anything else is re-panicked — this layer only owns
// that one error kind, not arbitrary application panics.
type SafeRunner struct {
	// OnPanic, if set, observes every recovered panic value before it is
	// classified — used to log programmer errors without swallowing them.
	OnPanic func(r any)
}

// Run executes fn, recovering a *graph.ProgrammerError panic into an error
// return. Any other panic value propagates unchanged.
func (s *SafeRunner) Run(fn func() error) (err error) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		if s.OnPanic != nil {
			s.OnPanic(r)
		}
		if perr, ok := r.(*graph.ProgrammerError); ok {
			err = perr
			return
		}
		panic(r)
	}()
	return fn()
}
