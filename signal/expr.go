package signal

import (
	"fmt"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/corewidgets/uicore/identity"
)

// Env supplies an expression's variable bindings by name; a nil entry for a
// referenced variable is treated as "not yet available", poisoning
// HasValue for any expression that reads it.
type Env map[string]Signal[any]

// Expr is a read-only signal whose value is computed by running the
// program compiled from src against a set of named input signals; Read
// runs it afresh on every call. It has_value only when every signal in its
// Env currently has a value.
type Expr struct {
	Base[any]
	src     string
	env     Env
	program *vm.Program
	compErr error

	lastValueID identity.ID
	lastOK      bool
}

// NewExpr compiles src once against env's variable names and returns a
// signal over the result. A compile error makes the signal permanently
// un-valued; callers that need to surface it can inspect CompileError.
func NewExpr(src string, env Env) *Expr {
	varEnv := make(map[string]any, len(env))
	for name := range env {
		varEnv[name] = any(nil)
	}
	program, err := expr.Compile(src, expr.Env(varEnv), expr.AllowUndefinedVariables())
	return &Expr{src: src, env: env, program: program, compErr: err}
}

// CompileError reports a compilation failure, if any.
func (e *Expr) CompileError() error { return e.compErr }

func (e *Expr) Capability() Capability { return Capability{Reading: Readable} }

func (e *Expr) ready() bool {
	if e.compErr != nil {
		return false
	}
	for _, s := range e.env {
		if s == nil || !s.HasValue() {
			return false
		}
	}
	return true
}

func (e *Expr) HasValue() bool { return e.ready() }

func (e *Expr) ValueID() identity.ID {
	if !e.ready() {
		return identity.Null
	}
	id := identity.Value(e.src)
	for name, s := range e.env {
		id = identity.Combine(id, identity.Combine(identity.Value(name), s.ValueID()))
	}
	return id
}

func (e *Expr) Read() any {
	if !e.ready() {
		panic(fmt.Sprintf("signal: read of expression %q with an unready environment", e.src))
	}
	bindings := make(map[string]any, len(e.env))
	for name, s := range e.env {
		bindings[name] = s.Read()
	}
	out, err := vm.Run(e.program, bindings)
	if err != nil {
		panic(fmt.Sprintf("signal: expression %q failed: %v", e.src, err))
	}
	return out
}
