package signal

import "github.com/corewidgets/uicore/identity"

// Map applies a pure pointwise function to a single read-only operand: the
// result has_value iff the operand does, and its id combines a tag for the
// function with the operand's id so that distinct Map call sites over the
// same operand id do not collide.
func Map[T, R any](a Signal[T], tag string, f func(T) R) Signal[R] {
	return &lazy1[T, R]{a: a, tag: tag, f: f}
}

type lazy1[T, R any] struct {
	Base[R]
	a   Signal[T]
	tag string
	f   func(T) R
}

func (l *lazy1[T, R]) Capability() Capability { return Capability{Reading: Readable} }
func (l *lazy1[T, R]) HasValue() bool         { return l.a.HasValue() }
func (l *lazy1[T, R]) ValueID() identity.ID {
	return identity.Combine(identity.Value(l.tag), l.a.ValueID())
}
func (l *lazy1[T, R]) Read() R { return l.f(l.a.Read()) }

// Combine2 applies a pure pointwise binary function to two read-only
// operands: has_value is the AND of both operands, and the result id
// combines a tag with both operand ids. This is the general shape behind
// the arithmetic, bitwise, and comparison operators below.
func Combine2[A, B, R any](a Signal[A], b Signal[B], tag string, f func(A, B) R) Signal[R] {
	return &lazy2[A, B, R]{a: a, b: b, tag: tag, f: f}
}

type lazy2[A, B, R any] struct {
	Base[R]
	a   Signal[A]
	b   Signal[B]
	tag string
	f   func(A, B) R
}

func (l *lazy2[A, B, R]) Capability() Capability { return Capability{Reading: Readable} }
func (l *lazy2[A, B, R]) HasValue() bool         { return l.a.HasValue() && l.b.HasValue() }
func (l *lazy2[A, B, R]) ValueID() identity.ID {
	return identity.Combine(identity.Value(l.tag), identity.Combine(l.a.ValueID(), l.b.ValueID()))
}
func (l *lazy2[A, B, R]) Read() R { return l.f(l.a.Read(), l.b.Read()) }

// Numeric is the set of built-in types the arithmetic operators accept.
type Numeric interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

func Add[T Numeric](a, b Signal[T]) Signal[T] { return Combine2(a, b, "+", func(x, y T) T { return x + y }) }
func Sub[T Numeric](a, b Signal[T]) Signal[T] { return Combine2(a, b, "-", func(x, y T) T { return x - y }) }
func Mul[T Numeric](a, b Signal[T]) Signal[T] { return Combine2(a, b, "*", func(x, y T) T { return x * y }) }
func Div[T Numeric](a, b Signal[T]) Signal[T] { return Combine2(a, b, "/", func(x, y T) T { return x / y }) }

func Less[T Numeric](a, b Signal[T]) Signal[bool] {
	return Combine2(a, b, "<", func(x, y T) bool { return x < y })
}
func LessEq[T Numeric](a, b Signal[T]) Signal[bool] {
	return Combine2(a, b, "<=", func(x, y T) bool { return x <= y })
}
func Greater[T Numeric](a, b Signal[T]) Signal[bool] {
	return Combine2(a, b, ">", func(x, y T) bool { return x > y })
}
func GreaterEq[T Numeric](a, b Signal[T]) Signal[bool] {
	return Combine2(a, b, ">=", func(x, y T) bool { return x >= y })
}

func EqualTo[T comparable](a, b Signal[T]) Signal[bool] {
	return Combine2(a, b, "==", func(x, y T) bool { return x == y })
}
func NotEqualTo[T comparable](a, b Signal[T]) Signal[bool] {
	return Combine2(a, b, "!=", func(x, y T) bool { return x != y })
}

func Not(a Signal[bool]) Signal[bool] { return Map(a, "!", func(x bool) bool { return !x }) }

// And implements short-circuit &&: it reports has_value as soon as either
// operand is known to be false, even if the other operand currently has no
// value; otherwise both operands must have values, per the asymmetry
// decided for the two short-circuit logical operators.
func And(a, b Signal[bool]) Signal[bool] {
	return &shortCircuit{a: a, b: b, zero: false, tag: "&&"}
}

// Or implements short-circuit ||: it reports has_value as soon as either
// operand is known to be true; otherwise both operands must have values.
func Or(a, b Signal[bool]) Signal[bool] {
	return &shortCircuit{a: a, b: b, zero: true, tag: "||"}
}

// shortCircuit backs both And and Or: zero is the value that short-circuits
// the whole expression the moment an operand is observed to equal it.
type shortCircuit struct {
	Base[bool]
	a, b Signal[bool]
	zero bool
	tag  string
}

func (s *shortCircuit) Capability() Capability { return Capability{Reading: Readable} }

func (s *shortCircuit) HasValue() bool {
	if s.a.HasValue() && s.a.Read() == s.zero {
		return true
	}
	if s.b.HasValue() && s.b.Read() == s.zero {
		return true
	}
	return s.a.HasValue() && s.b.HasValue()
}

func (s *shortCircuit) ValueID() identity.ID {
	switch {
	case s.a.HasValue() && s.a.Read() == s.zero:
		return identity.Combine(identity.Value(s.tag), s.a.ValueID())
	case s.b.HasValue() && s.b.Read() == s.zero:
		return identity.Combine(identity.Value(s.tag), s.b.ValueID())
	default:
		return identity.Combine(identity.Value(s.tag), identity.Combine(s.a.ValueID(), s.b.ValueID()))
	}
}

func (s *shortCircuit) Read() bool {
	switch {
	case s.a.HasValue() && s.a.Read() == s.zero:
		return s.zero
	case s.b.HasValue() && s.b.Read() == s.zero:
		return s.zero
	default:
		return s.a.Read() && s.b.Read() // zero already ruled out on both sides for Or by De Morgan symmetry
	}
}

// CompoundAssign desugars `a op= b` into a read-modify-write: it reads a
// and b, computes op(a, b), and writes the result back into a, returning
// whatever id a.Write produced (or the zero id and a no-op if either
// operand currently has no value or a is not ready to write).
func CompoundAssign[T any](a Signal[T], b Signal[T], op func(T, T) T) (identity.ID, error) {
	if !a.HasValue() || !b.HasValue() || !a.ReadyToWrite() {
		return identity.Null, nil
	}
	return a.Write(op(a.Read(), b.Read()))
}

// Conditional is the ternary operator: it reads cond and selects whenTrue
// or whenFalse's value, but only evaluates has_value/read on the branch
// actually selected — the unselected branch's absence of a value does not
// poison the result. The id encodes which branch was taken together with
// that branch's id, so switching branches always changes the id even if
// the two branches momentarily carry equal values.
func Conditional[T any](cond Signal[bool], whenTrue, whenFalse Signal[T]) Signal[T] {
	return &conditionalSignal[T]{cond: cond, whenTrue: whenTrue, whenFalse: whenFalse}
}

type conditionalSignal[T any] struct {
	Base[T]
	cond               Signal[bool]
	whenTrue, whenFalse Signal[T]
}

func (c *conditionalSignal[T]) Capability() Capability { return Capability{Reading: Readable} }

func (c *conditionalSignal[T]) branch() (Signal[T], bool) {
	if !c.cond.HasValue() {
		return nil, false
	}
	if c.cond.Read() {
		return c.whenTrue, true
	}
	return c.whenFalse, true
}

func (c *conditionalSignal[T]) HasValue() bool {
	b, ok := c.branch()
	return ok && b.HasValue()
}

func (c *conditionalSignal[T]) ValueID() identity.ID {
	b, ok := c.branch()
	if !ok {
		return identity.Null
	}
	return identity.Combine(identity.Value(c.cond.Read()), b.ValueID())
}

func (c *conditionalSignal[T]) Read() T {
	b, _ := c.branch()
	return b.Read()
}
