package signal

import "github.com/corewidgets/uicore/identity"

// valueSignal is value(v): read-only, value-typed id.
type valueSignal[T comparable] struct {
	Base[T]
	v T
}

// Value returns a read-only signal over a fixed comparable value.
func Value[T comparable](v T) Signal[T] {
	return &valueSignal[T]{v: v}
}

func (s *valueSignal[T]) Capability() Capability { return Capability{Reading: Readable} }
func (s *valueSignal[T]) HasValue() bool         { return true }
func (s *valueSignal[T]) ValueID() identity.ID   { return identity.Value(s.v) }
func (s *valueSignal[T]) Read() T                { return s.v }

// directSignal is direct(&mut v): duplex, identity derived from the
// pointer's current byte-image.
type directSignal[T any] struct {
	Base[T]
	ptr *T
}

// Direct returns a duplex signal over an existing variable's address.
func Direct[T any](ptr *T) Signal[T] {
	return &directSignal[T]{ptr: ptr}
}

func (s *directSignal[T]) Capability() Capability {
	return Capability{Reading: Movable, Writing: Clearable}
}
func (s *directSignal[T]) HasValue() bool       { return true }
func (s *directSignal[T]) ValueID() identity.ID { return identity.ByReference(s.ptr) }
func (s *directSignal[T]) Read() T              { return *s.ptr }
func (s *directSignal[T]) MoveOut() T {
	v := *s.ptr
	var zero T
	*s.ptr = zero
	return v
}
func (s *directSignal[T]) DestructiveRef() *T { return s.ptr }
func (s *directSignal[T]) ReadyToWrite() bool { return true }
func (s *directSignal[T]) Write(v T) (identity.ID, error) {
	*s.ptr = v
	return s.ValueID(), nil
}
func (s *directSignal[T]) Clear() {
	var zero T
	*s.ptr = zero
}

// emptySignal is empty<T>(): never has a value, under any capability.
type emptySignal[T any] struct{ Base[T] }

// Empty returns a signal that never has a value.
func Empty[T any]() Signal[T] {
	return emptySignal[T]{}
}

func (emptySignal[T]) Capability() Capability { return Capability{Reading: Readable} }

// Lambda is a signal whose operations are supplied as closures, for
// controller code that needs a custom predicate/accessor pair rather than
// one of the stock primitives.
type Lambda[T any] struct {
	Base[T]
	Cap            Capability
	HasValueFn     func() bool
	ValueIDFn      func() identity.ID
	ReadFn         func() T
	ReadyToWriteFn func() bool
	WriteFn        func(T) (identity.ID, error)
	ClearFn        func()
}

func (l *Lambda[T]) Capability() Capability { return l.Cap }

func (l *Lambda[T]) HasValue() bool {
	if l.HasValueFn == nil {
		return false
	}
	return l.HasValueFn()
}

func (l *Lambda[T]) ValueID() identity.ID {
	if l.ValueIDFn == nil {
		return identity.Null
	}
	return l.ValueIDFn()
}

func (l *Lambda[T]) Read() T {
	if l.ReadFn == nil {
		return l.Base.Read()
	}
	return l.ReadFn()
}

func (l *Lambda[T]) ReadyToWrite() bool {
	if l.ReadyToWriteFn == nil {
		return false
	}
	return l.ReadyToWriteFn()
}

func (l *Lambda[T]) Write(v T) (identity.ID, error) {
	if l.WriteFn == nil {
		return identity.Null, nil
	}
	return l.WriteFn(v)
}

func (l *Lambda[T]) Clear() {
	if l.ClearFn != nil {
		l.ClearFn()
	}
}
