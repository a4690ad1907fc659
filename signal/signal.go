package signal

import "github.com/corewidgets/uicore/identity"

// Signal is a value-producing object with a capability-tiered read/write
// surface and a content-derived identity. Every concrete
// signal and adaptor in this package implements it by embedding Base[T] and
// overriding only the operations its capability actually supports — the
// "capability-parametric base class" strategy.
type Signal[T any] interface {
	Capability() Capability
	HasValue() bool
	ValueID() identity.ID
	// Read returns the current value. Callers must check HasValue first;
	// reading an absent signal is a programmer error and panics.
	Read() T
	// MoveOut returns the value and leaves the signal's backing storage
	// zeroed. Only meaningful when Capability().Reading >= Movable.
	MoveOut() T
	// DestructiveRef exposes a pointer to the backing storage for
	// in-place mutation. Only meaningful when Capability().Reading >=
	// Movable.
	DestructiveRef() *T
	ReadyToWrite() bool
	// Write attempts to store v. A write is accepted (nil error, a valid
	// id), suppressed (not ready — nil error, identity.Null), or rejected
	// with a *ValidationError.
	Write(v T) (identity.ID, error)
	Clear()
	// Invalidate lets the signal locally absorb a validation error raised
	// against it; returning true means the signal entered an invalidated
	// state and the caller should not propagate the error further.
	Invalidate(err error) bool
	IsInvalidated() bool
}

// Base supplies the default "unused" implementation of every Signal
// operation: unreadable, unwritable, never invalidated. Concrete signals
// embed it and override exactly the methods their capability requires.
type Base[T any] struct{}

func (Base[T]) Capability() Capability           { return Capability{} }
func (Base[T]) HasValue() bool                   { return false }
func (Base[T]) ValueID() identity.ID             { return identity.Null }
func (Base[T]) Read() T                          { panic("signal: read of a signal with no value") }
func (Base[T]) MoveOut() T                       { panic("signal: move_out of a non-movable signal") }
func (Base[T]) DestructiveRef() *T               { panic("signal: destructive_ref of a non-movable signal") }
func (Base[T]) ReadyToWrite() bool               { return false }
func (Base[T]) Write(T) (identity.ID, error)     { return identity.Null, nil } // not ready: silent no-op
func (Base[T]) Clear()                           {}
func (Base[T]) Invalidate(error) bool            { return false }
func (Base[T]) IsInvalidated() bool              { return false }
