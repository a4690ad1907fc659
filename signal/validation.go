package signal

import (
	"fmt"

	"github.com/corewidgets/uicore/identity"
)

// ValidationError is raised when a write is rejected on semantic grounds
// (out of range, fails a business rule) rather than simply being
// unsupported by the signal's capability.
type ValidationError struct {
	Message string
	Cause   error
}

func (e *ValidationError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("signal: validation failed: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("signal: validation failed: %s", e.Message)
}

func (e *ValidationError) Unwrap() error { return e.Cause }

// NewValidationError builds a ValidationError with no further cause.
func NewValidationError(message string) *ValidationError {
	return &ValidationError{Message: message}
}

// Validated wraps s so that writes are checked against check before being
// forwarded; a failing check produces a *ValidationError instead of
// reaching the inner signal.
func Validated[T any](s Signal[T], check func(T) error) Signal[T] {
	return &validatedSignal[T]{inner: s, check: check}
}

type validatedSignal[T any] struct {
	Base[T]
	inner      Signal[T]
	check      func(T) error
	invalid    bool
	invalidErr error
}

func (v *validatedSignal[T]) Capability() Capability { return v.inner.Capability() }
func (v *validatedSignal[T]) HasValue() bool {
	return !v.invalid && v.inner.HasValue()
}
func (v *validatedSignal[T]) ValueID() identity.ID { return v.inner.ValueID() }
func (v *validatedSignal[T]) Read() T              { return v.inner.Read() }
func (v *validatedSignal[T]) ReadyToWrite() bool   { return v.inner.ReadyToWrite() }

func (v *validatedSignal[T]) Write(val T) (identity.ID, error) {
	if err := v.check(val); err != nil {
		ve := &ValidationError{Message: "write rejected", Cause: err}
		if v.Invalidate(ve) {
			return identity.Null, nil
		}
		return identity.Null, ve
	}
	id, err := v.inner.Write(val)
	if err == nil {
		v.invalid, v.invalidErr = false, nil
	}
	return id, err
}

func (v *validatedSignal[T]) Clear() {
	v.inner.Clear()
	v.invalid, v.invalidErr = false, nil
}

func (v *validatedSignal[T]) Invalidate(err error) bool {
	v.invalid = true
	v.invalidErr = err
	return true
}

func (v *validatedSignal[T]) IsInvalidated() bool { return v.invalid }

// WriteSignal performs a single write against s, implementing the
// invalidate-or-rethrow absorption rule: if s accepts responsibility for
// the error via Invalidate (returning true), WriteSignal reports no error
// to the caller — the signal itself now reports IsInvalidated() and
// HasValue() false until cleared or overwritten successfully. If s
// declines responsibility, the error propagates to the caller unchanged.
func WriteSignal[T any](s Signal[T], v T) error {
	_, err := s.Write(v)
	if err == nil {
		return nil
	}
	if s.Invalidate(err) {
		return nil
	}
	return err
}
