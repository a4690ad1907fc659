package signal

import (
	"strconv"

	"github.com/corewidgets/uicore/identity"
)

// Field projects a struct-valued signal down to one of its fields via an
// explicit getter/setter pair — Go has no pointer-to-member, so the
// projection must be told how to read and rebuild the parent value. The
// projected id combines the parent's id with the field key, so two
// projections of different fields off the same parent never collide.
func Field[S, F any](s Signal[S], key string, get func(S) F, set func(S, F) S) Signal[F] {
	return &fieldSignal[S, F]{parent: s, key: key, get: get, set: set}
}

type fieldSignal[S, F any] struct {
	Base[F]
	parent Signal[S]
	key    string
	get    func(S) F
	set    func(S, F) S
}

func (f *fieldSignal[S, F]) Capability() Capability {
	c := f.parent.Capability()
	// A field projection can never outlive its parent's storage, so it
	// never offers move capability even when the parent does.
	if c.Reading > Readable {
		c.Reading = Readable
	}
	return c
}

func (f *fieldSignal[S, F]) HasValue() bool { return f.parent.HasValue() }

func (f *fieldSignal[S, F]) ValueID() identity.ID {
	return identity.Combine(f.parent.ValueID(), identity.Value(f.key))
}

func (f *fieldSignal[S, F]) Read() F { return f.get(f.parent.Read()) }

func (f *fieldSignal[S, F]) ReadyToWrite() bool {
	return f.parent.HasValue() && f.parent.ReadyToWrite()
}

func (f *fieldSignal[S, F]) Write(v F) (identity.ID, error) {
	if !f.parent.HasValue() {
		return identity.Null, nil
	}
	whole := f.set(f.parent.Read(), v)
	return f.parent.Write(whole)
}

// Index projects a slice-valued signal down to one element by position.
// The projected id combines the parent's id with the integer index.
func Index[T any](s Signal[[]T], i int) Signal[T] {
	get := func(sl []T) T {
		return sl[i]
	}
	set := func(sl []T, v T) []T {
		out := make([]T, len(sl))
		copy(out, sl)
		out[i] = v
		return out
	}
	return &fieldSignal[[]T, T]{
		parent: s,
		key:    "[" + strconv.Itoa(i) + "]",
		get:    get,
		set:    set,
	}
}
