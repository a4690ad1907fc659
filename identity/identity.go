// Package identity provides opaque, comparable, hashable, clonable handles
// used throughout the graph, signal, and layout packages as cache keys and
// change-detection tokens ("which thing", not "which value").
package identity

import (
	"fmt"
	"reflect"

	"github.com/cespare/xxhash/v2"
	"github.com/google/uuid"
)

// ID is an opaque identity value. Concrete kinds (null, scalar, reference,
// pair, opaque) all satisfy it; callers never type-switch on the concrete
// kind — equality, ordering, and hashing are defined abstractly.
type ID interface {
	// Equal reports whether two identities denote "the same thing".
	Equal(other ID) bool
	// Less establishes a total order across all identities, primarily so
	// identities can be used as stable sort/diff keys. Different concrete
	// kinds order by a stable kind tag; NULL_ID is the absolute minimum.
	Less(other ID) bool
	// Hash returns a hash consistent with Equal: a.Equal(b) implies
	// a.Hash() == b.Hash().
	Hash() uint64
	// Capture deep-clones this identity into an owned form that remains
	// equal to the source even after the source's underlying data changes
	// or goes away.
	Capture() ID

	kind() kind
}

type kind int

const (
	kindNull kind = iota
	kindValue
	kindRef
	kindPair
	kindOpaque
)

// Null is the distinguished identity that compares equal only to itself.
var Null ID = nullID{}

type nullID struct{}

func (nullID) Equal(other ID) bool { return other.kind() == kindNull }
func (nullID) Less(other ID) bool  { return other.kind() != kindNull }
func (nullID) Hash() uint64        { return 0 }
func (n nullID) Capture() ID       { return n }
func (nullID) kind() kind          { return kindNull }

// valueID wraps a comparable Go value whose own == defines identity.
type valueID[T comparable] struct {
	v T
}

// Value constructs an identity from a comparable scalar value: two Value
// identities over the same T are equal iff the wrapped values are ==.
func Value[T comparable](v T) ID {
	return valueID[T]{v: v}
}

func (v valueID[T]) Equal(other ID) bool {
	o, ok := other.(valueID[T])
	return ok && o.v == v.v
}

func (v valueID[T]) Less(other ID) bool {
	if other.kind() != kindValue {
		return kindValue < other.kind()
	}
	o, ok := other.(valueID[T])
	if !ok {
		// Different T instantiations of valueID: order by string
		// rendering so Less stays total without reflection games.
		return fmt.Sprint(v.v) < fmt.Sprintf("%T", other)
	}
	return fmt.Sprint(v.v) < fmt.Sprint(o.v)
}

func (v valueID[T]) Hash() uint64 {
	return xxhash.Sum64String(fmt.Sprintf("%T:%v", v.v, v.v))
}

func (v valueID[T]) Capture() ID { return v }
func (valueID[T]) kind() kind    { return kindValue }

// refID is identity by reference: the referenced value's byte-image (taken
// via fmt, since the core never needs to compare raw pointers across
// processes) defines equality for as long as the reference is live.
type refID struct {
	ptr   any
	bytes string
}

// ByReference builds an identity whose equality tracks a pointer's
// referenced content at the moment the identity is built — suitable for a `direct`
// signal over `&mut v`, whose id must compare equal across two calls that
// observe an unchanged `v`, even when each call dereferences a distinct
// pointer (e.g. a freshly taken `&v` local on every read).
func ByReference(ptr any) ID {
	return refID{ptr: ptr, bytes: fmt.Sprintf("%v", deref(ptr))}
}

func deref(ptr any) any {
	type derefer interface{ Deref() any }
	if d, ok := ptr.(derefer); ok {
		return d.Deref()
	}
	if rv := reflect.ValueOf(ptr); rv.Kind() == reflect.Pointer && !rv.IsNil() {
		return rv.Elem().Interface()
	}
	return ptr
}

func (r refID) Equal(other ID) bool {
	o, ok := other.(refID)
	return ok && r.bytes == o.bytes
}

func (r refID) Less(other ID) bool {
	if other.kind() != kindRef {
		return kindRef < other.kind()
	}
	o, _ := other.(refID)
	return r.bytes < o.bytes
}

func (r refID) Hash() uint64 {
	return xxhash.Sum64String(r.bytes)
}

// Capture deep-clones a reference identity into an owned copy of its
// byte-image without the pointer, so it keeps comparing equal to the source
// identity after the referenced value mutates or is freed.
func (r refID) Capture() ID {
	return refID{bytes: r.bytes}
}

func (refID) kind() kind { return kindRef }

// pairID composes two identities without copying their components.
type pairID struct {
	a, b ID
}

// Combine builds a composite identity from two existing ones — used by
// operators whose result id must change whenever either operand's id
// changes, and by projections whose id must combine the parent's id with a
// field/index key.
func Combine(a, b ID) ID {
	return pairID{a: a, b: b}
}

func (p pairID) Equal(other ID) bool {
	o, ok := other.(pairID)
	return ok && p.a.Equal(o.a) && p.b.Equal(o.b)
}

func (p pairID) Less(other ID) bool {
	if other.kind() != kindPair {
		return kindPair < other.kind()
	}
	o, _ := other.(pairID)
	if !p.a.Equal(o.a) {
		return p.a.Less(o.a)
	}
	return p.b.Less(o.b)
}

func (p pairID) Hash() uint64 {
	return p.a.Hash()*1099511628211 ^ p.b.Hash()
}

func (p pairID) Capture() ID {
	return pairID{a: p.a.Capture(), b: p.b.Capture()}
}

func (pairID) kind() kind { return kindPair }

// Ref returns an identity that forwards to an existing id without copying
// it — for callers that need to pass along a reference to an existing id.
func Ref(id ID) ID { return id }

// opaqueID is a synthetic, globally-unique identity for callers with no
// natural key (anonymous loop items, system-minted ids).
type opaqueID struct {
	u uuid.UUID
}

// NewOpaque mints a fresh, globally-unique identity.
func NewOpaque() ID {
	return opaqueID{u: uuid.New()}
}

func (o opaqueID) Equal(other ID) bool {
	p, ok := other.(opaqueID)
	return ok && p.u == o.u
}

func (o opaqueID) Less(other ID) bool {
	if other.kind() != kindOpaque {
		return kindOpaque < other.kind()
	}
	p, _ := other.(opaqueID)
	return o.u.String() < p.u.String()
}

func (o opaqueID) Hash() uint64 {
	return xxhash.Sum64(o.u[:])
}

func (o opaqueID) Capture() ID { return o }
func (opaqueID) kind() kind    { return kindOpaque }

// Equal, Less, and Hash are free functions mirroring the ID methods of the
// same name, for callers that prefer not to use method syntax directly on
// an ID.
func Equal(a, b ID) bool { return a.Equal(b) }
func Less(a, b ID) bool  { return a.Less(b) }
func Hash(a ID) uint64   { return a.Hash() }

// Capture deep-clones id into an owned form.
func Capture(id ID) ID { return id.Capture() }
