package graph

import (
	"reflect"

	"github.com/corewidgets/uicore/identity"
)

type flavor int

const (
	flavorPersistent flavor = iota
	flavorCached
	flavorKeyed
)

// slot is a single call-site storage cell. It is type-erased so a Block can
// hold a heterogeneous, insertion-ordered sequence of them; typeTag is
// compared on every revisit so a mismatched type is caught deterministically
// rather than corrupting memory.
type slot struct {
	typeTag reflect.Type
	flavor  flavor
	value   any  // always a pointer: *T, or *Keyed[T]
	cleared bool // cached slots only
}

// Block owns an insertion-ordered sequence of data slots plus the named
// blocks it referenced during its most recently completed traversal. It
// corresponds to one "data block": at most one node per call site,
// produced in the same order every well-formed traversal.
type Block struct {
	nodes     []*slot
	cursor    int
	namedRefs []*NamedBlock // this traversal, insertion order
	cacheOK   bool          // cached slots are currently populated (not cleared)
}

// NewBlock returns an empty, ready-to-traverse block.
func NewBlock() *Block {
	return &Block{cacheOK: true}
}

// Reset rewinds the cursor and the named-block reference list to the start
// of a fresh traversal. It does not touch the node slots themselves —
// those are only mutated by GetDataNode/GetCached/GetKeyed as the traversal
// re-visits each call site.
func (b *Block) Reset() {
	b.cursor = 0
	b.namedRefs = b.namedRefs[:0]
}

// CursorComplete reports whether every slot in the block was visited during
// the traversal that just reset-to-here — i.e. the traversal walked off the
// end of the block, matching the recorded slot count exactly.
func (b *Block) CursorComplete() bool {
	return b.cursor == len(b.nodes)
}

// NamedRefs returns the named blocks referenced so far this traversal, in
// call order.
func (b *Block) NamedRefs() []*NamedBlock {
	return b.namedRefs
}

func (b *Block) recordNamedRef(nb *NamedBlock) {
	b.namedRefs = append(b.namedRefs, nb)
}

// ClearCached zeroes every cached slot's payload so it is transparently
// re-initialized on the next activation. Called when the block's scope
// deactivates and no ancestor ScopedCacheClearingDisabler is in effect.
func (b *Block) ClearCached() {
	if !b.cacheOK {
		return
	}
	for _, s := range b.nodes {
		if s.flavor == flavorCached {
			clearSlot(s)
		}
	}
	b.cacheOK = false
}

func clearSlot(s *slot) {
	// Re-zero through reflection since the slot only remembers the
	// pointee's reflect.Type, not its generic parameter.
	ptr := reflect.ValueOf(s.value)
	ptr.Elem().Set(reflect.Zero(ptr.Elem().Type()))
	s.cleared = true
}

func typeTagFor[T any]() reflect.Type {
	var zero T
	return reflect.TypeOf(&zero).Elem()
}

// GetDataNode returns the persistent slot at the block's cursor, creating it
// in place on first visit, and advances the cursor. It panics with a
// *ProgrammerError if the slot already holds a different type.
func GetDataNode[T any](b *Block) (val *T, isNew bool) {
	tag := typeTagFor[T]()
	if b.cursor < len(b.nodes) {
		s := b.nodes[b.cursor]
		if s.typeTag != tag {
			panic(newTypeMismatch(s.typeTag.String(), tag.String()))
		}
		b.cursor++
		return s.value.(*T), false
	}
	v := new(T)
	b.nodes = append(b.nodes, &slot{typeTag: tag, flavor: flavorPersistent, value: v})
	b.cursor++
	return v, true
}

// GetCached is like GetDataNode but the slot is cleared (and reported as new
// again) whenever the enclosing block deactivates without a cache-clearing
// disabler in scope.
func GetCached[T any](b *Block) (val *T, isNew bool) {
	tag := typeTagFor[T]()
	if b.cursor < len(b.nodes) {
		s := b.nodes[b.cursor]
		if s.typeTag != tag {
			panic(newTypeMismatch(s.typeTag.String(), tag.String()))
		}
		b.cursor++
		b.cacheOK = true
		if s.cleared {
			s.value = new(T)
			s.cleared = false
			return s.value.(*T), true
		}
		return s.value.(*T), false
	}
	v := new(T)
	b.nodes = append(b.nodes, &slot{typeTag: tag, flavor: flavorCached, value: v})
	b.cursor++
	b.cacheOK = true
	return v, true
}

// Keyed is a persistent slot that also remembers a captured identity and
// auto-invalidates its payload whenever the key changes.
type Keyed[T any] struct {
	Key   identity.ID
	Value T
}

// GetKeyed returns the keyed slot at the cursor. keyChanged is true on first
// creation and whenever key differs from the previously stored key, in
// which case Value is reset to its zero value.
func GetKeyed[T any](b *Block, key identity.ID) (kv *Keyed[T], keyChanged bool) {
	tag := typeTagFor[Keyed[T]]()
	if b.cursor < len(b.nodes) {
		s := b.nodes[b.cursor]
		if s.typeTag != tag {
			panic(newTypeMismatch(s.typeTag.String(), tag.String()))
		}
		b.cursor++
		kv = s.value.(*Keyed[T])
		if !kv.Key.Equal(key) {
			var zero T
			kv.Key = key.Capture()
			kv.Value = zero
			return kv, true
		}
		return kv, false
	}
	kv = &Keyed[T]{Key: key.Capture()}
	b.nodes = append(b.nodes, &slot{typeTag: tag, flavor: flavorKeyed, value: kv})
	b.cursor++
	return kv, true
}
