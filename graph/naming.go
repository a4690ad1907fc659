package graph

import "github.com/corewidgets/uicore/identity"

// NamedBlock is a Block identified by a captured identity inside a
// NamingMap, decoupling state lifetime from source-code position.
type NamedBlock struct {
	Block
	Key          identity.ID
	ManualDelete bool
}

// NamingMap is a hash map from identity to owned named block. It also
// tracks the order named blocks were referenced in, both for the current
// in-flight traversal and for the previously completed one, which the
// garbage collector and the GC-disabled order check both consume.
type NamingMap struct {
	Name           string // for diagnostics only
	buckets        map[uint64][]*NamedBlock
	referenced     []*NamedBlock
	prevReferenced []*NamedBlock
}

// NewNamingMap returns an empty naming map. name is used only in error
// messages.
func NewNamingMap(name string) *NamingMap {
	return &NamingMap{Name: name, buckets: make(map[uint64][]*NamedBlock)}
}

func (nm *NamingMap) find(key identity.ID) *NamedBlock {
	for _, nb := range nm.buckets[key.Hash()] {
		if nb.Key.Equal(key) {
			return nb
		}
	}
	return nil
}

func (nm *NamingMap) insert(nb *NamedBlock) {
	h := nb.Key.Hash()
	nm.buckets[h] = append(nm.buckets[h], nb)
}

func (nm *NamingMap) remove(nb *NamedBlock) {
	h := nb.Key.Hash()
	list := nm.buckets[h]
	for i, cand := range list {
		if cand == nb {
			nm.buckets[h] = append(list[:i], list[i+1:]...)
			return
		}
	}
}

// Activate finds or creates the named block for key, installs it as
// referenced for the current traversal, and records the reference on
// parent, the currently active block.
func (nm *NamingMap) Activate(parent *Block, key identity.ID, manualDelete bool) *NamedBlock {
	nb := nm.find(key)
	isNew := nb == nil
	if isNew {
		nb = &NamedBlock{Block: *NewBlock(), Key: key.Capture(), ManualDelete: manualDelete}
		nm.insert(nb)
	}
	nb.Reset()
	nm.referenced = append(nm.referenced, nb)
	if parent != nil {
		parent.recordNamedRef(nb)
	}
	return nb
}

// Delete explicitly destroys the named block for key, regardless of its
// ManualDelete flag — the only way a manual_delete block is ever removed.
func (nm *NamingMap) Delete(key identity.ID) {
	nb := nm.find(key)
	if nb == nil {
		return
	}
	nm.remove(nb)
	nm.dropFromReferenced(nb)
}

func (nm *NamingMap) dropFromReferenced(nb *NamedBlock) {
	nm.referenced = removeBlock(nm.referenced, nb)
	nm.prevReferenced = removeBlock(nm.prevReferenced, nb)
}

func removeBlock(list []*NamedBlock, target *NamedBlock) []*NamedBlock {
	for i, nb := range list {
		if nb == target {
			return append(list[:i], list[i+1:]...)
		}
	}
	return list
}

// resetTraversal clears the current-traversal reference list ahead of a new
// traversal. Called by Graph.BeginTraversal.
func (nm *NamingMap) resetTraversal() {
	nm.referenced = nm.referenced[:0]
}

// reconcile is the per-naming-map half of named-block GC, run once a
// traversal completes successfully. When gcDisabled, it only performs the
// ordering check and never destroys anything, since a GC-disabled
// traversal is understood to be partial. Blocks first created during that
// traversal have no earlier position and are left out of the check.
func (nm *NamingMap) reconcile(gcDisabled bool) error {
	if gcDisabled {
		known := make(map[*NamedBlock]bool, len(nm.prevReferenced))
		for _, nb := range nm.prevReferenced {
			known[nb] = true
		}
		seen := make([]*NamedBlock, 0, len(nm.referenced))
		for _, nb := range nm.referenced {
			if known[nb] {
				seen = append(seen, nb)
			}
		}
		if !isOrderedSubsequence(seen, nm.prevReferenced) {
			return newOutOfOrder(nm.Name)
		}
		return nil
	}

	referencedSet := make(map[*NamedBlock]bool, len(nm.referenced))
	for _, nb := range nm.referenced {
		referencedSet[nb] = true
	}
	for _, nb := range nm.prevReferenced {
		if referencedSet[nb] || nb.ManualDelete {
			continue
		}
		nm.remove(nb)
	}
	nm.prevReferenced = append(nm.prevReferenced[:0], nm.referenced...)
	return nil
}

// isOrderedSubsequence reports whether every element of sub appears in full,
// in the same relative order (sub need not be contiguous or complete — a
// partial, GC-disabled traversal may only visit some of the blocks).
func isOrderedSubsequence(sub, full []*NamedBlock) bool {
	i := 0
	for _, nb := range full {
		if i < len(sub) && sub[i] == nb {
			i++
		}
	}
	return i == len(sub)
}
