package layout

// Spec is the resolved layout configuration a leaf or container carries:
// its declared size hint, alignment flags, growth factor, and padding.
type Spec struct {
	XAlign  Alignment
	YAlign  Alignment
	Growth  float64
	Padding BorderWidth
}

// Alignment is a per-axis alignment code. The X axis uses AlignCenter,
// AlignStart, AlignEnd, AlignFill, AlignBaseline, AlignGrow; the Y axis uses
// the same set (AlignStart/AlignEnd read as top/bottom).
type Alignment int

const (
	AlignUnset Alignment = iota
	AlignCenter
	AlignStart
	AlignEnd
	AlignFill
	AlignBaseline
	AlignGrow
)

// ResolveAlignment applies the "unset falls back to container default" rule
// from the alignment resolution section; the "grow implies a default growth
// factor of 1" rule is applied separately by ResolveGrowth.
func ResolveAlignment(flag, containerDefault Alignment) Alignment {
	if flag == AlignUnset {
		return containerDefault
	}
	return flag
}

// ResolveGrowth returns the effective growth factor for a spec, applying
// the rule that an AlignGrow axis defaults to growth 1 when none was given.
func ResolveGrowth(align Alignment, growth float64) float64 {
	if align == AlignGrow && growth == 0 {
		return 1
	}
	return growth
}

// Cacher is the per-layout-node memoization record described for the
// layout engine: it holds the node's resolved spec plus three independently
// invalidated cache slots, each keyed on the content-change counter that
// was current when it was last computed.
type Cacher struct {
	Spec Spec

	fullyInvalid bool

	haveHorizontal   bool
	horizontalCount  uint64
	horizontal       Requirements

	haveVertical      bool
	verticalCount     uint64
	verticalWidth     Scalar
	vertical          Requirements

	haveAssignment    bool
	assignmentCount   uint64
	lastAssignmentIn  Assignment
	assignment        Assignment

	parent  *Cacher
	siblings []*Cacher // grid sibling rows; content changes propagate to all of them

	onChange func() // set only on a tree's root cacher; see SetOnChange
}

// NewCacher creates a cacher for a node with the given resolved spec and an
// optional parent cacher to propagate content-change notifications to.
func NewCacher(spec Spec, parent *Cacher) *Cacher {
	return &Cacher{Spec: spec, parent: parent, fullyInvalid: true}
}

// SetOnChange installs a callback invoked every time RecordContentChange
// actually invalidates this cacher (i.e. it wasn't already fully invalid).
// A host system calls this once on the root cacher of a layout tree to
// derive its own content-change counter, which is the sole signal layout
// cachers key their memoized requirements against — so the counter advances
// exactly when some node in the tree records a change, never merely because
// a refresh pass ran.
func (c *Cacher) SetOnChange(fn func()) {
	c.onChange = fn
}

// LastAssignment returns the most recently resolved assignment for this
// node, for introspection/debugging — not used by layout resolution itself.
func (c *Cacher) LastAssignment() (Assignment, bool) {
	return c.assignment, c.haveAssignment
}

// SetSiblings registers the grid sibling cachers that should also be
// invalidated whenever this row records a content change.
func (c *Cacher) SetSiblings(siblings []*Cacher) {
	c.siblings = siblings
}

// RecordContentChange invalidates every cached field on this node, then
// propagates the notification to its parent and, for grid rows, to its
// sibling rows — unless it's already fully invalid, in which case it does
// nothing: either a change was already recorded since the last computation,
// or nothing has been computed yet (a new cacher starts fully invalid).
func (c *Cacher) RecordContentChange() {
	if c.fullyInvalid {
		return
	}
	c.fullyInvalid = true
	c.haveHorizontal = false
	c.haveVertical = false
	c.haveAssignment = false

	if c.onChange != nil {
		c.onChange()
	}

	if c.parent != nil {
		c.parent.RecordContentChange()
	}
	for _, sib := range c.siblings {
		sib.RecordContentChange()
	}
}

// clearFullyInvalid is called once this node has recomputed something,
// since "fully invalid" only tracks whether *any* field has been
// recomputed since the last RecordContentChange.
func (c *Cacher) clearFullyInvalid() {
	c.fullyInvalid = false
}

// CacheHorizontalLayoutRequirements returns the cached horizontal
// requirements if the content-change counter hasn't moved since they were
// last computed, otherwise recomputes via f, resolves against padding, and
// caches the result under the new counter.
func CacheHorizontalLayoutRequirements(c *Cacher, counter uint64, f func() Requirements) Requirements {
	if c.haveHorizontal && c.horizontalCount == counter {
		return c.horizontal
	}
	raw := f()
	resolved := applyHorizontalPadding(raw, c.Spec.Padding)
	c.horizontal = resolved
	c.horizontalCount = counter
	c.haveHorizontal = true
	c.clearFullyInvalid()
	return resolved
}

// CacheVerticalLayoutRequirements is CacheHorizontalLayoutRequirements's
// counterpart, additionally keyed on the assigned width since a node's
// vertical requirements can depend on how wide it's been given to be
// (e.g. flow wrapping).
func CacheVerticalLayoutRequirements(c *Cacher, counter uint64, assignedWidth Scalar, f func() Requirements) Requirements {
	if c.haveVertical && c.verticalCount == counter && c.verticalWidth == assignedWidth {
		return c.vertical
	}
	raw := f()
	resolved := applyVerticalPadding(raw, c.Spec.Padding)
	c.vertical = resolved
	c.verticalCount = counter
	c.verticalWidth = assignedWidth
	c.haveVertical = true
	c.clearFullyInvalid()
	return resolved
}

// CacheRelativeAssignment returns the cached assignment resolution if the
// counter and assignment input both match what was last seen, otherwise
// recomputes via f and caches the new result.
func CacheRelativeAssignment(c *Cacher, counter uint64, in Assignment, f func() Assignment) Assignment {
	if c.haveAssignment && c.assignmentCount == counter && c.lastAssignmentIn == in {
		return c.assignment
	}
	out := f()
	c.assignment = out
	c.assignmentCount = counter
	c.lastAssignmentIn = in
	c.haveAssignment = true
	c.clearFullyInvalid()
	return out
}

func applyHorizontalPadding(r Requirements, pad BorderWidth) Requirements {
	r.Size += pad.Horizontal()
	return r
}

func applyVerticalPadding(r Requirements, pad BorderWidth) Requirements {
	r.Size += pad.Vertical()
	r.Ascent += pad.Top
	r.Descent += pad.Bottom
	return r
}
