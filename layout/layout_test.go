package layout_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/corewidgets/uicore/layout"
)

// fixedNode is a Node stub with caller-supplied requirements, used to
// isolate container logic from the Leaf implementation in tests.
type fixedNode struct {
	hreq       layout.Requirements
	vreq       func(width layout.Scalar) layout.Requirements
	lastAssign layout.Assignment
	assignCount int
}

func (f *fixedNode) HorizontalRequirements() layout.Requirements { return f.hreq }
func (f *fixedNode) VerticalRequirements(width layout.Scalar) layout.Requirements {
	return f.vreq(width)
}
func (f *fixedNode) SetRelativeAssignment(a layout.Assignment) {
	f.lastAssign = a
	f.assignCount++
}

func constVertical(r layout.Requirements) func(layout.Scalar) layout.Requirements {
	return func(layout.Scalar) layout.Requirements { return r }
}

func counterAt(n *uint64) layout.Counter {
	return func() uint64 { return *n }
}

func TestResolveAbsoluteLengthHonorsMagnification(t *testing.T) {
	style := layout.StyleInfo{Magnification: 2}
	got := layout.ResolveAbsoluteLength(96, 96, style, layout.AxisHorizontal, 10, layout.UnitPixel)
	assert.Equal(t, layout.Scalar(20), got)

	unmagnified := layout.ResolveAbsoluteLength(96, 96, style, layout.AxisHorizontal, 10, layout.UnitUnmagnifiedPixel)
	assert.Equal(t, layout.Scalar(10), unmagnified, "unmagnified pixels bypass magnification")
}

func TestResolveAbsoluteLengthCharIsAxisDependent(t *testing.T) {
	style := layout.StyleInfo{CharWidth: 8, LineHeight: 16}
	w := layout.ResolveAbsoluteLength(96, 96, style, layout.AxisHorizontal, 3, layout.UnitChar)
	h := layout.ResolveAbsoluteLength(96, 96, style, layout.AxisVertical, 3, layout.UnitChar)
	assert.Equal(t, layout.Scalar(24), w)
	assert.Equal(t, layout.Scalar(48), h)
}

func TestCacherSkipsRecomputeUntilContentChanges(t *testing.T) {
	cacher := layout.NewCacher(layout.Spec{}, nil)
	var counter uint64 = 1
	calls := 0
	compute := func() layout.Requirements {
		calls++
		return layout.Requirements{Size: 10}
	}

	r1 := layout.CacheHorizontalLayoutRequirements(cacher, counter, compute)
	r2 := layout.CacheHorizontalLayoutRequirements(cacher, counter, compute)
	assert.Equal(t, r1, r2)
	assert.Equal(t, 1, calls, "second call at the same counter must not recompute")

	cacher.RecordContentChange()
	counter = 2
	_ = layout.CacheHorizontalLayoutRequirements(cacher, counter, compute)
	assert.Equal(t, 2, calls, "a recorded content change forces recomputation")
}

func TestRecordContentChangePropagatesToParentAndSiblings(t *testing.T) {
	parent := layout.NewCacher(layout.Spec{}, nil)
	parent.RecordContentChange() // no-op: a new cacher already starts fully invalid
	child := layout.NewCacher(layout.Spec{}, parent)
	sibling := layout.NewCacher(layout.Spec{}, parent)
	child.SetSiblings([]*layout.Cacher{sibling})
	sibling.SetSiblings([]*layout.Cacher{child})

	var n uint64 = 1
	layout.CacheHorizontalLayoutRequirements(child, n, func() layout.Requirements { return layout.Requirements{} })
	layout.CacheHorizontalLayoutRequirements(sibling, n, func() layout.Requirements { return layout.Requirements{} })
	layout.CacheHorizontalLayoutRequirements(parent, n, func() layout.Requirements { return layout.Requirements{} })

	parentCalls := 0
	layout.CacheHorizontalLayoutRequirements(parent, n, func() layout.Requirements { parentCalls++; return layout.Requirements{} })
	require.Equal(t, 0, parentCalls, "parent cache is warm before any content change")

	child.RecordContentChange()

	layout.CacheHorizontalLayoutRequirements(parent, n+1, func() layout.Requirements { parentCalls++; return layout.Requirements{} })
	sibCalls := 0
	layout.CacheHorizontalLayoutRequirements(sibling, n, func() layout.Requirements { sibCalls++; return layout.Requirements{} })

	assert.Equal(t, 1, parentCalls, "content change on a child propagates up to the parent")
	assert.Equal(t, 1, sibCalls, "content change on one grid row propagates to its sibling rows")
}

func TestRowDistributesSurplusProportionallyToGrowth(t *testing.T) {
	var n uint64 = 1
	a := &fixedNode{hreq: layout.Requirements{Size: 10, Growth: 1}, vreq: constVertical(layout.Requirements{Size: 5})}
	b := &fixedNode{hreq: layout.Requirements{Size: 10, Growth: 3}, vreq: constVertical(layout.Requirements{Size: 5})}
	row := layout.NewRow(layout.Spec{}, nil, counterAt(&n), []layout.Node{a, b})

	req := row.HorizontalRequirements()
	assert.Equal(t, layout.Scalar(20), req.Size)
	assert.Equal(t, 4.0, req.Growth)

	row.SetRelativeAssignment(layout.Assignment{Region: layout.Box{Size: layout.Vector{X: 40, Y: 5}}})
	// surplus of 20 splits 1:3 between a and b → +5 and +15
	assert.Equal(t, layout.Scalar(15), a.lastAssign.Region.Size.X)
	assert.Equal(t, layout.Scalar(25), b.lastAssign.Region.Size.X)
}

func TestColumnBaselineIsFirstChildAscent(t *testing.T) {
	var n uint64 = 1
	first := &fixedNode{vreq: constVertical(layout.Requirements{Size: 10, Ascent: 4, Descent: 6})}
	second := &fixedNode{vreq: constVertical(layout.Requirements{Size: 8})}
	col := layout.NewColumn(layout.Spec{}, nil, counterAt(&n), []layout.Node{first, second})

	req := col.VerticalRequirements(100)
	assert.Equal(t, layout.Scalar(18), req.Size, "total height sums child heights")
	assert.Equal(t, layout.Scalar(4), req.Ascent, "baseline is the first child's ascent")
	assert.Equal(t, layout.Scalar(14), req.Descent, "descent accumulates subsequent children's heights")
}

func TestClampedCentersChildWhenRegionLarger(t *testing.T) {
	var n uint64 = 1
	child := &fixedNode{hreq: layout.Requirements{Size: 10}, vreq: constVertical(layout.Requirements{Size: 10})}
	clamped := layout.NewClamped(layout.Spec{}, nil, counterAt(&n), child, 10, 10)

	clamped.SetRelativeAssignment(layout.Assignment{Region: layout.Box{Size: layout.Vector{X: 50, Y: 30}}})
	assert.Equal(t, layout.Vector{X: 10, Y: 10}, child.lastAssign.Region.Size)
	assert.Equal(t, layout.Vector{X: 20, Y: 10}, child.lastAssign.Region.Origin, "child is centered within the larger region")
}

func TestClampedZeroOrNegativeMeansNoLimit(t *testing.T) {
	var n uint64 = 1
	child := &fixedNode{hreq: layout.Requirements{Size: 500}, vreq: constVertical(layout.Requirements{Size: 300})}
	clamped := layout.NewClamped(layout.Spec{}, nil, counterAt(&n), child, 0, -1)

	req := clamped.HorizontalRequirements()
	assert.Equal(t, layout.Scalar(500), req.Size, "non-positive clamp means unlimited")
}

func TestFloatingDetachesAndClampsItsOwnSize(t *testing.T) {
	child := &fixedNode{hreq: layout.Requirements{Size: 300}, vreq: constVertical(layout.Requirements{Size: 300, Ascent: 10})}
	floating := layout.NewFloating(child, 0, 0, 100, 100)

	region := floating.Resolve()
	assert.Equal(t, layout.Vector{}, region.Origin, "floating root is assigned at the origin")
	assert.Equal(t, layout.Vector{X: 100, Y: 100}, region.Size, "clamped to the caller-supplied max")
	assert.Equal(t, region, child.lastAssign.Region)
}

func TestGridRowContentChangePropagatesToSiblingRows(t *testing.T) {
	var n uint64 = 1
	grid := layout.NewGrid(layout.Spec{}, nil, counterAt(&n), true, 2)
	a := &fixedNode{hreq: layout.Requirements{Size: 10}, vreq: constVertical(layout.Requirements{Size: 5})}
	b := &fixedNode{hreq: layout.Requirements{Size: 20}, vreq: constVertical(layout.Requirements{Size: 5})}
	row1 := grid.AddRow(layout.Spec{}, []layout.Node{a})
	row2 := grid.AddRow(layout.Spec{}, []layout.Node{b})
	// compute once on each row so neither is left in its initial fully-invalid state
	layout.CacheHorizontalLayoutRequirements(row1.Cache, n, func() layout.Requirements { return layout.Requirements{} })
	layout.CacheHorizontalLayoutRequirements(row2.Cache, n, func() layout.Requirements { return layout.Requirements{} })

	layout.CacheHorizontalLayoutRequirements(row2.Cache, n, func() layout.Requirements { return layout.Requirements{} })
	calls := 0
	layout.CacheHorizontalLayoutRequirements(row2.Cache, n, func() layout.Requirements { calls++; return layout.Requirements{} })
	require.Equal(t, 0, calls)

	row1.Cache.RecordContentChange()
	layout.CacheHorizontalLayoutRequirements(row2.Cache, n, func() layout.Requirements { calls++; return layout.Requirements{} })
	assert.Equal(t, 1, calls, "one grid row's content change invalidates sibling rows too")
}

func TestGridUniformColumnsShareOneRequirement(t *testing.T) {
	var n uint64 = 1
	grid := layout.NewGrid(layout.Spec{}, nil, counterAt(&n), true, 0)
	small := &fixedNode{hreq: layout.Requirements{Size: 5}, vreq: constVertical(layout.Requirements{Size: 5})}
	big := &fixedNode{hreq: layout.Requirements{Size: 25}, vreq: constVertical(layout.Requirements{Size: 5})}
	grid.AddRow(layout.Spec{}, []layout.Node{small})
	grid.AddRow(layout.Spec{}, []layout.Node{big})

	widths := grid.HorizontalRequirements()
	assert.Equal(t, layout.Scalar(25), widths.Size, "uniform grid's single column matches the widest row")
}

func TestLeafResolvesFillAlignment(t *testing.T) {
	var n uint64 = 1
	leaf := layout.NewLeaf(layout.Spec{XAlign: layout.AlignFill, YAlign: layout.AlignFill}, nil, counterAt(&n))
	leaf.Declare(layout.Vector{X: 10, Y: 10}, 4, 6)

	leaf.SetRelativeAssignment(layout.Assignment{Region: layout.Box{Size: layout.Vector{X: 50, Y: 50}}})
	got := layout.CacheRelativeAssignment(leaf.Cache, n, layout.Assignment{Region: layout.Box{Size: layout.Vector{X: 50, Y: 50}}}, func() layout.Assignment {
		t.Fatal("should have been served from cache")
		return layout.Assignment{}
	})
	assert.Equal(t, layout.Vector{X: 50, Y: 50}, got.Region.Size)
}
