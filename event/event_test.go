package event_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/corewidgets/uicore/event"
	"github.com/corewidgets/uicore/graph"
	"github.com/corewidgets/uicore/identity"
	"github.com/corewidgets/uicore/scope"
)

func TestCategoryIsRefreshPass(t *testing.T) {
	assert.True(t, event.Refresh.IsRefreshPass())
	assert.True(t, event.MousePress.IsRefreshPass())
	assert.True(t, event.TextInput.IsRefreshPass())
	assert.False(t, event.Render.IsRefreshPass())
	assert.False(t, event.HitTest.IsRefreshPass())
	assert.False(t, event.FocusSuccessorQuery.IsRefreshPass())
	assert.False(t, event.FocusPredecessorQuery.IsRefreshPass())
}

// fakeNode is a minimal event.HitTestNode for hit-test tests.
type fakeNode struct {
	id       identity.ID
	bounds   event.Rect
	children []event.HitTestNode
}

func (f *fakeNode) ID() identity.ID             { return f.id }
func (f *fakeNode) Bounds() event.Rect          { return f.bounds }
func (f *fakeNode) Children() []event.HitTestNode { return f.children }

func TestHitTestPrefersTopmostChild(t *testing.T) {
	child := &fakeNode{id: identity.Value("child"), bounds: event.Rect{X: 5, Y: 5, Width: 10, Height: 10}}
	root := &fakeNode{
		id:       identity.Value("root"),
		bounds:   event.Rect{X: 0, Y: 0, Width: 20, Height: 20},
		children: []event.HitTestNode{child},
	}

	res, ok := event.HitTest(root, 7, 7)
	require.True(t, ok)
	assert.True(t, res.Node.ID().Equal(identity.Value("child")))
	assert.Equal(t, 2, res.LocalX)
	assert.Equal(t, 2, res.LocalY)

	// Outside the child but still within root: root itself answers.
	res2, ok := event.HitTest(root, 1, 1)
	require.True(t, ok)
	assert.True(t, res2.Node.ID().Equal(identity.Value("root")))

	// Entirely outside root: no hit.
	_, ok = event.HitTest(root, 100, 100)
	assert.False(t, ok)
}

// fakeFocusable is a minimal event.Focusable.
type fakeFocusable struct {
	id     identity.ID
	bounds event.Rect
}

func (f fakeFocusable) ID() identity.ID    { return f.id }
func (f fakeFocusable) Bounds() event.Rect { return f.bounds }

func TestAdvanceFocusWrapsAndHandlesMissingCurrent(t *testing.T) {
	items := []event.Focusable{
		fakeFocusable{id: identity.Value("a")},
		fakeFocusable{id: identity.Value("b")},
		fakeFocusable{id: identity.Value("c")},
	}

	next, ok := event.AdvanceFocus(items, identity.Null)
	require.True(t, ok)
	assert.True(t, next.Equal(identity.Value("a")), "nothing focused: first item becomes focus")

	next, ok = event.AdvanceFocus(items, identity.Value("a"))
	require.True(t, ok)
	assert.True(t, next.Equal(identity.Value("b")))

	next, ok = event.AdvanceFocus(items, identity.Value("c"))
	require.True(t, ok)
	assert.True(t, next.Equal(identity.Value("a")), "advancing past the last item wraps to the front")

	next, ok = event.AdvanceFocus(items, identity.Value("gone"))
	require.True(t, ok)
	assert.True(t, next.Equal(identity.Value("a")), "a vanished target is treated as seen at the very start")
}

func TestRegressFocusWalksBackward(t *testing.T) {
	items := []event.Focusable{
		fakeFocusable{id: identity.Value("a")},
		fakeFocusable{id: identity.Value("b")},
		fakeFocusable{id: identity.Value("c")},
	}

	prev, ok := event.RegressFocus(items, identity.Value("b"))
	require.True(t, ok)
	assert.True(t, prev.Equal(identity.Value("a")))

	prev, ok = event.RegressFocus(items, identity.Value("a"))
	require.True(t, ok)
	assert.True(t, prev.Equal(identity.Value("c")), "regressing past the first item wraps to the back")
}

func TestNearestInDirectionPrefersAligned(t *testing.T) {
	current := fakeFocusable{id: identity.Value("center"), bounds: event.Rect{X: 10, Y: 10, Width: 10, Height: 10}}
	above := fakeFocusable{id: identity.Value("above"), bounds: event.Rect{X: 10, Y: 0, Width: 10, Height: 5}}
	aboveOffset := fakeFocusable{id: identity.Value("above-offset"), bounds: event.Rect{X: 40, Y: 0, Width: 10, Height: 5}}

	items := []event.Focusable{current, above, aboveOffset}

	best, ok := event.NearestInDirection(items, identity.Value("center"), event.DirectionUp)
	require.True(t, ok)
	assert.True(t, best.Equal(identity.Value("above")), "a directly-aligned candidate beats an off-axis one")
}

func TestDispatchEntersOnlyThePathedBlocks(t *testing.T) {
	g := graph.New()
	tr := scope.NewTraversal(g, true) // partial traversal: GC disabled

	var visited []string
	path := []identity.ID{identity.Value("outer"), identity.Value("inner")}

	err := tr.Run(func(ctx scope.Context) {
		event.Dispatch(ctx, path, func(leafCtx scope.Context) {
			visited = append(visited, "leaf")
		})
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"leaf"}, visited)
}
