package graph_test

import (
	"testing"

	"github.com/corewidgets/uicore/graph"
	"github.com/corewidgets/uicore/identity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNamedBlockMobilityPreservesState(t *testing.T) {
	g := graph.New()
	nm := g.NewNamingMap("items")

	g.BeginTraversal()
	a := nm.Activate(g.Root(), identity.Value("a"), false)
	a.Reset()
	v, _ := graph.GetDataNode[int](&a.Block)
	*v = 1
	bBlock := nm.Activate(g.Root(), identity.Value("b"), false)
	bBlock.Reset()
	graph.GetDataNode[int](&bBlock.Block)
	require.NoError(t, g.Commit(false))

	var initsForA int

	// Second traversal: activate "b" first, then "a" — moved, same key.
	g.BeginTraversal()
	bBlock2 := nm.Activate(g.Root(), identity.Value("b"), false)
	bBlock2.Reset()
	graph.GetDataNode[int](&bBlock2.Block)

	a2 := nm.Activate(g.Root(), identity.Value("a"), false)
	a2.Reset()
	v2, isNew := graph.GetDataNode[int](&a2.Block)
	if isNew {
		initsForA++
	}
	require.NoError(t, g.Commit(false))

	assert.Same(t, a, a2, "moving a named block by key must reuse the same block")
	assert.Equal(t, 0, initsForA, "named block mobility: zero re-initializations")
	assert.Equal(t, 1, *v2)
}

func TestGCDestroysUnreferencedNamedBlocks(t *testing.T) {
	g := graph.New()
	nm := g.NewNamingMap("items")

	g.BeginTraversal()
	nm.Activate(g.Root(), identity.Value("a"), false)
	require.NoError(t, g.Commit(false))

	g.BeginTraversal()
	// "a" not referenced this traversal.
	require.NoError(t, g.Commit(false))

	g.BeginTraversal()
	a2 := nm.Activate(g.Root(), identity.Value("a"), false)
	require.NoError(t, g.Commit(false))

	// A fresh block was created because the old one was collected.
	a2.Reset()
	_, isNew := graph.GetDataNode[int](&a2.Block)
	assert.True(t, isNew)
}

func TestManualDeleteBlockSurvivesUnreferencedTraversal(t *testing.T) {
	g := graph.New()
	nm := g.NewNamingMap("items")

	g.BeginTraversal()
	a := nm.Activate(g.Root(), identity.Value("a"), true)
	a.Reset()
	v, _ := graph.GetDataNode[int](&a.Block)
	*v = 7
	require.NoError(t, g.Commit(false))

	g.BeginTraversal()
	require.NoError(t, g.Commit(false)) // "a" unreferenced, but manual_delete

	g.BeginTraversal()
	a2 := nm.Activate(g.Root(), identity.Value("a"), true)
	require.NoError(t, g.Commit(false))

	assert.Same(t, a, a2)
	a2.Reset()
	v2, isNew := graph.GetDataNode[int](&a2.Block)
	assert.False(t, isNew)
	assert.Equal(t, 7, *v2)
}

func TestManualDeleteRequiresExplicitDelete(t *testing.T) {
	g := graph.New()
	nm := g.NewNamingMap("items")

	g.BeginTraversal()
	nm.Activate(g.Root(), identity.Value("a"), true)
	require.NoError(t, g.Commit(false))

	nm.Delete(identity.Value("a"))

	g.BeginTraversal()
	a2 := nm.Activate(g.Root(), identity.Value("a"), true)
	require.NoError(t, g.Commit(false))
	a2.Reset()
	_, isNewNode := graph.GetDataNode[int](&a2.Block)
	assert.True(t, isNewNode, "explicit delete must force re-creation")
}

func TestGCDisabledOrderMismatchIsProgrammerError(t *testing.T) {
	g := graph.New()
	nm := g.NewNamingMap("items")

	g.BeginTraversal()
	nm.Activate(g.Root(), identity.Value("a"), false)
	nm.Activate(g.Root(), identity.Value("b"), false)
	require.NoError(t, g.Commit(false))

	g.BeginTraversal()
	nm.Activate(g.Root(), identity.Value("b"), false)
	nm.Activate(g.Root(), identity.Value("a"), false)
	err := g.Commit(true)
	require.Error(t, err)

	var perr *graph.ProgrammerError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, graph.ErrNamedBlockOutOfOrder, perr.Code)
}

func TestGCDisabledPartialTraversalIsAllowed(t *testing.T) {
	g := graph.New()
	nm := g.NewNamingMap("items")

	g.BeginTraversal()
	nm.Activate(g.Root(), identity.Value("a"), false)
	nm.Activate(g.Root(), identity.Value("b"), false)
	require.NoError(t, g.Commit(false))

	// Only "a" visited, in the same relative order — must be allowed.
	g.BeginTraversal()
	nm.Activate(g.Root(), identity.Value("a"), false)
	assert.NoError(t, g.Commit(true))
}
