package identity_test

import (
	"testing"

	"github.com/corewidgets/uicore/identity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNullEqualsOnlySelf(t *testing.T) {
	require.True(t, identity.Null.Equal(identity.Null))
	assert.False(t, identity.Null.Equal(identity.Value(0)))
	assert.False(t, identity.Value("x").Equal(identity.Null))
}

func TestValueEquality(t *testing.T) {
	a := identity.Value(42)
	b := identity.Value(42)
	c := identity.Value(43)

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
	assert.Equal(t, a.Hash(), b.Hash())
}

func TestHashConsistentWithEqual(t *testing.T) {
	a := identity.Value("same")
	b := identity.Value("same")
	require.True(t, a.Equal(b))
	assert.Equal(t, a.Hash(), b.Hash())
}

func TestCombineDiffersWhenEitherOperandDiffers(t *testing.T) {
	base := identity.Combine(identity.Value(1), identity.Value("a"))
	sameA := identity.Combine(identity.Value(1), identity.Value("a"))
	diffB := identity.Combine(identity.Value(1), identity.Value("b"))

	assert.True(t, base.Equal(sameA))
	assert.False(t, base.Equal(diffB))
}

func TestByReferenceTracksCurrentContent(t *testing.T) {
	x := 10
	first := identity.ByReference(&x)
	x = 20
	second := identity.ByReference(&x)

	// Same pointer, different content: the identity follows the content.
	assert.False(t, first.Equal(second))
}

func TestCaptureOutlivesSource(t *testing.T) {
	x := 10
	ref := identity.ByReference(&x)
	captured := ref.Capture()

	x = 999 // mutate after capture

	assert.True(t, captured.Equal(captured.Capture()))
}

func TestNewOpaqueIsUnique(t *testing.T) {
	a := identity.NewOpaque()
	b := identity.NewOpaque()
	assert.False(t, a.Equal(b))
}

func TestNullIsAbsoluteMinimum(t *testing.T) {
	v := identity.Value(1)
	assert.True(t, identity.Null.Less(v))
	assert.False(t, v.Less(identity.Null))
}

func TestKindOrderingIsStable(t *testing.T) {
	null := identity.Null
	val := identity.Value(1)
	pair := identity.Combine(val, val)
	opaque := identity.NewOpaque()

	assert.True(t, null.Less(val))
	assert.True(t, val.Less(pair))
	assert.True(t, pair.Less(opaque))
}
