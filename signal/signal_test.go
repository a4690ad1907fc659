package signal_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/corewidgets/uicore/signal"
)

func TestValueSignalIDDeterminism(t *testing.T) {
	a := signal.Value(42)
	b := signal.Value(42)
	c := signal.Value(43)

	assert.True(t, a.ValueID().Equal(b.ValueID()), "equal values must produce equal ids")
	assert.False(t, a.ValueID().Equal(c.ValueID()), "different values must produce different ids")
	assert.True(t, a.HasValue())
	assert.Equal(t, 42, a.Read())
}

func TestDirectSignalTracksBackingVariable(t *testing.T) {
	var x int = 5
	d := signal.Direct(&x)

	id1 := d.ValueID()
	assert.Equal(t, 5, d.Read())

	x = 9
	id2 := d.ValueID()
	assert.Equal(t, 9, d.Read())
	assert.False(t, id1.Equal(id2), "direct's id must change when the backing variable changes")

	newID, err := d.Write(11)
	require.NoError(t, err)
	assert.Equal(t, 11, x)
	assert.True(t, newID.Equal(d.ValueID()))
}

func TestSimplifyIDIsDeterministicAcrossReads(t *testing.T) {
	inner := signal.Value(42)
	s := signal.SimplifyID[int](inner)

	id1 := s.ValueID()
	id2 := s.ValueID()
	assert.True(t, id1.Equal(id2), "unchanged value must produce equal ids across two calls")

	other := signal.SimplifyID[int](signal.Value(7))
	assert.False(t, id1.Equal(other.ValueID()), "different values must produce different ids")
}

func TestMoveOnDirectSignalZeroesBackingStorage(t *testing.T) {
	type payload struct{ N int }
	p := payload{N: 7}
	d := signal.Direct(&p)

	moved := signal.Move(d)
	assert.True(t, moved.Capability().Reading >= signal.MoveActivated)

	out := moved.MoveOut()
	assert.Equal(t, 7, out.N)
	assert.Equal(t, 0, p.N, "move_out must zero the backing storage, not copy it")
}

func TestEmptySignalNeverHasValue(t *testing.T) {
	e := signal.Empty[string]()
	assert.False(t, e.HasValue())
	assert.False(t, e.ReadyToWrite())
}

func TestAddDefaultFallsBackWhenPrimaryAbsent(t *testing.T) {
	primary := signal.Empty[int]()
	fallback := signal.Value(100)
	s := signal.AddDefault(primary, fallback)

	require.True(t, s.HasValue())
	assert.Equal(t, 100, s.Read())
}

func TestMaskSuppressesValueWhenFlagFalse(t *testing.T) {
	flag := true
	s := signal.Mask(signal.Value(7), func() bool { return flag })

	assert.True(t, s.HasValue())
	flag = false
	assert.False(t, s.HasValue())
	assert.True(t, s.ValueID().Equal(s.ValueID()))
}

func TestUnwrapProjectsOptional(t *testing.T) {
	var opt signal.Optional[int]
	ptr := signal.Direct(&opt)
	u := signal.Unwrap[int](ptr)

	assert.False(t, u.HasValue())

	opt = signal.Optional[int]{Valid: true, Value: 5}
	assert.True(t, u.HasValue())
	assert.Equal(t, 5, u.Read())
}

func TestAndShortCircuitsOnFalseOperand(t *testing.T) {
	falseKnown := signal.Value(false)
	unknown := signal.Empty[bool]()

	s := signal.And(falseKnown, unknown)
	require.True(t, s.HasValue(), "&& must have a value as soon as either operand is known false")
	assert.False(t, s.Read())
}

func TestAndRequiresBothWhenNeitherIsFalse(t *testing.T) {
	trueKnown := signal.Value(true)
	unknown := signal.Empty[bool]()

	s := signal.And(trueKnown, unknown)
	assert.False(t, s.HasValue(), "&& with one true operand and one unknown operand has no value yet")
}

func TestOrShortCircuitsOnTrueOperand(t *testing.T) {
	trueKnown := signal.Value(true)
	unknown := signal.Empty[bool]()

	s := signal.Or(trueKnown, unknown)
	require.True(t, s.HasValue(), "|| must have a value as soon as either operand is known true")
	assert.True(t, s.Read())
}

func TestConditionalDoesNotPoisonOnUnselectedBranch(t *testing.T) {
	cond := signal.Value(true)
	whenTrue := signal.Value(1)
	whenFalse := signal.Empty[int]() // absent, but not selected

	s := signal.Conditional(cond, whenTrue, whenFalse)
	require.True(t, s.HasValue())
	assert.Equal(t, 1, s.Read())
}

func TestConditionalIDChangesWithBranch(t *testing.T) {
	var which bool
	cond := signal.Direct(&which)
	whenTrue := signal.Value(1)
	whenFalse := signal.Value(1) // same value on both branches

	s := signal.Conditional(cond, whenTrue, whenFalse)
	falseID := s.ValueID()

	which = true
	trueID := s.ValueID()

	assert.False(t, falseID.Equal(trueID), "switching branches changes the id even when both branches carry the same value")
}

func TestFieldProjectionRoundTrips(t *testing.T) {
	type point struct{ X, Y int }
	p := point{X: 1, Y: 2}
	base := signal.Direct(&p)

	xField := signal.Field(base, "x",
		func(pt point) int { return pt.X },
		func(pt point, v int) point { pt.X = v; return pt })

	assert.Equal(t, 1, xField.Read())
	_, err := xField.Write(9)
	require.NoError(t, err)
	assert.Equal(t, 9, p.X)
	assert.Equal(t, 2, p.Y)
}

func TestIndexProjectionRoundTrips(t *testing.T) {
	s := []int{10, 20, 30}
	base := signal.Direct(&s)

	el := signal.Index[int](base, 1)
	assert.Equal(t, 20, el.Read())

	_, err := el.Write(99)
	require.NoError(t, err)
	assert.Equal(t, 99, s[1])
}

func TestValidatedRejectsAndAbsorbsInvalidWrite(t *testing.T) {
	var n int
	base := signal.Direct(&n)
	positive := signal.Validated(base, func(v int) error {
		if v < 0 {
			return assert.AnError
		}
		return nil
	})

	require.NoError(t, signal.WriteSignal(positive, 5))
	assert.Equal(t, 5, n)

	err := signal.WriteSignal(positive, -1)
	require.NoError(t, err, "validated signal absorbs the rejection itself")
	assert.True(t, positive.IsInvalidated())
	assert.False(t, positive.HasValue())
}

type fakeHost struct {
	now       uint64
	requested int
}

func (f *fakeHost) RequestAnimationFrame() { f.requested++ }
func (f *fakeHost) NowMillis() uint64      { return f.now }

func TestSmoothSettlesAtTargetAfterDuration(t *testing.T) {
	target := 0
	src := signal.Direct(&target)
	host := &fakeHost{now: 0}

	s := signal.Smooth[int](host, src, signal.LinearCurve{}, 200)

	assert.Equal(t, 0, s.Read())

	target = 100
	host.now = 0
	mid := s.Read()
	assert.Equal(t, 0, mid, "at the instant the target changes, the displayed value has not moved yet")

	host.now = 100
	half := s.Read()
	assert.Equal(t, 50, half, "halfway through a linear transition the value is halfway between endpoints")

	host.now = 200
	settled := s.Read()
	assert.Equal(t, 100, settled, "once duration has fully elapsed the value settles exactly on target")

	host.now = 500
	stillSettled := s.Read()
	assert.Equal(t, 100, stillSettled)
}

func TestExprEvaluatesAgainstNamedSignals(t *testing.T) {
	x := signal.Value(3)
	y := signal.Value(4)

	e := signal.NewExpr("x + y", signal.Env{
		"x": signal.Cast[int, any](x, func(v int) any { return v }, func(v any) int { return v.(int) }),
		"y": signal.Cast[int, any](y, func(v int) any { return v }, func(v any) int { return v.(int) }),
	})
	require.NoError(t, e.CompileError())
	require.True(t, e.HasValue())
	assert.Equal(t, 7, e.Read())
}
