package system_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/corewidgets/uicore/event"
	"github.com/corewidgets/uicore/identity"
	"github.com/corewidgets/uicore/layout"
	"github.com/corewidgets/uicore/scope"
	"github.com/corewidgets/uicore/system"
)

func TestNewSystemHasNoFocusHotOrCapture(t *testing.T) {
	s := system.New()
	assert.True(t, s.Input.FocusedElement.Equal(identity.Null))
	assert.True(t, s.Input.HotElement.Equal(identity.Null))
	assert.False(t, s.HasCapture())
}

func TestCaptureRoutesRegardlessOfHot(t *testing.T) {
	s := system.New()
	target := identity.Value("thumb")
	s.Capture(target)
	assert.True(t, s.HasCapture())
	assert.True(t, s.Input.CapturedElement.Equal(target))

	s.ReleaseCapture()
	assert.False(t, s.HasCapture())
}

func TestSetButtonClearsKeyboardInteractionFlag(t *testing.T) {
	s := system.New()
	s.NoteKeyboardInteraction()
	require.True(t, s.Input.KeyboardInteraction)

	s.SetButton(event.ButtonLeft, true)
	assert.False(t, s.Input.KeyboardInteraction)
	assert.True(t, s.ButtonDown(event.ButtonLeft))
}

type fakeFocusable struct {
	id identity.ID
}

func (f fakeFocusable) ID() identity.ID    { return f.id }
func (f fakeFocusable) Bounds() event.Rect { return event.Rect{} }

func TestAdvanceFocusUpdatesInputAndMarksKeyboardDriven(t *testing.T) {
	s := system.New()
	items := []event.Focusable{
		fakeFocusable{id: identity.Value("a")},
		fakeFocusable{id: identity.Value("b")},
	}
	next, ok := s.AdvanceFocus(items)
	require.True(t, ok)
	assert.True(t, next.Equal(identity.Value("a")))
	assert.True(t, s.Input.FocusedElement.Equal(identity.Value("a")))
	assert.True(t, s.Input.KeyboardInteraction)
}

func TestRefreshAloneDoesNotBumpCounter(t *testing.T) {
	s := system.New()
	counter := s.Counter()
	firstCounter := counter()

	err := s.Refresh(func(ctx scope.Context) {})
	require.NoError(t, err)
	secondCounter := counter()
	assert.Equal(t, firstCounter, secondCounter, "a refresh with no recorded content change must leave the counter untouched so layout caches survive it")
}

func TestRecordContentChangeOnRootBumpsCounter(t *testing.T) {
	s := system.New()
	layout.CacheHorizontalLayoutRequirements(s.Root, s.Counter()(), func() layout.Requirements { return layout.Requirements{} })
	firstCounter := s.Counter()()

	child := layout.NewCacher(layout.Spec{}, s.Root)
	layout.CacheHorizontalLayoutRequirements(child, 0, func() layout.Requirements { return layout.Requirements{} }) // consume the initial fully-invalid state

	child.RecordContentChange()
	secondCounter := s.Counter()()
	assert.NotEqual(t, firstCounter, secondCounter, "a content change that propagates to the root must bump the counter layout cachers key against")
}

func TestDispatchEntersOnlyThePathedBlocks(t *testing.T) {
	s := system.New()
	path := []identity.ID{identity.Value("outer"), identity.Value("inner")}
	var hit bool

	err := s.Dispatch(path, func(ctx scope.Context) {
		hit = true
	})
	require.NoError(t, err)
	assert.True(t, hit)
}

func TestSchedulerRunReadyRespectsBudgetOrder(t *testing.T) {
	sched := system.NewScheduler()
	var order []int
	for i := 0; i < 3; i++ {
		i := i
		sched.PostReady(func() { order = append(order, i) })
	}
	sched.RunReady(time.Second)
	assert.Equal(t, []int{0, 1, 2}, order)
	assert.Equal(t, 0, sched.PendingReadyCount())
}

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := system.LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, 60, cfg.TargetFPS)
	assert.Equal(t, 2*time.Millisecond, cfg.ReadyBudget())
}
