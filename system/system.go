// Package system implements the root system object: the data
// graph, layout root, input state, scheduler, and the three host-supplied
// interfaces (external, OS, window) that let the core stay free of any
// concrete rendering or windowing backend.
package system

import (
	"github.com/corewidgets/uicore/event"
	"github.com/corewidgets/uicore/graph"
	"github.com/corewidgets/uicore/identity"
	"github.com/corewidgets/uicore/layout"
	"github.com/corewidgets/uicore/scope"
)

// ExternalInterface lets the core request work from its host without
// knowing what the host is: a terminal, a GUI window, a test harness.
type ExternalInterface interface {
	// RequestAnimationFrame asks the host to schedule another tick soon,
	// because some part of the tree still has an in-flight animation.
	RequestAnimationFrame()
}

// OSInterface abstracts clipboard access away from any one platform's
// mechanism, so the core never shells out or touches a GUI toolkit itself.
type OSInterface interface {
	ClipboardGet() (string, error)
	ClipboardSet(text string) error
}

// WindowInterface abstracts the single piece of window chrome the core
// needs to drive directly: the mouse cursor shape.
type WindowInterface interface {
	SetCursor(cursor Cursor)
}

// Cursor is a host-agnostic cursor shape request.
type Cursor int

const (
	CursorDefault Cursor = iota
	CursorPointer
	CursorText
	CursorResize
	CursorNone
)

// InputState is the interaction state the system retains across events:
// pointer position and buttons, which element has focus/hover/capture, and
// a couple of host-reported flags.
type InputState struct {
	MouseX, MouseY   int
	MouseButtons     map[event.MouseButton]bool
	FocusedElement   identity.ID
	HotElement       identity.ID
	CapturedElement  identity.ID
	KeyboardInteraction bool
	WindowHasFocus   bool
	Cursor           Cursor
}

// NewInputState returns an InputState with no element focused, hovered, or
// captured.
func NewInputState() InputState {
	return InputState{
		MouseButtons:    make(map[event.MouseButton]bool),
		FocusedElement:  identity.Null,
		HotElement:      identity.Null,
		CapturedElement: identity.Null,
	}
}

// System is the root object a host drives: it owns the data graph, the
// layout tree's root cacher, the input/scheduling state, and the three
// interfaces above.
type System struct {
	Graph   *graph.Graph
	Root    *layout.Cacher
	Input   InputState

	contentCounter uint64
	tick           uint64

	Scheduler *Scheduler

	External ExternalInterface
	OS       OSInterface
	Window   WindowInterface

	SurfaceWidth  layout.Scalar
	SurfaceHeight layout.Scalar
}

// New creates a System with a fresh data graph and an empty root layout
// cacher. The three host interfaces are optional at construction and can be
// set directly before the first refresh.
func New() *System {
	g := graph.New()
	s := &System{
		Graph:     g,
		Root:      layout.NewCacher(layout.Spec{}, nil),
		Input:     NewInputState(),
		Scheduler: NewScheduler(),
	}
	s.Root.SetOnChange(func() { s.contentCounter++ })
	return s
}

// Counter returns a layout.Counter bound to this system's content-change
// counter, for containers built against it. The counter only advances when
// some node in the layout tree calls layout.Cacher.RecordContentChange and
// that change propagates to the tree's root — never merely because a
// refresh pass ran — so a cacher whose content hasn't changed since the
// last refresh returns its memoized requirements unrecomputed.
func (s *System) Counter() layout.Counter {
	return func() uint64 { return s.contentCounter }
}

// Refresh runs controller as a full (GC-enabled) traversal of the data
// graph. Every refresh-category event (see event.Category.IsRefreshPass)
// goes through this path; read-only passes like render or hit-test should
// build their own scope.Traversal instead, since they must not mutate the
// graph.
func (s *System) Refresh(controller func(scope.Context)) error {
	tr := scope.NewTraversal(s.Graph, false)
	return tr.Run(controller)
}

// Dispatch runs a targeted (GC-disabled) traversal that follows path,
// entering only the blocks the path names, and runs leaf at its end. Non-refresh categories
// (render, hit-test, focus queries) typically call this directly instead
// of Refresh, since they must not mutate the graph's committed state.
func (s *System) Dispatch(path []identity.ID, leaf func(scope.Context)) error {
	tr := scope.NewTraversal(s.Graph, true)
	return tr.Run(func(ctx scope.Context) {
		event.Dispatch(ctx, path, leaf)
	})
}

// Tick returns the monotonically non-decreasing tick count, advanced
// externally by the host (e.g. once per animation frame).
func (s *System) Tick() uint64 { return s.tick }

// AdvanceTick moves the tick count forward by one and runs any scheduled
// callbacks whose trigger has arrived.
func (s *System) AdvanceTick() {
	s.tick++
	s.Scheduler.runScheduled(s.tick)
}

// SetSurfaceSize updates the surface dimensions the layout root resolves
// against.
func (s *System) SetSurfaceSize(w, h layout.Scalar) {
	s.SurfaceWidth, s.SurfaceHeight = w, h
}
