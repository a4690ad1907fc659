// Package event implements targeted delivery, hit-testing, and focus-order
// queries over the data graph.
package event

// Category identifies what kind of traversal an event value drives. Each
// category implies whether the traversal that carries it is a refresh pass
// (constructs or mutates the data graph) or a read-only layout/geometry
// pass.
type Category int

const (
	// Refresh rebuilds/updates the data graph from scratch.
	Refresh Category = iota
	// Render is a read-only pass that paints the current layout.
	Render
	// HitTest is a read-only pass resolving a point to a target widget.
	HitTest
	// MouseNotify reports the pointer gaining or losing a widget (hover).
	MouseNotify
	MousePress
	MouseRelease
	MouseMotion
	MouseWheel
	// FocusedKeyPress/Release are delivered to the currently focused widget.
	FocusedKeyPress
	FocusedKeyRelease
	// BackgroundKeyPress is delivered regardless of focus (global shortcuts).
	BackgroundKeyPress
	TextInput
	Timer
	// MakeWidgetVisible is a region-targeted scroll-into-view request.
	MakeWidgetVisible
	// FocusSuccessorQuery/PredecessorQuery drive advance_focus/regress_focus.
	FocusSuccessorQuery
	FocusPredecessorQuery
)

func (c Category) String() string {
	switch c {
	case Refresh:
		return "Refresh"
	case Render:
		return "Render"
	case HitTest:
		return "HitTest"
	case MouseNotify:
		return "MouseNotify"
	case MousePress:
		return "MousePress"
	case MouseRelease:
		return "MouseRelease"
	case MouseMotion:
		return "MouseMotion"
	case MouseWheel:
		return "MouseWheel"
	case FocusedKeyPress:
		return "FocusedKeyPress"
	case FocusedKeyRelease:
		return "FocusedKeyRelease"
	case BackgroundKeyPress:
		return "BackgroundKeyPress"
	case TextInput:
		return "TextInput"
	case Timer:
		return "Timer"
	case MakeWidgetVisible:
		return "MakeWidgetVisible"
	case FocusSuccessorQuery:
		return "FocusSuccessorQuery"
	case FocusPredecessorQuery:
		return "FocusPredecessorQuery"
	default:
		return "Unknown"
	}
}

// IsRefreshPass reports whether a traversal driven by this category
// constructs or mutates the data graph. Render, HitTest, and the two focus
// queries are read-only geometry/query passes; everything else may run
// widget-supplied handlers that touch the graph.
func (c Category) IsRefreshPass() bool {
	switch c {
	case Render, HitTest, FocusSuccessorQuery, FocusPredecessorQuery:
		return false
	default:
		return true
	}
}
