package system

import (
	"github.com/corewidgets/uicore/event"
	"github.com/corewidgets/uicore/identity"
)

// SetFocus moves keyboard focus to target, clearing it if target is
// identity.Null.
func (s *System) SetFocus(target identity.ID) {
	s.Input.FocusedElement = target
}

// SetHot records which element the pointer currently hovers, used to
// decide where MouseNotify gain/loss events are delivered.
func (s *System) SetHot(target identity.ID) {
	s.Input.HotElement = target
}

// Capture routes every subsequent mouse event to target regardless of
// pointer position, until ReleaseCapture is called — the usual mechanism
// behind press-drag-release interactions like slider thumbs.
func (s *System) Capture(target identity.ID) {
	s.Input.CapturedElement = target
}

// ReleaseCapture clears the captured element, returning mouse routing to
// normal hit-testing.
func (s *System) ReleaseCapture() {
	s.Input.CapturedElement = identity.Null
}

// HasCapture reports whether an element currently holds mouse capture.
func (s *System) HasCapture() bool {
	return !s.Input.CapturedElement.Equal(identity.Null)
}

// SetButton records a mouse button's pressed state and marks the
// interaction as mouse-driven (clearing the keyboard-interaction flag,
// since the two are mutually exclusive "what drove the last interaction"
// indicators a widget might render hover/focus rings differently for).
func (s *System) SetButton(b event.MouseButton, pressed bool) {
	s.Input.MouseButtons[b] = pressed
	s.Input.KeyboardInteraction = false
}

// ButtonDown reports whether b is currently held.
func (s *System) ButtonDown(b event.MouseButton) bool {
	return s.Input.MouseButtons[b]
}

// SetMousePosition updates the tracked pointer position.
func (s *System) SetMousePosition(x, y int) {
	s.Input.MouseX, s.Input.MouseY = x, y
}

// NoteKeyboardInteraction marks the interaction as keyboard-driven, the
// counterpart to SetButton's mouse-driven marking.
func (s *System) NoteKeyboardInteraction() {
	s.Input.KeyboardInteraction = true
}

// SetWindowFocus records whether the host window currently has focus.
func (s *System) SetWindowFocus(focused bool) {
	s.Input.WindowHasFocus = focused
}

// AdvanceFocus moves focus to the next focusable item in tab order among
// items, updating Input.FocusedElement and marking the interaction as
// keyboard-driven.
func (s *System) AdvanceFocus(items []event.Focusable) (identity.ID, bool) {
	next, ok := event.AdvanceFocus(items, s.Input.FocusedElement)
	if ok {
		s.Input.FocusedElement = next
		s.NoteKeyboardInteraction()
	}
	return next, ok
}

// RegressFocus is AdvanceFocus in the reverse tab-order direction.
func (s *System) RegressFocus(items []event.Focusable) (identity.ID, bool) {
	prev, ok := event.RegressFocus(items, s.Input.FocusedElement)
	if ok {
		s.Input.FocusedElement = prev
		s.NoteKeyboardInteraction()
	}
	return prev, ok
}

// MoveFocusInDirection moves focus geometrically (arrow-key navigation)
// among items.
func (s *System) MoveFocusInDirection(items []event.Focusable, dir event.GeometricDirection) (identity.ID, bool) {
	next, ok := event.NearestInDirection(items, s.Input.FocusedElement, dir)
	if ok {
		s.Input.FocusedElement = next
		s.NoteKeyboardInteraction()
	}
	return next, ok
}
