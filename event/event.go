package event

import "github.com/corewidgets/uicore/identity"

// MouseButton identifies which button a press/release event concerns.
type MouseButton int

const (
	NoButton MouseButton = iota
	ButtonLeft
	ButtonMiddle
	ButtonRight
)

// Modifiers is a bitmask of held modifier keys.
type Modifiers int

const (
	ModNone  Modifiers = 0
	ModShift Modifiers = 1 << iota
	ModCtrl
	ModAlt
)

func (m Modifiers) Has(flag Modifiers) bool { return m&flag != 0 }

// MouseDetail carries the payload for mouse press/release/motion/wheel and
// notify events.
type MouseDetail struct {
	X, Y       int
	Button     MouseButton
	WheelDX    int
	WheelDY    int
	Entered    bool // for MouseNotify: true = gained hover, false = lost
}

// KeyDetail carries the payload for focused/background key events.
type KeyDetail struct {
	Rune rune
	Code string // named key ("Enter", "Escape", "ArrowUp", ...) when non-printable
	Mod  Modifiers
}

// TextDetail carries committed text for a TextInput event (e.g. from an
// IME), as opposed to a single raw keypress.
type TextDetail struct {
	Text string
}

// TimerDetail identifies which scheduled timer fired.
type TimerDetail struct {
	ID identity.ID
}

// VisibleDetail requests that a region be scrolled into view.
type VisibleDetail struct {
	Region Rect
}

// QueryDirection distinguishes a tab-order successor query from a
// predecessor query.
type QueryDirection int

const (
	Successor QueryDirection = iota
	Predecessor
)

// GeometricDirection is the additive directional-navigation extension:
// up/down/left/right arrow-key focus movement by on-screen position.
type GeometricDirection int

const (
	DirectionUp GeometricDirection = iota
	DirectionDown
	DirectionLeft
	DirectionRight
)

// FocusQueryDetail carries the payload for a focus successor/predecessor
// query, optionally narrowed to a geometric direction.
type FocusQueryDetail struct {
	Direction  QueryDirection
	Geometric  *GeometricDirection
	CurrentID  identity.ID
}

// Event is the value a traversal is parameterized by. Exactly one
// of the detail pointers is populated, matching Category.
type Event struct {
	Category Category
	// Path is the routing path for targeted delivery: a sequence of
	// container-region keys from the graph root down to the intended
	// recipient. Nil means "full, untargeted traversal".
	Path []identity.ID

	Mouse *MouseDetail
	Key   *KeyDetail
	Text  *TextDetail
	Timer *TimerDetail
	Visible *VisibleDetail
	Focus *FocusQueryDetail
}

// IsTargeted reports whether this event carries a routing path and must
// therefore run inside a GC-disabled traversal.
func (e Event) IsTargeted() bool { return len(e.Path) > 0 }
