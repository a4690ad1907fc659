package event

import "github.com/corewidgets/uicore/identity"

// Rect is an axis-aligned integer region in surface coordinates.
type Rect struct {
	X, Y, Width, Height int
}

// Contains reports whether (x, y) falls within the rect.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.Width && y >= r.Y && y < r.Y+r.Height
}

// Intersects reports whether two rects overlap.
func (r Rect) Intersects(o Rect) bool {
	return r.X < o.X+o.Width && r.X+r.Width > o.X &&
		r.Y < o.Y+o.Height && r.Y+r.Height > o.Y
}

func (r Rect) CenterX() int { return r.X + r.Width/2 }
func (r Rect) CenterY() int { return r.Y + r.Height/2 }

// HitTestNode is the minimal shape event.HitTest needs from a layout tree:
// its own region and its children in paint order (back to front).
type HitTestNode interface {
	ID() identity.ID
	Bounds() Rect
	Children() []HitTestNode
}

// HitTestResult is the target found by HitTest, with coordinates converted
// into the target's local space.
type HitTestResult struct {
	Node   HitTestNode
	LocalX int
	LocalY int
}

// HitTest walks root front-to-back (children tested before their parent is
// considered an answer in its own right) and returns the topmost node
// whose bounds contain (x, y), or false if nothing matched.
func HitTest(root HitTestNode, x, y int) (HitTestResult, bool) {
	if root == nil {
		return HitTestResult{}, false
	}
	b := root.Bounds()
	if b.Width <= 0 || b.Height <= 0 || !b.Contains(x, y) {
		return HitTestResult{}, false
	}

	children := root.Children()
	for i := len(children) - 1; i >= 0; i-- {
		if res, ok := HitTest(children[i], x, y); ok {
			return res, true
		}
	}

	return HitTestResult{Node: root, LocalX: x - b.X, LocalY: y - b.Y}, true
}
