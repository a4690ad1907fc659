package event

import (
	"math"

	"github.com/corewidgets/uicore/identity"
)

// Focusable is the minimal shape a widget must expose to participate in tab
// order and directional focus queries.
type Focusable interface {
	ID() identity.ID
	Bounds() Rect
}

// AdvanceFocus implements the base seen-flag tab-order algorithm:
// items are inspected in traversal order; the first one visited after
// "current" has been seen becomes the new focus target. A current id of
// identity.Null, or one that does not appear in items at all, is treated
// as though it had just been seen at the very start — so the first item in
// order is returned. Reaching the end of items without finding a
// successor wraps around to the front.
func AdvanceFocus(items []Focusable, current identity.ID) (identity.ID, bool) {
	if len(items) == 0 {
		return identity.Null, false
	}
	seen := current.Equal(identity.Null)
	for _, it := range items {
		if seen {
			return it.ID(), true
		}
		if it.ID().Equal(current) {
			seen = true
		}
	}
	// current was never seen, or was the last item in order: both cases
	// wrap to the front, matching the "seen at the very start" rule.
	return items[0].ID(), true
}

// RegressFocus is AdvanceFocus over the reversed order, implementing
// regress_focus.
func RegressFocus(items []Focusable, current identity.ID) (identity.ID, bool) {
	reversed := make([]Focusable, len(items))
	for i, it := range items {
		reversed[len(items)-1-i] = it
	}
	return AdvanceFocus(reversed, current)
}

// NearestInDirection is the additive directional-navigation extension: it
// scores every other focusable by distance along the travel axis plus
// overlap along the cross axis, and returns the highest-scoring candidate
// that actually lies in the requested direction from current. Returns
// false if current isn't found or no candidate lies in that direction.
func NearestInDirection(items []Focusable, current identity.ID, dir GeometricDirection) (identity.ID, bool) {
	var currentBounds Rect
	found := false
	for _, it := range items {
		if it.ID().Equal(current) {
			currentBounds = it.Bounds()
			found = true
			break
		}
	}
	if !found {
		return identity.Null, false
	}

	var bestID identity.ID
	bestScore := -1.0
	haveBest := false

	for _, it := range items {
		if it.ID().Equal(current) {
			continue
		}
		candidate := it.Bounds()
		if !liesInDirection(currentBounds, candidate, dir) {
			continue
		}
		score := directionScore(currentBounds, candidate, dir)
		if score > bestScore {
			bestScore = score
			bestID = it.ID()
			haveBest = true
		}
	}
	return bestID, haveBest
}

func liesInDirection(current, candidate Rect, dir GeometricDirection) bool {
	switch dir {
	case DirectionUp:
		return candidate.Y+candidate.Height <= current.Y || candidate.CenterY() < current.CenterY()
	case DirectionDown:
		return candidate.Y >= current.Y+current.Height || candidate.CenterY() > current.CenterY()
	case DirectionLeft:
		return candidate.X+candidate.Width <= current.X || candidate.CenterX() < current.CenterX()
	case DirectionRight:
		return candidate.X >= current.X+current.Width || candidate.CenterX() > current.CenterX()
	default:
		return false
	}
}

// directionScore favors candidates close along the travel axis, with a
// bonus for overlap along the cross axis — so a component directly above
// beats one merely higher-and-off-to-the-side.
func directionScore(current, candidate Rect, dir GeometricDirection) float64 {
	const maxDistance = 1000.0

	switch dir {
	case DirectionUp, DirectionDown:
		dist := math.Abs(float64(candidate.CenterY() - current.CenterY()))
		score := (maxDistance - dist) / maxDistance
		overlap := horizontalOverlap(current, candidate)
		if overlap > 0 {
			score += (float64(overlap) / float64(maxInt(current.Width, candidate.Width))) * 0.5
		}
		return score
	default: // DirectionLeft, DirectionRight
		dist := math.Abs(float64(candidate.CenterX() - current.CenterX()))
		score := (maxDistance - dist) / maxDistance
		overlap := verticalOverlap(current, candidate)
		if overlap > 0 {
			score += (float64(overlap) / float64(maxInt(current.Height, candidate.Height))) * 0.5
		}
		return score
	}
}

func horizontalOverlap(a, b Rect) int {
	left := maxInt(a.X, b.X)
	right := minInt(a.X+a.Width, b.X+b.Width)
	if right > left {
		return right - left
	}
	return 0
}

func verticalOverlap(a, b Rect) int {
	top := maxInt(a.Y, b.Y)
	bottom := minInt(a.Y+a.Height, b.Y+b.Height)
	if bottom > top {
		return bottom - top
	}
	return 0
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
