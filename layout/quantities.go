// Package layout implements the layout engine's shared quantities,
// content-change-counter cacher, and the container set described for the
// runtime's layout core.
package layout

// Scalar is a non-negative layout measurement. The implementation picks a
// plain int; all sizes and offsets are expressed in this unit once resolved.
type Scalar int

// Vector is a 2-d scalar pair, used for sizes and offsets.
type Vector struct {
	X, Y Scalar
}

// Box is a corner-plus-size axis-aligned region.
type Box struct {
	Origin Vector
	Size   Vector
}

// Right, Bottom return the box's far edges.
func (b Box) Right() Scalar  { return b.Origin.X + b.Size.X }
func (b Box) Bottom() Scalar { return b.Origin.Y + b.Size.Y }

// BorderWidth is a per-side inset, as used by padding and borders.
type BorderWidth struct {
	Top, Right, Bottom, Left Scalar
}

// Horizontal, Vertical return the combined inset along each axis.
func (b BorderWidth) Horizontal() Scalar { return b.Left + b.Right }
func (b BorderWidth) Vertical() Scalar   { return b.Top + b.Bottom }

// Requirements is what a layout node reports about itself along one axis:
// how big it wants to be, where its baseline falls (ascent above it,
// descent below), and how eagerly it wants to absorb surplus space.
//
// Invariant: Size >= Ascent + Descent.
type Requirements struct {
	Size    Scalar
	Ascent  Scalar
	Descent Scalar
	Growth  float64
}

// Baseline reports the requirement's baseline offset from its own top.
func (r Requirements) Baseline() Scalar { return r.Ascent }

// Assignment is what a container hands down to a child once it has decided
// the child's final position and size: the region it owns, and where its
// baseline should land within that region (for baseline-aligned siblings).
type Assignment struct {
	Region   Box
	Baseline Scalar
}

// Unit is a resolvable length's unit tag.
type Unit int

const (
	UnitPixel Unit = iota
	UnitUnmagnifiedPixel
	UnitInch
	UnitCentimeter
	UnitMillimeter
	UnitPoint
	UnitPica
	UnitChar // axis-dependent: character cell width on X, line height on Y
	UnitEm
	UnitEx
)

// Axis selects which of the two layout axes a length applies to, since
// chars/em/ex resolve differently depending on axis.
type Axis int

const (
	AxisHorizontal Axis = iota
	AxisVertical
)

// StyleInfo carries the font metrics and magnification a length resolves
// against. FontSize and XHeight are in points; CharWidth/LineHeight are the
// resolved pixel size of one character cell along each axis.
type StyleInfo struct {
	FontSize     float64
	XHeight      float64
	CharWidth    Scalar
	LineHeight   Scalar
	Magnification float64
}

// ResolveAbsoluteLength converts a length expressed in the given unit into
// a resolved Scalar in pixels, given the axis it applies to, the surface's
// per-axis DPI, and the current style info. Unmagnified pixels ignore
// style.Magnification; every other absolute unit scales with it.
func ResolveAbsoluteLength(dpiX, dpiY float64, style StyleInfo, axis Axis, value float64, unit Unit) Scalar {
	dpi := dpiX
	if axis == AxisVertical {
		dpi = dpiY
	}
	mag := style.Magnification
	if mag == 0 {
		mag = 1
	}

	switch unit {
	case UnitPixel:
		return Scalar(round(value * mag))
	case UnitUnmagnifiedPixel:
		return Scalar(round(value))
	case UnitInch:
		return Scalar(round(value * dpi * mag))
	case UnitCentimeter:
		return Scalar(round(value * dpi / 2.54 * mag))
	case UnitMillimeter:
		return Scalar(round(value * dpi / 25.4 * mag))
	case UnitPoint:
		return Scalar(round(value * dpi / 72.0 * mag))
	case UnitPica:
		return Scalar(round(value * dpi / 6.0 * mag))
	case UnitChar:
		if axis == AxisHorizontal {
			return Scalar(round(value * float64(style.CharWidth)))
		}
		return Scalar(round(value * float64(style.LineHeight)))
	case UnitEm:
		return Scalar(round(value * style.FontSize * dpi / 72.0 * mag))
	case UnitEx:
		return Scalar(round(value * style.XHeight * dpi / 72.0 * mag))
	default:
		return Scalar(round(value))
	}
}

func round(v float64) int {
	if v < 0 {
		return int(v - 0.5)
	}
	return int(v + 0.5)
}
