package layout

// Node is the shape every layout participant — leaf or container —
// implements: measure itself horizontally, measure itself vertically once
// given a width, and accept the final region a parent assigned it.
type Node interface {
	HorizontalRequirements() Requirements
	VerticalRequirements(width Scalar) Requirements
	SetRelativeAssignment(a Assignment)
}

// Counter is the content-change counter source every container consults:
// in practice this is a system's content counter, which advances whenever a
// RecordContentChange reaches the root cacher of the layout tree.
type Counter func() uint64

// Leaf stores the requirements a widget declares about itself on refresh,
// and resolves them against its own spec's padding and alignment.
type Leaf struct {
	Cache   *Cacher
	Counter Counter

	MinSize Vector
	Ascent  Scalar
	Descent Scalar
}

func NewLeaf(spec Spec, parent *Cacher, counter Counter) *Leaf {
	return &Leaf{Cache: NewCacher(spec, parent), Counter: counter}
}

// Declare records the widget's self-reported requirements for this refresh.
// Changing them is itself a content change.
func (l *Leaf) Declare(minSize Vector, ascent, descent Scalar) {
	if l.MinSize != minSize || l.Ascent != ascent || l.Descent != descent {
		l.MinSize = minSize
		l.Ascent = ascent
		l.Descent = descent
		l.Cache.RecordContentChange()
	}
}

func (l *Leaf) HorizontalRequirements() Requirements {
	return CacheHorizontalLayoutRequirements(l.Cache, l.Counter(), func() Requirements {
		return Requirements{Size: l.MinSize.X, Growth: ResolveGrowth(l.Cache.Spec.XAlign, l.Cache.Spec.Growth)}
	})
}

func (l *Leaf) VerticalRequirements(width Scalar) Requirements {
	return CacheVerticalLayoutRequirements(l.Cache, l.Counter(), width, func() Requirements {
		return Requirements{Size: l.MinSize.Y, Ascent: l.Ascent, Descent: l.Descent,
			Growth: ResolveGrowth(l.Cache.Spec.YAlign, l.Cache.Spec.Growth)}
	})
}

func (l *Leaf) SetRelativeAssignment(a Assignment) {
	CacheRelativeAssignment(l.Cache, l.Counter(), a, func() Assignment {
		return resolveLeafRegion(a, l.MinSize, l.Ascent, l.Descent, l.Cache.Spec)
	})
}

func resolveLeafRegion(a Assignment, minSize Vector, ascent, descent Scalar, spec Spec) Assignment {
	region := a.Region
	w := minSize.X
	switch ResolveAlignment(spec.XAlign, AlignFill) {
	case AlignFill, AlignGrow:
		w = region.Size.X
	}
	h := minSize.Y
	switch ResolveAlignment(spec.YAlign, AlignFill) {
	case AlignFill, AlignGrow:
		h = region.Size.Y
	}

	x := region.Origin.X
	switch ResolveAlignment(spec.XAlign, AlignFill) {
	case AlignCenter:
		x += (region.Size.X - w) / 2
	case AlignEnd:
		x += region.Size.X - w
	}

	y := region.Origin.Y
	switch ResolveAlignment(spec.YAlign, AlignFill) {
	case AlignCenter:
		y += (region.Size.Y - h) / 2
	case AlignEnd:
		y += region.Size.Y - h
	case AlignBaseline:
		y += a.Baseline - ascent
	}

	return Assignment{Region: Box{Origin: Vector{X: x, Y: y}, Size: Vector{X: w, Y: h}}, Baseline: ascent}
}

// --- surplus distribution shared by Row, Grid columns -----------------

// distributeWidths gives each child at least its required width, then
// hands any surplus out proportionally to growth factor. If the assigned
// width falls short of the sum required, children simply keep their
// required widths (no shrink-below-minimum support).
func distributeWidths(required []Scalar, growth []float64, assigned Scalar) []Scalar {
	out := make([]Scalar, len(required))
	copy(out, required)

	var sumRequired Scalar
	var sumGrowth float64
	for i := range required {
		sumRequired += required[i]
		sumGrowth += growth[i]
	}
	surplus := assigned - sumRequired
	if surplus <= 0 || sumGrowth <= 0 {
		return out
	}
	var given Scalar
	for i := range out {
		if growth[i] <= 0 {
			continue
		}
		share := Scalar(float64(surplus) * growth[i] / sumGrowth)
		out[i] += share
		given += share
	}
	// Dump any leftover (rounding remainder) onto the last growing child.
	if rem := surplus - given; rem != 0 {
		for i := len(out) - 1; i >= 0; i-- {
			if growth[i] > 0 {
				out[i] += rem
				break
			}
		}
	}
	return out
}

// --- Row ----------------------------------------------------------------

type Row struct {
	Cache    *Cacher
	Counter  Counter
	Children []Node
}

func NewRow(spec Spec, parent *Cacher, counter Counter, children []Node) *Row {
	return &Row{Cache: NewCacher(spec, parent), Counter: counter, Children: children}
}

func (r *Row) HorizontalRequirements() Requirements {
	return CacheHorizontalLayoutRequirements(r.Cache, r.Counter(), func() Requirements {
		var size Scalar
		var growth float64
		for _, c := range r.Children {
			req := c.HorizontalRequirements()
			size += req.Size
			growth += req.Growth
		}
		return Requirements{Size: size, Growth: growth}
	})
}

func (r *Row) childWidths(width Scalar) []Scalar {
	required := make([]Scalar, len(r.Children))
	growth := make([]float64, len(r.Children))
	for i, c := range r.Children {
		req := c.HorizontalRequirements()
		required[i] = req.Size
		growth[i] = req.Growth
	}
	return distributeWidths(required, growth, width)
}

func (r *Row) VerticalRequirements(width Scalar) Requirements {
	return CacheVerticalLayoutRequirements(r.Cache, r.Counter(), width, func() Requirements {
		widths := r.childWidths(width)
		var size, ascent, descent Scalar
		for i, c := range r.Children {
			req := c.VerticalRequirements(widths[i])
			if req.Size > size {
				size = req.Size
			}
			if req.Ascent > ascent {
				ascent = req.Ascent
			}
			if req.Descent > descent {
				descent = req.Descent
			}
		}
		return Requirements{Size: size, Ascent: ascent, Descent: descent}
	})
}

func (r *Row) SetRelativeAssignment(a Assignment) {
	CacheRelativeAssignment(r.Cache, r.Counter(), a, func() Assignment {
		widths := r.childWidths(a.Region.Size.X)
		x := a.Region.Origin.X
		for i, c := range r.Children {
			c.SetRelativeAssignment(Assignment{
				Region: Box{Origin: Vector{X: x, Y: a.Region.Origin.Y}, Size: Vector{X: widths[i], Y: a.Region.Size.Y}},
				Baseline: a.Baseline,
			})
			x += widths[i]
		}
		return a
	})
}

// --- Column ---------------------------------------------------------------

type Column struct {
	Cache    *Cacher
	Counter  Counter
	Children []Node
}

func NewColumn(spec Spec, parent *Cacher, counter Counter, children []Node) *Column {
	return &Column{Cache: NewCacher(spec, parent), Counter: counter, Children: children}
}

func (c *Column) HorizontalRequirements() Requirements {
	return CacheHorizontalLayoutRequirements(c.Cache, c.Counter(), func() Requirements {
		var size Scalar
		for _, child := range c.Children {
			if req := child.HorizontalRequirements(); req.Size > size {
				size = req.Size
			}
		}
		return Requirements{Size: size}
	})
}

func (c *Column) VerticalRequirements(width Scalar) Requirements {
	return CacheVerticalLayoutRequirements(c.Cache, c.Counter(), width, func() Requirements {
		var total, ascent, descent Scalar
		var growth float64
		for i, child := range c.Children {
			req := child.VerticalRequirements(width)
			growth += req.Growth
			if i == 0 {
				ascent = req.Ascent
				descent = req.Descent
				total = req.Size
				continue
			}
			total += req.Size
			descent += req.Size
		}
		return Requirements{Size: total, Ascent: ascent, Descent: descent, Growth: growth}
	})
}

func (c *Column) SetRelativeAssignment(a Assignment) {
	CacheRelativeAssignment(c.Cache, c.Counter(), a, func() Assignment {
		y := a.Region.Origin.Y
		for _, child := range c.Children {
			req := child.VerticalRequirements(a.Region.Size.X)
			child.SetRelativeAssignment(Assignment{
				Region: Box{Origin: Vector{X: a.Region.Origin.X, Y: y}, Size: Vector{X: a.Region.Size.X, Y: req.Size}},
				Baseline: req.Ascent,
			})
			y += req.Size
		}
		return a
	})
}

// --- Layered ---------------------------------------------------------------

type Layered struct {
	Cache    *Cacher
	Counter  Counter
	Children []Node
}

func NewLayered(spec Spec, parent *Cacher, counter Counter, children []Node) *Layered {
	return &Layered{Cache: NewCacher(spec, parent), Counter: counter, Children: children}
}

func (l *Layered) HorizontalRequirements() Requirements {
	return CacheHorizontalLayoutRequirements(l.Cache, l.Counter(), func() Requirements {
		var size Scalar
		for _, c := range l.Children {
			if req := c.HorizontalRequirements(); req.Size > size {
				size = req.Size
			}
		}
		return Requirements{Size: size}
	})
}

func (l *Layered) VerticalRequirements(width Scalar) Requirements {
	return CacheVerticalLayoutRequirements(l.Cache, l.Counter(), width, func() Requirements {
		var size, ascent, descent Scalar
		for _, c := range l.Children {
			req := c.VerticalRequirements(width)
			if req.Size > size {
				size = req.Size
			}
			if req.Ascent > ascent {
				ascent = req.Ascent
			}
			if req.Descent > descent {
				descent = req.Descent
			}
		}
		return Requirements{Size: size, Ascent: ascent, Descent: descent}
	})
}

func (l *Layered) SetRelativeAssignment(a Assignment) {
	CacheRelativeAssignment(l.Cache, l.Counter(), a, func() Assignment {
		for _, c := range l.Children {
			c.SetRelativeAssignment(a)
		}
		return a
	})
}

// --- Rotated ----------------------------------------------------------------

// Rotated swaps its single child's axes, as if composing a 90°
// counter-clockwise transform into the geometry context for non-refresh
// passes. Multiple children degenerate to Layered behavior.
type Rotated struct {
	Cache    *Cacher
	Counter  Counter
	Children []Node
}

func NewRotated(spec Spec, parent *Cacher, counter Counter, children []Node) *Rotated {
	return &Rotated{Cache: NewCacher(spec, parent), Counter: counter, Children: children}
}

func (r *Rotated) HorizontalRequirements() Requirements {
	return CacheHorizontalLayoutRequirements(r.Cache, r.Counter(), func() Requirements {
		if len(r.Children) != 1 {
			var size Scalar
			for _, c := range r.Children {
				if req := c.HorizontalRequirements(); req.Size > size {
					size = req.Size
				}
			}
			return Requirements{Size: size}
		}
		// Horizontal extent of the rotated child is its vertical extent
		// measured at its own (still unknown) width; approximate with its
		// horizontal requirement's size as a stand-in axis length.
		child := r.Children[0]
		vreq := child.VerticalRequirements(child.HorizontalRequirements().Size)
		return Requirements{Size: vreq.Size}
	})
}

func (r *Rotated) VerticalRequirements(width Scalar) Requirements {
	return CacheVerticalLayoutRequirements(r.Cache, r.Counter(), width, func() Requirements {
		if len(r.Children) != 1 {
			var size, ascent, descent Scalar
			for _, c := range r.Children {
				req := c.VerticalRequirements(width)
				if req.Size > size {
					size = req.Size
				}
				if req.Ascent > ascent {
					ascent = req.Ascent
				}
				if req.Descent > descent {
					descent = req.Descent
				}
			}
			return Requirements{Size: size, Ascent: ascent, Descent: descent}
		}
		child := r.Children[0]
		hreq := child.HorizontalRequirements()
		return Requirements{Size: hreq.Size, Ascent: hreq.Size, Descent: 0}
	})
}

func (r *Rotated) SetRelativeAssignment(a Assignment) {
	CacheRelativeAssignment(r.Cache, r.Counter(), a, func() Assignment {
		if len(r.Children) != 1 {
			for _, c := range r.Children {
				c.SetRelativeAssignment(a)
			}
			return a
		}
		// Swap width/height for the rotated region handed to the child.
		swapped := Box{
			Origin: Vector{X: a.Region.Origin.Y, Y: a.Region.Origin.X},
			Size:   Vector{X: a.Region.Size.Y, Y: a.Region.Size.X},
		}
		r.Children[0].SetRelativeAssignment(Assignment{Region: swapped, Baseline: a.Baseline})
		return a
	})
}

// --- Flow (horizontal) -----------------------------------------------------

type Flow struct {
	Cache    *Cacher
	Counter  Counter
	Children []Node
	XAlign   Alignment // default AlignFill per the flow's own x-alignment flag
}

func NewFlow(spec Spec, parent *Cacher, counter Counter, children []Node) *Flow {
	xa := spec.XAlign
	if xa == AlignUnset {
		xa = AlignFill
	}
	return &Flow{Cache: NewCacher(spec, parent), Counter: counter, Children: children, XAlign: xa}
}

type flowRow struct {
	children []Node
	widths   []Scalar
	height   Scalar
	ascent   Scalar
	descent  Scalar
}

func (f *Flow) wrap(width Scalar) []flowRow {
	var rows []flowRow
	var cur flowRow
	var curWidth Scalar
	for _, c := range f.Children {
		req := c.HorizontalRequirements()
		if len(cur.children) > 0 && curWidth+req.Size > width {
			rows = append(rows, finishFlowRow(cur, width))
			cur = flowRow{}
			curWidth = 0
		}
		cur.children = append(cur.children, c)
		cur.widths = append(cur.widths, req.Size)
		curWidth += req.Size
	}
	if len(cur.children) > 0 {
		rows = append(rows, finishFlowRow(cur, width))
	}
	return rows
}

func finishFlowRow(row flowRow, width Scalar) flowRow {
	for i, c := range row.children {
		vreq := c.VerticalRequirements(row.widths[i])
		h := vreq.Size
		if vreq.Ascent+vreq.Descent > h {
			h = vreq.Ascent + vreq.Descent
		}
		if h > row.height {
			row.height = h
		}
		if vreq.Ascent > row.ascent {
			row.ascent = vreq.Ascent
		}
		if vreq.Descent > row.descent {
			row.descent = vreq.Descent
		}
	}
	return row
}

func (f *Flow) HorizontalRequirements() Requirements {
	return CacheHorizontalLayoutRequirements(f.Cache, f.Counter(), func() Requirements {
		var size Scalar
		for _, c := range f.Children {
			size += c.HorizontalRequirements().Size
		}
		return Requirements{Size: size}
	})
}

func (f *Flow) VerticalRequirements(width Scalar) Requirements {
	return CacheVerticalLayoutRequirements(f.Cache, f.Counter(), width, func() Requirements {
		rows := f.wrap(width)
		var total Scalar
		var ascent, descent Scalar
		for i, row := range rows {
			if i == 0 {
				ascent = row.ascent
				descent = row.descent
			}
			total += row.height
		}
		return Requirements{Size: total, Ascent: ascent, Descent: descent}
	})
}

func (f *Flow) SetRelativeAssignment(a Assignment) {
	CacheRelativeAssignment(f.Cache, f.Counter(), a, func() Assignment {
		rows := f.wrap(a.Region.Size.X)
		y := a.Region.Origin.Y
		for _, row := range rows {
			var rowRequired Scalar
			for _, w := range row.widths {
				rowRequired += w
			}
			x := a.Region.Origin.X
			extra := Scalar(0)
			if f.XAlign == AlignCenter {
				x += (a.Region.Size.X - rowRequired) / 2
			} else if f.XAlign == AlignEnd {
				x += a.Region.Size.X - rowRequired
			} else if f.XAlign == AlignFill && len(row.children) > 0 {
				extra = (a.Region.Size.X - rowRequired) / Scalar(len(row.children))
			}
			for i, c := range row.children {
				w := row.widths[i] + extra
				c.SetRelativeAssignment(Assignment{
					Region:   Box{Origin: Vector{X: x, Y: y}, Size: Vector{X: w, Y: row.height}},
					Baseline: row.ascent,
				})
				x += w
			}
			y += row.height
		}
		return a
	})
}

// --- Vertical flow -----------------------------------------------------

type VerticalFlow struct {
	Cache    *Cacher
	Counter  Counter
	Children []Node
}

func NewVerticalFlow(spec Spec, parent *Cacher, counter Counter, children []Node) *VerticalFlow {
	return &VerticalFlow{Cache: NewCacher(spec, parent), Counter: counter, Children: children}
}

func (v *VerticalFlow) columnWidth() Scalar {
	var w Scalar
	for _, c := range v.Children {
		if req := c.HorizontalRequirements(); req.Size > w {
			w = req.Size
		}
	}
	return w
}

// columns greedily accumulates children top-to-bottom until a column's
// height meets the target average, then starts a new column.
func (v *VerticalFlow) columns(width Scalar) [][]Node {
	colWidth := v.columnWidth()
	var total Scalar
	heights := make([]Scalar, len(v.Children))
	for i, c := range v.Children {
		h := c.VerticalRequirements(colWidth).Size
		heights[i] = h
		total += h
	}
	numCols := width / colWidth
	if numCols < 1 {
		numCols = 1
	}
	target := total / numCols
	if target == 0 {
		target = total
	}

	var cols [][]Node
	var cur []Node
	var curHeight Scalar
	for i, c := range v.Children {
		cur = append(cur, c)
		curHeight += heights[i]
		if curHeight >= target && len(cols) < int(numCols)-1 {
			cols = append(cols, cur)
			cur = nil
			curHeight = 0
		}
	}
	if len(cur) > 0 {
		cols = append(cols, cur)
	}
	return cols
}

func (v *VerticalFlow) HorizontalRequirements() Requirements {
	return CacheHorizontalLayoutRequirements(v.Cache, v.Counter(), func() Requirements {
		return Requirements{Size: v.columnWidth()}
	})
}

func (v *VerticalFlow) VerticalRequirements(width Scalar) Requirements {
	return CacheVerticalLayoutRequirements(v.Cache, v.Counter(), width, func() Requirements {
		cols := v.columns(width)
		var maxHeight Scalar
		colWidth := v.columnWidth()
		for _, col := range cols {
			var h Scalar
			for _, c := range col {
				h += c.VerticalRequirements(colWidth).Size
			}
			if h > maxHeight {
				maxHeight = h
			}
		}
		return Requirements{Size: maxHeight}
	})
}

func (v *VerticalFlow) SetRelativeAssignment(a Assignment) {
	CacheRelativeAssignment(v.Cache, v.Counter(), a, func() Assignment {
		cols := v.columns(a.Region.Size.X)
		colWidth := v.columnWidth()
		x := a.Region.Origin.X
		for _, col := range cols {
			y := a.Region.Origin.Y
			for _, c := range col {
				h := c.VerticalRequirements(colWidth).Size
				c.SetRelativeAssignment(Assignment{Region: Box{Origin: Vector{X: x, Y: y}, Size: Vector{X: colWidth, Y: h}}})
				y += h
			}
			x += colWidth
		}
		return a
	})
}

// --- Clamped -----------------------------------------------------------

type Clamped struct {
	Cache    *Cacher
	Counter  Counter
	Child    Node
	MaxWidth  Scalar // <= 0 means unlimited
	MaxHeight Scalar
}

func NewClamped(spec Spec, parent *Cacher, counter Counter, child Node, maxWidth, maxHeight Scalar) *Clamped {
	return &Clamped{Cache: NewCacher(spec, parent), Counter: counter, Child: child, MaxWidth: maxWidth, MaxHeight: maxHeight}
}

func (c *Clamped) clampWidth(w Scalar) Scalar {
	if c.MaxWidth > 0 && w > c.MaxWidth {
		return c.MaxWidth
	}
	return w
}

func (c *Clamped) clampHeight(h Scalar) Scalar {
	if c.MaxHeight > 0 && h > c.MaxHeight {
		return c.MaxHeight
	}
	return h
}

func (c *Clamped) HorizontalRequirements() Requirements {
	return CacheHorizontalLayoutRequirements(c.Cache, c.Counter(), func() Requirements {
		req := c.Child.HorizontalRequirements()
		req.Size = c.clampWidth(req.Size)
		return req
	})
}

func (c *Clamped) VerticalRequirements(width Scalar) Requirements {
	return CacheVerticalLayoutRequirements(c.Cache, c.Counter(), width, func() Requirements {
		req := c.Child.VerticalRequirements(c.clampWidth(width))
		req.Size = c.clampHeight(req.Size)
		return req
	})
}

func (c *Clamped) SetRelativeAssignment(a Assignment) {
	CacheRelativeAssignment(c.Cache, c.Counter(), a, func() Assignment {
		w := c.clampWidth(a.Region.Size.X)
		h := c.clampHeight(a.Region.Size.Y)
		region := Box{
			Origin: Vector{
				X: a.Region.Origin.X + (a.Region.Size.X-w)/2,
				Y: a.Region.Origin.Y + (a.Region.Size.Y-h)/2,
			},
			Size: Vector{X: w, Y: h},
		}
		c.Child.SetRelativeAssignment(Assignment{Region: region, Baseline: a.Baseline})
		return a
	})
}

// --- Bordered ------------------------------------------------------------

type Bordered struct {
	Cache   *Cacher
	Counter Counter
	Child   Node
	Inset   BorderWidth
}

func NewBordered(spec Spec, parent *Cacher, counter Counter, child Node, inset BorderWidth) *Bordered {
	return &Bordered{Cache: NewCacher(spec, parent), Counter: counter, Child: child, Inset: inset}
}

func (b *Bordered) HorizontalRequirements() Requirements {
	return CacheHorizontalLayoutRequirements(b.Cache, b.Counter(), func() Requirements {
		req := b.Child.HorizontalRequirements()
		req.Size += b.Inset.Horizontal()
		return req
	})
}

func (b *Bordered) VerticalRequirements(width Scalar) Requirements {
	return CacheVerticalLayoutRequirements(b.Cache, b.Counter(), width, func() Requirements {
		req := b.Child.VerticalRequirements(width - b.Inset.Horizontal())
		req.Size += b.Inset.Vertical()
		req.Ascent += b.Inset.Top
		return req
	})
}

func (b *Bordered) SetRelativeAssignment(a Assignment) {
	CacheRelativeAssignment(b.Cache, b.Counter(), a, func() Assignment {
		region := Box{
			Origin: Vector{X: a.Region.Origin.X + b.Inset.Left, Y: a.Region.Origin.Y + b.Inset.Top},
			Size:   Vector{X: a.Region.Size.X - b.Inset.Horizontal(), Y: a.Region.Size.Y - b.Inset.Vertical()},
		}
		b.Child.SetRelativeAssignment(Assignment{Region: region, Baseline: a.Baseline - b.Inset.Top})
		return a
	})
}

// --- Floating ------------------------------------------------------------

// Floating detaches its child from the parent's layout flow entirely: the
// child is measured and assigned a region at the origin sized to its own
// measurement, clamped to caller-supplied bounds. The parent's layout is
// never consulted or affected; placing the floating root on screen is the
// caller's job.
type Floating struct {
	Child             Node
	MinWidth, MinHeight Scalar
	MaxWidth, MaxHeight Scalar
}

func NewFloating(child Node, minW, minH, maxW, maxH Scalar) *Floating {
	return &Floating{Child: child, MinWidth: minW, MinHeight: minH, MaxWidth: maxW, MaxHeight: maxH}
}

// Resolve measures and assigns the floating child, returning the region it
// ended up with (always rooted at the origin).
func (f *Floating) Resolve() Box {
	w := f.Child.HorizontalRequirements().Size
	w = clampScalar(w, f.MinWidth, f.MaxWidth)
	vreq := f.Child.VerticalRequirements(w)
	h := clampScalar(vreq.Size, f.MinHeight, f.MaxHeight)

	region := Box{Origin: Vector{}, Size: Vector{X: w, Y: h}}
	f.Child.SetRelativeAssignment(Assignment{Region: region, Baseline: vreq.Ascent})
	return region
}

func clampScalar(v, lo, hi Scalar) Scalar {
	if lo > 0 && v < lo {
		v = lo
	}
	if hi > 0 && v > hi {
		v = hi
	}
	return v
}

// --- Grid / uniform grid -------------------------------------------------

// GridRow is one row of a Grid: it owns its children (one per column it
// participates in) and registers itself with the parent grid on refresh.
type GridRow struct {
	Cache    *Cacher
	Counter  Counter
	Children []Node
	grid     *Grid
}

// Grid lays children out in rows and shared columns. Uniform grids fold
// every row's per-column requirement into one shared column requirement;
// nonuniform grids keep per-column requirements distinct.
type Grid struct {
	Cache       *Cacher
	Counter     Counter
	Rows        []*GridRow
	Uniform     bool
	ColumnSpacing Scalar
}

func NewGrid(spec Spec, parent *Cacher, counter Counter, uniform bool, columnSpacing Scalar) *Grid {
	return &Grid{Cache: NewCacher(spec, parent), Counter: counter, Uniform: uniform, ColumnSpacing: columnSpacing}
}

// AddRow creates and registers a new row, wiring its cacher's content
// changes to propagate to every sibling row in the grid so a column-width
// change anywhere invalidates every row that shares that column.
func (g *Grid) AddRow(spec Spec, children []Node) *GridRow {
	row := &GridRow{Cache: NewCacher(spec, g.Cache), Counter: g.Counter, Children: children, grid: g}
	g.Rows = append(g.Rows, row)
	g.wireSiblings()
	return row
}

func (g *Grid) wireSiblings() {
	for _, row := range g.Rows {
		var sibs []*Cacher
		for _, other := range g.Rows {
			if other != row {
				sibs = append(sibs, other.Cache)
			}
		}
		row.Cache.SetSiblings(sibs)
	}
}

func (g *Grid) numColumns() int {
	max := 0
	for _, row := range g.Rows {
		if len(row.Children) > max {
			max = len(row.Children)
		}
	}
	return max
}

// columnRequirements folds per-row, per-column requirements into the
// shared (uniform) or distinct (nonuniform) column requirement set.
func (g *Grid) columnRequirements() []Requirements {
	n := g.numColumns()
	cols := make([]Requirements, n)
	for _, row := range g.Rows {
		for i, child := range row.Children {
			req := child.HorizontalRequirements()
			if req.Size > cols[i].Size {
				cols[i].Size = req.Size
			}
			cols[i].Growth += req.Growth
		}
	}
	if g.Uniform {
		var shared Requirements
		for _, c := range cols {
			if c.Size > shared.Size {
				shared.Size = c.Size
			}
			shared.Growth += c.Growth
		}
		for i := range cols {
			cols[i] = shared
		}
	}
	return cols
}

func (g *Grid) columnWidths(assigned Scalar) []Scalar {
	cols := g.columnRequirements()
	n := len(cols)
	if n == 0 {
		return nil
	}
	available := assigned - g.ColumnSpacing*Scalar(n-1)
	required := make([]Scalar, n)
	growth := make([]float64, n)
	for i, c := range cols {
		required[i] = c.Size
		growth[i] = c.Growth
	}
	if g.Uniform {
		// Equal distribution regardless of individual growth factors.
		for i := range growth {
			growth[i] = 1
		}
	}
	return distributeWidths(required, growth, available)
}

func (g *Grid) HorizontalRequirements() Requirements {
	return CacheHorizontalLayoutRequirements(g.Cache, g.Counter(), func() Requirements {
		cols := g.columnRequirements()
		var size Scalar
		var growth float64
		for i, c := range cols {
			size += c.Size
			growth += c.Growth
			if i > 0 {
				size += g.ColumnSpacing
			}
		}
		return Requirements{Size: size, Growth: growth}
	})
}

func (g *Grid) VerticalRequirements(width Scalar) Requirements {
	return CacheVerticalLayoutRequirements(g.Cache, g.Counter(), width, func() Requirements {
		widths := g.columnWidths(width)
		var total, ascent, descent Scalar
		for i, row := range g.Rows {
			var rowHeight, rowAscent, rowDescent Scalar
			for j, child := range row.Children {
				if j >= len(widths) {
					continue
				}
				req := child.VerticalRequirements(widths[j])
				if req.Size > rowHeight {
					rowHeight = req.Size
				}
				if req.Ascent > rowAscent {
					rowAscent = req.Ascent
				}
				if req.Descent > rowDescent {
					rowDescent = req.Descent
				}
			}
			if i == 0 {
				ascent = rowAscent
				descent = rowDescent
			}
			total += rowHeight
		}
		return Requirements{Size: total, Ascent: ascent, Descent: descent}
	})
}

func (g *Grid) SetRelativeAssignment(a Assignment) {
	CacheRelativeAssignment(g.Cache, g.Counter(), a, func() Assignment {
		widths := g.columnWidths(a.Region.Size.X)
		y := a.Region.Origin.Y
		for _, row := range g.Rows {
			var rowHeight Scalar
			for j, child := range row.Children {
				if j >= len(widths) {
					continue
				}
				if req := child.VerticalRequirements(widths[j]); req.Size > rowHeight {
					rowHeight = req.Size
				}
			}
			x := a.Region.Origin.X
			for j, child := range row.Children {
				if j >= len(widths) {
					continue
				}
				child.SetRelativeAssignment(Assignment{
					Region: Box{Origin: Vector{X: x, Y: y}, Size: Vector{X: widths[j], Y: rowHeight}},
				})
				x += widths[j] + g.ColumnSpacing
			}
			y += rowHeight
		}
		return a
	})
}
