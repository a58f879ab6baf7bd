// Package layout partitions one axis of a character-cell display into
// non-overlapping segments according to declarative sizing constraints.
//
// The core is the pure Solve function, which resolves a constraint list
// against an axis length. Layout wraps it for rectangular areas: pick a
// Direction, list Constraints, optionally set spacing, margin, and a Flex
// policy, then Split a Rect into sub-rects.
//
// Constraint kinds, in shrink-priority order (first to give up space when
// the container is too small):
//
//	Fill(w)        leftover absorber, weighted
//	Ratio(n, d)    n/d of the distributable length
//	Percentage(p)  p% of the distributable length
//	Length(v)      exactly v cells
//	Max(v)         at most v cells
//	Min(v)         at least v cells (hard floor, absorbs excess after Fill)
//
// The same table read backwards decides who absorbs excess. Two solvers fed
// the same inputs must produce identical segment boundaries; the ordering
// and the rounding rules (nearest with ties away from zero, remainders to
// the earliest index or gap) are part of the contract.
package layout

// Layout describes how to split a Rect: the axis, the per-segment
// constraints, the flex policy for leftover space, inter-segment spacing,
// and an outer margin.
type Layout struct {
	direction   Direction
	constraints []Constraint
	flex        Flex
	spacing     int
	margin      int
}

// NewLayout creates a Layout splitting along dir with the given constraints
// and FlexLegacy leftover placement.
func NewLayout(dir Direction, constraints ...Constraint) *Layout {
	return &Layout{direction: dir, constraints: constraints}
}

// WithFlex sets the leftover-space policy.
func (l *Layout) WithFlex(f Flex) *Layout {
	l.flex = f
	return l
}

// WithSpacing sets the gap in cells between adjacent segments. Negative
// values are treated as 0.
func (l *Layout) WithSpacing(s int) *Layout {
	if s < 0 {
		s = 0
	}
	l.spacing = s
	return l
}

// WithMargin sets the outer margin in cells on all four sides. Negative
// values are treated as 0.
func (l *Layout) WithMargin(m int) *Layout {
	if m < 0 {
		m = 0
	}
	l.margin = m
	return l
}

// Split divides area into len(constraints) non-overlapping Rects along the
// layout direction. The cross-axis extent of every Rect matches the inner
// area. Split is stateless: each call re-derives its output from the
// current inputs.
func (l *Layout) Split(area Rect) []Rect {
	n := len(l.constraints)
	if n == 0 {
		return nil
	}

	inner := area.Inner(l.margin)
	axis := inner.Width
	if l.direction == Vertical {
		axis = inner.Height
	}

	segs := Solve(axis, l.constraints, l.spacing, l.flex)

	rects := make([]Rect, n)
	for i, s := range segs {
		if l.direction == Horizontal {
			rects[i] = Rect{X: inner.X + s.Offset, Y: inner.Y, Width: s.Length, Height: inner.Height}
		} else {
			rects[i] = Rect{X: inner.X, Y: inner.Y + s.Offset, Width: inner.Width, Height: s.Length}
		}
	}
	return rects
}
