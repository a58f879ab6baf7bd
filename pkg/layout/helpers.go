package layout

// SplitVertical splits area top-to-bottom with default flex and no spacing.
func SplitVertical(area Rect, constraints ...Constraint) []Rect {
	return NewLayout(Vertical, constraints...).Split(area)
}

// SplitHorizontal splits area left-to-right with default flex and no spacing.
func SplitHorizontal(area Rect, constraints ...Constraint) []Rect {
	return NewLayout(Horizontal, constraints...).Split(area)
}

// Builder provides a fluent API for constructing layouts.
type Builder struct {
	layout *Layout
}

// NewBuilder creates a builder for a horizontal layout with no constraints.
func NewBuilder() *Builder {
	return &Builder{layout: &Layout{direction: Horizontal}}
}

// Direction sets the split direction.
func (b *Builder) Direction(d Direction) *Builder {
	b.layout.direction = d
	return b
}

// Constraints sets the constraint list.
func (b *Builder) Constraints(cs ...Constraint) *Builder {
	b.layout.constraints = cs
	return b
}

// Flex sets the leftover-space policy.
func (b *Builder) Flex(f Flex) *Builder {
	b.layout.flex = f
	return b
}

// Spacing sets the gap between segments.
func (b *Builder) Spacing(s int) *Builder {
	b.layout.spacing = s
	return b
}

// Margin sets the outer margin.
func (b *Builder) Margin(m int) *Builder {
	b.layout.margin = m
	return b
}

// Split runs the built layout on the given area.
func (b *Builder) Split(area Rect) []Rect {
	return b.layout.Split(area)
}

// Build returns the underlying Layout for reuse.
func (b *Builder) Build() *Layout {
	return b.layout
}
