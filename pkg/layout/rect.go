package layout

// Rect is a rectangular area in terminal cells. X/Y locate the top-left
// corner; Width/Height extend right and down.
type Rect struct {
	X, Y, Width, Height int
}

// Area returns the number of cells covered by the rectangle.
func (r Rect) Area() int {
	return r.Width * r.Height
}

// Empty reports whether the rectangle covers no cells.
func (r Rect) Empty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Right returns the X coordinate one past the right edge.
func (r Rect) Right() int {
	return r.X + r.Width
}

// Bottom returns the Y coordinate one past the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.Height
}

// Inner shrinks the rectangle by margin cells on every side. Margins that
// would turn a dimension negative clamp it to zero instead.
func (r Rect) Inner(margin int) Rect {
	if margin < 0 {
		margin = 0
	}
	w := r.Width - 2*margin
	h := r.Height - 2*margin
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return Rect{X: r.X + margin, Y: r.Y + margin, Width: w, Height: h}
}

// Contains reports whether the cell at (px, py) lies inside the rectangle.
func (r Rect) Contains(px, py int) bool {
	return px >= r.X && px < r.Right() && py >= r.Y && py < r.Bottom()
}

// Intersect returns the overlap of two rectangles, or a zero-size Rect when
// they do not overlap.
func (r Rect) Intersect(other Rect) Rect {
	x1 := max(r.X, other.X)
	y1 := max(r.Y, other.Y)
	x2 := min(r.Right(), other.Right())
	y2 := min(r.Bottom(), other.Bottom())
	if x2 <= x1 || y2 <= y1 {
		return Rect{}
	}
	return Rect{X: x1, Y: y1, Width: x2 - x1, Height: y2 - y1}
}

// Direction selects the axis along which a Layout partitions space.
// Two-dimensional layouts are two independent axis solves.
type Direction int

const (
	// Horizontal splits left-to-right; constraints control widths.
	Horizontal Direction = iota
	// Vertical splits top-to-bottom; constraints control heights.
	Vertical
)
