package scroll

// State is the scroll position of one scrollable region. The surrounding
// application owns it: mutate it in response to input events, read it once
// per frame when rendering. Position is stored as set and only clamped when
// geometry is derived, so callers may overshoot freely.
type State struct {
	// Content is the total number of addressable positions.
	Content int
	// Viewport is the number of positions visible at once.
	Viewport int
	// Position is the current scroll offset from the start.
	Position int
}

// Max returns the largest useful position: content beyond the viewport,
// or 0 when everything fits.
func (s State) Max() int {
	if s.Content <= s.Viewport {
		return 0
	}
	return s.Content - s.Viewport
}

// Clamped returns the position clamped to [0, Max].
func (s State) Clamped() int {
	return clamp(s.Position, 0, s.Max())
}

// AtStart reports whether the clamped position is 0.
func (s State) AtStart() bool {
	return s.Clamped() == 0
}

// AtEnd reports whether the clamped position is Max.
func (s State) AtEnd() bool {
	return s.Clamped() == s.Max()
}

// Next advances the position by one, saturating at Max.
func (s *State) Next() {
	s.ScrollBy(1)
}

// Prev moves the position back by one, saturating at 0.
func (s *State) Prev() {
	s.ScrollBy(-1)
}

// First jumps to the start.
func (s *State) First() {
	s.Position = 0
}

// Last jumps to the end of the scrollable range.
func (s *State) Last() {
	s.Position = s.Max()
}

// ScrollBy moves the position by delta, clamping the result to the valid
// range.
func (s *State) ScrollBy(delta int) {
	s.Position = clamp(s.Clamped()+delta, 0, s.Max())
}
