package scroll

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Orientation selects the axis a Scrollbar renders along.
type Orientation int

const (
	// Vertical renders one glyph per line, top to bottom.
	Vertical Orientation = iota
	// Horizontal renders a single line, left to right.
	Horizontal
)

// Scrollbar renders a proportional scrollbar as a run of glyphs: optional
// begin/end arrows at the track ends, a track symbol, and a thumb whose
// extent and offset come from Thumb. Placement next to the scrolled widget
// is the caller's concern; the scrollbar only produces the glyph run.
type Scrollbar struct {
	orientation Orientation
	track       string
	thumb       string
	begin       string // empty string disables the arrow
	end         string
	trackStyle  lipgloss.Style
	thumbStyle  lipgloss.Style
	arrowStyle  lipgloss.Style
}

// NewScrollbar creates a scrollbar with the conventional symbols for the
// orientation: "↑│█↓" vertically, "←─█→" horizontally, unstyled.
func NewScrollbar(o Orientation) *Scrollbar {
	b := &Scrollbar{orientation: o, thumb: "█"}
	if o == Vertical {
		b.track, b.begin, b.end = "│", "↑", "↓"
	} else {
		b.track, b.begin, b.end = "─", "←", "→"
	}
	return b
}

// WithSymbols overrides the track and thumb glyphs. Empty strings keep the
// current ones.
func (b *Scrollbar) WithSymbols(track, thumb string) *Scrollbar {
	if track != "" {
		b.track = track
	}
	if thumb != "" {
		b.thumb = thumb
	}
	return b
}

// WithArrows sets the begin and end arrow glyphs. Empty strings remove the
// arrows, giving the thumb the full length to travel.
func (b *Scrollbar) WithArrows(begin, end string) *Scrollbar {
	b.begin, b.end = begin, end
	return b
}

// WithStyles sets the lipgloss styles for the track, thumb, and arrows.
func (b *Scrollbar) WithStyles(track, thumb, arrow lipgloss.Style) *Scrollbar {
	b.trackStyle, b.thumbStyle, b.arrowStyle = track, thumb, arrow
	return b
}

// View renders the scrollbar for a region of the given length using the
// scroll state. Vertical scrollbars join their cells with newlines. A
// non-positive length yields an empty string.
func (b *Scrollbar) View(length int, st State) string {
	if length <= 0 {
		return ""
	}

	cells := make([]string, 0, length)
	if b.begin != "" && length > 0 {
		cells = append(cells, b.arrowStyle.Render(b.begin))
	}

	track := length - len(cells)
	if b.end != "" && track > 0 {
		track--
	}

	offset, thumb := Thumb(st.Content, st.Viewport, st.Clamped(), track)
	for i := 0; i < track; i++ {
		if i >= offset && i < offset+thumb {
			cells = append(cells, b.thumbStyle.Render(b.thumb))
		} else {
			cells = append(cells, b.trackStyle.Render(b.track))
		}
	}

	if b.end != "" && len(cells) < length {
		cells = append(cells, b.arrowStyle.Render(b.end))
	}

	sep := ""
	if b.orientation == Vertical {
		sep = "\n"
	}
	return strings.Join(cells, sep)
}
