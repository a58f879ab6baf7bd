package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"gitlab.com/tinyland/lab/flexgrid/pkg/layout"
)

// PaneStyles holds the lipgloss styles used for pane chrome.
type PaneStyles struct {
	Border  lipgloss.Style // border glyphs of unfocused panes
	Focused lipgloss.Style // border glyphs of the focused pane
	Title   lipgloss.Style // the title segment in the top border
}

// DefaultPaneStyles builds pane styles from two colors: the accent for
// focus and titles, the border color for everything else.
func DefaultPaneStyles(accent, border string) PaneStyles {
	return PaneStyles{
		Border:  lipgloss.NewStyle().Foreground(lipgloss.Color(border)),
		Focused: lipgloss.NewStyle().Foreground(lipgloss.Color(accent)),
		Title:   lipgloss.NewStyle().Foreground(lipgloss.Color(accent)).Bold(true),
	}
}

// Pane draws a bordered frame with an optional title, sized to a layout
// rect. The frame consumes one cell on each side; content is truncated or
// padded to the interior.
type Pane struct {
	Title   string
	Align   Align // title placement in the top border
	Focused bool
	Border  lipgloss.Border
	Styles  PaneStyles
}

// NewPane returns a pane with a rounded border and default styles.
func NewPane(title string) Pane {
	return Pane{
		Title:  title,
		Border: lipgloss.RoundedBorder(),
		Styles: DefaultPaneStyles("12", "8"),
	}
}

// Render draws the pane over the given area. Areas too small for a border
// (under 2x2) render as nothing. The returned string has area.Height lines
// of area.Width cells each.
func (p Pane) Render(area layout.Rect, content string) string {
	if area.Width < 2 || area.Height < 2 {
		return ""
	}

	frame := p.Styles.Border
	if p.Focused {
		frame = p.Styles.Focused
	}

	interior := area.Width - 2
	rows := area.Height - 2

	var lines []string
	if content != "" {
		lines = strings.Split(content, "\n")
	}

	var b strings.Builder
	b.WriteString(p.topBorder(frame, interior))
	b.WriteByte('\n')

	blank := strings.Repeat(" ", interior)
	for i := 0; i < rows; i++ {
		b.WriteString(frame.Render(p.Border.Left))
		if i < len(lines) {
			b.WriteString(Fit(lines[i], interior))
		} else {
			b.WriteString(blank)
		}
		b.WriteString(frame.Render(p.Border.Right))
		b.WriteByte('\n')
	}

	b.WriteString(frame.Render(p.Border.BottomLeft + strings.Repeat(p.Border.Bottom, interior) + p.Border.BottomRight))
	return b.String()
}

// topBorder builds the top border line, splicing the title into the bar
// when there is room for at least one glyph on each side of it.
func (p Pane) topBorder(frame lipgloss.Style, interior int) string {
	bar := frame.Render(p.Border.TopLeft + strings.Repeat(p.Border.Top, interior) + p.Border.TopRight)
	if p.Title == "" || interior < 4 {
		return bar
	}

	title := p.Title
	if Width(title) > interior-4 {
		title = Truncate(title, interior-4, "…")
	}
	seg := " " + title + " "
	fill := interior - Width(seg)

	var left, right int
	switch p.Align {
	case AlignRight:
		left, right = fill-1, 1
	case AlignCenter:
		left = fill / 2
		right = fill - left
	default:
		left, right = 1, fill-1
	}

	var b strings.Builder
	b.WriteString(frame.Render(p.Border.TopLeft + strings.Repeat(p.Border.Top, left)))
	b.WriteString(p.Styles.Title.Render(seg))
	b.WriteString(frame.Render(strings.Repeat(p.Border.Top, right) + p.Border.TopRight))
	return b.String()
}
