// Package components provides ANSI-aware building blocks for panes laid
// out by pkg/layout: bordered pane chrome, bar gauges, sparklines, and the
// text primitives they share. All widths are terminal cells, so wide
// characters count as two and escape sequences count as zero.
package components

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-runewidth"
)

// Align controls horizontal placement within a fixed width.
type Align int

const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
)

// Width returns the visible width of s in terminal cells, ignoring ANSI
// escape sequences.
func Width(s string) int {
	return ansi.StringWidth(s)
}

// CellWidth returns the cell width of a single rune (0, 1, or 2).
func CellWidth(r rune) int {
	return runewidth.RuneWidth(r)
}

// Truncate cuts s to at most width cells, appending tail if a cut occurs.
// The tail counts toward the width.
func Truncate(s string, width int, tail string) string {
	if width <= 0 {
		return ""
	}
	return ansi.Truncate(s, width, tail)
}

// Fit truncates or right-pads s to exactly width cells.
func Fit(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if vis := Width(s); vis > width {
		return ansi.Truncate(s, width, "")
	} else if vis < width {
		return s + strings.Repeat(" ", width-vis)
	}
	return s
}

// AlignLine places s within width cells according to align, padding with
// spaces. Content wider than width is truncated. With center alignment an
// odd leftover space goes on the right.
func AlignLine(s string, width int, align Align) string {
	if width <= 0 {
		return ""
	}
	vis := Width(s)
	if vis >= width {
		return ansi.Truncate(s, width, "")
	}
	gap := width - vis
	switch align {
	case AlignRight:
		return strings.Repeat(" ", gap) + s
	case AlignCenter:
		left := gap / 2
		return strings.Repeat(" ", left) + s + strings.Repeat(" ", gap-left)
	default:
		return s + strings.Repeat(" ", gap)
	}
}

// Wrap word-wraps s at the given width, respecting escape sequences and
// wide characters. Returns the wrapped lines.
func Wrap(s string, width int) []string {
	if width <= 0 {
		return []string{s}
	}
	return strings.Split(ansi.Wrap(s, width, ""), "\n")
}
