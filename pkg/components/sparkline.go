package components

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Vertical-eighth block characters: 8 height levels per cell.
var sparkBlocks = [8]rune{'▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

// Sparkline renders a series as a single line of block characters.
// With MinY/MaxY unset the Y range auto-scales to the visible window.
type Sparkline struct {
	Style lipgloss.Style
	MinY  *float64
	MaxY  *float64
}

// NewSparkline returns a sparkline in the default accent color.
func NewSparkline() Sparkline {
	return Sparkline{Style: lipgloss.NewStyle().Foreground(lipgloss.Color("12"))}
}

// Render draws the last width points of data. Fewer points than width
// renders a shorter line rather than padding.
func (s Sparkline) Render(data []float64, width int) string {
	if len(data) == 0 || width <= 0 {
		return ""
	}
	if len(data) > width {
		data = data[len(data)-width:]
	}

	minY, maxY := data[0], data[0]
	for _, v := range data[1:] {
		minY = math.Min(minY, v)
		maxY = math.Max(maxY, v)
	}
	if s.MinY != nil {
		minY = *s.MinY
	}
	if s.MaxY != nil {
		maxY = *s.MaxY
	}

	var b strings.Builder
	spread := maxY - minY
	for _, v := range data {
		idx := 3 // flat series sits at mid-height
		if spread > 0 {
			n := math.Min(1, math.Max(0, (v-minY)/spread))
			idx = int(math.Round(n * 7))
		}
		b.WriteRune(sparkBlocks[idx])
	}
	return s.Style.Render(b.String())
}
