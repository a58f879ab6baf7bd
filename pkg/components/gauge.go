package components

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// Left-eighth block characters give the bar sub-cell precision: 8 fill
// levels per cell.
var gaugeBlocks = [9]rune{
	' ',
	'▏', // ▏
	'▎', // ▎
	'▍', // ▍
	'▌', // ▌
	'▋', // ▋
	'▊', // ▊
	'▉', // ▉
	'█', // █
}

// Gauge renders horizontal bar gauges with sub-cell precision. The fill
// style switches to warn/crit styles as the ratio crosses the thresholds.
type Gauge struct {
	FillStyle  lipgloss.Style
	WarnStyle  lipgloss.Style
	CritStyle  lipgloss.Style
	EmptyStyle lipgloss.Style
	WarnAt     float64 // ratio where WarnStyle takes over, 0 disables
	CritAt     float64 // ratio where CritStyle takes over, 0 disables
	ShowLabel  bool    // append a percent label after the bar
}

// GaugeRow is one entry in a stacked multi-gauge render.
type GaugeRow struct {
	Label string
	Value float64
	Max   float64
}

// NewGauge returns a gauge with green/amber/red fill styles and the usual
// 70%/90% thresholds.
func NewGauge() Gauge {
	return Gauge{
		FillStyle:  lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
		WarnStyle:  lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
		CritStyle:  lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
		EmptyStyle: lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
		WarnAt:     0.7,
		CritAt:     0.9,
		ShowLabel:  true,
	}
}

// Render draws one bar of the given width. The ratio value/max is clamped
// to [0, 1]; a non-positive max renders an empty bar.
func (g Gauge) Render(value, max float64, width int) string {
	if width <= 0 {
		return ""
	}

	ratio := 0.0
	if max > 0 {
		ratio = value / max
	}
	ratio = math.Min(1, math.Max(0, ratio))

	barWidth := width
	var label string
	if g.ShowLabel {
		label = fmt.Sprintf(" %3d%%", int(math.Round(ratio*100)))
		barWidth = width - runewidth.StringWidth(label)
		if barWidth < 1 {
			barWidth = 1
			label = ""
		}
	}

	return g.bar(ratio, barWidth) + label
}

// RenderMulti stacks one bar per row with labels aligned to the widest.
func (g Gauge) RenderMulti(rows []GaugeRow, width int) string {
	if len(rows) == 0 {
		return ""
	}

	labelWidth := 0
	for _, r := range rows {
		if w := runewidth.StringWidth(r.Label); w > labelWidth {
			labelWidth = w
		}
	}

	barWidth := width - labelWidth - 1
	if barWidth < 1 {
		barWidth = 1
	}

	lines := make([]string, len(rows))
	for i, r := range rows {
		lines[i] = runewidth.FillRight(r.Label, labelWidth) + " " + g.Render(r.Value, r.Max, barWidth)
	}
	return strings.Join(lines, "\n")
}

// bar builds the block-character run for a clamped ratio.
func (g Gauge) bar(ratio float64, width int) string {
	units := int(math.Round(ratio * float64(width) * 8))
	full := units / 8
	partial := units % 8

	fill := g.FillStyle
	if g.CritAt > 0 && ratio >= g.CritAt {
		fill = g.CritStyle
	} else if g.WarnAt > 0 && ratio >= g.WarnAt {
		fill = g.WarnStyle
	}

	var b strings.Builder
	if full > 0 {
		b.WriteString(fill.Render(strings.Repeat(string(gaugeBlocks[8]), full)))
	}
	if partial > 0 && full < width {
		b.WriteString(fill.Render(string(gaugeBlocks[partial])))
		full++
	}
	if empty := width - full; empty > 0 {
		b.WriteString(g.EmptyStyle.Render(strings.Repeat("·", empty)))
	}
	return b.String()
}
