// Package tui assembles the interactive demo: concrete widgets for the
// pane arrangements in pkg/preset, and the program entrypoint that wires
// them into the app model.
package tui

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"gitlab.com/tinyland/lab/flexgrid/pkg/app"
	"gitlab.com/tinyland/lab/flexgrid/pkg/components"
	"gitlab.com/tinyland/lab/flexgrid/pkg/layout"
	"gitlab.com/tinyland/lab/flexgrid/pkg/theme"
)

const historyLimit = 240

// GaugeWidget shows live host gauges (CPU, memory, swap) with a CPU
// history sparkline underneath. Samples arrive through DataUpdateEvents
// that the widget schedules itself on ticks.
type GaugeWidget struct {
	id, title string

	gauge components.Gauge
	spark components.Sparkline
	cache *layout.Cache

	sampleEvery time.Duration
	lastSample  time.Time

	latest  Metrics
	history []float64
	sampled bool
}

// NewGaugeWidget creates the widget; every bounds how often a new host
// sample is requested.
func NewGaugeWidget(every time.Duration) *GaugeWidget {
	if every <= 0 {
		every = 2 * time.Second
	}
	return &GaugeWidget{
		id:          "gauges",
		title:       "Host",
		gauge:       components.NewGauge(),
		spark:       components.NewSparkline(),
		cache:       layout.NewCache(),
		sampleEvery: every,
	}
}

// ApplyTheme colors the gauge bars and the sparkline.
func (w *GaugeWidget) ApplyTheme(th theme.Theme) {
	w.gauge.FillStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(th.GaugeFill))
	w.gauge.WarnStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(th.GaugeWarn))
	w.gauge.CritStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(th.GaugeCrit))
	w.gauge.EmptyStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(th.GaugeEmpty))
	w.spark.Style = lipgloss.NewStyle().Foreground(lipgloss.Color(th.Spark))
}

func (w *GaugeWidget) ID() string    { return w.id }
func (w *GaugeWidget) Title() string { return w.title }

// Update schedules a sample on ticks and stores arriving samples.
func (w *GaugeWidget) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case app.TickEvent:
		if time.Since(w.lastSample) >= w.sampleEvery {
			w.lastSample = time.Now()
			return app.DataFetchCmd("sysmetrics", func() (any, error) {
				return SampleMetrics()
			})
		}

	case app.DataUpdateEvent:
		if msg.Source != "sysmetrics" || msg.Err != nil {
			return nil
		}
		m, ok := msg.Data.(Metrics)
		if !ok {
			return nil
		}
		w.latest = m
		w.sampled = true
		w.history = append(w.history, m.CPUPercent)
		if len(w.history) > historyLimit {
			w.history = w.history[len(w.history)-historyLimit:]
		}
	}
	return nil
}

// HandleKey is a no-op; the gauge widget has no local keys.
func (w *GaugeWidget) HandleKey(_ tea.KeyMsg) tea.Cmd { return nil }

// View stacks the gauges over the sparkline, splitting the pane interior
// through the layout cache so repeated renders at the same size reuse the
// solved arrangement.
func (w *GaugeWidget) View(width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	if !w.sampled {
		return "sampling..."
	}

	area := layout.Rect{Width: width, Height: height}
	l := layout.NewLayout(layout.Vertical, layout.Length(4), layout.Fill(1))
	bands := w.cache.Split(l, area)

	rows := []components.GaugeRow{
		{Label: "cpu", Value: w.latest.CPUPercent, Max: 100},
		{Label: "mem", Value: w.latest.MemPercent, Max: 100},
		{Label: "swap", Value: w.latest.SwapPercent, Max: 100},
	}
	out := w.gauge.RenderMulti(rows, bands[0].Width)
	out += fmt.Sprintf("\nload %.2f", w.latest.Load1)

	if bands[1].Height > 0 {
		lo, hi := 0.0, 100.0
		w.spark.MinY, w.spark.MaxY = &lo, &hi
		out += "\n" + w.spark.Render(w.history, bands[1].Width)
	}
	return out
}
