package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"gitlab.com/tinyland/lab/flexgrid/pkg/components"
	"gitlab.com/tinyland/lab/flexgrid/pkg/terminal"
)

// HeaderWidget is a one-line banner with the program name and a summary
// of the detected terminal.
type HeaderWidget struct {
	style lipgloss.Style
}

// NewHeaderWidget creates the banner with the given accent color.
func NewHeaderWidget(accent string) *HeaderWidget {
	return &HeaderWidget{
		style: lipgloss.NewStyle().Foreground(lipgloss.Color(accent)).Bold(true),
	}
}

func (w *HeaderWidget) ID() string                       { return "header" }
func (w *HeaderWidget) Title() string                    { return "flexgrid" }
func (w *HeaderWidget) Update(_ tea.Msg) tea.Cmd         { return nil }
func (w *HeaderWidget) HandleKey(_ tea.KeyMsg) tea.Cmd   { return nil }

// View renders the banner line, padded to the pane width.
func (w *HeaderWidget) View(width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}

	parts := []string{"flexgrid"}
	if caps := terminal.Cached(); caps != nil {
		parts = append(parts, fmt.Sprintf("%dx%d", caps.Size.Cols, caps.Size.Rows))
		if caps.TrueColor {
			parts = append(parts, "truecolor")
		}
		if caps.Mux {
			parts = append(parts, "mux")
		}
		if caps.SSH {
			parts = append(parts, "ssh")
		}
	}

	line := strings.Join(parts, " · ")
	return w.style.Render(components.Fit(line, width))
}

// HintsWidget is the one-line key hint bar shown in the status pane.
type HintsWidget struct {
	style lipgloss.Style
}

// NewHintsWidget creates the hint bar with the given muted color.
func NewHintsWidget(muted string) *HintsWidget {
	return &HintsWidget{
		style: lipgloss.NewStyle().Foreground(lipgloss.Color(muted)),
	}
}

func (w *HintsWidget) ID() string                     { return "status" }
func (w *HintsWidget) Title() string                  { return "Keys" }
func (w *HintsWidget) Update(_ tea.Msg) tea.Cmd       { return nil }
func (w *HintsWidget) HandleKey(_ tea.KeyMsg) tea.Cmd { return nil }

// View renders the hints, truncated or padded to the pane width.
func (w *HintsWidget) View(width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	hints := "tab:focus  enter:expand  p:preset  f:flex  ?:help  q:quit"
	return w.style.Render(components.Fit(hints, width))
}
