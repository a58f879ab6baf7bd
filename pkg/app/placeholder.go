package app

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"gitlab.com/tinyland/lab/flexgrid/pkg/components"
)

// PlaceholderWidget fills a pane with its title and the size it was
// rendered at. Useful for inspecting how presets and flex modes carve up
// the terminal before real widgets exist.
type PlaceholderWidget struct {
	id    string
	title string
}

// NewPlaceholder creates a PlaceholderWidget with the given id and title.
func NewPlaceholder(id, title string) *PlaceholderWidget {
	return &PlaceholderWidget{id: id, title: title}
}

// ID returns the widget's unique identifier.
func (w *PlaceholderWidget) ID() string { return w.id }

// Title returns the widget's display title.
func (w *PlaceholderWidget) Title() string { return w.title }

// Update is a no-op for the placeholder widget.
func (w *PlaceholderWidget) Update(_ tea.Msg) tea.Cmd { return nil }

// HandleKey is a no-op for the placeholder widget.
func (w *PlaceholderWidget) HandleKey(_ tea.KeyMsg) tea.Cmd { return nil }

// View centers the title and the current dimensions in the pane.
func (w *PlaceholderWidget) View(width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}

	body := []string{w.title}
	if height > 1 {
		body = append(body, fmt.Sprintf("%dx%d", width, height))
	}

	topPad := (height - len(body)) / 2
	if topPad < 0 {
		topPad = 0
	}

	var lines []string
	for i := 0; i < topPad; i++ {
		lines = append(lines, "")
	}
	for _, l := range body {
		lines = append(lines, components.AlignLine(l, width, components.AlignCenter))
	}
	if len(lines) > height {
		lines = lines[:height]
	}
	for len(lines) < height {
		lines = append(lines, "")
	}

	return strings.Join(lines, "\n")
}
