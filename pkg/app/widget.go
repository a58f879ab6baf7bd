package app

import tea "github.com/charmbracelet/bubbletea"

// Widget is one rectangular unit of the screen. The model assigns widgets
// to preset panes in registration order and drives them through the
// bubbletea update cycle.
type Widget interface {
	// ID is the unique identifier used for focus targeting.
	ID() string
	// Title is drawn in the pane border.
	Title() string
	// Update receives every message the root model sees.
	Update(msg tea.Msg) tea.Cmd
	// HandleKey receives key messages only while the widget is focused.
	HandleKey(msg tea.KeyMsg) tea.Cmd
	// View renders the widget's interior at the given size.
	View(width, height int) string
}
