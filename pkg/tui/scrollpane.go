package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"gitlab.com/tinyland/lab/flexgrid/pkg/layout"
	"gitlab.com/tinyland/lab/flexgrid/pkg/scroll"
	"gitlab.com/tinyland/lab/flexgrid/pkg/theme"
)

// ScrollWidget is a scrollable text pane: a bubbles viewport for the
// content and a proportional scrollbar in the rightmost column.
type ScrollWidget struct {
	id, title string
	vp        viewport.Model
	bar       *scroll.Scrollbar
}

// NewScrollWidget creates a scroll pane over static content.
func NewScrollWidget(id, title, content string) *ScrollWidget {
	vp := viewport.New(0, 0)
	vp.SetContent(content)
	return &ScrollWidget{
		id:    id,
		title: title,
		vp:    vp,
		bar:   scroll.NewScrollbar(scroll.Vertical).WithArrows("", ""),
	}
}

// SetContent replaces the pane's text and keeps the offset clamped.
func (w *ScrollWidget) SetContent(content string) {
	w.vp.SetContent(content)
}

// ApplyTheme colors the scrollbar track and thumb.
func (w *ScrollWidget) ApplyTheme(th theme.Theme) {
	w.bar.WithStyles(
		lipgloss.NewStyle().Foreground(lipgloss.Color(th.Track)),
		lipgloss.NewStyle().Foreground(lipgloss.Color(th.Thumb)),
		lipgloss.NewStyle().Foreground(lipgloss.Color(th.Muted)),
	)
}

func (w *ScrollWidget) ID() string    { return w.id }
func (w *ScrollWidget) Title() string { return w.title }

// Update is a no-op; sizing happens in View and keys in HandleKey.
func (w *ScrollWidget) Update(_ tea.Msg) tea.Cmd { return nil }

// HandleKey scrolls while the pane is focused.
func (w *ScrollWidget) HandleKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "up", "k":
		w.vp.SetYOffset(w.vp.YOffset - 1)
	case "down", "j":
		w.vp.SetYOffset(w.vp.YOffset + 1)
	case "pgup":
		w.vp.SetYOffset(w.vp.YOffset - w.vp.Height)
	case "pgdown", " ":
		w.vp.SetYOffset(w.vp.YOffset + w.vp.Height)
	case "home", "g":
		w.vp.GotoTop()
	case "end", "G":
		w.vp.GotoBottom()
	}
	return nil
}

// View lays the pane out as a fill column of text next to a one-cell
// scrollbar column.
func (w *ScrollWidget) View(width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	if width < 3 {
		return w.textOnly(width, height)
	}

	cols := layout.SplitHorizontal(
		layout.Rect{Width: width, Height: height},
		layout.Fill(1), layout.Length(1),
	)

	w.vp.Width = cols[0].Width
	w.vp.Height = height

	st := scroll.State{
		Content:  w.vp.TotalLineCount(),
		Viewport: height,
		Position: w.vp.YOffset,
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, w.vp.View(), w.bar.View(cols[1].Height, st))
}

// textOnly renders without a scrollbar when the pane is too narrow for
// one.
func (w *ScrollWidget) textOnly(width, height int) string {
	w.vp.Width = width
	w.vp.Height = height
	return w.vp.View()
}

// Position reports the current scroll offset in lines.
func (w *ScrollWidget) Position() int { return w.vp.YOffset }

// demoText is the filler shown by the demo's scroll pane.
func demoText() string {
	var b strings.Builder
	b.WriteString("flexgrid scroll pane\n")
	b.WriteString("====================\n\n")
	b.WriteString("Use j/k or the arrow keys to scroll, g/G for the ends.\n")
	b.WriteString("The bar on the right tracks the visible window.\n\n")
	for i := 1; i <= 200; i++ {
		fmt.Fprintf(&b, "%3d %s\n", i, strings.Repeat("·", (i*7)%31))
	}
	return b.String()
}
