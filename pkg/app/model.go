package app

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"gitlab.com/tinyland/lab/flexgrid/pkg/components"
	"gitlab.com/tinyland/lab/flexgrid/pkg/layout"
	"gitlab.com/tinyland/lab/flexgrid/pkg/preset"
)

// flexCycle is the order the "f" key steps through. The empty entry means
// "use the preset's own flex mode".
var flexCycle = []string{
	"", "legacy", "start", "end", "center",
	"space-between", "space-evenly", "space-around",
}

// Config holds the model's runtime settings.
type Config struct {
	RefreshInterval time.Duration
	Preset          string
	Flex            string // overrides the preset's flex mode when non-empty
	Spacing         int
	Styles          components.PaneStyles
}

// DefaultConfig returns the settings used when no configuration file is
// present.
func DefaultConfig() Config {
	return Config{
		RefreshInterval: 250 * time.Millisecond,
		Preset:          "dashboard",
		Styles:          components.DefaultPaneStyles("12", "8"),
	}
}

// AppModel is the root bubbletea model. It resolves the active preset
// against the terminal size and renders one widget per pane.
type AppModel struct {
	cfg Config

	widgets     map[string]Widget
	widgetOrder []string

	focusedWidget  string
	expandedWidget string

	width  int
	height int

	layoutDirty bool
	quitting    bool
	helpVisible bool

	dataStore map[string]any
}

// NewAppModel creates the root model with widgets assigned to panes in
// argument order. The first widget starts focused.
func NewAppModel(cfg Config, widgets ...Widget) AppModel {
	m := AppModel{
		cfg:         cfg,
		widgets:     make(map[string]Widget, len(widgets)),
		layoutDirty: true,
		dataStore:   make(map[string]any),
	}
	if m.cfg.Preset == "" {
		m.cfg.Preset = "dashboard"
	}
	for _, w := range widgets {
		if w == nil {
			continue
		}
		m.widgets[w.ID()] = w
		m.widgetOrder = append(m.widgetOrder, w.ID())
	}
	if len(m.widgetOrder) > 0 {
		m.focusedWidget = m.widgetOrder[0]
	}
	return m
}

// Init starts the refresh ticker.
func (m AppModel) Init() tea.Cmd {
	return TickCmd(m.cfg.RefreshInterval)
}

// Update implements tea.Model.
func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.layoutDirty = true

	case TickEvent:
		model, cmd := m.broadcast(msg)
		return model, tea.Batch(TickCmd(m.cfg.RefreshInterval), cmd)

	case DataUpdateEvent:
		if msg.Err == nil {
			m.dataStore[msg.Source] = msg.Data
		}

	case PaneFocusEvent:
		m.FocusWidget(msg.WidgetID)

	case PresetChangeEvent:
		m.cfg.Preset = msg.Preset
		m.layoutDirty = true

	case FlexChangeEvent:
		m.cfg.Flex = msg.Flex
		m.layoutDirty = true

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m.broadcast(msg)
}

// handleKey processes global keybindings and forwards everything else to
// the focused widget.
func (m AppModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		m.quitting = true
		return m, tea.Quit
	case "tab":
		m.CycleFocusForward()
	case "shift+tab":
		m.CycleFocusBackward()
	case "enter":
		m.ToggleExpand()
	case "esc":
		m.expandedWidget = ""
	case "?":
		m.helpVisible = !m.helpVisible
	case "p":
		m.nextPreset()
	case "f":
		m.nextFlex()
	default:
		if w, ok := m.widgets[m.focusedWidget]; ok {
			return m, w.HandleKey(msg)
		}
	}
	return m, nil
}

// broadcast forwards a message to every widget and batches their commands.
func (m AppModel) broadcast(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
	for _, id := range m.widgetOrder {
		if cmd := m.widgets[id].Update(msg); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	if len(cmds) == 0 {
		return m, nil
	}
	return m, tea.Batch(cmds...)
}

// nextPreset advances to the next built-in arrangement.
func (m *AppModel) nextPreset() {
	names := preset.Names()
	for i, n := range names {
		if n == m.cfg.Preset {
			m.cfg.Preset = names[(i+1)%len(names)]
			m.layoutDirty = true
			return
		}
	}
	if len(names) > 0 {
		m.cfg.Preset = names[0]
		m.layoutDirty = true
	}
}

// nextFlex advances the flex override through flexCycle.
func (m *AppModel) nextFlex() {
	for i, f := range flexCycle {
		if f == m.cfg.Flex {
			m.cfg.Flex = flexCycle[(i+1)%len(flexCycle)]
			m.layoutDirty = true
			return
		}
	}
	m.cfg.Flex = ""
	m.layoutDirty = true
}

// View implements tea.Model.
func (m AppModel) View() string {
	if m.quitting {
		return ""
	}
	if m.width == 0 || m.height == 0 {
		return "Initializing..."
	}
	if m.helpVisible {
		return m.helpView()
	}

	area := layout.Rect{Width: m.width, Height: m.height}

	if m.expandedWidget != "" {
		return m.renderPane(preset.ResolvedPane{Name: m.expandedWidget, Area: area}, m.orderIndex(m.expandedWidget))
	}

	panes, err := preset.Resolve(m.activePreset(), area)
	if err != nil {
		return fmt.Sprintf("layout error: %v", err)
	}
	return m.compose(panes)
}

// activePreset is the configured preset with flex and spacing overrides
// applied.
func (m AppModel) activePreset() preset.Preset {
	p := preset.Get(m.cfg.Preset)
	if m.cfg.Flex != "" {
		p.Flex = m.cfg.Flex
	}
	if m.cfg.Spacing > 0 {
		p.Spacing = m.cfg.Spacing
	}
	return p
}

// compose assembles pane renders into a full screen. Panes arrive in
// row-major order from preset.Resolve; rows are joined horizontally with
// spacer blocks filling flex gaps, then stacked with blank lines for
// vertical gaps.
func (m AppModel) compose(panes []preset.ResolvedPane) string {
	var bands [][]preset.ResolvedPane
	for _, p := range panes {
		if n := len(bands); n > 0 && bands[n-1][0].Area.Y == p.Area.Y {
			bands[n-1] = append(bands[n-1], p)
		} else {
			bands = append(bands, []preset.ResolvedPane{p})
		}
	}

	var out []string
	y := 0
	idx := 0
	for _, band := range bands {
		for ; y < band[0].Area.Y; y++ {
			out = append(out, "")
		}

		cursor := 0
		var parts []string
		for _, rp := range band {
			if gap := rp.Area.X - cursor; gap > 0 {
				parts = append(parts, blankBlock(gap, rp.Area.Height))
			}
			parts = append(parts, m.renderPane(rp, idx))
			cursor = rp.Area.Right()
			idx++
		}

		row := lipgloss.JoinHorizontal(lipgloss.Top, parts...)
		out = append(out, strings.Split(row, "\n")...)
		y = band[0].Area.Bottom()
	}
	return strings.Join(out, "\n")
}

// renderPane draws the widget assigned to a pane, with border chrome when
// the pane is big enough for one. One-cell-high panes (status bars)
// render borderless.
func (m AppModel) renderPane(rp preset.ResolvedPane, idx int) string {
	var w Widget
	if idx >= 0 && idx < len(m.widgetOrder) {
		w = m.widgets[m.widgetOrder[idx]]
	}

	title := rp.Name
	focused := false
	if w != nil {
		title = w.Title()
		focused = w.ID() == m.focusedWidget
	}

	if rp.Area.Width < 2 || rp.Area.Height < 2 {
		content := ""
		if w != nil {
			content = w.View(rp.Area.Width, rp.Area.Height)
		}
		return fitBlock(content, rp.Area.Width, rp.Area.Height)
	}

	content := ""
	if w != nil {
		content = w.View(rp.Area.Width-2, rp.Area.Height-2)
	}

	pane := components.NewPane(title)
	pane.Focused = focused
	pane.Styles = m.cfg.Styles
	return pane.Render(rp.Area, content)
}

// helpView lists the global keybindings and the current layout settings.
func (m AppModel) helpView() string {
	flex := m.cfg.Flex
	if flex == "" {
		flex = "preset default"
	}
	lines := []string{
		"flexgrid",
		"",
		fmt.Sprintf("preset: %s    flex: %s", m.cfg.Preset, flex),
		"",
		"tab / shift+tab   cycle pane focus",
		"enter             expand focused pane",
		"esc               collapse",
		"p                 next preset",
		"f                 next flex mode",
		"?                 toggle this help",
		"q                 quit",
	}
	var b strings.Builder
	for _, l := range lines {
		b.WriteString(components.AlignLine(l, m.width, components.AlignCenter))
		b.WriteByte('\n')
	}
	return strings.TrimRight(b.String(), "\n")
}

// orderIndex returns the registration index of a widget ID, or -1.
func (m AppModel) orderIndex(id string) int {
	for i, w := range m.widgetOrder {
		if w == id {
			return i
		}
	}
	return -1
}

// blankBlock is a gap filler: height lines of width spaces.
func blankBlock(width, height int) string {
	line := strings.Repeat(" ", width)
	lines := make([]string, height)
	for i := range lines {
		lines[i] = line
	}
	return strings.Join(lines, "\n")
}

// fitBlock clips or pads content to exactly width x height cells.
func fitBlock(content string, width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	lines := strings.Split(content, "\n")
	out := make([]string, height)
	for i := range out {
		if i < len(lines) {
			out[i] = components.Fit(lines[i], width)
		} else {
			out[i] = strings.Repeat(" ", width)
		}
	}
	return strings.Join(out, "\n")
}

// Width returns the last known terminal width.
func (m AppModel) Width() int { return m.width }

// Height returns the last known terminal height.
func (m AppModel) Height() int { return m.height }

// LayoutDirty reports whether the pane arrangement changed since the last
// explicit reset.
func (m AppModel) LayoutDirty() bool { return m.layoutDirty }

// FocusedWidgetID returns the ID of the focused widget, or "".
func (m AppModel) FocusedWidgetID() string { return m.focusedWidget }

// ExpandedWidgetID returns the ID of the expanded widget, or "".
func (m AppModel) ExpandedWidgetID() string { return m.expandedWidget }

// Quitting reports whether a quit key was pressed.
func (m AppModel) Quitting() bool { return m.quitting }

// HelpVisible reports whether the help screen is showing.
func (m AppModel) HelpVisible() bool { return m.helpVisible }

// Preset returns the active preset name.
func (m AppModel) Preset() string { return m.cfg.Preset }

// DataStore exposes the latest data delivered by DataUpdateEvents.
func (m AppModel) DataStore() map[string]any { return m.dataStore }
