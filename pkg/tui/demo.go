package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"gitlab.com/tinyland/lab/flexgrid/pkg/app"
	"gitlab.com/tinyland/lab/flexgrid/pkg/components"
	"gitlab.com/tinyland/lab/flexgrid/pkg/config"
	"gitlab.com/tinyland/lab/flexgrid/pkg/preset"
	"gitlab.com/tinyland/lab/flexgrid/pkg/terminal"
	"gitlab.com/tinyland/lab/flexgrid/pkg/theme"
)

// Run starts the interactive demo and blocks until the user quits.
func Run(cfg *config.Config) error {
	caps := terminal.DetectCapabilities()
	th := resolveTheme(cfg.Theme)

	presetName := cfg.Layout.Preset
	if presetName == "" || presetName == "auto" {
		presetName = preset.SelectForSize(caps.Size.Cols)
	}

	appCfg := app.Config{
		RefreshInterval: cfg.General.TickInterval.Duration,
		Preset:          presetName,
		Flex:            cfg.Layout.Flex,
		Spacing:         cfg.Layout.Spacing,
		Styles:          paneStyles(th),
	}

	// Widgets fill panes in order: header, then the body panes, then the
	// status bar. The dashboard preset has a sidebar; others reuse the
	// same widget list with fewer panes.
	widgets := []app.Widget{
		NewHeaderWidget(th.Accent),
	}
	if cfg.Demo.Gauges {
		g := NewGaugeWidget(cfg.Demo.SampleInterval.Duration)
		g.ApplyTheme(th)
		widgets = append(widgets, g)
	} else {
		widgets = append(widgets, app.NewPlaceholder("gauges", "Host"))
	}
	sw := NewScrollWidget("scroll", "Scroll", demoText())
	sw.ApplyTheme(th)
	widgets = append(widgets,
		sw,
		NewHintsWidget(th.Muted),
	)

	model := app.NewAppModel(appCfg, widgets...)
	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run demo: %w", err)
	}
	return nil
}

// resolveTheme looks up the named palette and applies any per-color
// overrides from the config.
func resolveTheme(tc config.ThemeConfig) theme.Theme {
	th := theme.Get(tc.Name)
	if tc.Accent != "" {
		th.Accent = tc.Accent
	}
	if tc.Border != "" {
		th.Border = tc.Border
	}
	if tc.Muted != "" {
		th.Muted = tc.Muted
	}
	if tc.Track != "" {
		th.Track = tc.Track
	}
	if tc.Thumb != "" {
		th.Thumb = tc.Thumb
	}
	return th
}

// paneStyles maps the theme colors onto pane chrome styles.
func paneStyles(th theme.Theme) components.PaneStyles {
	return components.PaneStyles{
		Border:  lipgloss.NewStyle().Foreground(lipgloss.Color(th.Border)),
		Focused: lipgloss.NewStyle().Foreground(lipgloss.Color(th.Accent)),
		Title:   lipgloss.NewStyle().Foreground(lipgloss.Color(th.Accent)).Bold(true),
	}
}
