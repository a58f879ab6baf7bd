// Package preset defines named pane arrangements expressed as constraint
// strings. A preset is a vertical stack of rows, each row a horizontal run
// of named panes; both levels carry layout constraints in the compact text
// form understood by pkg/layout. Users pick built-in presets by name or
// define their own in TOML.
package preset

import "sort"

// Preset is one named arrangement.
type Preset struct {
	Name        string `toml:"name"`
	Description string `toml:"description,omitempty"`
	Flex        string `toml:"flex,omitempty"`    // flex mode name, default "legacy"
	Spacing     int    `toml:"spacing,omitempty"` // cells between rows and panes
	Rows        []Row  `toml:"rows"`
}

// Row is one horizontal band of the arrangement. Constraint sizes the row
// within the vertical stack; the panes split the row's width.
type Row struct {
	Constraint string `toml:"constraint"`
	Panes      []Pane `toml:"panes"`
}

// Pane is a named slot within a row. Constraint sizes it within the row.
type Pane struct {
	Name       string `toml:"name"`
	Constraint string `toml:"constraint"`
}

// builtins maps preset names to their definitions.
var builtins map[string]Preset

func init() {
	builtins = map[string]Preset{
		"dashboard": dashboardPreset(),
		"split":     splitPreset(),
		"full":      fullPreset(),
		"reader":    readerPreset(),
	}
}

// Register makes a preset available to Get. User presets loaded from
// TOML files override built-ins with the same name.
func Register(p Preset) {
	if p.Name == "" {
		return
	}
	builtins[p.Name] = p
}

// Get returns a named built-in preset, falling back to the dashboard
// preset for unknown names.
func Get(name string) Preset {
	if p, ok := builtins[name]; ok {
		return p
	}
	return builtins["dashboard"]
}

// Names returns all built-in preset names in sorted order.
func Names() []string {
	names := make([]string, 0, len(builtins))
	for k := range builtins {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

// SelectForSize auto-selects a preset name from the terminal width:
// narrow terminals get the single-pane preset, everything else the
// dashboard.
func SelectForSize(width int) string {
	if width < 100 {
		return "full"
	}
	return "dashboard"
}
