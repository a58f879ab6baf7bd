// Package theme defines the color palettes used by the demo screens.
// Themes are looked up by name; unknown names fall back to the default
// palette so a typo in a config file never blanks the UI.
package theme

import (
	"sort"
	"strings"
	"sync"
)

// Theme is one complete palette. Values are anything lipgloss accepts:
// ANSI indexes ("12") or hex ("#5f87ff").
type Theme struct {
	Name string

	Accent string // focused borders, titles, highlights
	Border string // unfocused pane borders
	Muted  string // hint bars, secondary text

	// Scrollbar colors
	Track string
	Thumb string

	// Gauge colors
	GaugeFill  string
	GaugeWarn  string
	GaugeCrit  string
	GaugeEmpty string

	// Sparkline color
	Spark string
}

var (
	mu       sync.RWMutex
	registry = map[string]Theme{}
)

func init() {
	for _, t := range builtinThemes() {
		Register(t)
	}
}

// Get returns a named theme, falling back to the default palette.
func Get(name string) Theme {
	mu.RLock()
	defer mu.RUnlock()
	if t, ok := registry[strings.ToLower(name)]; ok {
		return t
	}
	return registry["default"]
}

// Names returns all registered theme names sorted alphabetically.
func Names() []string {
	mu.RLock()
	defer mu.RUnlock()
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Register adds a theme under its lowercase name, replacing any existing
// theme with that name.
func Register(t Theme) {
	if t.Name == "" {
		return
	}
	mu.Lock()
	defer mu.Unlock()
	registry[strings.ToLower(t.Name)] = t
}
