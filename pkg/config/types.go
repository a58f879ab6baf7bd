package config

// Config is the root of the TOML configuration.
type Config struct {
	General GeneralConfig `toml:"general"`
	Layout  LayoutConfig  `toml:"layout"`
	Theme   ThemeConfig   `toml:"theme"`
	Demo    DemoConfig    `toml:"demo"`
}

// GeneralConfig holds settings that are not tied to a single screen.
type GeneralConfig struct {
	LogLevel     string   `toml:"log_level"`
	TickInterval Duration `toml:"tick_interval"`
}

// LayoutConfig selects and tunes the pane arrangement.
type LayoutConfig struct {
	// Preset names a built-in or user-defined arrangement. The special
	// value "auto" picks one from the terminal width at startup.
	Preset string `toml:"preset"`
	// Flex overrides the preset's flex mode when non-empty.
	Flex string `toml:"flex"`
	// Spacing is the number of blank cells between panes.
	Spacing int `toml:"spacing"`
	// PresetsFile points at a TOML file with extra user presets.
	PresetsFile string `toml:"presets_file"`
}

// ThemeConfig selects a named palette and optionally overrides single
// colors from it. Color values are anything lipgloss accepts: ANSI
// indexes ("12") or hex ("#5f87ff").
type ThemeConfig struct {
	// Name picks a registered palette; unknown names fall back to the
	// default palette.
	Name   string `toml:"name"`
	Accent string `toml:"accent"`
	Border string `toml:"border"`
	Muted  string `toml:"muted"`
	Track  string `toml:"track"`
	Thumb  string `toml:"thumb"`
}

// DemoConfig tunes the interactive demo.
type DemoConfig struct {
	Gauges         bool     `toml:"gauges"`
	SampleInterval Duration `toml:"sample_interval"`
}
