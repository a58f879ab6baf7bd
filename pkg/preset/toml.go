package preset

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// file is the on-disk shape: a flat list of presets so a single TOML file
// can define several arrangements.
type file struct {
	Presets []Preset `toml:"preset"`
}

// LoadFile reads user-defined presets from a TOML file and returns them
// keyed by name. Presets with no name or no rows are rejected rather than
// silently dropped.
func LoadFile(path string) (map[string]Preset, error) {
	var f file
	if _, err := toml.DecodeFile(path, &f); err != nil {
		return nil, fmt.Errorf("load presets %s: %w", path, err)
	}

	out := make(map[string]Preset, len(f.Presets))
	for i, p := range f.Presets {
		if p.Name == "" {
			return nil, fmt.Errorf("load presets %s: preset %d has no name", path, i)
		}
		if len(p.Rows) == 0 {
			return nil, fmt.Errorf("load presets %s: preset %q has no rows", path, p.Name)
		}
		out[p.Name] = p
	}
	return out, nil
}

// SaveFile writes presets to a TOML file, creating parent directories as
// needed. Built-ins saved this way become a starting point for editing.
func SaveFile(path string, presets ...Preset) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("save presets %s: %w", path, err)
	}

	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("save presets %s: %w", path, err)
	}
	defer out.Close()

	if err := toml.NewEncoder(out).Encode(file{Presets: presets}); err != nil {
		return fmt.Errorf("save presets %s: %w", path, err)
	}
	return nil
}
