package preset

import (
	"fmt"

	"gitlab.com/tinyland/lab/flexgrid/pkg/layout"
)

// ResolvedPane is a named pane with its computed screen area.
type ResolvedPane struct {
	Name string
	Area layout.Rect
}

// Resolve turns a preset into concrete pane rectangles for the given area:
// one vertical solve over the row constraints, then one horizontal solve
// per row over its pane constraints. Malformed constraint or flex strings
// surface as errors; geometry itself cannot fail.
func Resolve(p Preset, area layout.Rect) ([]ResolvedPane, error) {
	if len(p.Rows) == 0 {
		return nil, nil
	}

	flex := layout.FlexLegacy
	if p.Flex != "" {
		f, err := layout.ParseFlex(p.Flex)
		if err != nil {
			return nil, fmt.Errorf("preset %q: %w", p.Name, err)
		}
		flex = f
	}

	rowConstraints := make([]layout.Constraint, len(p.Rows))
	for i, row := range p.Rows {
		c, err := layout.Parse(row.Constraint)
		if err != nil {
			return nil, fmt.Errorf("preset %q row %d: %w", p.Name, i, err)
		}
		rowConstraints[i] = c
	}

	bands := layout.NewLayout(layout.Vertical, rowConstraints...).
		WithFlex(flex).
		WithSpacing(p.Spacing).
		Split(area)

	var panes []ResolvedPane
	for i, row := range p.Rows {
		specs := make([]string, len(row.Panes))
		for j, pane := range row.Panes {
			specs[j] = pane.Constraint
		}
		cs, err := layout.ParseAll(specs)
		if err != nil {
			return nil, fmt.Errorf("preset %q row %d: %w", p.Name, i, err)
		}

		cols := layout.NewLayout(layout.Horizontal, cs...).
			WithFlex(flex).
			WithSpacing(p.Spacing).
			Split(bands[i])

		for j, pane := range row.Panes {
			panes = append(panes, ResolvedPane{Name: pane.Name, Area: cols[j]})
		}
	}
	return panes, nil
}

// Find returns the resolved pane with the given name, or false if the
// preset has no such pane.
func Find(panes []ResolvedPane, name string) (ResolvedPane, bool) {
	for _, p := range panes {
		if p.Name == name {
			return p, true
		}
	}
	return ResolvedPane{}, false
}
