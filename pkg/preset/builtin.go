package preset

// dashboardPreset is the default three-band layout: a one-line header, a
// body split into a sidebar and a main pane, and a one-line status bar.
func dashboardPreset() Preset {
	return Preset{
		Name:        "dashboard",
		Description: "Header, sidebar plus main pane, status bar",
		Rows: []Row{
			{Constraint: "min:1", Panes: []Pane{
				{Name: "header", Constraint: "fill:1"},
			}},
			{Constraint: "fill:1", Panes: []Pane{
				{Name: "sidebar", Constraint: "30%"},
				{Name: "main", Constraint: "fill:1"},
			}},
			{Constraint: "1", Panes: []Pane{
				{Name: "status", Constraint: "fill:1"},
			}},
		},
	}
}

// splitPreset halves the screen into two equal columns under a header.
func splitPreset() Preset {
	return Preset{
		Name:        "split",
		Description: "Two equal columns under a header",
		Rows: []Row{
			{Constraint: "min:1", Panes: []Pane{
				{Name: "header", Constraint: "fill:1"},
			}},
			{Constraint: "fill:1", Panes: []Pane{
				{Name: "left", Constraint: "1/2"},
				{Name: "right", Constraint: "1/2"},
			}},
		},
	}
}

// fullPreset dedicates everything but the status line to a single pane,
// for narrow terminals.
func fullPreset() Preset {
	return Preset{
		Name:        "full",
		Description: "One pane and a status bar",
		Rows: []Row{
			{Constraint: "fill:1", Panes: []Pane{
				{Name: "main", Constraint: "fill:1"},
			}},
			{Constraint: "1", Panes: []Pane{
				{Name: "status", Constraint: "fill:1"},
			}},
		},
	}
}

// readerPreset centers a bounded column of text, leaving even margins on
// wide terminals.
func readerPreset() Preset {
	return Preset{
		Name:        "reader",
		Description: "Centered reading column with a status bar",
		Flex:        "center",
		Rows: []Row{
			{Constraint: "fill:1", Panes: []Pane{
				{Name: "main", Constraint: "max:100"},
			}},
			{Constraint: "1", Panes: []Pane{
				{Name: "status", Constraint: "fill:1"},
			}},
		},
	}
}
