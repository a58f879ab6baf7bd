package theme

// builtinThemes returns the palettes compiled into the binary.
func builtinThemes() []Theme {
	return []Theme{
		{
			Name:       "default",
			Accent:     "12",
			Border:     "8",
			Muted:      "244",
			Track:      "238",
			Thumb:      "12",
			GaugeFill:  "10",
			GaugeWarn:  "11",
			GaugeCrit:  "9",
			GaugeEmpty: "238",
			Spark:      "12",
		},
		{
			Name:       "gruvbox",
			Accent:     "#fabd2f",
			Border:     "#504945",
			Muted:      "#928374",
			Track:      "#3c3836",
			Thumb:      "#fabd2f",
			GaugeFill:  "#b8bb26",
			GaugeWarn:  "#fabd2f",
			GaugeCrit:  "#fb4934",
			GaugeEmpty: "#3c3836",
			Spark:      "#83a598",
		},
		{
			Name:       "nord",
			Accent:     "#88c0d0",
			Border:     "#4c566a",
			Muted:      "#616e88",
			Track:      "#3b4252",
			Thumb:      "#88c0d0",
			GaugeFill:  "#a3be8c",
			GaugeWarn:  "#ebcb8b",
			GaugeCrit:  "#bf616a",
			GaugeEmpty: "#3b4252",
			Spark:      "#81a1c1",
		},
		{
			Name:       "dracula",
			Accent:     "#bd93f9",
			Border:     "#44475a",
			Muted:      "#6272a4",
			Track:      "#44475a",
			Thumb:      "#bd93f9",
			GaugeFill:  "#50fa7b",
			GaugeWarn:  "#f1fa8c",
			GaugeCrit:  "#ff5555",
			GaugeEmpty: "#44475a",
			Spark:      "#8be9fd",
		},
		{
			Name:       "mono",
			Accent:     "15",
			Border:     "8",
			Muted:      "7",
			Track:      "8",
			Thumb:      "15",
			GaugeFill:  "15",
			GaugeWarn:  "7",
			GaugeCrit:  "15",
			GaugeEmpty: "8",
			Spark:      "7",
		},
	}
}
