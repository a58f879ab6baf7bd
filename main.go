// flexgrid is a constraint-based terminal layout toolkit.
//
// It partitions one-dimensional space (terminal rows or columns) across
// constraints like fixed lengths, percentages, ratios, bounds, and
// weighted fills, with selectable flex modes for distributing leftover
// space. The binary ships an interactive demo and a command-line solver.
//
// Usage:
//
//	flexgrid [flags]
//
// Flags:
//
//	-demo            Launch the interactive demo (default mode)
//	-solve string    Solve a comma-separated constraint list, e.g. "30%,min:20,fill:1"
//	-width int       Container length for -solve (0 = terminal width)
//	-flex string     Flex mode for -solve (legacy|start|end|center|space-between|space-evenly|space-around)
//	-spacing int     Cells between segments for -solve
//	-presets         List pane presets and exit
//	-themes          List color themes and exit
//	-inspect         Print detected terminal capabilities and exit
//	-config string   Path to configuration file (default: ~/.config/flexgrid/config.toml)
//	-verbose         Enable verbose logging
//	-version         Print version and exit
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"gitlab.com/tinyland/lab/flexgrid/pkg/config"
	"gitlab.com/tinyland/lab/flexgrid/pkg/layout"
	"gitlab.com/tinyland/lab/flexgrid/pkg/preset"
	"gitlab.com/tinyland/lab/flexgrid/pkg/terminal"
	"gitlab.com/tinyland/lab/flexgrid/pkg/theme"
	"gitlab.com/tinyland/lab/flexgrid/pkg/tui"
)

var (
	version = "0.1.0"
	commit  = "dev"
	date    = "unknown"
)

func main() {
	var (
		configPath  = flag.String("config", "", "Path to configuration file")
		runDemo     = flag.Bool("demo", false, "Launch the interactive demo")
		solveSpec   = flag.String("solve", "", "Solve a comma-separated constraint list")
		solveWidth  = flag.Int("width", 0, "Container length for -solve (0 = terminal width)")
		solveFlex   = flag.String("flex", "", "Flex mode for -solve")
		solveGap    = flag.Int("spacing", 0, "Cells between segments for -solve")
		listPresets = flag.Bool("presets", false, "List pane presets and exit")
		listThemes  = flag.Bool("themes", false, "List color themes and exit")
		inspect     = flag.Bool("inspect", false, "Print detected terminal capabilities and exit")
		verbose     = flag.Bool("verbose", false, "Enable verbose logging")
		showVersion = flag.Bool("version", false, "Print version and exit")
	)
	flag.Parse()

	if *showVersion {
		fmt.Printf("flexgrid %s (%s) built %s\n", version, commit, date)
		os.Exit(0)
	}

	logLevel := slog.LevelInfo
	if *verbose {
		logLevel = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)

	cfg, err := loadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	if cfg.Layout.PresetsFile != "" {
		user, err := preset.LoadFile(cfg.Layout.PresetsFile)
		if err != nil {
			logger.Warn("skipping user presets", "error", err)
		} else {
			for _, p := range user {
				preset.Register(p)
			}
			logger.Debug("loaded user presets", "count", len(user), "file", cfg.Layout.PresetsFile)
		}
	}

	switch {
	case *listPresets:
		printPresets()

	case *listThemes:
		for _, name := range theme.Names() {
			fmt.Println(name)
		}

	case *inspect:
		printCapabilities()

	case *solveSpec != "":
		if err := runSolve(*solveSpec, *solveWidth, *solveFlex, *solveGap); err != nil {
			fmt.Fprintf(os.Stderr, "%v\n", err)
			os.Exit(1)
		}

	default:
		// -demo is also the default mode when no other flag selects one.
		if *runDemo {
			logger.Debug("starting demo", "preset", cfg.Layout.Preset)
		}
		if err := tui.Run(cfg); err != nil {
			logger.Error("demo error", "error", err)
			os.Exit(1)
		}
	}
}

// loadConfig reads an explicit config file or falls back to the standard
// search paths.
func loadConfig(path string) (*config.Config, error) {
	if path != "" {
		return config.LoadFromFile(path)
	}
	return config.Load()
}

// runSolve parses the constraint list, solves it against the container
// length, and prints one line per segment plus a cell diagram.
func runSolve(spec string, width int, flexName string, spacing int) error {
	constraints, err := layout.ParseAll(strings.Split(spec, ","))
	if err != nil {
		return err
	}

	flex := layout.FlexLegacy
	if flexName != "" {
		if flex, err = layout.ParseFlex(flexName); err != nil {
			return err
		}
	}

	if width <= 0 {
		width = terminal.GetSize().Cols
	}

	segments := layout.Solve(width, constraints, spacing, flex)
	for i, s := range segments {
		fmt.Printf("%2d  %-8s  [%3d, %3d)  len %d\n", i, constraints[i], s.Offset, s.End(), s.Length)
	}
	fmt.Println(diagram(width, segments))
	return nil
}

// diagram draws one character per cell: the segment index for covered
// cells, a dot for gaps.
func diagram(width int, segments []layout.Segment) string {
	cells := make([]rune, width)
	for i := range cells {
		cells[i] = '·'
	}
	for i, s := range segments {
		glyph := rune('0' + i%10)
		for x := s.Offset; x < s.End() && x < width; x++ {
			cells[x] = glyph
		}
	}
	return string(cells)
}

// printPresets lists every registered preset with its description.
func printPresets() {
	for _, name := range preset.Names() {
		p := preset.Get(name)
		fmt.Printf("%-12s %s\n", name, p.Description)
	}
}

// printCapabilities dumps the detected terminal summary.
func printCapabilities() {
	caps := terminal.DetectCapabilities()
	fmt.Printf("tty:        %v\n", caps.TTY)
	fmt.Printf("profile:    %v\n", caps.Profile)
	fmt.Printf("truecolor:  %v\n", caps.TrueColor)
	fmt.Printf("ssh:        %v\n", caps.SSH)
	fmt.Printf("mux:        %v\n", caps.Mux)
	fmt.Printf("size:       %dx%d\n", caps.Size.Cols, caps.Size.Rows)
}
