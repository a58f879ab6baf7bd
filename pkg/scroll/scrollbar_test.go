package scroll

import (
	"strings"
	"testing"
)

func TestScrollbarVerticalGlyphRun(t *testing.T) {
	bar := NewScrollbar(Vertical)
	st := State{Content: 100, Viewport: 10}
	out := bar.View(10, st)

	lines := strings.Split(out, "\n")
	if len(lines) != 10 {
		t.Fatalf("expected 10 lines, got %d: %q", len(lines), out)
	}
	if lines[0] != "↑" || lines[9] != "↓" {
		t.Errorf("arrow glyphs missing: first=%q last=%q", lines[0], lines[9])
	}
	// Track is 8 cells; at position 0 the thumb hugs the top.
	if lines[1] != "█" {
		t.Errorf("thumb should start at the top of the track, got %q", lines[1])
	}
	if lines[8] != "│" {
		t.Errorf("bottom of track should be track glyph, got %q", lines[8])
	}
}

func TestScrollbarThumbTracksPosition(t *testing.T) {
	bar := NewScrollbar(Vertical).WithArrows("", "")
	st := State{Content: 100, Viewport: 10}

	st.Last()
	lines := strings.Split(bar.View(10, st), "\n")
	if lines[len(lines)-1] != "█" {
		t.Errorf("thumb should hug the bottom at max position, got %q", lines[len(lines)-1])
	}
	if lines[0] != "│" {
		t.Errorf("top should be track glyph at max position, got %q", lines[0])
	}
}

func TestScrollbarHorizontalSingleLine(t *testing.T) {
	bar := NewScrollbar(Horizontal)
	st := State{Content: 50, Viewport: 10}
	out := bar.View(12, st)

	if strings.Contains(out, "\n") {
		t.Errorf("horizontal scrollbar should be one line: %q", out)
	}
	runes := []rune(out)
	if len(runes) != 12 {
		t.Fatalf("expected 12 cells, got %d: %q", len(runes), out)
	}
	if runes[0] != '←' || runes[11] != '→' {
		t.Errorf("arrow glyphs missing: %q", out)
	}
}

func TestScrollbarCustomSymbols(t *testing.T) {
	bar := NewScrollbar(Horizontal).WithArrows("", "").WithSymbols("░", "▓")
	st := State{Content: 20, Viewport: 10, Position: 0}
	out := bar.View(8, st)

	if !strings.Contains(out, "▓") || !strings.Contains(out, "░") {
		t.Errorf("custom symbols not used: %q", out)
	}
}

func TestScrollbarFullThumbWhenContentFits(t *testing.T) {
	bar := NewScrollbar(Vertical).WithArrows("", "")
	st := State{Content: 5, Viewport: 10}
	out := bar.View(6, st)

	if strings.Contains(out, "│") {
		t.Errorf("fully visible content should fill the track with thumb glyphs: %q", out)
	}
}

func TestScrollbarDegenerateLengths(t *testing.T) {
	bar := NewScrollbar(Vertical)
	st := State{Content: 100, Viewport: 10}

	if out := bar.View(0, st); out != "" {
		t.Errorf("zero length should render nothing, got %q", out)
	}
	if out := bar.View(1, st); out != "↑" {
		t.Errorf("length 1 leaves room for the begin arrow only, got %q", out)
	}
}
