package components

import "testing"

func TestWidthIgnoresEscapes(t *testing.T) {
	if got := Width("\x1b[31mred\x1b[0m"); got != 3 {
		t.Errorf("Width = %d, want 3", got)
	}
	if got := Width("日本"); got != 4 {
		t.Errorf("wide runes: Width = %d, want 4", got)
	}
}

func TestCellWidth(t *testing.T) {
	if got := CellWidth('a'); got != 1 {
		t.Errorf("CellWidth('a') = %d", got)
	}
	if got := CellWidth('日'); got != 2 {
		t.Errorf("CellWidth('日') = %d", got)
	}
}

func TestFit(t *testing.T) {
	if got := Fit("abc", 5); got != "abc  " {
		t.Errorf("pad: got %q", got)
	}
	if got := Fit("abcdef", 4); got != "abcd" {
		t.Errorf("truncate: got %q", got)
	}
	if got := Fit("abc", 0); got != "" {
		t.Errorf("zero width: got %q", got)
	}
}

func TestTruncateWithTail(t *testing.T) {
	if got := Truncate("abcdef", 4, "…"); got != "abc…" {
		t.Errorf("got %q", got)
	}
	if got := Truncate("ab", 4, "…"); got != "ab" {
		t.Errorf("short input should pass through, got %q", got)
	}
}

func TestAlignLine(t *testing.T) {
	if got := AlignLine("ab", 6, AlignLeft); got != "ab    " {
		t.Errorf("left: %q", got)
	}
	if got := AlignLine("ab", 6, AlignRight); got != "    ab" {
		t.Errorf("right: %q", got)
	}
	if got := AlignLine("ab", 5, AlignCenter); got != " ab  " {
		t.Errorf("center puts the odd space on the right: %q", got)
	}
}

func TestWrap(t *testing.T) {
	lines := Wrap("one two three", 5)
	if len(lines) < 2 {
		t.Fatalf("expected wrapping, got %v", lines)
	}
	for _, l := range lines {
		if Width(l) > 5 {
			t.Errorf("line %q exceeds the wrap width", l)
		}
	}
}
