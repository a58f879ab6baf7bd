package layout

import "testing"

func area(w, h int) Rect {
	return Rect{Width: w, Height: h}
}

func assertRects(t *testing.T, got, want []Rect) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("len(got)=%d, want %d\ngot:  %v\nwant: %v", len(got), len(want), got, want)
	}
	for i := range got {
		if got[i] != want[i] {
			t.Errorf("rect[%d]: got %v, want %v", i, got[i], want[i])
		}
	}
}

func TestSplitHorizontalAxis(t *testing.T) {
	rects := NewLayout(Horizontal, Length(10), Fill(1)).Split(area(100, 50))
	assertRects(t, rects, []Rect{
		{X: 0, Y: 0, Width: 10, Height: 50},
		{X: 10, Y: 0, Width: 90, Height: 50},
	})
}

func TestSplitVerticalAxis(t *testing.T) {
	rects := NewLayout(Vertical, Length(10), Fill(1)).Split(area(80, 50))
	assertRects(t, rects, []Rect{
		{X: 0, Y: 0, Width: 80, Height: 10},
		{X: 0, Y: 10, Width: 80, Height: 40},
	})
}

func TestSplitPreservesOrigin(t *testing.T) {
	a := Rect{X: 10, Y: 20, Width: 100, Height: 50}
	rects := NewLayout(Horizontal, Fill(1), Fill(1)).Split(a)
	assertRects(t, rects, []Rect{
		{X: 10, Y: 20, Width: 50, Height: 50},
		{X: 60, Y: 20, Width: 50, Height: 50},
	})
}

func TestSplitNoConstraints(t *testing.T) {
	if rects := NewLayout(Horizontal).Split(area(100, 50)); rects != nil {
		t.Errorf("no constraints should return nil, got %v", rects)
	}
}

func TestSplitWithMargin(t *testing.T) {
	rects := NewLayout(Horizontal, Fill(1)).WithMargin(5).Split(area(100, 50))
	assertRects(t, rects, []Rect{{X: 5, Y: 5, Width: 90, Height: 40}})
}

func TestSplitOversizedMargin(t *testing.T) {
	rects := NewLayout(Horizontal, Fill(1)).WithMargin(60).Split(area(100, 50))
	if rects[0].Width != 0 || rects[0].Height != 0 {
		t.Errorf("oversized margin should collapse the rect, got %v", rects[0])
	}
}

func TestSplitWithSpacing(t *testing.T) {
	rects := NewLayout(Vertical, Fill(1), Fill(1)).WithSpacing(2).Split(area(80, 42))
	assertRects(t, rects, []Rect{
		{X: 0, Y: 0, Width: 80, Height: 20},
		{X: 0, Y: 22, Width: 80, Height: 20},
	})
}

func TestSplitFlexCarriesThrough(t *testing.T) {
	rects := NewLayout(Horizontal, Length(30)).WithFlex(FlexEnd).Split(area(100, 50))
	assertRects(t, rects, []Rect{{X: 70, Y: 0, Width: 30, Height: 50}})
}

func TestSplitZeroArea(t *testing.T) {
	rects := NewLayout(Horizontal, Fill(1), Fill(1)).Split(area(0, 0))
	for i, r := range rects {
		if !r.Empty() {
			t.Errorf("rect[%d] should be empty, got %v", i, r)
		}
	}
}

func TestSplitRectsNeverOverlap(t *testing.T) {
	rects := NewLayout(Horizontal, Fill(1), Length(20), Percentage(30), Fill(2)).Split(area(200, 100))
	for i := 0; i < len(rects); i++ {
		for j := i + 1; j < len(rects); j++ {
			if inter := rects[i].Intersect(rects[j]); !inter.Empty() {
				t.Errorf("rects[%d] and rects[%d] overlap: %v", i, j, inter)
			}
		}
	}
}

func TestNestedSplits(t *testing.T) {
	outer := NewLayout(Vertical, Length(3), Fill(1)).Split(area(120, 40))
	if outer[0].Height != 3 {
		t.Errorf("header height: got %d, want 3", outer[0].Height)
	}
	cols := NewLayout(Horizontal, Length(28), Fill(1), Length(20)).Split(outer[1])
	if cols[0].Y != 3 {
		t.Errorf("nested Y offset: got %d, want 3", cols[0].Y)
	}
	if cols[2].Right() != 120 {
		t.Errorf("last column right edge: got %d, want 120", cols[2].Right())
	}
}

// --- Helpers and builder ---

func TestSplitHelpers(t *testing.T) {
	v := SplitVertical(area(80, 100), Fill(1), Fill(1))
	if v[0].Height != 50 || v[1].Height != 50 {
		t.Errorf("vertical helper heights %d, %d, want 50, 50", v[0].Height, v[1].Height)
	}
	h := SplitHorizontal(area(100, 80), Fill(1), Fill(1))
	if h[0].Width != 50 || h[1].Width != 50 {
		t.Errorf("horizontal helper widths %d, %d, want 50, 50", h[0].Width, h[1].Width)
	}
}

func TestBuilder(t *testing.T) {
	rects := NewBuilder().
		Direction(Horizontal).
		Constraints(Length(20), Fill(1)).
		Spacing(2).
		Margin(5).
		Split(area(100, 50))
	assertRects(t, rects, []Rect{
		{X: 5, Y: 5, Width: 20, Height: 40},
		{X: 27, Y: 5, Width: 68, Height: 40},
	})
}

func TestBuilderBuildReuse(t *testing.T) {
	l := NewBuilder().Direction(Vertical).Constraints(Fill(1), Fill(1)).Build()
	a := l.Split(area(80, 100))
	b := l.Split(area(80, 100))
	assertRects(t, a, b)
}

// --- Rect methods ---

func TestRectGeometry(t *testing.T) {
	r := Rect{X: 10, Y: 20, Width: 30, Height: 40}
	if r.Area() != 1200 {
		t.Errorf("Area: got %d, want 1200", r.Area())
	}
	if r.Right() != 40 || r.Bottom() != 60 {
		t.Errorf("edges: got (%d, %d), want (40, 60)", r.Right(), r.Bottom())
	}
	if !r.Contains(10, 20) || !r.Contains(39, 59) {
		t.Error("corner cells should be inside")
	}
	if r.Contains(40, 20) || r.Contains(10, 60) {
		t.Error("far edges are exclusive")
	}
}

func TestRectInner(t *testing.T) {
	r := Rect{X: 10, Y: 10, Width: 100, Height: 50}
	if got, want := r.Inner(5), (Rect{X: 15, Y: 15, Width: 90, Height: 40}); got != want {
		t.Errorf("Inner(5): got %v, want %v", got, want)
	}
	if got := r.Inner(-3); got != r {
		t.Errorf("negative margin should be ignored, got %v", got)
	}
	if got := (Rect{Width: 10, Height: 10}).Inner(20); got.Width != 0 || got.Height != 0 {
		t.Errorf("oversized inner should collapse, got %v", got)
	}
}

func TestRectIntersect(t *testing.T) {
	a := Rect{X: 0, Y: 0, Width: 10, Height: 10}
	b := Rect{X: 5, Y: 5, Width: 10, Height: 10}
	if got, want := a.Intersect(b), (Rect{X: 5, Y: 5, Width: 5, Height: 5}); got != want {
		t.Errorf("Intersect: got %v, want %v", got, want)
	}
	c := Rect{X: 20, Y: 20, Width: 5, Height: 5}
	if !a.Intersect(c).Empty() {
		t.Error("disjoint rects should produce an empty intersection")
	}
}
