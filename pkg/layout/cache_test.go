package layout

import "testing"

func TestCacheHitReturnsEqualResult(t *testing.T) {
	c := NewCache()
	l := NewLayout(Horizontal, Fill(1), Fill(1))
	a := area(100, 50)

	r1 := c.Split(l, a)
	r2 := c.Split(l, a)
	assertRects(t, r1, r2)
	if c.Len() != 1 {
		t.Errorf("cache should have 1 entry, got %d", c.Len())
	}
}

func TestCacheMissOnDifferentInputs(t *testing.T) {
	c := NewCache()
	l := NewLayout(Horizontal, Fill(1))

	r1 := c.Split(l, area(100, 50))
	r2 := c.Split(l, area(200, 50))
	if r1[0].Width == r2[0].Width {
		t.Error("different areas should produce different widths")
	}
	if c.Len() != 2 {
		t.Errorf("cache should have 2 entries, got %d", c.Len())
	}
}

func TestCacheDistinguishesConstraintKinds(t *testing.T) {
	c := NewCache()
	a := area(100, 50)
	// Same numeric value, different kind: keys must not collide.
	r1 := c.Split(NewLayout(Horizontal, Length(20), Fill(1)), a)
	r2 := c.Split(NewLayout(Horizontal, Min(20), Fill(1)), a)
	if c.Len() != 2 {
		t.Fatalf("cache should have 2 entries, got %d", c.Len())
	}
	if r1[0].Width != 20 || r2[0].Width != 20 {
		t.Errorf("unexpected widths %d, %d", r1[0].Width, r2[0].Width)
	}
}

func TestCacheInvalidate(t *testing.T) {
	c := NewCache()
	l := NewLayout(Horizontal, Fill(1))
	c.Split(l, area(100, 50))
	c.Split(l, area(200, 50))

	c.Invalidate()
	if c.Len() != 0 {
		t.Errorf("cache should be empty after invalidate, got %d", c.Len())
	}
}

func TestCacheReturnsCopies(t *testing.T) {
	c := NewCache()
	l := NewLayout(Horizontal, Fill(1))
	a := area(100, 50)

	r1 := c.Split(l, a)
	r1[0].Width = 999

	r2 := c.Split(l, a)
	if r2[0].Width == 999 {
		t.Error("mutation of a returned slice leaked into the cache")
	}
}
