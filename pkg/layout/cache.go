package layout

import (
	"strings"
	"sync"
)

// cacheKey uniquely identifies one Split computation.
type cacheKey struct {
	direction   Direction
	constraints string // compact text form, deterministic
	area        Rect
	flex        Flex
	spacing     int
	margin      int
}

// Cache memoizes Split results so an unchanged frame does not re-solve
// identical layouts. It is safe for concurrent use and always hands out
// copies, never its internal slices.
type Cache struct {
	mu      sync.RWMutex
	entries map[cacheKey][]Rect
}

// NewCache creates an empty cache.
func NewCache() *Cache {
	return &Cache{entries: make(map[cacheKey][]Rect)}
}

// Split returns l.Split(area), consulting and populating the cache.
func (c *Cache) Split(l *Layout, area Rect) []Rect {
	key := makeKey(l, area)

	c.mu.RLock()
	rects, ok := c.entries[key]
	c.mu.RUnlock()
	if ok {
		return copyRects(rects)
	}

	rects = l.Split(area)
	c.mu.Lock()
	c.entries[key] = copyRects(rects)
	c.mu.Unlock()
	return rects
}

// Invalidate drops all cached entries. Call on terminal resize.
func (c *Cache) Invalidate() {
	c.mu.Lock()
	c.entries = make(map[cacheKey][]Rect)
	c.mu.Unlock()
}

// Len returns the number of cached entries.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

func makeKey(l *Layout, area Rect) cacheKey {
	var b strings.Builder
	for i, cn := range l.constraints {
		if i > 0 {
			b.WriteByte('|')
		}
		b.WriteString(cn.String())
	}
	return cacheKey{
		direction:   l.direction,
		constraints: b.String(),
		area:        area,
		flex:        l.flex,
		spacing:     l.spacing,
		margin:      l.margin,
	}
}

func copyRects(rects []Rect) []Rect {
	cp := make([]Rect, len(rects))
	copy(cp, rects)
	return cp
}
