// Package scroll derives proportional scrollbar geometry from a
// content/viewport ratio and renders it as a glyph run for character-cell
// displays. The geometry is pure math; State carries the caller-owned
// scroll position; Scrollbar turns both into a styled track string.
package scroll

// Thumb computes the extent and offset of a proportional scrollbar thumb
// inside a track of the given length.
//
// The thumb length is the track scaled by the visible fraction of the
// content, never less than one cell so the thumb stays visible, and the
// whole track when the content fits (or is empty). The position is clamped
// to the scrollable range before the offset is derived, so out-of-range
// positions pin the thumb to an end rather than failing. The returned
// geometry always satisfies offset+length <= track.
func Thumb(content, viewport, position, track int) (offset, length int) {
	if track <= 0 {
		return 0, 0
	}
	if content <= 0 || viewport >= content {
		return 0, track
	}

	length = roundDiv(track*viewport, content)
	if length < 1 {
		length = 1
	}
	if length > track {
		length = track
	}

	scrollable := content - viewport
	position = clamp(position, 0, scrollable)
	offset = roundDiv((track-length)*position, scrollable)
	if offset+length > track {
		offset = track - length
	}
	return offset, length
}

// roundDiv divides num by den rounding to nearest, ties away from zero.
// Arguments are non-negative.
func roundDiv(num, den int) int {
	if den <= 0 {
		return 0
	}
	return (2*num + den) / (2 * den)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
