package layout

// Segment is one resolved span of the axis: Offset cells from the container
// start, Length cells long. Segments are freshly allocated on every call;
// the caller owns the returned slice.
type Segment struct {
	Offset int
	Length int
}

// End returns the first cell after the segment.
func (s Segment) End() int {
	return s.Offset + s.Length
}

// Solve partitions an axis of the given length into one segment per
// constraint. It is pure and total: every input produces a result, using
// saturating arithmetic so segments bottom out at length 0 and never go
// negative. An empty constraint list yields nil.
//
// The solver works in fixed passes:
//
//  1. Reserve spacing*(n-1) cells; the rest is the distributable length.
//  2. Give each constraint its baseline size (proportional baselines round
//     to nearest, ties away from zero).
//  3. On excess, Fill segments absorb it proportionally to weight; with no
//     Fill present, Min segments absorb it evenly. Anything still left is
//     placed as gap space by the flex mode, except FlexLegacy which grows
//     the last segment of the lowest-priority tier present.
//  4. On deficit, tiers give up space in shrink-priority order (Fill first,
//     Min last), evenly within a tier with the remainder taken from the
//     earliest-indexed member.
//  5. Offsets are laid out start-to-end with spacing between segments and
//     flex gaps merged in.
//
// Identical inputs always produce identical output, and the segment lengths
// plus spacing plus flex gaps always sum to the container length exactly
// (provided spacing itself fits the container).
func Solve(length int, constraints []Constraint, spacing int, flex Flex) []Segment {
	n := len(constraints)
	if n == 0 {
		return nil
	}
	if length < 0 {
		length = 0
	}
	if spacing < 0 {
		spacing = 0
	}

	distributable := length - spacing*(n-1)
	if distributable < 0 {
		distributable = 0
	}

	sizes := make([]int, n)
	total := 0
	for i, c := range constraints {
		sizes[i] = baseline(c, distributable)
		total += sizes[i]
	}

	leftover := 0
	switch delta := distributable - total; {
	case delta > 0:
		leftover = grow(sizes, constraints, delta, flex)
	case delta < 0:
		shrink(sizes, constraints, -delta)
	}

	gaps := flexGaps(flex, leftover, n)

	segs := make([]Segment, n)
	pos := gaps[0]
	for i := 0; i < n; i++ {
		if pos > length {
			pos = length
		}
		segs[i] = Segment{Offset: pos, Length: sizes[i]}
		pos += sizes[i]
		if i < n-1 {
			pos += spacing + gaps[i+1]
		}
	}
	return segs
}

// baseline computes a constraint's size before excess/deficit resolution,
// measured against the distributable length d.
func baseline(c Constraint, d int) int {
	switch c.kind {
	case kindLength, kindMin, kindMax:
		return c.a
	case kindPercentage:
		return roundHalfAway(d*c.a, 100)
	case kindRatio:
		return roundHalfAway(d*c.a, c.b)
	}
	// Fill starts at zero and lives entirely off leftover space.
	return 0
}

// grow distributes excess space and returns whatever could not be absorbed
// by a segment (to be placed as flex gap space).
func grow(sizes []int, constraints []Constraint, excess int, flex Flex) int {
	if idx := tierMembers(constraints, kindFill); len(idx) > 0 {
		growFill(sizes, constraints, idx, excess)
		return 0
	}
	if idx := tierMembers(constraints, kindMin); len(idx) > 0 {
		growEven(sizes, idx, excess)
		return 0
	}
	if flex == FlexLegacy {
		sizes[legacyDumpIndex(constraints)] += excess
		return 0
	}
	return excess
}

// growFill splits excess between Fill segments proportionally to their
// weights, remainder to the earliest. All-zero weights count as equal.
func growFill(sizes []int, constraints []Constraint, idx []int, excess int) {
	totalWeight := 0
	for _, i := range idx {
		totalWeight += constraints[i].a
	}
	given := 0
	for _, i := range idx {
		w := constraints[i].a
		if totalWeight == 0 {
			w = 1
		}
		div := totalWeight
		if div == 0 {
			div = len(idx)
		}
		share := excess * w / div
		sizes[i] += share
		given += share
	}
	for i := 0; given < excess; i = (i + 1) % len(idx) {
		sizes[idx[i]]++
		given++
	}
}

// growEven splits excess evenly between the given segments, remainder to
// the earliest-indexed.
func growEven(sizes []int, idx []int, excess int) {
	per := excess / len(idx)
	rem := excess % len(idx)
	for j, i := range idx {
		sizes[i] += per
		if j < rem {
			sizes[i]++
		}
	}
}

// legacyDumpIndex picks the segment that receives trailing excess under
// FlexLegacy: the last member of the lowest-priority tier present.
func legacyDumpIndex(constraints []Constraint) int {
	best := 0
	bestRank := constraints[0].shrinkRank()
	for i, c := range constraints {
		if r := c.shrinkRank(); r <= bestRank {
			best, bestRank = i, r
		}
	}
	return best
}

// shrink removes deficit cells tier by tier in shrink-priority order.
// Within a tier members give up space evenly, the remainder coming from the
// earliest-indexed, and no member ever drops below zero.
func shrink(sizes []int, constraints []Constraint, deficit int) {
	for rank := int(kindFill); rank <= int(kindMin) && deficit > 0; rank++ {
		idx := tierMembers(constraints, constraintKind(rank))
		deficit = shrinkTier(sizes, idx, deficit)
	}
}

// shrinkTier takes up to need cells from the tier members and returns the
// unsatisfied remainder.
func shrinkTier(sizes []int, idx []int, need int) int {
	for need > 0 {
		var alive []int
		for _, i := range idx {
			if sizes[i] > 0 {
				alive = append(alive, i)
			}
		}
		if len(alive) == 0 {
			return need
		}
		per := need / len(alive)
		rem := need % len(alive)
		for j, i := range alive {
			take := per
			if j < rem {
				take++
			}
			if take > sizes[i] {
				take = sizes[i]
			}
			sizes[i] -= take
			need -= take
		}
	}
	return 0
}

// tierMembers returns the indexes of constraints in the given tier, in
// declaration order.
func tierMembers(constraints []Constraint, k constraintKind) []int {
	var idx []int
	for i, c := range constraints {
		if c.kind == k {
			idx = append(idx, i)
		}
	}
	return idx
}

// flexGaps converts unabsorbed leftover into n+1 gap sizes: gaps[0] leads
// the first segment, gaps[i] sits before segment i, gaps[n] trails the
// last. Non-integral divisions bias the remainder toward the earliest gap
// so the gaps always sum to leftover exactly.
func flexGaps(flex Flex, leftover, n int) []int {
	gaps := make([]int, n+1)
	if leftover <= 0 {
		return gaps
	}
	switch flex {
	case FlexLegacy, FlexStart:
		gaps[n] = leftover
	case FlexEnd:
		gaps[0] = leftover
	case FlexCenter:
		gaps[0] = (leftover + 1) / 2
		gaps[n] = leftover / 2
	case FlexSpaceBetween:
		if n == 1 {
			gaps[n] = leftover
			break
		}
		per := leftover / (n - 1)
		rem := leftover % (n - 1)
		for i := 1; i < n; i++ {
			gaps[i] = per
			if i-1 < rem {
				gaps[i]++
			}
		}
	case FlexSpaceEvenly:
		per := leftover / (n + 1)
		rem := leftover % (n + 1)
		for i := range gaps {
			gaps[i] = per
			if i < rem {
				gaps[i]++
			}
		}
	case FlexSpaceAround:
		// Edge gaps get one unit, interior gaps two.
		units := 2 * n
		per := leftover / units
		rem := leftover % units
		for i := range gaps {
			gaps[i] = 2 * per
			if i == 0 || i == n {
				gaps[i] = per
			}
		}
		for i := 0; rem > 0; i = (i + 1) % (n + 1) {
			gaps[i]++
			rem--
		}
	}
	return gaps
}

// roundHalfAway divides num by den rounding to the nearest integer with
// ties away from zero. Both arguments are non-negative by construction.
func roundHalfAway(num, den int) int {
	if den == 0 {
		return 0
	}
	return (2*num + den) / (2 * den)
}
