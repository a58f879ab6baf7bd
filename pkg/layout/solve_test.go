package layout

import "testing"

// assertSegments fails the test if got and want differ.
func assertSegments(t *testing.T, got, want []Segment) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("len(got)=%d, want %d\ngot:  %v\nwant: %v", len(got), len(want), got, want)
	}
	for i := range got {
		if got[i] != want[i] {
			t.Errorf("segment[%d]: got %v, want %v", i, got[i], want[i])
		}
	}
}

// --- Documented boundary examples ---

func TestLegacyExcessGoesToLastLength(t *testing.T) {
	segs := Solve(80, []Constraint{Length(20), Length(20), Length(20)}, 0, FlexLegacy)
	assertSegments(t, segs, []Segment{{0, 20}, {20, 20}, {40, 40}})
}

func TestMinAbsorbsExcessBeforeMax(t *testing.T) {
	segs := Solve(80, []Constraint{Min(20), Max(20)}, 0, FlexStart)
	assertSegments(t, segs, []Segment{{0, 60}, {60, 20}})
}

func TestLegacySingleMaxGrowsPastCap(t *testing.T) {
	segs := Solve(80, []Constraint{Max(20)}, 0, FlexLegacy)
	assertSegments(t, segs, []Segment{{0, 80}})
}

func TestStartSingleMaxStaysAtCap(t *testing.T) {
	segs := Solve(80, []Constraint{Max(20)}, 0, FlexStart)
	assertSegments(t, segs, []Segment{{0, 20}})
}

func TestFillAbsorbsExcessBeforeLegacyDump(t *testing.T) {
	segs := Solve(80, []Constraint{Fill(0), Max(20), Length(20), Length(20)}, 0, FlexLegacy)
	assertSegments(t, segs, []Segment{{0, 20}, {20, 20}, {40, 20}, {60, 20}})
}

// --- Degenerate inputs ---

func TestEmptyConstraintsReturnsNil(t *testing.T) {
	if segs := Solve(80, nil, 0, FlexStart); segs != nil {
		t.Errorf("expected nil, got %v", segs)
	}
}

func TestZeroLengthCollapsesEverything(t *testing.T) {
	segs := Solve(0, []Constraint{Length(10), Min(5), Fill(1)}, 0, FlexLegacy)
	for i, s := range segs {
		if s.Offset != 0 || s.Length != 0 {
			t.Errorf("segment[%d] should collapse to {0 0}, got %v", i, s)
		}
	}
}

func TestNegativeLengthTreatedAsZero(t *testing.T) {
	segs := Solve(-5, []Constraint{Length(10)}, 0, FlexStart)
	assertSegments(t, segs, []Segment{{0, 0}})
}

func TestOverConstrainedNeverGoesNegative(t *testing.T) {
	segs := Solve(10, []Constraint{Length(30), Length(30), Length(30)}, 0, FlexStart)
	total := 0
	for i, s := range segs {
		if s.Length < 0 {
			t.Errorf("segment[%d] negative: %v", i, s)
		}
		total += s.Length
	}
	if total != 10 {
		t.Errorf("total length %d, want 10", total)
	}
}

// --- Baselines and rounding ---

func TestPercentageRoundsTiesAwayFromZero(t *testing.T) {
	// 50% of 3 is 1.5, which rounds away from zero to 2.
	segs := Solve(3, []Constraint{Percentage(50), Fill(1)}, 0, FlexStart)
	assertSegments(t, segs, []Segment{{0, 2}, {2, 1}})
}

func TestPercentageOver100OverdemandsAndShrinks(t *testing.T) {
	segs := Solve(80, []Constraint{Percentage(150)}, 0, FlexStart)
	assertSegments(t, segs, []Segment{{0, 80}})
}

func TestRatioBaseline(t *testing.T) {
	segs := Solve(90, []Constraint{MustRatio(1, 3), MustRatio(2, 3)}, 0, FlexStart)
	assertSegments(t, segs, []Segment{{0, 30}, {30, 60}})
}

// --- Excess distribution ---

func TestFillSplitsProportionallyToWeight(t *testing.T) {
	segs := Solve(90, []Constraint{Fill(2), Fill(1)}, 0, FlexStart)
	assertSegments(t, segs, []Segment{{0, 60}, {60, 30}})
}

func TestFillRemainderGoesToEarliest(t *testing.T) {
	segs := Solve(10, []Constraint{Fill(1), Fill(1), Fill(1)}, 0, FlexStart)
	assertSegments(t, segs, []Segment{{0, 4}, {4, 3}, {7, 3}})
}

func TestFillAllZeroWeightsSplitEvenly(t *testing.T) {
	segs := Solve(80, []Constraint{Fill(0), Fill(0)}, 0, FlexStart)
	assertSegments(t, segs, []Segment{{0, 40}, {40, 40}})
}

func TestMinExcessSplitEvenlyRemainderEarliest(t *testing.T) {
	segs := Solve(50, []Constraint{Min(10), Min(10)}, 0, FlexStart)
	// Excess 30 splits 15/15 on top of the 10-cell floors.
	assertSegments(t, segs, []Segment{{0, 25}, {25, 25}})

	segs = Solve(51, []Constraint{Min(10), Min(10)}, 0, FlexStart)
	assertSegments(t, segs, []Segment{{0, 26}, {26, 25}})
}

// --- Deficit distribution ---

func TestDeficitShrinksLowPriorityFirst(t *testing.T) {
	// Percentage gives up all its space before Length loses a cell.
	segs := Solve(30, []Constraint{Length(40), Percentage(50)}, 0, FlexStart)
	assertSegments(t, segs, []Segment{{0, 30}, {30, 0}})
}

func TestDeficitFillShrinksBeforeRatio(t *testing.T) {
	// Fill has no baseline so Ratio is the first tier with anything to give.
	segs := Solve(20, []Constraint{MustRatio(1, 1), Length(15), Fill(1)}, 0, FlexStart)
	// Ratio baseline 20, Length 15, total 35, deficit 15 comes off the Ratio.
	assertSegments(t, segs, []Segment{{0, 5}, {5, 15}, {20, 0}})
}

func TestMinHoldsFloorUnderDeficit(t *testing.T) {
	segs := Solve(30, []Constraint{Min(20), Length(40)}, 0, FlexStart)
	assertSegments(t, segs, []Segment{{0, 20}, {20, 10}})
}

func TestMinYieldsOnlyWhenContainerBelowFloor(t *testing.T) {
	segs := Solve(10, []Constraint{Min(20)}, 0, FlexStart)
	assertSegments(t, segs, []Segment{{0, 10}})
}

func TestDeficitWithinTierEvenRemainderFromEarliest(t *testing.T) {
	segs := Solve(15, []Constraint{Length(10), Length(10)}, 0, FlexStart)
	// Deficit 5: earliest loses 3, second loses 2.
	assertSegments(t, segs, []Segment{{0, 7}, {7, 8}})
}

// --- Spacing ---

func TestSpacingReservedUpFront(t *testing.T) {
	segs := Solve(104, []Constraint{Fill(1), Fill(1)}, 4, FlexStart)
	assertSegments(t, segs, []Segment{{0, 50}, {54, 50}})
}

func TestSpacingLargerThanContainer(t *testing.T) {
	segs := Solve(100, []Constraint{Fill(1), Fill(1)}, 200, FlexStart)
	for i, s := range segs {
		if s.Length != 0 {
			t.Errorf("segment[%d].Length should be 0, got %d", i, s.Length)
		}
	}
}

// --- Flex gap placement ---

func TestFlexStartTrailingGap(t *testing.T) {
	segs := Solve(80, []Constraint{Percentage(20), Length(20), Length(20)}, 0, FlexStart)
	assertSegments(t, segs, []Segment{{0, 16}, {16, 20}, {36, 20}})
}

func TestFlexEndLeadingGap(t *testing.T) {
	segs := Solve(100, []Constraint{Length(30)}, 0, FlexEnd)
	assertSegments(t, segs, []Segment{{70, 30}})
}

func TestFlexCenterSplitsGap(t *testing.T) {
	segs := Solve(100, []Constraint{Length(30)}, 0, FlexCenter)
	assertSegments(t, segs, []Segment{{35, 30}})
}

func TestFlexCenterOddLeftoverLeadsExtra(t *testing.T) {
	segs := Solve(101, []Constraint{Length(50)}, 0, FlexCenter)
	assertSegments(t, segs, []Segment{{26, 50}})
}

func TestSpaceBetween(t *testing.T) {
	segs := Solve(100, []Constraint{Length(10), Length(10), Length(10)}, 0, FlexSpaceBetween)
	assertSegments(t, segs, []Segment{{0, 10}, {45, 10}, {90, 10}})
}

func TestSpaceBetweenSingleSegmentActsLikeStart(t *testing.T) {
	segs := Solve(100, []Constraint{Length(30)}, 0, FlexSpaceBetween)
	assertSegments(t, segs, []Segment{{0, 30}})
}

func TestSpaceBetweenRemainderToEarliestGap(t *testing.T) {
	segs := Solve(101, []Constraint{Length(10), Length(10), Length(10)}, 0, FlexSpaceBetween)
	// Leftover 71: interior gaps 36 and 35.
	assertSegments(t, segs, []Segment{{0, 10}, {46, 10}, {91, 10}})
}

func TestSpaceEvenly(t *testing.T) {
	segs := Solve(100, []Constraint{Length(20), Length(20)}, 0, FlexSpaceEvenly)
	assertSegments(t, segs, []Segment{{20, 20}, {60, 20}})
}

func TestSpaceEvenlyRemainderToEarliestGaps(t *testing.T) {
	segs := Solve(101, []Constraint{Length(20), Length(20)}, 0, FlexSpaceEvenly)
	// Leftover 61 over three gaps: 21, 20, 20.
	assertSegments(t, segs, []Segment{{21, 20}, {61, 20}})
}

func TestSpaceAroundDoublesInteriorGaps(t *testing.T) {
	segs := Solve(80, []Constraint{Length(20), Length(20)}, 0, FlexSpaceAround)
	// Leftover 40 over 4 units: edges 10, interior 20.
	assertSegments(t, segs, []Segment{{10, 20}, {50, 20}})
}

func TestLegacyNeverCreatesLeadingGap(t *testing.T) {
	segs := Solve(100, []Constraint{Length(10), Length(20)}, 0, FlexLegacy)
	if segs[0].Offset != 0 {
		t.Errorf("legacy first segment offset %d, want 0", segs[0].Offset)
	}
	// Excess 70 grows the last Length segment.
	assertSegments(t, segs, []Segment{{0, 10}, {10, 90}})
}

// --- Contract properties ---

func solveCases() []struct {
	name    string
	length  int
	cs      []Constraint
	spacing int
	flex    Flex
} {
	return []struct {
		name    string
		length  int
		cs      []Constraint
		spacing int
		flex    Flex
	}{
		{"lengths legacy", 80, []Constraint{Length(20), Length(20), Length(20)}, 0, FlexLegacy},
		{"mixed start", 97, []Constraint{Length(20), Percentage(30), Fill(1)}, 1, FlexStart},
		{"min max", 83, []Constraint{Min(20), Max(20)}, 2, FlexStart},
		{"ratios", 91, []Constraint{MustRatio(1, 3), MustRatio(1, 3), MustRatio(1, 3)}, 0, FlexSpaceEvenly},
		{"deficit", 17, []Constraint{Length(30), Percentage(80), Min(5)}, 1, FlexStart},
		{"around", 73, []Constraint{Length(10), Length(10), Length(10)}, 1, FlexSpaceAround},
		{"between", 64, []Constraint{Max(9), Max(9)}, 3, FlexSpaceBetween},
		{"center odd", 55, []Constraint{Length(8)}, 0, FlexCenter},
		{"fills weighted", 60, []Constraint{Fill(3), Fill(1), Length(7)}, 2, FlexEnd},
	}
}

func TestCoverageIsExact(t *testing.T) {
	for _, tc := range solveCases() {
		t.Run(tc.name, func(t *testing.T) {
			segs := Solve(tc.length, tc.cs, tc.spacing, tc.flex)
			// Total occupied: segment lengths, fixed spacing, and flex gaps
			// reconstructed from the offset jumps plus the outer gaps.
			n := len(segs)
			used := segs[0].Offset // leading gap
			for i, s := range segs {
				used += s.Length
				if i < n-1 {
					used += segs[i+1].Offset - s.End() // spacing + interior gap
				}
			}
			trailing := tc.length - segs[n-1].End()
			if trailing < 0 {
				t.Fatalf("last segment overruns container: %v in %d", segs[n-1], tc.length)
			}
			if used+trailing != tc.length {
				t.Errorf("coverage %d+%d != container %d (segs %v)", used, trailing, tc.length, segs)
			}
		})
	}
}

func TestOrderingIsMonotonic(t *testing.T) {
	for _, tc := range solveCases() {
		t.Run(tc.name, func(t *testing.T) {
			segs := Solve(tc.length, tc.cs, tc.spacing, tc.flex)
			for i := 0; i < len(segs)-1; i++ {
				if segs[i].End() > segs[i+1].Offset {
					t.Errorf("segments %d and %d overlap: %v, %v", i, i+1, segs[i], segs[i+1])
				}
			}
		})
	}
}

func TestSolveIsDeterministic(t *testing.T) {
	for _, tc := range solveCases() {
		t.Run(tc.name, func(t *testing.T) {
			a := Solve(tc.length, tc.cs, tc.spacing, tc.flex)
			b := Solve(tc.length, tc.cs, tc.spacing, tc.flex)
			assertSegments(t, a, b)
		})
	}
}

func TestGrowingContainerNeverShrinksSegments(t *testing.T) {
	cs := []Constraint{Length(10), Min(5), Fill(1), Percentage(20)}
	prev := Solve(40, cs, 0, FlexStart)
	for length := 41; length <= 120; length++ {
		next := Solve(length, cs, 0, FlexStart)
		for i := range next {
			if next[i].Length < prev[i].Length {
				t.Fatalf("length %d: segment %d shrank from %d to %d",
					length, i, prev[i].Length, next[i].Length)
			}
		}
		prev = next
	}
}
