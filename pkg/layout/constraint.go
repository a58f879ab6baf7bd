package layout

import (
	"errors"
	"fmt"
)

// ErrZeroDenominator is returned by Ratio when the denominator is zero.
var ErrZeroDenominator = errors.New("layout: ratio denominator must not be zero")

// constraintKind discriminates the Constraint variants.
type constraintKind uint8

const (
	kindFill constraintKind = iota // ordered by shrink priority: Fill shrinks first
	kindRatio
	kindPercentage
	kindLength
	kindMax
	kindMin // Min shrinks last, effectively a hard floor
)

// Constraint is one sizing rule for a single segment of an axis split.
//
// Constraints are immutable values built through the constructor functions
// (Length, Percentage, Ratio, Min, Max, Fill). The zero value is Fill(0).
// Two Constraint values are comparable with ==, which makes them usable as
// map keys and cache-key components.
type Constraint struct {
	kind constraintKind
	a    int // value, numerator, or weight
	b    int // denominator (Ratio only)
}

// Length requests exactly v cells. Negative values are treated as 0.
func Length(v int) Constraint {
	return Constraint{kind: kindLength, a: clampNonNeg(v)}
}

// Percentage requests p percent of the distributable axis length. Values
// above 100 are allowed and simply over-demand, which the solver resolves
// through its deficit pass. Negative values are treated as 0.
func Percentage(p int) Constraint {
	return Constraint{kind: kindPercentage, a: clampNonNeg(p)}
}

// Ratio requests num/den of the distributable axis length. A zero
// denominator is a programmer error and is rejected here so it can never
// reach the solver. Negative parts are treated as 0.
func Ratio(num, den int) (Constraint, error) {
	if den == 0 {
		return Constraint{}, ErrZeroDenominator
	}
	return Constraint{kind: kindRatio, a: clampNonNeg(num), b: clampNonNeg(den)}, nil
}

// MustRatio is Ratio for static constraint tables; it panics on a zero
// denominator.
func MustRatio(num, den int) Constraint {
	c, err := Ratio(num, den)
	if err != nil {
		panic(err)
	}
	return c
}

// Min requests at least v cells. Min segments absorb excess space after
// Fill segments and shrink only as a last resort. Negative values are
// treated as 0.
func Min(v int) Constraint {
	return Constraint{kind: kindMin, a: clampNonNeg(v)}
}

// Max requests at most v cells. Negative values are treated as 0.
func Max(v int) Constraint {
	return Constraint{kind: kindMax, a: clampNonNeg(v)}
}

// Fill absorbs leftover space proportionally to weight. A list in which
// every Fill has weight 0 splits leftover space evenly between them.
// Negative weights are treated as 0.
func Fill(weight int) Constraint {
	return Constraint{kind: kindFill, a: clampNonNeg(weight)}
}

// shrinkRank returns the constraint's position in the fixed shrink-priority
// table: Fill < Ratio < Percentage < Length < Max < Min. Lower ranks give
// up space first under deficit. The same table, consulted in reverse,
// decides which segment a Legacy flex grows. This ordering is part of the
// package contract, not an implementation detail.
func (c Constraint) shrinkRank() int {
	return int(c.kind)
}

// String renders the constraint in the compact text form accepted by Parse.
func (c Constraint) String() string {
	switch c.kind {
	case kindLength:
		return fmt.Sprintf("%d", c.a)
	case kindPercentage:
		return fmt.Sprintf("%d%%", c.a)
	case kindRatio:
		return fmt.Sprintf("%d/%d", c.a, c.b)
	case kindMin:
		return fmt.Sprintf("min:%d", c.a)
	case kindMax:
		return fmt.Sprintf("max:%d", c.a)
	case kindFill:
		return fmt.Sprintf("fill:%d", c.a)
	}
	return "?"
}

func clampNonNeg(v int) int {
	if v < 0 {
		return 0
	}
	return v
}
