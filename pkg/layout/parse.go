package layout

import (
	"fmt"
	"strconv"
	"strings"
)

// Parse converts the compact text form used in config files into a
// Constraint:
//
//	"20"      Length(20)
//	"30%"     Percentage(30)
//	"1/3"     Ratio(1, 3)
//	"min:10"  Min(10)
//	"max:40"  Max(40)
//	"fill:2"  Fill(2)
//	"fill"    Fill(1)
//
// Parse is the inverse of Constraint.String (modulo "fill" shorthand).
func Parse(s string) (Constraint, error) {
	s = strings.TrimSpace(s)
	switch {
	case s == "":
		return Constraint{}, fmt.Errorf("layout: empty constraint")
	case s == "fill":
		return Fill(1), nil
	case strings.HasSuffix(s, "%"):
		p, err := parseUint(strings.TrimSuffix(s, "%"))
		if err != nil {
			return Constraint{}, fmt.Errorf("layout: bad percentage %q: %w", s, err)
		}
		return Percentage(p), nil
	case strings.Contains(s, "/"):
		numStr, denStr, _ := strings.Cut(s, "/")
		num, err := parseUint(numStr)
		if err != nil {
			return Constraint{}, fmt.Errorf("layout: bad ratio %q: %w", s, err)
		}
		den, err := parseUint(denStr)
		if err != nil {
			return Constraint{}, fmt.Errorf("layout: bad ratio %q: %w", s, err)
		}
		return Ratio(num, den)
	case strings.Contains(s, ":"):
		kind, valStr, _ := strings.Cut(s, ":")
		v, err := parseUint(valStr)
		if err != nil {
			return Constraint{}, fmt.Errorf("layout: bad %s constraint %q: %w", kind, s, err)
		}
		switch kind {
		case "min":
			return Min(v), nil
		case "max":
			return Max(v), nil
		case "fill":
			return Fill(v), nil
		case "len":
			return Length(v), nil
		}
		return Constraint{}, fmt.Errorf("layout: unknown constraint kind %q", kind)
	default:
		v, err := parseUint(s)
		if err != nil {
			return Constraint{}, fmt.Errorf("layout: bad length %q: %w", s, err)
		}
		return Length(v), nil
	}
}

// ParseAll parses a list of constraint strings, failing on the first bad one.
func ParseAll(specs []string) ([]Constraint, error) {
	cs := make([]Constraint, 0, len(specs))
	for _, s := range specs {
		c, err := Parse(s)
		if err != nil {
			return nil, err
		}
		cs = append(cs, c)
	}
	return cs, nil
}

// ParseFlex converts a flex policy name ("legacy", "start", "end",
// "center", "space-between", "space-evenly", "space-around") into a Flex.
func ParseFlex(s string) (Flex, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for f, n := range flexNames {
		if n == name {
			return Flex(f), nil
		}
	}
	return FlexLegacy, fmt.Errorf("layout: unknown flex mode %q", s)
}

// parseUint parses a non-negative decimal integer.
func parseUint(s string) (int, error) {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, err
	}
	if v < 0 {
		return 0, fmt.Errorf("negative value %d", v)
	}
	return v, nil
}
