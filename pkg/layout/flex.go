package layout

// Flex controls where leftover space ends up once every constraint has
// settled at its resolved size. Leftover space exists whenever the
// constraint list contains no Fill or Min segment to absorb it.
type Flex int

const (
	// FlexLegacy appends all leftover space onto the last segment of the
	// lowest-priority tier present instead of inserting gaps. It never
	// creates a leading gap. This is the default and matches the behavior
	// of classic immediate-mode TUI layouts.
	FlexLegacy Flex = iota
	// FlexStart packs segments at the start; leftover trails the last one.
	FlexStart
	// FlexEnd packs segments at the end; leftover leads the first one.
	FlexEnd
	// FlexCenter splits leftover evenly before and after the segments.
	// An odd leftover puts the extra cell in the leading gap.
	FlexCenter
	// FlexSpaceBetween spreads leftover across the n-1 interior gaps only.
	FlexSpaceBetween
	// FlexSpaceEvenly spreads leftover across all n+1 gaps equally.
	FlexSpaceEvenly
	// FlexSpaceAround gives every segment a gap on both sides, so interior
	// gaps are twice the size of the two edge gaps.
	FlexSpaceAround
)

// flexNames is indexed by Flex and doubles as the Parse vocabulary.
var flexNames = [...]string{
	FlexLegacy:       "legacy",
	FlexStart:        "start",
	FlexEnd:          "end",
	FlexCenter:       "center",
	FlexSpaceBetween: "space-between",
	FlexSpaceEvenly:  "space-evenly",
	FlexSpaceAround:  "space-around",
}

// String returns the lowercase name used in config files.
func (f Flex) String() string {
	if f < 0 || int(f) >= len(flexNames) {
		return "unknown"
	}
	return flexNames[f]
}
