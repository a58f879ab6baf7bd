// Package app provides the bubbletea skeleton for flexgrid screens: the
// event types, root model, widget interface, and focus navigation. Panes
// come from pkg/preset; widgets fill them in registration order.
package app

import "time"

// DataUpdateEvent carries new data from a sampler goroutine back into the
// bubbletea update loop. Receivers type-assert Data based on Source.
type DataUpdateEvent struct {
	Source    string // sampler name (e.g., "sysmetrics")
	Data      any    // type-asserted by the receiver
	Err       error  // non-nil if the fetch failed
	Timestamp time.Time
}

// TickEvent is sent periodically by the render ticker to trigger UI
// refresh.
type TickEvent struct {
	Time time.Time
}

// PaneFocusEvent requests that focus move to a specific widget.
type PaneFocusEvent struct {
	WidgetID string
}

// PresetChangeEvent switches to a named pane arrangement.
type PresetChangeEvent struct {
	Preset string
}

// FlexChangeEvent overrides the arrangement's flex mode. An empty name
// restores the preset's own mode.
type FlexChangeEvent struct {
	Flex string
}
