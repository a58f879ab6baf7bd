package terminal

import (
	"os"
	"sync"

	"github.com/muesli/termenv"
)

// Capabilities is the cached terminal summary for the current session.
type Capabilities struct {
	TTY       bool            // stdout is a terminal
	Profile   termenv.Profile // detected color depth
	TrueColor bool            // 24-bit color support
	SSH       bool            // running over SSH
	Mux       bool            // inside tmux, screen, or zellij
	Size      Size            // terminal dimensions
}

var (
	cached     *Capabilities
	detectOnce sync.Once
	mu         sync.Mutex // guards ForceRefresh reset
)

// DetectCapabilities performs terminal detection and caches the result.
// Safe to call from multiple goroutines; detection runs exactly once via
// sync.Once. Subsequent calls return the cached value.
func DetectCapabilities() *Capabilities {
	detectOnce.Do(func() {
		cached = detect()
	})
	return cached
}

// ForceRefresh re-detects terminal capabilities, replacing the cached
// value. Use this after a terminal change (e.g., attaching/detaching
// from tmux).
func ForceRefresh() *Capabilities {
	mu.Lock()
	defer mu.Unlock()

	detectOnce = sync.Once{}
	cached = detect()
	return cached
}

// Cached returns the previously cached capabilities without re-detection.
// Returns nil if DetectCapabilities has not been called yet.
func Cached() *Capabilities {
	return cached
}

func detect() *Capabilities {
	profile := ColorProfile()
	return &Capabilities{
		TTY:       IsTTY(os.Stdout.Fd()),
		Profile:   profile,
		TrueColor: profile == termenv.TrueColor,
		SSH:       isSSH(),
		Mux:       isMux(),
		Size:      GetSize(),
	}
}
