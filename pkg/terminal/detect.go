// Package terminal provides terminal detection and size queries: whether
// stdout is a TTY, what color depth the emulator supports, and how many
// cells are available. Detection inspects environment variables and file
// descriptors only; it never writes query sequences to the terminal.
package terminal

import (
	"os"

	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

// IsTTY reports whether the file descriptor is attached to a terminal.
// Cygwin/msys pseudo-terminals count.
func IsTTY(fd uintptr) bool {
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// ColorProfile returns the color depth termenv detects for stdout.
// Non-TTY output gets the Ascii profile so styling degrades to plain text.
func ColorProfile() termenv.Profile {
	if !IsTTY(os.Stdout.Fd()) {
		return termenv.Ascii
	}
	return termenv.ColorProfile()
}

// isSSH reports whether the process is running inside an SSH session.
func isSSH() bool {
	return os.Getenv("SSH_CONNECTION") != "" || os.Getenv("SSH_TTY") != ""
}

// isMux reports whether the process is running inside a terminal
// multiplexer (tmux, GNU screen, or zellij).
func isMux() bool {
	return os.Getenv("TMUX") != "" || os.Getenv("STY") != "" || os.Getenv("ZELLIJ") != ""
}
