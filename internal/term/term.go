// Package term probes the output terminal once per run.
package term

import (
	"os"
	"runtime"

	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
	xterm "golang.org/x/term"
)

// Capabilities describes what the output stream can do. Absence of a
// terminal is a normal case (output piped to another program), never an
// error.
type Capabilities struct {
	// IsInteractive is true when the stream is a TTY.
	IsInteractive bool
	// ANSISupported is true when ANSI escape sequences can be emitted.
	// On Windows consoles this requires enabling virtual terminal
	// processing; when that fails, styling silently degrades to plain
	// text instead of aborting the run.
	ANSISupported bool
	// Width is the terminal width in cells, or DefaultWidth when it
	// cannot be determined.
	Width int
}

// DefaultWidth is assumed when the terminal width cannot be queried.
const DefaultWidth = 80

// Detect probes out. Call it exactly once per run, before any color or
// icon decision.
func Detect(out *os.File) Capabilities {
	caps := Capabilities{Width: DefaultWidth}

	caps.IsInteractive = isatty.IsTerminal(out.Fd()) || isatty.IsCygwinTerminal(out.Fd())
	caps.ANSISupported = true
	if runtime.GOOS == "windows" && caps.IsInteractive {
		caps.ANSISupported = enableWindowsANSI()
	}

	if caps.IsInteractive {
		if w, _, err := xterm.GetSize(int(out.Fd())); err == nil && w > 0 {
			caps.Width = w
		}
	}
	return caps
}

// enableWindowsANSI turns on virtual terminal processing for stdout as a
// side effect and reports whether escape sequences will be honored.
func enableWindowsANSI() bool {
	enabled := false
	colorable.EnableColorsStdout(&enabled)
	return enabled
}
