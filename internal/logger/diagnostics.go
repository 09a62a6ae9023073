// Package logger provides the diagnostics sink for lsgo.
//
// Filesystem failures are never fatal: each one is reported once on the
// error stream and counted, and the final exit status reflects whether any
// were seen. The sink is safe for concurrent use.
package logger

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

// Diagnostics writes per-path error messages and tracks how many occurred.
type Diagnostics struct {
	writer io.Writer
	mutex  sync.Mutex
	count  int
	prefix *color.Color
}

// NewDiagnostics creates a sink writing to w. If w is nil, messages are
// silently discarded but still counted. Color is used only when w is a
// terminal.
func NewDiagnostics(w io.Writer) *Diagnostics {
	d := &Diagnostics{writer: w}
	if isTerminal(w) {
		d.prefix = color.New(color.FgRed)
	}
	return d
}

// isTerminal reports whether w is a TTY-backed standard stream.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// CannotAccess reports a per-path failure and continues the run.
func (d *Diagnostics) CannotAccess(path string, err error) {
	d.mutex.Lock()
	defer d.mutex.Unlock()

	d.count++
	if d.writer == nil {
		return
	}
	name := "lsgo"
	if d.prefix != nil {
		name = d.prefix.Sprint(name)
	}
	fmt.Fprintf(d.writer, "%s: cannot access '%s': %v\n", name, path, err)
}

// Count returns the number of diagnostics emitted so far.
func (d *Diagnostics) Count() int {
	d.mutex.Lock()
	defer d.mutex.Unlock()
	return d.count
}
