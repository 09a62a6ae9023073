// Package core runs the listing pipeline: capability detection and theme
// resolution once at construction, then fetch, sort and render strictly in
// sequence for each invocation. Each run owns its forest outright; nothing
// is shared or cached across runs.
package core

import (
	"fmt"
	"io"
	"os"

	"github.com/harrison/lsgo/internal/config"
	"github.com/harrison/lsgo/internal/display"
	"github.com/harrison/lsgo/internal/logger"
	"github.com/harrison/lsgo/internal/meta"
	"github.com/harrison/lsgo/internal/sorter"
	"github.com/harrison/lsgo/internal/term"
	"github.com/harrison/lsgo/internal/theme"
)

// Core holds the per-run configuration and resolved themes.
type Core struct {
	flags  config.Flags
	eff    theme.Effective
	diag   *logger.Diagnostics
	stdout io.Writer
}

// New probes the terminal and resolves themes for flags. Detection happens
// here, exactly once, before any filesystem access.
func New(flags config.Flags) *Core {
	caps := term.Detect(os.Stdout)
	return &Core{
		flags:  flags,
		eff:    theme.Resolve(caps, flags),
		diag:   logger.NewDiagnostics(os.Stderr),
		stdout: os.Stdout,
	}
}

// NewWithStreams is New with explicit streams and capabilities, for tests.
func NewWithStreams(flags config.Flags, caps term.Capabilities, stdout, stderr io.Writer) *Core {
	return &Core{
		flags:  flags,
		eff:    theme.Resolve(caps, flags),
		diag:   logger.NewDiagnostics(stderr),
		stdout: stdout,
	}
}

// Run lists paths and prints the result once. It returns the process exit
// code: 0 for a clean run, 1 when any per-path diagnostic was emitted.
func (c *Core) Run(paths []string) int {
	forest := meta.Fetch(paths, c.flags, c.eff.Layout, c.diag)
	sorter.Sort(forest, c.flags)
	fmt.Fprint(c.stdout, display.Render(forest, c.eff, c.flags))

	if c.diag.Count() > 0 {
		return 1
	}
	return 0
}
