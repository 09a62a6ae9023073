// Package theme resolves terminal capabilities plus requested policies into
// the concrete color theme, icon theme and effective layout used for one
// run. Resolution happens exactly once, before any rendering; nothing here
// is recomputed mid-run.
package theme

import (
	"github.com/fatih/color"

	"github.com/harrison/lsgo/internal/meta"
)

// ColorTheme paints the pieces of a rendered entry. The plain theme leaves
// every string untouched, so renderers never branch on color policy.
type ColorTheme struct {
	styled bool

	dir     *color.Color
	symlink *color.Color
	exec    *color.Color
	file    *color.Color

	perm  *color.Color
	owner *color.Color
	group *color.Color
	size  *color.Color
	date  *color.Color
	tree  *color.Color
}

// StyledColors returns the default styled palette. Styling is forced on the
// individual colors so that --color always works even when output is piped
// and the color library would otherwise disable itself.
func StyledColors() *ColorTheme {
	t := &ColorTheme{
		styled:  true,
		dir:     color.New(color.FgBlue, color.Bold),
		symlink: color.New(color.FgCyan),
		exec:    color.New(color.FgGreen, color.Bold),
		file:    color.New(color.FgWhite),
		perm:    color.New(color.FgYellow),
		owner:   color.New(color.FgCyan),
		group:   color.New(color.FgCyan),
		size:    color.New(color.FgGreen),
		date:    color.New(color.FgMagenta),
		tree:    color.New(color.FgHiBlack),
	}
	for _, c := range []*color.Color{t.dir, t.symlink, t.exec, t.file, t.perm, t.owner, t.group, t.size, t.date, t.tree} {
		c.EnableColor()
	}
	return t
}

// PlainColors returns the no-op theme used for --color never and for
// non-styled terminals.
func PlainColors() *ColorTheme {
	return &ColorTheme{}
}

// Styled reports whether this theme emits escape sequences.
func (t *ColorTheme) Styled() bool { return t.styled }

func (t *ColorTheme) paint(c *color.Color, s string) string {
	if !t.styled {
		return s
	}
	return c.Sprint(s)
}

// Name paints an entry's display name according to its kind and mode.
func (t *ColorTheme) Name(e *meta.Entry) string {
	if !t.styled {
		return e.Name
	}
	switch {
	case e.Kind == meta.KindDir:
		return t.dir.Sprint(e.Name)
	case e.Kind == meta.KindSymlink:
		return t.symlink.Sprint(e.Name)
	case e.Mode&0111 != 0:
		return t.exec.Sprint(e.Name)
	default:
		return t.file.Sprint(e.Name)
	}
}

// Permissions paints the mode column of the long format.
func (t *ColorTheme) Permissions(s string) string { return t.paint(t.perm, s) }

// Owner paints the owner column of the long format.
func (t *ColorTheme) Owner(s string) string { return t.paint(t.owner, s) }

// Group paints the group column of the long format.
func (t *ColorTheme) Group(s string) string { return t.paint(t.group, s) }

// Size paints the size column of the long format.
func (t *ColorTheme) Size(s string) string { return t.paint(t.size, s) }

// Date paints the date column of the long format.
func (t *ColorTheme) Date(s string) string { return t.paint(t.date, s) }

// Connector paints the box-drawing connectors of the tree layout.
func (t *ColorTheme) Connector(s string) string { return t.paint(t.tree, s) }
