package display

import (
	"fmt"
	"strings"
	"time"

	"github.com/mattn/go-runewidth"

	"github.com/harrison/lsgo/internal/config"
	"github.com/harrison/lsgo/internal/meta"
	"github.com/harrison/lsgo/internal/theme"
)

// cell is a rendered fragment plus its display width. Widths are computed
// from the unstyled text, so padding stays correct when escape sequences
// are present.
type cell struct {
	text  string
	width int
}

// nameCell renders icon, styled name and symlink target for one entry.
func nameCell(e *meta.Entry, eff theme.Effective, flags config.Flags) cell {
	icon := eff.Icons.For(e)
	styled := icon + eff.Colors.Name(e)
	plain := icon + e.Name

	if e.Kind == meta.KindSymlink && e.LinkTarget != "" && !flags.NoSymlink {
		suffix := " -> " + e.LinkTarget
		styled += suffix
		plain += suffix
	}
	return cell{text: styled, width: runewidth.StringWidth(plain)}
}

// longBlocks holds the formatted long-format columns for one entry.
type longBlocks struct {
	perm  string
	owner string
	group string
	size  string
	date  string
}

func blocksFor(e *meta.Entry, flags config.Flags, now time.Time) longBlocks {
	return longBlocks{
		perm:  e.Mode.String(),
		owner: e.Owner,
		group: e.Group,
		size:  sizeText(e.Size, flags.Size),
		date:  dateText(e.ModTime, flags.Date, now),
	}
}

// blockWidths tracks per-column maxima so the long columns align within one
// listing.
type blockWidths struct {
	perm, owner, group, size, date int
}

func (w *blockWidths) observe(b longBlocks) {
	w.perm = max(w.perm, len(b.perm))
	w.owner = max(w.owner, runewidth.StringWidth(b.owner))
	w.group = max(w.group, runewidth.StringWidth(b.group))
	w.size = max(w.size, runewidth.StringWidth(b.size))
	w.date = max(w.date, runewidth.StringWidth(b.date))
}

// render joins the columns, left-aligned except for the right-aligned size,
// painted by the color theme.
func (b longBlocks) render(w blockWidths, colors *theme.ColorTheme) string {
	pad := func(s string, width int) string {
		if n := width - runewidth.StringWidth(s); n > 0 {
			return s + strings.Repeat(" ", n)
		}
		return s
	}
	padLeft := func(s string, width int) string {
		if n := width - runewidth.StringWidth(s); n > 0 {
			return strings.Repeat(" ", n) + s
		}
		return s
	}
	return fmt.Sprintf("%s %s %s %s %s",
		colors.Permissions(pad(b.perm, w.perm)),
		colors.Owner(pad(b.owner, w.owner)),
		colors.Group(pad(b.group, w.group)),
		colors.Size(padLeft(b.size, w.size)),
		colors.Date(pad(b.date, w.date)),
	)
}
