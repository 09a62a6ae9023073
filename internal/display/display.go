package display

import (
	"github.com/harrison/lsgo/internal/config"
	"github.com/harrison/lsgo/internal/meta"
	"github.com/harrison/lsgo/internal/theme"
)

// Render lays out the already-sorted forest with the strategy selected by
// the effective layout and returns the full output text. The forest is
// never mutated, re-fetched or re-sorted here.
func Render(forest meta.Forest, eff theme.Effective, flags config.Flags) string {
	switch eff.Layout {
	case config.LayoutTree:
		return tree(forest, eff, flags)
	case config.LayoutOneLine:
		return oneLine(forest, eff, flags)
	default:
		return grid(forest, eff, flags)
	}
}
