package theme

import (
	"github.com/harrison/lsgo/internal/config"
	"github.com/harrison/lsgo/internal/term"
)

// Effective is the configuration snapshot after capability-driven
// overrides: concrete themes plus the layout that will actually render.
// The requested sort, recursion and display settings are never touched
// here.
type Effective struct {
	Colors *ColorTheme
	Icons  *IconTheme
	Layout config.Layout
	Long   bool
	Width  int
}

// Resolve combines detected capabilities with the requested policies. Pure;
// called exactly once per run.
//
// When output is not interactive the layout is forced to a plain one-line
// rendering regardless of what was requested: downstream consumers of piped
// output cannot handle grid or tree layouts correctly.
func Resolve(caps term.Capabilities, flags config.Flags) Effective {
	eff := Effective{
		Colors: resolveColors(caps, flags.Color),
		Layout: flags.Layout,
		Long:   flags.Long,
		Width:  caps.Width,
	}
	if !caps.IsInteractive {
		eff.Layout = config.LayoutOneLine
		eff.Long = false
	}
	eff.Icons = resolveIcons(caps, flags.Icon, flags.Long, flags.IconSet)
	return eff
}

func resolveColors(caps term.Capabilities, policy config.When) *ColorTheme {
	switch {
	case policy == config.WhenNever:
		return PlainColors()
	case policy == config.WhenAlways:
		return StyledColors()
	case caps.IsInteractive && caps.ANSISupported:
		return StyledColors()
	default:
		return PlainColors()
	}
}

func resolveIcons(caps term.Capabilities, policy config.When, long bool, set config.IconSet) *IconTheme {
	switch {
	case policy == config.WhenNever:
		return NoIcons()
	case policy == config.WhenAuto && !caps.IsInteractive:
		return NoIcons()
	case policy == config.WhenLong && !long:
		return NoIcons()
	default:
		return IconsFor(set)
	}
}
