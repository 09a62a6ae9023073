package config

import (
	"fmt"

	"github.com/spf13/pflag"
)

// RegisterFlags declares every listing flag on fs. The command layer owns
// only flags that never reach the pipeline (such as --config).
func RegisterFlags(fs *pflag.FlagSet) {
	fs.BoolP("long", "l", false, "display extended metadata as a long listing")
	fs.Bool("oneline", false, "display one entry per line")
	fs.Bool("tree", false, "display the paths as a tree")
	fs.BoolP("recursive", "R", false, "recurse into directories")
	fs.Int("depth", 0, "bound recursion to N levels (requires --tree or --recursive)")
	fs.BoolP("all", "a", false, "do not ignore hidden entries, including . and ..")
	fs.BoolP("almost-all", "A", false, "like --all, without . and ..")
	fs.BoolP("directory-only", "d", false, "list directories themselves, not their contents")
	fs.String("sort", "name", "sort key: name, time or size")
	fs.BoolP("timesort", "t", false, "sort by modification time, newest first")
	fs.BoolP("sizesort", "S", false, "sort by size, largest first")
	fs.BoolP("reverse", "r", false, "reverse the sort order")
	fs.String("group-dirs", "none", "group directories: none, first or last")
	fs.String("size", "default", "size format: default, short or bytes")
	fs.String("date", "date", "date format: date or relative")
	fs.String("color", "auto", "colorize the output: always, auto or never")
	fs.String("icon", "auto", "show icons: always, auto, never or long")
	fs.String("icon-theme", "fancy", "icon glyph set: fancy or unicode")
	fs.Bool("total-size", false, "show directory sizes as the sum of their contents")
	fs.Bool("no-symlink", false, "do not display symlink targets")
	fs.Bool("classic", false, "plain mode: no colors, no icons, absolute dates, no grouping")
}

// FromFlagSet overlays parsed command-line flags onto base and validates the
// result. Only flags the user actually set override the base value, so the
// precedence is defaults < config file < command line. Repeated occurrences
// of the same flag keep the last value, matching pflag semantics.
func FromFlagSet(fs *pflag.FlagSet, base Flags) (Flags, error) {
	cfg := base

	boolFlag := func(name string) bool {
		v, _ := fs.GetBool(name)
		return v
	}

	switch {
	case boolFlag("all"):
		cfg.Display = DisplayAll
	case boolFlag("almost-all"):
		cfg.Display = DisplayAlmostAll
	case boolFlag("directory-only"):
		cfg.Display = DisplayDirectoryItself
	}

	long := boolFlag("long")
	tree := boolFlag("tree")
	switch {
	case tree:
		cfg.Layout = LayoutTree
	case long, boolFlag("oneline"):
		cfg.Layout = LayoutOneLine
	}
	if long || tree {
		cfg.Long = true
	}

	var err error
	if fs.Changed("sort") {
		v, _ := fs.GetString("sort")
		if cfg.SortBy, err = ParseSortKey(v); err != nil {
			return cfg, err
		}
	} else if boolFlag("timesort") {
		cfg.SortBy = SortByTime
	} else if boolFlag("sizesort") {
		cfg.SortBy = SortBySize
	}
	if boolFlag("reverse") {
		cfg.Reverse = true
	}
	if fs.Changed("group-dirs") {
		v, _ := fs.GetString("group-dirs")
		if cfg.GroupDirs, err = ParseDirGrouping(v); err != nil {
			return cfg, err
		}
	}
	if fs.Changed("size") {
		v, _ := fs.GetString("size")
		if cfg.Size, err = ParseSizeStyle(v); err != nil {
			return cfg, err
		}
	}
	if fs.Changed("date") {
		v, _ := fs.GetString("date")
		if cfg.Date, err = ParseDateStyle(v); err != nil {
			return cfg, err
		}
	}
	if fs.Changed("color") {
		v, _ := fs.GetString("color")
		if cfg.Color, err = ParseWhen(v, false); err != nil {
			return cfg, err
		}
	}
	if fs.Changed("icon") {
		v, _ := fs.GetString("icon")
		if cfg.Icon, err = ParseWhen(v, true); err != nil {
			return cfg, err
		}
	}
	if fs.Changed("icon-theme") {
		v, _ := fs.GetString("icon-theme")
		if cfg.IconSet, err = ParseIconSet(v); err != nil {
			return cfg, err
		}
	}

	if boolFlag("recursive") {
		cfg.Recursive = true
	}
	if fs.Changed("depth") {
		if !cfg.Recursive && cfg.Layout != LayoutTree {
			return cfg, fmt.Errorf("--depth requires --tree or --recursive")
		}
		n, _ := fs.GetInt("depth")
		if n < 1 {
			return cfg, fmt.Errorf("--depth requires a valid positive number")
		}
		cfg.Depth = n
	}

	if boolFlag("total-size") {
		cfg.TotalSize = true
	}
	if boolFlag("no-symlink") {
		cfg.NoSymlink = true
	}
	if boolFlag("classic") {
		cfg.Classic = true
	}
	cfg.applyClassic()

	return cfg, nil
}
