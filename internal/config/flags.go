// Package config holds the immutable per-run configuration for lsgo.
//
// A Flags value is assembled once before any filesystem access: defaults,
// then values from an optional yaml config file, then command-line flags.
// The pipeline never mutates it afterwards.
package config

import (
	"fmt"
	"math"
)

// Display selects which entries of a directory argument are shown.
type Display int

const (
	// DisplayOnlyVisible lists a directory's non-hidden contents.
	DisplayOnlyVisible Display = iota
	// DisplayAll lists everything, including "." and "..".
	DisplayAll
	// DisplayAlmostAll lists hidden entries but not "." and "..".
	DisplayAlmostAll
	// DisplayDirectoryItself shows the directory entry itself, like ls -d.
	DisplayDirectoryItself
)

// Layout selects the rendering strategy.
type Layout int

const (
	LayoutGrid Layout = iota
	LayoutOneLine
	LayoutTree
)

// SortKey is the primary ordering attribute.
type SortKey int

const (
	SortByName SortKey = iota
	SortByTime
	SortBySize
)

// DirGrouping clusters directories ahead of or behind files, as a
// higher-priority sort key than the primary SortKey.
type DirGrouping int

const (
	GroupNone DirGrouping = iota
	GroupFirst
	GroupLast
)

// When controls an optional feature (color, icons) relative to terminal state.
type When int

const (
	WhenAuto When = iota
	WhenAlways
	WhenNever
	// WhenLong enables the feature only together with long format.
	// Only meaningful for icons.
	WhenLong
)

// IconSet selects the glyph table used when icons are enabled.
type IconSet int

const (
	IconSetFancy IconSet = iota
	IconSetUnicode
)

// SizeStyle selects how file sizes are formatted in long output.
type SizeStyle int

const (
	// SizeDefault renders a value with a unit suffix, e.g. "4.0 KB".
	SizeDefault SizeStyle = iota
	// SizeShort renders a compact value, e.g. "4K".
	SizeShort
	// SizeBytes renders the raw byte count.
	SizeBytes
)

// DateStyle selects how modification times are formatted in long output.
type DateStyle int

const (
	DateAbsolute DateStyle = iota
	DateRelative
)

// DepthUnbounded is the recursion depth used when --recursive or --tree is
// given without an explicit --depth.
const DepthUnbounded = math.MaxInt

// Flags is the complete, immutable configuration for one run.
type Flags struct {
	Display   Display
	Layout    Layout
	Long      bool
	Recursive bool
	Depth     int
	SortBy    SortKey
	Reverse   bool
	GroupDirs DirGrouping
	Size      SizeStyle
	Date      DateStyle
	Color     When
	Icon      When
	IconSet   IconSet
	NoSymlink bool
	TotalSize bool
	Classic   bool
}

// Default returns the configuration used when no file or flag overrides it.
func Default() Flags {
	return Flags{
		Display:   DisplayOnlyVisible,
		Layout:    LayoutGrid,
		Depth:     DepthUnbounded,
		SortBy:    SortByName,
		GroupDirs: GroupNone,
		Size:      SizeDefault,
		Date:      DateAbsolute,
		Color:     WhenAuto,
		Icon:      WhenAuto,
		IconSet:   IconSetFancy,
	}
}

// applyClassic forces the classic-ls overrides as one explicit step, after
// all other resolution, so the precedence rule lives in a single place.
func (f *Flags) applyClassic() {
	if !f.Classic {
		return
	}
	f.Color = WhenNever
	f.Icon = WhenNever
	f.Date = DateAbsolute
	f.GroupDirs = GroupNone
}

// ParseWhen parses an always/auto/never[/long] value.
func ParseWhen(s string, allowLong bool) (When, error) {
	switch s {
	case "always":
		return WhenAlways, nil
	case "auto":
		return WhenAuto, nil
	case "never":
		return WhenNever, nil
	case "long":
		if allowLong {
			return WhenLong, nil
		}
	}
	return WhenAuto, fmt.Errorf("invalid value %q (expected always, auto or never)", s)
}

// ParseSortKey parses a name/time/size value.
func ParseSortKey(s string) (SortKey, error) {
	switch s {
	case "name":
		return SortByName, nil
	case "time":
		return SortByTime, nil
	case "size":
		return SortBySize, nil
	}
	return SortByName, fmt.Errorf("invalid sort key %q (expected name, time or size)", s)
}

// ParseDirGrouping parses a none/first/last value.
func ParseDirGrouping(s string) (DirGrouping, error) {
	switch s {
	case "none":
		return GroupNone, nil
	case "first":
		return GroupFirst, nil
	case "last":
		return GroupLast, nil
	}
	return GroupNone, fmt.Errorf("invalid group-dirs value %q (expected none, first or last)", s)
}

// ParseIconSet parses a fancy/unicode value.
func ParseIconSet(s string) (IconSet, error) {
	switch s {
	case "fancy":
		return IconSetFancy, nil
	case "unicode":
		return IconSetUnicode, nil
	}
	return IconSetFancy, fmt.Errorf("invalid icon theme %q (expected fancy or unicode)", s)
}

// ParseSizeStyle parses a default/short/bytes value.
func ParseSizeStyle(s string) (SizeStyle, error) {
	switch s {
	case "default":
		return SizeDefault, nil
	case "short":
		return SizeShort, nil
	case "bytes":
		return SizeBytes, nil
	}
	return SizeDefault, fmt.Errorf("invalid size style %q (expected default, short or bytes)", s)
}

// ParseDateStyle parses a date/relative value.
func ParseDateStyle(s string) (DateStyle, error) {
	switch s {
	case "date":
		return DateAbsolute, nil
	case "relative":
		return DateRelative, nil
	}
	return DateAbsolute, fmt.Errorf("invalid date style %q (expected date or relative)", s)
}
