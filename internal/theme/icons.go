package theme

import (
	"path/filepath"
	"strings"

	"github.com/harrison/lsgo/internal/config"
	"github.com/harrison/lsgo/internal/meta"
)

// IconTheme maps entries to the glyph rendered ahead of their name. The
// zero value renders no icons.
type IconTheme struct {
	enabled bool
	set     config.IconSet
}

// NoIcons returns the theme used when icons are disabled.
func NoIcons() *IconTheme { return &IconTheme{} }

// IconsFor returns the enabled theme for the given glyph set.
func IconsFor(set config.IconSet) *IconTheme {
	return &IconTheme{enabled: true, set: set}
}

// Enabled reports whether this theme emits glyphs.
func (t *IconTheme) Enabled() bool { return t.enabled }

// For returns the glyph for e followed by a space, or "" when icons are
// disabled.
func (t *IconTheme) For(e *meta.Entry) string {
	if !t.enabled {
		return ""
	}
	if t.set == config.IconSetUnicode {
		return unicodeIcon(e) + " "
	}
	return fancyIcon(e) + " "
}

func unicodeIcon(e *meta.Entry) string {
	switch e.Kind {
	case meta.KindDir:
		return "\U0001f4c2" // open file folder
	case meta.KindSymlink:
		return "\U0001f517" // link symbol
	default:
		return "\U0001f4c4" // page facing up
	}
}

// Nerd-font codepoints, after the lsd fancy theme.
var fancyByName = map[string]string{
	".git":         "",
	".gitignore":   "",
	".gitconfig":   "",
	"dockerfile":   "",
	"makefile":     "",
	"license":      "",
	"readme.md":    "",
	"go.mod":       "",
	"go.sum":       "",
	"node_modules": "",
}

var fancyByExt = map[string]string{
	".go":   "",
	".rs":   "",
	".py":   "",
	".rb":   "",
	".js":   "",
	".ts":   "",
	".c":    "",
	".h":    "",
	".cpp":  "",
	".sh":   "",
	".md":   "",
	".yml":  "",
	".yaml": "",
	".json": "",
	".toml": "",
	".lock": "",
	".txt":  "",
	".zip":  "",
	".gz":   "",
	".tar":  "",
	".png":  "",
	".jpg":  "",
	".gif":  "",
	".svg":  "",
	".pdf":  "",
}

func fancyIcon(e *meta.Entry) string {
	if glyph, ok := fancyByName[strings.ToLower(e.Name)]; ok {
		return glyph
	}
	switch e.Kind {
	case meta.KindDir:
		return ""
	case meta.KindSymlink:
		return ""
	}
	if glyph, ok := fancyByExt[strings.ToLower(filepath.Ext(e.Name))]; ok {
		return glyph
	}
	return ""
}
