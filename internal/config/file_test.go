package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadFileMissingIsNotAnError(t *testing.T) {
	cfg, err := LoadFile(filepath.Join(t.TempDir(), "absent.yaml"), Default())
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadFileEmptyPathReturnsBase(t *testing.T) {
	cfg, err := LoadFile("", Default())
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadFileMergesOverDefaults(t *testing.T) {
	path := writeConfig(t, `
layout: tree
sort: time
reverse: true
group_dirs: first
size: short
date: relative
color: never
icon: long
icon_theme: unicode
total_size: true
`)
	cfg, err := LoadFile(path, Default())
	require.NoError(t, err)

	assert.Equal(t, LayoutTree, cfg.Layout)
	assert.Equal(t, SortByTime, cfg.SortBy)
	assert.True(t, cfg.Reverse)
	assert.Equal(t, GroupFirst, cfg.GroupDirs)
	assert.Equal(t, SizeShort, cfg.Size)
	assert.Equal(t, DateRelative, cfg.Date)
	assert.Equal(t, WhenNever, cfg.Color)
	assert.Equal(t, WhenLong, cfg.Icon)
	assert.Equal(t, IconSetUnicode, cfg.IconSet)
	assert.True(t, cfg.TotalSize)

	// Untouched fields keep their defaults.
	assert.Equal(t, DisplayOnlyVisible, cfg.Display)
	assert.Equal(t, DepthUnbounded, cfg.Depth)
}

func TestLoadFilePartialKeepsDefaults(t *testing.T) {
	path := writeConfig(t, "sort: size\n")
	cfg, err := LoadFile(path, Default())
	require.NoError(t, err)

	assert.Equal(t, SortBySize, cfg.SortBy)
	assert.Equal(t, LayoutGrid, cfg.Layout)
	assert.False(t, cfg.Reverse)
}

func TestLoadFileMalformedYAML(t *testing.T) {
	path := writeConfig(t, "sort: [unterminated\n")
	_, err := LoadFile(path, Default())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse config file")
}

func TestLoadFileInvalidEnumValue(t *testing.T) {
	for _, content := range []string{
		"layout: spiral\n",
		"sort: rank\n",
		"color: sometimes\n",
		"icon_theme: ascii\n",
	} {
		path := writeConfig(t, content)
		_, err := LoadFile(path, Default())
		assert.Error(t, err, "content %q", content)
	}
}
