package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// fileConfig mirrors the yaml config file. String fields are parsed through
// the same parsers as the CLI flags; pointers distinguish "unset" from a
// deliberate false.
type fileConfig struct {
	Layout    string `yaml:"layout"`
	Sort      string `yaml:"sort"`
	Reverse   *bool  `yaml:"reverse"`
	GroupDirs string `yaml:"group_dirs"`
	Size      string `yaml:"size"`
	Date      string `yaml:"date"`
	Color     string `yaml:"color"`
	Icon      string `yaml:"icon"`
	IconTheme string `yaml:"icon_theme"`
	NoSymlink *bool  `yaml:"no_symlink"`
	TotalSize *bool  `yaml:"total_size"`
	Classic   *bool  `yaml:"classic"`
}

// DefaultFilePath returns the config file location honored when --config is
// not given: $LSGO_CONFIG if set, otherwise ~/.config/lsgo/config.yaml.
func DefaultFilePath() string {
	if p := os.Getenv("LSGO_CONFIG"); p != "" {
		return p
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "lsgo", "config.yaml")
}

// LoadFile reads path and merges its values over base. A missing file is not
// an error; a file that cannot be read or parsed is a configuration error.
func LoadFile(path string, base Flags) (Flags, error) {
	if path == "" {
		return base, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return base, nil
		}
		return base, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return base, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	cfg := base
	if fc.Layout != "" {
		switch fc.Layout {
		case "grid":
			cfg.Layout = LayoutGrid
		case "oneline":
			cfg.Layout = LayoutOneLine
		case "tree":
			cfg.Layout = LayoutTree
		default:
			return base, fmt.Errorf("config file %s: invalid layout %q (expected grid, oneline or tree)", path, fc.Layout)
		}
	}
	if fc.Sort != "" {
		if cfg.SortBy, err = ParseSortKey(fc.Sort); err != nil {
			return base, fmt.Errorf("config file %s: %w", path, err)
		}
	}
	if fc.GroupDirs != "" {
		if cfg.GroupDirs, err = ParseDirGrouping(fc.GroupDirs); err != nil {
			return base, fmt.Errorf("config file %s: %w", path, err)
		}
	}
	if fc.Size != "" {
		if cfg.Size, err = ParseSizeStyle(fc.Size); err != nil {
			return base, fmt.Errorf("config file %s: %w", path, err)
		}
	}
	if fc.Date != "" {
		if cfg.Date, err = ParseDateStyle(fc.Date); err != nil {
			return base, fmt.Errorf("config file %s: %w", path, err)
		}
	}
	if fc.Color != "" {
		if cfg.Color, err = ParseWhen(fc.Color, false); err != nil {
			return base, fmt.Errorf("config file %s: %w", path, err)
		}
	}
	if fc.Icon != "" {
		if cfg.Icon, err = ParseWhen(fc.Icon, true); err != nil {
			return base, fmt.Errorf("config file %s: %w", path, err)
		}
	}
	if fc.IconTheme != "" {
		if cfg.IconSet, err = ParseIconSet(fc.IconTheme); err != nil {
			return base, fmt.Errorf("config file %s: %w", path, err)
		}
	}
	if fc.Reverse != nil {
		cfg.Reverse = *fc.Reverse
	}
	if fc.NoSymlink != nil {
		cfg.NoSymlink = *fc.NoSymlink
	}
	if fc.TotalSize != nil {
		cfg.TotalSize = *fc.TotalSize
	}
	if fc.Classic != nil {
		cfg.Classic = *fc.Classic
	}
	return cfg, nil
}
