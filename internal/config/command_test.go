package config

import (
	"strings"
	"testing"

	"github.com/spf13/pflag"
)

// parse runs the given command line through a fresh flag set and FromFlagSet.
func parse(t *testing.T, args ...string) (Flags, error) {
	t.Helper()
	fs := pflag.NewFlagSet("lsgo", pflag.ContinueOnError)
	RegisterFlags(fs)
	if err := fs.Parse(args); err != nil {
		t.Fatalf("flag parse failed for %v: %v", args, err)
	}
	return FromFlagSet(fs, Default())
}

func mustParse(t *testing.T, args ...string) Flags {
	t.Helper()
	cfg, err := parse(t, args...)
	if err != nil {
		t.Fatalf("unexpected error for %v: %v", args, err)
	}
	return cfg
}

func TestDefaults(t *testing.T) {
	cfg := mustParse(t)

	if cfg.Layout != LayoutGrid {
		t.Errorf("default layout = %v, want grid", cfg.Layout)
	}
	if cfg.Display != DisplayOnlyVisible {
		t.Errorf("default display = %v, want only-visible", cfg.Display)
	}
	if cfg.SortBy != SortByName || cfg.Reverse {
		t.Errorf("default sort = %v reverse=%v, want name ascending", cfg.SortBy, cfg.Reverse)
	}
	if cfg.Depth != DepthUnbounded {
		t.Errorf("default depth = %d, want unbounded", cfg.Depth)
	}
}

func TestLayoutSelection(t *testing.T) {
	tests := []struct {
		args   []string
		layout Layout
		long   bool
	}{
		{nil, LayoutGrid, false},
		{[]string{"--oneline"}, LayoutOneLine, false},
		{[]string{"--long"}, LayoutOneLine, true},
		{[]string{"-l"}, LayoutOneLine, true},
		{[]string{"--tree"}, LayoutTree, true},
		{[]string{"--tree", "--long"}, LayoutTree, true},
	}
	for _, tt := range tests {
		cfg := mustParse(t, tt.args...)
		if cfg.Layout != tt.layout || cfg.Long != tt.long {
			t.Errorf("%v: layout=%v long=%v, want layout=%v long=%v",
				tt.args, cfg.Layout, cfg.Long, tt.layout, tt.long)
		}
	}
}

func TestDepthRequiresRecursiveOrTree(t *testing.T) {
	_, err := parse(t, "--depth", "5")
	if err == nil {
		t.Fatal("expected --depth without --recursive/--tree to be rejected")
	}
	if !strings.Contains(err.Error(), "--tree or --recursive") {
		t.Errorf("unexpected message: %v", err)
	}
}

func TestDepthAcceptedWithRecursiveOrTree(t *testing.T) {
	for _, args := range [][]string{
		{"--recursive", "--depth", "2"},
		{"--tree", "--depth", "2"},
	} {
		cfg := mustParse(t, args...)
		if cfg.Depth != 2 {
			t.Errorf("%v: depth = %d, want 2", args, cfg.Depth)
		}
	}
}

func TestDepthMustBePositive(t *testing.T) {
	for _, bad := range []string{"0", "-3"} {
		if _, err := parse(t, "--recursive", "--depth", bad); err == nil {
			t.Errorf("--depth %s: expected error", bad)
		}
	}
}

func TestClassicOverrides(t *testing.T) {
	cfg := mustParse(t,
		"--classic",
		"--color", "always",
		"--icon", "always",
		"--date", "relative",
		"--group-dirs", "first",
	)

	if cfg.Color != WhenNever {
		t.Errorf("classic color = %v, want never", cfg.Color)
	}
	if cfg.Icon != WhenNever {
		t.Errorf("classic icon = %v, want never", cfg.Icon)
	}
	if cfg.Date != DateAbsolute {
		t.Errorf("classic date = %v, want absolute", cfg.Date)
	}
	if cfg.GroupDirs != GroupNone {
		t.Errorf("classic group-dirs = %v, want none", cfg.GroupDirs)
	}
}

func TestRepeatedFlagLastValueWins(t *testing.T) {
	cfg := mustParse(t, "--color", "always", "--color", "never")
	if cfg.Color != WhenNever {
		t.Errorf("color = %v, want never (last value)", cfg.Color)
	}
}

func TestDisplayPolicyPrecedence(t *testing.T) {
	tests := []struct {
		args []string
		want Display
	}{
		{[]string{"-a"}, DisplayAll},
		{[]string{"-A"}, DisplayAlmostAll},
		{[]string{"-d"}, DisplayDirectoryItself},
		{[]string{"-a", "-A"}, DisplayAll},
	}
	for _, tt := range tests {
		if cfg := mustParse(t, tt.args...); cfg.Display != tt.want {
			t.Errorf("%v: display = %v, want %v", tt.args, cfg.Display, tt.want)
		}
	}
}

func TestSortShorthands(t *testing.T) {
	if cfg := mustParse(t, "-t"); cfg.SortBy != SortByTime {
		t.Errorf("-t: sort = %v, want time", cfg.SortBy)
	}
	if cfg := mustParse(t, "-S"); cfg.SortBy != SortBySize {
		t.Errorf("-S: sort = %v, want size", cfg.SortBy)
	}
	// The explicit --sort flag beats the shorthands.
	if cfg := mustParse(t, "-t", "--sort", "size"); cfg.SortBy != SortBySize {
		t.Errorf("-t --sort size: sort = %v, want size", cfg.SortBy)
	}
}

func TestInvalidEnumValuesRejected(t *testing.T) {
	for _, args := range [][]string{
		{"--sort", "bogus"},
		{"--group-dirs", "sideways"},
		{"--color", "sometimes"},
		{"--icon", "maybe"},
		{"--icon-theme", "ascii"},
		{"--size", "huge"},
		{"--date", "stardate"},
	} {
		if _, err := parse(t, args...); err == nil {
			t.Errorf("%v: expected configuration error", args)
		}
	}
}

func TestColorLongPolicyRejected(t *testing.T) {
	// "long" is only a valid policy for icons.
	if _, err := parse(t, "--color", "long"); err == nil {
		t.Error("--color long: expected configuration error")
	}
	if cfg := mustParse(t, "--icon", "long"); cfg.Icon != WhenLong {
		t.Errorf("--icon long: icon = %v, want long", cfg.Icon)
	}
}

func TestFlagsOverrideFileDefaults(t *testing.T) {
	base := Default()
	base.SortBy = SortByTime
	base.Reverse = true

	fs := pflag.NewFlagSet("lsgo", pflag.ContinueOnError)
	RegisterFlags(fs)
	if err := fs.Parse([]string{"--sort", "size"}); err != nil {
		t.Fatal(err)
	}
	cfg, err := FromFlagSet(fs, base)
	if err != nil {
		t.Fatal(err)
	}

	if cfg.SortBy != SortBySize {
		t.Errorf("sort = %v, want size (flag beats file)", cfg.SortBy)
	}
	if !cfg.Reverse {
		t.Error("reverse = false, want true (file value kept when flag unset)")
	}
}
