package meta

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/harrison/lsgo/internal/config"
	"github.com/harrison/lsgo/internal/logger"
)

// Fetch walks the given root paths, in input order, up to the effective
// recursion depth and returns the resulting forest. Every filesystem error
// is isolated to the smallest affected subtree: a bad root or child is
// reported through diag and skipped, and the run continues.
//
// effLayout is the layout after capability overrides; tree layout and
// --recursive are the only cases where the requested depth applies,
// otherwise only the roots and their immediate children are fetched.
func Fetch(paths []string, flags config.Flags, effLayout config.Layout, diag *logger.Diagnostics) Forest {
	depth := flags.Depth
	if effLayout != config.LayoutTree && !flags.Recursive {
		depth = 1
	}

	forest := make(Forest, 0, len(paths))
	for _, path := range paths {
		if _, err := os.Stat(path); err != nil {
			diag.CannotAccess(path, err)
			continue
		}

		entry, err := FromPath(path)
		if err != nil {
			diag.CannotAccess(path, err)
			continue
		}

		if flags.Display == config.DisplayDirectoryItself {
			forest = append(forest, entry)
			continue
		}

		if err := entry.recurseInto(depth, flags, diag, true); err != nil {
			diag.CannotAccess(path, err)
			continue
		}
		forest = append(forest, entry)
	}

	if flags.TotalSize {
		for _, entry := range forest {
			entry.CalculateTotalSize()
		}
	}
	return forest
}

// recurseInto enumerates the entry's children down to depth levels and
// attaches them as Content. A failure to read this entry's own directory is
// returned to the caller; failures on individual children are reported and
// skipped so one unreadable child never aborts its siblings.
func (e *Entry) recurseInto(depth int, flags config.Flags, diag *logger.Diagnostics, top bool) error {
	if depth == 0 {
		return nil
	}
	// Symlinks are followed only for root arguments; descending through
	// symlinked directories could loop back to an ancestor.
	if e.Kind != KindDir && !(top && e.IsDir()) {
		return nil
	}

	dirents, err := os.ReadDir(e.Path)
	if err != nil {
		return err
	}

	content := make([]*Entry, 0, len(dirents))
	if top && flags.Display == config.DisplayAll {
		content = append(content, e.dotEntries()...)
	}
	for _, de := range dirents {
		name := de.Name()
		if flags.Display == config.DisplayOnlyVisible && strings.HasPrefix(name, ".") {
			continue
		}
		child, err := FromPath(filepath.Join(e.Path, name))
		if err != nil {
			diag.CannotAccess(filepath.Join(e.Path, name), err)
			continue
		}
		child.Name = name
		if err := child.recurseInto(depth-1, flags, diag, false); err != nil {
			diag.CannotAccess(child.Path, err)
		}
		content = append(content, child)
	}
	e.Content = content
	return nil
}

// dotEntries builds the synthetic "." and ".." entries shown by --all.
// Lookup failures are silently dropped; the listing is still valid without
// them.
func (e *Entry) dotEntries() []*Entry {
	var dots []*Entry
	for _, name := range []string{".", ".."} {
		info, err := os.Stat(filepath.Join(e.Path, name))
		if err != nil {
			continue
		}
		dot := fromInfo(filepath.Join(e.Path, name), name, info)
		dot.Name = name
		dots = append(dots, dot)
	}
	return dots
}
