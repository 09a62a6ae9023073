// Package sorter orders the forest in place, recursively. One comparator,
// derived once from the configuration, is applied uniformly to every level
// of every subtree.
package sorter

import (
	"sort"
	"strings"

	"github.com/harrison/lsgo/internal/config"
	"github.com/harrison/lsgo/internal/meta"
)

// Sort reorders forest and every nested Content slice with the comparator
// derived from flags. The sort is stable, so entries with equal keys keep
// their enumeration order, and therefore idempotent.
func Sort(forest meta.Forest, flags config.Flags) {
	cmp := comparator(flags)
	sortForest(forest, cmp)
}

func sortForest(forest meta.Forest, cmp func(a, b *meta.Entry) int) {
	sort.SliceStable(forest, func(i, j int) bool {
		return cmp(forest[i], forest[j]) < 0
	})
	// Each level sorts in isolation; a subtree's internal order never
	// affects its siblings.
	for _, entry := range forest {
		if entry.Content != nil {
			sortForest(entry.Content, cmp)
		}
	}
}

// comparator builds the total preorder for flags: directory grouping first,
// then the primary key, with --reverse flipping only the primary key.
func comparator(flags config.Flags) func(a, b *meta.Entry) int {
	return func(a, b *meta.Entry) int {
		if c := groupDirs(a, b, flags.GroupDirs); c != 0 {
			return c
		}
		c := primary(a, b, flags.SortBy)
		if flags.Reverse {
			c = -c
		}
		return c
	}
}

func groupDirs(a, b *meta.Entry, grouping config.DirGrouping) int {
	if grouping == config.GroupNone {
		return 0
	}
	aDir, bDir := a.Kind == meta.KindDir, b.Kind == meta.KindDir
	if aDir == bDir {
		return 0
	}
	first := grouping == config.GroupFirst
	if aDir == first {
		return -1
	}
	return 1
}

func primary(a, b *meta.Entry, key config.SortKey) int {
	switch key {
	case config.SortByTime:
		// Newest first.
		switch {
		case a.ModTime.After(b.ModTime):
			return -1
		case b.ModTime.After(a.ModTime):
			return 1
		}
		return 0
	case config.SortBySize:
		// Largest first.
		switch {
		case a.Size > b.Size:
			return -1
		case a.Size < b.Size:
			return 1
		}
		return 0
	default:
		return strings.Compare(strings.ToLower(a.Name), strings.ToLower(b.Name))
	}
}
