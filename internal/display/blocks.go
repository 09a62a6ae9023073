package display

import (
	"github.com/harrison/lsgo/internal/config"
	"github.com/harrison/lsgo/internal/meta"
)

// listing is one display block: an optional "path:" header plus the entries
// shown under it. File arguments form a headerless block; each listed
// directory forms its own, and recursion expands nested directories into
// further blocks in traversal order.
type listing struct {
	header  string
	entries []*meta.Entry
}

func listings(forest meta.Forest, flags config.Flags) []listing {
	// A lone directory argument is listed bare, like ls; headers appear
	// as soon as there are several roots or recursion is in play.
	showHeaders := len(forest) > 1 || flags.Recursive

	var out []listing
	var loose []*meta.Entry
	flush := func() {
		if len(loose) > 0 {
			out = append(out, listing{entries: loose})
			loose = nil
		}
	}

	var walk func(e *meta.Entry)
	walk = func(e *meta.Entry) {
		lst := listing{entries: e.Content}
		if showHeaders {
			lst.header = e.Path
		}
		out = append(out, lst)
		for _, child := range e.Content {
			if child.Content != nil {
				walk(child)
			}
		}
	}

	for _, e := range forest {
		if e.Content == nil {
			loose = append(loose, e)
			continue
		}
		flush()
		walk(e)
	}
	flush()
	return out
}
