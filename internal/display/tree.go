package display

import (
	"strings"
	"time"

	"github.com/harrison/lsgo/internal/config"
	"github.com/harrison/lsgo/internal/meta"
	"github.com/harrison/lsgo/internal/theme"
)

// tree renders each root as a box-drawing tree. With long format, the
// metadata columns are aligned across the whole tree and prefixed to every
// line.
func tree(forest meta.Forest, eff theme.Effective, flags config.Flags) string {
	now := time.Now()

	var widths blockWidths
	if eff.Long {
		var measure func(meta.Forest)
		measure = func(f meta.Forest) {
			for _, e := range f {
				widths.observe(blocksFor(e, flags, now))
				measure(e.Content)
			}
		}
		measure(forest)
	}

	var sb strings.Builder
	var write func(e *meta.Entry, prefix, childPrefix string)
	write = func(e *meta.Entry, prefix, childPrefix string) {
		if eff.Long {
			sb.WriteString(blocksFor(e, flags, now).render(widths, eff.Colors))
			sb.WriteString(" ")
		}
		sb.WriteString(eff.Colors.Connector(prefix))
		sb.WriteString(nameCell(e, eff, flags).text)
		sb.WriteString("\n")

		for i, child := range e.Content {
			if i == len(e.Content)-1 {
				write(child, childPrefix+"└── ", childPrefix+"    ")
			} else {
				write(child, childPrefix+"├── ", childPrefix+"│   ")
			}
		}
	}

	for _, root := range forest {
		write(root, "", "")
	}
	return sb.String()
}
