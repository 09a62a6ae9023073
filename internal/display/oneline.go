package display

import (
	"strings"
	"time"

	"github.com/harrison/lsgo/internal/config"
	"github.com/harrison/lsgo/internal/meta"
	"github.com/harrison/lsgo/internal/theme"
)

// oneLine renders one entry per line, with the long-format columns when
// requested. Columns align within each listing block.
func oneLine(forest meta.Forest, eff theme.Effective, flags config.Flags) string {
	now := time.Now()
	var sb strings.Builder

	for i, lst := range listings(forest, flags) {
		if i > 0 {
			sb.WriteString("\n")
		}
		if lst.header != "" {
			sb.WriteString(lst.header + ":\n")
		}

		var widths blockWidths
		blocks := make([]longBlocks, len(lst.entries))
		if eff.Long {
			for j, e := range lst.entries {
				blocks[j] = blocksFor(e, flags, now)
				widths.observe(blocks[j])
			}
		}

		for j, e := range lst.entries {
			if eff.Long {
				sb.WriteString(blocks[j].render(widths, eff.Colors))
				sb.WriteString(" ")
			}
			sb.WriteString(nameCell(e, eff, flags).text)
			sb.WriteString("\n")
		}
	}
	return sb.String()
}
