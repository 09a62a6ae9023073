package display

import (
	"strings"

	"github.com/harrison/lsgo/internal/config"
	"github.com/harrison/lsgo/internal/meta"
	"github.com/harrison/lsgo/internal/theme"
)

// gridGap is the number of spaces between grid columns.
const gridGap = 2

// grid packs each listing block into as many columns as fit the terminal
// width, filled column-major like ls.
func grid(forest meta.Forest, eff theme.Effective, flags config.Flags) string {
	var sb strings.Builder
	for i, lst := range listings(forest, flags) {
		if i > 0 {
			sb.WriteString("\n")
		}
		if lst.header != "" {
			sb.WriteString(lst.header + ":\n")
		}

		cells := make([]cell, len(lst.entries))
		for j, e := range lst.entries {
			cells[j] = nameCell(e, eff, flags)
		}
		sb.WriteString(packGrid(cells, eff.Width))
	}
	return sb.String()
}

func packGrid(cells []cell, width int) string {
	if len(cells) == 0 {
		return ""
	}

	cols, colWidths := fitColumns(cells, width)
	rows := (len(cells) + cols - 1) / cols

	var sb strings.Builder
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			idx := col*rows + row
			if idx >= len(cells) {
				break
			}
			c := cells[idx]
			sb.WriteString(c.text)
			last := col == cols-1 || (col+1)*rows+row >= len(cells)
			if !last {
				sb.WriteString(strings.Repeat(" ", colWidths[col]-c.width+gridGap))
			}
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

// fitColumns finds the largest column count whose column-major layout fits
// the given width, along with each column's width. At least one column is
// always used, even when a single cell overflows the terminal.
func fitColumns(cells []cell, width int) (int, []int) {
	for cols := len(cells); cols > 1; cols-- {
		rows := (len(cells) + cols - 1) / cols
		// Skip layouts whose trailing columns would be empty.
		if (cols-1)*rows >= len(cells) {
			continue
		}
		colWidths := make([]int, cols)
		total := (cols - 1) * gridGap
		for i, c := range cells {
			col := i / rows
			if c.width > colWidths[col] {
				colWidths[col] = c.width
			}
		}
		for _, w := range colWidths {
			total += w
		}
		if total <= width {
			return cols, colWidths
		}
	}

	single := 0
	for _, c := range cells {
		if c.width > single {
			single = c.width
		}
	}
	return 1, []int{single}
}
