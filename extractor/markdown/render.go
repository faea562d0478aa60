package markdown

import (
	"strings"

	"github.com/dictkit/dictkit/extractor/grid"
)

// Render writes a row grid back out as a pipe table, with a separator line
// after the first row. Columns are padded to their widest cell so the output
// lines up the way the upstream renderer's does. Cells hold column 1 onward;
// the column-0 fragment is implicit in the leading pipe.
func Render(doc grid.Document) string {
	cols := 0
	for _, row := range doc.Rows {
		if n := len(row) - 1; n > cols {
			cols = n
		}
	}
	if cols == 0 {
		return ""
	}

	widths := make([]int, cols)
	for _, row := range doc.Rows {
		for i := 0; i < cols; i++ {
			if n := len(row.Cell(i + 1)); n > widths[i] {
				widths[i] = n
			}
		}
	}

	var b strings.Builder
	for r, row := range doc.Rows {
		b.WriteByte('|')
		for i := 0; i < cols; i++ {
			b.WriteByte(' ')
			cell := row.Cell(i + 1)
			b.WriteString(cell)
			b.WriteString(strings.Repeat(" ", widths[i]-len(cell)))
			b.WriteString(" |")
		}
		b.WriteByte('\n')
		if r == 0 {
			b.WriteByte('|')
			for i := 0; i < cols; i++ {
				b.WriteString(strings.Repeat("-", widths[i]+2))
				b.WriteByte('|')
			}
			b.WriteByte('\n')
		}
	}
	return b.String()
}
