// Package grid models table documents: the row/column grids produced by the
// upstream table-detection step. Rows are positionally aligned and may be
// ragged; cell access is 1-indexed to match the renderer's column numbering.
package grid

// Sentinel is the literal the upstream renderer writes for a missing cell.
const Sentinel = "nan"

// Row is one row of a table document, as ordered raw cell strings.
// Index 0 holds the fragment before the first pipe of a rendered line and is
// normally empty; the meaningful columns start at 1.
type Row []string

// Cell returns the 1-indexed cell value, or "" when the column is absent.
// It never panics on short rows.
func (r Row) Cell(n int) string {
	if n < 0 || n >= len(r) {
		return ""
	}
	return r[n]
}

// Missing reports whether a cell value is the empty/"nan" missing-value
// sentinel.
func Missing(s string) bool {
	return s == "" || s == Sentinel
}

// Document is one detected table's row grid.
type Document struct {
	// Source identifies where the grid came from (file path, page ref),
	// used only for diagnostics.
	Source string

	Rows []Row
}
