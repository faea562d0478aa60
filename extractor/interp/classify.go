package interp

import (
	"strings"

	"github.com/dictkit/dictkit/extractor/grid"
)

// rowKind classifies one row of a table document. Classification looks only
// at columns 1 and 2 and must never fail on short rows.
type rowKind int

const (
	rowData rowKind = iota
	rowTableName
	rowTableSynonym
	rowTableComments
	rowModuleName
	rowKeyFieldSection
	rowNormalFieldSection
	rowBlank
)

// classify decides a row's kind by substring matches on column 2, evaluated
// in fixed priority order; the first match wins. "Key Field Name" must be
// tested before "Field Name", which it contains.
func classify(row grid.Row) rowKind {
	col2 := strings.TrimSpace(row.Cell(2))

	switch {
	case strings.Contains(col2, "Table Name"):
		return rowTableName
	case strings.Contains(col2, "Table Synonym"):
		return rowTableSynonym
	case strings.Contains(col2, "Table Comments"):
		return rowTableComments
	case strings.Contains(col2, "Module Name"):
		return rowModuleName
	case strings.Contains(col2, "Key Field Name"):
		return rowKeyFieldSection
	case strings.Contains(col2, "Field Name"):
		return rowNormalFieldSection
	}

	if grid.Missing(col2) &&
		grid.Missing(strings.TrimSpace(row.Cell(3))) &&
		grid.Missing(strings.TrimSpace(row.Cell(4))) {
		return rowBlank
	}
	return rowData
}
