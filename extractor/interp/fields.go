package interp

import (
	"unicode/utf8"

	"go.uber.org/zap"

	"github.com/dictkit/dictkit/extractor/grid"
	"github.com/dictkit/dictkit/extractor/metadata"
)

// descPlaceholder is a column-header artifact the upstream renderer leaks
// into description cells of continuation rows; it carries no content.
const descPlaceholder = "Unnamed: 3"

// processDataRow handles a fallback row according to the current section.
// Rows arriving before any table context are dropped and counted; rows
// outside a field section are ignored.
func (i *Interpreter) processDataRow(doc grid.Document, idx int) {
	if i.state.current == nil || i.state.tableName == "" {
		i.dropRow(doc, idx, "data row before any table-name row")
		return
	}

	var fields *metadata.FieldMap
	switch i.state.section {
	case sectionKeyFields:
		fields = i.state.current.KeyFields
	case sectionNormalFields:
		fields = i.state.current.NormalFields
	default:
		return
	}

	row := doc.Rows[idx]
	col1 := cell(row, 1)
	name := cell(row, 2)

	// A field header has an empty entry-indicator column and a real name.
	// Anything else is a continuation of the previous field.
	if grid.Missing(col1) && !grid.Missing(name) {
		i.openField(doc, idx, fields, name)
		return
	}
	i.continueField(doc, idx, fields)
}

// openField creates a field entry from a header row. Names at or past the
// truncation threshold were wrapped by the renderer and must be reassembled
// from the next row's name cell; the lookahead never crosses a document
// boundary. When the lookahead fails no entry is created, matching the
// upstream pipeline's behavior for a wrapped name with nothing to rejoin.
func (i *Interpreter) openField(doc grid.Document, idx int, fields *metadata.FieldMap, name string) {
	row := doc.Rows[idx]
	full := name

	if utf8.RuneCountInString(name) >= i.threshold {
		if idx+1 >= len(doc.Rows) {
			return
		}
		next := doc.Rows[idx+1]
		nextCol1 := cell(next, 1)
		nextName := cell(next, 2)
		if grid.Missing(nextCol1) || grid.Missing(nextName) {
			return
		}
		full = name + nextName
	}

	fields.Set(full, &metadata.Field{
		Type:        cell(row, 3),
		Description: cell(row, 4),
		ForeignKey:  normalizeForeignKey(cell(row, 5)),
	})
	i.state.pending = full
	i.logger.Debug("field opened",
		zap.String("table", i.state.tableName),
		zap.String("field", full))
}

// continueField appends a continuation row's description cell to the most
// recently opened field. Continuation rows never create entries.
func (i *Interpreter) continueField(doc grid.Document, idx int, fields *metadata.FieldMap) {
	if i.state.pending == "" {
		return
	}
	desc := cell(doc.Rows[idx], 4)
	if grid.Missing(desc) || desc == descPlaceholder {
		return
	}
	f, ok := fields.Get(i.state.pending)
	if !ok {
		i.diags = append(i.diags, Diagnostic{
			Source:  doc.Source,
			Row:     idx,
			Message: "continuation row for unknown field " + i.state.pending,
		})
		return
	}
	f.Description += " " + desc
}

// normalizeForeignKey keeps the cell verbatim except for the missing-value
// sentinel, which becomes the empty string.
func normalizeForeignKey(s string) string {
	if s == grid.Sentinel {
		return ""
	}
	return s
}
