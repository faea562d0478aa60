// Package interp implements the metadata interpreter: a line-oriented state
// machine that walks table-document row grids and reconstructs clean
// hierarchical table records from malformed tabular input.
//
// The interpreter carries state from row to row and across document
// boundaries, because the upstream table detection routinely splits one
// dictionary table over several documents. It is strictly sequential; run one
// interpreter per goroutine. Independent instances are fully isolated.
package interp

import (
	"strings"

	"go.uber.org/zap"

	"github.com/dictkit/dictkit/extractor/grid"
	"github.com/dictkit/dictkit/extractor/metadata"
)

// DefaultTruncationThreshold is the field-name length, in runes, at which the
// upstream renderer starts wrapping names onto a second row. Names at least
// this long trigger the reassembly lookahead.
const DefaultTruncationThreshold = 19

// section identifies which field collection data rows are accumulating into.
type section int

const (
	sectionNone section = iota
	sectionKeyFields
	sectionNormalFields
)

// state is the mutable parse state threaded through the run. It belongs to
// one Interpreter instance and is never shared.
type state struct {
	current    *metadata.Table // record for the active table, nil before the first table-name row
	tableName  string
	section    section
	pending    string // reassembled name of the most recently opened field
}

// Interpreter consumes table documents in order and accumulates metadata
// records. Zero documents is a valid run and yields an empty result.
type Interpreter struct {
	threshold int
	logger    *zap.Logger

	state   state
	tables  *metadata.TableMap
	names   []string
	diags   DiagnosticList
	dropped int
}

// Option configures an Interpreter.
type Option func(*Interpreter)

// WithTruncationThreshold overrides the field-name wrap threshold.
func WithTruncationThreshold(n int) Option {
	return func(i *Interpreter) {
		if n > 0 {
			i.threshold = n
		}
	}
}

// WithLogger attaches a logger for row-level debug output.
func WithLogger(l *zap.Logger) Option {
	return func(i *Interpreter) {
		if l != nil {
			i.logger = l
		}
	}
}

// New creates an Interpreter.
func New(opts ...Option) *Interpreter {
	i := &Interpreter{
		threshold: DefaultTruncationThreshold,
		logger:    zap.NewNop(),
		tables:    metadata.NewTableMap(),
	}
	for _, opt := range opts {
		opt(i)
	}
	return i
}

// Result is the outcome of an interpreter run.
type Result struct {
	// Tables maps table name to its record, in first-created order.
	Tables *metadata.TableMap

	// Names lists table names in encounter order, duplicates included.
	Names []string

	// Diagnostics describes rows that were skipped or repaired.
	Diagnostics DiagnosticList

	// DroppedRows counts rows discarded because no table context existed
	// yet. Normally zero; nonzero values point at upstream extraction
	// trouble.
	DroppedRows int
}

// ProcessDocument interprets one table document. State carried from the
// previous document stays live: a field section that continues past a
// document boundary keeps appending to the same record.
func (i *Interpreter) ProcessDocument(doc grid.Document) {
	for idx := range doc.Rows {
		i.processRow(doc, idx)
	}
}

// Result returns the accumulated outcome. It may be called mid-run; the
// returned Tables and Names views keep growing as more documents arrive.
func (i *Interpreter) Result() *Result {
	return &Result{
		Tables:      i.tables,
		Names:       i.names,
		Diagnostics: i.diags,
		DroppedRows: i.dropped,
	}
}

func (i *Interpreter) processRow(doc grid.Document, idx int) {
	row := doc.Rows[idx]

	switch classify(row) {
	case rowTableName:
		i.openTable(cell(row, 3))
	case rowTableSynonym:
		i.setMarker(doc, idx, cell(row, 3), func(t *metadata.Table, v *string) { t.Synonym = v })
	case rowTableComments:
		i.setMarker(doc, idx, cell(row, 3), func(t *metadata.Table, v *string) { t.Description = v })
	case rowModuleName:
		i.setMarker(doc, idx, cell(row, 3), func(t *metadata.Table, v *string) { t.Module = v })
	case rowKeyFieldSection:
		i.state.section = sectionKeyFields
		i.state.pending = ""
	case rowNormalFieldSection:
		i.state.section = sectionNormalFields
		i.state.pending = ""
	case rowBlank:
		// No state change.
	case rowData:
		i.processDataRow(doc, idx)
	}
}

// openTable starts a fresh record. Table boundaries are implicit: there is no
// close marker, so the previous record is simply left as-is. A repeated name
// replaces the old record but keeps its position in the output ordering, and
// the encounter list records every occurrence.
func (i *Interpreter) openTable(name string) {
	i.names = append(i.names, name)
	t := metadata.NewTable(name)
	i.tables.Set(name, t)
	i.state.current = t
	i.state.tableName = name
	i.state.section = sectionNone
	i.logger.Debug("table opened", zap.String("table", name))
}

func (i *Interpreter) setMarker(doc grid.Document, idx int, value string, assign func(*metadata.Table, *string)) {
	if i.state.current == nil {
		i.dropRow(doc, idx, "marker row before any table-name row")
		return
	}
	v := value
	assign(i.state.current, &v)
}

func (i *Interpreter) dropRow(doc grid.Document, idx int, msg string) {
	i.dropped++
	i.diags = append(i.diags, Diagnostic{Source: doc.Source, Row: idx, Message: msg})
	i.logger.Debug("row dropped",
		zap.String("source", doc.Source),
		zap.Int("row", idx),
		zap.String("reason", msg))
}

// cell returns the trimmed 1-indexed cell value.
func cell(row grid.Row, n int) string {
	return strings.TrimSpace(row.Cell(n))
}
