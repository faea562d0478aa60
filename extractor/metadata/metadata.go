// Package metadata defines the table-metadata records the interpreter
// produces and their JSON representation. Table and field collections keep
// insertion order, because the output artifact's key order is the order in
// which entries were first created.
package metadata

// Field describes one column of a dictionary table.
type Field struct {
	Type        string `json:"type"`
	Description string `json:"description"`
	ForeignKey  string `json:"foreign_key"`
}

// Table is the metadata record for one dictionary table.
//
// Synonym, Description and Module stay nil until the corresponding marker row
// is seen; the JSON artifact renders them as null.
type Table struct {
	Name         string    `json:"Table Name"`
	Synonym      *string   `json:"Table Synonym"`
	Description  *string   `json:"Table Description"`
	Module       *string   `json:"Module Name"`
	KeyFields    *FieldMap `json:"Key Fields"`
	NormalFields *FieldMap `json:"Normal Fields"`
}

// NewTable creates an empty record for the given table name.
func NewTable(name string) *Table {
	return &Table{
		Name:         name,
		KeyFields:    NewFieldMap(),
		NormalFields: NewFieldMap(),
	}
}
