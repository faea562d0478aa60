package metadata

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// FieldMap is an insertion-ordered mapping from field name to Field.
type FieldMap struct {
	names  []string
	fields map[string]*Field
}

// NewFieldMap creates an empty FieldMap.
func NewFieldMap() *FieldMap {
	return &FieldMap{fields: make(map[string]*Field)}
}

// Set inserts or replaces a field. Replacing keeps the field's original
// position.
func (m *FieldMap) Set(name string, f *Field) {
	if _, ok := m.fields[name]; !ok {
		m.names = append(m.names, name)
	}
	m.fields[name] = f
}

// Get returns the field for name, if present.
func (m *FieldMap) Get(name string) (*Field, bool) {
	f, ok := m.fields[name]
	return f, ok
}

// Len returns the number of fields.
func (m *FieldMap) Len() int {
	return len(m.names)
}

// Names returns the field names in insertion order.
func (m *FieldMap) Names() []string {
	out := make([]string, len(m.names))
	copy(out, m.names)
	return out
}

// Each calls fn for every field in insertion order.
func (m *FieldMap) Each(fn func(name string, f *Field)) {
	for _, name := range m.names {
		fn(name, m.fields[name])
	}
}

// MarshalJSON renders the map as a JSON object in insertion order.
func (m *FieldMap) MarshalJSON() ([]byte, error) {
	return marshalOrdered(m.names, func(name string) (interface{}, error) {
		return m.fields[name], nil
	})
}

// UnmarshalJSON rebuilds the map from a JSON object, preserving the
// document's key order.
func (m *FieldMap) UnmarshalJSON(data []byte) error {
	m.names = nil
	m.fields = make(map[string]*Field)
	return unmarshalOrdered(data, func(dec *json.Decoder, key string) error {
		var f Field
		if err := dec.Decode(&f); err != nil {
			return err
		}
		m.Set(key, &f)
		return nil
	})
}

// TableMap is an insertion-ordered mapping from table name to Table. A name
// keeps its first-created position even when its record is replaced.
type TableMap struct {
	names  []string
	tables map[string]*Table
}

// NewTableMap creates an empty TableMap.
func NewTableMap() *TableMap {
	return &TableMap{tables: make(map[string]*Table)}
}

// Set inserts or replaces a table record.
func (m *TableMap) Set(name string, t *Table) {
	if _, ok := m.tables[name]; !ok {
		m.names = append(m.names, name)
	}
	m.tables[name] = t
}

// Get returns the record for name, if present.
func (m *TableMap) Get(name string) (*Table, bool) {
	t, ok := m.tables[name]
	return t, ok
}

// Len returns the number of tables.
func (m *TableMap) Len() int {
	return len(m.names)
}

// Names returns the table names in first-created order.
func (m *TableMap) Names() []string {
	out := make([]string, len(m.names))
	copy(out, m.names)
	return out
}

// Each calls fn for every table in first-created order.
func (m *TableMap) Each(fn func(t *Table)) {
	for _, name := range m.names {
		fn(m.tables[name])
	}
}

// MarshalJSON renders the map as a JSON object in first-created order.
func (m *TableMap) MarshalJSON() ([]byte, error) {
	return marshalOrdered(m.names, func(name string) (interface{}, error) {
		return m.tables[name], nil
	})
}

// UnmarshalJSON rebuilds the map from a JSON object, preserving the
// document's key order.
func (m *TableMap) UnmarshalJSON(data []byte) error {
	m.names = nil
	m.tables = make(map[string]*Table)
	return unmarshalOrdered(data, func(dec *json.Decoder, key string) error {
		var t Table
		if err := dec.Decode(&t); err != nil {
			return err
		}
		m.Set(key, &t)
		return nil
	})
}

func marshalOrdered(names []string, value func(string) (interface{}, error)) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, name := range names {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := encodeValue(name)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		v, err := value(name)
		if err != nil {
			return nil, err
		}
		encoded, err := encodeValue(v)
		if err != nil {
			return nil, err
		}
		buf.Write(encoded)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func unmarshalOrdered(data []byte, entry func(dec *json.Decoder, key string) error) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("expected JSON object, got %v", tok)
	}
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := keyTok.(string)
		if !ok {
			return fmt.Errorf("expected object key, got %v", keyTok)
		}
		if err := entry(dec, key); err != nil {
			return err
		}
	}
	// Consume the closing brace.
	if _, err := dec.Token(); err != nil {
		return err
	}
	return nil
}
