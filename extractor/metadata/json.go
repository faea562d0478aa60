package metadata

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// encodeValue marshals v without HTML escaping, so text pulled out of the
// source document round-trips byte for byte. Non-ASCII content is written
// as-is; encoding/json never force-escapes it.
func encodeValue(v interface{}) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

// Write serializes the table mapping to w as the two-space-indented JSON
// artifact, preserving first-created key order.
func Write(w io.Writer, tables *TableMap) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	return enc.Encode(tables)
}

// WriteFile serializes the table mapping to path. A failure here is the one
// fatal error of a run: the artifact is the whole point.
func WriteFile(path string, tables *TableMap) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := Write(f, tables); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", path, err)
	}
	return nil
}

// ReadFile parses a previously written JSON artifact back into a TableMap.
func ReadFile(path string) (*TableMap, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	tables := NewTableMap()
	if err := json.Unmarshal(data, tables); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return tables, nil
}
