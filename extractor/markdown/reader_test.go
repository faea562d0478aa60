package markdown

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTable(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestReadFileSplitsPipeRows(t *testing.T) {
	dir := t.TempDir()
	path := writeTable(t, dir, "table_1.md",
		"|    | Table Name   | CUSTOMER    |              |             |\n"+
			"|---:|:-------------|:------------|:-------------|:------------|\n"+
			"| nan | cust_id     | VARCHAR(10) | Customer id  | nan         |\n")

	doc, warnings, err := ReadFile(path)
	require.NoError(t, err)
	assert.Empty(t, warnings)
	require.Len(t, doc.Rows, 2, "separator line filtered out")

	assert.Equal(t, "", doc.Rows[0].Cell(1))
	assert.Equal(t, "Table Name", doc.Rows[0].Cell(2))
	assert.Equal(t, "CUSTOMER", doc.Rows[0].Cell(3))

	assert.Equal(t, "nan", doc.Rows[1].Cell(1))
	assert.Equal(t, "cust_id", doc.Rows[1].Cell(2))
	assert.Equal(t, "VARCHAR(10)", doc.Rows[1].Cell(3))
}

func TestSeparatorLineShapes(t *testing.T) {
	tests := []struct {
		name string
		line string
	}{
		{"classic pipes", "|---|:--|---|"},
		{"aligned pipes", "|  :---- | -----: |"},
		{"json style", `":-----": ":-------------",`},
		{"noise only", ` | " : - , `},
		{"blank", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.True(t, isSeparatorLine(tt.line))
		})
	}

	t.Run("content lines survive", func(t *testing.T) {
		assert.False(t, isSeparatorLine("| nan | cust_id | VARCHAR |"))
		assert.False(t, isSeparatorLine("|    | Table Name | CUSTOMER |"))
	})
}

func TestReadFileSkipsOverwideRows(t *testing.T) {
	dir := t.TempDir()
	path := writeTable(t, dir, "table_1.md",
		"| a | b | c |\n"+
			"| 1 | 2 | 3 | 4 | 5 | 6 |\n"+
			"| x | y | z |\n")

	doc, warnings, err := ReadFile(path)
	require.NoError(t, err)
	require.Len(t, warnings, 1)
	assert.Equal(t, 2, warnings[0].Line)
	assert.Len(t, doc.Rows, 2)
}

func TestReadFileDecodesLegacyEncoding(t *testing.T) {
	dir := t.TempDir()
	// 0x96 is the Windows-1252 en dash; invalid as UTF-8.
	raw := append([]byte("| nan | range | INT | 1"), 0x96)
	raw = append(raw, []byte("9 | nan |\n")...)
	path := filepath.Join(dir, "table_1.md")
	require.NoError(t, os.WriteFile(path, raw, 0o644))

	doc, _, err := ReadFile(path)
	require.NoError(t, err)
	require.Len(t, doc.Rows, 1)
	assert.Equal(t, "1–9", doc.Rows[0].Cell(4))
}

func TestLoadDirNumericOrder(t *testing.T) {
	dir := t.TempDir()
	writeTable(t, dir, "table_10.md", "| nan | ten | INT | d | nan |\n")
	writeTable(t, dir, "table_2.md", "| nan | two | INT | d | nan |\n")
	writeTable(t, dir, "table_1.md", "| nan | one | INT | d | nan |\n")

	docs, warnings, err := LoadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, warnings)
	require.Len(t, docs, 3)

	assert.Equal(t, "one", docs[0].Rows[0].Cell(2))
	assert.Equal(t, "two", docs[1].Rows[0].Cell(2))
	assert.Equal(t, "ten", docs[2].Rows[0].Cell(2))
}

func TestLoadDirEmpty(t *testing.T) {
	docs, warnings, err := LoadDir(t.TempDir())
	require.NoError(t, err)
	assert.Empty(t, docs)
	assert.Empty(t, warnings)
}

func TestScanTableNames(t *testing.T) {
	dir := t.TempDir()
	writeTable(t, dir, "table_1.md",
		"|    | Table Name | CUSTOMER |\n| nan | cust_id | VARCHAR |\n")
	writeTable(t, dir, "table_2.md",
		"|    | Table Name | ACCOUNTS |\n|    | Table Name | ACCOUNTS |\n")

	names, err := ScanTableNames(dir, "")
	require.NoError(t, err)
	assert.Equal(t, []string{"CUSTOMER", "ACCOUNTS", "ACCOUNTS"}, names,
		"duplicates are counted, files visit in name order")
}

func TestScanTableNamesBadPattern(t *testing.T) {
	_, err := ScanTableNames(t.TempDir(), "(")
	assert.Error(t, err)
}
