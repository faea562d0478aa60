package metadata

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strptr(s string) *string { return &s }

func TestFieldMapOrder(t *testing.T) {
	m := NewFieldMap()
	m.Set("c", &Field{Type: "INT"})
	m.Set("a", &Field{Type: "VARCHAR"})
	m.Set("b", &Field{Type: "CHAR"})

	assert.Equal(t, []string{"c", "a", "b"}, m.Names())
	assert.Equal(t, 3, m.Len())
}

func TestFieldMapReplaceKeepsPosition(t *testing.T) {
	m := NewFieldMap()
	m.Set("a", &Field{Type: "INT"})
	m.Set("b", &Field{Type: "INT"})
	m.Set("a", &Field{Type: "VARCHAR"})

	assert.Equal(t, []string{"a", "b"}, m.Names())
	f, ok := m.Get("a")
	require.True(t, ok)
	assert.Equal(t, "VARCHAR", f.Type)
}

func TestTableMapReplaceKeepsPosition(t *testing.T) {
	m := NewTableMap()
	m.Set("A", NewTable("A"))
	m.Set("B", NewTable("B"))
	m.Set("A", NewTable("A"))

	assert.Equal(t, []string{"A", "B"}, m.Names())
}

func TestTableJSONShape(t *testing.T) {
	tab := NewTable("CUSTOMER")
	tab.Synonym = strptr("CUST")
	tab.KeyFields.Set("cust_id", &Field{Type: "VARCHAR(10)", Description: "Customer id", ForeignKey: ""})

	m := NewTableMap()
	m.Set("CUSTOMER", tab)

	out, err := json.Marshal(m)
	require.NoError(t, err)

	want := `{"CUSTOMER":{` +
		`"Table Name":"CUSTOMER",` +
		`"Table Synonym":"CUST",` +
		`"Table Description":null,` +
		`"Module Name":null,` +
		`"Key Fields":{"cust_id":{"type":"VARCHAR(10)","description":"Customer id","foreign_key":""}},` +
		`"Normal Fields":{}` +
		`}}`
	assert.JSONEq(t, want, string(out))
	assert.Equal(t, want, string(out), "key order and null rendering must match exactly")
}

func TestJSONKeyOrderFollowsInsertion(t *testing.T) {
	m := NewTableMap()
	m.Set("ZULU", NewTable("ZULU"))
	m.Set("ALPHA", NewTable("ALPHA"))

	out, err := json.Marshal(m)
	require.NoError(t, err)

	zulu := strings.Index(string(out), `"ZULU"`)
	alpha := strings.Index(string(out), `"ALPHA"`)
	require.GreaterOrEqual(t, zulu, 0)
	require.GreaterOrEqual(t, alpha, 0)
	assert.Less(t, zulu, alpha, "first-created table serializes first")
}

func TestNonASCIIAndHTMLNotEscaped(t *testing.T) {
	tab := NewTable("T")
	tab.Description = strptr("Solde < 0 & intérêts")

	m := NewTableMap()
	m.Set("T", tab)

	out, err := json.Marshal(m)
	require.NoError(t, err)
	assert.Contains(t, string(out), "Solde < 0 & intérêts")
}

func TestRoundTrip(t *testing.T) {
	tab := NewTable("ACCOUNTS")
	tab.Synonym = strptr("ACCT")
	tab.Module = strptr("CORE")
	tab.KeyFields.Set("acct_id", &Field{Type: "VARCHAR(16)", Description: "Account id"})
	tab.NormalFields.Set("status", &Field{Type: "CHAR(1)", Description: "Current value of account.", ForeignKey: "ref.status"})
	tab.NormalFields.Set("open_ts", &Field{Type: "DATETIME", Description: "Opening timestamp"})

	m := NewTableMap()
	m.Set("ACCOUNTS", tab)
	m.Set("BRANCHES", NewTable("BRANCHES"))

	dir := t.TempDir()
	path := filepath.Join(dir, "tables.json")
	require.NoError(t, WriteFile(path, m))

	got, err := ReadFile(path)
	require.NoError(t, err)

	assert.Equal(t, m.Names(), got.Names())
	gotTab, ok := got.Get("ACCOUNTS")
	require.True(t, ok)
	assert.Equal(t, tab.Name, gotTab.Name)
	assert.Equal(t, *tab.Synonym, *gotTab.Synonym)
	assert.Nil(t, gotTab.Description)
	assert.Equal(t, tab.NormalFields.Names(), gotTab.NormalFields.Names())

	status, ok := gotTab.NormalFields.Get("status")
	require.True(t, ok)
	assert.Equal(t, "Current value of account.", status.Description)
	assert.Equal(t, "ref.status", status.ForeignKey)

	branches, ok := got.Get("BRANCHES")
	require.True(t, ok)
	assert.Equal(t, 0, branches.KeyFields.Len())
	assert.Equal(t, 0, branches.NormalFields.Len())
}

func TestWriteFileIndents(t *testing.T) {
	m := NewTableMap()
	m.Set("T", NewTable("T"))

	dir := t.TempDir()
	path := filepath.Join(dir, "tables.json")
	require.NoError(t, WriteFile(path, m))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "\n  \"T\"")
}
