package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScanMarkdownDirectory(t *testing.T) {
	dir := t.TempDir()
	tablesDir := filepath.Join(dir, "markdown_tables")
	require.NoError(t, os.MkdirAll(tablesDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(tablesDir, "table_1.md"),
		[]byte("|    | Table Name | CUSTOMER |\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(tablesDir, "table_2.md"),
		[]byte("|    | Table Name | ACCOUNTS |\n| nan | acct_id | VARCHAR |\n"), 0o644))

	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { os.Chdir(wd) })

	var out bytes.Buffer
	cmd := NewRootCommand()
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"scan", tablesDir, "--list"})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), "Found 2 'Table Name' entries")
	assert.Contains(t, out.String(), "CUSTOMER")
	assert.Contains(t, out.String(), "ACCOUNTS")
}

func TestScanMissingPath(t *testing.T) {
	cmd := NewRootCommand()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"scan", "does-not-exist"})

	assert.Error(t, cmd.Execute())
}
