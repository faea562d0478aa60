// Package catalog exports extracted metadata into a SQLite file, giving the
// dictionary a queryable shape alongside the JSON artifact. Every export
// rebuilds the catalog from scratch; nothing carries over between runs.
package catalog

import (
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"

	"github.com/dictkit/dictkit/extractor/metadata"
)

const schemaSQL = `
CREATE TABLE IF NOT EXISTS tables (
	name        TEXT PRIMARY KEY,
	synonym     TEXT,
	description TEXT,
	module      TEXT
);
CREATE TABLE IF NOT EXISTS fields (
	table_name  TEXT NOT NULL,
	name        TEXT NOT NULL,
	position    INTEGER NOT NULL,
	kind        TEXT NOT NULL CHECK (kind IN ('key', 'normal')),
	type        TEXT NOT NULL,
	description TEXT NOT NULL,
	foreign_key TEXT NOT NULL,
	PRIMARY KEY (table_name, kind, name)
);
`

// Open opens (creating if necessary) a catalog database at path.
func Open(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open catalog %s: %w", path, err)
	}
	return db, nil
}

// Export writes the table mapping into db inside one transaction, replacing
// any previous contents.
func Export(db *sql.DB, tables *metadata.TableMap) error {
	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("begin export: %w", err)
	}
	if err := exportTx(tx, tables); err != nil {
		tx.Rollback()
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit export: %w", err)
	}
	return nil
}

func exportTx(tx *sql.Tx, tables *metadata.TableMap) error {
	if _, err := tx.Exec(schemaSQL); err != nil {
		return fmt.Errorf("create schema: %w", err)
	}
	if _, err := tx.Exec(`DELETE FROM fields`); err != nil {
		return fmt.Errorf("clear fields: %w", err)
	}
	if _, err := tx.Exec(`DELETE FROM tables`); err != nil {
		return fmt.Errorf("clear tables: %w", err)
	}

	insertTable, err := tx.Prepare(
		`INSERT INTO tables (name, synonym, description, module) VALUES (?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare table insert: %w", err)
	}
	defer insertTable.Close()

	insertField, err := tx.Prepare(
		`INSERT INTO fields (table_name, name, position, kind, type, description, foreign_key)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare field insert: %w", err)
	}
	defer insertField.Close()

	var exportErr error
	tables.Each(func(t *metadata.Table) {
		if exportErr != nil {
			return
		}
		if _, err := insertTable.Exec(t.Name, t.Synonym, t.Description, t.Module); err != nil {
			exportErr = fmt.Errorf("insert table %s: %w", t.Name, err)
			return
		}
		exportErr = insertFields(insertField, t.Name, "key", t.KeyFields)
		if exportErr == nil {
			exportErr = insertFields(insertField, t.Name, "normal", t.NormalFields)
		}
	})
	return exportErr
}

func insertFields(stmt *sql.Stmt, table, kind string, fields *metadata.FieldMap) error {
	var insertErr error
	pos := 0
	fields.Each(func(name string, f *metadata.Field) {
		if insertErr != nil {
			return
		}
		if _, err := stmt.Exec(table, name, pos, kind, f.Type, f.Description, f.ForeignKey); err != nil {
			insertErr = fmt.Errorf("insert field %s.%s: %w", table, name, err)
			return
		}
		pos++
	})
	return insertErr
}
