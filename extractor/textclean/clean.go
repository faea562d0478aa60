// Package textclean normalizes text pulled out of dictionary documents.
// Source PDFs carry recurring typos ("Daite" for "Date" and friends) that
// would otherwise leak into the published metadata.
package textclean

import (
	"strings"

	"github.com/dictkit/dictkit/extractor/grid"
	"github.com/dictkit/dictkit/extractor/metadata"
)

// Replacement is one literal substitution, applied in order.
type Replacement struct {
	Old string
	New string
}

// defaultRules are the substitutions every cleaner starts with.
var defaultRules = []Replacement{
	{"start_daite", "start_date"},
	{"Daite", "Date"},
	{"DAITE", "DATE"},
}

// Cleaner applies an ordered list of literal replacements.
type Cleaner struct {
	rules []Replacement
}

// New creates a cleaner with the default rules followed by extra ones.
func New(extra ...Replacement) *Cleaner {
	rules := make([]Replacement, 0, len(defaultRules)+len(extra))
	rules = append(rules, defaultRules...)
	rules = append(rules, extra...)
	return &Cleaner{rules: rules}
}

// Clean applies every rule in order. Empty and missing-sentinel values pass
// through untouched.
func (c *Cleaner) Clean(s string) string {
	if grid.Missing(s) {
		return s
	}
	for _, r := range c.rules {
		s = strings.ReplaceAll(s, r.Old, r.New)
	}
	return s
}

// CleanTables rewrites the descriptions of every table and field in place.
func (c *Cleaner) CleanTables(tables *metadata.TableMap) {
	tables.Each(func(t *metadata.Table) {
		if t.Description != nil {
			cleaned := c.Clean(*t.Description)
			t.Description = &cleaned
		}
		cleanFields := func(name string, f *metadata.Field) {
			f.Description = c.Clean(f.Description)
		}
		t.KeyFields.Each(cleanFields)
		t.NormalFields.Each(cleanFields)
	})
}
