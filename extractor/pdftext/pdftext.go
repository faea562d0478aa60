// Package pdftext scans a data-dictionary PDF's embedded text layer for
// table-name mentions. It is a diagnostic collaborator: the count it produces
// is compared against what the interpreter actually parsed. Scanned
// (image-only) PDFs have no text layer and yield nothing.
package pdftext

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/ledongthuc/pdf"
)

// tableNameLine matches a "Table Name" label, with an optional ASCII or
// full-width colon, and captures the name that follows.
var tableNameLine = regexp.MustCompile(`Table Name[:：]?\s*(\S+)`)

// TableNames extracts the PDF's text layer page by page and collects every
// table name mentioned, duplicates included. Pages that fail to extract are
// skipped; a partial count beats no count.
func TableNames(path string) ([]string, error) {
	f, r, err := pdf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open pdf %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	fonts := make(map[string]*pdf.Font)
	var names []string

	for i := 1; i <= r.NumPage(); i++ {
		p := r.Page(i)
		if p.V.IsNull() {
			continue
		}
		for _, name := range p.Fonts() {
			if _, ok := fonts[name]; !ok {
				font := p.Font(name)
				fonts[name] = &font
			}
		}
		text, err := p.GetPlainText(fonts)
		if err != nil {
			continue
		}
		names = append(names, namesFromText(text)...)
	}
	return names, nil
}

// namesFromText collects table-name matches line by line.
func namesFromText(text string) []string {
	var names []string
	for _, line := range strings.Split(text, "\n") {
		if !strings.Contains(line, "Table Name") {
			continue
		}
		if m := tableNameLine.FindStringSubmatch(line); m != nil {
			names = append(names, m[1])
		}
	}
	return names
}
