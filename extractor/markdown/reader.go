// Package markdown reads and writes the pipe-table text format the upstream
// renderer produces, one file per detected table. The reader is deliberately
// forgiving: separator lines, ragged rows and legacy encodings are the norm
// in this input, not the exception.
package markdown

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/dictkit/dictkit/extractor/grid"
)

// Warning records a file or row the loader had to skip. Warnings never abort
// a load.
type Warning struct {
	File    string
	Line    int // 1-based source line, 0 when the whole file is affected
	Message string
}

func (w Warning) String() string {
	if w.Line > 0 {
		return fmt.Sprintf("%s:%d: %s", w.File, w.Line, w.Message)
	}
	return fmt.Sprintf("%s: %s", w.File, w.Message)
}

// Separator-line shapes seen in rendered output: classic pipe separators,
// JSON-style colon runs, and lines made only of pipe/quote/colon/dash/comma
// noise (which also covers blank lines).
var (
	pipeSeparator  = regexp.MustCompile(`^\s*\|[\s\-:]+\|\s*$`)
	colonSeparator = regexp.MustCompile(`^\s*"?:[^|]*"?\s*:\s*"?:[^|]*"?\s*,?\s*$`)
	noiseOnly      = regexp.MustCompile(`^[\s|":\-,]*$`)
)

func isSeparatorLine(line string) bool {
	s := strings.TrimSpace(line)
	return pipeSeparator.MatchString(s) || colonSeparator.MatchString(s) || noiseOnly.MatchString(s)
}

// ReadFile parses one rendered table file into a row grid. Separator lines
// are filtered out; remaining lines split on pipes into trimmed cells, with
// the fragment before the first pipe kept as column 0 so cell numbering
// matches the renderer. Rows wider than the first row are skipped with a
// warning, mirroring the upstream reader's bad-line policy.
func ReadFile(path string) (grid.Document, []Warning, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return grid.Document{}, nil, err
	}

	doc := grid.Document{Source: path}
	var warnings []Warning
	width := 0

	for n, line := range strings.Split(decode(data), "\n") {
		if isSeparatorLine(line) {
			continue
		}
		cells := strings.Split(line, "|")
		for i := range cells {
			cells[i] = strings.TrimSpace(cells[i])
		}
		if width == 0 {
			width = len(cells)
		} else if len(cells) > width {
			warnings = append(warnings, Warning{
				File:    path,
				Line:    n + 1,
				Message: fmt.Sprintf("row has %d columns, expected at most %d", len(cells), width),
			})
			continue
		}
		doc.Rows = append(doc.Rows, grid.Row(cells))
	}
	return doc, warnings, nil
}

var tableFileNumber = regexp.MustCompile(`table_(\d+)\.md$`)

// LoadDir reads every table_*.md file in dir, ordered by the number embedded
// in the file name (name order for anything that does not match). Unreadable
// files are skipped with a warning; the load keeps going.
func LoadDir(dir string) ([]grid.Document, []Warning, error) {
	files, err := filepath.Glob(filepath.Join(dir, "table_*.md"))
	if err != nil {
		return nil, nil, err
	}
	sort.Slice(files, func(a, b int) bool {
		na, nb := fileNumber(files[a]), fileNumber(files[b])
		if na != nb {
			return na < nb
		}
		return files[a] < files[b]
	})

	var docs []grid.Document
	var warnings []Warning
	for _, file := range files {
		doc, w, err := ReadFile(file)
		warnings = append(warnings, w...)
		if err != nil {
			warnings = append(warnings, Warning{File: file, Message: err.Error()})
			continue
		}
		docs = append(docs, doc)
	}
	return docs, warnings, nil
}

func fileNumber(path string) int {
	m := tableFileNumber.FindStringSubmatch(filepath.Base(path))
	if m == nil {
		return 0
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return 0
	}
	return n
}
