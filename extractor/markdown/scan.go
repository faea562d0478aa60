package markdown

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
)

// DefaultScanPattern matches a rendered table-name row and captures the name
// following the pipe.
const DefaultScanPattern = `Table Name\s*\|\s*(\S+)`

// ScanTableNames collects every table name mentioned in the rendered files
// under dir, duplicates included, using pattern (or DefaultScanPattern when
// empty). This is the markdown-side diagnostic count, paired with the
// PDF-side scan in package pdftext.
func ScanTableNames(dir, pattern string) ([]string, error) {
	if pattern == "" {
		pattern = DefaultScanPattern
	}
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("scan pattern: %w", err)
	}

	files, err := filepath.Glob(filepath.Join(dir, "*.md"))
	if err != nil {
		return nil, err
	}
	sort.Strings(files)

	var names []string
	for _, file := range files {
		data, err := os.ReadFile(file)
		if err != nil {
			// Unreadable file: skip it, keep counting the rest.
			continue
		}
		for _, m := range re.FindAllStringSubmatch(decode(data), -1) {
			if len(m) > 1 {
				names = append(names, m[1])
			}
		}
	}
	return names, nil
}
