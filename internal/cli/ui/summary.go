// Package ui renders dictkit's terminal output: run summaries and warning
// lists, with color when the terminal supports it.
package ui

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

// Summary describes the outcome of an extraction run.
type Summary struct {
	RunID        string
	FilesRead    int
	FilesSkipped int
	Tables       int
	NamesSeen    int
	RowsDropped  int
	Diagnostics  int
	JSONPath     string
	CatalogPath  string
}

// SummaryOptions configures summary rendering.
type SummaryOptions struct {
	NoColor bool
}

// RenderSummary writes the extraction summary to w.
func RenderSummary(w io.Writer, s Summary, opts *SummaryOptions) {
	noColor := opts != nil && opts.NoColor

	header := color.New(color.FgGreen, color.Bold)
	label := color.New(color.FgCyan)
	warn := color.New(color.FgYellow)
	if noColor {
		header.DisableColor()
		label.DisableColor()
		warn.DisableColor()
	}

	header.Fprintln(w, "Extraction complete")
	if s.RunID != "" {
		label.Fprint(w, "  run:          ")
		fmt.Fprintln(w, s.RunID)
	}
	label.Fprint(w, "  files read:   ")
	fmt.Fprintln(w, s.FilesRead)
	if s.FilesSkipped > 0 {
		warn.Fprint(w, "  files skipped: ")
		fmt.Fprintln(w, s.FilesSkipped)
	}
	label.Fprint(w, "  tables:       ")
	fmt.Fprintln(w, s.Tables)
	label.Fprint(w, "  names seen:   ")
	fmt.Fprintln(w, s.NamesSeen)
	if s.RowsDropped > 0 {
		warn.Fprint(w, "  rows dropped: ")
		fmt.Fprintln(w, s.RowsDropped)
	}
	if s.Diagnostics > 0 {
		warn.Fprint(w, "  diagnostics:  ")
		fmt.Fprintln(w, s.Diagnostics)
	}
	if s.JSONPath != "" {
		label.Fprint(w, "  json:         ")
		fmt.Fprintln(w, s.JSONPath)
	}
	if s.CatalogPath != "" {
		label.Fprint(w, "  catalog:      ")
		fmt.Fprintln(w, s.CatalogPath)
	}
}
