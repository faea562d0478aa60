package ui

import (
	"io"

	"github.com/fatih/color"
)

// maxShownWarnings caps how many warnings print in full; the rest collapse
// into a count so a badly mangled source does not flood the terminal.
const maxShownWarnings = 10

// WarningOptions configures warning rendering.
type WarningOptions struct {
	NoColor bool
	Limit   int // 0 means maxShownWarnings
}

// RenderWarnings writes a capped warning list under a header. Nothing is
// written when the list is empty.
func RenderWarnings(w io.Writer, header string, warnings []string, opts *WarningOptions) {
	if len(warnings) == 0 {
		return
	}

	limit := maxShownWarnings
	noColor := false
	if opts != nil {
		noColor = opts.NoColor
		if opts.Limit > 0 {
			limit = opts.Limit
		}
	}

	head := color.New(color.FgYellow, color.Bold)
	body := color.New(color.FgYellow)
	if noColor {
		head.DisableColor()
		body.DisableColor()
	}

	head.Fprintf(w, "⚠ %s\n", header)
	for i, warning := range warnings {
		if i == limit {
			body.Fprintf(w, "  ... and %d more\n", len(warnings)-limit)
			return
		}
		body.Fprintf(w, "  %s\n", warning)
	}
}
