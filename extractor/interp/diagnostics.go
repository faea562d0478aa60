package interp

import "fmt"

// Diagnostic records a row the interpreter had to skip or repair. Diagnostics
// never abort a run; the caller decides whether to surface them.
type Diagnostic struct {
	Source  string // originating document (file path or page ref)
	Row     int    // zero-based row index within the document
	Message string
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("%s: row %d: %s", d.Source, d.Row, d.Message)
}

// DiagnosticList is a collection of diagnostics.
type DiagnosticList []Diagnostic

// Count returns the number of diagnostics.
func (dl DiagnosticList) Count() int {
	return len(dl)
}

func (dl DiagnosticList) String() string {
	if len(dl) == 0 {
		return "no diagnostics"
	}
	if len(dl) == 1 {
		return dl[0].String()
	}
	return fmt.Sprintf("%s (and %d more)", dl[0].String(), len(dl)-1)
}
