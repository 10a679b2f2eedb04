package compilation

import (
	"fmt"
	"io"

	"github.com/crytic/gsolc/compilation/types"
)

// Reporter classifies engine diagnostics by severity, prints them, and tracks whether any non-warning diagnostic
// was seen, which determines the final status of a direct-mode run.
type Reporter struct {
	// stdout is the writer warnings are printed to.
	stdout io.Writer

	// stderr is the writer non-warning diagnostics are printed to.
	stderr io.Writer

	// sawError indicates whether at least one non-warning diagnostic was reported.
	sawError bool
}

// NewReporter returns a Reporter printing warnings to the first writer and all other diagnostics to the second.
func NewReporter(stdout io.Writer, stderr io.Writer) *Reporter {
	return &Reporter{stdout: stdout, stderr: stderr}
}

// Report prints every diagnostic to the stream its severity selects, surfacing each formatted message verbatim.
func (r *Reporter) Report(diagnostics []types.Diagnostic) {
	for _, diagnostic := range diagnostics {
		if diagnostic.IsWarning() {
			fmt.Fprintln(r.stdout, diagnostic.ConsoleMessage())
		} else {
			fmt.Fprintln(r.stderr, diagnostic.ConsoleMessage())
			r.sawError = true
		}
	}
}

// SawError returns a boolean indicating whether at least one non-warning diagnostic has been reported.
func (r *Reporter) SawError() bool {
	return r.sawError
}
