package compilation

import (
	"bytes"
	"testing"

	"github.com/crytic/gsolc/compilation/types"
	"github.com/stretchr/testify/assert"
)

// TestReporterSeverityRouting ensures warnings go to stdout and everything else to stderr.
func TestReporterSeverityRouting(t *testing.T) {
	var stdout, stderr bytes.Buffer
	reporter := NewReporter(&stdout, &stderr)

	reporter.Report([]types.Diagnostic{
		{Severity: "warning", Message: "unused variable", FormattedMessage: "Warning: unused variable"},
		{Severity: "error", Message: "bad type", FormattedMessage: "TypeError: bad type"},
		{Severity: "info", Message: "note"},
	})

	assert.Equal(t, "Warning: unused variable\n", stdout.String())
	assert.Equal(t, "TypeError: bad type\nnote\n", stderr.String())
	assert.True(t, reporter.SawError())
}

// TestReporterWarningsOnly ensures a run with only warnings does not report failure.
func TestReporterWarningsOnly(t *testing.T) {
	var stdout, stderr bytes.Buffer
	reporter := NewReporter(&stdout, &stderr)

	reporter.Report([]types.Diagnostic{{Severity: "warning", Message: "minor"}})
	assert.False(t, reporter.SawError())
	assert.Empty(t, stderr.String())
}

// TestReporterNoDiagnostics ensures an absent diagnostic list reports success.
func TestReporterNoDiagnostics(t *testing.T) {
	var stdout, stderr bytes.Buffer
	reporter := NewReporter(&stdout, &stderr)

	reporter.Report(nil)
	assert.False(t, reporter.SawError())
}
