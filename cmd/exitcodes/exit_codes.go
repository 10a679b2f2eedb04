package exitcodes

const (
	// ================================
	// Platform-universal exit codes
	// ================================

	// ExitCodeSuccess indicates no errors or failures had occurred.
	ExitCodeSuccess = 0

	// ExitCodeGeneralError indicates some type of general error occurred.
	ExitCodeGeneralError = 1

	// ================================
	// Application-specific exit codes
	// ================================

	// ExitCodeHandledError indicates an error occurred that was already reported to the user by the command which
	// encountered it. Top-level error printing is skipped for these, but the process still exits with
	// ExitCodeGeneralError. Compilation diagnostics surfaced by the reporter use this path, as the diagnostics
	// themselves are the error output.
	ExitCodeHandledError = 7
)
