package compilation

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/crytic/gsolc/compilation/engine"
	"github.com/pkg/errors"
	"golang.org/x/exp/slices"
)

// CompileStandardJSON runs the machine-readable compile protocol over a raw standard-JSON request: one engine pass,
// followed by the verification query round trip when the output requested solver input. Every round-trip failure is
// downgraded to a warning diagnostic embedded in the first-pass output, so a non-nil error is only returned when the
// engine itself produced no output at all.
func (o *Orchestrator) CompileStandardJSON(rawInput []byte) ([]byte, error) {
	importHook := o.importHook()

	// First compilation pass over the caller's request, verbatim.
	firstPass, err := o.engine.Compile(rawInput, importHook)
	if err != nil {
		return nil, err
	}
	if len(bytes.TrimSpace(firstPass)) == 0 {
		return nil, errors.New("the compiler engine produced no output")
	}

	// Attempt the verification query round trip inside an explicit error boundary, so an unexpected engine or
	// solver panic is converted into the same diagnostic-append path as an ordinary failure.
	finalOutput, roundTripErr := func() (output []byte, err error) {
		defer func() {
			if recovered := recover(); recovered != nil {
				err = fmt.Errorf("%v", recovered)
			}
		}()
		return o.runVerificationRoundTrip(rawInput, firstPass, importHook)
	}()

	if roundTripErr != nil {
		o.logger.Debug("the verification query round trip failed, downgrading to a diagnostic", roundTripErr)
		return appendRoundTripWarning(firstPass, roundTripErr), nil
	}
	return finalOutput, nil
}

// runVerificationRoundTrip extracts verification queries from first-pass output, answers them through the solver,
// and issues a second compilation pass over the modified request with the same callbacks. When the first pass
// requested no queries, its output is returned untouched.
func (o *Orchestrator) runVerificationRoundTrip(rawInput []byte, firstPass []byte, importHook engine.ImportHook) ([]byte, error) {
	// Parse both documents before deciding whether a second pass is needed.
	var outputDoc map[string]any
	if err := json.Unmarshal(firstPass, &outputDoc); err != nil {
		return nil, errors.Wrap(err, "could not parse the compiler output")
	}
	var inputDoc map[string]any
	if err := json.Unmarshal(rawInput, &inputDoc); err != nil {
		return nil, errors.Wrap(err, "could not parse the compiler input")
	}

	// Without queries the first-pass output stands, byte for byte.
	queries := extractVerificationQueries(outputDoc)
	if len(queries) == 0 {
		return firstPass, nil
	}
	if o.solver == nil {
		return nil, errors.New("the compilation produced verification queries, but no SMT solver is available")
	}

	// Answer each query, in stable hash order.
	queryHashes := make([]string, 0, len(queries))
	for queryHash := range queries {
		queryHashes = append(queryHashes, queryHash)
	}
	slices.Sort(queryHashes)

	responses := make(map[string]any, len(queries))
	for _, queryHash := range queryHashes {
		answer, err := o.solver.Solve(queries[queryHash])
		if err != nil {
			return nil, err
		}
		responses[queryHash] = answer
	}

	// Feed the solver's answers back into the request and re-compile with the same callbacks.
	inputDoc["auxiliaryInput"] = map[string]any{"smtlib2responses": responses}
	modifiedInput, err := json.Marshal(inputDoc)
	if err != nil {
		return nil, err
	}
	secondPass, err := o.engine.Compile(modifiedInput, importHook)
	if err != nil {
		return nil, err
	}
	return secondPass, nil
}

// extractVerificationQueries pulls the SMT queries the engine embedded in its output, keyed by query hash. Returns
// an empty map when the output requested none.
func extractVerificationQueries(outputDoc map[string]any) map[string]string {
	auxiliaryInputRequired, ok := outputDoc["auxiliaryInputRequired"].(map[string]any)
	if !ok {
		return nil
	}
	rawQueries, ok := auxiliaryInputRequired["smtlib2queries"].(map[string]any)
	if !ok {
		return nil
	}

	queries := make(map[string]string, len(rawQueries))
	for queryHash, query := range rawQueries {
		if queryText, ok := query.(string); ok {
			queries[queryHash] = queryText
		}
	}
	return queries
}

// appendRoundTripWarning re-serializes first-pass output with one additional warning diagnostic describing a
// round-trip failure, creating the error list if the output carried none. Output which cannot be re-serialized is
// returned as-is rather than lost.
func appendRoundTripWarning(firstPass []byte, roundTripErr error) []byte {
	warning := map[string]any{
		"severity":         "warning",
		"type":             "Warning",
		"component":        "general",
		"message":          roundTripErr.Error(),
		"formattedMessage": roundTripErr.Error(),
	}

	var outputDoc map[string]any
	if err := json.Unmarshal(firstPass, &outputDoc); err != nil {
		outputDoc = make(map[string]any)
	}
	errorList, _ := outputDoc["errors"].([]any)
	outputDoc["errors"] = append(errorList, warning)

	encoded, err := json.Marshal(outputDoc)
	if err != nil {
		return firstPass
	}
	return encoded
}
