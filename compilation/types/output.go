package types

import (
	"encoding/json"
)

// SeverityWarning is the diagnostic severity the compiler engine assigns to non-fatal findings. Any other severity
// is treated as an error for exit status purposes.
const SeverityWarning = "warning"

// StandardJSONOutput describes the portions of a standard-JSON compilation response this driver consumes. It is
// treated as read-only once parsed; artifact extraction and diagnostic reporting both read it without mutating it.
type StandardJSONOutput struct {
	// Errors describes the diagnostics the engine attached to the compilation, in the order they were emitted.
	// Absent when the compilation produced none.
	Errors []Diagnostic `json:"errors,omitempty"`

	// Contracts maps a source file key to the contracts compiled from it, preserving the engine's emission order.
	Contracts JSONOrderedMap[JSONOrderedMap[CompiledContract]] `json:"contracts"`
}

// Diagnostic describes a single finding emitted by the compiler engine.
type Diagnostic struct {
	// Severity describes the diagnostic severity, e.g. "warning" or "error".
	Severity string `json:"severity"`

	// Type describes the engine's diagnostic classification, e.g. "Warning", "ParserError".
	Type string `json:"type,omitempty"`

	// Component identifies the engine component which produced the diagnostic.
	Component string `json:"component"`

	// Message is the raw diagnostic message.
	Message string `json:"message"`

	// FormattedMessage is the human-readable rendition of Message, usually carrying source locations.
	FormattedMessage string `json:"formattedMessage,omitempty"`
}

// IsWarning returns a boolean indicating whether this diagnostic is of warning severity.
func (d *Diagnostic) IsWarning() bool {
	return d.Severity == SeverityWarning
}

// ConsoleMessage returns the message which should be surfaced to the user, preferring the formatted rendition.
func (d *Diagnostic) ConsoleMessage() string {
	if d.FormattedMessage != "" {
		return d.FormattedMessage
	}
	return d.Message
}

// CompiledContract describes a single contract unit within a standard-JSON compilation response.
type CompiledContract struct {
	// ABI is the contract's application binary interface definition, kept as raw JSON so it can be persisted
	// byte-for-byte as the engine emitted it.
	ABI json.RawMessage `json:"abi"`

	// EVM holds the EVM-related artifacts of the contract.
	EVM EVMArtifact `json:"evm"`
}

// EVMArtifact describes the EVM output section of a compiled contract.
type EVMArtifact struct {
	// Bytecode holds the creation bytecode artifact.
	Bytecode BytecodeArtifact `json:"bytecode"`
}

// BytecodeArtifact describes a bytecode object within a compiled contract's EVM output.
type BytecodeArtifact struct {
	// Object is the hex-encoded bytecode, as emitted by the engine.
	Object string `json:"object"`
}

// ParseStandardJSONOutput parses raw engine output into a StandardJSONOutput, or returns an error if the output
// could not be parsed.
func ParseStandardJSONOutput(data []byte) (*StandardJSONOutput, error) {
	var output StandardJSONOutput
	if err := json.Unmarshal(data, &output); err != nil {
		return nil, err
	}
	return &output, nil
}
