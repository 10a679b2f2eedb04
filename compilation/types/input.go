package types

// SolidityLanguage is the language identifier carried by every compilation request this driver builds.
const SolidityLanguage = "Solidity"

// StandardJSONInput describes a standard-JSON compilation request handed to the compiler engine. A fresh request is
// built per compile invocation and treated as immutable once marshalled.
type StandardJSONInput struct {
	// Language describes the source language of the request. This driver always sets it to SolidityLanguage.
	Language string `json:"language"`

	// Sources maps a normalized source unit name to its contents. Keys are unique within one request and are
	// derived once via NormalizeSourcePath, never mutated afterwards.
	Sources map[string]SourceContent `json:"sources"`

	// Settings describes the compiler settings for this request.
	Settings CompilerSettings `json:"settings"`
}

// SourceContent describes the literal contents of a single source unit within a StandardJSONInput.
type SourceContent struct {
	Content string `json:"content"`
}

// CompilerSettings describes the settings portion of a StandardJSONInput.
type CompilerSettings struct {
	// Optimizer describes the optimizer settings for the request.
	Optimizer OptimizerSettings `json:"optimizer"`

	// OutputSelection maps file and contract wildcards to the list of requested compiler outputs.
	OutputSelection map[string]map[string][]string `json:"outputSelection"`
}

// OptimizerSettings describes whether the compiler's optimizer is enabled for a request.
type OptimizerSettings struct {
	Enabled bool `json:"enabled"`
}

// NewStandardJSONInput returns a new StandardJSONInput with no sources, requesting the ABI and EVM bytecode of
// every contract in every file, with the optimizer toggled per the provided flag.
func NewStandardJSONInput(optimize bool) *StandardJSONInput {
	return &StandardJSONInput{
		Language: SolidityLanguage,
		Sources:  make(map[string]SourceContent),
		Settings: CompilerSettings{
			Optimizer: OptimizerSettings{Enabled: optimize},
			OutputSelection: map[string]map[string][]string{
				"*": {
					"*": {"abi", "evm.bytecode"},
				},
			},
		},
	}
}

// AddSource registers a source unit in the request under the given normalized name.
func (s *StandardJSONInput) AddSource(sourceUnitName string, contents string) {
	s.Sources[sourceUnitName] = SourceContent{Content: contents}
}
