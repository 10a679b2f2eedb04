// Package artifacts walks compiled output and persists per-contract artifact files (bytecode, ABI) into an output
// directory.
package artifacts

import (
	"encoding/hex"
	"strings"

	"github.com/crytic/gsolc/compilation/types"
	"github.com/crytic/gsolc/logging"
	"golang.org/x/exp/slices"
)

// Kind identifies a type of artifact file derivable from a compiled contract.
type Kind string

const (
	// KindBytecode identifies the hex-encoded EVM creation bytecode artifact, persisted with a .bin extension.
	KindBytecode Kind = "bin"

	// KindABI identifies the JSON-serialized ABI artifact, persisted with a .abi extension.
	KindABI Kind = "abi"
)

// supportedKinds lists every artifact kind the extractor can derive.
var supportedKinds = []Kind{KindBytecode, KindABI}

// Artifact describes one output file derived from a compiled contract.
type Artifact struct {
	// FileNameKey is the sanitized, filesystem-safe name the artifact is persisted under, without extension.
	FileNameKey string

	// Kind identifies the artifact file type.
	Kind Kind

	// Content is the artifact file contents.
	Content string
}

// fileNameSanitizer replaces the characters which would make a contract key unsafe as a flat file name. Distinct
// contracts may sanitize to the same name; the last write wins, a known limitation.
var fileNameSanitizer = strings.NewReplacer(":", "_", "/", "_", "\\", "_")

// SanitizeFileNameKey derives the flat, filesystem-safe artifact file name for a (fileKey, contractName) pair.
func SanitizeFileNameKey(fileKey string, contractName string) string {
	return fileNameSanitizer.Replace(fileKey + ":" + contractName)
}

// Extractor walks compiled output and derives the selected artifact kinds for every contract.
type Extractor struct {
	// kinds holds the artifact kinds to derive.
	kinds []Kind

	// logger describes the Extractor's log object
	logger *logging.Logger
}

// NewExtractor returns an Extractor deriving the given artifact kinds. Unsupported kinds are ignored.
func NewExtractor(kinds ...Kind) *Extractor {
	var selected []Kind
	for _, kind := range kinds {
		if slices.Contains(supportedKinds, kind) && !slices.Contains(selected, kind) {
			selected = append(selected, kind)
		}
	}
	return &Extractor{
		kinds:  selected,
		logger: logging.GlobalLogger.NewSubLogger("module", "artifacts"),
	}
}

// Extract derives artifacts for every contract in the compiled output, in the order the engine emitted them.
func (e *Extractor) Extract(contracts *types.JSONOrderedMap[types.JSONOrderedMap[types.CompiledContract]]) []Artifact {
	var extracted []Artifact
	for _, fileKey := range contracts.Keys() {
		fileContracts, _ := contracts.Get(fileKey)
		for _, contractName := range fileContracts.Keys() {
			contract, _ := fileContracts.Get(contractName)
			fileNameKey := SanitizeFileNameKey(fileKey, contractName)

			for _, kind := range e.kinds {
				switch kind {
				case KindBytecode:
					extracted = append(extracted, Artifact{
						FileNameKey: fileNameKey,
						Kind:        KindBytecode,
						Content:     contract.EVM.Bytecode.Object,
					})
					e.logMetadataHash(fileNameKey, contract.EVM.Bytecode.Object)
				case KindABI:
					extracted = append(extracted, Artifact{
						FileNameKey: fileNameKey,
						Kind:        KindABI,
						Content:     string(contract.ABI),
					})
				}
			}
		}
	}
	return extracted
}

// logMetadataHash surfaces the bytecode hash embedded in a contract's trailing metadata blob, when one is present.
func (e *Extractor) logMetadataHash(fileNameKey string, bytecodeHex string) {
	bytecode, err := hex.DecodeString(strings.TrimPrefix(bytecodeHex, "0x"))
	if err != nil {
		return
	}
	metadata := types.ExtractContractMetadata(bytecode)
	if metadata == nil {
		return
	}
	if bytecodeHash := metadata.ExtractBytecodeHash(); bytecodeHash != nil {
		e.logger.Debug("extracted metadata bytecode hash for ", fileNameKey, ": ", hex.EncodeToString(bytecodeHash))
	}
}
