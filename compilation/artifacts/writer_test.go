package artifacts

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestWriterPersistsArtifacts ensures artifacts land in the output directory under their derived names.
func TestWriterPersistsArtifacts(t *testing.T) {
	outputDirectory := filepath.Join(t.TempDir(), "build")
	writer := NewWriter(outputDirectory)

	result := writer.Write([]Artifact{
		{FileNameKey: "A.sol_Token", Kind: KindBytecode, Content: "6001"},
		{FileNameKey: "A.sol_Token", Kind: KindABI, Content: "[]"},
	})
	require.Empty(t, result.Failures)
	require.Len(t, result.Written, 2)

	contents, err := os.ReadFile(filepath.Join(outputDirectory, "A.sol_Token.bin"))
	require.NoError(t, err)
	assert.Equal(t, "6001", string(contents))

	contents, err = os.ReadFile(filepath.Join(outputDirectory, "A.sol_Token.abi"))
	require.NoError(t, err)
	assert.Equal(t, "[]", string(contents))
}

// TestWriterIdempotentDirectory ensures a second run against the same output directory succeeds and overwrites.
func TestWriterIdempotentDirectory(t *testing.T) {
	outputDirectory := filepath.Join(t.TempDir(), "build")
	writer := NewWriter(outputDirectory)

	first := writer.Write([]Artifact{{FileNameKey: "A.sol_Token", Kind: KindBytecode, Content: "6001"}})
	require.Empty(t, first.Failures)

	second := writer.Write([]Artifact{{FileNameKey: "A.sol_Token", Kind: KindBytecode, Content: "6002"}})
	require.Empty(t, second.Failures)

	contents, err := os.ReadFile(filepath.Join(outputDirectory, "A.sol_Token.bin"))
	require.NoError(t, err)
	assert.Equal(t, "6002", string(contents))
}

// TestWriterCollectsFailuresIndependently ensures one failed write does not block the others.
func TestWriterCollectsFailuresIndependently(t *testing.T) {
	outputDirectory := t.TempDir()

	// Occupy one target path with a directory so its write fails
	require.NoError(t, os.MkdirAll(filepath.Join(outputDirectory, "B.sol_Broken.bin"), 0777))

	writer := NewWriter(outputDirectory)
	result := writer.Write([]Artifact{
		{FileNameKey: "A.sol_Token", Kind: KindBytecode, Content: "6001"},
		{FileNameKey: "B.sol_Broken", Kind: KindBytecode, Content: "6002"},
		{FileNameKey: "C.sol_Other", Kind: KindBytecode, Content: "6003"},
	})

	assert.Len(t, result.Written, 2)
	require.Len(t, result.Failures, 1)
	assert.Equal(t, filepath.Join(outputDirectory, "B.sol_Broken.bin"), result.Failures[0].Path)
	assert.Error(t, result.Failures[0].Err)

	// The sibling artifacts still landed
	_, err := os.Stat(filepath.Join(outputDirectory, "C.sol_Other.bin"))
	assert.NoError(t, err)
}
