package imports

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNormalizeSourcePathDescendant ensures candidates under the base path yield slash-separated relative names with
// no parent-directory segments, and that resolving the name against the base reproduces the candidate.
func TestNormalizeSourcePathDescendant(t *testing.T) {
	basePath := t.TempDir()
	candidate := filepath.Join(basePath, "contracts", "token", "Token.sol")

	key := NormalizeSourcePath(candidate, basePath)
	assert.Equal(t, "contracts/token/Token.sol", key)
	assert.False(t, strings.Contains(key, ".."))

	// Resolving the key against the base must reproduce the candidate
	resolved := filepath.Join(basePath, filepath.FromSlash(key))
	assert.Equal(t, candidate, resolved)
}

// TestNormalizeSourcePathOutsideBase ensures candidates outside the base path fall back to an absolute,
// slash-separated form.
func TestNormalizeSourcePathOutsideBase(t *testing.T) {
	basePath := filepath.Join(t.TempDir(), "project")
	require.NoError(t, os.MkdirAll(basePath, 0777))
	candidate := filepath.Join(filepath.Dir(basePath), "elsewhere", "Token.sol")

	key := NormalizeSourcePath(candidate, basePath)
	assert.True(t, filepath.IsAbs(filepath.FromSlash(key)))
	assert.False(t, strings.HasPrefix(key, ".."))
	assert.False(t, strings.Contains(key, "\\"))
}

// TestNormalizeSourcePathSibling ensures a sibling of the base directory is not rendered with a leading parent
// segment.
func TestNormalizeSourcePathSibling(t *testing.T) {
	parent := t.TempDir()
	basePath := filepath.Join(parent, "base")
	candidate := filepath.Join(parent, "base2", "A.sol")

	key := NormalizeSourcePath(candidate, basePath)
	assert.True(t, filepath.IsAbs(filepath.FromSlash(key)))
}

// TestNormalizeSourcePathDotSegments ensures redundant path segments collapse into the canonical relative form.
func TestNormalizeSourcePathDotSegments(t *testing.T) {
	basePath := t.TempDir()
	candidate := filepath.Join(basePath, "contracts", "..", "contracts", ".", "A.sol")

	key := NormalizeSourcePath(candidate, basePath)
	assert.Equal(t, "contracts/A.sol", key)
}

// TestNormalizeSourcePathEmptyBase ensures an empty base path behaves as the working directory.
func TestNormalizeSourcePathEmptyBase(t *testing.T) {
	workingDirectory, err := os.Getwd()
	require.NoError(t, err)

	key := NormalizeSourcePath(filepath.Join(workingDirectory, "A.sol"), "")
	assert.Equal(t, "A.sol", key)
}
