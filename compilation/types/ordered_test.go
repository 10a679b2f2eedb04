package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestJSONOrderedMapPreservesKeyOrder ensures traversal order matches the JSON document, not Go map order.
func TestJSONOrderedMapPreservesKeyOrder(t *testing.T) {
	document := `{"zebra": 1, "alpha": 2, "monkey": 3, "beta": 4}`

	var m JSONOrderedMap[int]
	err := json.Unmarshal([]byte(document), &m)
	require.NoError(t, err)

	// Keys must come back in document order
	assert.Equal(t, []string{"zebra", "alpha", "monkey", "beta"}, m.Keys())

	// Values must be retrievable per key
	value, ok := m.Get("monkey")
	assert.True(t, ok)
	assert.Equal(t, 3, value)
}

// TestJSONOrderedMapNested ensures nested ordered maps decode with per-level ordering intact.
func TestJSONOrderedMapNested(t *testing.T) {
	document := `{"b.sol": {"Second": 2, "First": 1}, "a.sol": {"Third": 3}}`

	var m JSONOrderedMap[JSONOrderedMap[int]]
	err := json.Unmarshal([]byte(document), &m)
	require.NoError(t, err)

	assert.Equal(t, []string{"b.sol", "a.sol"}, m.Keys())
	inner, ok := m.Get("b.sol")
	require.True(t, ok)
	assert.Equal(t, []string{"Second", "First"}, inner.Keys())
}

// TestJSONOrderedMapNull ensures a JSON null decodes to an empty map rather than an error.
func TestJSONOrderedMapNull(t *testing.T) {
	var m JSONOrderedMap[int]
	err := json.Unmarshal([]byte(`null`), &m)
	require.NoError(t, err)
	assert.Zero(t, m.Len())
}

// TestJSONOrderedMapRejectsNonObject ensures arrays and scalars are rejected.
func TestJSONOrderedMapRejectsNonObject(t *testing.T) {
	var m JSONOrderedMap[int]
	assert.Error(t, json.Unmarshal([]byte(`[1, 2]`), &m))
	assert.Error(t, json.Unmarshal([]byte(`"text"`), &m))
}

// TestJSONOrderedMapMarshalRoundTrip ensures marshalling emits keys in recorded order.
func TestJSONOrderedMapMarshalRoundTrip(t *testing.T) {
	var m JSONOrderedMap[string]
	m.Set("c", "3")
	m.Set("a", "1")
	m.Set("b", "2")

	encoded, err := json.Marshal(m)
	require.NoError(t, err)
	assert.Equal(t, `{"c":"3","a":"1","b":"2"}`, string(encoded))
}
