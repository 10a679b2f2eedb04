package types

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// JSONOrderedMap describes a mapping of string keys to values which preserves the key order encountered when
// unmarshalling from a JSON object. The compiler engine keys its response by arbitrary file and contract names, and
// downstream consumers must traverse those entries in the order the engine emitted them.
type JSONOrderedMap[V any] struct {
	// keys holds the map keys in the order they were first encountered.
	keys []string

	// values maps each key to its decoded value.
	values map[string]V
}

// Keys returns the map's keys in the order they were encountered when unmarshalling.
func (m *JSONOrderedMap[V]) Keys() []string {
	return m.keys
}

// Len returns the number of entries in the map.
func (m *JSONOrderedMap[V]) Len() int {
	return len(m.keys)
}

// Get returns the value stored under the given key and a boolean indicating whether the key exists.
func (m *JSONOrderedMap[V]) Get(key string) (V, bool) {
	value, ok := m.values[key]
	return value, ok
}

// Set stores a value under the given key, appending the key to the ordering if it was not present yet.
func (m *JSONOrderedMap[V]) Set(key string, value V) {
	if m.values == nil {
		m.values = make(map[string]V)
	}
	if _, exists := m.values[key]; !exists {
		m.keys = append(m.keys, key)
	}
	m.values[key] = value
}

// UnmarshalJSON decodes a JSON object into the map, recording key order as encountered. A JSON null yields an
// empty map. Duplicate keys keep their first position but take the last value, mirroring encoding/json.
func (m *JSONOrderedMap[V]) UnmarshalJSON(data []byte) error {
	decoder := json.NewDecoder(bytes.NewReader(data))

	// Read the opening token, accepting a null literal as an empty map.
	token, err := decoder.Token()
	if err != nil {
		return err
	}
	if token == nil {
		m.keys = nil
		m.values = nil
		return nil
	}
	if delim, ok := token.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("cannot unmarshal non-object JSON value into an ordered map")
	}

	m.keys = nil
	m.values = make(map[string]V)

	// Decode each key-value pair in document order.
	for decoder.More() {
		keyToken, err := decoder.Token()
		if err != nil {
			return err
		}
		key, ok := keyToken.(string)
		if !ok {
			return fmt.Errorf("cannot unmarshal non-string key into an ordered map")
		}

		var value V
		if err := decoder.Decode(&value); err != nil {
			return err
		}
		m.Set(key, value)
	}

	// Consume the closing brace.
	_, err = decoder.Token()
	return err
}

// MarshalJSON encodes the map as a JSON object with keys emitted in their recorded order.
func (m JSONOrderedMap[V]) MarshalJSON() ([]byte, error) {
	var buffer bytes.Buffer
	buffer.WriteByte('{')
	for i, key := range m.keys {
		if i > 0 {
			buffer.WriteByte(',')
		}
		encodedKey, err := json.Marshal(key)
		if err != nil {
			return nil, err
		}
		buffer.Write(encodedKey)
		buffer.WriteByte(':')
		encodedValue, err := json.Marshal(m.values[key])
		if err != nil {
			return nil, err
		}
		buffer.Write(encodedValue)
	}
	buffer.WriteByte('}')
	return buffer.Bytes(), nil
}
