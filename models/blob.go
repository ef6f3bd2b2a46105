package models

import (
	"bytes"
	"encoding/json"
)

// Blob is an optional nested object. The backend stores some of these as JSON
// columns and returns them either as objects or as JSON-encoded strings.
// Anything that is not an object decodes to an absent blob.
type Blob[T any] struct {
	Value *T
}

func (b *Blob[T]) UnmarshalJSON(data []byte) error {
	b.Value = nil

	raw := bytes.TrimSpace(data)
	if len(raw) > 0 && raw[0] == '"' {
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return nil
		}
		raw = bytes.TrimSpace([]byte(s))
	}
	if len(raw) == 0 || raw[0] != '{' {
		return nil
	}

	var v T
	if err := json.Unmarshal(raw, &v); err != nil {
		return nil
	}
	b.Value = &v
	return nil
}

func (b Blob[T]) MarshalJSON() ([]byte, error) {
	if b.Value == nil {
		return []byte("null"), nil
	}
	return json.Marshal(b.Value)
}
