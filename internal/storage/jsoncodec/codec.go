// Package jsoncodec reads and writes adventures in the reference JSON
// format: one object keyed by node identifier whose values hold "prompt",
// "messages" and "nodes".
package jsoncodec

import (
	"bytes"
	"encoding/json"
	"errors"

	"github.com/specialistvlad/gamebook/internal/storage"
)

// Codec implements storage.Codec for JSON.
type Codec struct{}

var _ storage.Codec = Codec{}

// New returns the JSON codec.
func New() Codec {
	return Codec{}
}

func (Codec) Name() string {
	return "json"
}

func (Codec) Extensions() []string {
	return []string{".json"}
}

func (Codec) Decode(data []byte) (map[string]storage.Record, error) {
	var records map[string]storage.Record
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, err
	}
	if records == nil {
		return nil, errors.New("top-level value must be an object of nodes")
	}
	return records, nil
}

// Encode writes indented JSON with keys in sorted order.
func (Codec) Encode(records map[string]storage.Record) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(records); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
