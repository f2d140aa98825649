// Package yamlcodec reads and writes adventures as YAML documents with the
// same shape as the JSON format.
package yamlcodec

import (
	"bytes"
	"errors"

	"github.com/specialistvlad/gamebook/internal/storage"
	"gopkg.in/yaml.v3"
)

// Codec implements storage.Codec for YAML.
type Codec struct{}

var _ storage.Codec = Codec{}

// New returns the YAML codec.
func New() Codec {
	return Codec{}
}

func (Codec) Name() string {
	return "yaml"
}

func (Codec) Extensions() []string {
	return []string{".yaml", ".yml"}
}

func (Codec) Decode(data []byte) (map[string]storage.Record, error) {
	var records map[string]storage.Record
	if err := yaml.Unmarshal(data, &records); err != nil {
		return nil, err
	}
	if records == nil {
		return nil, errors.New("document must be a mapping of nodes")
	}
	return records, nil
}

func (Codec) Encode(records map[string]storage.Record) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(records); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
