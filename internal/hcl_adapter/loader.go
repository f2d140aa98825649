// Package hcl_adapter stores adventures in HCL, one labelled block per node:
//
//	node "start" {
//	  prompt = "Go left or right?"
//	  choice {
//	    message = "left"
//	    target  = "left"
//	  }
//	}
//
// Choices are nested blocks, so a message can never lose its target.
package hcl_adapter

import (
	"fmt"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/specialistvlad/gamebook/internal/storage"
)

// Codec is the HCL implementation of storage.Codec.
type Codec struct{}

var _ storage.Codec = Codec{}

// NewCodec creates a new HCL codec.
func NewCodec() Codec {
	return Codec{}
}

func (Codec) Name() string {
	return "hcl"
}

func (Codec) Extensions() []string {
	return []string{".hcl"}
}

// Decode parses HCL source. Template interpolation is not available, so a
// literal "${" in a prompt must be written as "$${".
func (Codec) Decode(data []byte) (map[string]storage.Record, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(data, "adventure.hcl")
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL: %w", diags)
	}

	var root fileRoot
	diags = gohcl.DecodeBody(file.Body, nil, &root)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %w", diags)
	}

	records := make(map[string]storage.Record, len(root.Nodes))
	for _, b := range root.Nodes {
		if _, dup := records[b.ID]; dup {
			return nil, fmt.Errorf("duplicate node block %q", b.ID)
		}
		records[b.ID] = translateNode(b)
	}
	return records, nil
}
