package hcl_adapter

import (
	"fmt"

	"github.com/specialistvlad/gamebook/internal/storage"
)

// fileRoot is the top level of an adventure file: a sequence of node blocks.
type fileRoot struct {
	Nodes []*NodeBlock `hcl:"node,block"`
}

// NodeBlock is one `node "<id>" { ... }` block.
type NodeBlock struct {
	ID      string         `hcl:"id,label"`
	Prompt  string         `hcl:"prompt"`
	Choices []*ChoiceBlock `hcl:"choice,block"`
}

// ChoiceBlock is one `choice { message = ..., target = ... }` block inside a node.
type ChoiceBlock struct {
	Message string `hcl:"message"`
	Target  string `hcl:"target"`
}

// translateNode converts a decoded block into the format-agnostic record.
func translateNode(b *NodeBlock) storage.Record {
	messages := make([]string, len(b.Choices))
	targets := make([]string, len(b.Choices))
	for i, c := range b.Choices {
		messages[i] = c.Message
		targets[i] = c.Target
	}
	return storage.NewRecord(b.Prompt, messages, targets)
}

// translateRecord converts a record back into a block. The record's
// sequences must have equal length.
func translateRecord(id string, rec storage.Record) (*NodeBlock, error) {
	if len(rec.Messages) != len(rec.Nodes) {
		return nil, fmt.Errorf("node %q: %d messages but %d targets", id, len(rec.Messages), len(rec.Nodes))
	}
	b := &NodeBlock{ID: id}
	if rec.Prompt != nil {
		b.Prompt = *rec.Prompt
	}
	for i := range rec.Messages {
		b.Choices = append(b.Choices, &ChoiceBlock{Message: rec.Messages[i], Target: rec.Nodes[i]})
	}
	return b, nil
}
