package storage

import (
	"errors"
	"fmt"

	"github.com/specialistvlad/gamebook/internal/graph"
	"github.com/specialistvlad/gamebook/internal/node"
	"github.com/specialistvlad/gamebook/internal/nodeid"
)

// Record is the persisted form of one node. Messages and Nodes are parallel
// sequences; a nil field means the key was absent from the file.
type Record struct {
	Prompt   *string  `json:"prompt" yaml:"prompt"`
	Messages []string `json:"messages" yaml:"messages"`
	Nodes    []string `json:"nodes" yaml:"nodes"`
}

// NewRecord builds a complete record.
func NewRecord(prompt string, messages, nodes []string) Record {
	if messages == nil {
		messages = []string{}
	}
	if nodes == nil {
		nodes = []string{}
	}
	return Record{Prompt: &prompt, Messages: messages, Nodes: nodes}
}

// ToGraph converts decoded records into a graph. It fails with a schema
// problem when the entry node is missing, an identifier is empty, a record
// lacks one of its fields, or a record's sequences differ in length. All
// problems are collected, not only the first.
func ToGraph(records map[string]Record, entry nodeid.ID) (*graph.Store, error) {
	g := graph.New()
	var errs []error

	if _, ok := records[entry.String()]; !ok {
		errs = append(errs, fmt.Errorf("no %s node", entry))
	}

	for rawID, rec := range records {
		id, err := nodeid.Parse(rawID)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		if rec.Prompt == nil || rec.Messages == nil || rec.Nodes == nil {
			errs = append(errs, fmt.Errorf("node %q should have prompt, messages, and nodes", rawID))
			continue
		}
		targets := make([]nodeid.ID, len(rec.Nodes))
		for i, t := range rec.Nodes {
			targets[i] = nodeid.ID(t)
		}
		n, err := node.New(*rec.Prompt, rec.Messages, targets)
		if err != nil {
			errs = append(errs, fmt.Errorf("node %q: %w", rawID, err))
			continue
		}
		g.Put(id, n)
	}

	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return g, nil
}

// FromGraph converts a graph into records. Nil nodes are written as empty
// terminal nodes.
func FromGraph(g graph.Reader) map[string]Record {
	records := make(map[string]Record, g.Len())
	for _, id := range g.IDs() {
		n, _ := g.Get(id)
		if n == nil {
			records[id.String()] = NewRecord("", nil, nil)
			continue
		}
		targets := make([]string, len(n.Choices))
		for i, t := range n.Targets() {
			targets[i] = t.String()
		}
		records[id.String()] = NewRecord(n.Prompt, n.Messages(), targets)
	}
	return records
}
