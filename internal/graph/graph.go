package graph

import (
	"slices"

	"github.com/specialistvlad/gamebook/internal/node"
	"github.com/specialistvlad/gamebook/internal/nodeid"
)

// Store is the map-backed implementation of Graph.
type Store struct {
	nodes map[nodeid.ID]*node.Node
}

var _ Graph = (*Store)(nil)

// New creates an empty graph.
func New() *Store {
	return &Store{nodes: make(map[nodeid.ID]*node.Node)}
}

func (s *Store) Get(id nodeid.ID) (*node.Node, bool) {
	n, ok := s.nodes[id]
	return n, ok
}

func (s *Store) Has(id nodeid.ID) bool {
	_, ok := s.nodes[id]
	return ok
}

func (s *Store) IDs() []nodeid.ID {
	ids := make([]nodeid.ID, 0, len(s.nodes))
	for id := range s.nodes {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

func (s *Store) Len() int {
	return len(s.nodes)
}

// Put stores a copy of n, so later changes to the caller's value do not
// leak into the graph.
func (s *Store) Put(id nodeid.ID, n *node.Node) {
	s.nodes[id] = n.Clone()
}

// Equal reports whether two graphs hold the same identifiers with the same
// prompts and the same choices in the same order.
func Equal(a, b Reader) bool {
	if a.Len() != b.Len() {
		return false
	}
	for _, id := range a.IDs() {
		an, _ := a.Get(id)
		bn, ok := b.Get(id)
		if !ok {
			return false
		}
		if (an == nil) != (bn == nil) {
			return false
		}
		if an == nil {
			continue
		}
		if an.Prompt != bn.Prompt || !slices.Equal(an.Choices, bn.Choices) {
			return false
		}
	}
	return true
}
