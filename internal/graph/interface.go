package graph

import (
	"github.com/specialistvlad/gamebook/internal/node"
	"github.com/specialistvlad/gamebook/internal/nodeid"
)

// Reader is the read-only view of an adventure graph.
type Reader interface {
	// Get retrieves a node by its identifier.
	//
	// Returns the node and true if found, or nil and false otherwise. The
	// returned node must not be modified by the caller.
	Get(id nodeid.ID) (*node.Node, bool)

	// Has reports whether a node with the identifier exists.
	Has(id nodeid.ID) bool

	// IDs returns all identifiers. The order is for display only; the
	// in-memory Store returns them sorted.
	IDs() []nodeid.ID

	// Len returns the number of nodes.
	Len() int
}

// Graph is a Reader that can also insert or replace nodes.
type Graph interface {
	Reader

	// Put inserts the node under id, replacing any previous node wholesale.
	Put(id nodeid.ID, n *node.Node)
}
