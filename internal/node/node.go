// Package node defines the record stored for every location of an adventure:
// the prompt shown on entry and the ordered choices leading away from it.
package node

import (
	"errors"
	"fmt"

	"github.com/specialistvlad/gamebook/internal/nodeid"
)

var (
	// ErrLengthMismatch is returned by New when the message and target
	// sequences have different lengths.
	ErrLengthMismatch = errors.New("number of target nodes must match the number of choice messages")
	// ErrNilNode is returned by Validate for a missing node value.
	ErrNilNode = errors.New("node has no content")
)

// Choice is one numbered option of a node: the text shown to the player and
// the identifier of the node the option leads to.
type Choice struct {
	Message string
	Target  nodeid.ID
}

// Node is a single vertex of the adventure graph.
//
// Choices are kept as pairs, so the message and target sequences of the
// persisted format can never be resized independently once a Node exists.
// The order of Choices is the 1-based numbering shown to the player.
type Node struct {
	// Prompt is the multi-line text displayed when the node is entered.
	Prompt string
	// Choices leading away from this node. Empty for a terminal node.
	Choices []Choice
}

// New builds a node from the parallel message and target sequences used by
// the file formats. Targets are accepted verbatim, including ones that name
// no existing node.
func New(prompt string, messages []string, targets []nodeid.ID) (*Node, error) {
	if len(messages) != len(targets) {
		return nil, fmt.Errorf("%w: %d messages, %d targets", ErrLengthMismatch, len(messages), len(targets))
	}
	n := &Node{Prompt: prompt}
	if len(messages) > 0 {
		n.Choices = make([]Choice, len(messages))
		for i := range messages {
			n.Choices[i] = Choice{Message: messages[i], Target: targets[i]}
		}
	}
	return n, nil
}

// IsTerminal reports whether the node ends the adventure ("THE END").
func (n *Node) IsTerminal() bool {
	return len(n.Choices) == 0
}

// Messages returns the choice messages in display order.
func (n *Node) Messages() []string {
	out := make([]string, len(n.Choices))
	for i, c := range n.Choices {
		out[i] = c.Message
	}
	return out
}

// Targets returns the choice targets in display order.
func (n *Node) Targets() []nodeid.ID {
	out := make([]nodeid.ID, len(n.Choices))
	for i, c := range n.Choices {
		out[i] = c.Target
	}
	return out
}

// Choice returns the choice at the given 1-based position.
func (n *Node) Choice(position int) (Choice, bool) {
	if position < 1 || position > len(n.Choices) {
		return Choice{}, false
	}
	return n.Choices[position-1], true
}

// Clone returns a deep copy so that stores never share choice slices with callers.
func (n *Node) Clone() *Node {
	if n == nil {
		return nil
	}
	c := &Node{Prompt: n.Prompt}
	if n.Choices != nil {
		c.Choices = make([]Choice, len(n.Choices))
		copy(c.Choices, n.Choices)
	}
	return c
}

// Validate checks the structural well-formedness of a node before it is entered.
func (n *Node) Validate() error {
	if n == nil {
		return ErrNilNode
	}
	return nil
}
