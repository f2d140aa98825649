package engine

import (
	"errors"
	"fmt"

	"github.com/specialistvlad/gamebook/internal/nodeid"
)

var (
	// ErrCorruptNode matches a NodeError for a node that is not well-formed.
	ErrCorruptNode = errors.New("corrupt node")
	// ErrMissingTargetNode matches a NodeError for a node that does not exist.
	ErrMissingTargetNode = errors.New("missing target node")
)

// NodeError reports a structural problem that aborted a run.
type NodeError struct {
	// Kind is ErrCorruptNode or ErrMissingTargetNode.
	Kind error
	// ID is the offending node: the corrupt one, or the one that is missing.
	ID nodeid.ID
	// From is the node whose choice led to a missing node. Empty when the
	// run's starting node itself was missing.
	From nodeid.ID
	// Err is the underlying cause, if any.
	Err error
}

func (e *NodeError) Error() string {
	switch {
	case e.Err != nil:
		return fmt.Sprintf("%s %q: %v", e.Kind, e.ID, e.Err)
	case e.From != "":
		return fmt.Sprintf("%s %q (chosen from %q)", e.Kind, e.ID, e.From)
	default:
		return fmt.Sprintf("%s %q", e.Kind, e.ID)
	}
}

// Is lets errors.Is match a NodeError against its kind sentinel.
func (e *NodeError) Is(target error) bool {
	return target == e.Kind
}

func (e *NodeError) Unwrap() error {
	return e.Err
}
