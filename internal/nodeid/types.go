// internal/nodeid/types.go
package nodeid

// ID is the unique, case-sensitive identifier of a node within one graph.
type ID string

// Entry is the conventional identifier of the node a run starts from.
const Entry ID = "start"

// String returns the identifier as plain text.
func (id ID) String() string {
	return string(id)
}

// IsZero reports whether the identifier is empty and therefore unusable as a key.
func (id ID) IsZero() bool {
	return id == ""
}
