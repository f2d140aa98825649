// internal/nodeid/parser.go
package nodeid

import "errors"

// ErrEmpty is returned by Parse for the empty string.
var ErrEmpty = errors.New("identifier cannot be empty")

// Parse converts raw operator or file input into an ID. Only the empty
// string is rejected; surrounding whitespace is significant and preserved.
func Parse(rawID string) (ID, error) {
	if rawID == "" {
		return "", ErrEmpty
	}
	return ID(rawID), nil
}

// MustParse is like Parse but panics on invalid input. It is meant for
// constants and test fixtures.
func MustParse(rawID string) ID {
	id, err := Parse(rawID)
	if err != nil {
		panic(err)
	}
	return id
}
