package storage

import (
	"errors"
	"fmt"
)

// Kind classifies persistence failures.
type Kind int

const (
	// NotFound means no file exists at the path.
	NotFound Kind = iota + 1
	// ReadError means the file exists but could not be read.
	ReadError
	// ParseError means the bytes do not decode to the expected structure.
	ParseError
	// SchemaError means the structure decoded but is not a valid adventure.
	SchemaError
	// WriteError means the file could not be written.
	WriteError
)

// Sentinels matched by *Error through errors.Is, one per Kind.
var (
	ErrNotFound    = errors.New("adventure file not found")
	ErrRead        = errors.New("adventure file could not be read")
	ErrParse       = errors.New("adventure file could not be parsed")
	ErrSchema      = errors.New("not a valid adventure")
	ErrWrite       = errors.New("adventure file could not be written")
	errUnknownKind = errors.New("storage error")
)

// ErrDeclined is returned by Save when the operator refuses to overwrite an
// existing file.
var ErrDeclined = errors.New("overwrite declined")

func (k Kind) sentinel() error {
	switch k {
	case NotFound:
		return ErrNotFound
	case ReadError:
		return ErrRead
	case ParseError:
		return ErrParse
	case SchemaError:
		return ErrSchema
	case WriteError:
		return ErrWrite
	default:
		return errUnknownKind
	}
}

func (k Kind) String() string {
	switch k {
	case NotFound:
		return "NotFound"
	case ReadError:
		return "ReadError"
	case ParseError:
		return "ParseError"
	case SchemaError:
		return "SchemaError"
	case WriteError:
		return "WriteError"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Error is the error type returned by Load and Save.
type Error struct {
	Kind Kind
	Path string
	Err  error
}

func (e *Error) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s: %s", e.Kind.sentinel(), e.Path)
	}
	return fmt.Sprintf("%s: %s: %v", e.Kind.sentinel(), e.Path, e.Err)
}

// Is matches the sentinel of the error's kind.
func (e *Error) Is(target error) bool {
	return target == e.Kind.sentinel()
}

func (e *Error) Unwrap() error {
	return e.Err
}

func newError(kind Kind, path string, err error) *Error {
	return &Error{Kind: kind, Path: path, Err: err}
}
