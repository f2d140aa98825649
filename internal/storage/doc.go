// Package storage is the persistence boundary of the application. It loads
// adventure files into a graph and saves graphs back to disk.
//
// # Formats
//
// File formats are pluggable through the Codec interface. A codec only turns
// bytes into Records and back; schema checks happen once, here, when Records
// are converted into a graph, so no consumer of a graph has to re-check
// fields. The codec is chosen by file extension.
//
// # Errors
//
// Every failure is an *Error whose Kind is one of NotFound, ReadError,
// ParseError, SchemaError or WriteError. Use errors.Is with the matching
// sentinel (ErrNotFound, ...) to branch on it.
//
// # Writes
//
// Saves are atomic: data is written to a temporary file that is renamed over
// the target, so a failed save never leaves a half-written file behind.
package storage
