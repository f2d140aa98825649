package storage

// Codec converts between the bytes of one file format and records.
type Codec interface {
	// Name is a short human-readable format name, e.g. "json".
	Name() string
	// Extensions lists the lower-case file extensions, with leading dot,
	// handled by this codec.
	Extensions() []string
	// Decode parses data. Any error is reported to callers as a ParseError.
	Decode(data []byte) (map[string]Record, error)
	// Encode serialises records deterministically.
	Encode(records map[string]Record) ([]byte, error)
}
