package console

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Answer is the interpretation of a free-text yes/no reply.
type Answer int

const (
	// Invalid is any reply that is neither affirmative nor negative,
	// including the empty line.
	Invalid Answer = iota
	// Affirmative is a reply whose first non-space letter is 'y' or 'Y'.
	Affirmative
	// Negative is a reply whose first non-space letter is 'n' or 'N'.
	Negative
)

func (a Answer) String() string {
	switch a {
	case Affirmative:
		return "affirmative"
	case Negative:
		return "negative"
	default:
		return "invalid"
	}
}

// ParseAnswer classifies a reply by its first non-space rune, so "Y", "yes"
// and "yep" are all affirmative.
func ParseAnswer(reply string) Answer {
	trimmed := strings.TrimLeftFunc(reply, unicode.IsSpace)
	r, size := utf8.DecodeRuneInString(trimmed)
	if size == 0 {
		return Invalid
	}
	switch unicode.ToLower(r) {
	case 'y':
		return Affirmative
	case 'n':
		return Negative
	default:
		return Invalid
	}
}
