package reply

import (
	"strconv"
	"strings"
)

// Marker is the prefix token that makes a message a reply: the two marker
// characters immediately followed by the target id, e.g. ">>10 thanks".
const Marker = ">>"

// Parse splits an optional leading reply marker off raw user text. When the
// input does not start with a well-formed marker (digits must follow the
// marker directly and be terminated by whitespace or end of input), the
// trimmed input is returned unchanged with a nil target.
//
// Existence of the target id is the store's concern, not ours.
func Parse(raw string) (*int, string) {
	raw = strings.TrimSpace(raw)
	if !strings.HasPrefix(raw, Marker) {
		return nil, raw
	}
	rest := raw[len(Marker):]

	i := 0
	for i < len(rest) && rest[i] >= '0' && rest[i] <= '9' {
		i++
	}
	if i == 0 {
		// ">>" with no digits is just text.
		return nil, raw
	}
	if i < len(rest) && rest[i] != ' ' && rest[i] != '\t' {
		// Digits glued to more text (">>10am") are not a marker.
		return nil, raw
	}

	id, err := strconv.Atoi(rest[:i])
	if err != nil || id <= 0 {
		return nil, raw
	}
	return &id, strings.TrimSpace(rest[i:])
}
