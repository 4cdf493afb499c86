package engine

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Normalize canonicalizes a raw line: NFC form, non-breaking spaces
// replaced with plain spaces, whitespace runs collapsed to a single
// space, leading/trailing whitespace trimmed. Total and idempotent.
func Normalize(raw string) string {
	if raw == "" {
		return ""
	}
	s := norm.NFC.String(raw)
	s = strings.Map(func(r rune) rune {
		switch r {
		case '\u00a0', '\u2007', '\u202f': // non-breaking space variants
			return ' '
		}
		return r
	}, s)
	return strings.Join(strings.Fields(s), " ")
}
