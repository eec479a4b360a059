// Package pos implements the byte-offset position model that the parser,
// scope analyzer, and printer share: an opaque [Location], a half-open
// [Span] built from two locations, a compact [LengthShort] for spans that
// are known to fit in 16 bits, and a [Cursor] that walks a source string
// while building the [SourceTextInfo] needed to convert locations back to
// line/column pairs.
package pos

import (
	"fmt"
	"unicode/utf8"
)

// Location is an opaque UTF-8 byte offset into a source text. It does not
// carry a reference to the text it indexes into; resolve it against the
// [SourceTextInfo] produced by the [Cursor] that walked that text.
type Location uint32

// Add returns the location advanced by the UTF-8 byte length of s.
func (l Location) Add(s string) Location {
	return l + Location(len(s))
}

// AddRune returns the location advanced by the UTF-8 byte length of r.
func (l Location) AddRune(r rune) Location {
	return l + Location(utf8.RuneLen(r))
}

// AddLengthShort returns the location advanced by n bytes.
func (l Location) AddLengthShort(n LengthShort) Location {
	return l + Location(n)
}

// String renders the location as "@<offset>", matching the reference
// implementation's debug format.
func (l Location) String() string {
	return fmt.Sprintf("@%d", uint32(l))
}
