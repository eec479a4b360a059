package pos

// LengthShort is a byte length known to fit in 16 bits. [ast.Number] uses
// it to store the lengths of its integral, fractional, and exponent
// sub-parts without growing the struct to fit a full [Location] per part.
type LengthShort uint16

// NewLengthShort returns the length of the span as a LengthShort.
//
// Panics if the span is longer than 65535 bytes; no individual number
// sub-part in a well-formed or recovered MF2 message ever approaches that
// length, so this is a defensive assertion rather than a reachable error
// path.
func NewLengthShort(span Span) LengthShort {
	n := uint32(span.End) - uint32(span.Start)
	if n > 0xFFFF {
		panic("pos: span too long for LengthShort")
	}
	return LengthShort(n)
}

// NewLengthShortFromString returns the UTF-8 byte length of s as a
// LengthShort.
func NewLengthShortFromString(s string) LengthShort {
	if len(s) > 0xFFFF {
		panic("pos: string too long for LengthShort")
	}
	return LengthShort(len(s))
}
