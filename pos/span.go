package pos

import "fmt"

// Span is a half-open byte range [Start, End) in a source text. Start is
// inclusive, End is exclusive; a span with Start == End is empty.
type Span struct {
	Start Location
	End   Location
}

// NewSpan builds a [Span] from start and end locations.
//
// Panics if end is before start — every caller in this module derives
// spans from cursor positions that only ever move forward, so an
// inverted span indicates a bug in the caller, not malformed input.
func NewSpan(start, end Location) Span {
	if end < start {
		panic(fmt.Sprintf("pos: span end %v before start %v", end, start))
	}
	return Span{Start: start, End: end}
}

// ContainsLoc reports whether loc falls within the span.
func (s Span) ContainsLoc(loc Location) bool {
	return s.Start <= loc && loc < s.End
}

// Contains reports whether the span fully contains other, inclusive of
// the case where the two spans are equal.
func (s Span) Contains(other Span) bool {
	return s.Start <= other.Start && other.End <= s.End
}

// IsEmpty reports whether the span has zero length.
func (s Span) IsEmpty() bool {
	return s.Start == s.End
}

// String renders the span as "@<start>..<end>".
func (s Span) String() string {
	return fmt.Sprintf("@%d..%d", uint32(s.Start), uint32(s.End))
}
