package pos

import "unicode/utf8"

// peekState tracks how much lookahead the cursor currently has buffered,
// mirroring the reference implementation's tri-state Peeked enum: no
// lookahead buffered, one rune buffered (which may itself be "no more
// input"), or two runes buffered (the second of which may be "no more
// input").
type peekState int

const (
	peekedNone peekState = iota
	peekedSingle
	peekedDouble
)

type peekedRune struct {
	loc Location
	r   rune
	ok  bool
}

// Cursor walks a source string one rune at a time, tracking byte offsets
// and building the line-start table that backs [SourceTextInfo]. It
// supports up to two runes of lookahead ([Peek], [Peek2]) and a
// [ResetTo] that rewinds to any earlier, already-visited location — the
// mechanism the parser uses to speculatively parse a construct and
// backtrack when it turns out not to match.
type Cursor struct {
	original       string
	frontLoc       Location
	strIndex       uint32
	peeked         peekState
	peek1, peek2   peekedRune
	utf8LineStarts []uint32
	prevCharWasCR  bool
}

// NewCursor creates a cursor over the given source text.
func NewCursor(text string) *Cursor {
	return &Cursor{
		original:       text,
		utf8LineStarts: []uint32{0},
	}
}

// recordLineStart updates the line-start table as if the rune ch was
// just consumed starting at byte offset before. \n always starts a new
// line; a lone \r (one not immediately followed by \n, which this method
// cannot see yet) also starts one, detected one rune later by noticing
// prevCharWasCR was set without an intervening \n.
func (c *Cursor) recordLineStart(ch rune, before uint32) {
	switch ch {
	case '\n':
		if c.utf8LineStarts[len(c.utf8LineStarts)-1] < before+1 {
			c.utf8LineStarts = append(c.utf8LineStarts, before+1)
		}
		c.prevCharWasCR = false
	default:
		if c.prevCharWasCR && c.utf8LineStarts[len(c.utf8LineStarts)-1] < before {
			c.utf8LineStarts = append(c.utf8LineStarts, before)
		}
		c.prevCharWasCR = ch == '\r'
	}
}

// iterNext decodes and consumes the next rune from the underlying
// string, advancing strIndex and updating the line-start table. Returns
// ok=false at end of input.
func (c *Cursor) iterNext() (rune, bool) {
	if int(c.strIndex) >= len(c.original) {
		return 0, false
	}
	r, size := utf8.DecodeRuneInString(c.original[c.strIndex:])
	before := c.strIndex
	c.recordLineStart(r, before)
	c.strIndex += uint32(size)
	return r, true
}

// Next consumes and returns the next (location, rune) pair, or ok=false
// at end of input.
func (c *Cursor) Next() (Location, rune, bool) {
	switch c.peeked {
	case peekedNone:
		loc := c.frontLoc
		r, ok := c.iterNext()
		if !ok {
			return 0, 0, false
		}
		c.frontLoc = Location(c.strIndex)
		return loc, r, true
	case peekedSingle:
		c.peeked = peekedNone
		if !c.peek1.ok {
			return 0, 0, false
		}
		c.frontLoc = Location(c.strIndex)
		return c.peek1.loc, c.peek1.r, true
	default: // peekedDouble
		p1 := c.peek1
		if !c.peek2.ok {
			c.peeked = peekedNone
			c.frontLoc = Location(c.strIndex)
			return p1.loc, p1.r, true
		}
		c.frontLoc = c.peek2.loc
		c.peeked = peekedSingle
		c.peek1 = c.peek2
		return p1.loc, p1.r, true
	}
}

// Peek returns the next rune without consuming it.
func (c *Cursor) Peek() (Location, rune, bool) {
	switch c.peeked {
	case peekedSingle, peekedDouble:
		return c.peek1.loc, c.peek1.r, c.peek1.ok
	default:
		loc := c.frontLoc
		r, ok := c.iterNext()
		c.peek1 = peekedRune{loc: loc, r: r, ok: ok}
		c.peeked = peekedSingle
		return loc, r, ok
	}
}

// Peek2 returns the rune after the next one, without consuming either.
func (c *Cursor) Peek2() (Location, rune, bool) {
	if c.peeked == peekedDouble {
		return c.peek2.loc, c.peek2.r, c.peek2.ok
	}
	if _, _, ok := c.Peek(); !ok {
		return 0, 0, false
	}
	loc := Location(c.strIndex)
	r, ok := c.iterNext()
	c.peek2 = peekedRune{loc: loc, r: r, ok: ok}
	c.peeked = peekedDouble
	return c.peek2.loc, c.peek2.r, c.peek2.ok
}

// CurrentLocation returns the location the cursor is currently at — the
// location that the next call to Next will return.
func (c *Cursor) CurrentLocation() Location {
	return c.frontLoc
}

// StartLocation returns the location of the start of the source text.
func (c *Cursor) StartLocation() Location {
	return 0
}

// EndLocation returns the location of the end of the source text.
func (c *Cursor) EndLocation() Location {
	return Location(len(c.original))
}

// Slice returns the substring of the source text covered by span.
func (c *Cursor) Slice(span Span) string {
	return c.original[span.Start:span.End]
}

// ResetTo rewinds the cursor to loc, which must be at or before the
// cursor's current location and must fall on a rune boundary.
//
// Panics if loc is after the current location or past the end of the
// text — callers only ever reset to a location they previously obtained
// from this same cursor.
func (c *Cursor) ResetTo(loc Location) {
	if loc > c.frontLoc {
		panic("pos: ResetTo location is after current location")
	}
	if uint32(loc) > uint32(c.EndLocation()) {
		panic("pos: ResetTo location is past end of text")
	}
	c.frontLoc = loc
	c.strIndex = uint32(loc)
	c.peeked = peekedNone
	c.prevCharWasCR = hasSuffixCR(c.original[:c.strIndex])
}

func hasSuffixCR(s string) bool {
	return len(s) > 0 && s[len(s)-1] == '\r'
}

// IntoInfo finalizes the cursor, flushing any trailing CR-only line
// break, and returns the [SourceTextInfo] needed to resolve locations
// produced while walking this text back into line/column pairs.
//
// The cursor must have been driven to the end of the text (every rune
// consumed via Next) before calling IntoInfo.
func (c *Cursor) IntoInfo() SourceTextInfo {
	if c.prevCharWasCR && c.utf8LineStarts[len(c.utf8LineStarts)-1] < c.strIndex {
		c.utf8LineStarts = append(c.utf8LineStarts, c.strIndex)
	}
	return SourceTextInfo{
		text:           c.original,
		utf8LineStarts: c.utf8LineStarts,
	}
}
