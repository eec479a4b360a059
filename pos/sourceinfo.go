package pos

import (
	"unicode/utf16"
	"unicode/utf8"
)

// SourceTextInfo is a view onto a source text plus the line-start table
// derived while a [Cursor] walked it. It converts opaque [Location]
// values to and from UTF-8 and UTF-16 line/column pairs, and reports
// span lengths in either encoding.
//
// Obtain one by driving a [Cursor] to the end of its text and calling
// [Cursor.IntoInfo].
type SourceTextInfo struct {
	text           string
	utf8LineStarts []uint32
}

// LineColUtf8 is a 0-based line/column pair in UTF-8 code units.
type LineColUtf8 struct {
	Line uint32
	Col  uint32
}

// LineColUtf16 is a 0-based line/column pair in UTF-16 code units.
type LineColUtf16 struct {
	Line uint32
	Col  uint32
}

// Span returns the span covering the entire source text.
func (info *SourceTextInfo) Span() Span {
	return Span{Start: 0, End: Location(len(info.text))}
}

// Text returns the substring of the source text covered by span.
func (info *SourceTextInfo) Text(span Span) string {
	return info.text[span.Start:span.End]
}

// Utf8Len returns the length of span in UTF-8 bytes.
func (info *SourceTextInfo) Utf8Len(span Span) uint32 {
	return uint32(span.End) - uint32(span.Start)
}

// Utf16Len returns the length of span in UTF-16 code units.
func (info *SourceTextInfo) Utf16Len(span Span) uint32 {
	return countUtf16Units(info.text[span.Start:span.End])
}

// Utf8LineCol returns the UTF-8 line/column pair for loc.
//
// loc must be within the bounds of the source text.
func (info *SourceTextInfo) Utf8LineCol(loc Location) LineColUtf8 {
	line, exact := searchLineStarts(info.utf8LineStarts, uint32(loc))
	if exact {
		return LineColUtf8{Line: uint32(line), Col: 0}
	}
	line--
	col := uint32(loc) - info.utf8LineStarts[line]
	return LineColUtf8{Line: uint32(line), Col: col}
}

// Utf16LineCol returns the UTF-16 line/column pair for loc.
//
// loc must be within the bounds of the source text.
func (info *SourceTextInfo) Utf16LineCol(loc Location) LineColUtf16 {
	line, exact := searchLineStarts(info.utf8LineStarts, uint32(loc))
	if exact {
		return LineColUtf16{Line: uint32(line), Col: 0}
	}
	line--
	lineText := info.text[info.utf8LineStarts[line]:uint32(loc)]
	return LineColUtf16{Line: uint32(line), Col: countUtf16Units(lineText)}
}

// Utf8Loc returns the location of the given UTF-8 line/column pair.
//
// An out-of-range line resolves to the end of the text. A column past
// the end of its line is clamped to the line's length. A column that
// falls inside a multi-byte character is rounded down to that
// character's start.
func (info *SourceTextInfo) Utf8Loc(lc LineColUtf8) Location {
	lineStart, lineEnd, ok := info.lineBounds(int(lc.Line))
	if !ok {
		return Location(len(info.text))
	}
	lineText := info.text[lineStart:lineEnd]

	col := int(lc.Col)
	loc := Location(lineStart)
	for _, ch := range lineText {
		n := utf8.RuneLen(ch)
		if col < n {
			break
		}
		col -= n
		loc = loc.AddRune(ch)
		if col == 0 {
			break
		}
	}
	return loc
}

// Utf16Loc returns the location of the given UTF-16 line/column pair,
// with the same clamping rules as [SourceTextInfo.Utf8Loc].
func (info *SourceTextInfo) Utf16Loc(lc LineColUtf16) Location {
	lineStart, lineEnd, ok := info.lineBounds(int(lc.Line))
	if !ok {
		return Location(len(info.text))
	}
	lineText := info.text[lineStart:lineEnd]

	col := int(lc.Col)
	loc := Location(lineStart)
	for _, ch := range lineText {
		n := utf16.RuneLen(ch)
		if col < n {
			break
		}
		col -= n
		loc = loc.AddRune(ch)
		if col == 0 {
			break
		}
	}
	return loc
}

// lineBounds returns the byte range [start, end) of the given 0-based
// line number, or ok=false if the line is out of range.
func (info *SourceTextInfo) lineBounds(line int) (start, end uint32, ok bool) {
	if line < 0 || line >= len(info.utf8LineStarts) {
		return 0, 0, false
	}
	start = info.utf8LineStarts[line]
	if line+1 < len(info.utf8LineStarts) {
		end = info.utf8LineStarts[line+1]
	} else {
		end = uint32(len(info.text))
	}
	return start, end, true
}

// searchLineStarts returns the index of loc in starts via binary search
// along with whether the match was exact (loc is itself a line start).
func searchLineStarts(starts []uint32, loc uint32) (index int, exact bool) {
	lo, hi := 0, len(starts)
	for lo < hi {
		mid := (lo + hi) / 2
		if starts[mid] < loc {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	if lo < len(starts) && starts[lo] == loc {
		return lo, true
	}
	return lo, false
}

func countUtf16Units(s string) uint32 {
	var n uint32
	for _, r := range s {
		n += uint32(utf16.RuneLen(r))
	}
	return n
}
