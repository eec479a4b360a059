package parser

import (
	"unicode"

	"golang.org/x/text/unicode/rangetable"
)

// Character classes from the MessageFormat 2 ABNF, ported range-for-range
// from the reference implementation's chars.rs. Each class is built as a
// [unicode.RangeTable] literal; [rangetable.Merge] composes the smaller
// classes into the larger ones instead of re-listing their ranges.

var contentTable = &unicode.RangeTable{
	R16: []unicode.Range16{
		{Lo: 0x01, Hi: 0x08, Stride: 1},
		{Lo: 0x0B, Hi: 0x0C, Stride: 1},
		{Lo: 0x0E, Hi: 0x1F, Stride: 1},
		{Lo: 0x21, Hi: 0x2D, Stride: 1},
		{Lo: 0x2F, Hi: 0x3F, Stride: 1},
		{Lo: 0x41, Hi: 0x5B, Stride: 1},
		{Lo: 0x5D, Hi: 0x7A, Stride: 1},
		{Lo: 0x7E, Hi: 0x2FFF, Stride: 1},
		{Lo: 0x3001, Hi: 0xD7FF, Stride: 1},
		{Lo: 0xE000, Hi: 0xFFFF, Stride: 1},
	},
	R32: []unicode.Range32{
		{Lo: 0x10000, Hi: 0x10FFFF, Stride: 1},
	},
}

var spaceTable = &unicode.RangeTable{
	R16: []unicode.Range16{
		{Lo: 0x09, Hi: 0x0A, Stride: 1},
		{Lo: 0x0D, Hi: 0x0D, Stride: 1},
		{Lo: 0x20, Hi: 0x20, Stride: 1},
		{Lo: 0x3000, Hi: 0x3000, Stride: 1},
	},
}

var nameStartTable = &unicode.RangeTable{
	R16: []unicode.Range16{
		{Lo: 'A', Hi: 'Z', Stride: 1},
		{Lo: '_', Hi: '_', Stride: 1},
		{Lo: 'a', Hi: 'z', Stride: 1},
		{Lo: 0xC0, Hi: 0xD6, Stride: 1},
		{Lo: 0xD8, Hi: 0xF6, Stride: 1},
		{Lo: 0xF8, Hi: 0x2FF, Stride: 1},
		{Lo: 0x370, Hi: 0x37D, Stride: 1},
		{Lo: 0x37F, Hi: 0x1FFF, Stride: 1},
		{Lo: 0x200C, Hi: 0x200D, Stride: 1},
		{Lo: 0x2070, Hi: 0x218F, Stride: 1},
		{Lo: 0x2C00, Hi: 0x2FEF, Stride: 1},
		{Lo: 0x3001, Hi: 0xD7FF, Stride: 1},
		{Lo: 0xF900, Hi: 0xFDCF, Stride: 1},
		{Lo: 0xFDF0, Hi: 0xFFFC, Stride: 1},
	},
	R32: []unicode.Range32{
		{Lo: 0x10000, Hi: 0xEFFFF, Stride: 1},
	},
}

var nameRestTable = &unicode.RangeTable{
	R16: []unicode.Range16{
		{Lo: '-', Hi: '-', Stride: 1},
		{Lo: '.', Hi: '.', Stride: 1},
		{Lo: '0', Hi: '9', Stride: 1},
		{Lo: 0xB7, Hi: 0xB7, Stride: 1},
		{Lo: 0x300, Hi: 0x36F, Stride: 1},
		{Lo: 0x203F, Hi: 0x2040, Stride: 1},
	},
}

// nameTable is name_start | name_rest.
var nameTable = rangetable.Merge(nameStartTable, nameRestTable)

// quotedExtraTable holds the punctuation quoted literals additionally
// allow over content: '.', '@', '{', '}' (space is unioned in below).
var quotedExtraTable = &unicode.RangeTable{
	R16: []unicode.Range16{
		{Lo: '.', Hi: '.', Stride: 1},
		{Lo: '@', Hi: '@', Stride: 1},
		{Lo: '{', Hi: '{', Stride: 1},
		{Lo: '}', Hi: '}', Stride: 1},
	},
}

var quotedTable = rangetable.Merge(contentTable, spaceTable, quotedExtraTable)

// IsContent reports whether r is a "content" character: any character
// in the grammar's content-char class, i.e. any code point except NUL,
// whitespace, backslash, '.', '@', '{', '}', '|', and the surrogates.
func IsContent(r rune) bool {
	return unicode.Is(contentTable, r)
}

// IsSpace reports whether r is an MF2 "space" character: space, tab, CR,
// LF, or ideographic space.
func IsSpace(r rune) bool {
	switch r {
	case ' ', '\t', '\r', '\n', '　':
		return true
	default:
		return false
	}
}

// IsNameStart reports whether r may begin an identifier name.
func IsNameStart(r rune) bool {
	return unicode.Is(nameStartTable, r)
}

// IsNameChar reports whether r may appear anywhere in an identifier name
// after the first character.
func IsNameChar(r rune) bool {
	return unicode.Is(nameTable, r)
}

// IsQuotedChar reports whether r may appear unescaped inside a `|...|`
// quoted literal: content, space, or one of '.', '@', '{', '}'.
func IsQuotedChar(r rune) bool {
	return unicode.Is(quotedTable, r)
}

// IsValidName reports whether s is a syntactically valid MF2 identifier
// name (the part after an optional `namespace:` prefix, or a bare
// function/variable name with no namespace).
func IsValidName(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		if i == 0 {
			if !IsNameStart(r) {
				return false
			}
			continue
		}
		if !IsNameChar(r) {
			return false
		}
	}
	return true
}
