package pos

import "testing"

// fixtureSource contains a mix of ASCII, an LF line, a CRLF line, a
// lone-CR line break, and a line with several multi-byte emoji plus a
// trailing combining-adjacent character, matching the ground-truth
// fixture used by the reference cursor implementation's own tests.
const fixtureSource = "a\nbc\r\nf\r🍊😅🎃\r\nasd🍊a"

func driveToEnd(c *Cursor) SourceTextInfo {
	for {
		if _, _, ok := c.Next(); !ok {
			break
		}
	}
	return c.IntoInfo()
}

func TestSourceTextInfoUtf8LineCol(t *testing.T) {
	info := driveToEnd(NewCursor(fixtureSource))

	cases := []struct {
		byteOff uint32
		want    LineColUtf8
	}{
		{0, LineColUtf8{0, 0}},
		{1, LineColUtf8{0, 1}},
		{2, LineColUtf8{1, 0}},
		{3, LineColUtf8{1, 1}},
		{4, LineColUtf8{1, 2}},
		{5, LineColUtf8{1, 3}},
		{6, LineColUtf8{2, 0}},
		{7, LineColUtf8{2, 1}},
		{8, LineColUtf8{3, 0}},
		{12, LineColUtf8{3, 4}},
		{16, LineColUtf8{3, 8}},
		{20, LineColUtf8{3, 12}},
		{21, LineColUtf8{3, 13}},
		{22, LineColUtf8{4, 0}},
		{23, LineColUtf8{4, 1}},
		{24, LineColUtf8{4, 2}},
		{25, LineColUtf8{4, 3}},
		{29, LineColUtf8{4, 7}},
		{30, LineColUtf8{4, 8}},
	}
	for _, tc := range cases {
		got := info.Utf8LineCol(Location(tc.byteOff))
		if got != tc.want {
			t.Errorf("Utf8LineCol(%d) = %+v, want %+v", tc.byteOff, got, tc.want)
		}
	}
}

func TestSourceTextInfoUtf16LineCol(t *testing.T) {
	info := driveToEnd(NewCursor(fixtureSource))

	cases := []struct {
		byteOff uint32
		want    LineColUtf16
	}{
		{0, LineColUtf16{0, 0}},
		{1, LineColUtf16{0, 1}},
		{2, LineColUtf16{1, 0}},
		{8, LineColUtf16{3, 0}},
		{12, LineColUtf16{3, 2}},
		{16, LineColUtf16{3, 4}},
		{20, LineColUtf16{3, 6}},
		{21, LineColUtf16{3, 7}},
		{22, LineColUtf16{4, 0}},
		{29, LineColUtf16{4, 5}},
		{30, LineColUtf16{4, 6}},
	}
	for _, tc := range cases {
		got := info.Utf16LineCol(Location(tc.byteOff))
		if got != tc.want {
			t.Errorf("Utf16LineCol(%d) = %+v, want %+v", tc.byteOff, got, tc.want)
		}
	}
}

func TestSourceTextInfoUtf8Loc(t *testing.T) {
	info := driveToEnd(NewCursor(fixtureSource))

	cases := []struct {
		lc   LineColUtf8
		want uint32
	}{
		{LineColUtf8{0, 0}, 0},
		{LineColUtf8{1, 0}, 2},
		{LineColUtf8{3, 0}, 8},
		{LineColUtf8{3, 1}, 8},
		{LineColUtf8{3, 4}, 12},
		{LineColUtf8{3, 8}, 16},
		{LineColUtf8{3, 12}, 20},
		{LineColUtf8{3, 13}, 21},
		{LineColUtf8{4, 7}, 29},
		{LineColUtf8{4, 8}, 30},
		// out of bounds line resolves to EOF
		{LineColUtf8{5, 0}, 30},
		// out of bounds column clamps to end of line
		{LineColUtf8{0, 10}, 2},
	}
	for _, tc := range cases {
		got := info.Utf8Loc(tc.lc)
		if uint32(got) != tc.want {
			t.Errorf("Utf8Loc(%+v) = %d, want %d", tc.lc, got, tc.want)
		}
	}
}

func TestSourceTextInfoUtf16Loc(t *testing.T) {
	info := driveToEnd(NewCursor(fixtureSource))

	cases := []struct {
		lc   LineColUtf16
		want uint32
	}{
		{LineColUtf16{0, 0}, 0},
		{LineColUtf16{3, 0}, 8},
		{LineColUtf16{3, 2}, 12},
		{LineColUtf16{3, 6}, 20},
		{LineColUtf16{3, 7}, 21},
		{LineColUtf16{4, 5}, 29},
		{LineColUtf16{4, 6}, 30},
		{LineColUtf16{5, 0}, 30},
		{LineColUtf16{0, 10}, 2},
	}
	for _, tc := range cases {
		got := info.Utf16Loc(tc.lc)
		if uint32(got) != tc.want {
			t.Errorf("Utf16Loc(%+v) = %d, want %d", tc.lc, got, tc.want)
		}
	}
}

func TestCursorResetToRestoresCRTracking(t *testing.T) {
	c := NewCursor("a\rb")
	loc, r, ok := c.Next()
	if !ok || loc != 0 || r != 'a' {
		t.Fatalf("first Next() = (%d, %q, %v)", loc, r, ok)
	}
	loc, r, ok = c.Next()
	if !ok || loc != 1 || r != '\r' {
		t.Fatalf("second Next() = (%d, %q, %v)", loc, r, ok)
	}
	c.ResetTo(2) // no-op position change, but must restore CR tracking
	loc, r, ok = c.Next()
	if !ok || loc != 2 || r != 'b' {
		t.Fatalf("third Next() = (%d, %q, %v)", loc, r, ok)
	}
	if _, _, ok := c.Next(); ok {
		t.Fatalf("expected end of input")
	}
	info := c.IntoInfo()
	if got := info.utf8LineStarts; len(got) != 2 || got[0] != 0 || got[1] != 2 {
		t.Errorf("utf8LineStarts = %v, want [0 2]", got)
	}
}

func TestSourceTextInfoSpanLen(t *testing.T) {
	info := driveToEnd(NewCursor(fixtureSource))

	if n := info.Utf8Len(Span{0, 0}); n != 0 {
		t.Errorf("Utf8Len(0,0) = %d, want 0", n)
	}
	if n := info.Utf8Len(Span{0, 1}); n != 1 {
		t.Errorf("Utf8Len(0,1) = %d, want 1", n)
	}
	if n := info.Utf8Len(Span{8, 12}); n != 4 {
		t.Errorf("Utf8Len(8,12) = %d, want 4", n)
	}

	if n := info.Utf16Len(Span{0, 0}); n != 0 {
		t.Errorf("Utf16Len(0,0) = %d, want 0", n)
	}
	if n := info.Utf16Len(Span{8, 12}); n != 2 {
		t.Errorf("Utf16Len(8,12) = %d, want 2", n)
	}
}
