package pos

import "testing"

func TestCursorPeekLookahead(t *testing.T) {
	c := NewCursor("abc")

	if _, r, ok := c.Peek(); !ok || r != 'a' {
		t.Fatalf("Peek() = %q, %v", r, ok)
	}
	if _, r, ok := c.Peek2(); !ok || r != 'b' {
		t.Fatalf("Peek2() = %q, %v", r, ok)
	}
	// peeking again must not advance
	if _, r, ok := c.Peek(); !ok || r != 'a' {
		t.Fatalf("second Peek() = %q, %v", r, ok)
	}

	_, r, ok := c.Next()
	if !ok || r != 'a' {
		t.Fatalf("Next() = %q, %v", r, ok)
	}
	_, r, ok = c.Next()
	if !ok || r != 'b' {
		t.Fatalf("Next() = %q, %v", r, ok)
	}
	_, r, ok = c.Next()
	if !ok || r != 'c' {
		t.Fatalf("Next() = %q, %v", r, ok)
	}
	if _, _, ok := c.Next(); ok {
		t.Fatalf("expected end of input")
	}
}

func TestCursorPeek2AtEndOfInput(t *testing.T) {
	c := NewCursor("a")
	if _, r, ok := c.Peek(); !ok || r != 'a' {
		t.Fatalf("Peek() = %q, %v", r, ok)
	}
	if _, _, ok := c.Peek2(); ok {
		t.Fatalf("Peek2() at end of input should report ok=false")
	}
	if _, r, ok := c.Next(); !ok || r != 'a' {
		t.Fatalf("Next() = %q, %v", r, ok)
	}
	if _, _, ok := c.Next(); ok {
		t.Fatalf("expected end of input")
	}
}

func TestCursorSliceAndLocations(t *testing.T) {
	c := NewCursor("hello")
	if c.StartLocation() != 0 {
		t.Fatalf("StartLocation() = %v", c.StartLocation())
	}
	if c.EndLocation() != 5 {
		t.Fatalf("EndLocation() = %v", c.EndLocation())
	}
	start := c.CurrentLocation()
	c.Next()
	c.Next()
	end := c.CurrentLocation()
	if got := c.Slice(Span{Start: start, End: end}); got != "he" {
		t.Errorf("Slice() = %q, want %q", got, "he")
	}
}

func TestSpanAndLength(t *testing.T) {
	s := NewSpan(2, 5)
	if !s.ContainsLoc(3) || s.ContainsLoc(5) || s.ContainsLoc(1) {
		t.Errorf("ContainsLoc behaved unexpectedly for %v", s)
	}
	if !s.Contains(NewSpan(2, 5)) || !s.Contains(NewSpan(3, 4)) {
		t.Errorf("Contains should include equal and nested spans")
	}
	if s.Contains(NewSpan(1, 4)) {
		t.Errorf("Contains should reject a span starting before s")
	}
	if s.IsEmpty() {
		t.Errorf("non-empty span reported empty")
	}
	if !NewSpan(4, 4).IsEmpty() {
		t.Errorf("empty span reported non-empty")
	}

	if got := NewLengthShortFromString("abc"); got != 3 {
		t.Errorf("NewLengthShortFromString = %d, want 3", got)
	}
}
