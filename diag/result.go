package diag

// Result is an immutable, span-ordered snapshot of the diagnostics
// collected while processing one message. Obtain one via
// [Collector.Result]; there is no public constructor accepting
// arbitrary diagnostics.
type Result struct {
	diagnostics  []Diagnostic
	limitReached bool
	droppedCount int
}

// Diagnostics returns a defensive copy of the collected diagnostics, in
// span order.
func (r Result) Diagnostics() []Diagnostic {
	if len(r.diagnostics) == 0 {
		return nil
	}
	cp := make([]Diagnostic, len(r.diagnostics))
	copy(cp, r.diagnostics)
	return cp
}

// Len returns the number of diagnostics in the result.
func (r Result) Len() int { return len(r.diagnostics) }

// LimitReached reports whether the collector's issue limit was hit
// while building this result.
func (r Result) LimitReached() bool { return r.limitReached }

// DroppedCount returns how many diagnostics were dropped after the
// limit was reached.
func (r Result) DroppedCount() int { return r.droppedCount }
