package diag

import (
	"slices"
	"sync"
)

// NoLimit is the sentinel value indicating unlimited diagnostic
// collection. Use this constant with [NewCollector] for clarity.
const NoLimit = 0

// Collector accumulates [Diagnostic] values produced while parsing or
// analyzing a single message. It is safe for concurrent use, mirroring
// the teacher's diag.Collector, though in practice a single message is
// always walked by one goroutine.
//
// Limit behavior: once the limit is reached, further diagnostics are
// counted as dropped rather than stored; use [Collector.LimitReached]
// and [Collector.DroppedCount] to detect truncation. Parsing and
// analysis never stop early because of this — only diagnostic storage
// is capped, never message processing.
type Collector struct {
	mu           sync.Mutex
	diagnostics  []Diagnostic
	limit        int
	limitReached bool
	droppedCount int
}

// NewCollector creates a collector with an optional diagnostic limit. A
// limit of 0 ([NoLimit]) means unlimited; negative values are normalized
// to 0.
func NewCollector(limit int) *Collector {
	if limit < 0 {
		limit = 0
	}
	return &Collector{limit: limit}
}

// Collect records a diagnostic, subject to the configured limit.
func (c *Collector) Collect(d Diagnostic) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.limit > 0 && len(c.diagnostics) >= c.limit {
		c.limitReached = true
		c.droppedCount++
		return
	}
	c.diagnostics = append(c.diagnostics, d)
}

// Len returns the number of diagnostics collected so far (not counting
// those dropped past the limit).
func (c *Collector) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.diagnostics)
}

// LimitReached reports whether the configured limit was hit.
func (c *Collector) LimitReached() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.limitReached
}

// DroppedCount returns how many diagnostics were dropped after the
// limit was reached.
func (c *Collector) DroppedCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.droppedCount
}

// Result returns an immutable, span-ordered snapshot of the collected
// diagnostics.
func (c *Collector) Result() Result {
	c.mu.Lock()
	defer c.mu.Unlock()

	sorted := make([]Diagnostic, len(c.diagnostics))
	copy(sorted, c.diagnostics)
	slices.SortFunc(sorted, compareDiagnostics)

	return Result{
		diagnostics:  sorted,
		limitReached: c.limitReached,
		droppedCount: c.droppedCount,
	}
}

// compareDiagnostics orders by span start, then span end, then kind,
// then message — a total order so [Collector.Result] is deterministic
// regardless of the order diagnostics were collected in.
func compareDiagnostics(a, b Diagnostic) int {
	if a.span.Start != b.span.Start {
		if a.span.Start < b.span.Start {
			return -1
		}
		return 1
	}
	if a.span.End != b.span.End {
		if a.span.End < b.span.End {
			return -1
		}
		return 1
	}
	if a.kind.value != b.kind.value {
		if a.kind.value < b.kind.value {
			return -1
		}
		return 1
	}
	if a.message != b.message {
		if a.message < b.message {
			return -1
		}
		return 1
	}
	return 0
}
