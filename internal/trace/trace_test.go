package trace

import (
	"context"
	"log/slog"
	"sync"
	"testing"
)

// recordHandler is a test handler that records log records for inspection.
type recordHandler struct {
	mu      sync.Mutex
	records []slog.Record
	level   slog.Level
}

func newRecordHandler(level slog.Level) *recordHandler {
	return &recordHandler{level: level}
}

func (h *recordHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level
}

func (h *recordHandler) Handle(_ context.Context, r slog.Record) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	// Clone the record to avoid retaining internal buffers that slog may reuse.
	h.records = append(h.records, r.Clone())
	return nil
}

func (h *recordHandler) WithAttrs(_ []slog.Attr) slog.Handler {
	return h
}

func (h *recordHandler) WithGroup(_ string) slog.Handler {
	return h
}

func (h *recordHandler) Records() []slog.Record {
	h.mu.Lock()
	defer h.mu.Unlock()
	result := make([]slog.Record, len(h.records))
	copy(result, h.records)
	return result
}

func TestEnabled_NilLogger(t *testing.T) {
	if Enabled(context.Background(), nil, slog.LevelDebug) {
		t.Error("Enabled should return false for nil logger")
	}
}

func TestEnabled_EnabledLevel(t *testing.T) {
	h := newRecordHandler(slog.LevelDebug)
	logger := slog.New(h)
	ctx := t.Context()

	if !Enabled(ctx, logger, slog.LevelDebug) {
		t.Error("Enabled should return true for enabled level")
	}
	if !Enabled(ctx, logger, slog.LevelInfo) {
		t.Error("Enabled should return true for Info when Debug is enabled")
	}
}

func TestEnabled_DisabledLevel(t *testing.T) {
	h := newRecordHandler(slog.LevelWarn) // only Warn and above enabled
	logger := slog.New(h)
	ctx := t.Context()

	if Enabled(ctx, logger, slog.LevelDebug) {
		t.Error("Enabled should return false for Debug when Warn is minimum")
	}
	if Enabled(ctx, logger, slog.LevelInfo) {
		t.Error("Enabled should return false for Info when Warn is minimum")
	}
	if !Enabled(ctx, logger, slog.LevelWarn) {
		t.Error("Enabled should return true for Warn when Warn is minimum")
	}
}
