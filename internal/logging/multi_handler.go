package logging

import (
	"context"
	"errors"
	"log/slog"
)

// MultiHandler duplicates each record to a set of slog.Handlers so stdout
// and the database sink see the same stream. A failing sink never silences
// the others; their errors are joined.
type MultiHandler struct {
	handlers []slog.Handler
}

func NewMultiHandler(handlers ...slog.Handler) *MultiHandler {
	return &MultiHandler{handlers: handlers}
}

func (m *MultiHandler) Enabled(ctx context.Context, level slog.Level) bool {
	for _, h := range m.handlers {
		if h.Enabled(ctx, level) {
			return true
		}
	}
	return false
}

func (m *MultiHandler) Handle(ctx context.Context, record slog.Record) error {
	var errs []error
	for _, h := range m.handlers {
		if !h.Enabled(ctx, record.Level) {
			continue
		}
		if err := h.Handle(ctx, record.Clone()); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (m *MultiHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	wrapped := make([]slog.Handler, len(m.handlers))
	for i, h := range m.handlers {
		wrapped[i] = h.WithAttrs(attrs)
	}
	return &MultiHandler{handlers: wrapped}
}

func (m *MultiHandler) WithGroup(name string) slog.Handler {
	wrapped := make([]slog.Handler, len(m.handlers))
	for i, h := range m.handlers {
		wrapped[i] = h.WithGroup(name)
	}
	return &MultiHandler{handlers: wrapped}
}
