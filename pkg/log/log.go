// SPDX-License-Identifier: MIT

// Package log wires the standard library's slog into structured JSON
// logging with per-request context fields, following the same
// request-ID-in-context pattern the teacher service uses for its NATS
// and HTTP handlers.
package log

import (
	"context"
	"log/slog"
	"os"
)

type ctxKey struct{}

// InitStructureLogConfig installs a JSON slog handler as the default
// logger. Call once from an init() or early in main(), mirroring the
// teacher's main.go.
func InitStructureLogConfig() {
	level := slog.LevelInfo
	if os.Getenv("DEBUG") != "" || os.Getenv("DEV_MODE") != "" {
		level = slog.LevelDebug
	}
	handler := &ctxHandler{
		Handler: slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level}),
	}
	slog.SetDefault(slog.New(handler))
}

// AppendCtx returns a context carrying attr in addition to any
// previously appended attributes. Handlers created by this package read
// these back out and attach them to every record logged with that
// context, so a request ID attached once at the top of a request shows
// up on every subsequent log line for that request.
func AppendCtx(ctx context.Context, attr slog.Attr) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	existing, _ := ctx.Value(ctxKey{}).([]slog.Attr)
	next := make([]slog.Attr, len(existing), len(existing)+1)
	copy(next, existing)
	next = append(next, attr)
	return context.WithValue(ctx, ctxKey{}, next)
}

// ctxHandler is an slog.Handler decorator that injects attributes
// previously stashed on the context via AppendCtx.
type ctxHandler struct {
	slog.Handler
}

func (h *ctxHandler) Handle(ctx context.Context, r slog.Record) error {
	if attrs, ok := ctx.Value(ctxKey{}).([]slog.Attr); ok {
		r.AddAttrs(attrs...)
	}
	return h.Handler.Handle(ctx, r)
}

func (h *ctxHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &ctxHandler{Handler: h.Handler.WithAttrs(attrs)}
}

func (h *ctxHandler) WithGroup(name string) slog.Handler {
	return &ctxHandler{Handler: h.Handler.WithGroup(name)}
}
