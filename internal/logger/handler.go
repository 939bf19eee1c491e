// Copyright Elasticsearch B.V. and/or licensed to Elasticsearch B.V. under one
// or more contributor license agreements. Licensed under the Elastic License;
// you may not use this file except in compliance with the Elastic License.

package logger

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"

	"github.com/fatih/color"
)

var levelTints = map[string]*color.Color{
	"TRACE": color.New(color.FgMagenta),
	"DEBUG": color.New(color.FgCyan),
	"INFO":  color.New(color.FgGreen),
	"WARN":  color.New(color.FgYellow),
	"ERROR": color.New(color.FgRed, color.Bold),
}

// Handler renders records as plain "timestamp LEVEL: message" lines, with the
// level label tinted unless colored output is disabled.
type Handler struct {
	mutex       *sync.Mutex
	out         io.Writer
	level       slog.Leveler
	attrs       []slog.Attr
	replaceAttr func(groups []string, a slog.Attr) slog.Attr
}

func newHandler(out io.Writer, opts *slog.HandlerOptions) *Handler {
	if opts == nil {
		opts = &slog.HandlerOptions{}
	}
	level := opts.Level
	if level == nil {
		level = slog.LevelInfo
	}
	return &Handler{
		out:         out,
		mutex:       &sync.Mutex{},
		level:       level,
		replaceAttr: opts.ReplaceAttr,
	}
}

func (h *Handler) Enabled(ctx context.Context, level slog.Level) bool {
	return level >= h.level.Level()
}

func (h *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	combined := make([]slog.Attr, 0, len(h.attrs)+len(attrs))
	combined = append(combined, h.attrs...)
	combined = append(combined, attrs...)
	return &Handler{out: h.out, mutex: h.mutex, level: h.level, attrs: combined, replaceAttr: h.replaceAttr}
}

func (h *Handler) WithGroup(name string) slog.Handler {
	return h
}

func (h *Handler) Handle(ctx context.Context, r slog.Record) error {
	levelAttr := slog.Attr{
		Key:   slog.LevelKey,
		Value: slog.AnyValue(r.Level),
	}
	timeAttr := slog.Attr{
		Key:   slog.TimeKey,
		Value: slog.TimeValue(r.Time),
	}
	if h.replaceAttr != nil {
		levelAttr = h.replaceAttr([]string{}, levelAttr)
		timeAttr = h.replaceAttr([]string{}, timeAttr)
	}

	level := levelAttr.Value.String()
	if tint, found := levelTints[level]; found {
		level = tint.Sprint(level)
	}

	builder := strings.Builder{}
	if !r.Time.IsZero() {
		builder.WriteString(timeAttr.Value.String())
		builder.WriteString(" ")
	}
	builder.WriteString(level)
	builder.WriteString(": ")
	builder.WriteString(r.Message)

	appendAttr := func(a slog.Attr) bool {
		builder.WriteString(fmt.Sprintf(" %s=%s", a.Key, a.Value.String()))
		return true
	}
	for _, a := range h.attrs {
		appendAttr(a)
	}
	r.Attrs(appendAttr)

	h.mutex.Lock()
	defer h.mutex.Unlock()
	_, err := io.WriteString(h.out, builder.String()+"\n")
	return err
}
