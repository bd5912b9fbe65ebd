// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package logx

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/muesli/termenv"
)

// Handler is a [slog.Handler] whose output resembles that of [log.Logger]:
// the time, the level name colored for the terminal, the message, and
// then any attributes in key=value form.
type Handler struct {
	out *termenv.Output

	// text formats attributes into buf
	text slog.Handler
	buf  *bytes.Buffer
	mu   *sync.Mutex
}

// NewHandler returns a new [Handler] writing to the given output.
// The output color profile determines whether levels are colored;
// use [termenv.Ascii] for plain text. If opts is nil or has no Level,
// the handler follows [UserLevel].
func NewHandler(out *termenv.Output, opts *slog.HandlerOptions) *Handler {
	to := slog.HandlerOptions{}
	if opts != nil {
		to = *opts
	}
	if to.Level == nil {
		to.Level = userLeveler{}
	}
	replace := to.ReplaceAttr
	to.ReplaceAttr = func(groups []string, a slog.Attr) slog.Attr {
		if len(groups) == 0 {
			switch a.Key {
			case slog.TimeKey, slog.LevelKey, slog.MessageKey:
				return slog.Attr{}
			}
		}
		if replace != nil {
			return replace(groups, a)
		}
		return a
	}
	buf := &bytes.Buffer{}
	return &Handler{
		out:  out,
		text: slog.NewTextHandler(buf, &to),
		buf:  buf,
		mu:   &sync.Mutex{},
	}
}

func (h *Handler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.text.Enabled(ctx, level)
}

func (h *Handler) Handle(ctx context.Context, r slog.Record) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.buf.Reset()
	if err := h.text.Handle(ctx, r); err != nil {
		return err
	}
	var sb strings.Builder
	if !r.Time.IsZero() {
		sb.WriteString(r.Time.Format(time.DateTime))
		sb.WriteByte(' ')
	}
	sb.WriteString(h.LevelString(r.Level))
	sb.WriteByte(' ')
	sb.WriteString(r.Message)
	if attrs := strings.TrimSpace(h.buf.String()); attrs != "" {
		sb.WriteByte(' ')
		sb.WriteString(attrs)
	}
	sb.WriteByte('\n')
	_, err := io.WriteString(h.out, sb.String())
	return err
}

func (h *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	nh := *h
	nh.text = h.text.WithAttrs(attrs)
	return &nh
}

func (h *Handler) WithGroup(name string) slog.Handler {
	nh := *h
	nh.text = h.text.WithGroup(name)
	return &nh
}

// LevelString returns the name of the given level,
// colored according to the output profile.
func (h *Handler) LevelString(level slog.Level) string {
	p := h.out.Profile
	return p.String(level.String()).Foreground(p.Convert(LevelColor(level))).String()
}

// LevelColor returns the terminal color used for the given level.
func LevelColor(level slog.Level) termenv.Color {
	switch {
	case level >= slog.LevelError:
		return termenv.ANSIRed
	case level >= slog.LevelWarn:
		return termenv.ANSIYellow
	case level >= slog.LevelInfo:
		return termenv.ANSICyan
	default:
		return termenv.ANSIBrightBlack
	}
}

// SetDefaultLogger sets the default logger to be a [Handler] writing
// to [os.Stderr] with the color profile of the terminal, at the level
// given by [UserLevel].
func SetDefaultLogger() {
	slog.SetDefault(slog.New(NewHandler(termenv.NewOutput(os.Stderr), nil)))
}
