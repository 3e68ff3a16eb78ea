package log

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"
	"time"
)

const (
	ansiReset  = "\033[0m"
	ansiDim    = "\033[2m"
	ansiBold   = "\033[1m"
	ansiRed    = "\033[31m"
	ansiGreen  = "\033[32m"
	ansiYellow = "\033[33m"
	ansiCyan   = "\033[36m"
)

// TerminalHandler formats log records as coloured terminal output.
//
// Output format:
//
//	15:04:05.000 INF import complete board=carta inserted=42
type TerminalHandler struct {
	writer io.Writer
	level  slog.Leveler
	attrs  []slog.Attr
	groups []string
	mu     *sync.Mutex
}

func newTerminalHandler(w io.Writer, opts *slog.HandlerOptions) *TerminalHandler {
	var level slog.Leveler = slog.LevelInfo
	if opts != nil && opts.Level != nil {
		level = opts.Level
	}
	return &TerminalHandler{writer: w, level: level, mu: &sync.Mutex{}}
}

// Enabled reports whether the handler handles records at the given level.
func (h *TerminalHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level.Level()
}

// Handle formats a log record as coloured terminal output and writes it.
func (h *TerminalHandler) Handle(_ context.Context, r slog.Record) error {
	var buf bytes.Buffer
	buf.Grow(256)

	ts := r.Time
	if ts.IsZero() {
		ts = time.Now()
	}
	buf.WriteString(ansiDim + ts.Format("15:04:05.000") + ansiReset + " ")

	color, label := levelStyle(r.Level)
	buf.WriteString(color + label + ansiReset + " ")
	buf.WriteString(ansiBold + r.Message + ansiReset)

	for _, a := range h.attrs {
		appendAttr(&buf, a, h.groups)
	}
	r.Attrs(func(a slog.Attr) bool {
		appendAttr(&buf, a, h.groups)
		return true
	})

	buf.WriteByte('\n')

	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := h.writer.Write(buf.Bytes())
	return err
}

// WithAttrs returns a new handler carrying both the existing attributes and attrs.
func (h *TerminalHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	merged := make([]slog.Attr, len(h.attrs), len(h.attrs)+len(attrs))
	copy(merged, h.attrs)
	merged = append(merged, attrs...)
	return &TerminalHandler{writer: h.writer, level: h.level, attrs: merged, groups: h.groups, mu: h.mu}
}

// WithGroup returns a new handler with the group name prepended to subsequent
// attribute keys.
func (h *TerminalHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	extended := append(append([]string{}, h.groups...), name)
	return &TerminalHandler{writer: h.writer, level: h.level, attrs: h.attrs, groups: extended, mu: h.mu}
}

func levelStyle(level slog.Level) (string, string) {
	switch {
	case level < slog.LevelInfo:
		return ansiCyan, "DBG"
	case level < slog.LevelWarn:
		return ansiGreen, "INF"
	case level < slog.LevelError:
		return ansiYellow, "WRN"
	default:
		return ansiRed, "ERR"
	}
}

func appendAttr(buf *bytes.Buffer, a slog.Attr, groups []string) {
	a.Value = a.Value.Resolve()
	if a.Equal(slog.Attr{}) {
		return
	}

	if a.Value.Kind() == slog.KindGroup {
		prefix := groups
		if a.Key != "" {
			prefix = append(append([]string{}, groups...), a.Key)
		}
		for _, ga := range a.Value.Group() {
			appendAttr(buf, ga, prefix)
		}
		return
	}

	buf.WriteString(" " + ansiDim)
	for _, g := range groups {
		buf.WriteString(g + ".")
	}
	buf.WriteString(a.Key + "=" + ansiReset)
	buf.WriteString(formatAttrValue(a.Value))
}

func formatAttrValue(v slog.Value) string {
	if v.Kind() == slog.KindString {
		s := v.String()
		if strings.ContainsAny(s, " \t\n\"\\") {
			return fmt.Sprintf("%q", s)
		}
		return s
	}
	return v.String()
}
