package slogobs

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"
)

// Handler is a slog.Handler writing compact or JSON lines.
type Handler struct {
	format Format
	level  slog.Level
	output io.Writer
	styles map[string]lipgloss.Style

	mu     *sync.Mutex
	attrs  []slog.Attr
	prefix string
}

// HandlerOptions configures a Handler.
type HandlerOptions struct {
	Format Format
	Level  slog.Level
	Output io.Writer
}

// NewHandler creates a Handler. Level colours follow the colour profile of
// the output, so plain buffers and pipes get uncoloured text.
func NewHandler(opts HandlerOptions) *Handler {
	if opts.Output == nil {
		opts.Output = io.Discard
	}
	if opts.Format == "" {
		opts.Format = FormatCompact
	}

	renderer := lipgloss.NewRenderer(opts.Output)
	colours := map[string]string{"TRACE": "8", "DEBUG": "4", "INFO": "2", "WARN": "3", "ERROR": "1"}
	styles := make(map[string]lipgloss.Style, len(colours))
	for name, colour := range colours {
		styles[name] = renderer.NewStyle().Foreground(lipgloss.Color(colour)).Width(5).Align(lipgloss.Right)
	}

	return &Handler{
		format: opts.Format,
		level:  opts.Level,
		output: opts.Output,
		styles: styles,
		mu:     &sync.Mutex{},
	}
}

// Enabled reports whether the handler handles records at the given level.
func (h *Handler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level
}

// Handle formats and writes a log record.
func (h *Handler) Handle(_ context.Context, r slog.Record) error {
	attrs := h.collect(r)

	var line []byte
	if h.format == FormatJSON {
		record := map[string]any{
			"time":  r.Time.Format("2006-01-02T15:04:05.000Z07:00"),
			"level": levelName(r.Level),
			"msg":   r.Message,
		}
		for k, v := range attrs {
			record[k] = v
		}
		encoded, err := json.Marshal(record)
		if err != nil {
			return err
		}
		line = encoded
	} else {
		var b strings.Builder
		b.WriteString(r.Time.Format("2006-01-02 15:04:05"))
		b.WriteByte(' ')
		b.WriteString(h.styles[levelName(r.Level)].Render(levelName(r.Level)))
		b.WriteByte(' ')
		b.WriteString(r.Message)
		if len(attrs) > 0 {
			encoded, err := json.Marshal(attrs)
			if err != nil {
				encoded = fmt.Appendf(nil, "%q", err.Error())
			}
			b.WriteString(" → ")
			b.Write(encoded)
		}
		line = []byte(b.String())
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := h.output.Write(append(line, '\n'))
	return err
}

// WithAttrs returns a new Handler with additional attributes.
func (h *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	clone := *h
	clone.attrs = make([]slog.Attr, 0, len(h.attrs)+len(attrs))
	clone.attrs = append(clone.attrs, h.attrs...)
	for _, a := range attrs {
		clone.attrs = append(clone.attrs, slog.Attr{Key: h.prefix + a.Key, Value: a.Value})
	}
	return &clone
}

// WithGroup returns a new Handler whose later attribute keys are prefixed
// with name.
func (h *Handler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	clone := *h
	clone.prefix = h.prefix + name + "."
	return &clone
}

func (h *Handler) collect(r slog.Record) map[string]any {
	attrs := make(map[string]any, len(h.attrs)+r.NumAttrs())
	for _, a := range h.attrs {
		attrs[a.Key] = a.Value.Resolve().Any()
	}
	r.Attrs(func(a slog.Attr) bool {
		attrs[h.prefix+a.Key] = a.Value.Resolve().Any()
		return true
	})
	return attrs
}
