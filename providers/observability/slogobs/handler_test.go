package slogobs

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"
)

func TestHandler_Compact(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(NewHandler(HandlerOptions{Format: FormatCompact, Level: slog.LevelDebug, Output: &buf}))

	logger.Debug("serp parsed", "serp.ads", 2)

	line := buf.String()
	if !strings.Contains(line, "DEBUG serp parsed") {
		t.Errorf("missing level and message: %q", line)
	}
	if !strings.HasSuffix(line, `→ {"serp.ads":2}`+"\n") {
		t.Errorf("missing JSON attributes: %q", line)
	}
}

func TestHandler_JSON(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(NewHandler(HandlerOptions{Format: FormatJSON, Output: &buf})).
		WithGroup("gemini").With("model", "gemini-2.5-flash")

	logger.Warn("rate limited", "wait_ms", 120)

	var record map[string]any
	if err := json.Unmarshal(buf.Bytes(), &record); err != nil {
		t.Fatalf("output is not JSON: %v (%q)", err, buf.String())
	}
	if record["level"] != "WARN" || record["msg"] != "rate limited" {
		t.Errorf("record = %v", record)
	}
	if record["gemini.model"] != "gemini-2.5-flash" {
		t.Errorf("grouped attr = %v", record["gemini.model"])
	}
	if record["gemini.wait_ms"] != float64(120) {
		t.Errorf("grouped record attr = %v", record["gemini.wait_ms"])
	}
}

func TestHandler_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	h := NewHandler(HandlerOptions{Level: slog.LevelWarn, Output: &buf})
	logger := slog.New(h)

	logger.Info("dropped")
	logger.Error("kept")

	if strings.Contains(buf.String(), "dropped") || !strings.Contains(buf.String(), "kept") {
		t.Errorf("unexpected output %q", buf.String())
	}
	if h.Enabled(context.Background(), LevelTrace) {
		t.Error("TRACE should be disabled at WARN")
	}
}
