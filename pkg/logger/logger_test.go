package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"
)

func TestLoggerFields(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, LevelInfo, "invoiceflow", func(context.Context) string { return "abc123" })

	log.Debug(context.Background(), "hidden")
	log.Error(context.Background(), "insert failed", "collection", "invoices")

	var line map[string]any
	if err := json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &line); err != nil {
		t.Fatalf("expected exactly one JSON line, got %q: %v", buf.String(), err)
	}
	if line["msg"] != "insert failed" || line["level"] != "error" {
		t.Fatalf("unexpected line: %v", line)
	}
	if line["service"] != "invoiceflow" || line["trace_id"] != "abc123" || line["collection"] != "invoices" {
		t.Fatalf("missing fields: %v", line)
	}
}

func TestNoTraceID(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, LevelDebug, "svc", func(context.Context) string { return "" })
	log.Info(context.Background(), "hello")

	var line map[string]any
	if err := json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &line); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if _, ok := line["trace_id"]; ok {
		t.Fatalf("unexpected trace_id: %v", line)
	}
}

func TestParseLevel(t *testing.T) {
	tests := map[string]Level{"debug": LevelDebug, "": LevelInfo, "INFO": LevelInfo, "warn": LevelWarn, "error": LevelError}
	for in, want := range tests {
		got, err := ParseLevel(in)
		if err != nil || got != want {
			t.Fatalf("ParseLevel(%q) = %v, %v; want %v", in, got, err, want)
		}
	}
	if _, err := ParseLevel("loud"); err == nil {
		t.Fatal("expected error for unknown level")
	}
}
