package logger

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestLoggerWritesStructuredJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.log")
	l, err := New(&Config{Level: "info", Format: "json", Output: path})
	if err != nil {
		t.Fatalf("new: %v", err)
	}

	l.Debug("below level")
	l.With(String("component", "yahoo")).Warn("fetch slow",
		String("symbol", "AAPL"),
		Int("bars", 250),
		Duration("took", 1500*time.Millisecond),
		Error(errors.New("timeout")),
	)

	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(string(b)), "\n")
	if len(lines) != 1 {
		t.Fatalf("expected one line, got %q", b)
	}
	var m map[string]interface{}
	if err := json.Unmarshal([]byte(lines[0]), &m); err != nil {
		t.Fatalf("decode: %v", err)
	}
	want := map[string]interface{}{
		"level":     "warn",
		"message":   "fetch slow",
		"component": "yahoo",
		"symbol":    "AAPL",
		"bars":      float64(250),
		"took":      float64(1500),
		"error":     "timeout",
	}
	for k, v := range want {
		if m[k] != v {
			t.Fatalf("%s = %v, want %v (%s)", k, m[k], v, lines[0])
		}
	}
	if _, ok := m["caller"].(string); !ok {
		t.Fatalf("missing caller: %s", lines[0])
	}
}

func TestNewRejectsUnknownLevel(t *testing.T) {
	if _, err := New(&Config{Level: "loud"}); err == nil {
		t.Fatal("expected error")
	}
}
