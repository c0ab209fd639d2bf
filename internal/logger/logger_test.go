package logger

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/authdog/authdog-go-sdk/internal/config"
	"go.uber.org/zap/zapcore"
)

func TestParseLevel(t *testing.T) {
	tests := map[string]zapcore.Level{
		"debug":   zapcore.DebugLevel,
		"info":    zapcore.InfoLevel,
		"warn":    zapcore.WarnLevel,
		"warning": zapcore.WarnLevel,
		"error":   zapcore.ErrorLevel,
		"":        zapcore.InfoLevel,
		"loud":    zapcore.InfoLevel,
	}
	for name, want := range tests {
		if got := parseLevel(name); got != want {
			t.Errorf("parseLevel(%q) = %v, want %v", name, got, want)
		}
	}
}

func TestZapWritesStructuredObject(t *testing.T) {
	var buf bytes.Buffer
	log := New("info", &buf)

	log.DebugObj("hidden", "k", 1)
	log.InfoObj("lookup finished", "result", map[string]any{"status": 200})
	_ = log.Sync()

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 1 {
		t.Fatalf("expected one line (debug filtered), got %d: %q", len(lines), buf.String())
	}

	var entry map[string]any
	if err := json.Unmarshal([]byte(lines[0]), &entry); err != nil {
		t.Fatalf("decode log line: %v", err)
	}
	if entry["msg"] != "lookup finished" {
		t.Errorf("msg = %v", entry["msg"])
	}
	if _, ok := entry["ts"]; !ok {
		t.Errorf("missing ts field")
	}
	result, ok := entry["result"].(map[string]any)
	if !ok || result["status"] != float64(200) {
		t.Errorf("result = %v", entry["result"])
	}
}

func TestInitSetsPackageLogger(t *testing.T) {
	S = nil
	if err := Close(); err != nil {
		t.Fatalf("Close before Init: %v", err)
	}
	if _, err := Init(&config.Config{LogLevel: "debug"}); err != nil {
		t.Fatalf("Init: %v", err)
	}
	if S == nil {
		t.Fatalf("Init did not set S")
	}
	S = nil
}

func TestNopLogger(t *testing.T) {
	var l Logger = &NopLogger{}
	l.InfoObj("a", "b", nil)
	l.ErrorObj("a", "b", nil)
}
