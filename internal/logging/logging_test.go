package logging

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func useTempLog(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "nested", "menu.log")
	Configure(path)
	t.Cleanup(func() {
		Configure("")
		SetTraceEnabled(false)
	})
	return path
}

func TestErrorAndWarnfAppendLines(t *testing.T) {
	path := useTempLog(t)
	Error(errors.New("switch failed"))
	Error(nil)
	Warnf("collection timed out after %s", "5s")

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d: %q", len(lines), lines)
	}
	if !strings.HasSuffix(lines[0], "switch failed") {
		t.Fatalf("unexpected error line %q", lines[0])
	}
	if !strings.HasSuffix(lines[1], "warning: collection timed out after 5s") {
		t.Fatalf("unexpected warning line %q", lines[1])
	}
}

func TestTraceWritesOnlyWhenEnabled(t *testing.T) {
	path := useTempLog(t)
	Trace("menu.open", map[string]interface{}{"items": 1})
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Fatalf("expected no log file while tracing is disabled")
	}

	SetTraceEnabled(true)
	Trace("menu.open", map[string]interface{}{"items": 3})
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	var entry struct {
		Event   string         `json:"event"`
		Payload map[string]int `json:"payload"`
	}
	if err := json.Unmarshal(data, &entry); err != nil {
		t.Fatalf("decode trace: %v", err)
	}
	if entry.Event != "menu.open" || entry.Payload["items"] != 3 {
		t.Fatalf("unexpected entry %+v", entry)
	}
}
