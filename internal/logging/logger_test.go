package logging_test

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"apjobs/internal/logging"
)

func TestNewJSONFormat(t *testing.T) {
	var buf bytes.Buffer
	logger, err := logging.New(logging.Options{Level: "debug", Format: "json", Output: &buf})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	logger.Debug("dispatching", "host", "phone1")

	var record map[string]any
	if err := json.Unmarshal(buf.Bytes(), &record); err != nil {
		t.Fatalf("expected JSON log line, got %q: %v", buf.String(), err)
	}
	if record["msg"] != "dispatching" || record["host"] != "phone1" {
		t.Fatalf("unexpected record: %v", record)
	}
}

func TestNewRejectsUnknownFormat(t *testing.T) {
	if _, err := logging.New(logging.Options{Format: "xml"}); err == nil {
		t.Fatal("expected error for unknown format")
	}
}

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger, err := logging.New(logging.Options{Level: "warn", Format: "console", Output: &buf})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	logger.Info("hidden")
	logger.Warn("visible")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Fatalf("info line should be filtered: %q", out)
	}
	if !strings.Contains(out, "visible") {
		t.Fatalf("warn line should pass: %q", out)
	}
}

func TestNewNopDiscards(t *testing.T) {
	logger := logging.NewNop()
	logger.Error("dropped")
}
