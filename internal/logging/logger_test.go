package logging_test

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"sortd/internal/logging"
)

func readLog(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}
	return string(data)
}

func TestConsoleHandlerFormatsComponentAndAttrs(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sortd.log")
	logger, err := logging.New(logging.Options{
		Level:       "info",
		Format:      "console",
		OutputPaths: []string{path},
	})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	component := logging.NewComponentLogger(logger, "organizer")
	component.Info("moved file",
		logging.String(logging.FieldFile, "report.pdf"),
		logging.String(logging.FieldCategory, "Documents"),
	)

	out := readLog(t, path)
	if !strings.Contains(out, "INFO organizer: moved file") {
		t.Fatalf("expected component prefix in output, got %q", out)
	}
	if !strings.Contains(out, "file=report.pdf") || !strings.Contains(out, "category=Documents") {
		t.Fatalf("expected flattened attrs in output, got %q", out)
	}
}

func TestConsoleHandlerQuotesValuesWithSpaces(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sortd.log")
	logger, err := logging.New(logging.Options{Level: "info", OutputPaths: []string{path}})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	logger.Warn("rules fallback", logging.Error(errors.New("invalid character 'x'")))

	out := readLog(t, path)
	if !strings.Contains(out, "WARN") {
		t.Fatalf("expected WARN label, got %q", out)
	}
	if !strings.Contains(out, `error="invalid character 'x'"`) {
		t.Fatalf("expected quoted error value, got %q", out)
	}
}

func TestLevelFiltering(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sortd.log")
	logger, err := logging.New(logging.Options{Level: "warn", OutputPaths: []string{path}})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	logger.Info("quiet")
	logger.Warn("loud")

	out := readLog(t, path)
	if strings.Contains(out, "quiet") {
		t.Fatalf("info line should have been filtered, got %q", out)
	}
	if !strings.Contains(out, "loud") {
		t.Fatalf("warn line missing from output, got %q", out)
	}
}

func TestJSONHandlerEmitsLowercaseLevel(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sortd.log")
	logger, err := logging.New(logging.Options{Level: "info", Format: "json", OutputPaths: []string{path}})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	logger.Info("organized", logging.Int("moved", 3))

	line := strings.TrimSpace(readLog(t, path))
	var payload map[string]any
	if err := json.Unmarshal([]byte(line), &payload); err != nil {
		t.Fatalf("unmarshal log line %q: %v", line, err)
	}
	if payload["level"] != "info" {
		t.Fatalf("expected lowercase level, got %v", payload["level"])
	}
	if payload["msg"] != "organized" {
		t.Fatalf("expected msg key, got %v", payload["msg"])
	}
	if payload["moved"] != float64(3) {
		t.Fatalf("expected moved attr, got %v", payload["moved"])
	}
}

func TestNewRejectsUnknownFormat(t *testing.T) {
	if _, err := logging.New(logging.Options{Format: "yaml"}); err == nil {
		t.Fatal("expected error for unsupported format")
	}
}

func TestWithContextAddsBatchFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sortd.log")
	logger, err := logging.New(logging.Options{Level: "info", OutputPaths: []string{path}})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	ctx := logging.WithBatchID(context.Background(), "batch-123")
	ctx = logging.WithDirectory(ctx, "/tmp/example")
	logging.WithContext(ctx, logger).Info("starting")

	out := readLog(t, path)
	if !strings.Contains(out, "batch_id=batch-123") {
		t.Fatalf("expected batch_id field, got %q", out)
	}
	if !strings.Contains(out, "directory=/tmp/example") {
		t.Fatalf("expected directory field, got %q", out)
	}
}

func TestWithContextWithoutFieldsReturnsLogger(t *testing.T) {
	logger := logging.NewNop()
	if got := logging.WithContext(context.Background(), logger); got != logger {
		t.Fatal("expected identical logger when context carries no fields")
	}
}

func TestNewNopDiscards(t *testing.T) {
	logger := logging.NewNop()
	logger.Info("dropped")
	logger.Error("also dropped", logging.Error(errors.New("boom")))
}
