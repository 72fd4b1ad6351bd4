package runlog

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/Danypoz1986/StockBot/internal/types"
)

func TestAppendWritesDailyJSONLine(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("STOCKBOT_LOG_DIR", dir)

	res := &types.RunResult{
		Compared:      10,
		Recorded:      9,
		FailedTickers: 1,
		AlertsSent:    2,
		SummarySent:   true,
		StateSaved:    true,
	}
	if err := Append("threshold", res); err != nil {
		t.Fatalf("Append failed: %v", err)
	}
	if err := Append("threshold", res); err != nil {
		t.Fatalf("Second append failed: %v", err)
	}

	p := filepath.Join(dir, "runs", time.Now().Format("2006-01-02")+".txt")
	b, err := os.ReadFile(p)
	if err != nil {
		t.Fatalf("Run log file missing: %v", err)
	}
	lines := strings.Split(strings.TrimRight(string(b), "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("Expected 2 entries, got %d", len(lines))
	}

	var e Entry
	if err := json.Unmarshal([]byte(lines[0]), &e); err != nil {
		t.Fatalf("Entry is not valid JSON: %v", err)
	}
	if e.Policy != "threshold" || e.Compared != 10 || e.AlertsSent != 2 || !e.SummarySent {
		t.Errorf("Unexpected entry: %+v", e)
	}
}

func TestCompressOlderGzipsAgedFiles(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("STOCKBOT_LOG_DIR", dir)

	runs := filepath.Join(dir, "runs")
	if err := os.MkdirAll(runs, 0o755); err != nil {
		t.Fatalf("MkdirAll failed: %v", err)
	}

	old := filepath.Join(runs, "2026-08-01.txt")
	if err := os.WriteFile(old, []byte(`{"policy":"directional"}`+"\n"), 0o644); err != nil {
		t.Fatalf("Write failed: %v", err)
	}
	aged := time.Now().AddDate(0, 0, -10)
	if err := os.Chtimes(old, aged, aged); err != nil {
		t.Fatalf("Chtimes failed: %v", err)
	}

	fresh := filepath.Join(runs, time.Now().Format("2006-01-02")+".txt")
	if err := os.WriteFile(fresh, []byte(`{"policy":"directional"}`+"\n"), 0o644); err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	if err := CompressOlder(7); err != nil {
		t.Fatalf("CompressOlder failed: %v", err)
	}

	if _, err := os.Stat(old); !os.IsNotExist(err) {
		t.Error("Aged file should have been removed after compression")
	}
	if _, err := os.Stat(old + ".gz"); err != nil {
		t.Errorf("Expected a gzip archive for the aged file: %v", err)
	}
	if _, err := os.Stat(fresh); err != nil {
		t.Errorf("Fresh file must be left alone: %v", err)
	}
}

func TestCompressOlderDisabled(t *testing.T) {
	t.Setenv("STOCKBOT_LOG_DIR", t.TempDir())
	if err := CompressOlder(0); err != nil {
		t.Fatalf("Disabled rotation must be a no-op, got: %v", err)
	}
}
