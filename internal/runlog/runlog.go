package runlog

import (
	"compress/gzip"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/Danypoz1986/StockBot/internal/types"
)

var mu sync.Mutex

// Entry is one run's audit record, appended as a JSON line to the day file.
type Entry struct {
	Time          string         `json:"time"`
	Policy        string         `json:"policy"`
	Compared      int            `json:"compared"`
	Recorded      int            `json:"recorded"`
	FailedTickers int            `json:"failed_tickers"`
	AlertsSent    int            `json:"alerts_sent"`
	SummarySent   bool           `json:"summary_sent"`
	StateSaved    bool           `json:"state_saved"`
	Extra         map[string]any `json:"extra,omitempty"`
}

func logDir() string {
	if v := os.Getenv("STOCKBOT_LOG_DIR"); v != "" {
		return v
	}
	return "logs"
}

func dailyFilepath(t time.Time) string {
	d := t.Format("2006-01-02")
	return filepath.Join(logDir(), "runs", d+".txt")
}

// Append records a completed run.
func Append(policy string, res *types.RunResult) error {
	mu.Lock()
	defer mu.Unlock()

	now := time.Now()
	e := Entry{
		Time:          now.Format("2006-01-02 15:04:05"),
		Policy:        policy,
		Compared:      res.Compared,
		Recorded:      res.Recorded,
		FailedTickers: res.FailedTickers,
		AlertsSent:    res.AlertsSent,
		SummarySent:   res.SummarySent,
		StateSaved:    res.StateSaved,
	}

	p := dailyFilepath(now)
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return err
	}
	f, err := os.OpenFile(p, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return err
	}
	defer f.Close()

	b, _ := json.Marshal(e)
	_, err = fmt.Fprintln(f, string(b))
	return err
}

// CompressOlder gzips run-log files older than retentionDays. A zero or
// negative retention disables rotation.
func CompressOlder(retentionDays int) error {
	if retentionDays <= 0 {
		return nil
	}
	root := logDir()
	cutoff := time.Now().AddDate(0, 0, -retentionDays)

	return filepath.WalkDir(root, func(p string, d os.DirEntry, err error) error {
		if err != nil || d.IsDir() || filepath.Ext(p) != ".txt" {
			return nil
		}
		info, er := os.Stat(p)
		if er != nil || !info.ModTime().Before(cutoff) {
			return nil
		}

		gz := p + ".gz"
		if _, e2 := os.Stat(gz); e2 == nil {
			_ = os.Remove(p)
			return nil
		}

		in, e3 := os.Open(p)
		if e3 != nil {
			return nil
		}
		defer in.Close()

		out, e4 := os.OpenFile(gz, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
		if e4 != nil {
			return nil
		}
		gw := gzip.NewWriter(out)
		if _, e5 := io.Copy(gw, in); e5 == nil {
			_ = gw.Close()
			_ = out.Close()
			_ = os.Remove(p)
		} else {
			_ = gw.Close()
			_ = out.Close()
		}
		return nil
	})
}
