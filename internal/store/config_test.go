package store

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("Write failed: %v", err)
	}
	return path
}

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig(writeConfig(t, "{}"))
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	if cfg.DataSource != "STATIC" {
		t.Errorf("Expected STATIC default, got %s", cfg.DataSource)
	}
	if len(cfg.Companies) != 10 {
		t.Errorf("Expected the 10 default companies, got %d", len(cfg.Companies))
	}
	if cfg.Companies[0].Ticker != "NOKIA.HE" || cfg.Companies[0].Name != "Nokia Oyj" {
		t.Errorf("Unexpected first default company: %+v", cfg.Companies[0])
	}
	if cfg.Policy.Mode != "directional" || cfg.Policy.ThresholdPct != 5.0 || cfg.Policy.HoldBand != 0.5 {
		t.Errorf("Unexpected policy defaults: %+v", cfg.Policy)
	}
	if cfg.Store.Backend != "file" || cfg.Store.Path != "predictions.json" {
		t.Errorf("Unexpected store defaults: %+v", cfg.Store)
	}
	if cfg.Notify.Backend != "console" || cfg.Notify.SMTPPort != 465 {
		t.Errorf("Unexpected notify defaults: %+v", cfg.Notify)
	}
	if cfg.Gate.Mode != "always" || cfg.Gate.SendHour != 18 {
		t.Errorf("Unexpected gate defaults: %+v", cfg.Gate)
	}
	if cfg.Schedule.Cron != "0 18 * * *" {
		t.Errorf("Unexpected schedule default: %s", cfg.Schedule.Cron)
	}
	if cfg.History.Rows != 5 {
		t.Errorf("Unexpected history rows default: %d", cfg.History.Rows)
	}
	if cfg.Secrets.Provider != "env" {
		t.Errorf("Unexpected secrets provider default: %s", cfg.Secrets.Provider)
	}
}

func TestLoadConfigOverrides(t *testing.T) {
	cfg, err := LoadConfig(writeConfig(t, `
data_source: LIVE
companies:
  - ticker: NOKIA.HE
    name: Nokia Oyj
policy:
  mode: threshold
  threshold_pct: 7.5
notify:
  backend: smtp
  recipients:
    - team@example.com
gate:
  mode: hour_once
  send_hour: 18
`))
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if cfg.DataSource != "LIVE" {
		t.Errorf("Expected LIVE, got %s", cfg.DataSource)
	}
	if len(cfg.Companies) != 1 {
		t.Errorf("Expected the override registry, got %d companies", len(cfg.Companies))
	}
	if cfg.Policy.Mode != "threshold" || cfg.Policy.ThresholdPct != 7.5 {
		t.Errorf("Unexpected policy: %+v", cfg.Policy)
	}
	if cfg.Notify.Backend != "smtp" || len(cfg.Notify.Recipients) != 1 {
		t.Errorf("Unexpected notify: %+v", cfg.Notify)
	}
	if cfg.Gate.Mode != "hour_once" {
		t.Errorf("Unexpected gate: %+v", cfg.Gate)
	}
}

func TestLoadConfigRejectsInvalid(t *testing.T) {
	cases := []struct {
		name    string
		yaml    string
		wantErr string
	}{
		{"bad data source", "data_source: REPLAY", "data_source"},
		{"bad policy mode", "policy:\n  mode: magic", "policy.mode"},
		{"bad gate mode", "gate:\n  mode: sometimes", "gate.mode"},
		{"bad notify backend", "notify:\n  backend: pigeon", "notify.backend"},
		{"duplicate ticker", "companies:\n  - ticker: NOKIA.HE\n    name: a\n  - ticker: NOKIA.HE\n    name: b", "duplicate ticker"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := LoadConfig(writeConfig(t, tc.yaml))
			if err == nil {
				t.Fatal("Expected a validation error")
			}
			if !strings.Contains(err.Error(), tc.wantErr) {
				t.Errorf("Expected error mentioning %q, got: %v", tc.wantErr, err)
			}
		})
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatal("Expected an error for a missing file")
	}
}

func TestRegistry(t *testing.T) {
	cfg := &Config{Companies: DefaultCompanies()}
	reg := cfg.Registry()
	if len(reg) != 10 {
		t.Fatalf("Expected 10 entries, got %d", len(reg))
	}
	if reg["KNEBV.HE"] != "Kone Oyj" {
		t.Errorf("Unexpected name for KNEBV.HE: %s", reg["KNEBV.HE"])
	}
}
