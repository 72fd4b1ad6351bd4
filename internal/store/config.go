package store

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/Danypoz1986/StockBot/internal/types"
)

type Config struct {
	DataSource string          `yaml:"data_source"` // STATIC or LIVE
	Companies  []types.Company `yaml:"companies"`
	Policy     struct {
		Mode         string  `yaml:"mode"` // directional or threshold
		ThresholdPct float64 `yaml:"threshold_pct"`
		HoldBand     float64 `yaml:"hold_band"`
	} `yaml:"policy"`
	Store struct {
		Backend   string `yaml:"backend"` // file or badger
		Path      string `yaml:"path"`
		BadgerDir string `yaml:"badger_dir"`
	} `yaml:"store"`
	News struct {
		Query        string `yaml:"query"`
		SecretName   string `yaml:"secret_name"`
		MaxArticles  int    `yaml:"max_articles"`
		CacheMinutes int    `yaml:"cache_minutes"`
	} `yaml:"news"`
	Notify struct {
		Backend    string   `yaml:"backend"` // smtp, resend or console
		Sender     string   `yaml:"sender"`
		Recipients []string `yaml:"recipients"`
		SMTPHost   string   `yaml:"smtp_host"`
		SMTPPort   int      `yaml:"smtp_port"`
		SecretName string   `yaml:"secret_name"`
	} `yaml:"notify"`
	Gate struct {
		Mode     string `yaml:"mode"` // always, hour or hour_once
		SendHour int    `yaml:"send_hour"`
	} `yaml:"gate"`
	Schedule struct {
		Cron string `yaml:"cron"`
	} `yaml:"schedule"`
	History struct {
		LookbackDays int `yaml:"lookback_days"`
		Rows         int `yaml:"rows"`
	} `yaml:"history"`
	Secrets struct {
		Provider string `yaml:"provider"` // env or file
		File     string `yaml:"file"`
	} `yaml:"secrets"`
}

func (c *Config) Validate() error {
	if c.DataSource != "STATIC" && c.DataSource != "LIVE" {
		return fmt.Errorf("invalid data_source '%s': must be 'STATIC' or 'LIVE'", c.DataSource)
	}
	if len(c.Companies) == 0 {
		return fmt.Errorf("companies cannot be empty")
	}
	seen := map[string]bool{}
	for _, co := range c.Companies {
		if co.Ticker == "" {
			return fmt.Errorf("company with empty ticker in registry")
		}
		if seen[co.Ticker] {
			return fmt.Errorf("duplicate ticker '%s' in registry", co.Ticker)
		}
		seen[co.Ticker] = true
	}
	if c.Policy.Mode != "directional" && c.Policy.Mode != "threshold" {
		return fmt.Errorf("policy.mode must be 'directional' or 'threshold', got '%s'", c.Policy.Mode)
	}
	if c.Policy.ThresholdPct <= 0 {
		return fmt.Errorf("policy.threshold_pct must be positive, got %.2f", c.Policy.ThresholdPct)
	}
	if c.Store.Backend != "file" && c.Store.Backend != "badger" {
		return fmt.Errorf("store.backend must be 'file' or 'badger', got '%s'", c.Store.Backend)
	}
	if c.Notify.Backend != "smtp" && c.Notify.Backend != "resend" && c.Notify.Backend != "console" {
		return fmt.Errorf("notify.backend must be 'smtp', 'resend' or 'console', got '%s'", c.Notify.Backend)
	}
	if c.Gate.Mode != "always" && c.Gate.Mode != "hour" && c.Gate.Mode != "hour_once" {
		return fmt.Errorf("gate.mode must be 'always', 'hour' or 'hour_once', got '%s'", c.Gate.Mode)
	}
	if c.Gate.SendHour < 0 || c.Gate.SendHour > 23 {
		return fmt.Errorf("gate.send_hour must be between 0-23, got %d", c.Gate.SendHour)
	}
	return nil
}

// Registry returns the company map keyed by ticker for display-name lookups.
func (c *Config) Registry() map[string]string {
	m := make(map[string]string, len(c.Companies))
	for _, co := range c.Companies {
		m[co.Ticker] = co.Name
	}
	return m
}

// DefaultCompanies is the covered set of Helsinki-listed instruments, used
// when the config file does not override the registry.
func DefaultCompanies() []types.Company {
	return []types.Company{
		{Ticker: "NOKIA.HE", Name: "Nokia Oyj"},
		{Ticker: "KNEBV.HE", Name: "Kone Oyj"},
		{Ticker: "NESTE.HE", Name: "Neste Oyj"},
		{Ticker: "FORTUM.HE", Name: "Fortum Oyj"},
		{Ticker: "SAMPO.HE", Name: "Sampo Oyj"},
		{Ticker: "UPM.HE", Name: "UPM-Kymmene Oyj"},
		{Ticker: "OUT1V.HE", Name: "Outokumpu Oyj"},
		{Ticker: "ORNBV.HE", Name: "Orion Oyj"},
		{Ticker: "KESKOA.HE", Name: "Kesko Oyj"},
		{Ticker: "STERV.HE", Name: "Stora Enso Oyj"},
	}
}

func LoadConfig(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var c Config
	if err := yaml.Unmarshal(b, &c); err != nil {
		return nil, err
	}

	if c.DataSource == "" {
		c.DataSource = "STATIC"
	}
	if len(c.Companies) == 0 {
		c.Companies = DefaultCompanies()
	}
	if c.Policy.Mode == "" {
		c.Policy.Mode = "directional"
	}
	if c.Policy.ThresholdPct == 0 {
		c.Policy.ThresholdPct = 5.0
	}
	if c.Policy.HoldBand == 0 {
		c.Policy.HoldBand = 0.5
	}
	if c.Store.Backend == "" {
		c.Store.Backend = "file"
	}
	if c.Store.Path == "" {
		c.Store.Path = "predictions.json"
	}
	if c.Store.BadgerDir == "" {
		c.Store.BadgerDir = "data/predictions"
	}
	if c.News.Query == "" {
		c.News.Query = "stock"
	}
	if c.News.SecretName == "" {
		c.News.SecretName = "Api_Key"
	}
	if c.News.MaxArticles == 0 {
		c.News.MaxArticles = 20
	}
	if c.News.CacheMinutes == 0 {
		c.News.CacheMinutes = 30
	}
	if c.Notify.Backend == "" {
		c.Notify.Backend = "console"
	}
	if c.Notify.SMTPHost == "" {
		c.Notify.SMTPHost = "smtp.gmail.com"
	}
	if c.Notify.SMTPPort == 0 {
		c.Notify.SMTPPort = 465
	}
	if c.Notify.SecretName == "" {
		c.Notify.SecretName = "GMAIL_pw"
	}
	if c.Gate.Mode == "" {
		c.Gate.Mode = "always"
	}
	if c.Gate.SendHour == 0 {
		c.Gate.SendHour = 18
	}
	if c.Schedule.Cron == "" {
		c.Schedule.Cron = "0 18 * * *"
	}
	if c.History.LookbackDays == 0 {
		c.History.LookbackDays = 30
	}
	if c.History.Rows == 0 {
		c.History.Rows = 5
	}
	if c.Secrets.Provider == "" {
		c.Secrets.Provider = "env"
	}
	if c.Secrets.File == "" {
		c.Secrets.File = "secrets.json"
	}

	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &c, nil
}
