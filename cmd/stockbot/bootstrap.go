package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/Danypoz1986/StockBot/internal/compare"
	"github.com/Danypoz1986/StockBot/internal/interfaces"
	"github.com/Danypoz1986/StockBot/internal/logger"
	"github.com/Danypoz1986/StockBot/internal/market"
	"github.com/Danypoz1986/StockBot/internal/market/marketobs"
	"github.com/Danypoz1986/StockBot/internal/news"
	"github.com/Danypoz1986/StockBot/internal/notify"
	"github.com/Danypoz1986/StockBot/internal/orchestrator"
	"github.com/Danypoz1986/StockBot/internal/predictions"
	"github.com/Danypoz1986/StockBot/internal/predictions/predobs"
	"github.com/Danypoz1986/StockBot/internal/runlog"
	"github.com/Danypoz1986/StockBot/internal/secrets"
	"github.com/Danypoz1986/StockBot/internal/store"
	"github.com/Danypoz1986/StockBot/internal/trace"
)

// initializeSystem initializes env, logger and tracer
func initializeSystem() error {
	_ = godotenv.Load()

	if err := logger.Init(); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	if err := trace.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize tracer: %v\n", err)
	}

	return nil
}

// loadConfig loads and returns the configuration
func loadConfig(ctx context.Context, path string) (*store.Config, error) {
	cfg, err := store.LoadConfig(path)
	if err != nil {
		logger.ErrorWithErr(ctx, "Failed to load config", err, "path", path)
		return nil, err
	}
	return cfg, nil
}

// compressOldLogs compresses old run-log files if retention is configured
func compressOldLogs(ctx context.Context) {
	if v := os.Getenv("STOCKBOT_LOG_RETENTION_DAYS"); v != "" {
		var n int
		fmt.Sscanf(v, "%d", &n)
		if err := runlog.CompressOlder(n); err != nil {
			logger.Warn(ctx, "Failed to compress old run logs", "error", err)
		}
	}
}

// initializeSecrets returns the configured secret provider
func initializeSecrets(cfg *store.Config) interfaces.SecretProvider {
	if cfg.Secrets.Provider == "file" {
		return secrets.NewFileProvider(cfg.Secrets.File)
	}
	return secrets.NewEnvProvider()
}

// initializePriceSource builds the price source with observability
func initializePriceSource(ctx context.Context, cfg *store.Config) interfaces.PriceSource {
	src := market.New(market.Params{
		DataSource: cfg.DataSource,
		Lookback:   cfg.History.LookbackDays,
	})

	if cfg.DataSource == "LIVE" {
		logger.Info(ctx, "Using LIVE price data from Yahoo Finance")
	} else {
		logger.Info(ctx, "Using STATIC mock price data for testing")
	}

	return marketobs.Wrap(src)
}

// initializeSentiment builds the sentiment service. A missing news API key
// is not fatal: the service falls back to scraping headlines.
func initializeSentiment(ctx context.Context, cfg *store.Config, vault interfaces.SecretProvider) interfaces.SentimentSource {
	apiKey := ""
	if secret, err := vault.GetSecret(cfg.News.SecretName); err != nil {
		logger.Warn(ctx, "News API key unavailable, scraper fallback only", "error", err)
	} else {
		apiKey = secret["apiKey"]
	}

	return news.NewService(apiKey, &news.ServiceConfig{
		Query:          cfg.News.Query,
		MaxArticles:    cfg.News.MaxArticles,
		CacheDuration:  time.Duration(cfg.News.CacheMinutes) * time.Minute,
		ScraperTimeout: 30 * time.Second,
	})
}

// initializeStore builds the prediction store with observability. The
// returned closer is non-nil for backends holding OS resources.
func initializeStore(ctx context.Context, cfg *store.Config) (interfaces.PredictionStore, func() error, error) {
	if cfg.Store.Backend == "badger" {
		bs, err := predictions.OpenBadgerStore(cfg.Store.BadgerDir)
		if err != nil {
			return nil, nil, err
		}
		logger.Info(ctx, "Using badger prediction store", "dir", cfg.Store.BadgerDir)
		return predobs.Wrap(bs), bs.Close, nil
	}

	logger.Info(ctx, "Using file prediction store", "path", cfg.Store.Path)
	return predobs.Wrap(predictions.NewFileStore(cfg.Store.Path)), nil, nil
}

// initializeNotifier builds the mail backend. A missing credential is fatal
// to the notification step only: the run still fetches, compares and
// persists, it just logs instead of sending.
func initializeNotifier(ctx context.Context, cfg *store.Config, vault interfaces.SecretProvider) interfaces.Notifier {
	switch cfg.Notify.Backend {
	case "smtp":
		secret, err := vault.GetSecret(cfg.Notify.SecretName)
		if err != nil {
			logger.Error(ctx, "SMTP password unavailable, notifications disabled", "error", err)
			return notify.NewConsoleNotifier()
		}
		return notify.NewSMTPNotifier(cfg.Notify.SMTPHost, cfg.Notify.SMTPPort, cfg.Notify.Sender, secret["GMAIL_PASSWORD"])
	case "resend":
		secret, err := vault.GetSecret("Resend")
		if err != nil {
			logger.Error(ctx, "Resend API key unavailable, notifications disabled", "error", err)
			return notify.NewConsoleNotifier()
		}
		return notify.NewResendNotifier(secret["apiKey"], cfg.Notify.Sender)
	default:
		logger.Warn(ctx, "No mail backend configured - using console notifier")
		return notify.NewConsoleNotifier()
	}
}

// initializePolicy selects the verdict policy and its alert dispatcher
func initializePolicy(ctx context.Context, cfg *store.Config, notifier interfaces.Notifier) (interfaces.VerdictPolicy, *compare.AlertDispatcher) {
	if cfg.Policy.Mode == "threshold" {
		logger.Info(ctx, "Using threshold verdict policy", "threshold_pct", cfg.Policy.ThresholdPct)
		return compare.NewThresholdMagnitude(cfg.Policy.ThresholdPct),
			compare.NewAlertDispatcher(notifier, cfg.Notify.Recipients)
	}

	logger.Info(ctx, "Using directional verdict policy", "hold_band", cfg.Policy.HoldBand)
	return compare.NewDirectionalMatch(cfg.Policy.HoldBand), nil
}

// buildOrchestrator wires all collaborators together
func buildOrchestrator(ctx context.Context, cfg *store.Config) (interfaces.Orchestrator, func() error, error) {
	vault := initializeSecrets(cfg)
	prices := initializePriceSource(ctx, cfg)
	sentiment := initializeSentiment(ctx, cfg, vault)
	notifier := initializeNotifier(ctx, cfg, vault)
	policy, dispatcher := initializePolicy(ctx, cfg, notifier)

	preds, closeStore, err := initializeStore(ctx, cfg)
	if err != nil {
		return nil, nil, err
	}

	engine := compare.New(cfg.Companies, policy, dispatcher)
	orch := orchestrator.New(cfg, prices, sentiment, preds, notifier, engine)

	return orch, closeStore, nil
}
