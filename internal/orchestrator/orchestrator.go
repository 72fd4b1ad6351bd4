package orchestrator

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Danypoz1986/StockBot/internal/compare"
	"github.com/Danypoz1986/StockBot/internal/interfaces"
	"github.com/Danypoz1986/StockBot/internal/logger"
	"github.com/Danypoz1986/StockBot/internal/market"
	"github.com/Danypoz1986/StockBot/internal/predictions"
	"github.com/Danypoz1986/StockBot/internal/runlog"
	"github.com/Danypoz1986/StockBot/internal/store"
	"github.com/Danypoz1986/StockBot/internal/types"
)

const summarySubject = "Pörssimarkkinoiden analyysipäivitys"

// Orchestrator sequences one scheduled cycle: load previous predictions,
// compare against fresh closes, fetch history and sentiment, persist the new
// snapshot set and send the summary report through the time gate.
type Orchestrator struct {
	cfg       *store.Config
	prices    interfaces.PriceSource
	sentiment interfaces.SentimentSource
	preds     interfaces.PredictionStore
	notifier  interfaces.Notifier
	engine    *compare.Engine
	gate      RunGate
	now       func() time.Time
}

var _ interfaces.Orchestrator = (*Orchestrator)(nil)

func New(
	cfg *store.Config,
	prices interfaces.PriceSource,
	sentiment interfaces.SentimentSource,
	preds interfaces.PredictionStore,
	notifier interfaces.Notifier,
	engine *compare.Engine,
) *Orchestrator {
	return &Orchestrator{
		cfg:       cfg,
		prices:    prices,
		sentiment: sentiment,
		preds:     preds,
		notifier:  notifier,
		engine:    engine,
		gate: RunGate{
			Mode:     cfg.Gate.Mode,
			SendHour: cfg.Gate.SendHour,
		},
		now: time.Now,
	}
}

// Run executes one full cycle. Per-ticker failures are absorbed and counted;
// the only returned errors are faults in the orchestration itself.
func (o *Orchestrator) Run(ctx context.Context) (*types.RunResult, error) {
	timer := logger.StartOperation(ctx, "orchestrator.Run", "policy", o.cfg.Policy.Mode)
	ctx = timer.GetContext()

	res := &types.RunResult{}

	// Previous state. Absence is the expected first-run base case.
	prevState, err := o.preds.Load(ctx)
	if err != nil {
		if !errors.Is(err, predictions.ErrNoSnapshot) {
			logger.ErrorWithErr(ctx, "Could not read previous predictions, comparing against nothing", err)
		}
		prevState = &types.State{Predictions: types.SnapshotSet{}}
	}

	comparison, verdicts, alerts := o.engine.CompareAll(ctx, prevState.Predictions, o.prices.LatestClose)
	res.Compared = len(verdicts)
	res.AlertsSent = alerts

	historyText, newSet, lastSentiment := o.buildSnapshots(ctx, res)

	newState := &types.State{
		Predictions:  newSet,
		LastSentDate: prevState.LastSentDate,
	}
	if err := o.preds.Save(ctx, newState); err != nil {
		// The run still reports; the next run just re-sees stale state.
		logger.ErrorWithErr(ctx, "Failed to save predictions", err)
	} else {
		res.StateSaved = true
	}

	body := o.assembleReport(historyText, comparison, lastSentiment)

	now := o.now()
	if o.gate.ShouldSendNow(now, prevState.LastSentDate) {
		if err := o.notifier.Send(ctx, summarySubject, body, o.cfg.Notify.Recipients); err != nil {
			logger.ErrorWithErr(ctx, "Failed to send summary report", err)
		} else {
			res.SummarySent = true
			logger.Info(ctx, "Summary report sent", "recipients", len(o.cfg.Notify.Recipients))
			newState.LastSentDate = now.Format("2006-01-02")
			if err := o.preds.Save(ctx, newState); err != nil {
				logger.ErrorWithErr(ctx, "Failed to record send date", err)
			}
		}
	} else {
		logger.Info(ctx, "Send gate closed, skipping summary report",
			"gate_mode", o.gate.Mode,
			"hour", now.Hour(),
			"last_sent_date", prevState.LastSentDate,
		)
	}

	if err := runlog.Append(o.cfg.Policy.Mode, res); err != nil {
		logger.Warn(ctx, "Failed to append run log entry", "error", err)
	}

	timer.End(
		"compared", res.Compared,
		"recorded", res.Recorded,
		"failed_tickers", res.FailedTickers,
		"alerts_sent", res.AlertsSent,
		"summary_sent", res.SummarySent,
	)

	return res, nil
}

// buildSnapshots walks the registry, fetching history and the sentiment
// suggestion per company. A company whose price or sentiment fetch fails is
// left out of the new snapshot set entirely so a transient outage never
// aborts the run or poisons the stored state.
func (o *Orchestrator) buildSnapshots(ctx context.Context, res *types.RunResult) (string, types.SnapshotSet, *types.Sentiment) {
	var history strings.Builder
	newSet := types.SnapshotSet{}
	var lastSentiment *types.Sentiment

	for _, co := range o.cfg.Companies {
		bars, err := o.prices.RecentBars(ctx, co.Ticker, o.cfg.History.Rows)
		if err != nil || len(bars) == 0 {
			logger.Warn(ctx, "No price history for company, skipping", "ticker", co.Ticker, "error", err)
			res.FailedTickers++
			continue
		}
		history.WriteString(market.FormatHistory(co.Name, bars, o.cfg.History.Rows))

		sent, err := o.sentiment.MarketSentiment(ctx)
		if err != nil {
			logger.Warn(ctx, "Sentiment unavailable for company, skipping", "ticker", co.Ticker, "error", err)
			res.FailedTickers++
			continue
		}
		lastSentiment = &sent

		newSet[co.Ticker] = types.Snapshot{
			Suggestion: sent.Suggestion,
			Close:      bars[len(bars)-1].Close,
		}
		res.Recorded++
	}

	if res.FailedTickers > 0 {
		logger.Warn(ctx, "Some companies dropped from this run",
			"failed", res.FailedTickers,
			"recorded", res.Recorded,
		)
	}

	return history.String(), newSet, lastSentiment
}

func (o *Orchestrator) assembleReport(history, comparison string, sentiment *types.Sentiment) string {
	label := "unknown"
	suggestion := "unknown"
	if sentiment != nil {
		label = sentiment.Label
		suggestion = string(sentiment.Suggestion)
	}

	return fmt.Sprintf(
		"Osakedata (viimeiset %d päivää):\n%s\n\nViime viikon ennusteiden vertailu:\n%s\n\nSentimenttipisteet: %s\n\nMarkkinasuositus: %s\n",
		o.cfg.History.Rows,
		history,
		comparison,
		label,
		suggestion,
	)
}
