package compare

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/Danypoz1986/StockBot/internal/interfaces"
	"github.com/Danypoz1986/StockBot/internal/logger"
	"github.com/Danypoz1986/StockBot/internal/types"
)

// NoPriorMessage is the fixed report text for the first run, when there is
// no previous snapshot to compare against.
const NoPriorMessage = "Ei aiempia ennusteita vertailtavaksi."

// CloseFetcher resolves a ticker to its freshly observed closing price.
type CloseFetcher func(ctx context.Context, ticker string) (float64, error)

// Engine compares the previous run's snapshots against current closes and
// produces the per-ticker verdict lines of the report.
type Engine struct {
	companies  []types.Company
	policy     interfaces.VerdictPolicy
	dispatcher *AlertDispatcher
}

// New creates a comparison engine. dispatcher may be nil when the active
// policy never raises alerts.
func New(companies []types.Company, policy interfaces.VerdictPolicy, dispatcher *AlertDispatcher) *Engine {
	return &Engine{
		companies:  companies,
		policy:     policy,
		dispatcher: dispatcher,
	}
}

// CompareAll walks the previous snapshot set, fetches each ticker's current
// close and applies the verdict policy. One ticker's fetch failure never
// aborts the remaining comparisons. Returns the cumulative report text, the
// verdict list and the number of alerts dispatched.
func (e *Engine) CompareAll(ctx context.Context, prev types.SnapshotSet, fetch CloseFetcher) (string, []types.Verdict, int) {
	if len(prev) == 0 {
		return NoPriorMessage, nil, 0
	}

	var b strings.Builder
	verdicts := make([]types.Verdict, 0, len(prev))
	alerts := 0

	for _, ticker := range e.orderedTickers(prev) {
		snap := prev[ticker]
		name := e.displayName(ticker)

		cur, err := fetch(ctx, ticker)
		if err != nil {
			logger.Warn(ctx, "No current close for comparison", "ticker", ticker, "error", err)
			v := types.Verdict{
				Ticker:      ticker,
				DisplayName: name,
				Direction:   types.DirectionUnknown,
				Detail:      fmt.Sprintf("%s: Ei dataa vertailuun.", name),
			}
			verdicts = append(verdicts, v)
			b.WriteString(v.Detail + "\n")
			continue
		}

		v, alert := e.policy.Judge(ticker, name, snap, cur)
		logger.Verdict(ctx, ticker, v.Correct, string(v.Direction), v.Detail, "policy", e.policy.Name())

		if alert != nil && e.dispatcher != nil {
			if err := e.dispatcher.Dispatch(ctx, *alert); err == nil {
				alerts++
			}
		}

		verdicts = append(verdicts, v)
		b.WriteString(v.Detail + "\n")
	}

	return b.String(), verdicts, alerts
}

// orderedTickers returns the previous set's tickers in registry order, then
// any leftovers no longer in the registry in sorted order. Map iteration
// order would reshuffle the report between runs.
func (e *Engine) orderedTickers(prev types.SnapshotSet) []string {
	ordered := make([]string, 0, len(prev))
	used := make(map[string]bool, len(prev))
	for _, co := range e.companies {
		if _, ok := prev[co.Ticker]; ok {
			ordered = append(ordered, co.Ticker)
			used[co.Ticker] = true
		}
	}

	var rest []string
	for ticker := range prev {
		if !used[ticker] {
			rest = append(rest, ticker)
		}
	}
	sort.Strings(rest)

	return append(ordered, rest...)
}

// displayName resolves a ticker via the registry, falling back to the raw
// ticker for instruments that have been dropped from the configuration.
func (e *Engine) displayName(ticker string) string {
	for _, co := range e.companies {
		if co.Ticker == ticker {
			return co.Name
		}
	}
	return ticker
}
