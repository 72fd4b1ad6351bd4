package market

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"net/url"
	"time"

	"github.com/Danypoz1986/StockBot/internal/api"
	"github.com/Danypoz1986/StockBot/internal/interfaces"
	"github.com/Danypoz1986/StockBot/internal/types"
)

const defaultBaseURL = "https://query1.finance.yahoo.com"

type Params struct {
	DataSource string // STATIC or LIVE
	BaseURL    string
	Lookback   int // days of history requested from the chart API
}

// Yahoo serves daily OHLC bars from the Yahoo Finance chart API, or from a
// deterministic in-process generator when DataSource is STATIC.
type Yahoo struct {
	p      Params
	client *api.Client
}

var _ interfaces.PriceSource = (*Yahoo)(nil)

func New(p Params) *Yahoo {
	if p.BaseURL == "" {
		p.BaseURL = defaultBaseURL
	}
	if p.Lookback <= 0 {
		p.Lookback = 30
	}
	return &Yahoo{
		p: p,
		client: api.NewClient(
			api.WithBaseURL(p.BaseURL),
			api.WithTimeout(20*time.Second),
			api.WithHeader("User-Agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"),
			api.WithLogging(true),
		),
	}
}

// chartResponse mirrors the subset of the v8 chart payload the bot reads.
type chartResponse struct {
	Chart struct {
		Result []struct {
			Timestamp  []int64 `json:"timestamp"`
			Indicators struct {
				Quote []struct {
					Open   []*float64 `json:"open"`
					High   []*float64 `json:"high"`
					Low    []*float64 `json:"low"`
					Close  []*float64 `json:"close"`
					Volume []*float64 `json:"volume"`
				} `json:"quote"`
			} `json:"indicators"`
		} `json:"result"`
		Error *struct {
			Code        string `json:"code"`
			Description string `json:"description"`
		} `json:"error"`
	} `json:"chart"`
}

func (y *Yahoo) RecentBars(ctx context.Context, ticker string, n int) ([]types.Candle, error) {
	if y.p.DataSource == "LIVE" {
		return y.fetchLiveBars(ctx, ticker, n)
	}
	return y.staticBars(ticker, n), nil
}

func (y *Yahoo) LatestClose(ctx context.Context, ticker string) (float64, error) {
	bars, err := y.RecentBars(ctx, ticker, 5)
	if err != nil {
		return 0, err
	}
	if len(bars) == 0 {
		return 0, fmt.Errorf("no bars for %s", ticker)
	}
	return bars[len(bars)-1].Close, nil
}

func (y *Yahoo) fetchLiveBars(ctx context.Context, ticker string, n int) ([]types.Candle, error) {
	path := fmt.Sprintf("/v8/finance/chart/%s?range=%dd&interval=1d", url.PathEscape(ticker), y.p.Lookback)

	var cr chartResponse
	if err := y.client.DoJSON(api.NewRequest("GET", path).WithContext(ctx), &cr); err != nil {
		return nil, fmt.Errorf("chart request for %s: %w", ticker, err)
	}
	if cr.Chart.Error != nil {
		return nil, fmt.Errorf("chart error for %s: %s", ticker, cr.Chart.Error.Description)
	}
	if len(cr.Chart.Result) == 0 || len(cr.Chart.Result[0].Indicators.Quote) == 0 {
		return nil, errors.New("empty chart result for " + ticker)
	}

	res := cr.Chart.Result[0]
	quote := res.Indicators.Quote[0]

	// Rows with null quotes (market holidays, suspended sessions) are skipped.
	cs := make([]types.Candle, 0, len(res.Timestamp))
	for i, ts := range res.Timestamp {
		if i >= len(quote.Close) || quote.Close[i] == nil {
			continue
		}
		c := types.Candle{Ts: ts, Close: *quote.Close[i]}
		if i < len(quote.Open) && quote.Open[i] != nil {
			c.Open = *quote.Open[i]
		}
		if i < len(quote.High) && quote.High[i] != nil {
			c.High = *quote.High[i]
		}
		if i < len(quote.Low) && quote.Low[i] != nil {
			c.Low = *quote.Low[i]
		}
		if i < len(quote.Volume) && quote.Volume[i] != nil {
			c.Vol = *quote.Volume[i]
		}
		cs = append(cs, c)
	}

	if len(cs) == 0 {
		return nil, errors.New("no usable bars for " + ticker)
	}
	if n > 0 && len(cs) > n {
		cs = cs[len(cs)-n:]
	}
	return cs, nil
}

// staticBars generates plausible daily bars for dev and test runs, seeded per
// ticker so repeated calls within a process stay consistent.
func (y *Yahoo) staticBars(ticker string, n int) []types.Candle {
	if n <= 0 {
		n = 5
	}
	var seed int64
	for _, r := range ticker {
		seed = seed*31 + int64(r)
	}
	rnd := rand.New(rand.NewSource(seed))

	base := 10 + rnd.Float64()*90
	now := time.Now()
	cs := make([]types.Candle, 0, n)
	for i := n; i > 0; i-- {
		day := now.AddDate(0, 0, -i)
		c := base + (rnd.Float64()-0.5)*2
		h := c + rnd.Float64()
		l := c - rnd.Float64()
		cs = append(cs, types.Candle{
			Ts:    time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, time.UTC).Unix(),
			Open:  c - 0.2,
			High:  h,
			Low:   l,
			Close: c,
			Vol:   rnd.Float64() * 100000,
		})
		base = c
	}
	return cs
}
