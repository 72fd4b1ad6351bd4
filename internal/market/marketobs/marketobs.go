package marketobs

import (
	"context"

	"github.com/Danypoz1986/StockBot/internal/interfaces"
	"github.com/Danypoz1986/StockBot/internal/logger"
	"github.com/Danypoz1986/StockBot/internal/trace"
	"github.com/Danypoz1986/StockBot/internal/types"
)

type observablePriceSource struct {
	source interfaces.PriceSource
}

var _ interfaces.PriceSource = (*observablePriceSource)(nil)

func Wrap(source interfaces.PriceSource) interfaces.PriceSource {
	return &observablePriceSource{
		source: source,
	}
}

func (ops *observablePriceSource) RecentBars(ctx context.Context, ticker string, n int) ([]types.Candle, error) {
	ctx, span := trace.StartSpan(ctx, "market.RecentBars")
	defer span.End()

	bars, err := ops.source.RecentBars(ctx, ticker, n)
	if err != nil {
		logger.ErrorWithErrSkip(ctx, 1, "Failed to fetch price history", err,
			"ticker", ticker,
			"requested", n,
		)
		return nil, err
	}

	logger.DebugSkip(ctx, 1, "Price history fetched",
		"ticker", ticker,
		"bars", len(bars),
	)

	return bars, nil
}

func (ops *observablePriceSource) LatestClose(ctx context.Context, ticker string) (float64, error) {
	ctx, span := trace.StartSpan(ctx, "market.LatestClose")
	defer span.End()

	price, err := ops.source.LatestClose(ctx, ticker)
	if err != nil {
		logger.ErrorWithErrSkip(ctx, 1, "Failed to fetch latest close", err,
			"ticker", ticker,
		)
		return 0, err
	}

	logger.DebugSkip(ctx, 1, "Latest close fetched",
		"ticker", ticker,
		"close", price,
	)

	return price, nil
}
