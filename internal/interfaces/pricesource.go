package interfaces

import (
	"context"

	"github.com/Danypoz1986/StockBot/internal/types"
)

type PriceSource interface {
	RecentBars(ctx context.Context, ticker string, n int) ([]types.Candle, error)
	LatestClose(ctx context.Context, ticker string) (float64, error)
}
