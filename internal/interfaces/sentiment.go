package interfaces

import (
	"context"

	"github.com/Danypoz1986/StockBot/internal/types"
)

// SentimentSource produces the global market signal for one run. The query is
// market-wide, not per ticker, so implementations are expected to cache within
// a run.
type SentimentSource interface {
	MarketSentiment(ctx context.Context) (types.Sentiment, error)
}
