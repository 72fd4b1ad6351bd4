package predobs

import (
	"context"
	"errors"

	"github.com/Danypoz1986/StockBot/internal/interfaces"
	"github.com/Danypoz1986/StockBot/internal/logger"
	"github.com/Danypoz1986/StockBot/internal/predictions"
	"github.com/Danypoz1986/StockBot/internal/trace"
	"github.com/Danypoz1986/StockBot/internal/types"
)

type observableStore struct {
	store interfaces.PredictionStore
}

var _ interfaces.PredictionStore = (*observableStore)(nil)

func Wrap(store interfaces.PredictionStore) interfaces.PredictionStore {
	return &observableStore{
		store: store,
	}
}

func (os *observableStore) Load(ctx context.Context) (*types.State, error) {
	ctx, span := trace.StartSpan(ctx, "predictions.Load")
	defer span.End()

	st, err := os.store.Load(ctx)
	if err != nil {
		if errors.Is(err, predictions.ErrNoSnapshot) {
			logger.InfoSkip(ctx, 1, "No previous predictions to compare")
			return nil, err
		}
		logger.ErrorWithErrSkip(ctx, 1, "Failed to load predictions", err)
		return nil, err
	}

	logger.InfoSkip(ctx, 1, "Previous predictions loaded",
		"tickers", len(st.Predictions),
		"last_sent_date", st.LastSentDate,
	)

	return st, nil
}

func (os *observableStore) Save(ctx context.Context, st *types.State) error {
	ctx, span := trace.StartSpan(ctx, "predictions.Save")
	defer span.End()

	if err := os.store.Save(ctx, st); err != nil {
		logger.ErrorWithErrSkip(ctx, 1, "Failed to save predictions", err,
			"tickers", len(st.Predictions),
		)
		return err
	}

	logger.InfoSkip(ctx, 1, "Predictions saved",
		"tickers", len(st.Predictions),
		"last_sent_date", st.LastSentDate,
	)

	return nil
}
