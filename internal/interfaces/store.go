package interfaces

import (
	"context"

	"github.com/Danypoz1986/StockBot/internal/types"
)

// PredictionStore persists the run state as a single unit. Save replaces the
// whole state; Load returns predictions.ErrNoSnapshot when nothing has been
// saved yet.
type PredictionStore interface {
	Load(ctx context.Context) (*types.State, error)
	Save(ctx context.Context, st *types.State) error
}
