package interfaces

import (
	"context"

	"github.com/Danypoz1986/StockBot/internal/types"
)

type Orchestrator interface {
	Run(ctx context.Context) (*types.RunResult, error)
}
