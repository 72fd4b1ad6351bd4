package interfaces

import (
	"github.com/Danypoz1986/StockBot/internal/types"
)

// VerdictPolicy judges one previous snapshot against the freshly fetched
// close. The returned alert is nil unless the policy decided an immediate
// notification must fire for this ticker.
type VerdictPolicy interface {
	Judge(ticker, displayName string, prev types.Snapshot, curClose float64) (types.Verdict, *types.ThresholdAlert)
	Name() string
}
