package compare

import (
	"fmt"

	"github.com/Danypoz1986/StockBot/internal/interfaces"
	"github.com/Danypoz1986/StockBot/internal/types"
)

// ThresholdMagnitude does not judge directional correctness at all. It flags
// moves whose percentage change exceeds the threshold in either direction and
// treats everything inside the band as "held as predicted". Moves landing
// exactly on the boundary do not alert.
type ThresholdMagnitude struct {
	ThresholdPct float64
}

var _ interfaces.VerdictPolicy = (*ThresholdMagnitude)(nil)

func NewThresholdMagnitude(thresholdPct float64) *ThresholdMagnitude {
	if thresholdPct <= 0 {
		thresholdPct = 5.0
	}
	return &ThresholdMagnitude{ThresholdPct: thresholdPct}
}

func (p *ThresholdMagnitude) Name() string { return "threshold" }

func (p *ThresholdMagnitude) Judge(ticker, displayName string, prev types.Snapshot, curClose float64) (types.Verdict, *types.ThresholdAlert) {
	v := types.Verdict{
		Ticker:      ticker,
		DisplayName: displayName,
	}

	// A zero previous close makes the percentage undefined. Fail closed:
	// report missing data, never alert.
	if prev.Close == 0 {
		v.Direction = types.DirectionUnknown
		v.Detail = fmt.Sprintf("%s: Ei dataa vertailuun.", displayName)
		return v, nil
	}

	pct := (curClose - prev.Close) / prev.Close * 100

	switch {
	case pct > p.ThresholdPct:
		v.Direction = types.DirectionRose
		v.Detail = fmt.Sprintf("%s: Osake on noussut merkittävästi (Muutos: +%.2f%%).", displayName, pct)
		return v, &types.ThresholdAlert{
			Ticker:      ticker,
			DisplayName: displayName,
			Direction:   "noussut merkittävästi",
			PrevClose:   prev.Close,
			CurClose:    curClose,
			PctChange:   pct,
		}
	case pct < -p.ThresholdPct:
		v.Direction = types.DirectionFell
		v.Detail = fmt.Sprintf("%s: Osake on laskenut merkittävästi (Muutos: %.2f%%).", displayName, pct)
		return v, &types.ThresholdAlert{
			Ticker:      ticker,
			DisplayName: displayName,
			Direction:   "laskenut merkittävästi",
			PrevClose:   prev.Close,
			CurClose:    curClose,
			PctChange:   pct,
		}
	default:
		v.Correct = true
		v.Direction = types.DirectionStable
		v.Detail = fmt.Sprintf("%s: Ennuste oli oikea (Pidä).", displayName)
		return v, nil
	}
}
