package compare

import (
	"fmt"

	"github.com/Danypoz1986/StockBot/internal/interfaces"
	"github.com/Danypoz1986/StockBot/internal/types"
)

// DirectionalMatch judges whether the recorded suggestion called the realized
// price direction: Osta is correct when the price rose, Myy when it fell,
// Pidä when the move stayed inside the hold band (absolute, not percentage).
type DirectionalMatch struct {
	HoldBand float64
}

var _ interfaces.VerdictPolicy = (*DirectionalMatch)(nil)

func NewDirectionalMatch(holdBand float64) *DirectionalMatch {
	if holdBand <= 0 {
		holdBand = 0.5
	}
	return &DirectionalMatch{HoldBand: holdBand}
}

func (p *DirectionalMatch) Name() string { return "directional" }

func (p *DirectionalMatch) Judge(ticker, displayName string, prev types.Snapshot, curClose float64) (types.Verdict, *types.ThresholdAlert) {
	v := types.Verdict{
		Ticker:      ticker,
		DisplayName: displayName,
		Direction:   direction(prev.Close, curClose),
	}

	diff := curClose - prev.Close
	switch {
	case prev.Suggestion == types.SuggestionBuy && curClose > prev.Close:
		v.Correct = true
	case prev.Suggestion == types.SuggestionSell && curClose < prev.Close:
		v.Correct = true
	case prev.Suggestion == types.SuggestionHold && abs(diff) < p.HoldBand:
		v.Correct = true
	}

	if v.Correct {
		v.Detail = fmt.Sprintf("%s: Ennuste oli oikea (%s).", displayName, prev.Suggestion)
	} else {
		moved := "laski"
		if curClose > prev.Close {
			moved = "nousi"
		}
		v.Detail = fmt.Sprintf("%s: Ennuste oli väärä (Ennustettu %s, mutta hinta %s).", displayName, prev.Suggestion, moved)
	}

	return v, nil
}

func direction(prev, cur float64) types.Direction {
	switch {
	case cur > prev:
		return types.DirectionRose
	case cur < prev:
		return types.DirectionFell
	default:
		return types.DirectionStable
	}
}

func abs(f float64) float64 {
	if f < 0 {
		return -f
	}
	return f
}
