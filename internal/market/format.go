package market

import (
	"fmt"
	"strings"
	"time"

	"github.com/Danypoz1986/StockBot/internal/types"
)

// FormatHistory renders one company block of the report: name, a
// Date/Open/High/Low/Close header and up to maxRows most-recent daily rows
// with two-decimal prices. Column widths match the layout recipients have
// been receiving.
func FormatHistory(name string, candles []types.Candle, maxRows int) string {
	if maxRows <= 0 {
		maxRows = 5
	}
	if len(candles) > maxRows {
		candles = candles[len(candles)-maxRows:]
	}

	var b strings.Builder
	fmt.Fprintf(&b, "\n\n%s:\n\n", name)
	fmt.Fprintf(&b, "%-25s %-10s %-10s %-10s %-10s\n", "Date", "Open", "High", "Low", "Close")
	for _, c := range candles {
		date := time.Unix(c.Ts, 0).UTC().Format("2006-01-02")
		fmt.Fprintf(&b, "%-25s %-10.2f %-10.2f %-10.2f %-10.2f\n", date, c.Open, c.High, c.Low, c.Close)
	}
	return b.String()
}
