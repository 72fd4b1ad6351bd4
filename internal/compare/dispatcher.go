package compare

import (
	"context"
	"fmt"

	"github.com/Danypoz1986/StockBot/internal/interfaces"
	"github.com/Danypoz1986/StockBot/internal/logger"
	"github.com/Danypoz1986/StockBot/internal/types"
)

// AlertDispatcher sends one immediate notification per threshold breach,
// independent of the end-of-run summary. Consecutive runs past the threshold
// alert again each time; there is no cross-run de-duplication.
type AlertDispatcher struct {
	notifier   interfaces.Notifier
	recipients []string
}

func NewAlertDispatcher(notifier interfaces.Notifier, recipients []string) *AlertDispatcher {
	return &AlertDispatcher{
		notifier:   notifier,
		recipients: recipients,
	}
}

// Dispatch sends the alert message. Failure is logged and returned but never
// interrupts the run.
func (d *AlertDispatcher) Dispatch(ctx context.Context, alert types.ThresholdAlert) error {
	logger.Alert(ctx, alert.Ticker, alert.Direction, alert.PctChange,
		"prev_close", alert.PrevClose,
		"cur_close", alert.CurClose,
	)

	subject := fmt.Sprintf("Tärkeä ilmoitus: %s osake on %s", alert.DisplayName, alert.Direction)
	body := fmt.Sprintf(
		"Yritys: %s\nEdellinen Close: %.2f\nNykyinen Close: %.2f\nMuutosprosentti: %.2f%%\nOsake on %s merkittävästi.",
		alert.DisplayName, alert.PrevClose, alert.CurClose, alert.PctChange, shortDirection(alert.Direction),
	)

	if err := d.notifier.Send(ctx, subject, body, d.recipients); err != nil {
		logger.ErrorWithErr(ctx, "Failed to send threshold alert", err, "ticker", alert.Ticker)
		return err
	}
	return nil
}

func shortDirection(direction string) string {
	switch direction {
	case "noussut merkittävästi":
		return "noussut"
	case "laskenut merkittävästi":
		return "laskenut"
	default:
		return direction
	}
}
