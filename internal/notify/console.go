package notify

import (
	"context"

	"github.com/Danypoz1986/StockBot/internal/interfaces"
	"github.com/Danypoz1986/StockBot/internal/logger"
)

// ConsoleNotifier logs messages instead of sending them. Used for dev runs
// and as the default when no mail backend is configured.
type ConsoleNotifier struct{}

var _ interfaces.Notifier = (*ConsoleNotifier)(nil)

func NewConsoleNotifier() *ConsoleNotifier {
	return &ConsoleNotifier{}
}

func (n *ConsoleNotifier) Send(ctx context.Context, subject, body string, recipients []string) error {
	logger.Info(ctx, "Notification (console backend)",
		"subject", subject,
		"recipients", recipients,
		"body_bytes", len(body),
	)
	return nil
}
