package notify

import (
	"context"
	"fmt"
	"html"
	"time"

	"github.com/Danypoz1986/StockBot/internal/api"
	"github.com/Danypoz1986/StockBot/internal/interfaces"
)

const resendBaseURL = "https://api.resend.com"

// ResendNotifier sends mail through the Resend HTTP API. The plain-text body
// is wrapped in a monospace <pre> block so the fixed-width report columns
// survive HTML rendering.
type ResendNotifier struct {
	sender string
	client *api.Client
}

var _ interfaces.Notifier = (*ResendNotifier)(nil)

func NewResendNotifier(apiKey, sender string) *ResendNotifier {
	return &ResendNotifier{
		sender: sender,
		client: api.NewClient(
			api.WithBaseURL(resendBaseURL),
			api.WithTimeout(20*time.Second),
			api.WithHeader("Authorization", "Bearer "+apiKey),
			api.WithLogging(true),
		),
	}
}

type resendRequest struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	HTML    string   `json:"html"`
}

func (n *ResendNotifier) Send(ctx context.Context, subject, body string, recipients []string) error {
	if len(recipients) == 0 {
		return fmt.Errorf("no recipients configured")
	}

	htmlBody := "<pre style=\"font: 14px/1.4 ui-monospace, SFMono-Regular, Menlo, Monaco, Consolas, monospace; white-space: pre-wrap;\">" +
		html.EscapeString(body) + "</pre>"

	req := api.NewRequest("POST", "/emails").
		WithContext(ctx).
		WithBody(resendRequest{
			From:    n.sender,
			To:      recipients,
			Subject: subject,
			HTML:    htmlBody,
		})

	if _, err := n.client.Do(req); err != nil {
		return fmt.Errorf("resend: %w", err)
	}
	return nil
}
