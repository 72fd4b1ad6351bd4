package notify

import (
	"context"
	"strings"
	"testing"
)

func TestConsoleNotifierAlwaysSucceeds(t *testing.T) {
	n := NewConsoleNotifier()
	if err := n.Send(context.Background(), "subject", "body", []string{"a@example.com"}); err != nil {
		t.Fatalf("Console send failed: %v", err)
	}
	if err := n.Send(context.Background(), "subject", "body", nil); err != nil {
		t.Fatalf("Console send with no recipients failed: %v", err)
	}
}

func TestSMTPNotifierRejectsMissingConfig(t *testing.T) {
	ctx := context.Background()

	n := NewSMTPNotifier("smtp.gmail.com", 465, "bot@example.com", "secret")
	if err := n.Send(ctx, "s", "b", nil); err == nil || !strings.Contains(err.Error(), "recipients") {
		t.Errorf("Expected a no-recipients error, got: %v", err)
	}

	n = NewSMTPNotifier("smtp.gmail.com", 465, "bot@example.com", "")
	if err := n.Send(ctx, "s", "b", []string{"a@example.com"}); err == nil || !strings.Contains(err.Error(), "password") {
		t.Errorf("Expected a missing-password error, got: %v", err)
	}
}
