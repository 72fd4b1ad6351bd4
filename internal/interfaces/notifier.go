package interfaces

import "context"

type Notifier interface {
	Send(ctx context.Context, subject, body string, recipients []string) error
}
