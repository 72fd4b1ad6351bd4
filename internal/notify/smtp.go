package notify

import (
	"context"
	"fmt"

	"gopkg.in/gomail.v2"

	"github.com/Danypoz1986/StockBot/internal/interfaces"
)

// SMTPNotifier sends plain-text mail over implicit TLS (Gmail port 465).
type SMTPNotifier struct {
	host     string
	port     int
	sender   string
	password string
}

var _ interfaces.Notifier = (*SMTPNotifier)(nil)

func NewSMTPNotifier(host string, port int, sender, password string) *SMTPNotifier {
	return &SMTPNotifier{
		host:     host,
		port:     port,
		sender:   sender,
		password: password,
	}
}

func (n *SMTPNotifier) Send(ctx context.Context, subject, body string, recipients []string) error {
	if len(recipients) == 0 {
		return fmt.Errorf("no recipients configured")
	}
	if n.password == "" {
		return fmt.Errorf("smtp password is not set")
	}

	m := gomail.NewMessage()
	m.SetHeader("From", n.sender)
	m.SetHeader("To", recipients...)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain; charset=UTF-8", body)

	d := gomail.NewDialer(n.host, n.port, n.sender, n.password)
	d.SSL = n.port == 465

	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("send mail: %w", err)
	}
	return nil
}
