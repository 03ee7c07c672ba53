package mailer

import (
	"context"
	"net/http"
	"time"

	mg "github.com/mailgun/mailgun-go/v4"
	"github.com/pkg/errors"
)

// Sender delivers a rendered email.
type Sender interface {
	Send(ctx context.Context, to string, msg Message) error
}

// Mailgun sends through the Mailgun HTTP API.
type Mailgun struct {
	client  *mg.MailgunImpl
	sender  string
	timeout time.Duration
}

func NewMailgun(domain, apiKey, sender string) *Mailgun {
	return &Mailgun{client: mg.NewMailgun(domain, apiKey), sender: sender, timeout: 10 * time.Second}
}

func (m *Mailgun) Send(ctx context.Context, to string, msg Message) error {
	message := m.client.NewMessage(m.sender, msg.Subject, msg.Text, to)
	if msg.HTML != "" {
		message.SetHtml(msg.HTML)
	}
	c, cancel := context.WithTimeout(ctx, m.timeout)
	defer cancel()
	_, _, err := m.client.Send(c, message)
	return classifySendError(err)
}

// classifySendError marks client errors from the API as permanent. Throttling
// and server errors stay retryable.
func classifySendError(err error) error {
	if err == nil {
		return nil
	}
	var resp *mg.UnexpectedResponseError
	if errors.As(err, &resp) && resp.Actual >= 400 && resp.Actual < 500 && resp.Actual != http.StatusTooManyRequests {
		return errors.Wrapf(ErrPermanent, "mailgun rejected message (status %d): %v", resp.Actual, err)
	}
	return err
}
