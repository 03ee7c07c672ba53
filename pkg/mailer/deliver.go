package mailer

import (
	"context"
	"encoding/json"

	"github.com/pkg/errors"

	"github.com/saffco/skincare-backend/internal/domain/service"
)

// ErrPermanent marks a queue message that can never be delivered and must not be requeued.
var ErrPermanent = errors.New("permanent delivery failure")

// Deliver decodes one queued notification, renders it and hands it to sender.
// Malformed or unrenderable messages are wrapped with ErrPermanent; send
// failures are returned as-is so the caller can requeue.
func Deliver(ctx context.Context, body []byte, sender Sender, brand Brand) error {
	var n service.Notification
	if err := json.Unmarshal(body, &n); err != nil {
		return errors.Wrapf(ErrPermanent, "decode notification: %v", err)
	}
	if n.To == "" {
		return errors.Wrap(ErrPermanent, "notification has no recipient")
	}
	msg, err := Render(n, brand)
	if err != nil {
		return errors.Wrapf(ErrPermanent, "render %s: %v", n.Type, err)
	}
	if err := sender.Send(ctx, n.To, msg); err != nil {
		return errors.Wrapf(err, "send %s to %s", n.Type, n.To)
	}
	return nil
}
