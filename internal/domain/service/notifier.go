package service

import "context"

const (
	NotifyPasswordChanged = "password_changed"
	NotifyProfileUpdated  = "profile_updated"
)

// Notification is an account event delivered out of band (email).
type Notification struct {
	Type     string            `json:"type"`
	To       string            `json:"to"`
	Username string            `json:"username"`
	Changes  map[string]string `json:"changes,omitempty"`
}

// Notifier hands notifications to a queue. Failures never fail the request.
type Notifier interface {
	Notify(ctx context.Context, n Notification) error
}
