// Package notify is the outbound notification seam. The reset flow hands the
// raw reset token to exactly one collaborator: the Mailer.
package notify

import (
	"context"
	"log"
)

// Mailer dispatches password-reset notifications.
type Mailer interface {
	SendPasswordReset(ctx context.Context, email, token string) error
}

// LogMailer writes reset notifications to the process log instead of
// sending mail. Suitable for development and tests only.
type LogMailer struct{}

func NewLogMailer() *LogMailer {
	return &LogMailer{}
}

func (m *LogMailer) SendPasswordReset(_ context.Context, email, token string) error {
	log.Printf("password reset requested for %s: token=%s", email, token)
	return nil
}
