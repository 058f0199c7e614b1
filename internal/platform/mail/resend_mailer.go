// Package mail sends account emails through Resend.
package mail

import (
	"context"
	"errors"
	"log/slog"

	"github.com/resend/resend-go/v2"
)

// ErrNotConfigured is returned when sending outside dev mode without an API key.
var ErrNotConfigured = errors.New("email service not configured (missing RESEND_API_KEY)")

// Mailer delivers verification and welcome emails.
// In dev mode nothing is sent; the message is logged instead.
type Mailer struct {
	client    *resend.Client
	from      string
	clientURL string
	isDev     bool
}

// NewMailer creates a Mailer. A Resend client is built only when apiKey is set and isDev is false.
func NewMailer(apiKey, from, clientURL string, isDev bool) *Mailer {
	var client *resend.Client
	if apiKey != "" && !isDev {
		client = resend.NewClient(apiKey)
	}
	return &Mailer{client: client, from: from, clientURL: clientURL, isDev: isDev}
}

// SendVerificationCode mails a six digit code.
func (m *Mailer) SendVerificationCode(ctx context.Context, to, code string) error {
	subject, text, html := verificationCodeTemplate(code)
	if m.isDev {
		slog.Info("email sent (dev mode)", "type", "verification_code", "to", to, "code", code)
		return nil
	}
	return m.send(ctx, "verification_code", &resend.SendEmailRequest{
		From:    m.from,
		To:      []string{to},
		Subject: subject,
		Text:    text,
		Html:    html,
	})
}

// SendWelcome mails the greeting sent after verification.
func (m *Mailer) SendWelcome(ctx context.Context, to, name string) error {
	subject, text := welcomeTemplate(name, m.clientURL)
	if m.isDev {
		slog.Info("email sent (dev mode)", "type", "welcome", "to", to, "subject", subject)
		return nil
	}
	return m.send(ctx, "welcome", &resend.SendEmailRequest{
		From:    m.from,
		To:      []string{to},
		Subject: subject,
		Text:    text,
	})
}

func (m *Mailer) send(ctx context.Context, kind string, params *resend.SendEmailRequest) error {
	if m.client == nil {
		return ErrNotConfigured
	}
	sent, err := m.client.Emails.SendWithContext(ctx, params)
	if err != nil {
		return err
	}
	slog.Info("email sent", "type", kind, "to", params.To, "id", sent.Id)
	return nil
}
