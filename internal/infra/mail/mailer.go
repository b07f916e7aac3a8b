// Package mail sends transactional email through MailerSend.
package mail

import (
	"context"
	"fmt"

	"github.com/mailersend/mailersend-go"
)

const (
	fromName    = "EducaHub"
	fromAddress = "no-reply@educahub.app"
	resetURL    = "https://educahub.app/reset/"
)

// Mailer delivers transactional email. The worker depends on this interface so
// tests can stub delivery.
type Mailer interface {
	// SendResetToken mails the password-reset link for token to email.
	SendResetToken(ctx context.Context, email, token string) error
}

// MailerSend implements Mailer on the MailerSend API.
type MailerSend struct {
	client *mailersend.Mailersend
}

func NewMailerSend(apiKey string) (*MailerSend, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("mail: MailerSend API key is not configured")
	}
	return &MailerSend{client: mailersend.NewMailersend(apiKey)}, nil
}

func (m *MailerSend) SendResetToken(ctx context.Context, email, token string) error {
	link := resetURL + token
	body := "Restablece tu contraseña aquí: " + link

	message := m.client.Email.NewMessage()
	message.SetFrom(mailersend.From{Name: fromName, Email: fromAddress})
	message.SetRecipients([]mailersend.Recipient{{Email: email}})
	message.SetSubject("Restablece tu contraseña de EducaHub")
	message.SetHTML(body)
	message.SetText(body)

	if _, err := m.client.Email.Send(ctx, message); err != nil {
		return fmt.Errorf("mail: send reset token: %w", err)
	}
	return nil
}
