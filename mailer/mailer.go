package mailer

// go generate: mockery --name Sender

import (
	"context"
	"errors"
	"fmt"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
	"go.uber.org/zap"

	"github.com/linkist/founders-club-api/config"
)

// Message is a single transactional email
type Message struct {
	ToName    string
	ToEmail   string
	Subject   string
	PlainText string
	HTML      string
}

// Sender sends transactional email. Constructed once at startup and injected into
// the handlers and scheduler that need it.
type Sender interface {
	Send(ctx context.Context, msg Message) error
}

type sendgridSender struct {
	apiKey      string
	fromName    string
	fromAddress string
}

// NewSendgridSender returns a Sender backed by SendGrid using the config values
func NewSendgridSender(conf *config.Config) Sender {
	return &sendgridSender{
		apiKey:      conf.SendgridAPIKey,
		fromName:    conf.MailFromName,
		fromAddress: conf.MailFromAddress,
	}
}

func (s *sendgridSender) Send(ctx context.Context, msg Message) error {
	if s.apiKey == "" {
		return errors.New("SENDGRID_API_KEY not set, cannot send email")
	}

	from := mail.NewEmail(s.fromName, s.fromAddress)
	to := mail.NewEmail(msg.ToName, msg.ToEmail)
	message := mail.NewSingleEmail(from, msg.Subject, to, msg.PlainText, msg.HTML)

	client := sendgrid.NewSendClient(s.apiKey)
	response, err := client.SendWithContext(ctx, message)
	if err != nil {
		zap.S().Errorw("failed to send email", "error", err, "to", msg.ToEmail)
		return err
	}
	if response.StatusCode >= 400 {
		zap.S().Errorw("sendgrid returned error status", "status", response.StatusCode, "body", response.Body, "to", msg.ToEmail)
		return fmt.Errorf("sendgrid error: status %d", response.StatusCode)
	}
	zap.S().Infow("email sent successfully", "to", msg.ToEmail, "subject", msg.Subject)
	return nil
}
