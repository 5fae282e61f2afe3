package mailer_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/linkist/founders-club-api/config"
	"github.com/linkist/founders-club-api/mailer"
)

func TestSendgridSenderMissingAPIKey(t *testing.T) {
	sender := mailer.NewSendgridSender(&config.Config{
		MailFromName:    "Linkist",
		MailFromAddress: "no-reply@linkist.com",
	})

	err := sender.Send(context.Background(), mailer.Message{
		ToEmail: "jane@x.com",
		Subject: "test",
	})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "SENDGRID_API_KEY")
}
