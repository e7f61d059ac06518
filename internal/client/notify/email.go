package notify

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/resend/resend-go/v2"
	"go.uber.org/zap"
)

// EmailSender is the part of the Resend emails service the alerter needs
type EmailSender interface {
	Send(params *resend.SendEmailRequest) (*resend.SendEmailResponse, error)
}

// EmailAlerter sends operator alerts by email through Resend
type EmailAlerter struct {
	emails EmailSender
	from   string
	to     []string
	logger *zap.Logger
}

// NewEmailAlerter creates an alerter using a Resend API key
func NewEmailAlerter(apiKey, from string, to []string, logger *zap.Logger) *EmailAlerter {
	client := resend.NewClient(apiKey)
	return NewEmailAlerterWithSender(client.Emails, from, to, logger)
}

func NewEmailAlerterWithSender(emails EmailSender, from string, to []string, logger *zap.Logger) *EmailAlerter {
	return &EmailAlerter{emails: emails, from: from, to: to, logger: logger}
}

func (a *EmailAlerter) Alert(_ context.Context, subject, body string) error {
	sent, err := a.emails.Send(&resend.SendEmailRequest{
		From:    a.from,
		To:      a.to,
		Subject: subject,
		Text:    body,
		Headers: map[string]string{
			"X-Entity-Ref-ID": uuid.New().String(),
		},
		Tags: []resend.Tag{
			{Name: "category", Value: "operator_alert"},
		},
	})
	if err != nil {
		a.logger.Error("failed to send operator alert",
			zap.Error(err),
			zap.Strings("to", a.to),
			zap.String("subject", subject))
		return fmt.Errorf("failed to send email: %w", err)
	}

	a.logger.Info("operator alert sent",
		zap.String("email_id", sent.Id),
		zap.String("subject", subject))
	return nil
}
