// Package email provides email sending functionality.
package email

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/resend/resend-go/v2"

	"github.com/fundflow/backend/config"
	"github.com/fundflow/backend/internal/application/adapter"
	domainerror "github.com/fundflow/backend/internal/domain/error"
)

// ResendClient delivers queued emails through the Resend API.
type ResendClient struct {
	client *resend.Client
	from   string
}

// NewResendClient creates a Resend-backed sender from the email configuration.
func NewResendClient(cfg config.EmailConfig) *ResendClient {
	return &ResendClient{
		client: resend.NewClient(cfg.ResendAPIKey),
		from:   fmt.Sprintf("%s <%s>", cfg.FromName, cfg.FromEmail),
	}
}

// Send delivers a single email. Failures are classified so the worker knows
// whether the job may be retried.
func (c *ResendClient) Send(ctx context.Context, input adapter.SendEmailInput) (*adapter.SendEmailResult, error) {
	resp, err := c.client.Emails.SendWithContext(ctx, &resend.SendEmailRequest{
		From:    c.from,
		To:      []string{input.To},
		Subject: input.Subject,
		Html:    input.HTML,
		Text:    input.Text,
	})
	if err != nil {
		slog.Warn("Email delivery failed",
			"to", input.To,
			"subject", input.Subject,
			"error", err,
		)
		if isRejectedByProvider(err) {
			return nil, domainerror.NewEmailError(
				domainerror.ErrCodePermanentEmailFailure,
				"permanent email failure",
				err,
			)
		}
		return nil, domainerror.NewEmailError(
			domainerror.ErrCodeTemporaryEmailFailure,
			"temporary email failure",
			err,
		)
	}

	return &adapter.SendEmailResult{ResendID: resp.Id}, nil
}

// isRejectedByProvider reports whether Resend rejected the request outright.
// Rejections (bad credentials, validation failures) must not be retried;
// rate limits and server errors may be.
func isRejectedByProvider(err error) bool {
	msg := strings.ToLower(err.Error())
	for _, marker := range []string{
		"401", "403", "422",
		"unauthorized", "forbidden", "validation", "invalid", "bad request",
	} {
		if strings.Contains(msg, marker) {
			return true
		}
	}
	return false
}

var _ adapter.EmailSender = (*ResendClient)(nil)
