package adapter

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-airbnb-api/internal/config"
	"github.com/MKhiriev/go-airbnb-api/internal/logger"
	"github.com/MKhiriev/go-airbnb-api/internal/utils"
)

const mailgunMessagesPath = "/v3/{domain}/messages"

// MailgunMailer sends mails through the Mailgun messages API.
type MailgunMailer struct {
	client *utils.HTTPClient
	domain string
	sender string

	logger *logger.Logger
}

func NewMailgunMailer(cfg config.Mailgun, timeout time.Duration, log *logger.Logger) (*MailgunMailer, error) {
	client, err := newRESTClient(cfg.BaseURL, timeout)
	if err != nil {
		return nil, err
	}
	client.SetBasicAuth("api", cfg.APIKey)

	sender := cfg.Sender
	if sender == "" {
		sender = "Airbnb <no-reply@" + cfg.Domain + ">"
	}

	return &MailgunMailer{
		client: client,
		domain: cfg.Domain,
		sender: sender,
		logger: log,
	}, nil
}

func (m *MailgunMailer) Send(ctx context.Context, mail Mail) error {
	resp, err := m.client.R().
		SetContext(ctx).
		SetPathParam("domain", m.domain).
		SetFormData(map[string]string{
			"from":    m.sender,
			"to":      mail.To,
			"subject": mail.Subject,
			"text":    mail.Text,
		}).
		Post(mailgunMessagesPath)
	if err != nil {
		m.logger.Err(err).Str("func", "MailgunMailer.Send").Msg("mailgun request failed")
		return fmt.Errorf("%w: %w", ErrMailNotSent, err)
	}
	if err = mapHTTPError(resp); err != nil {
		m.logger.Err(err).Str("func", "MailgunMailer.Send").Int("status", resp.StatusCode()).Msg("mailgun rejected message")
		return fmt.Errorf("%w: %w", ErrMailNotSent, err)
	}

	return nil
}

// LogMailer writes mails to the log. It stands in for Mailgun in
// development setups. The text may carry a reset token, so it is only
// written at debug level.
type LogMailer struct {
	logger *logger.Logger
}

func NewLogMailer(log *logger.Logger) *LogMailer {
	return &LogMailer{logger: log}
}

func (m *LogMailer) Send(ctx context.Context, mail Mail) error {
	m.logger.Info().
		Str("to", mail.To).
		Str("subject", mail.Subject).
		Msg("mail")
	m.logger.Debug().
		Str("to", mail.To).
		Str("text", mail.Text).
		Msg("mail text")
	return nil
}
