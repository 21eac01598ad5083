package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-airbnb-api/internal/adapter"
	"github.com/MKhiriev/go-airbnb-api/internal/app"
	"github.com/MKhiriev/go-airbnb-api/internal/config"
	"github.com/MKhiriev/go-airbnb-api/internal/logger"
	"github.com/MKhiriev/go-airbnb-api/internal/store"
	"github.com/MKhiriev/go-airbnb-api/internal/utils"
	"github.com/MKhiriev/go-airbnb-api/internal/validators"
	"github.com/MKhiriev/go-airbnb-api/models"
)

// resetTokenBytes is the entropy of a mailed reset token.
const resetTokenBytes = 32

// passwordResetService mails single-use reset tokens. Only the HMAC of a
// token is stored, so a leaked database row cannot be replayed.
type passwordResetService struct {
	accounts  store.AccountRepository
	mailer    adapter.Mailer
	validator validators.Validator

	tokenKey string
	tokenTTL time.Duration
	resetURL string
	now      func() time.Time

	logger *logger.Logger
}

func NewPasswordResetService(accounts store.AccountRepository, mailer adapter.Mailer, cfg config.App, logger *logger.Logger) PasswordResetService {
	return &passwordResetService{
		accounts:  accounts,
		mailer:    mailer,
		validator: validators.NewRequestValidator(),
		tokenKey:  cfg.ResetTokenKey,
		tokenTTL:  cfg.ResetTokenTTL,
		resetURL:  cfg.ResetURL,
		now:       time.Now,
		logger:    logger,
	}
}

// RequestReset stores a fresh token for the account and mails it. A
// previous pending token is replaced.
func (s *passwordResetService) RequestReset(ctx context.Context, req models.PasswordRecovery) error {
	log := logger.FromContext(ctx)

	if err := s.validator.Validate(ctx, req); err != nil {
		return mapValidationError(err)
	}

	account, err := s.accounts.FindAccountByEmail(ctx, validators.NormalizeEmail(req.Email))
	if err != nil {
		return mapStoreError(err)
	}

	token, err := utils.RandomHex(resetTokenBytes)
	if err != nil {
		return fmt.Errorf("generate reset token: %w", err)
	}

	expiresAt := s.now().Add(s.tokenTTL)
	if err = s.accounts.SetResetToken(ctx, account.ID, utils.HashString(token, s.tokenKey), expiresAt); err != nil {
		return mapStoreError(err)
	}

	err = s.mailer.Send(ctx, adapter.Mail{
		To:      account.Email,
		Subject: app.MsgPasswordResetSubject,
		Text:    s.resetText(account, token),
	})
	if err != nil {
		log.Err(err).Str("account_id", account.ID.String()).Msg("reset mail was not sent")
		return upstream(err)
	}

	log.Info().Str("account_id", account.ID.String()).Time("expires_at", expiresAt).Msg("password reset requested")
	return nil
}

// ResetPassword consumes token and sets a new credential. The token works
// once and only before it expires.
func (s *passwordResetService) ResetPassword(ctx context.Context, req models.PasswordReset) (models.Session, error) {
	if err := s.validator.Validate(ctx, req); err != nil {
		return models.Session{}, mapValidationError(err)
	}

	tokenHash := utils.HashString(req.PasswordToken, s.tokenKey)

	account, err := s.accounts.FindAccountByResetToken(ctx, tokenHash)
	if errors.Is(err, store.ErrAccountNotFound) {
		return models.Session{}, ErrUnauthorized
	}
	if err != nil {
		return models.Session{}, mapStoreError(err)
	}

	now := s.now()
	if account.ResetExpiresAt == nil || !now.Before(*account.ResetExpiresAt) {
		return models.Session{}, ErrResetTokenExpired
	}

	credential, err := newCredential(req.Password)
	if err != nil {
		return models.Session{}, err
	}
	if _, err = s.accounts.ConsumeResetToken(ctx, tokenHash, credential, now); err != nil {
		return models.Session{}, mapStoreError(err)
	}

	account.Credential = credential
	account.ResetTokenHash = nil
	account.ResetExpiresAt = nil

	logger.FromContext(ctx).Info().Str("account_id", account.ID.String()).Msg("password reset")
	return account.Session(), nil
}

func (s *passwordResetService) SweepExpired(ctx context.Context) (int64, error) {
	n, err := s.accounts.ClearExpiredResetTokens(ctx, s.now())
	if err != nil {
		return 0, mapStoreError(err)
	}
	return n, nil
}

func (s *passwordResetService) resetText(account models.Account, token string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Hello %s,\n\n", account.Profile.Name)
	if s.resetURL != "" {
		fmt.Fprintf(&b, "Follow %s?token=%s to choose a new password.\n", s.resetURL, token)
	} else {
		fmt.Fprintf(&b, "Use this token to choose a new password: %s\n", token)
	}
	fmt.Fprintf(&b, "The link expires in %s.\n", s.tokenTTL)
	return b.String()
}
