package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/MKhiriev/go-airbnb-api/internal/adapter"
	"github.com/MKhiriev/go-airbnb-api/internal/app"
	"github.com/MKhiriev/go-airbnb-api/internal/logger"
	"github.com/MKhiriev/go-airbnb-api/internal/store"
	"github.com/MKhiriev/go-airbnb-api/internal/utils"
	"github.com/MKhiriev/go-airbnb-api/internal/validators"
	"github.com/MKhiriev/go-airbnb-api/models"
)

// IDGenerator produces identifiers for new records.
type IDGenerator interface {
	Generate() uuid.UUID
}

// authService is the concrete implementation of AuthService.
// Passwords are stored as argon2id hashes with a per-account salt; the bearer
// token is an opaque random string that only changes with the password.
type authService struct {
	accounts  store.AccountRepository
	validator validators.Validator
	ids       IDGenerator

	// mailer notifies account holders about credential changes.
	mailer adapter.Mailer

	logger *logger.Logger
}

func NewAuthService(accounts store.AccountRepository, mailer adapter.Mailer, ids IDGenerator, logger *logger.Logger) AuthService {
	return &authService{
		accounts:  accounts,
		validator: validators.NewRequestValidator(),
		ids:       ids,
		mailer:    mailer,
		logger:    logger,
	}
}

// SignUp opens an account. The email is checked for duplicates before the
// username, so ErrDuplicateEmail wins when both collide.
//
// Returns ErrMissingParameters, ErrInvalidEmailFormat, ErrDuplicateEmail,
// ErrDuplicateUsername or ErrUpstreamUnavailable.
func (a *authService) SignUp(ctx context.Context, req models.SignUpRequest) (models.Session, error) {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(ctx, req); err != nil {
		log.Debug().Err(err).Msg("invalid sign up request")
		return models.Session{}, mapValidationError(err)
	}

	email := validators.NormalizeEmail(req.Email)
	username := strings.TrimSpace(req.Username)

	exists, err := a.accounts.EmailExists(ctx, email)
	if err != nil {
		return models.Session{}, mapStoreError(err)
	}
	if exists {
		return models.Session{}, ErrDuplicateEmail
	}

	exists, err = a.accounts.UsernameExists(ctx, username, uuid.Nil)
	if err != nil {
		return models.Session{}, mapStoreError(err)
	}
	if exists {
		return models.Session{}, ErrDuplicateUsername
	}

	credential, err := newCredential(req.Password)
	if err != nil {
		log.Err(err).Msg("credential generation failed")
		return models.Session{}, err
	}

	created, err := a.accounts.CreateAccount(ctx, models.Account{
		ID:         a.ids.Generate(),
		Email:      email,
		Username:   username,
		Credential: credential,
		Profile: models.AccountProfile{
			Name:        req.Name,
			Description: req.Description,
		},
	})
	if err != nil {
		log.Err(err).Str("email", email).Msg("account creation ended with error")
		return models.Session{}, mapStoreError(err)
	}

	log.Info().Str("account_id", created.ID.String()).Msg("account created")
	return created.Session(), nil
}

// LogIn verifies the password and returns the account's current token.
// Unknown emails and wrong passwords both yield ErrUnauthorized.
func (a *authService) LogIn(ctx context.Context, req models.LogInRequest) (models.Session, error) {
	if err := a.validator.Validate(ctx, req); err != nil {
		return models.Session{}, mapValidationError(err)
	}

	account, err := a.accounts.FindAccountByEmail(ctx, validators.NormalizeEmail(req.Email))
	if errors.Is(err, store.ErrAccountNotFound) {
		return models.Session{}, ErrUnauthorized
	}
	if err != nil {
		return models.Session{}, mapStoreError(err)
	}

	if !utils.VerifyHash(req.Password, account.Credential.Salt, account.Credential.Hash) {
		logger.FromContext(ctx).Debug().Str("account_id", account.ID.String()).Msg("wrong password")
		return models.Session{}, ErrUnauthorized
	}

	return account.Session(), nil
}

func (a *authService) Authenticate(ctx context.Context, token string) (models.Account, error) {
	if token == "" {
		return models.Account{}, ErrUnauthorized
	}

	account, err := a.accounts.FindAccountByToken(ctx, token)
	if errors.Is(err, store.ErrAccountNotFound) {
		return models.Account{}, ErrUnauthorized
	}
	if err != nil {
		return models.Account{}, mapStoreError(err)
	}

	return account, nil
}

// UpdatePassword replaces the whole credential. The previous token stops
// authenticating once this returns.
func (a *authService) UpdatePassword(ctx context.Context, actor models.Account, req models.PasswordUpdate) (models.Session, error) {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(ctx, req); err != nil {
		return models.Session{}, mapValidationError(err)
	}
	if !utils.VerifyHash(req.PreviousPassword, actor.Credential.Salt, actor.Credential.Hash) {
		return models.Session{}, ErrUnauthorized
	}
	if req.PreviousPassword == req.NewPassword {
		return models.Session{}, ErrPasswordUnchanged
	}

	credential, err := newCredential(req.NewPassword)
	if err != nil {
		return models.Session{}, err
	}
	if err = a.accounts.UpdateCredential(ctx, actor.ID, credential); err != nil {
		log.Err(err).Str("account_id", actor.ID.String()).Msg("credential update failed")
		return models.Session{}, mapStoreError(err)
	}
	actor.Credential = credential

	err = a.mailer.Send(ctx, adapter.Mail{
		To:      actor.Email,
		Subject: app.MsgPasswordChangedSubject,
		Text:    fmt.Sprintf("Hello %s, the password of your account was changed.", actor.Profile.Name),
	})
	if err != nil {
		log.Warn().Err(err).Str("account_id", actor.ID.String()).Msg("password change notification was not sent")
	}

	return actor.Session(), nil
}

// newCredential generates a fresh salt and token and derives the hash of
// password.
func newCredential(password string) (models.Credential, error) {
	salt, err := utils.RandomString(utils.SecretLength)
	if err != nil {
		return models.Credential{}, fmt.Errorf("generate salt: %w", err)
	}
	token, err := utils.RandomString(utils.SecretLength)
	if err != nil {
		return models.Credential{}, fmt.Errorf("generate token: %w", err)
	}

	return models.Credential{
		Salt:  salt,
		Hash:  utils.DeriveHash(password, salt),
		Token: token,
	}, nil
}
