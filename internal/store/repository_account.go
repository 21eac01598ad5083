package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-airbnb-api/internal/logger"
	"github.com/MKhiriev/go-airbnb-api/models"
	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
)

// accountRepository is the PostgreSQL-backed implementation of
// [AccountRepository]. It reads and writes the "accounts" table; the
// account's listing identifiers are derived from the "listings" table.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type accountRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewAccountRepository constructs an [AccountRepository] backed by the
// provided database connection and logger.
func NewAccountRepository(db *DB, logger *logger.Logger) AccountRepository {
	logger.Debug().Msg("creating account repository")
	return &accountRepository{
		db:     db,
		logger: logger,
	}
}

// CreateAccount inserts a new account and returns it with the server-assigned
// timestamps.
//
// Error handling:
//   - unique_violation on accounts_email_key → [ErrEmailAlreadyExists].
//   - unique_violation on accounts_username_key → [ErrUsernameAlreadyExists].
//   - anything else → wrapped [ErrExecutingQuery].
func (r *accountRepository) CreateAccount(ctx context.Context, account models.Account) (models.Account, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createAccount,
		account.ID,
		account.Email,
		account.Username,
		account.Credential.Salt,
		account.Credential.Hash,
		account.Credential.Token,
		account.Profile.Name,
		account.Profile.Description,
	)

	if err := row.Scan(&account.CreatedAt, &account.UpdatedAt); err != nil {
		log.Err(err).Str("func", "*accountRepository.CreateAccount").Msg("error inserting account")
		return models.Account{}, accountWriteError(err)
	}

	account.ListingIDs = []uuid.UUID{}
	return account, nil
}

// FindAccountByID returns the account with the given id.
func (r *accountRepository) FindAccountByID(ctx context.Context, id uuid.UUID) (models.Account, error) {
	return r.findAccount(ctx, "*accountRepository.FindAccountByID", findAccountByID, id)
}

// FindAccountByEmail returns the account registered with email. The caller
// is expected to pass an already normalized address.
func (r *accountRepository) FindAccountByEmail(ctx context.Context, email string) (models.Account, error) {
	return r.findAccount(ctx, "*accountRepository.FindAccountByEmail", findAccountByEmail, email)
}

// FindAccountByToken resolves a bearer token.
func (r *accountRepository) FindAccountByToken(ctx context.Context, token string) (models.Account, error) {
	return r.findAccount(ctx, "*accountRepository.FindAccountByToken", findAccountByToken, token)
}

// FindAccountByResetToken returns the account holding a pending reset with
// the given token hash.
func (r *accountRepository) FindAccountByResetToken(ctx context.Context, tokenHash string) (models.Account, error) {
	return r.findAccount(ctx, "*accountRepository.FindAccountByResetToken", findAccountByResetToken, tokenHash)
}

func (r *accountRepository) findAccount(ctx context.Context, fn, query string, arg any) (models.Account, error) {
	log := logger.FromContext(ctx)

	account, err := scanAccount(r.db.QueryRowContext(ctx, query, arg))
	if errors.Is(err, sql.ErrNoRows) {
		log.Debug().Str("func", fn).Msg("account not found")
		return models.Account{}, ErrAccountNotFound
	}
	if err != nil {
		log.Err(err).Str("func", fn).Msg("error finding account")
		return models.Account{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return account, nil
}

// EmailExists reports whether an account is registered with email.
func (r *accountRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	return r.exists(ctx, "*accountRepository.EmailExists", emailExists, email)
}

// UsernameExists reports whether an account other than except uses username.
// Pass uuid.Nil to check against every account.
func (r *accountRepository) UsernameExists(ctx context.Context, username string, except uuid.UUID) (bool, error) {
	return r.exists(ctx, "*accountRepository.UsernameExists", usernameExists, username, except)
}

func (r *accountRepository) exists(ctx context.Context, fn, query string, args ...any) (bool, error) {
	log := logger.FromContext(ctx)

	var found bool
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&found); err != nil {
		log.Err(err).Str("func", fn).Msg("error checking existence")
		return false, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return found, nil
}

// UpdateAccount writes the username and profile fields of account, including
// the photo reference, and returns the stored account.
func (r *accountRepository) UpdateAccount(ctx context.Context, account models.Account) (models.Account, error) {
	log := logger.FromContext(ctx)

	photo, err := photoArg(account.Profile.Photo)
	if err != nil {
		return models.Account{}, err
	}

	row := r.db.QueryRowContext(ctx, updateAccount,
		account.ID,
		account.Username,
		account.Profile.Name,
		account.Profile.Description,
		photo,
	)
	if err = row.Scan(&account.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Account{}, ErrAccountNotFound
		}
		log.Err(err).
			Str("func", "*accountRepository.UpdateAccount").
			Str("account_id", account.ID.String()).
			Msg("error updating account")
		return models.Account{}, accountWriteError(err)
	}

	return account, nil
}

// UpdateCredential replaces the salt, hash and token of the account.
func (r *accountRepository) UpdateCredential(ctx context.Context, id uuid.UUID, credential models.Credential) error {
	return r.execTargeted(ctx, "*accountRepository.UpdateCredential", updateCredential,
		id, credential.Salt, credential.Hash, credential.Token)
}

// SetResetToken records a pending password reset.
func (r *accountRepository) SetResetToken(ctx context.Context, id uuid.UUID, tokenHash string, expiresAt time.Time) error {
	return r.execTargeted(ctx, "*accountRepository.SetResetToken", setResetToken, id, tokenHash, expiresAt)
}

func (r *accountRepository) execTargeted(ctx context.Context, fn, query string, args ...any) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", fn).Msg("error executing statement")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		log.Debug().Str("func", fn).Msg("account not found")
		return ErrAccountNotFound
	}

	return nil
}

// ConsumeResetToken swaps in credential and clears the pending reset in a
// single conditional statement, so a token can be used at most once and never
// after it expires at now.
func (r *accountRepository) ConsumeResetToken(ctx context.Context, tokenHash string, credential models.Credential, now time.Time) (uuid.UUID, error) {
	log := logger.FromContext(ctx)

	var id uuid.UUID
	err := r.db.QueryRowContext(ctx, consumeResetToken,
		tokenHash, credential.Salt, credential.Hash, credential.Token, now).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		log.Debug().Str("func", "*accountRepository.ConsumeResetToken").Msg("reset token already used, expired or unknown")
		return uuid.Nil, ErrResetTokenNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*accountRepository.ConsumeResetToken").Msg("error consuming reset token")
		return uuid.Nil, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return id, nil
}

// ClearExpiredResetTokens drops every pending reset that expired at or
// before now and returns how many were dropped.
func (r *accountRepository) ClearExpiredResetTokens(ctx context.Context, now time.Time) (int64, error) {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, clearExpiredResetTokens, now)
	if err != nil {
		log.Err(err).Str("func", "*accountRepository.ClearExpiredResetTokens").Msg("error clearing reset tokens")
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return result.RowsAffected()
}

// DeleteAccount removes the owned listings and then the account inside one
// transaction.
func (r *accountRepository) DeleteAccount(ctx context.Context, id uuid.UUID) error {
	log := logger.FromContext(ctx)

	err := r.db.WithTx(ctx, nil, func(ctx context.Context, tx DBTX) error {
		if _, err := tx.ExecContext(ctx, deleteOwnedListings, id); err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}

		result, err := tx.ExecContext(ctx, deleteAccount, id)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
		affected, err := result.RowsAffected()
		if err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
		if affected == 0 {
			return ErrAccountNotFound
		}

		return nil
	})
	if err != nil {
		log.Err(err).
			Str("func", "*accountRepository.DeleteAccount").
			Str("account_id", id.String()).
			Msg("error deleting account")
		return err
	}

	log.Info().
		Str("func", "*accountRepository.DeleteAccount").
		Str("account_id", id.String()).
		Msg("account deleted")
	return nil
}

// accountWriteError maps a unique violation to the sentinel of the violated
// constraint.
func accountWriteError(err error) error {
	if postgresError(err) == pgerrcode.UniqueViolation {
		switch postgresConstraint(err) {
		case constraintAccountsEmail:
			return ErrEmailAlreadyExists
		case constraintAccountsUsername:
			return ErrUsernameAlreadyExists
		}
	}

	return writeError(err)
}
