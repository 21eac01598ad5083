package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-airbnb-api/internal/config"
	"github.com/MKhiriev/go-airbnb-api/internal/logger"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/sethvargo/go-retry"
)

const (
	maxOpenConns     = 10
	maxIdleConns     = 4
	connectRetries   = 4
	connectRetryBase = 500 * time.Millisecond
)

// NewConnectPostgres opens the pgx connection pool and pings it. Transient
// failures (see [PostgresErrorClassifier]) and network errors are retried
// with exponential backoff; anything else fails immediately.
func NewConnectPostgres(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	// establish connection
	conn, err := sql.Open("pgx", cfg.DSN)
	if err != nil {
		log.Err(err).Str("func", "NewConnectPostgres").Msg("error occured during database connection")
		return nil, fmt.Errorf("error occured during database connection: %w", err)
	}

	// setup connections
	conn.SetMaxOpenConns(maxOpenConns)
	conn.SetMaxIdleConns(maxIdleConns)

	db := &DB{
		DB:                 conn,
		logger:             log,
		errorClassificator: NewPostgresErrorClassifier(),
	}

	if err = db.ping(ctx); err != nil {
		log.Err(err).Str("func", "NewConnectPostgres").Msg("error connecting database (ping)")
		_ = conn.Close()
		return nil, err
	}
	log.Info().Str("func", "NewConnectPostgres").Msg("connected to database successfully")

	return db, nil
}

func (db *DB) ping(ctx context.Context) error {
	backoff := retry.WithMaxRetries(connectRetries, retry.NewExponential(connectRetryBase))

	attempt := 0
	return retry.Do(ctx, backoff, func(ctx context.Context) error {
		attempt++
		err := db.PingContext(ctx)
		if err == nil {
			return nil
		}

		if postgresError(err) == "" || db.errorClassificator.Classify(err) == Retryable {
			db.logger.Warn().Err(err).
				Str("func", "*DB.ping").
				Int("attempt", attempt).
				Msg("database is not ready, retrying")
			return retry.RetryableError(err)
		}

		return err
	})
}

func postgresError(err error) string {
	var pgErr *pgconn.PgError
	// if postgres returns error
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}

	return ""
}

// writeError wraps a failed write. Data exceptions (SQLSTATE class 22) are
// caused by the input and wrap [ErrInvalidData].
func writeError(err error) error {
	if pgerrcode.IsDataException(postgresError(err)) {
		return fmt.Errorf("%w: %w", ErrInvalidData, err)
	}
	return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
}

func postgresConstraint(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.ConstraintName
	}

	return ""
}
