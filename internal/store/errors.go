package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrEmailAlreadyExists is returned when an INSERT violates the unique
	// constraint on accounts.email.
	ErrEmailAlreadyExists = errors.New("email already exists")

	// ErrUsernameAlreadyExists is returned when an INSERT or UPDATE violates
	// the unique constraint on accounts.username.
	ErrUsernameAlreadyExists = errors.New("username already exists")

	// ErrAccountNotFound is returned when a lookup or a targeted write
	// matches no account.
	ErrAccountNotFound = errors.New("account was not found")

	// ErrListingNotFound is returned when a lookup or a targeted write
	// matches no listing.
	ErrListingNotFound = errors.New("listing was not found")

	// ErrListingPhotoLimit is returned by a conditional photo append when
	// the listing already holds the maximum number of photos.
	ErrListingPhotoLimit = errors.New("listing photo limit reached")

	// ErrInvalidData is returned when the database rejects a value that does
	// not fit its column, such as an over-long string or an out of range
	// integer.
	ErrInvalidData = errors.New("value does not fit the column")

	// ErrResetTokenNotFound is returned when no account holds the given
	// reset token hash, including after the token was consumed.
	ErrResetTokenNotFound = errors.New("reset token was not found")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails (e.g. invalid argument count or unsupported type).
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT or similar
	// read-only query against the database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrBeginningTransaction is returned when the database driver cannot
	// start a new transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommitingTransaction is returned when committing an open transaction
	// fails. The transaction is considered rolled back at this point.
	ErrCommitingTransaction = errors.New("failed to commit transaction")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRow is returned when scanning column values from a single
	// result row into a destination struct fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails, typically mid-result-set.
	ErrScanningRows = errors.New("failed to scan rows")

	// ErrEncodingJSON is returned when a jsonb column value cannot be
	// encoded or decoded.
	ErrEncodingJSON = errors.New("failed to encode jsonb column")
)
