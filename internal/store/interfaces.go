package store

import (
	"context"
	"time"

	"github.com/MKhiriev/go-airbnb-api/models"
	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// AccountRepository persists accounts and their credentials.
type AccountRepository interface {
	CreateAccount(ctx context.Context, account models.Account) (models.Account, error)
	FindAccountByID(ctx context.Context, id uuid.UUID) (models.Account, error)
	FindAccountByEmail(ctx context.Context, email string) (models.Account, error)
	FindAccountByToken(ctx context.Context, token string) (models.Account, error)
	FindAccountByResetToken(ctx context.Context, tokenHash string) (models.Account, error)
	EmailExists(ctx context.Context, email string) (bool, error)
	// UsernameExists reports whether an account other than except uses username.
	UsernameExists(ctx context.Context, username string, except uuid.UUID) (bool, error)
	// UpdateAccount writes the username and the profile (including the photo).
	UpdateAccount(ctx context.Context, account models.Account) (models.Account, error)
	UpdateCredential(ctx context.Context, id uuid.UUID, credential models.Credential) error
	SetResetToken(ctx context.Context, id uuid.UUID, tokenHash string, expiresAt time.Time) error
	// ConsumeResetToken replaces the credential of the account holding
	// tokenHash and clears the reset fields in one statement.
	ConsumeResetToken(ctx context.Context, tokenHash string, credential models.Credential, now time.Time) (uuid.UUID, error)
	ClearExpiredResetTokens(ctx context.Context, now time.Time) (int64, error)
	// DeleteAccount removes the account and every listing it owns.
	DeleteAccount(ctx context.Context, id uuid.UUID) error
}

// ListingRepository persists listings.
type ListingRepository interface {
	CreateListing(ctx context.Context, listing models.Listing) (models.Listing, error)
	FindListing(ctx context.Context, id uuid.UUID) (models.Listing, error)
	ListListings(ctx context.Context, filter models.ListingFilter) ([]models.Listing, error)
	ListListingsNear(ctx context.Context, point models.Location, maxDistance float64) ([]models.Listing, error)
	ListListingsByOwner(ctx context.Context, ownerID uuid.UUID) ([]models.Listing, error)
	UpdateListing(ctx context.Context, id uuid.UUID, update models.ListingUpdate) (models.Listing, error)
	// AppendPhoto adds photo only while the listing holds fewer than limit
	// photos; otherwise it returns ErrListingPhotoLimit.
	AppendPhoto(ctx context.Context, id uuid.UUID, photo models.Photo, limit int) (models.Listing, error)
	SetPhotos(ctx context.Context, id uuid.UUID, photos []models.Photo) (models.Listing, error)
	DeleteListing(ctx context.Context, id uuid.UUID) error
}

// ErrorClassificator decides whether a failed database operation may be
// retried.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
