package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/MKhiriev/go-airbnb-api/models"
)

//go:generate mockgen -source=interfaces.go -destination=mock/service_mock.go -package=mock

// AuthService issues accounts, verifies credentials and resolves bearer
// tokens.
type AuthService interface {
	SignUp(ctx context.Context, req models.SignUpRequest) (models.Session, error)
	// LogIn returns the account's current token; it does not rotate it.
	LogIn(ctx context.Context, req models.LogInRequest) (models.Session, error)
	// Authenticate resolves a bearer token to its account.
	Authenticate(ctx context.Context, token string) (models.Account, error)
	// UpdatePassword rotates the salt, the hash and the token.
	UpdatePassword(ctx context.Context, actor models.Account, req models.PasswordUpdate) (models.Session, error)
}

// PasswordResetService runs the mailed-token password reset flow.
type PasswordResetService interface {
	RequestReset(ctx context.Context, req models.PasswordRecovery) error
	ResetPassword(ctx context.Context, req models.PasswordReset) (models.Session, error)
	// SweepExpired clears reset tokens past their expiry.
	SweepExpired(ctx context.Context) (int64, error)
}

// AccountService serves profiles and self-service account mutations.
type AccountService interface {
	GetProfile(ctx context.Context, id uuid.UUID) (models.Profile, error)
	UpdateProfile(ctx context.Context, actor models.Account, id uuid.UUID, update models.ProfileUpdate, photo *models.Upload) (models.Session, error)
	DeletePhoto(ctx context.Context, actor models.Account, id uuid.UUID) (models.Session, error)
	// DeleteAccount releases every stored photo of the account and its
	// listings, then removes the records.
	DeleteAccount(ctx context.Context, actor models.Account) error
}

// ListingService is the listing directory.
type ListingService interface {
	List(ctx context.Context, filter models.ListingFilter) ([]models.Listing, error)
	// ListNear falls back to List when the query carries no point.
	ListNear(ctx context.Context, query models.NearQuery) ([]models.Listing, error)
	GetByID(ctx context.Context, id uuid.UUID) (models.ListingDetails, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]models.Listing, error)

	Create(ctx context.Context, actor models.Account, draft models.ListingDraft) (models.Listing, error)
	Update(ctx context.Context, actor models.Account, id uuid.UUID, update models.ListingUpdate) (models.Listing, error)
	AddPhoto(ctx context.Context, actor models.Account, id uuid.UUID, upload models.Upload) (models.Listing, error)
	DeletePhoto(ctx context.Context, actor models.Account, id uuid.UUID, storageKey string) (models.Listing, error)
	Delete(ctx context.Context, actor models.Account, id uuid.UUID) error
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}

// ListingServiceWrapper decorates a ListingService, e.g. with request
// validation.
type ListingServiceWrapper interface {
	Wrap(ListingService) ListingService
}
