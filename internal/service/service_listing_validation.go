package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/MKhiriev/go-airbnb-api/internal/validators"
	"github.com/MKhiriev/go-airbnb-api/models"
)

// ListingValidationService rejects malformed listing requests before they
// reach the wrapped ListingService.
type ListingValidationService struct {
	inner     ListingService
	validator validators.Validator
}

func NewListingValidationService() ListingServiceWrapper {
	return &ListingValidationService{
		validator: validators.NewRequestValidator(),
	}
}

func (v *ListingValidationService) Wrap(inner ListingService) ListingService {
	v.inner = inner
	return v
}

func (v *ListingValidationService) List(ctx context.Context, filter models.ListingFilter) ([]models.Listing, error) {
	return v.inner.List(ctx, filter)
}

func (v *ListingValidationService) ListNear(ctx context.Context, query models.NearQuery) ([]models.Listing, error) {
	return v.inner.ListNear(ctx, query)
}

func (v *ListingValidationService) GetByID(ctx context.Context, id uuid.UUID) (models.ListingDetails, error) {
	return v.inner.GetByID(ctx, id)
}

func (v *ListingValidationService) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]models.Listing, error) {
	return v.inner.ListByOwner(ctx, ownerID)
}

func (v *ListingValidationService) Create(ctx context.Context, actor models.Account, draft models.ListingDraft) (models.Listing, error) {
	if err := v.validator.Validate(ctx, draft); err != nil {
		return models.Listing{}, mapValidationError(err)
	}
	return v.inner.Create(ctx, actor, draft)
}

func (v *ListingValidationService) Update(ctx context.Context, actor models.Account, id uuid.UUID, update models.ListingUpdate) (models.Listing, error) {
	if err := v.validator.Validate(ctx, update); err != nil {
		return models.Listing{}, mapValidationError(err)
	}
	return v.inner.Update(ctx, actor, id, update)
}

func (v *ListingValidationService) AddPhoto(ctx context.Context, actor models.Account, id uuid.UUID, upload models.Upload) (models.Listing, error) {
	if len(upload.Data) == 0 {
		return models.Listing{}, ErrMissingParameters
	}
	return v.inner.AddPhoto(ctx, actor, id, upload)
}

func (v *ListingValidationService) DeletePhoto(ctx context.Context, actor models.Account, id uuid.UUID, storageKey string) (models.Listing, error) {
	if storageKey == "" {
		return models.Listing{}, ErrMissingParameters
	}
	return v.inner.DeletePhoto(ctx, actor, id, storageKey)
}

func (v *ListingValidationService) Delete(ctx context.Context, actor models.Account, id uuid.UUID) error {
	return v.inner.Delete(ctx, actor, id)
}
