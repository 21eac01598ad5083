package service

import (
	"context"
	"slices"

	"github.com/google/uuid"

	"github.com/MKhiriev/go-airbnb-api/internal/logger"
	"github.com/MKhiriev/go-airbnb-api/internal/store"
	"github.com/MKhiriev/go-airbnb-api/models"
)

// DefaultNearDistance is the search radius, in degrees, used when a
// proximity query does not set one.
const DefaultNearDistance = 0.1

type listingService struct {
	listings store.ListingRepository
	accounts store.AccountRepository
	photos   *PhotoManager
	ids      IDGenerator

	logger *logger.Logger
}

// NewListingService returns the bare listing directory. Input checks live in
// the validation wrapper, see NewListingValidationService.
func NewListingService(listings store.ListingRepository, accounts store.AccountRepository, photos *PhotoManager, ids IDGenerator, logger *logger.Logger) ListingService {
	return &listingService{
		listings: listings,
		accounts: accounts,
		photos:   photos,
		ids:      ids,
		logger:   logger,
	}
}

func (s *listingService) List(ctx context.Context, filter models.ListingFilter) ([]models.Listing, error) {
	listings, err := s.listings.ListListings(ctx, filter)
	if err != nil {
		return nil, mapStoreError(err)
	}
	return listings, nil
}

func (s *listingService) ListNear(ctx context.Context, query models.NearQuery) ([]models.Listing, error) {
	if !query.HasPoint() {
		return s.List(ctx, models.ListingFilter{})
	}

	maxDistance := query.MaxDistance
	if maxDistance <= 0 {
		maxDistance = DefaultNearDistance
	}

	point := models.Location{Latitude: *query.Latitude, Longitude: *query.Longitude}
	listings, err := s.listings.ListListingsNear(ctx, point, maxDistance)
	if err != nil {
		return nil, mapStoreError(err)
	}
	return listings, nil
}

// GetByID returns the listing with its owner's public profile.
func (s *listingService) GetByID(ctx context.Context, id uuid.UUID) (models.ListingDetails, error) {
	listing, err := s.listings.FindListing(ctx, id)
	if err != nil {
		return models.ListingDetails{}, mapStoreError(err)
	}

	owner, err := s.accounts.FindAccountByID(ctx, listing.OwnerID)
	if err != nil {
		return models.ListingDetails{}, mapStoreError(err)
	}

	return models.ListingDetails{Listing: listing, Owner: owner.PublicProfile()}, nil
}

func (s *listingService) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]models.Listing, error) {
	if _, err := s.accounts.FindAccountByID(ctx, ownerID); err != nil {
		return nil, mapStoreError(err)
	}

	listings, err := s.listings.ListListingsByOwner(ctx, ownerID)
	if err != nil {
		return nil, mapStoreError(err)
	}
	return listings, nil
}

func (s *listingService) Create(ctx context.Context, actor models.Account, draft models.ListingDraft) (models.Listing, error) {
	listing := models.Listing{
		ID:          s.ids.Generate(),
		OwnerID:     actor.ID,
		Title:       draft.Title,
		Description: draft.Description,
		Price:       draft.Price,
		Photos:      []models.Photo{},
	}
	if draft.Location != nil {
		listing.Location = *draft.Location
	}

	created, err := s.listings.CreateListing(ctx, listing)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("owner_id", actor.ID.String()).Msg("listing creation failed")
		return models.Listing{}, mapStoreError(err)
	}

	return created, nil
}

func (s *listingService) Update(ctx context.Context, actor models.Account, id uuid.UUID, update models.ListingUpdate) (models.Listing, error) {
	if _, err := s.owned(ctx, actor, id); err != nil {
		return models.Listing{}, err
	}

	updated, err := s.listings.UpdateListing(ctx, id, update)
	if err != nil {
		return models.Listing{}, mapStoreError(err)
	}
	return updated, nil
}

// AddPhoto uploads a photo and appends it to the listing. A full listing is
// rejected before any storage call. When a concurrent add fills the last slot
// first, the conditional append fails and the fresh object is released.
func (s *listingService) AddPhoto(ctx context.Context, actor models.Account, id uuid.UUID, upload models.Upload) (models.Listing, error) {
	listing, err := s.owned(ctx, actor, id)
	if err != nil {
		return models.Listing{}, err
	}
	if len(listing.Photos) >= models.MaxListingPhotos {
		return models.Listing{}, ErrPhotoLimitExceeded
	}

	photo, err := s.photos.Put(ctx, nil, listingPhotoFolder(id), upload)
	if err != nil {
		return models.Listing{}, err
	}

	updated, err := s.listings.AppendPhoto(ctx, id, photo, models.MaxListingPhotos)
	if err != nil {
		if releaseErr := s.photos.Release(ctx, photo.StorageKey); releaseErr != nil {
			logger.FromContext(ctx).Warn().Err(releaseErr).Str("key", photo.StorageKey).Msg("orphaned photo left in storage")
		}
		return models.Listing{}, mapStoreError(err)
	}

	return updated, nil
}

// DeletePhoto removes the photo stored under storageKey from the storage,
// then from the listing.
func (s *listingService) DeletePhoto(ctx context.Context, actor models.Account, id uuid.UUID, storageKey string) (models.Listing, error) {
	listing, err := s.owned(ctx, actor, id)
	if err != nil {
		return models.Listing{}, err
	}

	idx := listing.PhotoByKey(storageKey)
	if idx < 0 {
		return models.Listing{}, ErrPhotoNotFound
	}

	if err = s.photos.Release(ctx, storageKey); err != nil {
		return models.Listing{}, err
	}

	updated, err := s.listings.SetPhotos(ctx, id, slices.Delete(slices.Clone(listing.Photos), idx, idx+1))
	if err != nil {
		return models.Listing{}, mapStoreError(err)
	}
	return updated, nil
}

// Delete releases every photo of the listing, then removes it.
func (s *listingService) Delete(ctx context.Context, actor models.Account, id uuid.UUID) error {
	listing, err := s.owned(ctx, actor, id)
	if err != nil {
		return err
	}

	keys := make([]string, 0, len(listing.Photos))
	for _, p := range listing.Photos {
		keys = append(keys, p.StorageKey)
	}
	released, err := s.photos.ReleaseAll(ctx, keys...)
	if err != nil {
		forgetPhotos(ctx, s.listings, listing, released)
		return err
	}

	if err = s.listings.DeleteListing(ctx, id); err != nil {
		return mapStoreError(err)
	}
	return nil
}

// owned loads the listing and checks that actor owns it.
func (s *listingService) owned(ctx context.Context, actor models.Account, id uuid.UUID) (models.Listing, error) {
	listing, err := s.listings.FindListing(ctx, id)
	if err != nil {
		return models.Listing{}, mapStoreError(err)
	}
	if err = Authorize(actor.ID, listing.OwnerID); err != nil {
		return models.Listing{}, err
	}
	return listing, nil
}

// forgetPhotos drops the first released photos of listing, whose objects are
// already gone from storage. A failed write is only logged: the caller is
// already reporting the storage failure.
func forgetPhotos(ctx context.Context, listings store.ListingRepository, listing models.Listing, released int) {
	if released == 0 {
		return
	}
	if _, err := listings.SetPhotos(ctx, listing.ID, slices.Clone(listing.Photos[released:])); err != nil {
		logger.FromContext(ctx).Err(err).Str("listing_id", listing.ID.String()).
			Int("released", released).Msg("listing references deleted photos")
	}
}
