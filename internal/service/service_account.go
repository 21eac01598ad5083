package service

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/MKhiriev/go-airbnb-api/internal/logger"
	"github.com/MKhiriev/go-airbnb-api/internal/store"
	"github.com/MKhiriev/go-airbnb-api/internal/validators"
	"github.com/MKhiriev/go-airbnb-api/models"
)

type accountService struct {
	accounts  store.AccountRepository
	listings  store.ListingRepository
	photos    *PhotoManager
	validator validators.Validator

	logger *logger.Logger
}

func NewAccountService(accounts store.AccountRepository, listings store.ListingRepository, photos *PhotoManager, logger *logger.Logger) AccountService {
	return &accountService{
		accounts:  accounts,
		listings:  listings,
		photos:    photos,
		validator: validators.NewRequestValidator(),
		logger:    logger,
	}
}

func (s *accountService) GetProfile(ctx context.Context, id uuid.UUID) (models.Profile, error) {
	account, err := s.accounts.FindAccountByID(ctx, id)
	if err != nil {
		return models.Profile{}, mapStoreError(err)
	}
	return account.PublicProfile(), nil
}

// UpdateProfile applies the present fields of update and, when photo is
// given, uploads it as the account photo. Nothing is persisted unless every
// step succeeds; the record is written once at the end.
func (s *accountService) UpdateProfile(ctx context.Context, actor models.Account, id uuid.UUID, update models.ProfileUpdate, photo *models.Upload) (models.Session, error) {
	log := logger.FromContext(ctx)

	if err := Authorize(actor.ID, id); err != nil {
		return models.Session{}, err
	}
	if update.IsEmpty() && photo == nil {
		return models.Session{}, ErrMissingParameters
	}
	if err := s.validator.Validate(ctx, update, validators.FieldUsername); err != nil {
		return models.Session{}, mapValidationError(err)
	}

	account := actor
	if update.Username != nil {
		username := strings.TrimSpace(*update.Username)
		if username != account.Username {
			taken, err := s.accounts.UsernameExists(ctx, username, account.ID)
			if err != nil {
				return models.Session{}, mapStoreError(err)
			}
			if taken {
				return models.Session{}, ErrDuplicateUsername
			}
		}
		account.Username = username
	}
	if update.Name != nil {
		account.Profile.Name = *update.Name
	}
	if update.Description != nil {
		account.Profile.Description = *update.Description
	}

	var fresh *models.Photo
	if photo != nil {
		current := account.Profile.Photo
		stored, err := s.photos.Put(ctx, current, accountPhotoFolder(account.ID), *photo)
		if err != nil {
			return models.Session{}, err
		}
		if current == nil {
			fresh = &stored
		}
		account.Profile.Photo = &stored
	}

	updated, err := s.accounts.UpdateAccount(ctx, account)
	if err != nil {
		log.Err(err).Str("account_id", account.ID.String()).Msg("profile update failed")
		if fresh != nil {
			s.discard(ctx, fresh.StorageKey)
		}
		return models.Session{}, mapStoreError(err)
	}

	return updated.Session(), nil
}

// DeletePhoto removes the account photo from the storage, then clears the
// reference.
func (s *accountService) DeletePhoto(ctx context.Context, actor models.Account, id uuid.UUID) (models.Session, error) {
	if err := Authorize(actor.ID, id); err != nil {
		return models.Session{}, err
	}
	if actor.Profile.Photo == nil {
		return models.Session{}, ErrPhotoNotFound
	}

	if err := s.photos.Release(ctx, actor.Profile.Photo.StorageKey); err != nil {
		return models.Session{}, err
	}

	account := actor
	account.Profile.Photo = nil
	updated, err := s.accounts.UpdateAccount(ctx, account)
	if err != nil {
		return models.Session{}, mapStoreError(err)
	}

	return updated.Session(), nil
}

func (s *accountService) DeleteAccount(ctx context.Context, actor models.Account) error {
	log := logger.FromContext(ctx)

	owned, err := s.listings.ListListingsByOwner(ctx, actor.ID)
	if err != nil {
		return mapStoreError(err)
	}

	// references to released objects are cleared before a storage failure
	// is reported
	if actor.Profile.Photo != nil {
		if err = s.photos.Release(ctx, actor.Profile.Photo.StorageKey); err != nil {
			return err
		}
	}

	for i, listing := range owned {
		keys := make([]string, 0, len(listing.Photos))
		for _, p := range listing.Photos {
			keys = append(keys, p.StorageKey)
		}

		released, relErr := s.photos.ReleaseAll(ctx, keys...)
		if relErr != nil {
			s.forgetReleased(ctx, actor, owned[:i])
			forgetPhotos(ctx, s.listings, listing, released)
			return relErr
		}
	}

	if err = s.accounts.DeleteAccount(ctx, actor.ID); err != nil {
		log.Err(err).Str("account_id", actor.ID.String()).Msg("account deletion failed")
		return mapStoreError(err)
	}

	log.Info().Str("account_id", actor.ID.String()).Int("listings", len(owned)).Msg("account deleted")
	return nil
}

// forgetReleased clears the account photo and the photos of done, whose
// objects were all released before a later storage failure.
func (s *accountService) forgetReleased(ctx context.Context, actor models.Account, done []models.Listing) {
	log := logger.FromContext(ctx)

	if actor.Profile.Photo != nil {
		account := actor
		account.Profile.Photo = nil
		if _, err := s.accounts.UpdateAccount(ctx, account); err != nil {
			log.Err(err).Str("account_id", actor.ID.String()).Msg("account references a deleted photo")
		}
	}
	for _, listing := range done {
		forgetPhotos(ctx, s.listings, listing, len(listing.Photos))
	}
}

// discard releases an object that was uploaded for a write that failed.
func (s *accountService) discard(ctx context.Context, key string) {
	if err := s.photos.Release(ctx, key); err != nil {
		logger.FromContext(ctx).Warn().Err(err).Str("key", key).Msg("orphaned photo left in storage")
	}
}
