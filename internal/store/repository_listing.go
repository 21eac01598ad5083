// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-airbnb-api/internal/logger"
	"github.com/MKhiriev/go-airbnb-api/models"
	"github.com/google/uuid"
)

// listingRepository is the PostgreSQL-backed implementation of
// [ListingRepository] over the "listings" table. Photos live in a jsonb
// array column so that a listing and its photo references change together.
type listingRepository struct {
	*DB
	logger *logger.Logger
}

// NewListingRepository constructs a [ListingRepository] backed by the
// provided database connection and logger.
func NewListingRepository(db *DB, logger *logger.Logger) ListingRepository {
	logger.Debug().Msg("creating listing repository")
	return &listingRepository{
		DB:     db,
		logger: logger,
	}
}

// CreateListing inserts listing with an empty photo collection.
func (r *listingRepository) CreateListing(ctx context.Context, listing models.Listing) (models.Listing, error) {
	log := logger.FromContext(ctx)

	created, err := scanListing(r.DB.QueryRowContext(ctx, createListing,
		listing.ID,
		listing.OwnerID,
		listing.Title,
		listing.Description,
		listing.Price,
		listing.Location.Latitude,
		listing.Location.Longitude,
	))
	if err != nil {
		log.Err(err).
			Str("func", "*listingRepository.CreateListing").
			Str("owner_id", listing.OwnerID.String()).
			Msg("error inserting listing")
		return models.Listing{}, writeError(err)
	}

	return created, nil
}

// FindListing returns the listing with the given id or [ErrListingNotFound].
func (r *listingRepository) FindListing(ctx context.Context, id uuid.UUID) (models.Listing, error) {
	return r.queryOne(ctx, "*listingRepository.FindListing", findListing, id)
}

// ListListings returns every listing matching filter, newest first.
func (r *listingRepository) ListListings(ctx context.Context, filter models.ListingFilter) ([]models.Listing, error) {
	query, args, err := buildListListingsQuery(filter)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.queryMany(ctx, "*listingRepository.ListListings", query, args...)
}

// ListListingsNear returns the listings within maxDistance degrees of point,
// closest first.
func (r *listingRepository) ListListingsNear(ctx context.Context, point models.Location, maxDistance float64) ([]models.Listing, error) {
	query, args, err := buildListNearQuery(point, maxDistance)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.queryMany(ctx, "*listingRepository.ListListingsNear", query, args...)
}

// ListListingsByOwner returns the listings of ownerID in creation order.
func (r *listingRepository) ListListingsByOwner(ctx context.Context, ownerID uuid.UUID) ([]models.Listing, error) {
	query, args, err := buildListByOwnerQuery(ownerID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.queryMany(ctx, "*listingRepository.ListListingsByOwner", query, args...)
}

// UpdateListing applies the non-nil fields of update.
func (r *listingRepository) UpdateListing(ctx context.Context, id uuid.UUID, update models.ListingUpdate) (models.Listing, error) {
	query, args, err := buildUpdateListingQuery(id, update)
	if err != nil {
		return models.Listing{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.queryOne(ctx, "*listingRepository.UpdateListing", query, args...)
}

// AppendPhoto adds photo with a conditional update. When the listing exists
// but already holds limit photos [ErrListingPhotoLimit] is returned.
func (r *listingRepository) AppendPhoto(ctx context.Context, id uuid.UUID, photo models.Photo, limit int) (models.Listing, error) {
	log := logger.FromContext(ctx)

	item, err := photosArg([]models.Photo{photo})
	if err != nil {
		return models.Listing{}, err
	}

	listing, err := r.queryOne(ctx, "*listingRepository.AppendPhoto", appendListingPhoto, id, item, limit)
	if !errors.Is(err, ErrListingNotFound) {
		return listing, err
	}

	// the row was not updated: tell a missing listing from a full one
	if _, findErr := r.FindListing(ctx, id); findErr != nil {
		return models.Listing{}, findErr
	}

	log.Warn().
		Str("func", "*listingRepository.AppendPhoto").
		Str("listing_id", id.String()).
		Int("limit", limit).
		Msg("photo limit reached")
	return models.Listing{}, ErrListingPhotoLimit
}

// SetPhotos replaces the whole photo collection.
func (r *listingRepository) SetPhotos(ctx context.Context, id uuid.UUID, photos []models.Photo) (models.Listing, error) {
	arg, err := photosArg(photos)
	if err != nil {
		return models.Listing{}, err
	}

	return r.queryOne(ctx, "*listingRepository.SetPhotos", setListingPhotos, id, arg)
}

// DeleteListing removes the listing row; the owner's listing collection is
// derived from this table, so it shrinks in the same statement.
func (r *listingRepository) DeleteListing(ctx context.Context, id uuid.UUID) error {
	log := logger.FromContext(ctx)

	result, err := r.DB.ExecContext(ctx, deleteListing, id)
	if err != nil {
		log.Err(err).
			Str("func", "*listingRepository.DeleteListing").
			Str("listing_id", id.String()).
			Msg("error deleting listing")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrListingNotFound
	}

	return nil
}

func (r *listingRepository) queryOne(ctx context.Context, fn, query string, args ...any) (models.Listing, error) {
	log := logger.FromContext(ctx)

	listing, err := scanListing(r.DB.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		log.Debug().Str("func", fn).Msg("listing not found")
		return models.Listing{}, ErrListingNotFound
	}
	if err != nil {
		log.Err(err).Str("func", fn).Msg("error querying listing")
		return models.Listing{}, writeError(err)
	}

	return listing, nil
}

func (r *listingRepository) queryMany(ctx context.Context, fn, query string, args ...any) ([]models.Listing, error) {
	log := logger.FromContext(ctx)

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", fn).Msg("failed to execute query for listings")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	listings := make([]models.Listing, 0, 50)
	for rows.Next() {
		listing, scanErr := scanListing(rows)
		if scanErr != nil {
			log.Err(scanErr).Str("func", fn).Msg("failed to scan listing row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		listings = append(listings, listing)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).Str("func", fn).Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return listings, nil
}
