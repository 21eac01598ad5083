package store

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/MKhiriev/go-airbnb-api/models"
	"github.com/google/uuid"
)

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanAccount(row rowScanner) (models.Account, error) {
	var (
		account    models.Account
		photo      []byte
		listingIDs []byte
		resetHash  sql.NullString
		resetUntil sql.NullTime
	)

	err := row.Scan(
		&account.ID,
		&account.Email,
		&account.Username,
		&account.Credential.Salt,
		&account.Credential.Hash,
		&account.Credential.Token,
		&account.Profile.Name,
		&account.Profile.Description,
		&photo,
		&resetHash,
		&resetUntil,
		&account.CreatedAt,
		&account.UpdatedAt,
		&listingIDs,
	)
	if err != nil {
		return models.Account{}, err
	}

	if len(photo) > 0 {
		account.Profile.Photo = new(models.Photo)
		if err = json.Unmarshal(photo, account.Profile.Photo); err != nil {
			return models.Account{}, fmt.Errorf("%w: %w", ErrEncodingJSON, err)
		}
	}

	account.ListingIDs = []uuid.UUID{}
	if len(listingIDs) > 0 {
		if err = json.Unmarshal(listingIDs, &account.ListingIDs); err != nil {
			return models.Account{}, fmt.Errorf("%w: %w", ErrEncodingJSON, err)
		}
	}

	if resetHash.Valid {
		account.ResetTokenHash = &resetHash.String
	}
	if resetUntil.Valid {
		account.ResetExpiresAt = &resetUntil.Time
	}

	return account, nil
}

func scanListing(row rowScanner) (models.Listing, error) {
	var (
		listing models.Listing
		rating  sql.NullFloat64
		photos  []byte
	)

	err := row.Scan(
		&listing.ID,
		&listing.OwnerID,
		&listing.Title,
		&listing.Description,
		&listing.Price,
		&rating,
		&listing.Reviews,
		&listing.Location.Latitude,
		&listing.Location.Longitude,
		&photos,
		&listing.CreatedAt,
		&listing.UpdatedAt,
	)
	if err != nil {
		return models.Listing{}, err
	}

	if rating.Valid {
		listing.RatingValue = &rating.Float64
	}

	listing.Photos = []models.Photo{}
	if len(photos) > 0 {
		if err = json.Unmarshal(photos, &listing.Photos); err != nil {
			return models.Listing{}, fmt.Errorf("%w: %w", ErrEncodingJSON, err)
		}
	}

	return listing, nil
}

// photoArg encodes an optional photo for a nullable jsonb column.
func photoArg(photo *models.Photo) (any, error) {
	if photo == nil {
		return nil, nil
	}

	b, err := json.Marshal(photo)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrEncodingJSON, err)
	}
	return string(b), nil
}

// photosArg encodes a photo collection for a jsonb array column.
func photosArg(photos []models.Photo) (string, error) {
	if photos == nil {
		photos = []models.Photo{}
	}

	b, err := json.Marshal(photos)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrEncodingJSON, err)
	}
	return string(b), nil
}
