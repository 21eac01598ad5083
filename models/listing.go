package models

import (
	"time"

	"github.com/google/uuid"
)

// MaxListingPhotos is the capacity of a listing's photo collection.
const MaxListingPhotos = 5

// Listing is a room offered on the marketplace.
type Listing struct {
	ID          uuid.UUID `json:"_id"`
	OwnerID     uuid.UUID `json:"user"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Price       int       `json:"price"`
	RatingValue *float64  `json:"ratingValue"`
	Reviews     int       `json:"reviews"`
	Location    Location  `json:"location"`
	Photos      []Photo   `json:"photos"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Location is a latitude/longitude pair in degrees.
type Location struct {
	Latitude  float64 `json:"lat"`
	Longitude float64 `json:"lng"`
}

// ListingDetails is a listing with its owner's public profile attached.
type ListingDetails struct {
	Listing
	Owner Profile `json:"owner"`
}

// PhotoByKey returns the index of the photo stored under key, or -1.
func (l Listing) PhotoByKey(key string) int {
	for i, p := range l.Photos {
		if p.StorageKey == key {
			return i
		}
	}
	return -1
}
