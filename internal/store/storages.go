package store

import "github.com/MKhiriev/go-airbnb-api/internal/logger"

// Storages groups the repositories handed to the service layer.
type Storages struct {
	AccountRepository AccountRepository
	ListingRepository ListingRepository
}

// NewStorages builds every repository on top of db.
func NewStorages(db *DB, log *logger.Logger) *Storages {
	return &Storages{
		AccountRepository: NewAccountRepository(db, log),
		ListingRepository: NewListingRepository(db, log),
	}
}
