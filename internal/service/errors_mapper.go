// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/go-airbnb-api/internal/store"
	"github.com/MKhiriev/go-airbnb-api/internal/validators"
)

// mapStoreError translates a repository error into a service error.
// Anything not recognized is an infrastructure failure.
func mapStoreError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, store.ErrEmailAlreadyExists):
		return ErrDuplicateEmail
	case errors.Is(err, store.ErrUsernameAlreadyExists):
		return ErrDuplicateUsername
	case errors.Is(err, store.ErrAccountNotFound):
		return ErrAccountNotFound
	case errors.Is(err, store.ErrListingNotFound):
		return ErrListingNotFound
	case errors.Is(err, store.ErrListingPhotoLimit):
		return ErrPhotoLimitExceeded
	case errors.Is(err, store.ErrResetTokenNotFound):
		return ErrUnauthorized
	case errors.Is(err, store.ErrInvalidData):
		return fmt.Errorf("%w: %w", ErrInvalidData, err)
	}

	return upstream(err)
}

// mapValidationError translates a validator error into a service error.
func mapValidationError(err error) error {
	if err == nil {
		return nil
	}
	switch {
	case errors.Is(err, validators.ErrInvalidEmail):
		return fmt.Errorf("%w: %w", ErrInvalidEmailFormat, err)
	case errors.Is(err, validators.ErrFieldTooLong), errors.Is(err, validators.ErrValueOutOfRange):
		return fmt.Errorf("%w: %w", ErrInvalidData, err)
	}
	return fmt.Errorf("%w: %w", ErrMissingParameters, err)
}
