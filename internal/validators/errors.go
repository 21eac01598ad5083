package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	// ErrMissingField is returned when a required field is empty.
	ErrMissingField = errors.New("required field is missing")
	// ErrInvalidEmail is returned when an email does not parse as a bare
	// address with a dotted domain.
	ErrInvalidEmail = errors.New("invalid email format")
	// ErrFieldTooLong is returned when a value exceeds its column length.
	ErrFieldTooLong = errors.New("field value is too long")
	// ErrValueOutOfRange is returned when a number does not fit its column.
	ErrValueOutOfRange = errors.New("field value is out of range")
	// ErrNoFieldsToUpdate is returned for a partial update with no field set.
	ErrNoFieldsToUpdate = errors.New("at least one field must be provided for update")
)
