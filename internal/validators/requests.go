package validators

import (
	"context"
	"fmt"
	"math"
	"net/mail"
	"strings"
	"unicode/utf8"

	"github.com/MKhiriev/go-airbnb-api/models"
)

// Field name constants used to restrict validation to a subset of fields.
const (
	FieldEmail       = "email"
	FieldUsername    = "username"
	FieldPassword    = "password"
	FieldName        = "name"
	FieldDescription = "description"

	FieldPreviousPassword = "previous_password"
	FieldNewPassword      = "new_password"
	FieldPasswordToken    = "password_token"

	FieldTitle    = "title"
	FieldPrice    = "price"
	FieldLocation = "location"

	// FieldAnyUpdate requires at least one field of a partial update.
	FieldAnyUpdate = "any_update"
)

// Column bounds of the accounts and listings tables.
const (
	MaxEmailLength = 320
	MaxTextLength  = 255
	MaxPrice       = math.MaxInt32
)

// RequestValidator validates the request models of the account and listing
// operations. Both value and pointer forms are accepted.
type RequestValidator struct{}

func NewRequestValidator() Validator {
	return &RequestValidator{}
}

// Validate dispatches on the dynamic type of obj. Without fields, the
// default set of the request type is checked. Returns ErrUnsupportedType for
// unknown types and the first failing check otherwise.
func (v *RequestValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.SignUpRequest:
		return v.validateSignUp(value, fields...)
	case *models.SignUpRequest:
		return v.validateSignUp(*value, fields...)

	case models.LogInRequest:
		return v.validateLogIn(value, fields...)
	case *models.LogInRequest:
		return v.validateLogIn(*value, fields...)

	case models.ProfileUpdate:
		return v.validateProfileUpdate(value, fields...)
	case *models.ProfileUpdate:
		return v.validateProfileUpdate(*value, fields...)

	case models.PasswordUpdate:
		return v.validatePasswordUpdate(value, fields...)
	case *models.PasswordUpdate:
		return v.validatePasswordUpdate(*value, fields...)

	case models.PasswordRecovery:
		return v.validatePasswordRecovery(value, fields...)
	case *models.PasswordRecovery:
		return v.validatePasswordRecovery(*value, fields...)

	case models.PasswordReset:
		return v.validatePasswordReset(value, fields...)
	case *models.PasswordReset:
		return v.validatePasswordReset(*value, fields...)

	case models.ListingDraft:
		return v.validateListingDraft(value, fields...)
	case *models.ListingDraft:
		return v.validateListingDraft(*value, fields...)

	case models.ListingUpdate:
		return v.validateListingUpdate(value, fields...)
	case *models.ListingUpdate:
		return v.validateListingUpdate(*value, fields...)

	default:
		return ErrUnsupportedType
	}
}

// NormalizeEmail trims and lower-cases an email address.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// ValidEmail reports whether email is a bare address ("user@domain.tld").
func ValidEmail(email string) bool {
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return false
	}

	at := strings.LastIndex(email, "@")
	domain := email[at+1:]
	dot := strings.LastIndex(domain, ".")

	return dot > 0 && dot < len(domain)-1
}

func required(name, value string) error {
	if strings.TrimSpace(value) == "" {
		return fmt.Errorf("%w: %s", ErrMissingField, name)
	}
	return nil
}

// maxLength counts characters, not bytes, as VARCHAR(n) does.
func maxLength(name, value string, limit int) error {
	if utf8.RuneCountInString(value) > limit {
		return fmt.Errorf("%w: %s", ErrFieldTooLong, name)
	}
	return nil
}

func validatePrice(price int) error {
	if price <= 0 {
		return fmt.Errorf("%w: %s", ErrMissingField, FieldPrice)
	}
	if price > MaxPrice {
		return fmt.Errorf("%w: %s", ErrValueOutOfRange, FieldPrice)
	}
	return nil
}

func validateEmail(email string) error {
	if err := required(FieldEmail, email); err != nil {
		return err
	}
	if err := maxLength(FieldEmail, NormalizeEmail(email), MaxEmailLength); err != nil {
		return err
	}
	if !ValidEmail(NormalizeEmail(email)) {
		return ErrInvalidEmail
	}
	return nil
}

var signUpLimits = map[string]int{
	FieldUsername: MaxTextLength,
	FieldName:     MaxTextLength,
}

// validateSignUp requires all five fields; the email is checked for format
// only after every field is known to be present.
func (v *RequestValidator) validateSignUp(req models.SignUpRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldEmail, FieldUsername, FieldPassword, FieldName, FieldDescription}
	}

	values := map[string]string{
		FieldEmail:       req.Email,
		FieldUsername:    req.Username,
		FieldPassword:    req.Password,
		FieldName:        req.Name,
		FieldDescription: req.Description,
	}

	checkEmail := false
	for _, f := range fields {
		value, ok := values[f]
		if !ok {
			return ErrUnknownField
		}
		if err := required(f, value); err != nil {
			return err
		}
		if limit, ok := signUpLimits[f]; ok {
			if err := maxLength(f, value, limit); err != nil {
				return err
			}
		}
		checkEmail = checkEmail || f == FieldEmail
	}

	if checkEmail {
		return validateEmail(req.Email)
	}
	return nil
}

func (v *RequestValidator) validateLogIn(req models.LogInRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldEmail, FieldPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldEmail:
			if err := required(f, req.Email); err != nil {
				return err
			}
		case FieldPassword:
			if err := required(f, req.Password); err != nil {
				return err
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *RequestValidator) validateProfileUpdate(req models.ProfileUpdate, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldAnyUpdate, FieldUsername, FieldName}
	}

	for _, f := range fields {
		switch f {
		case FieldAnyUpdate:
			if req.IsEmpty() {
				return ErrNoFieldsToUpdate
			}
		case FieldUsername:
			if req.Username != nil {
				if err := required(f, *req.Username); err != nil {
					return err
				}
				if err := maxLength(f, *req.Username, MaxTextLength); err != nil {
					return err
				}
			}
		case FieldName:
			if req.Name != nil {
				if err := maxLength(f, *req.Name, MaxTextLength); err != nil {
					return err
				}
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *RequestValidator) validatePasswordUpdate(req models.PasswordUpdate, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldPreviousPassword, FieldNewPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldPreviousPassword:
			if err := required(f, req.PreviousPassword); err != nil {
				return err
			}
		case FieldNewPassword:
			if err := required(f, req.NewPassword); err != nil {
				return err
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *RequestValidator) validatePasswordRecovery(req models.PasswordRecovery, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldEmail}
	}

	for _, f := range fields {
		if f != FieldEmail {
			return ErrUnknownField
		}
		if err := required(f, req.Email); err != nil {
			return err
		}
	}

	return nil
}

func (v *RequestValidator) validatePasswordReset(req models.PasswordReset, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldPasswordToken, FieldPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldPasswordToken:
			if err := required(f, req.PasswordToken); err != nil {
				return err
			}
		case FieldPassword:
			if err := required(f, req.Password); err != nil {
				return err
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *RequestValidator) validateListingDraft(req models.ListingDraft, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldTitle, FieldDescription, FieldPrice, FieldLocation}
	}

	for _, f := range fields {
		switch f {
		case FieldTitle:
			if err := required(f, req.Title); err != nil {
				return err
			}
			if err := maxLength(f, req.Title, MaxTextLength); err != nil {
				return err
			}
		case FieldDescription:
			if err := required(f, req.Description); err != nil {
				return err
			}
		case FieldPrice:
			if err := validatePrice(req.Price); err != nil {
				return err
			}
		case FieldLocation:
			if req.Location == nil {
				return fmt.Errorf("%w: %s", ErrMissingField, f)
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *RequestValidator) validateListingUpdate(req models.ListingUpdate, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldAnyUpdate, FieldTitle, FieldPrice}
	}

	for _, f := range fields {
		switch f {
		case FieldAnyUpdate:
			if req.IsEmpty() {
				return ErrNoFieldsToUpdate
			}
		case FieldTitle:
			if req.Title != nil {
				if err := required(f, *req.Title); err != nil {
					return err
				}
				if err := maxLength(f, *req.Title, MaxTextLength); err != nil {
					return err
				}
			}
		case FieldPrice:
			if req.Price != nil {
				if err := validatePrice(*req.Price); err != nil {
					return err
				}
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
