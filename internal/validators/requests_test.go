// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-airbnb-api/models"
)

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func ptr[T any](v T) *T { return &v }

func validSignUp() models.SignUpRequest {
	return models.SignUpRequest{
		Email:       "bob@x.com",
		Username:    "bob",
		Password:    "pw1",
		Name:        "Bob",
		Description: "hi",
	}
}

// ---------------------------------------------------------------------------
// Email helpers
// ---------------------------------------------------------------------------

func TestNormalizeEmail(t *testing.T) {
	assert.Equal(t, "bob@x.com", NormalizeEmail("  Bob@X.com \n"))
}

func TestValidEmail(t *testing.T) {
	tests := []struct {
		email string
		want  bool
	}{
		{"bob@x.com", true},
		{"first.last@sub.example.org", true},
		{"bob", false},
		{"bob@", false},
		{"@x.com", false},
		{"bob@localhost", false},
		{"bob@x.", false},
		{"Bob <bob@x.com>", false},
		{"bob@@x.com", false},
	}

	for _, tt := range tests {
		t.Run(tt.email, func(t *testing.T) {
			assert.Equal(t, tt.want, ValidEmail(tt.email))
		})
	}
}

// ---------------------------------------------------------------------------
// SignUpRequest
// ---------------------------------------------------------------------------

func TestValidate_SignUp(t *testing.T) {
	v := NewRequestValidator()

	tests := []struct {
		name    string
		mutate  func(r *models.SignUpRequest)
		wantErr error
	}{
		{"valid", func(r *models.SignUpRequest) {}, nil},
		{"email with spaces and caps", func(r *models.SignUpRequest) { r.Email = " Bob@X.com " }, nil},
		{"missing email", func(r *models.SignUpRequest) { r.Email = "" }, ErrMissingField},
		{"missing username", func(r *models.SignUpRequest) { r.Username = "" }, ErrMissingField},
		{"blank password", func(r *models.SignUpRequest) { r.Password = "   " }, ErrMissingField},
		{"missing name", func(r *models.SignUpRequest) { r.Name = "" }, ErrMissingField},
		{"missing description", func(r *models.SignUpRequest) { r.Description = "" }, ErrMissingField},
		{"bad email", func(r *models.SignUpRequest) { r.Email = "bob" }, ErrInvalidEmail},
		{"bad email and missing name", func(r *models.SignUpRequest) { r.Email = "bob"; r.Name = "" }, ErrMissingField},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validSignUp()
			tt.mutate(&req)

			err := v.Validate(context.Background(), req)
			if tt.wantErr == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestValidate_SignUp_Pointer(t *testing.T) {
	req := validSignUp()
	require.NoError(t, NewRequestValidator().Validate(context.Background(), &req))
}

func TestValidate_SignUp_UnknownField(t *testing.T) {
	err := NewRequestValidator().Validate(context.Background(), validSignUp(), "title")
	require.ErrorIs(t, err, ErrUnknownField)
}

// ---------------------------------------------------------------------------
// Credentials
// ---------------------------------------------------------------------------

func TestValidate_LogIn(t *testing.T) {
	v := NewRequestValidator()

	require.NoError(t, v.Validate(context.Background(), models.LogInRequest{Email: "bob@x.com", Password: "pw"}))
	require.ErrorIs(t, v.Validate(context.Background(), models.LogInRequest{Email: "bob@x.com"}), ErrMissingField)
	require.ErrorIs(t, v.Validate(context.Background(), &models.LogInRequest{Password: "pw"}), ErrMissingField)
}

func TestValidate_PasswordUpdate(t *testing.T) {
	v := NewRequestValidator()

	require.NoError(t, v.Validate(context.Background(), models.PasswordUpdate{PreviousPassword: "a", NewPassword: "b"}))
	require.ErrorIs(t, v.Validate(context.Background(), models.PasswordUpdate{PreviousPassword: "a"}), ErrMissingField)
	require.ErrorIs(t, v.Validate(context.Background(), models.PasswordUpdate{NewPassword: "b"}), ErrMissingField)
}

func TestValidate_PasswordRecoveryAndReset(t *testing.T) {
	v := NewRequestValidator()

	require.NoError(t, v.Validate(context.Background(), models.PasswordRecovery{Email: "bob@x.com"}))
	require.ErrorIs(t, v.Validate(context.Background(), models.PasswordRecovery{}), ErrMissingField)

	require.NoError(t, v.Validate(context.Background(), models.PasswordReset{PasswordToken: "t", Password: "p"}))
	require.ErrorIs(t, v.Validate(context.Background(), models.PasswordReset{Password: "p"}), ErrMissingField)
	require.ErrorIs(t, v.Validate(context.Background(), &models.PasswordReset{PasswordToken: "t"}), ErrMissingField)
}

// ---------------------------------------------------------------------------
// Partial updates
// ---------------------------------------------------------------------------

func TestValidate_ProfileUpdate(t *testing.T) {
	v := NewRequestValidator()

	require.ErrorIs(t, v.Validate(context.Background(), models.ProfileUpdate{}), ErrNoFieldsToUpdate)
	require.NoError(t, v.Validate(context.Background(), models.ProfileUpdate{Name: ptr("Bobby")}))
	require.ErrorIs(t, v.Validate(context.Background(), models.ProfileUpdate{Username: ptr(" ")}), ErrMissingField)

	// photo-only updates skip the emptiness check
	require.NoError(t, v.Validate(context.Background(), models.ProfileUpdate{}, FieldUsername))
}

func TestValidate_ListingDraft(t *testing.T) {
	v := NewRequestValidator()
	valid := models.ListingDraft{
		Title:       "Loft",
		Description: "Nice",
		Price:       80,
		Location:    &models.Location{Latitude: 48.85, Longitude: 2.35},
	}

	require.NoError(t, v.Validate(context.Background(), valid))

	noLocation := valid
	noLocation.Location = nil
	require.ErrorIs(t, v.Validate(context.Background(), noLocation), ErrMissingField)

	noPrice := valid
	noPrice.Price = 0
	require.ErrorIs(t, v.Validate(context.Background(), &noPrice), ErrMissingField)

	noTitle := valid
	noTitle.Title = ""
	require.ErrorIs(t, v.Validate(context.Background(), noTitle), ErrMissingField)
}

func TestValidate_ListingUpdate(t *testing.T) {
	v := NewRequestValidator()

	require.ErrorIs(t, v.Validate(context.Background(), models.ListingUpdate{}), ErrNoFieldsToUpdate)
	require.NoError(t, v.Validate(context.Background(), models.ListingUpdate{Price: ptr(120)}))
	require.ErrorIs(t, v.Validate(context.Background(), models.ListingUpdate{Price: ptr(-1)}), ErrMissingField)
	require.ErrorIs(t, v.Validate(context.Background(), models.ListingUpdate{Title: ptr("")}), ErrMissingField)
}

func TestValidate_ColumnBounds(t *testing.T) {
	v := NewRequestValidator()
	long := strings.Repeat("a", MaxTextLength+1)
	overflow := int64(MaxPrice) + 1
	draft := models.ListingDraft{
		Title:       "Loft",
		Description: "Nice",
		Price:       80,
		Location:    &models.Location{Latitude: 48.85, Longitude: 2.35},
	}

	withSignUp := func(fn func(*models.SignUpRequest)) models.SignUpRequest {
		req := validSignUp()
		fn(&req)
		return req
	}
	withDraft := func(fn func(*models.ListingDraft)) models.ListingDraft {
		req := draft
		fn(&req)
		return req
	}

	tests := []struct {
		name    string
		obj     any
		wantErr error
	}{
		{"signup username at limit", withSignUp(func(r *models.SignUpRequest) { r.Username = long[1:] }), nil},
		{"signup username multibyte at limit", withSignUp(func(r *models.SignUpRequest) { r.Username = strings.Repeat("é", MaxTextLength) }), nil},
		{"signup username too long", withSignUp(func(r *models.SignUpRequest) { r.Username = long }), ErrFieldTooLong},
		{"signup name too long", withSignUp(func(r *models.SignUpRequest) { r.Name = long }), ErrFieldTooLong},
		{"signup long description", withSignUp(func(r *models.SignUpRequest) { r.Description = long + long }), nil},
		{"signup email too long", withSignUp(func(r *models.SignUpRequest) { r.Email = strings.Repeat("b", MaxEmailLength) + "@x.com" }), ErrFieldTooLong},
		{"profile username too long", models.ProfileUpdate{Username: &long}, ErrFieldTooLong},
		{"profile name too long", models.ProfileUpdate{Name: &long}, ErrFieldTooLong},
		{"draft title too long", withDraft(func(r *models.ListingDraft) { r.Title = long }), ErrFieldTooLong},
		{"draft price at limit", withDraft(func(r *models.ListingDraft) { r.Price = MaxPrice }), nil},
		{"draft price overflow", withDraft(func(r *models.ListingDraft) { r.Price = int(overflow) }), ErrValueOutOfRange},
		{"update title too long", models.ListingUpdate{Title: &long}, ErrFieldTooLong},
		{"update price overflow", models.ListingUpdate{Price: ptr(int(overflow))}, ErrValueOutOfRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(context.Background(), tt.obj)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestValidate_UnsupportedType(t *testing.T) {
	require.ErrorIs(t, NewRequestValidator().Validate(context.Background(), 42), ErrUnsupportedType)
}
