// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// SignUpRequest carries the fields required to open an account.
type SignUpRequest struct {
	Email       string `json:"email"`
	Username    string `json:"username"`
	Password    string `json:"password"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// LogInRequest carries login credentials.
type LogInRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// ProfileUpdate is a partial account update; nil fields are left unchanged.
type ProfileUpdate struct {
	Username    *string `json:"username,omitempty"`
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
}

// IsEmpty reports whether no field is set.
func (u ProfileUpdate) IsEmpty() bool {
	return u.Username == nil && u.Name == nil && u.Description == nil
}

// PasswordUpdate is sent by an authenticated account to change its password.
type PasswordUpdate struct {
	PreviousPassword string `json:"previousPassword"`
	NewPassword      string `json:"newPassword"`
}

// PasswordRecovery starts the password reset flow.
type PasswordRecovery struct {
	Email string `json:"email"`
}

// PasswordReset completes the password reset flow.
type PasswordReset struct {
	PasswordToken string `json:"passwordToken"`
	Password      string `json:"password"`
}

// ListingDraft carries the fields of a new listing.
type ListingDraft struct {
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Price       int       `json:"price"`
	Location    *Location `json:"location"`
}

// ListingUpdate is a partial listing update; nil fields are left unchanged.
type ListingUpdate struct {
	Title       *string   `json:"title,omitempty"`
	Description *string   `json:"description,omitempty"`
	Price       *int      `json:"price,omitempty"`
	Location    *Location `json:"location,omitempty"`
}

// IsEmpty reports whether no field is set.
func (u ListingUpdate) IsEmpty() bool {
	return u.Title == nil && u.Description == nil && u.Price == nil && u.Location == nil
}

// ListingFilter narrows [ListingService.List]; the zero value matches every listing.
type ListingFilter struct {
	Title    string
	PriceMin *int
	PriceMax *int
}

// NearQuery asks for listings around a point. When either coordinate is
// missing the query degrades to an unfiltered listing.
type NearQuery struct {
	Latitude    *float64
	Longitude   *float64
	MaxDistance float64
}

// HasPoint reports whether both coordinates are present.
func (q NearQuery) HasPoint() bool {
	return q.Latitude != nil && q.Longitude != nil
}
