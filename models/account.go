// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"time"

	"github.com/google/uuid"
)

// Account represents a marketplace user together with the secret material
// used to authenticate it.
// Credential and reset fields must never leave the server; use [Account.Session]
// or [Account.PublicProfile] to build a response.
type Account struct {
	ID    uuid.UUID
	Email string

	// Username is unique across all accounts.
	Username string

	Credential Credential
	Profile    AccountProfile

	// ListingIDs holds the identifiers of the listings owned by the account,
	// in creation order.
	ListingIDs []uuid.UUID

	// ResetTokenHash and ResetExpiresAt are both set while a password reset
	// is pending and both nil otherwise.
	ResetTokenHash *string
	ResetExpiresAt *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Credential is the per-account secret material.
type Credential struct {
	// Salt is a random high-entropy string mixed into the password hash.
	Salt string
	// Hash is DeriveHash(password, Salt).
	Hash string
	// Token is the long-lived opaque bearer token. It is rotated on
	// password change only.
	Token string
}

// AccountProfile holds the public, self-editable part of an account.
type AccountProfile struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Photo       *Photo `json:"photo,omitempty"`
}

// AccountView is the public "account" object embedded in responses.
type AccountView struct {
	Username    string `json:"username"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Photo       *Photo `json:"photo,omitempty"`
}

// Session is returned to the account holder after sign up, log in or a
// credential change. It carries the bearer token but never the salt or hash.
type Session struct {
	ID      uuid.UUID   `json:"_id"`
	Token   string      `json:"token,omitempty"`
	Email   string      `json:"email"`
	Account AccountView `json:"account"`
}

// Profile is the view of an account visible to anyone.
type Profile struct {
	ID      uuid.UUID   `json:"_id"`
	Account AccountView `json:"account"`
	Rooms   []uuid.UUID `json:"rooms"`
}

func (a Account) view() AccountView {
	return AccountView{
		Username:    a.Username,
		Name:        a.Profile.Name,
		Description: a.Profile.Description,
		Photo:       a.Profile.Photo,
	}
}

// Session builds the owner-facing view of the account.
func (a Account) Session() Session {
	return Session{
		ID:      a.ID,
		Token:   a.Credential.Token,
		Email:   a.Email,
		Account: a.view(),
	}
}

// PublicProfile builds the public view of the account.
func (a Account) PublicProfile() Profile {
	rooms := a.ListingIDs
	if rooms == nil {
		rooms = []uuid.UUID{}
	}

	return Profile{
		ID:      a.ID,
		Account: a.view(),
		Rooms:   rooms,
	}
}
