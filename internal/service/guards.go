// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/google/uuid"

	"github.com/MKhiriev/go-airbnb-api/internal/config"
	"github.com/MKhiriev/go-airbnb-api/internal/validators"
)

// Authorize accepts a mutation only when actor owns the resource. Identifiers
// are compared as values, never through their string form.
func Authorize(actor, owner uuid.UUID) error {
	if actor == uuid.Nil || actor != owner {
		return ErrUnauthorized
	}
	return nil
}

// ImmutableGuard protects seed accounts and rooms from every mutation,
// whoever asks.
type ImmutableGuard struct {
	userIDs map[uuid.UUID]struct{}
	roomIDs map[uuid.UUID]struct{}
	emails  map[string]struct{}
}

func NewImmutableGuard(cfg config.Immutable) *ImmutableGuard {
	g := &ImmutableGuard{
		userIDs: make(map[uuid.UUID]struct{}, len(cfg.UserIDs)),
		roomIDs: make(map[uuid.UUID]struct{}, len(cfg.RoomIDs)),
		emails:  make(map[string]struct{}, len(cfg.Emails)),
	}
	for _, id := range cfg.UserIDs {
		g.userIDs[id] = struct{}{}
	}
	for _, id := range cfg.RoomIDs {
		g.roomIDs[id] = struct{}{}
	}
	for _, email := range cfg.Emails {
		g.emails[validators.NormalizeEmail(email)] = struct{}{}
	}

	return g
}

// Check returns ErrUserNotEditable when id is a protected account or email a
// protected address, ErrRoomNotEditable when id is a protected room, and nil
// otherwise. A zero id or an empty email is never protected.
func (g *ImmutableGuard) Check(id uuid.UUID, email string) error {
	if id != uuid.Nil {
		if _, ok := g.userIDs[id]; ok {
			return ErrUserNotEditable
		}
	}
	if email != "" {
		if _, ok := g.emails[validators.NormalizeEmail(email)]; ok {
			return ErrUserNotEditable
		}
	}
	if id != uuid.Nil {
		if _, ok := g.roomIDs[id]; ok {
			return ErrRoomNotEditable
		}
	}

	return nil
}
