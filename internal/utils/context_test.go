// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-airbnb-api/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestContextKeyString(t *testing.T) {
	key := contextKey("testKey")
	assert.Equal(t, "testKey", key.String())
}

func TestAccountCtxKey(t *testing.T) {
	assert.Equal(t, "account", AccountCtxKey.String())
}

func TestGetAccountFromContext_Success(t *testing.T) {
	want := models.Account{ID: uuid.New(), Email: "bob@x.com"}
	ctx := context.WithValue(context.Background(), AccountCtxKey, want)

	got, ok := GetAccountFromContext(ctx)

	assert.True(t, ok)
	assert.Equal(t, want, got)
}

func TestGetAccountFromContext_Missing(t *testing.T) {
	got, ok := GetAccountFromContext(context.Background())

	assert.False(t, ok)
	assert.Equal(t, models.Account{}, got)
}

func TestGetAccountFromContext_WrongType(t *testing.T) {
	ctx := context.WithValue(context.Background(), AccountCtxKey, "not-an-account")

	_, ok := GetAccountFromContext(ctx)

	assert.False(t, ok)
}

func TestGetAccountFromContext_DifferentKey(t *testing.T) {
	ctx := context.WithValue(context.Background(), contextKey("other"), models.Account{ID: uuid.New()})

	_, ok := GetAccountFromContext(ctx)

	assert.False(t, ok)
}
