// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"strings"
	"testing"

	"github.com/MKhiriev/go-airbnb-api/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int { return &v }

func Test_buildListListingsQuery(t *testing.T) {
	tests := []struct {
		name       string
		filter     models.ListingFilter
		checkQuery func(t *testing.T, query string, args []any)
	}{
		{
			name:   "empty filter selects everything newest first",
			filter: models.ListingFilter{},
			checkQuery: func(t *testing.T, query string, args []any) {
				assert.NotContains(t, query, "WHERE")
				assert.Contains(t, query, "FROM listings")
				assert.True(t, strings.HasSuffix(query, "ORDER BY created_at DESC"))
				assert.Empty(t, args)
			},
		},
		{
			name:   "title is matched case-insensitively and escaped",
			filter: models.ListingFilter{Title: "  50%_off "},
			checkQuery: func(t *testing.T, query string, args []any) {
				assert.Contains(t, query, "title ILIKE $1")
				require.Len(t, args, 1)
				assert.Equal(t, `%50\%\_off%`, args[0])
			},
		},
		{
			name:   "price bounds",
			filter: models.ListingFilter{PriceMin: intPtr(50), PriceMax: intPtr(200)},
			checkQuery: func(t *testing.T, query string, args []any) {
				assert.Contains(t, query, "price >= $1 AND price <= $2")
				assert.Equal(t, []any{50, 200}, args)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, args, err := buildListListingsQuery(tt.filter)
			require.NoError(t, err)
			tt.checkQuery(t, query, args)
		})
	}
}

func Test_buildListListingsQuery_SelectsAllExpectedColumns(t *testing.T) {
	query, _, err := buildListListingsQuery(models.ListingFilter{})
	require.NoError(t, err)

	for _, c := range listingColumnNames {
		assert.Contains(t, query, c)
	}
}

func Test_buildListNearQuery(t *testing.T) {
	query, args, err := buildListNearQuery(models.Location{Latitude: 1.5, Longitude: -2.5}, 0.1)
	require.NoError(t, err)

	assert.Contains(t, query, "WHERE sqrt(power(latitude - $1, 2) + power(longitude - $2, 2)) <= $3")
	assert.Contains(t, query, "ORDER BY sqrt(power(latitude - $4, 2) + power(longitude - $5, 2)) ASC")
	assert.Equal(t, []any{1.5, -2.5, 0.1, 1.5, -2.5}, args)
}

func Test_buildListByOwnerQuery(t *testing.T) {
	owner := uuid.New()

	query, args, err := buildListByOwnerQuery(owner)
	require.NoError(t, err)

	assert.Contains(t, query, "WHERE owner_id = $1")
	assert.Contains(t, query, "ORDER BY created_at ASC")
	assert.Equal(t, []any{owner.String()}, args)
}

func Test_buildUpdateListingQuery(t *testing.T) {
	id := uuid.New()
	title := "Loft"
	description := "Sunny"
	price := 90

	tests := []struct {
		name       string
		update     models.ListingUpdate
		checkQuery func(t *testing.T, query string, args []any)
	}{
		{
			name:   "single field",
			update: models.ListingUpdate{Price: &price},
			checkQuery: func(t *testing.T, query string, args []any) {
				assert.Contains(t, query, "UPDATE listings SET price = $1, updated_at = NOW() WHERE id = $2")
				assert.NotContains(t, query, "title =")
				assert.Equal(t, []any{90, id.String()}, args)
			},
		},
		{
			name: "all fields",
			update: models.ListingUpdate{
				Title:       &title,
				Description: &description,
				Price:       &price,
				Location:    &models.Location{Latitude: 1, Longitude: 2},
			},
			checkQuery: func(t *testing.T, query string, args []any) {
				assert.Contains(t, query, "title = $1, description = $2, price = $3, latitude = $4, longitude = $5")
				assert.Contains(t, query, "WHERE id = $6")
				assert.Contains(t, query, "RETURNING id, owner_id")
				assert.Equal(t, []any{"Loft", "Sunny", 90, 1.0, 2.0, id.String()}, args)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, args, err := buildUpdateListingQuery(id, tt.update)
			require.NoError(t, err)
			tt.checkQuery(t, query, args)
		})
	}
}
