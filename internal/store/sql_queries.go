package store

import (
	"strings"

	"github.com/MKhiriev/go-airbnb-api/models"
	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
)

const (
	constraintAccountsEmail    = "accounts_email_key"
	constraintAccountsUsername = "accounts_username_key"
)

const (
	selectAccount = `SELECT a.id, a.email, a.username, a.salt, a.hash, a.token,
       a.name, a.description, a.photo, a.reset_token_hash, a.reset_expires_at,
       a.created_at, a.updated_at,
       COALESCE((SELECT json_agg(l.id ORDER BY l.created_at) FROM listings l WHERE l.owner_id = a.id), '[]')
    FROM accounts a`

	findAccountByID         = selectAccount + ` WHERE a.id = $1;`
	findAccountByEmail      = selectAccount + ` WHERE a.email = $1;`
	findAccountByToken      = selectAccount + ` WHERE a.token = $1;`
	findAccountByResetToken = selectAccount + ` WHERE a.reset_token_hash = $1;`

	createAccount = `INSERT INTO accounts (id, email, username, salt, hash, token, name, description)
    VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
    RETURNING created_at, updated_at;`

	emailExists    = `SELECT EXISTS (SELECT 1 FROM accounts WHERE email = $1);`
	usernameExists = `SELECT EXISTS (SELECT 1 FROM accounts WHERE username = $1 AND id <> $2);`

	updateAccount = `UPDATE accounts
    SET username = $2, name = $3, description = $4, photo = $5, updated_at = NOW()
    WHERE id = $1
    RETURNING updated_at;`

	updateCredential = `UPDATE accounts
    SET salt = $2, hash = $3, token = $4, updated_at = NOW()
    WHERE id = $1;`

	setResetToken = `UPDATE accounts
    SET reset_token_hash = $2, reset_expires_at = $3, updated_at = NOW()
    WHERE id = $1;`

	consumeResetToken = `UPDATE accounts
    SET salt = $2, hash = $3, token = $4,
        reset_token_hash = NULL, reset_expires_at = NULL, updated_at = NOW()
    WHERE reset_token_hash = $1 AND reset_expires_at > $5
    RETURNING id;`

	clearExpiredResetTokens = `UPDATE accounts
    SET reset_token_hash = NULL, reset_expires_at = NULL
    WHERE reset_expires_at IS NOT NULL AND reset_expires_at <= $1;`

	deleteOwnedListings = `DELETE FROM listings WHERE owner_id = $1;`
	deleteAccount       = `DELETE FROM accounts WHERE id = $1;`
)

const (
	listingColumns = `id, owner_id, title, description, price, rating_value, reviews,
    latitude, longitude, photos, created_at, updated_at`

	createListing = `INSERT INTO listings (id, owner_id, title, description, price, latitude, longitude)
    VALUES ($1, $2, $3, $4, $5, $6, $7)
    RETURNING ` + listingColumns + `;`

	findListing = `SELECT ` + listingColumns + ` FROM listings WHERE id = $1;`

	appendListingPhoto = `UPDATE listings
    SET photos = photos || $2::jsonb, updated_at = NOW()
    WHERE id = $1 AND jsonb_array_length(photos) < $3
    RETURNING ` + listingColumns + `;`

	setListingPhotos = `UPDATE listings
    SET photos = $2::jsonb, updated_at = NOW()
    WHERE id = $1
    RETURNING ` + listingColumns + `;`

	deleteListing = `DELETE FROM listings WHERE id = $1;`
)

// planarDistance is the euclidean distance in degrees between a listing and
// the (latitude, longitude) placeholder pair.
const planarDistance = "sqrt(power(latitude - ?, 2) + power(longitude - ?, 2))"

func psql() sq.StatementBuilderType {
	return sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
}

func selectListings() sq.SelectBuilder {
	return psql().Select(listingColumns).From("listings")
}

// buildListListingsQuery selects every listing matching filter, newest first.
func buildListListingsQuery(filter models.ListingFilter) (string, []any, error) {
	query := selectListings()

	if title := strings.TrimSpace(filter.Title); title != "" {
		query = query.Where(sq.ILike{"title": "%" + escapeLike(title) + "%"})
	}
	if filter.PriceMin != nil {
		query = query.Where(sq.GtOrEq{"price": *filter.PriceMin})
	}
	if filter.PriceMax != nil {
		query = query.Where(sq.LtOrEq{"price": *filter.PriceMax})
	}

	return query.OrderBy("created_at DESC").ToSql()
}

// buildListNearQuery selects the listings within maxDistance degrees of
// point, closest first.
func buildListNearQuery(point models.Location, maxDistance float64) (string, []any, error) {
	return selectListings().
		Where(sq.Expr(planarDistance+" <= ?", point.Latitude, point.Longitude, maxDistance)).
		OrderByClause(planarDistance+" ASC", point.Latitude, point.Longitude).
		ToSql()
}

// buildListByOwnerQuery selects the listings of one owner in creation order.
func buildListByOwnerQuery(ownerID uuid.UUID) (string, []any, error) {
	return selectListings().
		Where(sq.Eq{"owner_id": ownerID.String()}).
		OrderBy("created_at ASC").
		ToSql()
}

// buildUpdateListingQuery sets only the fields present in update.
func buildUpdateListingQuery(id uuid.UUID, update models.ListingUpdate) (string, []any, error) {
	query := psql().Update("listings")

	if update.Title != nil {
		query = query.Set("title", *update.Title)
	}
	if update.Description != nil {
		query = query.Set("description", *update.Description)
	}
	if update.Price != nil {
		query = query.Set("price", *update.Price)
	}
	if update.Location != nil {
		query = query.
			Set("latitude", update.Location.Latitude).
			Set("longitude", update.Location.Longitude)
	}

	return query.
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": id.String()}).
		Suffix("RETURNING " + listingColumns).
		ToSql()
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
