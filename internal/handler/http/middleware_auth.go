package http

import (
	"context"
	"net/http"
	"strings"

	"github.com/MKhiriev/go-airbnb-api/internal/app"
	"github.com/MKhiriev/go-airbnb-api/internal/logger"
	"github.com/MKhiriev/go-airbnb-api/internal/utils"
	"github.com/MKhiriev/go-airbnb-api/models"
)

// auth resolves the bearer token of the request to an account and stores it
// in the request context under [utils.AccountCtxKey].
//
// A missing or malformed header and an unknown token are all answered with
// 401 and the same body. A store failure while resolving the token is
// answered with 503.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			log.Debug().Err(ErrEmptyAuthorizationHeader).Send()
			utils.WriteError(w, app.MsgUnauthorized, http.StatusUnauthorized)
			return
		}

		token, err := getTokenFromAuthHeader(authHeader)
		if err != nil {
			log.Debug().Err(err).Send()
			utils.WriteError(w, app.MsgUnauthorized, http.StatusUnauthorized)
			return
		}

		ctx := r.Context()
		account, err := h.services.AuthService.Authenticate(ctx, token)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		ctx = context.WithValue(ctx, utils.AccountCtxKey, account)
		ctx = logger.WithField(ctx, "account_id", account.ID.String())
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

const bearerScheme = "Bearer"

// getTokenFromAuthHeader extracts the token from a raw "Authorization"
// header value of the form "Bearer <token>":
//
//	Authorization: Bearer 6f1c...e2
//
// The scheme is matched case-insensitively. It returns
// [ErrInvalidAuthorizationHeader] when the token part is missing or the scheme
// is not Bearer, and [ErrEmptyToken] when the token is empty.
func getTokenFromAuthHeader(authHeader string) (string, error) {
	parts := strings.Split(authHeader, " ")
	if len(parts) < 2 || !strings.EqualFold(parts[0], bearerScheme) {
		return "", ErrInvalidAuthorizationHeader
	}

	tokenString := parts[1]
	if tokenString == "" {
		return "", ErrEmptyToken
	}

	return tokenString, nil
}

// actor returns the account placed in the context by auth.
func actor(r *http.Request) (models.Account, error) {
	account, ok := utils.GetAccountFromContext(r.Context())
	if !ok {
		return models.Account{}, ErrMissingActor
	}
	return account, nil
}
