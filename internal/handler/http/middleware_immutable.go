package http

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/MKhiriev/go-airbnb-api/internal/logger"
)

// immutable rejects any mutation that targets a protected seed resource. It
// runs before auth, so no token is needed to be told a resource is not
// editable.
//
// The target is the {id} URL parameter and the "email" field of the body.
// The body is read and restored for the next handler.
func (h *Handler) immutable(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, _ := uuid.Parse(chi.URLParam(r, "id"))

		email, err := peekEmail(r)
		if err != nil {
			logger.FromRequest(r).Debug().Err(err).Msg("email field could not be read")
		}

		if err = h.services.ImmutableGuard.Check(id, email); err != nil {
			writeServiceError(w, r, err)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// peekEmail reads the "email" field without consuming the body.
func peekEmail(r *http.Request) (string, error) {
	if r.Body == nil || r.Body == http.NoBody {
		return "", nil
	}

	if isForm(r) {
		if err := parseForm(r); err != nil {
			return "", err
		}
		return r.FormValue("email"), nil
	}

	body, err := io.ReadAll(r.Body)
	if err != nil {
		return "", err
	}
	r.Body = io.NopCloser(bytes.NewReader(body))

	if len(bytes.TrimSpace(body)) == 0 {
		return "", nil
	}

	var fields struct {
		Email string `json:"email"`
	}
	if err = json.Unmarshal(body, &fields); err != nil {
		return "", err
	}
	return fields.Email, nil
}
