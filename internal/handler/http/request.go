package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/MKhiriev/go-airbnb-api/models"
)

// maxRequestBody bounds every request body, uploads included.
const maxRequestBody = 10 << 20

const (
	contentTypeMultipart  = "multipart/form-data"
	contentTypeURLEncoded = "application/x-www-form-urlencoded"
)

func isForm(r *http.Request) bool {
	mediaType, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if err != nil {
		return false
	}
	return mediaType == contentTypeMultipart || mediaType == contentTypeURLEncoded
}

// parseForm parses a multipart or urlencoded body once; later calls are
// no-ops.
func parseForm(r *http.Request) error {
	if r.MultipartForm != nil || r.PostForm != nil {
		return nil
	}

	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if mediaType == contentTypeMultipart {
		return r.ParseMultipartForm(maxRequestBody)
	}
	return r.ParseForm()
}

// decodeBody fills dst from a JSON body, or from the text fields of a form
// body. Form fields are strings, so form bodies only suit requests whose
// fields are all strings. Errors wrap ErrInvalidBody.
func decodeBody(r *http.Request, dst any) error {
	if err := decode(r, dst); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidBody, err)
	}
	return nil
}

func decode(r *http.Request, dst any) error {
	if isForm(r) {
		if err := parseForm(r); err != nil {
			return err
		}

		fields := make(map[string]string, len(r.PostForm))
		for key := range r.PostForm {
			fields[key] = r.PostForm.Get(key)
		}
		raw, err := json.Marshal(fields)
		if err != nil {
			return err
		}
		return json.Unmarshal(raw, dst)
	}

	err := json.NewDecoder(r.Body).Decode(dst)
	if errors.Is(err, io.EOF) {
		// an empty body decodes to the zero value; the service reports
		// the missing fields
		return nil
	}
	return err
}

// readUpload returns the file sent in the form field name, or nil when the
// request carries none.
func readUpload(r *http.Request, name string) (*models.Upload, error) {
	if !isForm(r) {
		return nil, nil
	}
	if err := parseForm(r); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidBody, err)
	}

	file, header, err := r.FormFile(name)
	if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidBody, err)
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidBody, err)
	}

	contentType := header.Header.Get("Content-Type")
	if contentType == "" || contentType == "application/octet-stream" {
		contentType = http.DetectContentType(data)
	}

	return &models.Upload{
		Filename:    header.Filename,
		ContentType: contentType,
		Data:        data,
	}, nil
}

func urlID(r *http.Request) (uuid.UUID, error) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: %w", ErrInvalidID, err)
	}
	return id, nil
}

func queryInt(r *http.Request, key string) (*int, error) {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return nil, fmt.Errorf("%w %q: %w", ErrInvalidQuery, key, err)
	}
	return &v, nil
}

func queryFloat(r *http.Request, key string) (*float64, error) {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, fmt.Errorf("%w %q: %w", ErrInvalidQuery, key, err)
	}
	return &v, nil
}
