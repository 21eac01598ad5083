package adapter

import (
	"bytes"
	"context"
	"crypto/sha1"
	"encoding/hex"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/MKhiriev/go-airbnb-api/internal/config"
	"github.com/MKhiriev/go-airbnb-api/internal/logger"
	"github.com/MKhiriev/go-airbnb-api/internal/utils"
)

const (
	cloudinaryUploadPath  = "/v1_1/{cloud}/image/upload"
	cloudinaryDestroyPath = "/v1_1/{cloud}/image/destroy"
)

var now = time.Now

// CloudinaryPhotoStorage keeps photos in a Cloudinary cloud. Keys are
// Cloudinary public ids, which already include the folder.
type CloudinaryPhotoStorage struct {
	client    *utils.HTTPClient
	cloudName string
	apiKey    string
	apiSecret string

	logger *logger.Logger
}

type cloudinaryUploadResponse struct {
	PublicID  string `json:"public_id"`
	SecureURL string `json:"secure_url"`
}

type cloudinaryDestroyResponse struct {
	Result string `json:"result"`
}

func NewCloudinaryPhotoStorage(cfg config.Cloudinary, timeout time.Duration, log *logger.Logger) (*CloudinaryPhotoStorage, error) {
	client, err := newRESTClient(cfg.BaseURL, timeout)
	if err != nil {
		return nil, err
	}

	return &CloudinaryPhotoStorage{
		client:    client,
		cloudName: cfg.CloudName,
		apiKey:    cfg.APIKey,
		apiSecret: cfg.APISecret,
		logger:    log,
	}, nil
}

// Upload sends a signed upload. A set obj.Key becomes the public id with
// overwrite enabled; otherwise Cloudinary generates an id inside obj.Folder.
func (c *CloudinaryPhotoStorage) Upload(ctx context.Context, obj UploadObject) (StoredObject, error) {
	params := map[string]string{
		"timestamp": strconv.FormatInt(now().Unix(), 10),
	}
	if obj.Key != "" {
		params["public_id"] = obj.Key
		params["overwrite"] = "true"
		params["invalidate"] = "true"
	} else {
		params["folder"] = obj.Folder
	}
	params["signature"] = c.sign(params)
	params["api_key"] = c.apiKey

	filename := obj.Filename
	if filename == "" {
		filename = "upload"
	}

	var result cloudinaryUploadResponse
	resp, err := c.client.R().
		SetContext(ctx).
		SetPathParam("cloud", c.cloudName).
		SetFileReader("file", filename, bytes.NewReader(obj.Data)).
		SetFormData(params).
		SetResult(&result).
		Post(cloudinaryUploadPath)
	if err != nil {
		c.logger.Err(err).Str("func", "CloudinaryPhotoStorage.Upload").Msg("upload request failed")
		return StoredObject{}, fmt.Errorf("%w: %w", ErrStorageUnavailable, err)
	}
	if err = mapHTTPError(resp); err != nil {
		c.logger.Err(err).Str("func", "CloudinaryPhotoStorage.Upload").Int("status", resp.StatusCode()).Msg("upload rejected")
		return StoredObject{}, fmt.Errorf("%w: %w", ErrStorageUnavailable, err)
	}

	return StoredObject{URL: result.SecureURL, Key: result.PublicID}, nil
}

func (c *CloudinaryPhotoStorage) Delete(ctx context.Context, key string) error {
	params := map[string]string{
		"public_id":  key,
		"invalidate": "true",
		"timestamp":  strconv.FormatInt(now().Unix(), 10),
	}
	params["signature"] = c.sign(params)
	params["api_key"] = c.apiKey

	var result cloudinaryDestroyResponse
	resp, err := c.client.R().
		SetContext(ctx).
		SetPathParam("cloud", c.cloudName).
		SetFormData(params).
		SetResult(&result).
		Post(cloudinaryDestroyPath)
	if err != nil {
		c.logger.Err(err).Str("func", "CloudinaryPhotoStorage.Delete").Msg("destroy request failed")
		return fmt.Errorf("%w: %w", ErrStorageUnavailable, err)
	}
	if err = mapHTTPError(resp); err != nil {
		c.logger.Err(err).Str("func", "CloudinaryPhotoStorage.Delete").Int("status", resp.StatusCode()).Msg("destroy rejected")
		return fmt.Errorf("%w: %w", ErrStorageUnavailable, err)
	}

	switch result.Result {
	case "ok", "not found":
		return nil
	default:
		return fmt.Errorf("%w: destroy %s: %s", ErrStorageUnavailable, key, result.Result)
	}
}

// sign computes the Cloudinary request signature: the sorted "k=v" pairs
// joined by "&", followed by the API secret, hashed with SHA-1.
func (c *CloudinaryPhotoStorage) sign(params map[string]string) string {
	keys := make([]string, 0, len(params))
	for k, v := range params {
		if v == "" {
			continue
		}
		keys = append(keys, k)
	}
	sort.Strings(keys)

	pairs := make([]string, 0, len(keys))
	for _, k := range keys {
		pairs = append(pairs, k+"="+params[k])
	}

	sum := sha1.Sum([]byte(strings.Join(pairs, "&") + c.apiSecret))
	return hex.EncodeToString(sum[:])
}
