package service

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/MKhiriev/go-airbnb-api/internal/adapter"
	"github.com/MKhiriev/go-airbnb-api/internal/logger"
	"github.com/MKhiriev/go-airbnb-api/models"
)

const photoFolderRoot = "airbnb"

func accountPhotoFolder(id uuid.UUID) string {
	return photoFolderRoot + "/users/" + id.String()
}

func listingPhotoFolder(id uuid.UUID) string {
	return photoFolderRoot + "/rooms/" + id.String()
}

// PhotoManager keeps photo references consistent with the objects in the
// photo storage. Callers upload before persisting a reference, and release
// the object before clearing it, so a stored reference never points to a
// missing object.
type PhotoManager struct {
	storage adapter.PhotoStorage

	logger *logger.Logger
}

func NewPhotoManager(storage adapter.PhotoStorage, logger *logger.Logger) *PhotoManager {
	return &PhotoManager{storage: storage, logger: logger}
}

// Put uploads upload into folder. With a current photo, its storage key is
// reused as the overwrite target so the old object is replaced in place.
func (m *PhotoManager) Put(ctx context.Context, current *models.Photo, folder string, upload models.Upload) (models.Photo, error) {
	if len(upload.Data) == 0 {
		return models.Photo{}, ErrMissingParameters
	}

	obj := adapter.UploadObject{
		Folder:      folder,
		Filename:    upload.Filename,
		ContentType: upload.ContentType,
		Data:        upload.Data,
	}
	if current != nil {
		obj.Key = current.StorageKey
	}

	stored, err := m.storage.Upload(ctx, obj)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("folder", folder).Str("key", obj.Key).Msg("photo upload failed")
		return models.Photo{}, upstream(err)
	}

	return models.Photo{URL: StripExtension(stored.URL), StorageKey: stored.Key}, nil
}

// Release deletes the object stored under key.
func (m *PhotoManager) Release(ctx context.Context, key string) error {
	if err := m.storage.Delete(ctx, key); err != nil {
		logger.FromContext(ctx).Err(err).Str("key", key).Msg("photo delete failed")
		return upstream(err)
	}
	return nil
}

// ReleaseAll deletes the objects in keys in order, stopping at the first
// failure. released counts the leading keys that are gone; the caller must
// drop their references before reporting err.
func (m *PhotoManager) ReleaseAll(ctx context.Context, keys ...string) (released int, err error) {
	for _, key := range keys {
		if err = m.Release(ctx, key); err != nil {
			return released, err
		}
		released++
	}
	return released, nil
}

// StripExtension removes the trailing ".ext" segment of url. Dots before the
// last slash are kept.
func StripExtension(url string) string {
	dot := strings.LastIndex(url, ".")
	if dot < 0 || dot < strings.LastIndex(url, "/") {
		return url
	}
	return url[:dot]
}
