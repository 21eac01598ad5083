package service

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-airbnb-api/internal/adapter"
	"github.com/MKhiriev/go-airbnb-api/internal/logger"
	"github.com/MKhiriev/go-airbnb-api/internal/mock"
	"github.com/MKhiriev/go-airbnb-api/models"
)

var errStorage = errors.New("storage error")

func newTestPhotoManager(t *testing.T) (*PhotoManager, *mock.MockPhotoStorage) {
	t.Helper()
	storage := mock.NewMockPhotoStorage(gomock.NewController(t))
	return NewPhotoManager(storage, logger.Nop()), storage
}

// ─────────────────────────────────────────────
// StripExtension
// ─────────────────────────────────────────────

func TestStripExtension(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"https://res.cloudinary.com/demo/image/upload/v1/airbnb/users/1/abc.jpg", "https://res.cloudinary.com/demo/image/upload/v1/airbnb/users/1/abc"},
		{"https://cdn.example.com/a/b.c/photo", "https://cdn.example.com/a/b.c/photo"},
		{"https://cdn.example.com/photo", "https://cdn.example.com/photo"},
		{"https://cdn.example.com/archive.tar.gz", "https://cdn.example.com/archive.tar"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, StripExtension(tt.in))
		})
	}
}

// ─────────────────────────────────────────────
// Put
// ─────────────────────────────────────────────

func TestPhotoManager_Put_AbsentToPresent(t *testing.T) {
	m, storage := newTestPhotoManager(t)
	id := uuid.New()

	storage.EXPECT().
		Upload(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, obj adapter.UploadObject) (adapter.StoredObject, error) {
			assert.Equal(t, "airbnb/users/"+id.String(), obj.Folder)
			assert.Empty(t, obj.Key)
			assert.Equal(t, "image/png", obj.ContentType)
			return adapter.StoredObject{URL: "https://cdn/x/new.png", Key: "x/new"}, nil
		})

	photo, err := m.Put(context.Background(), nil, accountPhotoFolder(id), models.Upload{
		Filename: "me.png", ContentType: "image/png", Data: []byte("png"),
	})

	require.NoError(t, err)
	assert.Equal(t, models.Photo{URL: "https://cdn/x/new", StorageKey: "x/new"}, photo)
}

func TestPhotoManager_Put_ReplaceReusesKey(t *testing.T) {
	m, storage := newTestPhotoManager(t)
	current := &models.Photo{URL: "https://cdn/x/old", StorageKey: "x/old"}

	storage.EXPECT().
		Upload(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, obj adapter.UploadObject) (adapter.StoredObject, error) {
			assert.Equal(t, "x/old", obj.Key)
			return adapter.StoredObject{URL: "https://cdn/v2/x/old.jpg", Key: "x/old"}, nil
		})

	photo, err := m.Put(context.Background(), current, "airbnb/users/1", models.Upload{Data: []byte("jpg")})

	require.NoError(t, err)
	assert.Equal(t, "x/old", photo.StorageKey)
	assert.Equal(t, "https://cdn/v2/x/old", photo.URL)
}

func TestPhotoManager_Put_UploadError(t *testing.T) {
	m, storage := newTestPhotoManager(t)
	storage.EXPECT().Upload(gomock.Any(), gomock.Any()).Return(adapter.StoredObject{}, errStorage)

	_, err := m.Put(context.Background(), nil, "f", models.Upload{Data: []byte("x")})

	require.ErrorIs(t, err, ErrUpstreamUnavailable)
	require.ErrorIs(t, err, errStorage)
}

func TestPhotoManager_Put_EmptyUpload_NoStorageCall(t *testing.T) {
	m, _ := newTestPhotoManager(t)

	_, err := m.Put(context.Background(), nil, "f", models.Upload{})
	require.ErrorIs(t, err, ErrMissingParameters)
}

// ─────────────────────────────────────────────
// Release
// ─────────────────────────────────────────────

func TestPhotoManager_Release(t *testing.T) {
	m, storage := newTestPhotoManager(t)
	storage.EXPECT().Delete(gomock.Any(), "x/old").Return(nil)

	require.NoError(t, m.Release(context.Background(), "x/old"))
}

func TestPhotoManager_Release_Error(t *testing.T) {
	m, storage := newTestPhotoManager(t)
	storage.EXPECT().Delete(gomock.Any(), "x/old").Return(errStorage)

	require.ErrorIs(t, m.Release(context.Background(), "x/old"), ErrUpstreamUnavailable)
}

func TestPhotoManager_ReleaseAll_StopsAtFirstFailure(t *testing.T) {
	m, storage := newTestPhotoManager(t)
	gomock.InOrder(
		storage.EXPECT().Delete(gomock.Any(), "a").Return(nil),
		storage.EXPECT().Delete(gomock.Any(), "b").Return(errStorage),
	)

	released, err := m.ReleaseAll(context.Background(), "a", "b", "c")
	require.ErrorIs(t, err, ErrUpstreamUnavailable)
	assert.Equal(t, 1, released)
}

func TestPhotoManager_ReleaseAll_All(t *testing.T) {
	m, storage := newTestPhotoManager(t)
	storage.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).Times(2)

	released, err := m.ReleaseAll(context.Background(), "a", "b")
	require.NoError(t, err)
	assert.Equal(t, 2, released)
}
