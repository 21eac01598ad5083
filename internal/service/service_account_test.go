package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-airbnb-api/internal/adapter"
	"github.com/MKhiriev/go-airbnb-api/internal/logger"
	"github.com/MKhiriev/go-airbnb-api/internal/store"
	"github.com/MKhiriev/go-airbnb-api/models"
)

func newTestAccountService(d deps) AccountService {
	return NewAccountService(d.accounts, d.listings, d.photos, logger.Nop())
}

func returnAccount(_ context.Context, a models.Account) (models.Account, error) {
	return a, nil
}

// ─────────────────────────────────────────────
// GetProfile
// ─────────────────────────────────────────────

func TestAccountService_GetProfile(t *testing.T) {
	d := newDeps(t)
	svc := newTestAccountService(d)
	stored := accountWithPassword("pw1")
	stored.ListingIDs = []uuid.UUID{uuid.New()}

	d.accounts.EXPECT().FindAccountByID(gomock.Any(), stored.ID).Return(stored, nil)

	profile, err := svc.GetProfile(context.Background(), stored.ID)

	require.NoError(t, err)
	assert.Equal(t, stored.ID, profile.ID)
	assert.Equal(t, "bob", profile.Account.Username)
	assert.Equal(t, stored.ListingIDs, profile.Rooms)
}

func TestAccountService_GetProfile_NotFound(t *testing.T) {
	d := newDeps(t)
	svc := newTestAccountService(d)

	d.accounts.EXPECT().FindAccountByID(gomock.Any(), gomock.Any()).Return(models.Account{}, store.ErrAccountNotFound)

	_, err := svc.GetProfile(context.Background(), uuid.New())
	require.ErrorIs(t, err, ErrAccountNotFound)
	require.ErrorIs(t, err, ErrNotFound)
}

// ─────────────────────────────────────────────
// UpdateProfile
// ─────────────────────────────────────────────

func TestAccountService_UpdateProfile_FieldsOnly(t *testing.T) {
	d := newDeps(t)
	svc := newTestAccountService(d)
	actor := accountWithPassword("pw1")

	d.accounts.EXPECT().UsernameExists(gomock.Any(), "bobby", actor.ID).Return(false, nil)
	d.accounts.EXPECT().
		UpdateAccount(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, a models.Account) (models.Account, error) {
			assert.Equal(t, "bobby", a.Username)
			assert.Equal(t, "Bob", a.Profile.Name)
			assert.Equal(t, "new bio", a.Profile.Description)
			return a, nil
		})

	session, err := svc.UpdateProfile(context.Background(), actor, actor.ID, models.ProfileUpdate{
		Username:    ptr("bobby"),
		Description: ptr("new bio"),
	}, nil)

	require.NoError(t, err)
	assert.Equal(t, "bobby", session.Account.Username)
	assert.Equal(t, actor.Credential.Token, session.Token)
}

func TestAccountService_UpdateProfile_SameUsernameSkipsCheck(t *testing.T) {
	d := newDeps(t)
	svc := newTestAccountService(d)
	actor := accountWithPassword("pw1")

	d.accounts.EXPECT().UpdateAccount(gomock.Any(), gomock.Any()).DoAndReturn(returnAccount)

	_, err := svc.UpdateProfile(context.Background(), actor, actor.ID, models.ProfileUpdate{Username: ptr("bob")}, nil)
	require.NoError(t, err)
}

func TestAccountService_UpdateProfile_NotOwner(t *testing.T) {
	d := newDeps(t)
	svc := newTestAccountService(d)
	actor := accountWithPassword("pw1")

	_, err := svc.UpdateProfile(context.Background(), actor, uuid.New(), models.ProfileUpdate{Name: ptr("x")}, nil)
	require.ErrorIs(t, err, ErrUnauthorized)
}

func TestAccountService_UpdateProfile_NothingToUpdate(t *testing.T) {
	d := newDeps(t)
	svc := newTestAccountService(d)
	actor := accountWithPassword("pw1")

	_, err := svc.UpdateProfile(context.Background(), actor, actor.ID, models.ProfileUpdate{}, nil)
	require.ErrorIs(t, err, ErrMissingParameters)
}

func TestAccountService_UpdateProfile_DuplicateUsername(t *testing.T) {
	d := newDeps(t)
	svc := newTestAccountService(d)
	actor := accountWithPassword("pw1")

	d.accounts.EXPECT().UsernameExists(gomock.Any(), "alice", actor.ID).Return(true, nil)

	_, err := svc.UpdateProfile(context.Background(), actor, actor.ID, models.ProfileUpdate{Username: ptr("alice")}, nil)
	require.ErrorIs(t, err, ErrDuplicateUsername)
}

func TestAccountService_UpdateProfile_UploadFailurePersistsNothing(t *testing.T) {
	d := newDeps(t)
	svc := newTestAccountService(d)
	actor := accountWithPassword("pw1")

	// no UpdateAccount expectation: the name edit must not be written
	d.storage.EXPECT().Upload(gomock.Any(), gomock.Any()).Return(adapter.StoredObject{}, adapter.ErrStorageUnavailable)

	_, err := svc.UpdateProfile(context.Background(), actor, actor.ID,
		models.ProfileUpdate{Name: ptr("Robert")},
		&models.Upload{Filename: "me.jpg", Data: []byte("jpg")},
	)
	require.ErrorIs(t, err, ErrUpstreamUnavailable)
}

func TestAccountService_UpdateProfile_FirstPhoto(t *testing.T) {
	d := newDeps(t)
	svc := newTestAccountService(d)
	actor := accountWithPassword("pw1")

	gomock.InOrder(
		d.storage.EXPECT().
			Upload(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, obj adapter.UploadObject) (adapter.StoredObject, error) {
				assert.Equal(t, "airbnb/users/"+actor.ID.String(), obj.Folder)
				assert.Empty(t, obj.Key)
				return adapter.StoredObject{URL: "https://cdn/airbnb/users/k1.jpg", Key: "airbnb/users/k1"}, nil
			}),
		d.accounts.EXPECT().UpdateAccount(gomock.Any(), gomock.Any()).DoAndReturn(returnAccount),
	)

	session, err := svc.UpdateProfile(context.Background(), actor, actor.ID, models.ProfileUpdate{}, &models.Upload{Data: []byte("jpg")})

	require.NoError(t, err)
	require.NotNil(t, session.Account.Photo)
	assert.Equal(t, models.Photo{URL: "https://cdn/airbnb/users/k1", StorageKey: "airbnb/users/k1"}, *session.Account.Photo)
}

func TestAccountService_UpdateProfile_ReplacePhotoReusesKey(t *testing.T) {
	d := newDeps(t)
	svc := newTestAccountService(d)
	actor := accountWithPassword("pw1")
	actor.Profile.Photo = &models.Photo{URL: "https://cdn/k0", StorageKey: "airbnb/users/k0"}

	d.storage.EXPECT().
		Upload(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, obj adapter.UploadObject) (adapter.StoredObject, error) {
			assert.Equal(t, "airbnb/users/k0", obj.Key)
			return adapter.StoredObject{URL: "https://cdn/v2/k0.png", Key: "airbnb/users/k0"}, nil
		})
	d.accounts.EXPECT().UpdateAccount(gomock.Any(), gomock.Any()).DoAndReturn(returnAccount)

	session, err := svc.UpdateProfile(context.Background(), actor, actor.ID, models.ProfileUpdate{}, &models.Upload{Data: []byte("png")})

	require.NoError(t, err)
	assert.Equal(t, "https://cdn/v2/k0", session.Account.Photo.URL)
	assert.Equal(t, "airbnb/users/k0", session.Account.Photo.StorageKey)
}

func TestAccountService_UpdateProfile_PersistFailureReleasesFreshPhoto(t *testing.T) {
	d := newDeps(t)
	svc := newTestAccountService(d)
	actor := accountWithPassword("pw1")

	d.storage.EXPECT().Upload(gomock.Any(), gomock.Any()).Return(adapter.StoredObject{URL: "u.jpg", Key: "k"}, nil)
	d.accounts.EXPECT().UpdateAccount(gomock.Any(), gomock.Any()).Return(models.Account{}, store.ErrExecutingQuery)
	d.storage.EXPECT().Delete(gomock.Any(), "k").Return(nil)

	_, err := svc.UpdateProfile(context.Background(), actor, actor.ID, models.ProfileUpdate{}, &models.Upload{Data: []byte("x")})
	require.ErrorIs(t, err, ErrUpstreamUnavailable)
}

// ─────────────────────────────────────────────
// DeletePhoto
// ─────────────────────────────────────────────

func TestAccountService_DeletePhoto_StorageFirst(t *testing.T) {
	d := newDeps(t)
	svc := newTestAccountService(d)
	actor := accountWithPassword("pw1")
	actor.Profile.Photo = &models.Photo{URL: "https://cdn/k0", StorageKey: "k0"}

	gomock.InOrder(
		d.storage.EXPECT().Delete(gomock.Any(), "k0").Return(nil),
		d.accounts.EXPECT().
			UpdateAccount(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, a models.Account) (models.Account, error) {
				assert.Nil(t, a.Profile.Photo)
				return a, nil
			}),
	)

	session, err := svc.DeletePhoto(context.Background(), actor, actor.ID)

	require.NoError(t, err)
	assert.Nil(t, session.Account.Photo)
	// the caller's copy is left untouched
	assert.NotNil(t, actor.Profile.Photo)
}

func TestAccountService_DeletePhoto_StorageFailureKeepsReference(t *testing.T) {
	d := newDeps(t)
	svc := newTestAccountService(d)
	actor := accountWithPassword("pw1")
	actor.Profile.Photo = &models.Photo{StorageKey: "k0"}

	d.storage.EXPECT().Delete(gomock.Any(), "k0").Return(adapter.ErrStorageUnavailable)

	_, err := svc.DeletePhoto(context.Background(), actor, actor.ID)
	require.ErrorIs(t, err, ErrUpstreamUnavailable)
}

func TestAccountService_DeletePhoto_NoPhoto(t *testing.T) {
	d := newDeps(t)
	svc := newTestAccountService(d)
	actor := accountWithPassword("pw1")

	_, err := svc.DeletePhoto(context.Background(), actor, actor.ID)
	require.ErrorIs(t, err, ErrPhotoNotFound)
}

// ─────────────────────────────────────────────
// DeleteAccount
// ─────────────────────────────────────────────

func TestAccountService_DeleteAccount_ReleasesEverythingFirst(t *testing.T) {
	d := newDeps(t)
	svc := newTestAccountService(d)
	actor := accountWithPassword("pw1")
	actor.Profile.Photo = &models.Photo{StorageKey: "user-photo"}

	owned := []models.Listing{
		{ID: uuid.New(), OwnerID: actor.ID, Photos: []models.Photo{{StorageKey: "r1-a"}, {StorageKey: "r1-b"}}},
		{ID: uuid.New(), OwnerID: actor.ID, Photos: []models.Photo{}},
		{ID: uuid.New(), OwnerID: actor.ID, Photos: []models.Photo{{StorageKey: "r3-a"}}},
	}

	gomock.InOrder(
		d.listings.EXPECT().ListListingsByOwner(gomock.Any(), actor.ID).Return(owned, nil),
		d.storage.EXPECT().Delete(gomock.Any(), "user-photo").Return(nil),
		d.storage.EXPECT().Delete(gomock.Any(), "r1-a").Return(nil),
		d.storage.EXPECT().Delete(gomock.Any(), "r1-b").Return(nil),
		d.storage.EXPECT().Delete(gomock.Any(), "r3-a").Return(nil),
		d.accounts.EXPECT().DeleteAccount(gomock.Any(), actor.ID).Return(nil),
	)

	require.NoError(t, svc.DeleteAccount(context.Background(), actor))
}

func TestAccountService_DeleteAccount_StorageFailureKeepsRecords(t *testing.T) {
	d := newDeps(t)
	svc := newTestAccountService(d)
	actor := accountWithPassword("pw1")

	d.listings.EXPECT().ListListingsByOwner(gomock.Any(), actor.ID).Return([]models.Listing{
		{Photos: []models.Photo{{StorageKey: "r1-a"}}},
	}, nil)
	d.storage.EXPECT().Delete(gomock.Any(), "r1-a").Return(adapter.ErrStorageUnavailable)

	err := svc.DeleteAccount(context.Background(), actor)
	require.ErrorIs(t, err, ErrUpstreamUnavailable)
}

func TestAccountService_DeleteAccount_PartialReleaseClearsReferences(t *testing.T) {
	d := newDeps(t)
	svc := newTestAccountService(d)
	actor := accountWithPassword("pw1")
	actor.Profile.Photo = &models.Photo{StorageKey: "user-photo"}

	r1a := models.Photo{StorageKey: "r1-a"}
	r2a := models.Photo{StorageKey: "r2-a"}
	r2b := models.Photo{StorageKey: "r2-b"}
	r3a := models.Photo{StorageKey: "r3-a"}
	owned := []models.Listing{
		{ID: uuid.New(), OwnerID: actor.ID, Photos: []models.Photo{r1a}},
		{ID: uuid.New(), OwnerID: actor.ID, Photos: []models.Photo{r2a, r2b}},
		{ID: uuid.New(), OwnerID: actor.ID, Photos: []models.Photo{r3a}},
	}

	cleared := actor
	cleared.Profile.Photo = nil

	gomock.InOrder(
		d.listings.EXPECT().ListListingsByOwner(gomock.Any(), actor.ID).Return(owned, nil),
		d.storage.EXPECT().Delete(gomock.Any(), "user-photo").Return(nil),
		d.storage.EXPECT().Delete(gomock.Any(), "r1-a").Return(nil),
		d.storage.EXPECT().Delete(gomock.Any(), "r2-a").Return(nil),
		d.storage.EXPECT().Delete(gomock.Any(), "r2-b").Return(adapter.ErrStorageUnavailable),
		d.accounts.EXPECT().UpdateAccount(gomock.Any(), cleared).Return(cleared, nil),
		d.listings.EXPECT().SetPhotos(gomock.Any(), owned[0].ID, gomock.Len(0)).Return(models.Listing{}, nil),
		d.listings.EXPECT().SetPhotos(gomock.Any(), owned[1].ID, []models.Photo{r2b}).Return(models.Listing{}, nil),
	)

	err := svc.DeleteAccount(context.Background(), actor)
	require.ErrorIs(t, err, ErrUpstreamUnavailable)
	assert.NotNil(t, actor.Profile.Photo)
}

func TestAccountService_DeleteAccount_AccountPhotoFailureWritesNothing(t *testing.T) {
	d := newDeps(t)
	svc := newTestAccountService(d)
	actor := accountWithPassword("pw1")
	actor.Profile.Photo = &models.Photo{StorageKey: "user-photo"}

	d.listings.EXPECT().ListListingsByOwner(gomock.Any(), actor.ID).Return([]models.Listing{
		{ID: uuid.New(), Photos: []models.Photo{{StorageKey: "r1-a"}}},
	}, nil)
	d.storage.EXPECT().Delete(gomock.Any(), "user-photo").Return(adapter.ErrStorageUnavailable)

	err := svc.DeleteAccount(context.Background(), actor)
	require.ErrorIs(t, err, ErrUpstreamUnavailable)
}
