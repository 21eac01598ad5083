package service

import (
	"testing"

	"github.com/google/uuid"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-airbnb-api/internal/logger"
	"github.com/MKhiriev/go-airbnb-api/internal/mock"
	"github.com/MKhiriev/go-airbnb-api/internal/utils"
	"github.com/MKhiriev/go-airbnb-api/models"
)

// ─────────────────────────────────────────────
// Fixtures shared by the service tests
// ─────────────────────────────────────────────

type fixedIDs struct{ id uuid.UUID }

func (f fixedIDs) Generate() uuid.UUID { return f.id }

type deps struct {
	accounts *mock.MockAccountRepository
	listings *mock.MockListingRepository
	storage  *mock.MockPhotoStorage
	mailer   *mock.MockMailer
	photos   *PhotoManager
}

func newDeps(t *testing.T) deps {
	t.Helper()
	ctrl := gomock.NewController(t)

	storage := mock.NewMockPhotoStorage(ctrl)
	return deps{
		accounts: mock.NewMockAccountRepository(ctrl),
		listings: mock.NewMockListingRepository(ctrl),
		storage:  storage,
		mailer:   mock.NewMockMailer(ctrl),
		photos:   NewPhotoManager(storage, logger.Nop()),
	}
}

// accountWithPassword returns a stored account whose password is password.
func accountWithPassword(password string) models.Account {
	salt := "salt-" + password
	return models.Account{
		ID:       uuid.New(),
		Email:    "bob@x.com",
		Username: "bob",
		Credential: models.Credential{
			Salt:  salt,
			Hash:  utils.DeriveHash(password, salt),
			Token: "token-0",
		},
		Profile: models.AccountProfile{Name: "Bob", Description: "hi"},
	}
}

func ptr[T any](v T) *T { return &v }
