package service

import (
	"github.com/MKhiriev/go-airbnb-api/internal/adapter"
	"github.com/MKhiriev/go-airbnb-api/internal/config"
	"github.com/MKhiriev/go-airbnb-api/internal/logger"
	"github.com/MKhiriev/go-airbnb-api/internal/store"
	"github.com/MKhiriev/go-airbnb-api/internal/utils"
)

// Services groups the business services and guards used by the handlers
// and workers.
type Services struct {
	AuthService          AuthService
	AccountService       AccountService
	ListingService       ListingService
	PasswordResetService PasswordResetService
	AppInfoService       AppInfoService

	ImmutableGuard *ImmutableGuard
}

func NewServices(storages *store.Storages, adapters *adapter.Adapters, cfg *config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	appInfo, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, err
	}

	ids := utils.NewUUIDGenerator()
	photos := NewPhotoManager(adapters.PhotoStorage, logger)

	return &Services{
		AuthService:    NewAuthService(storages.AccountRepository, adapters.Mailer, ids, logger),
		AccountService: NewAccountService(storages.AccountRepository, storages.ListingRepository, photos, logger),
		ListingService: NewListingValidationService().Wrap(
			NewListingService(storages.ListingRepository, storages.AccountRepository, photos, ids, logger),
		),
		PasswordResetService: NewPasswordResetService(storages.AccountRepository, adapters.Mailer, cfg.App, logger),
		AppInfoService:       appInfo,
		ImmutableGuard:       NewImmutableGuard(cfg.App.Immutable),
	}, nil
}
