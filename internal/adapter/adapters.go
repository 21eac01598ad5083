package adapter

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-airbnb-api/internal/config"
	"github.com/MKhiriev/go-airbnb-api/internal/logger"
)

// Adapters groups the outbound integrations used by the service layer.
type Adapters struct {
	PhotoStorage PhotoStorage
	Mailer       Mailer
}

// NewAdapters builds the photo storage selected by
// cfg.Storage.Photos.Backend and a Mailgun mailer, falling back to
// [LogMailer] when Mailgun is not configured.
func NewAdapters(ctx context.Context, cfg *config.StructuredConfig, log *logger.Logger) (*Adapters, error) {
	storage, err := NewPhotoStorage(ctx, cfg.Storage.Photos, cfg.Adapter, log)
	if err != nil {
		return nil, err
	}

	var mailer Mailer
	if cfg.Adapter.Mailgun.Enabled() {
		mailer, err = NewMailgunMailer(cfg.Adapter.Mailgun, cfg.Adapter.RequestTimeout, log)
		if err != nil {
			return nil, fmt.Errorf("mailgun: %w", err)
		}
	} else {
		log.Warn().Msg("mailgun is not configured, mails will be logged")
		mailer = NewLogMailer(log)
	}

	return &Adapters{PhotoStorage: storage, Mailer: mailer}, nil
}

func NewPhotoStorage(ctx context.Context, cfg config.Photos, adapterCfg config.Adapter, log *logger.Logger) (PhotoStorage, error) {
	switch cfg.Backend {
	case config.PhotoBackendS3:
		storage, err := NewS3PhotoStorage(ctx, cfg.S3, log)
		if err != nil {
			return nil, fmt.Errorf("s3: %w", err)
		}
		return storage, nil
	case config.PhotoBackendCloudinary:
		storage, err := NewCloudinaryPhotoStorage(cfg.Cloudinary, adapterCfg.RequestTimeout, log)
		if err != nil {
			return nil, fmt.Errorf("cloudinary: %w", err)
		}
		return storage, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownPhotoBackend, cfg.Backend)
	}
}
