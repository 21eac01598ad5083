package config

import "time"

const (
	defaultHTTPAddress        = "localhost:3000"
	defaultRequestTimeout     = 30 * time.Second
	defaultAdapterTimeout     = 10 * time.Second
	defaultResetTokenTTL      = 15 * time.Minute
	defaultResetSweepInterval = time.Minute
	defaultLogLevel           = "debug"
	defaultS3Region           = "us-east-1"
	defaultCloudinaryBaseURL  = "https://api.cloudinary.com"
	defaultMailgunBaseURL     = "https://api.mailgun.net"
)

// defaultConfig returns the values used for every field no other source set.
func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			LogLevel:      defaultLogLevel,
			ResetTokenTTL: defaultResetTokenTTL,
		},
		Storage: Storage{
			Photos: Photos{
				Backend:    PhotoBackendS3,
				S3:         S3{Region: defaultS3Region},
				Cloudinary: Cloudinary{BaseURL: defaultCloudinaryBaseURL},
			},
		},
		Server: Server{
			HTTPAddress:    defaultHTTPAddress,
			RequestTimeout: defaultRequestTimeout,
		},
		Adapter: Adapter{
			Mailgun:        Mailgun{BaseURL: defaultMailgunBaseURL},
			RequestTimeout: defaultAdapterTimeout,
		},
		Workers: Workers{
			ResetSweepInterval: defaultResetSweepInterval,
		},
	}
}
