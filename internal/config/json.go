package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
)

// StructuredJSONConfig mirrors [StructuredConfig] for JSON config files.
type StructuredJSONConfig struct {
	App struct {
		LogLevel      string   `json:"log_level"`
		Version       string   `json:"version"`
		ResetTokenKey string   `json:"reset_token_key"`
		ResetTokenTTL Duration `json:"reset_token_ttl"`
		ResetURL      string   `json:"reset_url"`
		Immutable     struct {
			UserIDs []uuid.UUID `json:"user_ids"`
			RoomIDs []uuid.UUID `json:"room_ids"`
			Emails  []string    `json:"emails"`
		} `json:"immutable,omitempty"`
	} `json:"app,omitempty"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`

		Photos struct {
			Backend string `json:"backend"`
			S3      struct {
				Endpoint  string `json:"endpoint"`
				Region    string `json:"region"`
				Bucket    string `json:"bucket"`
				AccessKey string `json:"access_key"`
				SecretKey string `json:"secret_key"`
				PublicURL string `json:"public_url"`
			} `json:"s3,omitempty"`
			Cloudinary struct {
				CloudName string `json:"cloud_name"`
				APIKey    string `json:"api_key"`
				APISecret string `json:"api_secret"`
				BaseURL   string `json:"base_url"`
			} `json:"cloudinary,omitempty"`
		} `json:"photos,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"server,omitempty"`

	Adapter struct {
		Mailgun struct {
			Domain  string `json:"domain"`
			APIKey  string `json:"api_key"`
			Sender  string `json:"sender"`
			BaseURL string `json:"base_url"`
		} `json:"mailgun,omitempty"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"adapter,omitempty"`

	Workers struct {
		ResetSweepInterval Duration `json:"reset_sweep_interval"`
	} `json:"workers,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	s3 := jsonCfg.Storage.Photos.S3
	cld := jsonCfg.Storage.Photos.Cloudinary
	mg := jsonCfg.Adapter.Mailgun

	cfg := &StructuredConfig{
		App: App{
			LogLevel:      jsonCfg.App.LogLevel,
			Version:       jsonCfg.App.Version,
			ResetTokenKey: jsonCfg.App.ResetTokenKey,
			ResetTokenTTL: time.Duration(jsonCfg.App.ResetTokenTTL),
			ResetURL:      jsonCfg.App.ResetURL,
			Immutable: Immutable{
				UserIDs: jsonCfg.App.Immutable.UserIDs,
				RoomIDs: jsonCfg.App.Immutable.RoomIDs,
				Emails:  jsonCfg.App.Immutable.Emails,
			},
		},
		Storage: Storage{
			DB: DB{
				DSN: jsonCfg.Storage.DB.DSN,
			},
			Photos: Photos{
				Backend: jsonCfg.Storage.Photos.Backend,
				S3: S3{
					Endpoint:  s3.Endpoint,
					Region:    s3.Region,
					Bucket:    s3.Bucket,
					AccessKey: s3.AccessKey,
					SecretKey: s3.SecretKey,
					PublicURL: s3.PublicURL,
				},
				Cloudinary: Cloudinary{
					CloudName: cld.CloudName,
					APIKey:    cld.APIKey,
					APISecret: cld.APISecret,
					BaseURL:   cld.BaseURL,
				},
			},
		},
		Server: Server{
			HTTPAddress:    jsonCfg.Server.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Server.RequestTimeout),
		},
		Adapter: Adapter{
			Mailgun: Mailgun{
				Domain:  mg.Domain,
				APIKey:  mg.APIKey,
				Sender:  mg.Sender,
				BaseURL: mg.BaseURL,
			},
			RequestTimeout: time.Duration(jsonCfg.Adapter.RequestTimeout),
		},
		Workers: Workers{
			ResetSweepInterval: time.Duration(jsonCfg.Workers.ResetSweepInterval),
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
