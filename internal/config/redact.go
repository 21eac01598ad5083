package config

import (
	"net/url"
	"strings"
)

const redactedValue = "[REDACTED]"

// Redacted returns a copy of c with every credential masked, suitable for
// logging. Empty credentials stay empty so a missing secret is still visible.
func (c StructuredConfig) Redacted() StructuredConfig {
	c.App.ResetTokenKey = redact(c.App.ResetTokenKey)
	c.Storage.DB.DSN = redactDSN(c.Storage.DB.DSN)
	c.Storage.Photos.S3.AccessKey = redact(c.Storage.Photos.S3.AccessKey)
	c.Storage.Photos.S3.SecretKey = redact(c.Storage.Photos.S3.SecretKey)
	c.Storage.Photos.Cloudinary.APIKey = redact(c.Storage.Photos.Cloudinary.APIKey)
	c.Storage.Photos.Cloudinary.APISecret = redact(c.Storage.Photos.Cloudinary.APISecret)
	c.Adapter.Mailgun.APIKey = redact(c.Adapter.Mailgun.APIKey)

	return c
}

func redact(secret string) string {
	if secret == "" {
		return ""
	}
	return redactedValue
}

// redactDSN masks the password of a URL-form DSN. A keyword/value DSN that
// names a password is masked whole.
func redactDSN(dsn string) string {
	if dsn == "" {
		return ""
	}

	u, err := url.Parse(dsn)
	if err == nil && u.Scheme != "" {
		if _, ok := u.User.Password(); ok {
			u.User = url.UserPassword(u.User.Username(), redactedValue)
		}
		return u.String()
	}

	if strings.Contains(dsn, "password=") {
		return redactedValue
	}
	return dsn
}
