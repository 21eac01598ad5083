// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides outbound integrations of the airbnb-api server:
// object storage for account and room photos, and mail delivery.
//
// [PhotoStorage] has an S3 implementation ([NewS3PhotoStorage], AWS or any
// S3-compatible service such as MinIO) and a Cloudinary implementation
// ([NewCloudinaryPhotoStorage]). [Mailer] is backed by Mailgun
// ([NewMailgunMailer]) or, when Mailgun is not configured, by the log.
//
// HTTP error statuses of REST backends are mapped by mapHTTPError so that
// callers can use [errors.Is] (e.g. [ErrUnauthorized] for 401).
package adapter

import "context"

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// PhotoStorage stores image objects and deletes them by key.
type PhotoStorage interface {
	// Upload stores obj. When obj.Key is set the object under that key is
	// overwritten; otherwise a new key inside obj.Folder is generated.
	Upload(ctx context.Context, obj UploadObject) (StoredObject, error)

	// Delete removes the object stored under key. Deleting a missing
	// object is not an error.
	Delete(ctx context.Context, key string) error
}

// Mailer delivers plain-text mails.
type Mailer interface {
	Send(ctx context.Context, mail Mail) error
}
