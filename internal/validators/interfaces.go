// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks inbound requests of the airbnb-api server before
// they reach the service layer: required fields, email grammar and the
// "nothing to update" rule for partial updates.
package validators

import "context"

// Validator checks a request value. fields, when given, restricts the
// check to the named fields; otherwise every rule of the request type runs.
type Validator interface {
	Validate(ctx context.Context, obj any, fields ...string) error
}
