// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks request bodies before they reach the services.
//
// A [Validator] validates a value and can be scoped to a subset of its
// fields; with no fields it checks the default set for the type. Failures
// are [*Error] values whose Message is returned to the API client.
package validators

import "context"

// Validator validates the provided input and optionally restricts
// validation to the named fields.
type Validator interface {
	Validate(ctx context.Context, obj any, fields ...string) error
}
