// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks request bodies and query parameters before they
// reach a handler.
//
// Rules are declared as `validate` struct tags on the request models and
// evaluated by github.com/go-playground/validator/v10. Failures are reported
// as a [*ValidationError] keyed by the JSON field name, which the HTTP layer
// renders as a 400 response with per-field details.
package validators

import "context"

// Validator validates a value, optionally restricted to the named struct
// fields.
type Validator interface {
	Validate(ctx context.Context, value any, fields ...string) error
}
