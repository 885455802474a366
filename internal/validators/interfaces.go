// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks incoming operation requests before the stub
// server builds a result for them.
//
// A [Validator] receives the decoded request and, optionally, the names of
// the fields to check. Errors for missing uploads carry the exact message
// the PDF server answers with, so handlers can write err.Error() straight
// into the response body.
package validators

import "context"

// Validator validates an arbitrary input value, optionally restricted to the
// named fields.
type Validator interface {
	Validate(context.Context, any, ...string) error
}
