// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators provides host-side checks of decoded configuration.
//
// The marshalling models in package models accept any string for any field;
// validators run only when the host bridge opts in (strict mode) and never
// alter a model.
//
// Usage patterns:
//  1. Implement Validator to encode host-specific rules.
//  2. Inject Validator implementations into services.
//  3. Call Validate with context, value, and optional field names to scope
//     the check to a subset of fields.
package validators

import "context"

// Validator defines a generic validation interface for arbitrary input values.
type Validator interface {

	// Validate validates the provided input and optionally
	// restricts validation to specific named fields.
	Validate(context.Context, any, ...string) error
}
