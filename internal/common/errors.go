// Package common defines shared constants and sentinel errors used across
// the shopkeeper client layers. Callers should use errors.Is to match these
// values.
package common

import "errors"

var (
	// ErrAuthentication reports rejected credentials or a failed login call.
	// No remote detail is carried beyond the wrapped transport error.
	ErrAuthentication = errors.New("credentials rejected")

	// ErrFetch reports a failed list retrieval (users or products).
	ErrFetch = errors.New("fetch failed")

	// ErrValidation reports a missing required field, detected before any
	// remote call is made.
	ErrValidation = errors.New("validation error")

	// ErrCreate reports a remote failure while creating a user.
	ErrCreate = errors.New("create failed")
)
