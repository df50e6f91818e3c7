// Package apperrors defines the error taxonomy shared by repositories,
// services and handlers. Repositories return these sentinels for expected
// outcomes (missing rows, unique-key collisions); anything else is a store
// failure and wraps ErrUnavailable at the service layer.
package apperrors

import "errors"

var (
	// ErrNotFound covers both a missing id and a resource filtered out by
	// ownership scoping; foreign resources are deliberately reported the
	// same way as absent ones.
	ErrNotFound = errors.New("not found")

	// ErrConflict is a uniqueness violation on a normalized key.
	ErrConflict = errors.New("already exists")

	// ErrForbidden means the resource exists but belongs to someone else.
	// Kept in the taxonomy for the 403 mapping; owner-scoped services
	// currently prefer ErrNotFound to avoid leaking existence.
	ErrForbidden = errors.New("forbidden")

	// ErrInvalidCredentials covers bad email/password pairs and bad tokens.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrUnavailable is a store or upstream failure fatal to the request.
	ErrUnavailable = errors.New("service unavailable")
)
