package authstore

import "errors"

var (
	// ErrNotFound is returned by Store.Remove() and Store.Update() when
	// no account matched. It is never returned for store-level failures,
	// which are surfaced as-is (wrapped). Match with errors.Is().
	ErrNotFound = errors.New("user not found")

	// ErrInvalidExpiration is returned when the configured signup token
	// expiration is not a positive duration.
	ErrInvalidExpiration = errors.New("signup token expiration must be positive")

	// ErrMissingID is returned by Store.Update() when the given account
	// carries no identifier.
	ErrMissingID = errors.New("account has no id")
)
