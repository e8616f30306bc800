package authstore

import (
	"time"

	"github.com/google/uuid"
)

// issueToken generates a new signup token and its absolute expiration.
// The token is a random UUID: effectively unique across the lifetime of
// the system, and unguessable on top of that.
//
// lifetime must be positive; it is never clamped.
func issueToken(now time.Time, lifetime time.Duration) (token string, expiresAt time.Time, err error) {
	if lifetime <= 0 {
		return "", time.Time{}, ErrInvalidExpiration
	}

	id, err := uuid.NewRandom()
	if err != nil {
		return "", time.Time{}, err
	}

	return id.String(), now.Add(lifetime), nil
}
