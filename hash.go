package authstore

import (
	"crypto/rand"
	"crypto/subtle"
	"fmt"
	"io"

	"golang.org/x/crypto/argon2"
)

// Argon2id parameters used for credential hashing.
const (
	hashTime    = 1
	hashMemory  = 64 * 1024 // KiB
	hashThreads = 4
	hashKeyLen  = 32
	saltLen     = 16
)

// hashCredential derives a one-way verification value from the given
// plaintext secret using Argon2id with a freshly generated random salt.
// Two calls with the same secret never produce the same derived key.
func hashCredential(secret string) (salt, derivedKey []byte, err error) {
	salt = make([]byte, saltLen)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return nil, nil, fmt.Errorf("generate salt: %w", err)
	}

	derivedKey = argon2.IDKey([]byte(secret), salt, hashTime, hashMemory, hashThreads, hashKeyLen)
	return salt, derivedKey, nil
}

// VerifyCredential tells if the given plaintext secret matches the
// stored (salt, derivedKey) pair of an account. The comparison is
// constant-time.
func VerifyCredential(secret string, salt, derivedKey []byte) bool {
	if len(derivedKey) == 0 {
		return false
	}
	computed := argon2.IDKey([]byte(secret), salt, hashTime, hashMemory, hashThreads, uint32(len(derivedKey)))
	return subtle.ConstantTimeCompare(computed, derivedKey) == 1
}
