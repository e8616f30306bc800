package authstore

import (
	"bytes"
	"testing"
)

func TestHashCredential(t *testing.T) {
	salt, derivedKey, err := hashCredential("secret1")
	if err != nil {
		t.Fatalf("hashCredential error: %v", err)
	}

	if len(salt) != saltLen {
		t.Errorf("Expected %d-byte salt, got: %d", saltLen, len(salt))
	}
	if len(derivedKey) != hashKeyLen {
		t.Errorf("Expected %d-byte derived key, got: %d", hashKeyLen, len(derivedKey))
	}
	if bytes.Equal(derivedKey, []byte("secret1")) {
		t.Errorf("Derived key must not equal the plaintext secret")
	}
}

func TestHashCredentialUnique(t *testing.T) {
	// Same secret, but salts are fresh: outputs must never repeat.
	salt1, key1, err := hashCredential("secret1")
	if err != nil {
		t.Fatalf("hashCredential error: %v", err)
	}
	salt2, key2, err := hashCredential("secret1")
	if err != nil {
		t.Fatalf("hashCredential error: %v", err)
	}

	if bytes.Equal(salt1, salt2) {
		t.Errorf("Expected different salts, got: %v", salt1)
	}
	if bytes.Equal(key1, key2) {
		t.Errorf("Expected different derived keys, got: %v", key1)
	}
}

func TestVerifyCredential(t *testing.T) {
	salt, derivedKey, err := hashCredential("secret1")
	if err != nil {
		t.Fatalf("hashCredential error: %v", err)
	}

	cases := []struct {
		title      string
		secret     string
		salt       []byte
		derivedKey []byte
		exp        bool
	}{
		{
			title:      "matching-secret",
			secret:     "secret1",
			salt:       salt,
			derivedKey: derivedKey,
			exp:        true,
		},
		{
			title:      "wrong-secret",
			secret:     "secret2",
			salt:       salt,
			derivedKey: derivedKey,
			exp:        false,
		},
		{
			title:      "wrong-salt",
			secret:     "secret1",
			salt:       make([]byte, saltLen),
			derivedKey: derivedKey,
			exp:        false,
		},
		{
			title:      "empty-derived-key",
			secret:     "secret1",
			salt:       salt,
			derivedKey: nil,
			exp:        false,
		},
	}

	for _, c := range cases {
		if got := VerifyCredential(c.secret, c.salt, c.derivedKey); got != c.exp {
			t.Errorf("[%s] Expected %v, got: %v", c.title, c.exp, got)
		}
	}
}
