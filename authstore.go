package authstore

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
)

const (
	// DefaultDBName is the default for Config.DBName.
	DefaultDBName = "auth"

	// DefaultAccountsCollectionName is the default for Config.AccountsCollectionName.
	DefaultAccountsCollectionName = "accounts"

	// DefaultSignupTokenExpiration is the default for Config.SignupTokenExpiration.
	DefaultSignupTokenExpiration = 24 * time.Hour
)

// Config holds Store configuration.
// A zero value is a valid configuration, see constants for default values.
type Config struct {
	// DBName is the name of the database holding the accounts.
	// Only used by NewMongoStore.
	DBName string

	// AccountsCollectionName is the name of the collection used to
	// store accounts. Only used by NewMongoStore.
	AccountsCollectionName string

	// SignupTokenExpiration tells how long a signup token remains
	// valid. Must not be negative; zero selects the default.
	SignupTokenExpiration time.Duration
}

// Store persists accounts in a document store.
// It's safe to use it concurrently from multiple goroutines; the store
// imposes no queuing or locking across calls, and performs no retries:
// every failure propagates immediately to the caller.
type Store struct {
	// store used for document operations.
	store DocumentStore

	// cfg to use
	cfg Config
}

// New creates a new Store on top of an already-established document
// store session.
// This function panics if store is nil, and returns ErrInvalidExpiration
// if the configured signup token expiration is negative.
func New(store DocumentStore, cfg Config) (*Store, error) {
	if store == nil {
		panic("store must be provided")
	}

	if cfg.SignupTokenExpiration < 0 {
		return nil, ErrInvalidExpiration
	}
	if cfg.SignupTokenExpiration == 0 {
		cfg.SignupTokenExpiration = DefaultSignupTokenExpiration
	}
	if cfg.DBName == "" {
		cfg.DBName = DefaultDBName
	}
	if cfg.AccountsCollectionName == "" {
		cfg.AccountsCollectionName = DefaultAccountsCollectionName
	}

	return &Store{
		store: store,
		cfg:   cfg,
	}, nil
}

// Save creates a new account with the given name, email and plaintext
// secret. The secret is hashed with a fresh random salt, a new signup
// token is issued, and the account is inserted with
// FailedLoginAttempts set to 0 and SignupTokenExpires set exactly
// one configured expiration after SignupTimestamp.
//
// On success the canonical stored copy is returned (re-fetched by its
// signup token), so the caller observes exactly what persisted,
// including the store-assigned ID. The insert and the re-fetch are two
// independent store round trips: if a concurrent Remove() deletes the
// account in between, Save returns ErrNotFound even though the insert
// succeeded. Callers must tolerate this race.
//
// If hashing fails, the error is returned and nothing is written.
func (s *Store) Save(ctx context.Context, name, email, secret string) (*Account, error) {
	now := time.Now()

	token, expiresAt, err := issueToken(now, s.cfg.SignupTokenExpiration)
	if err != nil {
		return nil, err
	}

	salt, derivedKey, err := hashCredential(secret)
	if err != nil {
		return nil, err
	}

	acc := &Account{
		Name:                name,
		Email:               email,
		SignupToken:         token,
		SignupTimestamp:     now,
		SignupTokenExpires:  expiresAt,
		FailedLoginAttempts: 0,
		Salt:                salt,
		DerivedKey:          derivedKey,
	}

	if _, err := s.store.InsertOne(ctx, acc); err != nil {
		return nil, fmt.Errorf("insert account: %w", err)
	}

	stored, err := s.Find(ctx, FieldSignupToken, token, nil)
	if err != nil {
		return nil, err
	}
	if stored == nil {
		return nil, fmt.Errorf("re-fetch inserted account: %w", ErrNotFound)
	}

	return stored, nil
}

// Find looks up a single account whose field equals value, optionally
// intersected with extra criteria (e.g. an unexpired-token check).
// A missing account is not an error: (nil, nil) is returned.
//
// field must be one of the Field constants; the store treats these
// fields as unique, Find does not deduplicate multiple matches.
func (s *Store) Find(ctx context.Context, field Field, value string, extra bson.M) (*Account, error) {
	if !field.valid() {
		return nil, fmt.Errorf("unsupported lookup field: %q", field)
	}

	filter := bson.M{}
	for k, v := range extra {
		filter[k] = v
	}
	filter[string(field)] = value

	acc := &Account{}
	found, err := s.store.FindOne(ctx, filter, acc)
	if err != nil {
		return nil, fmt.Errorf("find account: %w", err)
	}
	if !found {
		return nil, nil
	}

	return acc, nil
}

// Update overwrites the stored account's fields with the fields of the
// given account, matched by its ID. Every field except the ID is set,
// so callers should start from a fetched copy and modify what they
// need; fields left at their fetched values are rewritten unchanged.
// Server-computed fields are not refreshed: the supplied account is
// returned as-is.
//
// Returns ErrMissingID if acc carries no ID, and ErrNotFound if no
// stored account matches it.
func (s *Store) Update(ctx context.Context, acc *Account) (*Account, error) {
	if acc.ID.IsZero() {
		return nil, ErrMissingID
	}

	set := bson.M{
		"name":                acc.Name,
		"email":               acc.Email,
		"signupToken":         acc.SignupToken,
		"signupTimestamp":     acc.SignupTimestamp,
		"signupTokenExpires":  acc.SignupTokenExpires,
		"failedLoginAttempts": acc.FailedLoginAttempts,
		"salt":                acc.Salt,
		"derivedKey":          acc.DerivedKey,
	}

	matched, err := s.store.UpdateOne(ctx, bson.M{"_id": acc.ID}, set)
	if err != nil {
		return nil, fmt.Errorf("update account: %w", err)
	}
	if matched == 0 {
		return nil, ErrNotFound
	}

	return acc, nil
}

// Remove deletes the single account with the given name.
// Returns ErrNotFound if no account matched; a store-level failure is
// surfaced as-is (wrapped), distinct from ErrNotFound.
func (s *Store) Remove(ctx context.Context, name string) error {
	deleted, err := s.store.DeleteOne(ctx, bson.M{"name": name})
	if err != nil {
		return fmt.Errorf("delete account: %w", err)
	}
	if deleted == 0 {
		return ErrNotFound
	}

	return nil
}
