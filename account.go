package authstore

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Account represents a persisted user credential record with
// verification-token metadata.
// An account is identified by its store-assigned ID; name and email are
// intended to be unique within the collection (see MongoStore.EnsureIndexes),
// but uniqueness is enforced by the store, not by this package.
type Account struct {
	// ID of the account, assigned by the store at creation.
	ID primitive.ObjectID `bson:"_id,omitempty"`

	// Name of the account.
	Name string `bson:"name"`

	// Email of the account.
	Email string `bson:"email"`

	// SignupToken is the unique token issued at account creation,
	// used to verify or complete registration.
	SignupToken string `bson:"signupToken"`

	// Account creation timestamp.
	SignupTimestamp time.Time `bson:"signupTimestamp"`

	// SignupTokenExpires tells when the signup token expires.
	SignupTokenExpires time.Time `bson:"signupTokenExpires"`

	// FailedLoginAttempts counts unsuccessful logins.
	// Maintained by the calling library via Store.Update().
	FailedLoginAttempts int `bson:"failedLoginAttempts"`

	// Salt is the random per-account value used for credential hashing.
	Salt []byte `bson:"salt"`

	// DerivedKey is the one-way hash of (secret, salt).
	// The only persisted form of the credential.
	DerivedKey []byte `bson:"derivedKey"`
}

// SignupTokenValid tells if the account's signup token is still valid.
// Interpreting the expiry (and clearing the token on successful
// verification) is the caller's job; this package only stores the
// timestamps.
func (a *Account) SignupTokenValid() bool {
	return a.SignupTokenExpires.After(time.Now())
}

// Field designates an account lookup key for Store.Find().
// It is a closed set: arbitrary field names cannot be used in queries.
type Field string

// Possible lookup fields.
const (
	FieldName        = Field("name")
	FieldEmail       = Field("email")
	FieldSignupToken = Field("signupToken")
)

// valid tells if f is one of the supported lookup fields.
func (f Field) valid() bool {
	switch f {
	case FieldName, FieldEmail, FieldSignupToken:
		return true
	}
	return false
}
