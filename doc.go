/*
Package authstore provides MongoDB-backed account storage for
authentication libraries.

The flow is the following:

  1. A user signs up with a name, an email and a secret.
     Store.Save() hashes the secret, issues a time-bounded signup token
     and persists the new account.
  2. The signup token is delivered to the user out-of-band (e.g. in a
     verification email sent by the calling library).
  3. The calling library locates the pending account with
     Store.Find() (by name, email or signup token), checks
     Account.SignupTokenValid() and completes the verification by
     clearing the token via Store.Update().
  4. At login the calling library fetches the account and checks the
     secret with VerifyCredential().
  5. An account can be removed by Store.Remove().

Only the salted, derived form of the secret is ever persisted; the
plaintext secret never leaves Store.Save().

Store uses MongoDB as the persistent store, accessed via the official
mongo-go driver, but any backend implementing the small DocumentStore
interface will do. The store session is established by the composing
application and injected at construction; its lifecycle (open/close)
stays with the application.

*/
package authstore
