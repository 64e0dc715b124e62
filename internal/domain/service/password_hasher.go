package service

// SecretHasher hashes and verifies one-time secrets.
// Used for magic-link secrets so a database leak never exposes a live link.
type SecretHasher interface {
	// Hash returns a one-way hash of the given secret.
	Hash(secret string) (string, error)

	// Compare verifies a plain secret against a stored hash.
	// Returns a non-nil error on mismatch.
	Compare(hashed, plain string) error
}
