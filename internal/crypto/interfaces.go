package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/hasher_mock.go -package=mock

// PasswordHasher turns passwords into one-way hashes and checks candidates
// against them. The hash embeds its own salt and cost.
type PasswordHasher interface {
	// Hash returns the hash to persist for password.
	Hash(password string) (string, error)

	// Compare returns nil when password matches hash and
	// [ErrPasswordMismatch] otherwise.
	Compare(hash, password string) error
}
