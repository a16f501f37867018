package cryptox

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// Cost is the bcrypt work factor used for both account passwords and
// refresh credential hashes.
const Cost = 10

// Hash returns the bcrypt hash of plainText. The same primitive covers
// account secrets and refresh credentials, neither is ever stored in
// cleartext.
func Hash(plainText string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plainText), Cost)
	if err != nil {
		return "", fmt.Errorf("cryptox: failed to hash: %w", err)
	}
	return string(hash), nil
}

// Compare reports whether plainText matches the bcrypt hash. bcrypt's
// comparison is constant-time over the derived key, so mismatches do not
// leak position information.
func Compare(plainText, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plainText)) == nil
}
