package utils

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// passwordHashCost is the bcrypt work factor applied to every new password
// digest. Changing it only affects newly stored digests; verification reads
// the cost embedded in each digest.
const passwordHashCost = 10

// HashPassword produces a salted one-way bcrypt digest of the given
// plaintext password.
//
// bcrypt generates a fresh random salt on every call, so hashing the same
// plaintext twice yields different digests.
//
// Parameters:
//
//	password - plaintext password to hash
//
// Returns:
//
//	string - the bcrypt digest in its standard encoded form
//	error  - non-nil if the password exceeds bcrypt's length limit or
//	         digest generation fails
//
// Example usage:
//
//	digest, err := utils.HashPassword("pw123")
func HashPassword(password string) (string, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte(password), passwordHashCost)
	if err != nil {
		return "", fmt.Errorf("error occurred during password hashing: %w", err)
	}

	return string(digest), nil
}

// CheckPassword reports whether the plaintext password matches the given
// bcrypt digest.
//
// The comparison is constant-time within bcrypt. A malformed digest is not
// an error condition for callers: it simply yields false, so login code can
// treat it the same as a wrong password.
//
// Parameters:
//
//	password - plaintext password supplied by the client
//	digest   - stored bcrypt digest to compare against
//
// Returns:
//
//	bool - true only if the password matches the digest
func CheckPassword(password, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(password)) == nil
}
