// Package sec provides password hashing helpers for the catalog API.
//
// Credentials travel over HTTP Basic Auth, so TLS must be used in production
// to protect them in transit.
package sec

import "golang.org/x/crypto/bcrypt"

// HashPassword generates a bcrypt hash for the given password. It errors if
// the password is longer than 72 bytes.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// ComparePassword returns an error if the provided password does not resolve
// to the given hash.
func ComparePassword(password, hash string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
}
