// Package auth provides password hashing and session token utilities.
package auth

import "golang.org/x/crypto/bcrypt"

// bcryptCost is deliberately higher than the library default to slow
// down offline brute-force attempts against leaked hashes.
const bcryptCost = 12

// HashPassword creates a salted bcrypt hash of the given password.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// VerifyPassword compares a plaintext password against a stored hash.
// The comparison cost is dominated by bcrypt itself and does not leak
// success or failure through timing.
func VerifyPassword(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}
