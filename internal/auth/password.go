package auth

import "golang.org/x/crypto/bcrypt"

// HashPassword produces a salted one-way bcrypt digest. Each call salts
// freshly, so two digests of the same password are never equal.
func HashPassword(password string) (string, error) {
	h, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(h), nil
}

// VerifyPassword reports whether password matches the stored digest.
// A malformed digest yields false, never an error.
func VerifyPassword(password, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(password)) == nil
}
