package crypto

import "golang.org/x/crypto/bcrypt"

// hashCost is the bcrypt work factor. Fixed at 10 to keep login latency
// predictable while staying above the library minimum.
const hashCost = 10

// HashPassword hashes a password using bcrypt with a random salt, so the
// same input produces a different hash on every call.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), hashCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// CheckPassword reports whether a password matches the given bcrypt hash.
// Any mismatch, including a malformed hash, is reported as false rather
// than an error.
func CheckPassword(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
