package password

import "golang.org/x/crypto/bcrypt"

// DefaultCost applies when the configured cost is out of bcrypt's range.
const DefaultCost = bcrypt.DefaultCost

// Hash hashes a plaintext password with bcrypt.
func Hash(plain string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(plain), DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// Compare verifies a plaintext password against its stored hash.
// Returns a non-nil error on mismatch.
func Compare(hashed, plain string) error {
	return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(plain))
}
