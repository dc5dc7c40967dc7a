package auth

import "golang.org/x/crypto/bcrypt"

// low cost keeps the test suite fast
func hashForTest(password string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	return string(b), err
}
