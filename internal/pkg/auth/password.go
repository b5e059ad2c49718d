package auth

import (
	"golang.org/x/crypto/bcrypt"
)

// Biaya hashing password
const BcryptCost = 12

// HashPassword menghasilkan hash bcrypt dari password
func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), BcryptCost)
	if err != nil {
		return "", err
	}
	return string(bytes), nil
}

// CheckPassword memverifikasi password terhadap hash tersimpan
func CheckPassword(hashedPassword, password string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password))
	return err == nil
}
