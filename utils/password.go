package utils

import "golang.org/x/crypto/bcrypt"

// Cost 12 theo cấu hình cũ của hệ thống
const bcryptCost = 12

func HashPassword(raw string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(raw), bcryptCost)
	return string(b), err
}
func CheckPassword(hash, raw string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(raw)) == nil
}
