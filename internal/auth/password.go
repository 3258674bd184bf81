package auth

import "golang.org/x/crypto/bcrypt"

// bcrypt only hashes the first 72 bytes of input; newer library versions
// reject longer passwords outright, so truncate explicitly for a stable
// register/login round trip.
const maxPasswordBytes = 72

func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword(truncatePassword(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func CheckPassword(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), truncatePassword(password)) == nil
}

func truncatePassword(password string) []byte {
	b := []byte(password)
	if len(b) > maxPasswordBytes {
		b = b[:maxPasswordBytes]
	}
	return b
}
