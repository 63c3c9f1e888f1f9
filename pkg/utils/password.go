package utils

import "golang.org/x/crypto/bcrypt"

// HashPassword returns the bcrypt hash of pw at the default cost. bcrypt
// embeds its own salt, so hashing the same password twice yields different
// strings.
func HashPassword(pw string) string {
	b, _ := bcrypt.GenerateFromPassword([]byte(pw), bcrypt.DefaultCost)
	return string(b)
}

// CheckPassword reports whether pw matches the stored hash. The comparison
// is constant time within bcrypt.
func CheckPassword(pw, hashed string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(pw)) == nil
}
