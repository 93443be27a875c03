package auth

import "golang.org/x/crypto/bcrypt"

// costo 12, un paso por encima del default de bcrypt
const bcryptCost = 12

func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// CheckPassword devuelve false ante cualquier mismatch o hash malformado,
// nunca error: al caller solo le interesa sí/no.
func CheckPassword(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
