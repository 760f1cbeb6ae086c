package auth

import "golang.org/x/crypto/bcrypt"

// HashCost is lowered by tests.
var HashCost = bcrypt.DefaultCost

// dummyHash is compared against when the account does not exist so that a
// missing email costs the same as a wrong password.
var dummyHash, _ = bcrypt.GenerateFromPassword([]byte("teenxcel-placeholder"), bcrypt.DefaultCost)

func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), HashCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func CheckPassword(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// BurnPasswordCheck spends the time of a real comparison and always fails.
func BurnPasswordCheck(password string) {
	_ = bcrypt.CompareHashAndPassword(dummyHash, []byte(password))
}
