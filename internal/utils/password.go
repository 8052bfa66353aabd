package utils

import "golang.org/x/crypto/bcrypt"

// DefaultCost is the bcrypt cost used by `seatplan hash-password`.
const DefaultCost = bcrypt.DefaultCost

// HashPassword returns a bcrypt hash of plain.  A cost outside bcrypt's
// accepted range falls back to DefaultCost.
func HashPassword(plain string, cost int) (string, error) {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = DefaultCost
	}
	b, err := bcrypt.GenerateFromPassword([]byte(plain), cost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// VerifyPassword reports whether plain matches hash.  An empty hash never
// matches, so an unconfigured organizer cannot log in.
func VerifyPassword(hash, plain string) bool {
	if hash == "" {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}
