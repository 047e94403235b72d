package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const (
	RoleGuest = "guest"
	RoleUser  = "user"
)

// IssueToken signs an HS256 token carrying the user_id and role claims that
// middleware.ValidateToken expects.
func IssueToken(userID, role, secret string, ttl time.Duration, now time.Time) (string, error) {
	if secret == "" {
		return "", errors.New("auth: empty signing secret")
	}
	claims := jwt.MapClaims{
		"user_id": userID,
		"role":    role,
		"iat":     now.Unix(),
		"exp":     now.Add(ttl).Unix(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
}

// IssueGuestToken signs a guest token valid for GuestTTL.
func IssueGuestToken(guestID, secret string, now time.Time) (string, error) {
	return IssueToken(guestID, RoleGuest, secret, GuestTTL, now)
}
