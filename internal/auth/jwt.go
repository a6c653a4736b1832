// Package auth issues and validates the HS256 bearer tokens the API uses,
// and wraps bcrypt for password storage.
package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	apperrors "github.com/wayfarer-app/wayfarer-backend/errors"
)

// Claims are the registered claims carried by an access token. The user id
// travels in the subject.
type Claims struct {
	jwt.RegisteredClaims
}

// GenerateToken signs an access token for userID, valid for expiry.
func GenerateToken(userID, secret string, expiry time.Duration) (string, error) {
	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(expiry)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// ValidateToken parses and verifies a token and returns the user id it was
// issued to. Expired, malformed, or wrongly-signed tokens all surface as an
// authentication failure.
func ValidateToken(tokenString, secret string) (string, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{},
		func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, apperrors.Unauthorized("invalid_algorithm", "Unexpected signing method")
			}
			return []byte(secret), nil
		})

	if err != nil || !token.Valid {
		return "", apperrors.Unauthorized("invalid_token", "Invalid or expired token")
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || claims.Subject == "" {
		return "", apperrors.Unauthorized("invalid_claims", "Invalid token structure")
	}

	return claims.Subject, nil
}
