package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims is the validated identity carried by a session token.
type Claims struct {
	Email string
	Role  string
}

// GenerateToken creates a signed HS256 token for the given user, expiring
// ttl from now.
func GenerateToken(email, role, secret string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":  email,
		"role": role,
		"exp":  now.Add(ttl).Unix(),
		"iat":  now.Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// ParseToken validates a token string and extracts its claims. Expired or
// tampered tokens fail.
func ParseToken(tokenStr, secret string) (*Claims, error) {
	token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("auth: unexpected signing method %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, jwt.ErrTokenInvalidClaims
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, jwt.ErrTokenMalformed
	}
	email, ok := claims["sub"].(string)
	if !ok {
		return nil, jwt.ErrTokenMalformed
	}
	role, _ := claims["role"].(string)

	return &Claims{Email: email, Role: role}, nil
}
