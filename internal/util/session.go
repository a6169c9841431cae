package util

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// SessionClaims binds a request to an access key. Nothing else is stored
// server-side; liveness of the key is re-checked on every use.
type SessionClaims struct {
	Key     string `json:"key"`
	IsAdmin bool   `json:"isAdmin"`
	jwt.RegisteredClaims
}

func GenerateSessionToken(key string, isAdmin bool, secret string, maxAge time.Duration) (string, error) {
	claims := &SessionClaims{
		Key:     key,
		IsAdmin: isAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(maxAge)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

func ParseSessionToken(tokenString, secret string) (*SessionClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &SessionClaims{}, func(token *jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	})

	if err != nil {
		return nil, err
	}

	if claims, ok := token.Claims.(*SessionClaims); ok && token.Valid {
		return claims, nil
	}

	return nil, jwt.ErrTokenInvalidClaims
}
