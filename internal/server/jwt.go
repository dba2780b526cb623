package server

import (
	"fmt"

	"github.com/golang-jwt/jwt/v5"

	"github.com/WillyEverGreen/gigbridge/internal/server/middleware"
)

// JWTService verifies bearer tokens issued by the external identity provider.
// Tokens are HMAC-signed with a shared secret; the subject claim carries the
// user id. This service never issues tokens.
type JWTService struct {
	secret []byte
}

// NewJWTService creates a verifier for the given shared secret.
func NewJWTService(secret string) *JWTService {
	return &JWTService{secret: []byte(secret)}
}

// tokenClaims adapts verified claims to the middleware contract.
type tokenClaims struct {
	subject string
}

// GetUserID returns the user id carried in the token's subject claim.
func (c *tokenClaims) GetUserID() string {
	return c.subject
}

// ValidateToken parses and verifies a token string, returning its claims.
func (j *JWTService) ValidateToken(tokenString string) (middleware.UserIDGetter, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return j.secret, nil
	}, jwt.WithValidMethods([]string{"HS256"}))
	if err != nil {
		return nil, fmt.Errorf("invalid token: %w", err)
	}

	subject, err := token.Claims.GetSubject()
	if err != nil || subject == "" {
		return nil, fmt.Errorf("token missing subject claim")
	}

	return &tokenClaims{subject: subject}, nil
}
