package services

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/hopehomes/orphanage-platform/backoffice-service/internal/core/domain"
)

// TokenTTL is the lifetime of every token this system issues.
const TokenTTL = 48 * time.Hour

// JWTTokenService signs and verifies HS256 tokens with a single
// process-wide secret injected at construction. Secret rotation is not
// supported at runtime; swapping the secret means restarting the process.
type JWTTokenService struct {
	secret []byte
}

func NewJWTTokenService(secret string) *JWTTokenService {
	return &JWTTokenService{secret: []byte(secret)}
}

func (s *JWTTokenService) Issue(subjectID string, role domain.Role, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub": subjectID,
		"iat": now.Unix(),
		"exp": now.Add(ttl).Unix(),
	}
	// Only admin tokens carry a role claim.
	if role != "" {
		claims["role"] = string(role)
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

func (s *JWTTokenService) Verify(tokenString string) (string, domain.Role, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return s.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", "", domain.ErrTokenExpired
		}
		return "", "", domain.ErrTokenInvalid
	}
	if !token.Valid {
		return "", "", domain.ErrTokenInvalid
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", "", domain.ErrTokenInvalid
	}
	subjectID, ok := claims["sub"].(string)
	if !ok || subjectID == "" {
		return "", "", domain.ErrTokenInvalid
	}
	role, _ := claims["role"].(string)
	return subjectID, domain.Role(role), nil
}
