// File: internal/shared/jwt.go
package shared

import (
	"errors"
	"time"

	"huglu_mobile_backend/internal/config"
	"huglu_mobile_backend/internal/platform/crypto"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const tokenIssuer = "huglu-mobile-backend"

// JWTTokenService issues and validates HS256 session tokens.
type JWTTokenService struct {
	secret   []byte
	lifetime time.Duration
}

// NewJWTTokenService creates a token service from the application config.
func NewJWTTokenService(cfg *config.Config) *JWTTokenService {
	return &JWTTokenService{
		secret:   []byte(cfg.JWTSecret),
		lifetime: cfg.TokenLifetime,
	}
}

// GenerateToken signs a new access token for the given user/session pair.
func (s *JWTTokenService) GenerateToken(userID string, sessionID uuid.UUID, tenantID string) (*TokenResponse, error) {
	if userID == "" {
		return nil, errors.New("cannot issue token without a user ID")
	}
	jti, err := crypto.GenerateSecureRandomString(16)
	if err != nil {
		return nil, err
	}
	expiresAt := time.Now().Add(s.lifetime)
	claims := &Claims{
		UserID:    userID,
		SessionID: sessionID,
		TenantID:  tenantID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			Issuer:    tokenIssuer,
			Subject:   userID,
			ID:        jti,
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return nil, err
	}
	return &TokenResponse{
		AccessToken: signed,
		ExpiresAt:   expiresAt,
		TokenType:   "Bearer",
	}, nil
}

// ValidateToken parses and verifies a token string, returning its claims.
func (s *JWTTokenService) ValidateToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return s.secret, nil
	})
	if err != nil {
		return nil, err
	}
	if claims, ok := token.Claims.(*Claims); ok && token.Valid {
		return claims, nil
	}
	return nil, errors.New("invalid token")
}
