// File: internal/shared/core.go
package shared

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims is the JWT payload minted at login. The token binds a device to a
// server-side session row; everything else about the user lives in the session
// store, not in the token.
type Claims struct {
	UserID    string    `json:"uid"`
	SessionID uuid.UUID `json:"sid"`
	TenantID  string    `json:"tid,omitempty"`
	jwt.RegisteredClaims
}

// TokenResponse represents the response containing the issued token.
type TokenResponse struct {
	AccessToken string    `json:"access_token"`
	ExpiresAt   time.Time `json:"expires_at"`
	TokenType   string    `json:"token_type"`
}

// TokenService defines the interface for JWT operations.
type TokenService interface {
	GenerateToken(userID string, sessionID uuid.UUID, tenantID string) (*TokenResponse, error)
	ValidateToken(tokenString string) (*Claims, error)
}
