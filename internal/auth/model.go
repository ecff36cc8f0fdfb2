// File: internal/auth/model.go
package auth

import "huglu_mobile_backend/internal/shared"

// LoginInput carries login credentials.
type LoginInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

// RegisterInput carries a new account.
type RegisterInput struct {
	Name     string `json:"name" binding:"required,min=2,max=100"`
	Email    string `json:"email" binding:"required,email"`
	Phone    string `json:"phone" binding:"required"`
	Password string `json:"password" binding:"required,min=6"`
}

// UserView is the identity payload returned after login or register.
type UserView struct {
	UserID   string `json:"userId"`
	Name     string `json:"userName"`
	Email    string `json:"userEmail"`
	Phone    string `json:"userPhone"`
	TenantID string `json:"tenantId,omitempty"`
}

// AuthResult is the login and register response body.
type AuthResult struct {
	User  UserView              `json:"user"`
	Token *shared.TokenResponse `json:"token"`
}
