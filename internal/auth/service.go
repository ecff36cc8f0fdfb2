// File: internal/auth/service.go

// Package auth handles login, registration and logout. Authentication itself
// happens upstream; this module seeds the server-side session with the
// identity snapshot the mobile client previously kept in device storage and
// mints the JWT that binds the device to that session.
package auth

import (
	"context"
	"fmt"

	"huglu_mobile_backend/internal/common"
	"huglu_mobile_backend/internal/gateway"
	"huglu_mobile_backend/internal/session"
	"huglu_mobile_backend/internal/shared"
	"huglu_mobile_backend/internal/twofactor"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Gateway is the slice of the commerce client this module needs.
type Gateway interface {
	Login(ctx context.Context, req gateway.LoginRequest) (*gateway.Account, error)
	Register(ctx context.Context, req gateway.RegisterRequest) (*gateway.Account, error)
}

// Service exposes the authentication operations.
type Service interface {
	Login(ctx context.Context, input LoginInput) (*AuthResult, error)
	Register(ctx context.Context, input RegisterInput) (*AuthResult, error)
	Logout(ctx context.Context, sessionID uuid.UUID) error
	MarkOnboardingSeen(ctx context.Context, sessionID uuid.UUID, userID string) error
}

type service struct {
	gw     Gateway
	store  session.Store
	tokens shared.TokenService
	logger *zap.Logger
}

func NewService(gw Gateway, store session.Store, tokens shared.TokenService, logger *zap.Logger) Service {
	return &service{gw: gw, store: store, tokens: tokens, logger: logger.Named("auth")}
}

// Login authenticates upstream, begins a session and mints a token.
func (s *service) Login(ctx context.Context, input LoginInput) (*AuthResult, error) {
	account, err := s.gw.Login(ctx, gateway.LoginRequest{
		Email:    input.Email,
		Password: input.Password,
	})
	if err != nil {
		return nil, common.ErrUnauthorized.WithDetails(gateway.UpstreamMessage(err))
	}
	return s.establishSession(ctx, account)
}

// Register creates the account upstream, then logs the user straight in.
func (s *service) Register(ctx context.Context, input RegisterInput) (*AuthResult, error) {
	if !twofactor.ValidPhone(input.Phone) {
		return nil, common.NewValidationAPIError(map[string]string{
			"phone": "Please enter a valid Turkish mobile number.",
		})
	}
	account, err := s.gw.Register(ctx, gateway.RegisterRequest{
		Name:     input.Name,
		Email:    input.Email,
		Phone:    input.Phone,
		Password: input.Password,
	})
	if err != nil {
		return nil, common.ErrUnprocessableEntity.WithDetails(gateway.UpstreamMessage(err))
	}
	return s.establishSession(ctx, account)
}

// Logout destroys the session. The JWT stays syntactically valid until it
// expires, but with no session behind it every screen rejects it.
func (s *service) Logout(ctx context.Context, sessionID uuid.UUID) error {
	if err := s.store.Destroy(ctx, sessionID); err != nil {
		return fmt.Errorf("destroying session: %w", err)
	}
	return nil
}

// MarkOnboardingSeen records that the user dismissed the onboarding flow.
func (s *service) MarkOnboardingSeen(ctx context.Context, sessionID uuid.UUID, userID string) error {
	if err := s.store.Set(ctx, sessionID, userID, session.KeyHasSeenOnboarding, "true"); err != nil {
		return fmt.Errorf("storing onboarding flag: %w", err)
	}
	return nil
}

func (s *service) establishSession(ctx context.Context, account *gateway.Account) (*AuthResult, error) {
	userID := string(account.UserID)
	if userID == "" {
		return nil, common.ErrBadGateway.WithDetails("The auth response carried no user ID.")
	}

	sessionID, err := s.store.Begin(ctx, userID, map[string]string{
		session.KeyUserID:            userID,
		session.KeyUserName:          account.Name,
		session.KeyUserEmail:         account.Email,
		session.KeyUserPhone:         account.Phone,
		session.KeyTenantID:          account.TenantID,
		session.KeyIsLoggedIn:        "true",
		session.KeyHasSeenOnboarding: "false",
		session.KeyTwoFactorEnabled:  "false",
	})
	if err != nil {
		return nil, fmt.Errorf("beginning session: %w", err)
	}

	token, err := s.tokens.GenerateToken(userID, sessionID, account.TenantID)
	if err != nil {
		// A session without a token is orphaned; remove it.
		_ = s.store.Destroy(ctx, sessionID)
		return nil, fmt.Errorf("issuing token: %w", err)
	}

	s.logger.Info("Session established",
		zap.String("user_id", userID), zap.String("session_id", sessionID.String()))

	return &AuthResult{
		User: UserView{
			UserID:   userID,
			Name:     account.Name,
			Email:    account.Email,
			Phone:    account.Phone,
			TenantID: account.TenantID,
		},
		Token: token,
	}, nil
}
