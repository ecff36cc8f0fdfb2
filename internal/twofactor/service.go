// File: internal/twofactor/service.go

// Package twofactor drives SMS-based two-factor enrollment. The enrollment
// state machine lives in the server-side session store; the upstream only
// sees code requests, verifications and the final disable call.
package twofactor

import (
	"context"
	"fmt"

	"huglu_mobile_backend/internal/common"
	"huglu_mobile_backend/internal/gateway"
	"huglu_mobile_backend/internal/session"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Gateway is the slice of the commerce client this module needs.
type Gateway interface {
	RequestTwoFactorCode(ctx context.Context, userID, phone string) error
	VerifyTwoFactorCode(ctx context.Context, userID, code string) error
	DisableTwoFactor(ctx context.Context, userID string) error
}

// Service exposes the two-factor enrollment operations.
type Service interface {
	GetStatus(ctx context.Context, sessionID uuid.UUID) (*Status, error)
	RequestCode(ctx context.Context, sessionID uuid.UUID, userID, phone string) error
	ResendCode(ctx context.Context, sessionID uuid.UUID, userID string) error
	Verify(ctx context.Context, sessionID uuid.UUID, userID, code string) error
	Disable(ctx context.Context, sessionID uuid.UUID, userID string, confirm bool) error
}

type service struct {
	gw     Gateway
	store  session.Store
	logger *zap.Logger
}

func NewService(gw Gateway, store session.Store, logger *zap.Logger) Service {
	return &service{gw: gw, store: store, logger: logger.Named("twofactor")}
}

// GetStatus reads the current enrollment state from the session. A session
// with no recorded state reports disabled.
func (s *service) GetStatus(ctx context.Context, sessionID uuid.UUID) (*Status, error) {
	state, ok, err := s.store.Get(ctx, sessionID, session.KeyTwoFactorState)
	if err != nil {
		return nil, fmt.Errorf("reading two-factor state: %w", err)
	}
	if !ok || state == "" {
		state = StateDisabled
	}
	phone, _, err := s.store.Get(ctx, sessionID, session.KeyTwoFactorPhone)
	if err != nil {
		return nil, fmt.Errorf("reading two-factor phone: %w", err)
	}
	return &Status{
		Enabled: state == StateEnabled,
		State:   state,
		Phone:   phone,
	}, nil
}

// RequestCode validates the phone number locally, asks the upstream to send
// an SMS code and moves the state to code_requested.
func (s *service) RequestCode(ctx context.Context, sessionID uuid.UUID, userID, phone string) error {
	if !ValidPhone(phone) {
		return common.NewValidationAPIError(map[string]string{
			"phone": "Please enter a valid Turkish mobile number.",
		})
	}
	if err := s.gw.RequestTwoFactorCode(ctx, userID, phone); err != nil {
		return common.ErrBadGateway.WithDetails(gateway.UpstreamMessage(err))
	}
	if err := s.store.Set(ctx, sessionID, userID, session.KeyTwoFactorPhone, phone); err != nil {
		return fmt.Errorf("storing two-factor phone: %w", err)
	}
	return s.transition(ctx, sessionID, userID, StateCodeRequested)
}

// ResendCode re-issues the SMS code for the phone already on file. The state
// stays at code_requested.
func (s *service) ResendCode(ctx context.Context, sessionID uuid.UUID, userID string) error {
	state, _, err := s.store.Get(ctx, sessionID, session.KeyTwoFactorState)
	if err != nil {
		return fmt.Errorf("reading two-factor state: %w", err)
	}
	if state != StateCodeRequested {
		return common.ErrUnprocessableEntity.WithDetails("No code request is in progress.")
	}
	phone, ok, err := s.store.Get(ctx, sessionID, session.KeyTwoFactorPhone)
	if err != nil {
		return fmt.Errorf("reading two-factor phone: %w", err)
	}
	if !ok || phone == "" {
		return common.ErrUnprocessableEntity.WithDetails("No phone number on file.")
	}
	if err := s.gw.RequestTwoFactorCode(ctx, userID, phone); err != nil {
		return common.ErrBadGateway.WithDetails(gateway.UpstreamMessage(err))
	}
	return nil
}

// Verify gates the code format locally, then submits it upstream. A rejected
// code moves the state back to code_requested and surfaces the upstream
// message verbatim so the user sees what the server said.
func (s *service) Verify(ctx context.Context, sessionID uuid.UUID, userID, code string) error {
	state, _, err := s.store.Get(ctx, sessionID, session.KeyTwoFactorState)
	if err != nil {
		return fmt.Errorf("reading two-factor state: %w", err)
	}
	if state != StateCodeRequested {
		return common.ErrUnprocessableEntity.WithDetails("Request a code before verifying.")
	}
	if !ValidCode(code) {
		return common.NewValidationAPIError(map[string]string{
			"code": "The verification code must be 6 digits.",
		})
	}

	if err := s.transition(ctx, sessionID, userID, StateVerifying); err != nil {
		return err
	}
	if err := s.gw.VerifyTwoFactorCode(ctx, userID, code); err != nil {
		if terr := s.transition(ctx, sessionID, userID, StateCodeRequested); terr != nil {
			s.logger.Error("Failed to roll back two-factor state after rejected code",
				zap.String("session_id", sessionID.String()), zap.Error(terr))
		}
		return common.ErrUnprocessableEntity.WithDetails(gateway.UpstreamMessage(err))
	}

	if err := s.store.Set(ctx, sessionID, userID, session.KeyTwoFactorEnabled, "true"); err != nil {
		return fmt.Errorf("storing two-factor flag: %w", err)
	}
	return s.transition(ctx, sessionID, userID, StateEnabled)
}

// Disable turns two-factor off. It refuses without an explicit confirmation.
func (s *service) Disable(ctx context.Context, sessionID uuid.UUID, userID string, confirm bool) error {
	if !confirm {
		return common.ErrUnprocessableEntity.WithDetails("Disabling two-factor requires confirmation.")
	}
	if err := s.gw.DisableTwoFactor(ctx, userID); err != nil {
		return common.ErrBadGateway.WithDetails(gateway.UpstreamMessage(err))
	}
	if err := s.store.Set(ctx, sessionID, userID, session.KeyTwoFactorEnabled, "false"); err != nil {
		return fmt.Errorf("storing two-factor flag: %w", err)
	}
	if err := s.store.Set(ctx, sessionID, userID, session.KeyTwoFactorPhone, ""); err != nil {
		return fmt.Errorf("clearing two-factor phone: %w", err)
	}
	return s.transition(ctx, sessionID, userID, StateDisabled)
}

func (s *service) transition(ctx context.Context, sessionID uuid.UUID, userID, state string) error {
	if err := s.store.Set(ctx, sessionID, userID, session.KeyTwoFactorState, state); err != nil {
		return fmt.Errorf("storing two-factor state %s: %w", state, err)
	}
	return nil
}
