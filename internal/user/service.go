// File: internal/user/service.go

// Package user serves the profile and address screens. Unlike the
// gamification reads, account data never degrades to sample content; every
// upstream failure is surfaced to the caller.
package user

import (
	"context"
	"fmt"

	"huglu_mobile_backend/internal/common"
	"huglu_mobile_backend/internal/gateway"
	"huglu_mobile_backend/internal/twofactor"

	"go.uber.org/zap"
)

// Gateway is the slice of the commerce client this module needs.
type Gateway interface {
	GetProfile(ctx context.Context, userID string) (*gateway.Profile, error)
	UpdateProfile(ctx context.Context, userID string, profile gateway.Profile) error
	ListAddresses(ctx context.Context, userID string) ([]gateway.Address, error)
	CreateAddress(ctx context.Context, userID string, address gateway.Address) (*gateway.Address, error)
	UpdateAddress(ctx context.Context, userID, addressID string, address gateway.Address) error
	DeleteAddress(ctx context.Context, userID, addressID string) error
}

// Service exposes the profile and address operations.
type Service interface {
	GetProfile(ctx context.Context, userID string) (*ProfileView, error)
	UpdateProfile(ctx context.Context, userID string, input ProfileInput) error
	ListAddresses(ctx context.Context, userID string) ([]AddressView, error)
	CreateAddress(ctx context.Context, userID string, input AddressInput) (*AddressView, error)
	UpdateAddress(ctx context.Context, userID, addressID string, input AddressInput) error
	DeleteAddress(ctx context.Context, userID, addressID string) error
}

type service struct {
	gw     Gateway
	logger *zap.Logger
}

func NewService(gw Gateway, logger *zap.Logger) Service {
	return &service{gw: gw, logger: logger.Named("user")}
}

func (s *service) GetProfile(ctx context.Context, userID string) (*ProfileView, error) {
	profile, err := s.gw.GetProfile(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("loading profile for user %s: %w", userID, err)
	}
	return &ProfileView{
		Name:  profile.Name,
		Email: profile.Email,
		Phone: profile.Phone,
	}, nil
}

func (s *service) UpdateProfile(ctx context.Context, userID string, input ProfileInput) error {
	if !twofactor.ValidPhone(input.Phone) {
		return phoneValidationError()
	}
	err := s.gw.UpdateProfile(ctx, userID, gateway.Profile{
		Name:  input.Name,
		Email: input.Email,
		Phone: input.Phone,
	})
	if err != nil {
		return fmt.Errorf("updating profile for user %s: %w", userID, err)
	}
	return nil
}

func (s *service) ListAddresses(ctx context.Context, userID string) ([]AddressView, error) {
	addresses, err := s.gw.ListAddresses(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("loading addresses for user %s: %w", userID, err)
	}
	views := make([]AddressView, 0, len(addresses))
	for _, a := range addresses {
		views = append(views, addressView(a))
	}
	return views, nil
}

func (s *service) CreateAddress(ctx context.Context, userID string, input AddressInput) (*AddressView, error) {
	if !twofactor.ValidPhone(input.Phone) {
		return nil, phoneValidationError()
	}
	created, err := s.gw.CreateAddress(ctx, userID, addressPayload(input))
	if err != nil {
		return nil, fmt.Errorf("creating address for user %s: %w", userID, err)
	}
	view := addressView(*created)
	return &view, nil
}

func (s *service) UpdateAddress(ctx context.Context, userID, addressID string, input AddressInput) error {
	if !twofactor.ValidPhone(input.Phone) {
		return phoneValidationError()
	}
	if err := s.gw.UpdateAddress(ctx, userID, addressID, addressPayload(input)); err != nil {
		return fmt.Errorf("updating address %s: %w", addressID, err)
	}
	return nil
}

func (s *service) DeleteAddress(ctx context.Context, userID, addressID string) error {
	if err := s.gw.DeleteAddress(ctx, userID, addressID); err != nil {
		return fmt.Errorf("deleting address %s: %w", addressID, err)
	}
	return nil
}

func phoneValidationError() *common.APIError {
	return common.NewValidationAPIError(map[string]string{
		"phone": "Please enter a valid Turkish mobile number.",
	})
}

func addressPayload(input AddressInput) gateway.Address {
	return gateway.Address{
		Title:    input.Title,
		FullName: input.FullName,
		Phone:    input.Phone,
		City:     input.City,
		District: input.District,
		Line1:    input.Line1,
		Line2:    input.Line2,
	}
}

func addressView(a gateway.Address) AddressView {
	return AddressView{
		ID:       string(a.ID),
		Title:    a.Title,
		FullName: a.FullName,
		Phone:    a.Phone,
		City:     a.City,
		District: a.District,
		Line1:    a.Line1,
		Line2:    a.Line2,
	}
}
