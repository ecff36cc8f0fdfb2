// File: internal/referral/service.go

// Package referral serves the invite-a-friend screen. The screen must always
// have a shareable code, so a failed or empty upstream read degrades to a
// deterministic code derived from the user ID instead of an error.
package referral

import (
	"context"

	"huglu_mobile_backend/internal/gateway"

	"go.uber.org/zap"
)

// View is the referral screen view model.
type View struct {
	ReferralCode   string `json:"referralCode"`
	TotalCredits   int    `json:"totalCredits"`
	TotalReferrals int    `json:"totalReferrals"`
	Synthetic      bool   `json:"synthetic,omitempty"`
}

// Gateway is the slice of the commerce client this module needs.
type Gateway interface {
	GetReferralInfo(ctx context.Context, userID string) (*gateway.ReferralInfo, error)
}

// Service exposes the referral screen operations.
type Service interface {
	GetView(ctx context.Context, userID string) (*View, error)
}

type service struct {
	gw     Gateway
	logger *zap.Logger
}

func NewService(gw Gateway, logger *zap.Logger) Service {
	return &service{gw: gw, logger: logger.Named("referral")}
}

// GetView fetches the referral state. Any gateway failure, or a response
// without a code, yields the fallback code with zero counters.
func (s *service) GetView(ctx context.Context, userID string) (*View, error) {
	info, err := s.gw.GetReferralInfo(ctx, userID)
	if err != nil {
		s.logger.Warn("Referral fetch failed, serving fallback code",
			zap.String("user_id", userID), zap.Error(err))
		return fallbackView(userID), nil
	}
	if info.ReferralCode == "" {
		s.logger.Warn("Referral response carried no code, serving fallback code",
			zap.String("user_id", userID))
		return fallbackView(userID), nil
	}
	return &View{
		ReferralCode:   info.ReferralCode,
		TotalCredits:   info.TotalCredits,
		TotalReferrals: info.TotalReferrals,
	}, nil
}

// FallbackCode derives the local referral code for a user.
func FallbackCode(userID string) string {
	return "HUGLU" + userID
}

func fallbackView(userID string) *View {
	return &View{
		ReferralCode: FallbackCode(userID),
		Synthetic:    true,
	}
}
