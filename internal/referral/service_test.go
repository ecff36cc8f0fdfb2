// File: internal/referral/service_test.go
package referral

import (
	"context"
	"errors"
	"testing"

	"huglu_mobile_backend/internal/gateway"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// MockGateway is a mock type for referral.Gateway
type MockGateway struct {
	mock.Mock
}

func (m *MockGateway) GetReferralInfo(ctx context.Context, userID string) (*gateway.ReferralInfo, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*gateway.ReferralInfo), args.Error(1)
}

func TestService_GetView_Success(t *testing.T) {
	mockGW := new(MockGateway)
	svc := NewService(mockGW, zap.NewNop())
	ctx := context.Background()

	mockGW.On("GetReferralInfo", ctx, "42").Return(&gateway.ReferralInfo{
		ReferralCode:   "FRIEND-XYZ",
		TotalCredits:   150,
		TotalReferrals: 3,
	}, nil)

	view, err := svc.GetView(ctx, "42")
	require.NoError(t, err)
	assert.Equal(t, "FRIEND-XYZ", view.ReferralCode)
	assert.Equal(t, 150, view.TotalCredits)
	assert.Equal(t, 3, view.TotalReferrals)
	assert.False(t, view.Synthetic)
}

func TestService_GetView_FallbackOnError(t *testing.T) {
	mockGW := new(MockGateway)
	svc := NewService(mockGW, zap.NewNop())
	ctx := context.Background()

	mockGW.On("GetReferralInfo", ctx, "42").Return(nil, errors.New("boom"))

	view, err := svc.GetView(ctx, "42")
	require.NoError(t, err)
	assert.Equal(t, "HUGLU42", view.ReferralCode)
	assert.Equal(t, 0, view.TotalCredits)
	assert.Equal(t, 0, view.TotalReferrals)
	assert.True(t, view.Synthetic)
}

func TestService_GetView_FallbackOnEmptyCode(t *testing.T) {
	mockGW := new(MockGateway)
	svc := NewService(mockGW, zap.NewNop())
	ctx := context.Background()

	mockGW.On("GetReferralInfo", ctx, "42").Return(&gateway.ReferralInfo{
		TotalCredits: 999,
	}, nil)

	view, err := svc.GetView(ctx, "42")
	require.NoError(t, err)
	assert.Equal(t, "HUGLU42", view.ReferralCode)
	// Counters from a code-less response are not trusted either.
	assert.Equal(t, 0, view.TotalCredits)
	assert.True(t, view.Synthetic)
}

func TestFallbackCode(t *testing.T) {
	assert.Equal(t, "HUGLU42", FallbackCode("42"))
	assert.Equal(t, "HUGLU", FallbackCode(""))
}
