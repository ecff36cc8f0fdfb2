// File: internal/returns/service_test.go
package returns

import (
	"context"
	"errors"
	"testing"

	"huglu_mobile_backend/internal/common"
	"huglu_mobile_backend/internal/gateway"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// MockGateway is a mock type for returns.Gateway
type MockGateway struct {
	mock.Mock
}

func (m *MockGateway) GetReturnRequests(ctx context.Context, userID string) ([]gateway.ReturnRequest, error) {
	args := m.Called(ctx, userID)
	var requests []gateway.ReturnRequest
	if args.Get(0) != nil {
		requests = args.Get(0).([]gateway.ReturnRequest)
	}
	return requests, args.Error(1)
}

func (m *MockGateway) CancelReturnRequest(ctx context.Context, userID, requestID string) error {
	args := m.Called(ctx, userID, requestID)
	return args.Error(0)
}

func TestBuildList_StatusTotality(t *testing.T) {
	list := BuildList([]gateway.ReturnRequest{
		{ID: "r1", Status: StatusPending},
		{ID: "r2", Status: StatusApproved},
		{ID: "r3", Status: StatusProcessing},
		{ID: "r4", Status: StatusCompleted},
		{ID: "r5", Status: StatusRejected},
		{ID: "r6", Status: "something_new"},
	})

	require.Len(t, list.Items, 6)
	assert.Equal(t, "Pending", list.Items[0].Display.Label)
	assert.Equal(t, "Approved", list.Items[1].Display.Label)
	assert.Equal(t, "Processing", list.Items[2].Display.Label)
	assert.Equal(t, "Completed", list.Items[3].Display.Label)
	assert.Equal(t, "Rejected", list.Items[4].Display.Label)
	// Unknown status keeps its raw value and degrades to the default descriptor.
	assert.Equal(t, "something_new", list.Items[5].Status)
	assert.Equal(t, "Return", list.Items[5].Display.Label)
	assert.Equal(t, "package", list.Items[5].Display.Icon)
}

func TestBuildList_CanCancelOnlyPending(t *testing.T) {
	list := BuildList([]gateway.ReturnRequest{
		{ID: "r1", Status: StatusPending},
		{ID: "r2", Status: StatusApproved},
		{ID: "r3", Status: "something_new"},
	})

	assert.True(t, list.Items[0].CanCancel)
	assert.False(t, list.Items[1].CanCancel)
	assert.False(t, list.Items[2].CanCancel)
}

func TestService_Cancel_Pending(t *testing.T) {
	mockGW := new(MockGateway)
	svc := NewService(mockGW, zap.NewNop())
	ctx := context.Background()

	mockGW.On("GetReturnRequests", ctx, "42").Return([]gateway.ReturnRequest{
		{ID: "r1", Status: StatusPending},
	}, nil)
	mockGW.On("CancelReturnRequest", ctx, "42", "r1").Return(nil)

	assert.NoError(t, svc.Cancel(ctx, "42", "r1"))
	mockGW.AssertExpectations(t)
}

func TestService_Cancel_NonPendingRejectedLocally(t *testing.T) {
	mockGW := new(MockGateway)
	svc := NewService(mockGW, zap.NewNop())
	ctx := context.Background()

	mockGW.On("GetReturnRequests", ctx, "42").Return([]gateway.ReturnRequest{
		{ID: "r1", Status: StatusProcessing},
	}, nil)

	err := svc.Cancel(ctx, "42", "r1")
	require.Error(t, err)
	apiErr, ok := common.IsAPIError(err)
	require.True(t, ok)
	assert.Equal(t, common.ErrUnprocessableEntity.Code, apiErr.Code)
	mockGW.AssertNotCalled(t, "CancelReturnRequest", mock.Anything, mock.Anything, mock.Anything)
}

func TestService_Cancel_NotFound(t *testing.T) {
	mockGW := new(MockGateway)
	svc := NewService(mockGW, zap.NewNop())
	ctx := context.Background()

	mockGW.On("GetReturnRequests", ctx, "42").Return([]gateway.ReturnRequest{}, nil)

	err := svc.Cancel(ctx, "42", "missing")
	require.Error(t, err)
	apiErr, ok := common.IsAPIError(err)
	require.True(t, ok)
	assert.Equal(t, common.ErrNotFound.Code, apiErr.Code)
}

func TestService_GetList_NoFallback(t *testing.T) {
	mockGW := new(MockGateway)
	svc := NewService(mockGW, zap.NewNop())
	ctx := context.Background()

	mockGW.On("GetReturnRequests", ctx, "42").Return(nil, errors.New("boom"))

	_, err := svc.GetList(ctx, "42")
	assert.Error(t, err)
}
