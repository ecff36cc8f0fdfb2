// File: internal/wishlist/service_test.go
package wishlist

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

// MockGateway is a mock type for wishlist.Gateway
type MockGateway struct {
	mock.Mock
}

func (m *MockGateway) GetFavorites(ctx context.Context, userID string) ([]gateway.FavoriteEntry, error) {
	args := m.Called(ctx, userID)
	var entries []gateway.FavoriteEntry
	if args.Get(0) != nil {
		entries = args.Get(0).([]gateway.FavoriteEntry)
	}
	return entries, args.Error(1)
}

func (m *MockGateway) RemoveFavorite(ctx context.Context, userID, favoriteID string) error {
	args := m.Called(ctx, userID, favoriteID)
	return args.Error(0)
}

func TestBuildSummary_TotalValueTolerance(t *testing.T) {
	summary := BuildSummary([]gateway.FavoriteEntry{
		{FavoriteID: "f1", Name: "Av Yeleği", Price: "10.50"},
		{FavoriteID: "f2", Name: "Fener", Price: ""},
		{FavoriteID: "f3", Name: "Dürbün", Price: "abc"},
	})

	assert.Equal(t, 3, summary.ItemCount)
	assert.Equal(t, 10.50, summary.TotalValue)
	assert.GreaterOrEqual(t, summary.TotalValue, 0.0)
}

func TestBuildSummary_KeysAndSlug(t *testing.T) {
	summary := BuildSummary([]gateway.FavoriteEntry{
		{FavoriteID: "fav-9", ProductID: "p-1", Name: "Süper Kamp Çadırı", Price: "1200"},
	})

	require.Len(t, summary.Entries, 1)
	entry := summary.Entries[0]
	assert.Equal(t, "fav-9", entry.FavoriteID)
	assert.Equal(t, "p-1", entry.ProductID)
	assert.Equal(t, "super-kamp-cadiri", entry.Slug)
}

func TestRemoveRequest_DeletionKeyPriority(t *testing.T) {
	assert.Equal(t, "a", RemoveRequest{ID: "a", FavoriteID: "b", LegacyID: "c"}.DeletionKey())
	assert.Equal(t, "b", RemoveRequest{FavoriteID: "b", LegacyID: "c"}.DeletionKey())
	assert.Equal(t, "c", RemoveRequest{LegacyID: "c"}.DeletionKey())
	assert.Equal(t, "", RemoveRequest{}.DeletionKey())
}

func TestService_Remove_MissingIdentifier(t *testing.T) {
	mockGW := new(MockGateway)
	svc := NewService(mockGW, zap.NewNop())

	err := svc.Remove(context.Background(), "42", RemoveRequest{})
	require.Error(t, err)
	apiErr, ok := common.IsAPIError(err)
	require.True(t, ok)
	assert.Equal(t, "VALIDATION_ERROR", apiErr.Code)
	// No network call was made.
	mockGW.AssertNotCalled(t, "RemoveFavorite", mock.Anything, mock.Anything, mock.Anything)
}

func TestService_Remove_Success(t *testing.T) {
	mockGW := new(MockGateway)
	svc := NewService(mockGW, zap.NewNop())
	ctx := context.Background()

	mockGW.On("RemoveFavorite", ctx, "42", "fav-1").Return(nil)

	err := svc.Remove(ctx, "42", RemoveRequest{FavoriteID: "fav-1"})
	assert.NoError(t, err)
	mockGW.AssertExpectations(t)
}

func TestService_ClearAll_PartialFailure(t *testing.T) {
	mockGW := new(MockGateway)
	svc := NewService(mockGW, zap.NewNop())
	ctx := context.Background()

	mockGW.On("GetFavorites", ctx, "42").Return([]gateway.FavoriteEntry{
		{ID: "f1"}, {ID: "f2"}, {ID: "f3"},
	}, nil)
	mockGW.On("RemoveFavorite", ctx, "42", "f1").Return(nil)
	mockGW.On("RemoveFavorite", ctx, "42", "f2").Return(errors.New("boom"))
	mockGW.On("RemoveFavorite", ctx, "42", "f3").Return(nil)

	result, err := svc.ClearAll(ctx, "42")
	require.NoError(t, err)
	assert.Equal(t, 3, result.Requested)
	assert.Equal(t, []string{"f1", "f3"}, result.RemovedIDs)
	assert.Equal(t, []string{"f2"}, result.FailedIDs)
	assert.Equal(t, "2 of 3 removed", result.Outcome())
	// Every row was attempted despite the mid-iteration failure.
	mockGW.AssertExpectations(t)
}

func TestService_ClearAll_FetchFailure(t *testing.T) {
	mockGW := new(MockGateway)
	svc := NewService(mockGW, zap.NewNop())
	ctx := context.Background()

	mockGW.On("GetFavorites", ctx, "42").Return(nil, errors.New("boom"))

	_, err := svc.ClearAll(ctx, "42")
	assert.Error(t, err)
	mockGW.AssertExpectations(t)
}
