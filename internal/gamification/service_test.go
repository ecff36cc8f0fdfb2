// File: internal/gamification/service_test.go
package gamification

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

// MockGateway is a mock type for gamification.Gateway
type MockGateway struct {
	mock.Mock
}

func (m *MockGateway) GetQuests(ctx context.Context, userID string) ([]gateway.Quest, error) {
	args := m.Called(ctx, userID)
	var quests []gateway.Quest
	if args.Get(0) != nil {
		quests = args.Get(0).([]gateway.Quest)
	}
	return quests, args.Error(1)
}

func (m *MockGateway) ClaimQuestReward(ctx context.Context, userID, questID string) error {
	args := m.Called(ctx, userID, questID)
	return args.Error(0)
}

func (m *MockGateway) GetBadges(ctx context.Context, userID string) ([]gateway.Badge, error) {
	args := m.Called(ctx, userID)
	var badges []gateway.Badge
	if args.Get(0) != nil {
		badges = args.Get(0).([]gateway.Badge)
	}
	return badges, args.Error(1)
}

func (m *MockGateway) GetDailyRewards(ctx context.Context, userID string) ([]gateway.DailyReward, error) {
	args := m.Called(ctx, userID)
	var rewards []gateway.DailyReward
	if args.Get(0) != nil {
		rewards = args.Get(0).([]gateway.DailyReward)
	}
	return rewards, args.Error(1)
}

func (m *MockGateway) ClaimDailyReward(ctx context.Context, userID string) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

func (m *MockGateway) GetStreak(ctx context.Context, userID string) (*gateway.Streak, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*gateway.Streak), args.Error(1)
}

func TestCanClaim(t *testing.T) {
	assert.True(t, CanClaim(gateway.Quest{Progress: 5, Target: 5}))
	assert.True(t, CanClaim(gateway.Quest{Progress: 7, Target: 5}))
	assert.False(t, CanClaim(gateway.Quest{Progress: 5, Target: 5, Completed: true}))
	assert.False(t, CanClaim(gateway.Quest{Progress: 4, Target: 5}))
}

func TestProgressPercent_Clamped(t *testing.T) {
	assert.Equal(t, 50.0, ProgressPercent(1, 2))
	assert.Equal(t, 100.0, ProgressPercent(7, 5))
	assert.Equal(t, 0.0, ProgressPercent(0, 5))
	assert.Equal(t, 0.0, ProgressPercent(-1, 5))
	assert.Equal(t, 0.0, ProgressPercent(3, 0))
}

func TestBuildQuestBoard_Partition(t *testing.T) {
	board := BuildQuestBoard([]gateway.Quest{
		{ID: "active", Progress: 1, Target: 5},
		{ID: "claimable", Progress: 5, Target: 5},
		{ID: "done", Progress: 5, Target: 5, Completed: true},
	})

	require.Len(t, board.Active, 1)
	require.Len(t, board.Claimable, 1)
	require.Len(t, board.Completed, 1)
	assert.Equal(t, "active", board.Active[0].ID)
	assert.Equal(t, "claimable", board.Claimable[0].ID)
	assert.True(t, board.Claimable[0].CanClaim)
	assert.Equal(t, "done", board.Completed[0].ID)
	assert.False(t, board.Completed[0].CanClaim)
}

func TestService_ClaimQuest_GatedClientSide(t *testing.T) {
	mockGW := new(MockGateway)
	svc := NewService(mockGW, zap.NewNop())
	ctx := context.Background()

	mockGW.On("GetQuests", ctx, "42").Return([]gateway.Quest{
		{ID: "q1", Progress: 2, Target: 5},
	}, nil)

	err := svc.ClaimQuest(ctx, "42", "q1")
	require.Error(t, err)
	apiErr, ok := common.IsAPIError(err)
	require.True(t, ok)
	assert.Equal(t, common.ErrUnprocessableEntity.Code, apiErr.Code)
	// The claim call never happened.
	mockGW.AssertNotCalled(t, "ClaimQuestReward", mock.Anything, mock.Anything, mock.Anything)
}

func TestService_ClaimQuest_Eligible(t *testing.T) {
	mockGW := new(MockGateway)
	svc := NewService(mockGW, zap.NewNop())
	ctx := context.Background()

	mockGW.On("GetQuests", ctx, "42").Return([]gateway.Quest{
		{ID: "q1", Progress: 5, Target: 5},
	}, nil)
	mockGW.On("ClaimQuestReward", ctx, "42", "q1").Return(nil)

	assert.NoError(t, svc.ClaimQuest(ctx, "42", "q1"))
	mockGW.AssertExpectations(t)
}

func TestService_ClaimQuest_UnknownQuest(t *testing.T) {
	mockGW := new(MockGateway)
	svc := NewService(mockGW, zap.NewNop())
	ctx := context.Background()

	mockGW.On("GetQuests", ctx, "42").Return([]gateway.Quest{}, nil)

	err := svc.ClaimQuest(ctx, "42", "missing")
	require.Error(t, err)
	apiErr, ok := common.IsAPIError(err)
	require.True(t, ok)
	assert.Equal(t, common.ErrNotFound.Code, apiErr.Code)
}

func TestService_QuestBoard_SyntheticFallback(t *testing.T) {
	mockGW := new(MockGateway)
	svc := NewService(mockGW, zap.NewNop())
	ctx := context.Background()

	mockGW.On("GetQuests", ctx, "42").Return(nil, errors.New("boom"))

	board, err := svc.GetQuestBoard(ctx, "42")
	require.NoError(t, err)
	assert.True(t, board.Synthetic)
	assert.NotEmpty(t, board.Active)
}

func TestService_QuestBoard_FallbackDisabledPropagatesError(t *testing.T) {
	mockGW := new(MockGateway)
	svc := NewServiceWithPolicy(mockGW, FallbackPolicy{}, zap.NewNop())
	ctx := context.Background()

	mockGW.On("GetQuests", ctx, "42").Return(nil, errors.New("boom"))

	_, err := svc.GetQuestBoard(ctx, "42")
	assert.Error(t, err)
}

func TestService_ClaimNeverFallsBack(t *testing.T) {
	mockGW := new(MockGateway)
	svc := NewService(mockGW, zap.NewNop())
	ctx := context.Background()

	mockGW.On("GetQuests", ctx, "42").Return(nil, errors.New("boom"))

	err := svc.ClaimQuest(ctx, "42", "q1")
	assert.Error(t, err)
	mockGW.AssertNotCalled(t, "ClaimQuestReward", mock.Anything, mock.Anything, mock.Anything)
}

func TestService_GetOverview_WaitsForBoth(t *testing.T) {
	mockGW := new(MockGateway)
	svc := NewService(mockGW, zap.NewNop())
	ctx := context.Background()

	mockGW.On("GetQuests", mock.Anything, "42").Return([]gateway.Quest{
		{ID: "q1", Progress: 1, Target: 3},
	}, nil)
	mockGW.On("GetStreak", mock.Anything, "42").Return(&gateway.Streak{CurrentDays: 4, LongestDays: 9}, nil)

	overview, err := svc.GetOverview(ctx, "42")
	require.NoError(t, err)
	require.NotNil(t, overview.Quests)
	require.NotNil(t, overview.Streak)
	assert.Equal(t, 4, overview.Streak.CurrentDays)
	mockGW.AssertExpectations(t)
}

func TestService_BadgeCase_RarityDescriptors(t *testing.T) {
	mockGW := new(MockGateway)
	svc := NewService(mockGW, zap.NewNop())
	ctx := context.Background()

	mockGW.On("GetBadges", ctx, "42").Return([]gateway.Badge{
		{ID: "b1", Name: "Explorer", Rarity: RarityRare, Earned: true},
		{ID: "b2", Name: "Mystery", Rarity: "mythic", Earned: false},
	}, nil)

	badgeCase, err := svc.GetBadgeCase(ctx, "42")
	require.NoError(t, err)
	assert.Equal(t, 1, badgeCase.EarnedCount)
	assert.Equal(t, "Rare", badgeCase.Badges[0].Display.Label)
	// Unknown rarity degrades to the default descriptor.
	assert.Equal(t, "Badge", badgeCase.Badges[1].Display.Label)
}
