// File: internal/auth/service_test.go
package auth

import (
	"context"
	"testing"
	"time"

	"huglu_mobile_backend/internal/common"
	"huglu_mobile_backend/internal/gateway"
	"huglu_mobile_backend/internal/session"
	"huglu_mobile_backend/internal/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// MockGateway is a mock type for auth.Gateway
type MockGateway struct {
	mock.Mock
}

func (m *MockGateway) Login(ctx context.Context, req gateway.LoginRequest) (*gateway.Account, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*gateway.Account), args.Error(1)
}

func (m *MockGateway) Register(ctx context.Context, req gateway.RegisterRequest) (*gateway.Account, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*gateway.Account), args.Error(1)
}

// MockTokenService is a mock type for shared.TokenService
type MockTokenService struct {
	mock.Mock
}

func (m *MockTokenService) GenerateToken(userID string, sessionID uuid.UUID, tenantID string) (*shared.TokenResponse, error) {
	args := m.Called(userID, sessionID, tenantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*shared.TokenResponse), args.Error(1)
}

func (m *MockTokenService) ValidateToken(tokenString string) (*shared.Claims, error) {
	args := m.Called(tokenString)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*shared.Claims), args.Error(1)
}

// fakeStore is an in-memory session.Store.
type fakeStore struct {
	values map[uuid.UUID]map[string]string
}

func newFakeStore() *fakeStore {
	return &fakeStore{values: make(map[uuid.UUID]map[string]string)}
}

func (f *fakeStore) Begin(_ context.Context, userID string, values map[string]string) (uuid.UUID, error) {
	id := uuid.New()
	seeded := make(map[string]string, len(values))
	for k, v := range values {
		seeded[k] = v
	}
	f.values[id] = seeded
	return id, nil
}

func (f *fakeStore) Set(_ context.Context, sessionID uuid.UUID, _, key, value string) error {
	if f.values[sessionID] == nil {
		f.values[sessionID] = make(map[string]string)
	}
	f.values[sessionID][key] = value
	return nil
}

func (f *fakeStore) Get(_ context.Context, sessionID uuid.UUID, key string) (string, bool, error) {
	value, ok := f.values[sessionID][key]
	return value, ok, nil
}

func (f *fakeStore) Values(_ context.Context, sessionID uuid.UUID) (map[string]string, error) {
	return f.values[sessionID], nil
}

func (f *fakeStore) Destroy(_ context.Context, sessionID uuid.UUID) error {
	delete(f.values, sessionID)
	return nil
}

func (f *fakeStore) PurgeExpired(_ context.Context) (int64, error) {
	return 0, nil
}

func testAccount() *gateway.Account {
	return &gateway.Account{
		UserID:   "42",
		Name:     "Ayşe Yılmaz",
		Email:    "ayse@example.com",
		Phone:    "05551234567",
		TenantID: "huglu",
	}
}

func TestService_Login_SeedsSessionAndIssuesToken(t *testing.T) {
	mockGW := new(MockGateway)
	mockTokens := new(MockTokenService)
	store := newFakeStore()
	svc := NewService(mockGW, store, mockTokens, zap.NewNop())
	ctx := context.Background()

	mockGW.On("Login", ctx, gateway.LoginRequest{Email: "ayse@example.com", Password: "secret1"}).
		Return(testAccount(), nil)
	mockTokens.On("GenerateToken", "42", mock.AnythingOfType("uuid.UUID"), "huglu").
		Return(&shared.TokenResponse{AccessToken: "tok", TokenType: "Bearer", ExpiresAt: time.Now().Add(time.Hour)}, nil)

	result, err := svc.Login(ctx, LoginInput{Email: "ayse@example.com", Password: "secret1"})
	require.NoError(t, err)
	assert.Equal(t, "42", result.User.UserID)
	assert.Equal(t, "tok", result.Token.AccessToken)

	require.Len(t, store.values, 1)
	for _, seeded := range store.values {
		assert.Equal(t, "42", seeded[session.KeyUserID])
		assert.Equal(t, "Ayşe Yılmaz", seeded[session.KeyUserName])
		assert.Equal(t, "ayse@example.com", seeded[session.KeyUserEmail])
		assert.Equal(t, "05551234567", seeded[session.KeyUserPhone])
		assert.Equal(t, "huglu", seeded[session.KeyTenantID])
		assert.Equal(t, "true", seeded[session.KeyIsLoggedIn])
		assert.Equal(t, "false", seeded[session.KeyHasSeenOnboarding])
		assert.Equal(t, "false", seeded[session.KeyTwoFactorEnabled])
	}
	mockGW.AssertExpectations(t)
	mockTokens.AssertExpectations(t)
}

func TestService_Login_UpstreamRejection(t *testing.T) {
	mockGW := new(MockGateway)
	store := newFakeStore()
	svc := NewService(mockGW, store, new(MockTokenService), zap.NewNop())
	ctx := context.Background()

	mockGW.On("Login", ctx, mock.Anything).
		Return(nil, &gateway.UpstreamError{StatusCode: 401, Message: "E-posta veya şifre hatalı"})

	_, err := svc.Login(ctx, LoginInput{Email: "ayse@example.com", Password: "wrong1"})
	require.Error(t, err)
	apiErr, ok := common.IsAPIError(err)
	require.True(t, ok)
	assert.Equal(t, common.ErrUnauthorized.Code, apiErr.Code)
	assert.Equal(t, "E-posta veya şifre hatalı", apiErr.Details)
	assert.Empty(t, store.values)
}

func TestService_Register_InvalidPhoneNeverReachesGateway(t *testing.T) {
	mockGW := new(MockGateway)
	svc := NewService(mockGW, newFakeStore(), new(MockTokenService), zap.NewNop())
	ctx := context.Background()

	_, err := svc.Register(ctx, RegisterInput{
		Name:     "Ayşe",
		Email:    "ayse@example.com",
		Phone:    "123",
		Password: "secret1",
	})
	require.Error(t, err)
	apiErr, ok := common.IsAPIError(err)
	require.True(t, ok)
	assert.Equal(t, "VALIDATION_ERROR", apiErr.Code)
	mockGW.AssertNotCalled(t, "Register", mock.Anything, mock.Anything)
}

func TestService_Register_LogsStraightIn(t *testing.T) {
	mockGW := new(MockGateway)
	mockTokens := new(MockTokenService)
	store := newFakeStore()
	svc := NewService(mockGW, store, mockTokens, zap.NewNop())
	ctx := context.Background()

	mockGW.On("Register", ctx, mock.Anything).Return(testAccount(), nil)
	mockTokens.On("GenerateToken", "42", mock.AnythingOfType("uuid.UUID"), "huglu").
		Return(&shared.TokenResponse{AccessToken: "tok", TokenType: "Bearer"}, nil)

	result, err := svc.Register(ctx, RegisterInput{
		Name:     "Ayşe Yılmaz",
		Email:    "ayse@example.com",
		Phone:    "05551234567",
		Password: "secret1",
	})
	require.NoError(t, err)
	assert.NotNil(t, result.Token)
	assert.Len(t, store.values, 1)
}

func TestService_Login_TokenFailureDestroysSession(t *testing.T) {
	mockGW := new(MockGateway)
	mockTokens := new(MockTokenService)
	store := newFakeStore()
	svc := NewService(mockGW, store, mockTokens, zap.NewNop())
	ctx := context.Background()

	mockGW.On("Login", ctx, mock.Anything).Return(testAccount(), nil)
	mockTokens.On("GenerateToken", "42", mock.AnythingOfType("uuid.UUID"), "huglu").
		Return(nil, assert.AnError)

	_, err := svc.Login(ctx, LoginInput{Email: "ayse@example.com", Password: "secret1"})
	require.Error(t, err)
	assert.Empty(t, store.values)
}

func TestService_Logout_DestroysSession(t *testing.T) {
	store := newFakeStore()
	svc := NewService(new(MockGateway), store, new(MockTokenService), zap.NewNop())
	ctx := context.Background()

	sessionID, _ := store.Begin(ctx, "42", map[string]string{session.KeyIsLoggedIn: "true"})
	require.NoError(t, svc.Logout(ctx, sessionID))

	_, ok, _ := store.Get(ctx, sessionID, session.KeyIsLoggedIn)
	assert.False(t, ok)
}

func TestService_MarkOnboardingSeen(t *testing.T) {
	store := newFakeStore()
	svc := NewService(new(MockGateway), store, new(MockTokenService), zap.NewNop())
	ctx := context.Background()

	sessionID, _ := store.Begin(ctx, "42", map[string]string{session.KeyHasSeenOnboarding: "false"})
	require.NoError(t, svc.MarkOnboardingSeen(ctx, sessionID, "42"))

	value, ok, _ := store.Get(ctx, sessionID, session.KeyHasSeenOnboarding)
	require.True(t, ok)
	assert.Equal(t, "true", value)
}
