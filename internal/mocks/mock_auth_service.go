package mocks

import (
	"context"

	"github.com/JitendraSingh9587/TalkNTrade-Api/domain"
)

// MockAuthService implements domain.AuthService for handler tests
type MockAuthService struct {
	LoginFunc          func(ctx context.Context, identifier, password string, device domain.DeviceInfo) (*domain.AuthResult, error)
	LogoutFunc         func(ctx context.Context, accessToken string) error
	GetUserProfileFunc func(ctx context.Context, userID uint) (*domain.User, error)
}

// NewMockAuthService creates a new MockAuthService with default behaviors
func NewMockAuthService() *MockAuthService {
	return &MockAuthService{}
}

func (m *MockAuthService) Login(ctx context.Context, identifier, password string, device domain.DeviceInfo) (*domain.AuthResult, error) {
	if m.LoginFunc != nil {
		return m.LoginFunc(ctx, identifier, password, device)
	}
	return nil, domain.ErrInvalidCredentials
}

func (m *MockAuthService) Logout(ctx context.Context, accessToken string) error {
	if m.LogoutFunc != nil {
		return m.LogoutFunc(ctx, accessToken)
	}
	return nil
}

func (m *MockAuthService) GetUserProfile(ctx context.Context, userID uint) (*domain.User, error) {
	if m.GetUserProfileFunc != nil {
		return m.GetUserProfileFunc(ctx, userID)
	}
	return nil, domain.ErrUserNotFound
}

// Compile-time interface compliance verification
var _ domain.AuthService = (*MockAuthService)(nil)
