package services

import (
	"context"
	"testing"
	"time"

	"github.com/JitendraSingh9587/TalkNTrade-Api/domain"
	"github.com/JitendraSingh9587/TalkNTrade-Api/internal/mocks"
)

// createAuthServiceForTest creates an AuthService with mock dependencies for testing
func createAuthServiceForTest(t *testing.T,
	userRepo domain.UserRepository,
	sessionRepo domain.SessionRepository,
	passwordSvc domain.PasswordService,
	tokenSvc domain.TokenService,
	settings domain.SettingsCache,
	loginLock domain.LoginLock) domain.AuthService {
	t.Helper()

	// Use provided mocks or create defaults
	if userRepo == nil {
		userRepo = mocks.NewMockUserRepository()
	}
	if sessionRepo == nil {
		sessionRepo = mocks.NewMockSessionRepository()
	}
	if passwordSvc == nil {
		passwordSvc = mocks.NewMockPasswordService()
	}
	if tokenSvc == nil {
		tokenSvc = mocks.NewMockTokenService()
	}
	if settings == nil {
		settings = mocks.NewMockSettingsCache(nil)
	}
	if loginLock == nil {
		loginLock = mocks.NewMockLoginLock()
	}

	return NewAuthService(userRepo, sessionRepo, passwordSvc, tokenSvc, settings, loginLock)
}

// createValidUser creates a valid user entity for testing
func createValidUser(t *testing.T) *domain.User {
	t.Helper()

	return &domain.User{
		ID:           1,
		Name:         "Test User",
		Email:        "test@example.com",
		Mobile:       "+911234567890",
		PasswordHash: "hashed_password123",
		Role:         domain.RoleUser,
		IsDisabled:   false,
		CreatedAt:    time.Now().Add(-24 * time.Hour),
	}
}

// createTestDevice returns the device metadata used across login tests
func createTestDevice(t *testing.T) domain.DeviceInfo {
	t.Helper()

	return domain.DeviceInfo{
		DeviceID:   "dev-1",
		DeviceType: domain.DeviceWeb,
		UserAgent:  "go-test/1.0",
		IPAddress:  "192.0.2.10",
	}
}

// createTestContext creates a context with timeout for testing
func createTestContext(t *testing.T) context.Context {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	t.Cleanup(cancel)
	return ctx
}
