package mocks

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"time"

	"github.com/JitendraSingh9587/TalkNTrade-Api/domain"
)

// MockPasswordService implements domain.PasswordService for testing.
// The defaults hash with a "hashed_" prefix and verify against it.
type MockPasswordService struct {
	HashFunc   func(password string) (string, error)
	VerifyFunc func(hashedPassword, password string) bool
}

func NewMockPasswordService() *MockPasswordService {
	return &MockPasswordService{}
}

func (m *MockPasswordService) Hash(password string) (string, error) {
	if m.HashFunc != nil {
		return m.HashFunc(password)
	}
	return "hashed_" + password, nil
}

func (m *MockPasswordService) Verify(hashedPassword, password string) bool {
	if m.VerifyFunc != nil {
		return m.VerifyFunc(hashedPassword, password)
	}
	return hashedPassword == "hashed_"+password
}

// MockTokenService implements domain.TokenService for testing. Default
// tokens are deterministic strings; Digest is a real SHA-256 so digest
// invariants hold in tests.
type MockTokenService struct {
	IssueAccessTokenFunc   func(payload domain.TokenPayload, ttlSpec string) (string, time.Time, error)
	IssueRefreshTokenFunc  func(payload domain.TokenPayload, ttlSpec string) (string, time.Time, error)
	VerifyAccessTokenFunc  func(token string) (*domain.TokenPayload, error)
	VerifyRefreshTokenFunc func(token string) (*domain.TokenPayload, error)
	DigestFunc             func(token string) string
}

func NewMockTokenService() *MockTokenService {
	return &MockTokenService{}
}

func (m *MockTokenService) IssueAccessToken(payload domain.TokenPayload, ttlSpec string) (string, time.Time, error) {
	if m.IssueAccessTokenFunc != nil {
		return m.IssueAccessTokenFunc(payload, ttlSpec)
	}
	return "access_token", time.Now().Add(time.Hour), nil
}

func (m *MockTokenService) IssueRefreshToken(payload domain.TokenPayload, ttlSpec string) (string, time.Time, error) {
	if m.IssueRefreshTokenFunc != nil {
		return m.IssueRefreshTokenFunc(payload, ttlSpec)
	}
	return "refresh_token", time.Now().Add(7 * 24 * time.Hour), nil
}

func (m *MockTokenService) VerifyAccessToken(token string) (*domain.TokenPayload, error) {
	if m.VerifyAccessTokenFunc != nil {
		return m.VerifyAccessTokenFunc(token)
	}
	return nil, domain.ErrTokenInvalid
}

func (m *MockTokenService) VerifyRefreshToken(token string) (*domain.TokenPayload, error) {
	if m.VerifyRefreshTokenFunc != nil {
		return m.VerifyRefreshTokenFunc(token)
	}
	return nil, domain.ErrTokenInvalid
}

func (m *MockTokenService) Digest(token string) string {
	if m.DigestFunc != nil {
		return m.DigestFunc(token)
	}
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}

// MockSettingsCache implements domain.SettingsCache for testing; it is
// a plain map with no load semantics.
type MockSettingsCache struct {
	Settings    map[string]string
	Loaded      bool
	LoadFunc    func(ctx context.Context) error
	RefreshFunc func(ctx context.Context) error
}

func NewMockSettingsCache(settings map[string]string) *MockSettingsCache {
	if settings == nil {
		settings = map[string]string{}
	}
	return &MockSettingsCache{Settings: settings, Loaded: true}
}

func (m *MockSettingsCache) Load(ctx context.Context) error {
	if m.LoadFunc != nil {
		return m.LoadFunc(ctx)
	}
	m.Loaded = true
	return nil
}

func (m *MockSettingsCache) Get(key, defaultValue string) string {
	if !m.Loaded {
		return defaultValue
	}
	if v, ok := m.Settings[key]; ok {
		return v
	}
	return defaultValue
}

func (m *MockSettingsCache) GetAll() map[string]string {
	out := make(map[string]string, len(m.Settings))
	for k, v := range m.Settings {
		out[k] = v
	}
	return out
}

func (m *MockSettingsCache) Refresh(ctx context.Context) error {
	if m.RefreshFunc != nil {
		return m.RefreshFunc(ctx)
	}
	return nil
}

func (m *MockSettingsCache) IsLoaded() bool { return m.Loaded }

// MockLoginLock implements domain.LoginLock; the default grants the
// lock immediately.
type MockLoginLock struct {
	AcquireFunc func(ctx context.Context, userID uint) (func(), bool)
}

func NewMockLoginLock() *MockLoginLock {
	return &MockLoginLock{}
}

func (m *MockLoginLock) Acquire(ctx context.Context, userID uint) (func(), bool) {
	if m.AcquireFunc != nil {
		return m.AcquireFunc(ctx, userID)
	}
	return func() {}, true
}

// MockNotificationService implements domain.NotificationService for testing
type MockNotificationService struct {
	SendEmailFunc        func(to, subject, body string) error
	VerifyConnectionFunc func() error
}

func NewMockNotificationService() *MockNotificationService {
	return &MockNotificationService{}
}

func (m *MockNotificationService) SendEmail(to, subject, body string) error {
	if m.SendEmailFunc != nil {
		return m.SendEmailFunc(to, subject, body)
	}
	return nil
}

func (m *MockNotificationService) VerifyConnection() error {
	if m.VerifyConnectionFunc != nil {
		return m.VerifyConnectionFunc()
	}
	return nil
}

// Compile-time interface compliance verification
var (
	_ domain.PasswordService     = (*MockPasswordService)(nil)
	_ domain.TokenService        = (*MockTokenService)(nil)
	_ domain.SettingsCache       = (*MockSettingsCache)(nil)
	_ domain.LoginLock           = (*MockLoginLock)(nil)
	_ domain.NotificationService = (*MockNotificationService)(nil)
)
