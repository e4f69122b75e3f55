package mocks

import (
	"context"

	"github.com/JitendraSingh9587/TalkNTrade-Api/domain"
)

// MockSessionRepository implements domain.SessionRepository for testing
type MockSessionRepository struct {
	CreateFunc                  func(ctx context.Context, session *domain.UserSession) error
	CountActiveFunc             func(ctx context.Context, userID uint) (int64, error)
	DeleteOldestActiveFunc      func(ctx context.Context, userID uint, n int) error
	DeleteByAccessTokenHashFunc func(ctx context.Context, hash string) error
	DeleteByUserIDFunc          func(ctx context.Context, userID uint) error
	DeleteExpiredFunc           func(ctx context.Context) error
}

// NewMockSessionRepository creates a new MockSessionRepository with default behaviors
func NewMockSessionRepository() *MockSessionRepository {
	return &MockSessionRepository{}
}

func (m *MockSessionRepository) Create(ctx context.Context, session *domain.UserSession) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, session)
	}
	return nil
}

func (m *MockSessionRepository) CountActive(ctx context.Context, userID uint) (int64, error) {
	if m.CountActiveFunc != nil {
		return m.CountActiveFunc(ctx, userID)
	}
	return 0, nil
}

func (m *MockSessionRepository) DeleteOldestActive(ctx context.Context, userID uint, n int) error {
	if m.DeleteOldestActiveFunc != nil {
		return m.DeleteOldestActiveFunc(ctx, userID, n)
	}
	return nil
}

func (m *MockSessionRepository) DeleteByAccessTokenHash(ctx context.Context, hash string) error {
	if m.DeleteByAccessTokenHashFunc != nil {
		return m.DeleteByAccessTokenHashFunc(ctx, hash)
	}
	return nil
}

func (m *MockSessionRepository) DeleteByUserID(ctx context.Context, userID uint) error {
	if m.DeleteByUserIDFunc != nil {
		return m.DeleteByUserIDFunc(ctx, userID)
	}
	return nil
}

func (m *MockSessionRepository) DeleteExpired(ctx context.Context) error {
	if m.DeleteExpiredFunc != nil {
		return m.DeleteExpiredFunc(ctx)
	}
	return nil
}

// Compile-time interface compliance verification
var _ domain.SessionRepository = (*MockSessionRepository)(nil)
