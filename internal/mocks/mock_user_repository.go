package mocks

import (
	"context"
	"time"

	"github.com/JitendraSingh9587/TalkNTrade-Api/domain"
)

// MockUserRepository implements domain.UserRepository for testing
type MockUserRepository struct {
	CreateFunc           func(ctx context.Context, user *domain.User) error
	FindByIDFunc         func(ctx context.Context, id uint) (*domain.User, error)
	FindByEmailFunc      func(ctx context.Context, email string) (*domain.User, error)
	FindByMobileFunc     func(ctx context.Context, mobile string) (*domain.User, error)
	FindByIdentifierFunc func(ctx context.Context, identifier string) (*domain.User, error)
	ListFunc             func(ctx context.Context, filter domain.UserFilter, page domain.Pagination) ([]domain.User, int64, error)
	UpdateFunc           func(ctx context.Context, user *domain.User) error
	DeleteFunc           func(ctx context.Context, id uint) error
	StampLastLoginFunc   func(ctx context.Context, id uint, at time.Time) error
	CountByRoleFunc      func(ctx context.Context, role domain.Role) (int64, error)
}

// NewMockUserRepository creates a new MockUserRepository with default behaviors
func NewMockUserRepository() *MockUserRepository {
	return &MockUserRepository{}
}

func (m *MockUserRepository) Create(ctx context.Context, user *domain.User) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, user)
	}
	return nil
}

func (m *MockUserRepository) FindByID(ctx context.Context, id uint) (*domain.User, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, domain.ErrUserNotFound
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	if m.FindByEmailFunc != nil {
		return m.FindByEmailFunc(ctx, email)
	}
	return nil, domain.ErrUserNotFound
}

func (m *MockUserRepository) FindByMobile(ctx context.Context, mobile string) (*domain.User, error) {
	if m.FindByMobileFunc != nil {
		return m.FindByMobileFunc(ctx, mobile)
	}
	return nil, domain.ErrUserNotFound
}

func (m *MockUserRepository) FindByIdentifier(ctx context.Context, identifier string) (*domain.User, error) {
	if m.FindByIdentifierFunc != nil {
		return m.FindByIdentifierFunc(ctx, identifier)
	}
	return nil, domain.ErrUserNotFound
}

func (m *MockUserRepository) List(ctx context.Context, filter domain.UserFilter, page domain.Pagination) ([]domain.User, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filter, page)
	}
	return nil, 0, nil
}

func (m *MockUserRepository) Update(ctx context.Context, user *domain.User) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, user)
	}
	return nil
}

func (m *MockUserRepository) Delete(ctx context.Context, id uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *MockUserRepository) StampLastLogin(ctx context.Context, id uint, at time.Time) error {
	if m.StampLastLoginFunc != nil {
		return m.StampLastLoginFunc(ctx, id, at)
	}
	return nil
}

func (m *MockUserRepository) CountByRole(ctx context.Context, role domain.Role) (int64, error) {
	if m.CountByRoleFunc != nil {
		return m.CountByRoleFunc(ctx, role)
	}
	return 0, nil
}

// Compile-time interface compliance verification
var _ domain.UserRepository = (*MockUserRepository)(nil)
