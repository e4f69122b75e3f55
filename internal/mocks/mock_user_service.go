package mocks

import (
	"context"

	"github.com/JitendraSingh9587/TalkNTrade-Api/domain"
)

// MockUserService implements domain.UserService for handler tests
type MockUserService struct {
	ListFunc        func(ctx context.Context, filter domain.UserFilter, page domain.Pagination) ([]domain.User, domain.PageInfo, error)
	GetByIDFunc     func(ctx context.Context, id uint) (*domain.User, error)
	CreateFunc      func(ctx context.Context, user *domain.User, plainPassword string) (*domain.User, error)
	UpdateFunc      func(ctx context.Context, id uint, changes domain.UserUpdate, actorID uint) (*domain.User, error)
	SetDisabledFunc func(ctx context.Context, id uint, disabled bool, actorID uint) (*domain.User, error)
	DeleteFunc      func(ctx context.Context, id uint, actorID uint) error
}

// NewMockUserService creates a new MockUserService with default behaviors
func NewMockUserService() *MockUserService {
	return &MockUserService{}
}

func (m *MockUserService) List(ctx context.Context, filter domain.UserFilter, page domain.Pagination) ([]domain.User, domain.PageInfo, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filter, page)
	}
	return nil, domain.PageInfo{}, nil
}

func (m *MockUserService) GetByID(ctx context.Context, id uint) (*domain.User, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, domain.ErrUserNotFound
}

func (m *MockUserService) Create(ctx context.Context, user *domain.User, plainPassword string) (*domain.User, error) {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, user, plainPassword)
	}
	return user, nil
}

func (m *MockUserService) Update(ctx context.Context, id uint, changes domain.UserUpdate, actorID uint) (*domain.User, error) {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, id, changes, actorID)
	}
	return nil, domain.ErrUserNotFound
}

func (m *MockUserService) SetDisabled(ctx context.Context, id uint, disabled bool, actorID uint) (*domain.User, error) {
	if m.SetDisabledFunc != nil {
		return m.SetDisabledFunc(ctx, id, disabled, actorID)
	}
	return nil, domain.ErrUserNotFound
}

func (m *MockUserService) Delete(ctx context.Context, id uint, actorID uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id, actorID)
	}
	return nil
}

// Compile-time interface compliance verification
var _ domain.UserService = (*MockUserService)(nil)
