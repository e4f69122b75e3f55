package mocks

import (
	"context"

	"github.com/JitendraSingh9587/TalkNTrade-Api/domain"
)

// MockSettingRepository implements domain.SettingRepository for testing
type MockSettingRepository struct {
	FindAllActiveFunc func(ctx context.Context) ([]domain.AppSetting, error)
	FindByIDFunc      func(ctx context.Context, id uint) (*domain.AppSetting, error)
	FindByKeyFunc     func(ctx context.Context, key string) (*domain.AppSetting, error)
	ListFunc          func(ctx context.Context, filter domain.SettingFilter, page domain.Pagination) ([]domain.AppSetting, int64, error)
	CreateFunc        func(ctx context.Context, setting *domain.AppSetting) error
	UpdateFunc        func(ctx context.Context, setting *domain.AppSetting) error
	DeleteFunc        func(ctx context.Context, id uint) error
}

// NewMockSettingRepository creates a new MockSettingRepository with default behaviors
func NewMockSettingRepository() *MockSettingRepository {
	return &MockSettingRepository{}
}

func (m *MockSettingRepository) FindAllActive(ctx context.Context) ([]domain.AppSetting, error) {
	if m.FindAllActiveFunc != nil {
		return m.FindAllActiveFunc(ctx)
	}
	return nil, nil
}

func (m *MockSettingRepository) FindByID(ctx context.Context, id uint) (*domain.AppSetting, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, domain.ErrSettingNotFound
}

func (m *MockSettingRepository) FindByKey(ctx context.Context, key string) (*domain.AppSetting, error) {
	if m.FindByKeyFunc != nil {
		return m.FindByKeyFunc(ctx, key)
	}
	return nil, domain.ErrSettingNotFound
}

func (m *MockSettingRepository) List(ctx context.Context, filter domain.SettingFilter, page domain.Pagination) ([]domain.AppSetting, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filter, page)
	}
	return nil, 0, nil
}

func (m *MockSettingRepository) Create(ctx context.Context, setting *domain.AppSetting) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, setting)
	}
	return nil
}

func (m *MockSettingRepository) Update(ctx context.Context, setting *domain.AppSetting) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, setting)
	}
	return nil
}

func (m *MockSettingRepository) Delete(ctx context.Context, id uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

// Compile-time interface compliance verification
var _ domain.SettingRepository = (*MockSettingRepository)(nil)
