package mocks

import (
	"context"

	"github.com/JitendraSingh9587/TalkNTrade-Api/domain"
)

// MockSettingsService implements domain.SettingsService for handler tests
type MockSettingsService struct {
	ListFunc     func(ctx context.Context, filter domain.SettingFilter, page domain.Pagination) ([]domain.AppSetting, domain.PageInfo, error)
	GetByIDFunc  func(ctx context.Context, id uint) (*domain.AppSetting, error)
	GetByKeyFunc func(ctx context.Context, key string) (*domain.AppSetting, error)
	CreateFunc   func(ctx context.Context, setting *domain.AppSetting) (*domain.AppSetting, error)
	UpdateFunc   func(ctx context.Context, id uint, changes domain.SettingUpdate) (*domain.AppSetting, error)
	DeleteFunc   func(ctx context.Context, id uint) error
}

// NewMockSettingsService creates a new MockSettingsService with default behaviors
func NewMockSettingsService() *MockSettingsService {
	return &MockSettingsService{}
}

func (m *MockSettingsService) List(ctx context.Context, filter domain.SettingFilter, page domain.Pagination) ([]domain.AppSetting, domain.PageInfo, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filter, page)
	}
	return nil, domain.PageInfo{}, nil
}

func (m *MockSettingsService) GetByID(ctx context.Context, id uint) (*domain.AppSetting, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, domain.ErrSettingNotFound
}

func (m *MockSettingsService) GetByKey(ctx context.Context, key string) (*domain.AppSetting, error) {
	if m.GetByKeyFunc != nil {
		return m.GetByKeyFunc(ctx, key)
	}
	return nil, domain.ErrSettingNotFound
}

func (m *MockSettingsService) Create(ctx context.Context, setting *domain.AppSetting) (*domain.AppSetting, error) {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, setting)
	}
	return setting, nil
}

func (m *MockSettingsService) Update(ctx context.Context, id uint, changes domain.SettingUpdate) (*domain.AppSetting, error) {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, id, changes)
	}
	return nil, domain.ErrSettingNotFound
}

func (m *MockSettingsService) Delete(ctx context.Context, id uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

// Compile-time interface compliance verification
var _ domain.SettingsService = (*MockSettingsService)(nil)
