package services

import (
	"context"
	"fmt"
	"log"

	"github.com/JitendraSingh9587/TalkNTrade-Api/domain"
)

// SettingsServiceImpl implements domain.SettingsService. Every mutation
// that touches an active row refreshes the settings cache, which is how
// secret rotation and policy changes take effect without a restart.
type SettingsServiceImpl struct {
	settingRepo domain.SettingRepository
	cache       domain.SettingsCache
}

// NewSettingsService creates a new settings service
func NewSettingsService(settingRepo domain.SettingRepository, cache domain.SettingsCache) domain.SettingsService {
	return &SettingsServiceImpl{settingRepo: settingRepo, cache: cache}
}

// List implements domain.SettingsService
func (s *SettingsServiceImpl) List(ctx context.Context, filter domain.SettingFilter, page domain.Pagination) ([]domain.AppSetting, domain.PageInfo, error) {
	page = normalizePage(page)
	settings, total, err := s.settingRepo.List(ctx, filter, page)
	if err != nil {
		return nil, domain.PageInfo{}, err
	}
	return settings, pageInfo(total, page), nil
}

// GetByID implements domain.SettingsService
func (s *SettingsServiceImpl) GetByID(ctx context.Context, id uint) (*domain.AppSetting, error) {
	return s.settingRepo.FindByID(ctx, id)
}

// GetByKey implements domain.SettingsService
func (s *SettingsServiceImpl) GetByKey(ctx context.Context, key string) (*domain.AppSetting, error) {
	return s.settingRepo.FindByKey(ctx, key)
}

// Create implements domain.SettingsService
func (s *SettingsServiceImpl) Create(ctx context.Context, setting *domain.AppSetting) (*domain.AppSetting, error) {
	if existing, err := s.settingRepo.FindByKey(ctx, setting.Key); err == nil && existing != nil {
		return nil, domain.ErrSettingKeyExists
	}

	if err := s.settingRepo.Create(ctx, setting); err != nil {
		return nil, fmt.Errorf("failed to create setting: %w", err)
	}

	if setting.IsActive {
		s.refreshCache(ctx)
	}
	return setting, nil
}

// Update implements domain.SettingsService
func (s *SettingsServiceImpl) Update(ctx context.Context, id uint, changes domain.SettingUpdate) (*domain.AppSetting, error) {
	setting, err := s.settingRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	wasActive := setting.IsActive
	if changes.Value != nil {
		setting.Value = *changes.Value
	}
	if changes.Description != nil {
		setting.Description = *changes.Description
	}
	if changes.IsActive != nil {
		setting.IsActive = *changes.IsActive
	}

	if err := s.settingRepo.Update(ctx, setting); err != nil {
		return nil, fmt.Errorf("failed to update setting: %w", err)
	}

	// A row that is or was active changes the snapshot contents.
	if setting.IsActive || wasActive {
		s.refreshCache(ctx)
	}
	return setting, nil
}

// Delete implements domain.SettingsService
func (s *SettingsServiceImpl) Delete(ctx context.Context, id uint) error {
	setting, err := s.settingRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.settingRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete setting: %w", err)
	}

	if setting.IsActive {
		s.refreshCache(ctx)
	}
	return nil
}

func (s *SettingsServiceImpl) refreshCache(ctx context.Context) {
	if err := s.cache.Refresh(ctx); err != nil {
		log.Printf("SETTINGS_CACHE_REFRESH_FAILED: error=%v", err)
	}
}
