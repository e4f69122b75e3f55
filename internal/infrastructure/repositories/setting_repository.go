package repositories

import (
	"context"
	"time"

	"github.com/JitendraSingh9587/TalkNTrade-Api/domain"
	"gorm.io/gorm"
)

// SettingRepositoryImpl implements domain.SettingRepository using GORM
type SettingRepositoryImpl struct {
	db *gorm.DB
}

// DBAppSetting represents the database model for AppSetting
type DBAppSetting struct {
	ID          uint   `gorm:"primaryKey"`
	Key         string `gorm:"uniqueIndex;size:100"`
	Value       string `gorm:"type:text"`
	Description string `gorm:"size:255"`
	IsActive    bool   `gorm:"index"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName returns the table name for GORM
func (DBAppSetting) TableName() string {
	return "app_settings"
}

// NewSettingRepository creates a new setting repository
func NewSettingRepository(db *gorm.DB) domain.SettingRepository {
	return &SettingRepositoryImpl{db: db}
}

// FindAllActive implements domain.SettingRepository
func (r *SettingRepositoryImpl) FindAllActive(ctx context.Context) ([]domain.AppSetting, error) {
	var dbSettings []DBAppSetting
	err := r.db.WithContext(ctx).Where("is_active = ?", true).Find(&dbSettings).Error
	if err != nil {
		return nil, err
	}

	settings := make([]domain.AppSetting, 0, len(dbSettings))
	for i := range dbSettings {
		settings = append(settings, *settingToDomain(&dbSettings[i]))
	}
	return settings, nil
}

// FindByID implements domain.SettingRepository
func (r *SettingRepositoryImpl) FindByID(ctx context.Context, id uint) (*domain.AppSetting, error) {
	var dbSetting DBAppSetting
	err := r.db.WithContext(ctx).First(&dbSetting, id).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, domain.ErrSettingNotFound
		}
		return nil, err
	}
	return settingToDomain(&dbSetting), nil
}

// FindByKey implements domain.SettingRepository
func (r *SettingRepositoryImpl) FindByKey(ctx context.Context, key string) (*domain.AppSetting, error) {
	var dbSetting DBAppSetting
	err := r.db.WithContext(ctx).Where("key = ?", key).First(&dbSetting).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, domain.ErrSettingNotFound
		}
		return nil, err
	}
	return settingToDomain(&dbSetting), nil
}

// List implements domain.SettingRepository
func (r *SettingRepositoryImpl) List(ctx context.Context, filter domain.SettingFilter, page domain.Pagination) ([]domain.AppSetting, int64, error) {
	q := r.db.WithContext(ctx).Model(&DBAppSetting{})

	if filter.IsActive != nil {
		q = q.Where("is_active = ?", *filter.IsActive)
	}
	if filter.Search != "" {
		like := "%" + filter.Search + "%"
		q = q.Where("key LIKE ? OR description LIKE ?", like, like)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var dbSettings []DBAppSetting
	err := q.Order("created_at DESC").
		Limit(page.Limit).
		Offset((page.Page - 1) * page.Limit).
		Find(&dbSettings).Error
	if err != nil {
		return nil, 0, err
	}

	settings := make([]domain.AppSetting, 0, len(dbSettings))
	for i := range dbSettings {
		settings = append(settings, *settingToDomain(&dbSettings[i]))
	}
	return settings, total, nil
}

// Create implements domain.SettingRepository
func (r *SettingRepositoryImpl) Create(ctx context.Context, setting *domain.AppSetting) error {
	dbSetting := settingToDB(setting)
	if err := r.db.WithContext(ctx).Create(dbSetting).Error; err != nil {
		return err
	}
	setting.ID = dbSetting.ID
	setting.CreatedAt = dbSetting.CreatedAt
	setting.UpdatedAt = dbSetting.UpdatedAt
	return nil
}

// Update implements domain.SettingRepository
func (r *SettingRepositoryImpl) Update(ctx context.Context, setting *domain.AppSetting) error {
	return r.db.WithContext(ctx).Save(settingToDB(setting)).Error
}

// Delete implements domain.SettingRepository
func (r *SettingRepositoryImpl) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&DBAppSetting{}, id).Error
}

func settingToDB(setting *domain.AppSetting) *DBAppSetting {
	return &DBAppSetting{
		ID:          setting.ID,
		Key:         setting.Key,
		Value:       setting.Value,
		Description: setting.Description,
		IsActive:    setting.IsActive,
		CreatedAt:   setting.CreatedAt,
		UpdatedAt:   setting.UpdatedAt,
	}
}

func settingToDomain(dbSetting *DBAppSetting) *domain.AppSetting {
	return &domain.AppSetting{
		ID:          dbSetting.ID,
		Key:         dbSetting.Key,
		Value:       dbSetting.Value,
		Description: dbSetting.Description,
		IsActive:    dbSetting.IsActive,
		CreatedAt:   dbSetting.CreatedAt,
		UpdatedAt:   dbSetting.UpdatedAt,
	}
}
