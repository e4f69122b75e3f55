package repositories

import (
	"context"
	"time"

	"github.com/JitendraSingh9587/TalkNTrade-Api/domain"
	"gorm.io/gorm"
)

// UserRepositoryImpl implements domain.UserRepository using GORM
type UserRepositoryImpl struct {
	db *gorm.DB
}

// DBUser represents the database model for User (with GORM tags)
type DBUser struct {
	ID           uint   `gorm:"primaryKey"`
	Name         string `gorm:"size:100"`
	Email        string `gorm:"uniqueIndex;size:255"`
	Mobile       string `gorm:"uniqueIndex;size:20"`
	PasswordHash string `gorm:"column:password"`
	Role         string `gorm:"index;size:32"`
	IsDisabled   bool   `gorm:"index"`
	DisabledAt   *time.Time
	DisabledBy   *uint
	LastLoginAt  *time.Time
	CreatedAt    time.Time `gorm:"index"`
	UpdatedAt    time.Time
}

// TableName returns the table name for GORM
func (DBUser) TableName() string {
	return "users"
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *gorm.DB) domain.UserRepository {
	return &UserRepositoryImpl{db: db}
}

// Create implements domain.UserRepository
func (r *UserRepositoryImpl) Create(ctx context.Context, user *domain.User) error {
	dbUser := userToDB(user)
	if err := r.db.WithContext(ctx).Create(dbUser).Error; err != nil {
		return err
	}
	user.ID = dbUser.ID
	user.CreatedAt = dbUser.CreatedAt
	user.UpdatedAt = dbUser.UpdatedAt
	return nil
}

// FindByID implements domain.UserRepository
func (r *UserRepositoryImpl) FindByID(ctx context.Context, id uint) (*domain.User, error) {
	return r.findOne(ctx, "id = ?", id)
}

// FindByEmail implements domain.UserRepository
func (r *UserRepositoryImpl) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.findOne(ctx, "email = ?", email)
}

// FindByMobile implements domain.UserRepository
func (r *UserRepositoryImpl) FindByMobile(ctx context.Context, mobile string) (*domain.User, error) {
	return r.findOne(ctx, "mobile = ?", mobile)
}

// FindByIdentifier implements domain.UserRepository. The identifier is
// matched exactly against either the email or the mobile column.
func (r *UserRepositoryImpl) FindByIdentifier(ctx context.Context, identifier string) (*domain.User, error) {
	return r.findOne(ctx, "email = ? OR mobile = ?", identifier, identifier)
}

func (r *UserRepositoryImpl) findOne(ctx context.Context, query string, args ...interface{}) (*domain.User, error) {
	var dbUser DBUser
	err := r.db.WithContext(ctx).Where(query, args...).First(&dbUser).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return userToDomain(&dbUser), nil
}

// List implements domain.UserRepository
func (r *UserRepositoryImpl) List(ctx context.Context, filter domain.UserFilter, page domain.Pagination) ([]domain.User, int64, error) {
	q := r.db.WithContext(ctx).Model(&DBUser{})

	if filter.Role != nil {
		q = q.Where("role = ?", string(*filter.Role))
	}
	if filter.IsDisabled != nil {
		q = q.Where("is_disabled = ?", *filter.IsDisabled)
	}
	if filter.Search != "" {
		like := "%" + filter.Search + "%"
		q = q.Where("name LIKE ? OR email LIKE ? OR mobile LIKE ?", like, like, like)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var dbUsers []DBUser
	err := q.Order("created_at DESC").
		Limit(page.Limit).
		Offset((page.Page - 1) * page.Limit).
		Find(&dbUsers).Error
	if err != nil {
		return nil, 0, err
	}

	users := make([]domain.User, 0, len(dbUsers))
	for i := range dbUsers {
		users = append(users, *userToDomain(&dbUsers[i]))
	}
	return users, total, nil
}

// Update implements domain.UserRepository
func (r *UserRepositoryImpl) Update(ctx context.Context, user *domain.User) error {
	dbUser := userToDB(user)
	return r.db.WithContext(ctx).Save(dbUser).Error
}

// Delete implements domain.UserRepository
func (r *UserRepositoryImpl) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&DBUser{}, id).Error
}

// StampLastLogin implements domain.UserRepository
func (r *UserRepositoryImpl) StampLastLogin(ctx context.Context, id uint, at time.Time) error {
	return r.db.WithContext(ctx).Model(&DBUser{}).Where("id = ?", id).Update("last_login_at", at).Error
}

// CountByRole implements domain.UserRepository
func (r *UserRepositoryImpl) CountByRole(ctx context.Context, role domain.Role) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&DBUser{}).Where("role = ?", string(role)).Count(&count).Error
	return count, err
}

func userToDB(user *domain.User) *DBUser {
	return &DBUser{
		ID:           user.ID,
		Name:         user.Name,
		Email:        user.Email,
		Mobile:       user.Mobile,
		PasswordHash: user.PasswordHash,
		Role:         string(user.Role),
		IsDisabled:   user.IsDisabled,
		DisabledAt:   user.DisabledAt,
		DisabledBy:   user.DisabledBy,
		LastLoginAt:  user.LastLoginAt,
		CreatedAt:    user.CreatedAt,
		UpdatedAt:    user.UpdatedAt,
	}
}

func userToDomain(dbUser *DBUser) *domain.User {
	return &domain.User{
		ID:           dbUser.ID,
		Name:         dbUser.Name,
		Email:        dbUser.Email,
		Mobile:       dbUser.Mobile,
		PasswordHash: dbUser.PasswordHash,
		Role:         domain.Role(dbUser.Role),
		IsDisabled:   dbUser.IsDisabled,
		DisabledAt:   dbUser.DisabledAt,
		DisabledBy:   dbUser.DisabledBy,
		LastLoginAt:  dbUser.LastLoginAt,
		CreatedAt:    dbUser.CreatedAt,
		UpdatedAt:    dbUser.UpdatedAt,
	}
}
