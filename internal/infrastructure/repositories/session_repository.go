package repositories

import (
	"context"
	"time"

	"github.com/JitendraSingh9587/TalkNTrade-Api/domain"
	"gorm.io/gorm"
)

// SessionRepositoryImpl implements domain.SessionRepository using GORM.
// Expiry is evaluated lazily against refresh_token_expires_at; there is
// no background state transition to an "expired" status.
type SessionRepositoryImpl struct {
	db *gorm.DB
}

// DBUserSession represents the database model for UserSession
type DBUserSession struct {
	ID                    uint   `gorm:"primaryKey"`
	UserID                uint   `gorm:"index"`
	AccessTokenHash       string `gorm:"index;size:64"`
	RefreshTokenHash      string `gorm:"size:64"`
	IsActive              bool   `gorm:"index"`
	RevokedAt             *time.Time
	RevokedBy             *uint
	AccessTokenExpiresAt  time.Time
	RefreshTokenExpiresAt time.Time `gorm:"index"`
	DeviceID              string    `gorm:"size:100"`
	DeviceType            string    `gorm:"size:10"`
	UserAgent             string    `gorm:"size:255"`
	IPAddress             string    `gorm:"size:45"`
	LastUsedAt            *time.Time
	CreatedAt             time.Time
}

// TableName returns the table name for GORM
func (DBUserSession) TableName() string {
	return "user_sessions"
}

// NewSessionRepository creates a new session repository
func NewSessionRepository(db *gorm.DB) domain.SessionRepository {
	return &SessionRepositoryImpl{db: db}
}

// Create implements domain.SessionRepository
func (r *SessionRepositoryImpl) Create(ctx context.Context, session *domain.UserSession) error {
	dbSession := sessionToDB(session)
	if err := r.db.WithContext(ctx).Create(dbSession).Error; err != nil {
		return err
	}
	session.ID = dbSession.ID
	session.CreatedAt = dbSession.CreatedAt
	return nil
}

func (r *SessionRepositoryImpl) activeScope(ctx context.Context, userID uint) *gorm.DB {
	return r.db.WithContext(ctx).
		Model(&DBUserSession{}).
		Where("user_id = ? AND is_active = ? AND refresh_token_expires_at > ?", userID, true, time.Now())
}

// CountActive implements domain.SessionRepository
func (r *SessionRepositoryImpl) CountActive(ctx context.Context, userID uint) (int64, error) {
	var count int64
	err := r.activeScope(ctx, userID).Count(&count).Error
	return count, err
}

// DeleteOldestActive implements domain.SessionRepository. Rows are
// removed outright, not flagged; oldest creation order wins, which is
// unambiguous because ids are monotonic per insert.
func (r *SessionRepositoryImpl) DeleteOldestActive(ctx context.Context, userID uint, n int) error {
	if n <= 0 {
		return nil
	}

	var ids []uint
	err := r.activeScope(ctx, userID).
		Order("created_at ASC, id ASC").
		Limit(n).
		Pluck("id", &ids).Error
	if err != nil {
		return err
	}
	if len(ids) == 0 {
		return nil
	}

	return r.db.WithContext(ctx).Delete(&DBUserSession{}, ids).Error
}

// DeleteByAccessTokenHash implements domain.SessionRepository. Deleting
// a hash with no matching row succeeds, so logout stays idempotent.
func (r *SessionRepositoryImpl) DeleteByAccessTokenHash(ctx context.Context, hash string) error {
	return r.db.WithContext(ctx).Where("access_token_hash = ?", hash).Delete(&DBUserSession{}).Error
}

// DeleteByUserID implements domain.SessionRepository
func (r *SessionRepositoryImpl) DeleteByUserID(ctx context.Context, userID uint) error {
	return r.db.WithContext(ctx).Where("user_id = ?", userID).Delete(&DBUserSession{}).Error
}

// DeleteExpired implements domain.SessionRepository
func (r *SessionRepositoryImpl) DeleteExpired(ctx context.Context) error {
	return r.db.WithContext(ctx).
		Where("refresh_token_expires_at <= ?", time.Now()).
		Delete(&DBUserSession{}).Error
}

func sessionToDB(session *domain.UserSession) *DBUserSession {
	return &DBUserSession{
		ID:                    session.ID,
		UserID:                session.UserID,
		AccessTokenHash:       session.AccessTokenHash,
		RefreshTokenHash:      session.RefreshTokenHash,
		IsActive:              session.IsActive,
		RevokedAt:             session.RevokedAt,
		RevokedBy:             session.RevokedBy,
		AccessTokenExpiresAt:  session.AccessTokenExpiresAt,
		RefreshTokenExpiresAt: session.RefreshTokenExpiresAt,
		DeviceID:              session.DeviceID,
		DeviceType:            session.DeviceType,
		UserAgent:             session.UserAgent,
		IPAddress:             session.IPAddress,
		LastUsedAt:            session.LastUsedAt,
		CreatedAt:             session.CreatedAt,
	}
}
