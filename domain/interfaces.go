package domain

import (
	"context"
	"time"
)

// UserFilter narrows user listings.
type UserFilter struct {
	Role       *Role
	IsDisabled *bool
	Search     string
}

// Pagination is a page/limit pair with sane defaults applied by callers.
type Pagination struct {
	Page  int
	Limit int
}

// PageInfo describes a paginated result set.
type PageInfo struct {
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	TotalPages int   `json:"totalPages"`
}

// UserRepository defines user data access operations
type UserRepository interface {
	Create(ctx context.Context, user *User) error
	FindByID(ctx context.Context, id uint) (*User, error)
	FindByEmail(ctx context.Context, email string) (*User, error)
	FindByMobile(ctx context.Context, mobile string) (*User, error)
	// FindByIdentifier resolves a user by exact match on email OR mobile.
	FindByIdentifier(ctx context.Context, identifier string) (*User, error)
	List(ctx context.Context, filter UserFilter, page Pagination) ([]User, int64, error)
	Update(ctx context.Context, user *User) error
	Delete(ctx context.Context, id uint) error
	StampLastLogin(ctx context.Context, id uint, at time.Time) error
	CountByRole(ctx context.Context, role Role) (int64, error)
}

// SessionRepository defines session data access operations
type SessionRepository interface {
	Create(ctx context.Context, session *UserSession) error
	// CountActive counts sessions that are active and whose refresh token
	// has not yet expired.
	CountActive(ctx context.Context, userID uint) (int64, error)
	// DeleteOldestActive removes the n oldest active, non-expired sessions
	// for the user, oldest created first.
	DeleteOldestActive(ctx context.Context, userID uint, n int) error
	// DeleteByAccessTokenHash is a no-op when no row matches.
	DeleteByAccessTokenHash(ctx context.Context, hash string) error
	DeleteByUserID(ctx context.Context, userID uint) error
	DeleteExpired(ctx context.Context) error
}

// SettingFilter narrows setting listings.
type SettingFilter struct {
	IsActive *bool
	Search   string
}

// SettingRepository defines app setting data access operations
type SettingRepository interface {
	FindAllActive(ctx context.Context) ([]AppSetting, error)
	FindByID(ctx context.Context, id uint) (*AppSetting, error)
	FindByKey(ctx context.Context, key string) (*AppSetting, error)
	List(ctx context.Context, filter SettingFilter, page Pagination) ([]AppSetting, int64, error)
	Create(ctx context.Context, setting *AppSetting) error
	Update(ctx context.Context, setting *AppSetting) error
	Delete(ctx context.Context, id uint) error
}

// PasswordService defines password hashing operations
type PasswordService interface {
	Hash(password string) (string, error)
	Verify(hashedPassword, password string) bool
}

// TokenService defines token minting and validation operations. Issue
// methods accept a duration expression such as "1h" or "7d" and return
// the signed token and its expiry instant.
type TokenService interface {
	IssueAccessToken(payload TokenPayload, ttlSpec string) (string, time.Time, error)
	IssueRefreshToken(payload TokenPayload, ttlSpec string) (string, time.Time, error)
	VerifyAccessToken(token string) (*TokenPayload, error)
	VerifyRefreshToken(token string) (*TokenPayload, error)
	// Digest returns the SHA-256 hex digest of a raw token.
	Digest(token string) string
}

// SettingsCache is the in-memory snapshot of active configuration rows.
type SettingsCache interface {
	Load(ctx context.Context) error
	Get(key, defaultValue string) string
	GetAll() map[string]string
	Refresh(ctx context.Context) error
	IsLoaded() bool
}

// LoginLock serializes the session admit sequence for one user. Acquire
// returns a release func and whether the lock was obtained; callers
// proceed without the lock when it is unavailable.
type LoginLock interface {
	Acquire(ctx context.Context, userID uint) (release func(), ok bool)
}

// NotificationService defines outbound email delivery
type NotificationService interface {
	SendEmail(to, subject, body string) error
	VerifyConnection() error
}

// AuthService defines authentication business logic
type AuthService interface {
	Login(ctx context.Context, identifier, password string, device DeviceInfo) (*AuthResult, error)
	// Logout is idempotent: a token matching no session is not an error.
	Logout(ctx context.Context, accessToken string) error
	GetUserProfile(ctx context.Context, userID uint) (*User, error)
}

// UserService defines user management business logic
type UserService interface {
	List(ctx context.Context, filter UserFilter, page Pagination) ([]User, PageInfo, error)
	GetByID(ctx context.Context, id uint) (*User, error)
	Create(ctx context.Context, user *User, plainPassword string) (*User, error)
	Update(ctx context.Context, id uint, changes UserUpdate, actorID uint) (*User, error)
	SetDisabled(ctx context.Context, id uint, disabled bool, actorID uint) (*User, error)
	Delete(ctx context.Context, id uint, actorID uint) error
}

// UserUpdate carries the mutable user fields; nil means unchanged.
type UserUpdate struct {
	Name     *string
	Email    *string
	Mobile   *string
	Password *string
	Role     *Role
}

// SettingsService defines app settings business logic
type SettingsService interface {
	List(ctx context.Context, filter SettingFilter, page Pagination) ([]AppSetting, PageInfo, error)
	GetByID(ctx context.Context, id uint) (*AppSetting, error)
	GetByKey(ctx context.Context, key string) (*AppSetting, error)
	Create(ctx context.Context, setting *AppSetting) (*AppSetting, error)
	Update(ctx context.Context, id uint, changes SettingUpdate) (*AppSetting, error)
	Delete(ctx context.Context, id uint) error
}

// SettingUpdate carries the mutable setting fields; nil means unchanged.
type SettingUpdate struct {
	Value       *string
	Description *string
	IsActive    *bool
}
