package domain

import "time"

// Role is the access level assigned to a user.
type Role string

const (
	RoleSuperAdmin Role = "SUPER_ADMIN"
	RoleAdmin      Role = "ADMIN"
	RoleSupervisor Role = "SUPERVISOR"
	RoleUser       Role = "USER"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleSuperAdmin, RoleAdmin, RoleSupervisor, RoleUser:
		return true
	}
	return false
}

// Device types recorded on a session.
const (
	DeviceWeb    = "WEB"
	DeviceMobile = "MOBILE"
	DeviceTablet = "TABLET"
)

// User represents an identity record in the system
type User struct {
	ID           uint
	Name         string
	Email        string
	Mobile       string
	PasswordHash string
	Role         Role
	IsDisabled   bool
	DisabledAt   *time.Time
	DisabledBy   *uint
	LastLoginAt  *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// UserSession is one row per successful login. Raw tokens are never
// stored, only their SHA-256 hex digests.
type UserSession struct {
	ID                    uint
	UserID                uint
	AccessTokenHash       string
	RefreshTokenHash      string
	IsActive              bool
	RevokedAt             *time.Time
	RevokedBy             *uint
	AccessTokenExpiresAt  time.Time
	RefreshTokenExpiresAt time.Time
	DeviceID              string
	DeviceType            string
	UserAgent             string
	IPAddress             string
	LastUsedAt            *time.Time
	CreatedAt             time.Time
}

// AppSetting is a runtime configuration row. Active rows are served
// through the settings cache.
type AppSetting struct {
	ID          uint
	Key         string
	Value       string
	Description string
	IsActive    bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TokenPayload is the claim set signed into access and refresh tokens.
// It is transient and never persisted.
type TokenPayload struct {
	UserID uint   `json:"id"`
	Email  string `json:"email"`
	Role   Role   `json:"role"`
}

// TokenBundle carries the raw tokens handed to the caller exactly once
// at login, together with their expiry instants.
type TokenBundle struct {
	AccessToken           string    `json:"accessToken"`
	RefreshToken          string    `json:"refreshToken"`
	AccessTokenExpiresAt  time.Time `json:"accessTokenExpiresAt"`
	RefreshTokenExpiresAt time.Time `json:"refreshTokenExpiresAt"`
}

// AuthResult represents a successful login outcome
type AuthResult struct {
	User   *User
	Tokens TokenBundle
}

// DeviceInfo is the client metadata captured at login.
type DeviceInfo struct {
	DeviceID   string
	DeviceType string
	UserAgent  string
	IPAddress  string
}

// AuthIdentity is what the auth middleware attaches to the request
// context after a token passes verification.
type AuthIdentity struct {
	UserID uint
	Email  string
	Role   Role
	Name   string
	Token  string
}
