package domain

import "errors"

// Authentication errors. ErrInvalidCredentials is returned both when the
// identifier matches no user and when the password is wrong, so callers
// cannot enumerate accounts.
var (
	ErrInvalidCredentials = errors.New("invalid email/mobile or password")
	ErrUserDisabled       = errors.New("user account is disabled")
	ErrAuthRequired       = errors.New("authentication required")
	ErrTokenInvalid       = errors.New("invalid or expired token")
	ErrForbidden          = errors.New("access denied, insufficient permissions")
)

// User management errors
var (
	ErrUserNotFound   = errors.New("user not found")
	ErrEmailExists    = errors.New("email already exists")
	ErrMobileExists   = errors.New("mobile number already exists")
	ErrOwnRoleChange  = errors.New("super admin cannot change their own role")
	ErrLastSuperAdmin = errors.New("cannot delete the last super admin")
	ErrSelfDelete     = errors.New("cannot delete your own account")
)

// Settings errors
var (
	ErrSettingNotFound   = errors.New("setting not found")
	ErrSettingKeyExists  = errors.New("setting key already exists")
	ErrSettingsNotLoaded = errors.New("settings cache not loaded")
)
