package services

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/JitendraSingh9587/TalkNTrade-Api/domain"
)

// Settings keys and defaults for login policy. All of them are
// hot-reloadable through the settings cache.
const (
	SettingMaxLoginSessions   = "MAX_LOGIN_SESSIONS"
	SettingAccessTokenExpiry  = "ACCESS_TOKEN_EXPIRY"
	SettingRefreshTokenExpiry = "REFRESH_TOKEN_EXPIRY"

	DefaultMaxLoginSessions = 2
	DefaultAccessExpiry     = "1h"
	DefaultRefreshExpiry    = "7d"
)

// AuthServiceImpl implements domain.AuthService
type AuthServiceImpl struct {
	userRepo    domain.UserRepository
	sessionRepo domain.SessionRepository
	passwordSvc domain.PasswordService
	tokenSvc    domain.TokenService
	settings    domain.SettingsCache
	loginLock   domain.LoginLock
}

// NewAuthService creates a new auth service
func NewAuthService(
	userRepo domain.UserRepository,
	sessionRepo domain.SessionRepository,
	passwordSvc domain.PasswordService,
	tokenSvc domain.TokenService,
	settings domain.SettingsCache,
	loginLock domain.LoginLock,
) domain.AuthService {
	return &AuthServiceImpl{
		userRepo:    userRepo,
		sessionRepo: sessionRepo,
		passwordSvc: passwordSvc,
		tokenSvc:    tokenSvc,
		settings:    settings,
		loginLock:   loginLock,
	}
}

// Login implements domain.AuthService. Unknown identifier and wrong
// password return the same error so responses carry no enumeration
// signal.
func (s *AuthServiceImpl) Login(ctx context.Context, identifier, password string, device domain.DeviceInfo) (*domain.AuthResult, error) {
	user, err := s.userRepo.FindByIdentifier(ctx, identifier)
	if err != nil {
		return nil, domain.ErrInvalidCredentials
	}

	if user.IsDisabled {
		return nil, domain.ErrUserDisabled
	}

	if !s.passwordSvc.Verify(user.PasswordHash, password) {
		return nil, domain.ErrInvalidCredentials
	}

	payload := domain.TokenPayload{
		UserID: user.ID,
		Email:  user.Email,
		Role:   user.Role,
	}

	accessTTL := s.settings.Get(SettingAccessTokenExpiry, DefaultAccessExpiry)
	refreshTTL := s.settings.Get(SettingRefreshTokenExpiry, DefaultRefreshExpiry)

	accessToken, accessExpiresAt, err := s.tokenSvc.IssueAccessToken(payload, accessTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to issue access token: %w", err)
	}
	refreshToken, refreshExpiresAt, err := s.tokenSvc.IssueRefreshToken(payload, refreshTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to issue refresh token: %w", err)
	}

	session := &domain.UserSession{
		UserID:                user.ID,
		AccessTokenHash:       s.tokenSvc.Digest(accessToken),
		RefreshTokenHash:      s.tokenSvc.Digest(refreshToken),
		IsActive:              true,
		AccessTokenExpiresAt:  accessExpiresAt,
		RefreshTokenExpiresAt: refreshExpiresAt,
		DeviceID:              device.DeviceID,
		DeviceType:            device.DeviceType,
		UserAgent:             device.UserAgent,
		IPAddress:             device.IPAddress,
	}

	if err := s.admitSession(ctx, session); err != nil {
		return nil, err
	}

	now := time.Now()
	if err := s.userRepo.StampLastLogin(ctx, user.ID, now); err != nil {
		return nil, fmt.Errorf("failed to stamp last login: %w", err)
	}
	user.LastLoginAt = &now

	log.Printf("LOGIN_SUCCESS: user_id=%d ip=%s device_type=%s", user.ID, device.IPAddress, device.DeviceType)

	// Raw tokens leave the system exactly once, here.
	result := *user
	result.PasswordHash = ""

	return &domain.AuthResult{
		User: &result,
		Tokens: domain.TokenBundle{
			AccessToken:           accessToken,
			RefreshToken:          refreshToken,
			AccessTokenExpiresAt:  accessExpiresAt,
			RefreshTokenExpiresAt: refreshExpiresAt,
		},
	}, nil
}

// admitSession enforces the per-user session cap and inserts the new
// row. A per-user lock serializes concurrent logins when available;
// without it the cap can briefly overshoot by one, which is acceptable
// for a soft control.
func (s *AuthServiceImpl) admitSession(ctx context.Context, session *domain.UserSession) error {
	release, locked := s.loginLock.Acquire(ctx, session.UserID)
	defer release()
	if !locked {
		log.Printf("LOGIN_LOCK_UNAVAILABLE: user_id=%d", session.UserID)
	}

	maxSessions := s.maxSessions()
	count, err := s.sessionRepo.CountActive(ctx, session.UserID)
	if err != nil {
		return fmt.Errorf("failed to count sessions: %w", err)
	}

	if count >= int64(maxSessions) {
		// Exactly enough evictions to make room for the new session.
		evict := int(count) - maxSessions + 1
		if err := s.sessionRepo.DeleteOldestActive(ctx, session.UserID, evict); err != nil {
			return fmt.Errorf("failed to evict sessions: %w", err)
		}
		log.Printf("SESSIONS_EVICTED: user_id=%d count=%d max=%d", session.UserID, evict, maxSessions)
	}

	if err := s.sessionRepo.Create(ctx, session); err != nil {
		return fmt.Errorf("failed to create session: %w", err)
	}
	return nil
}

func (s *AuthServiceImpl) maxSessions() int {
	raw := s.settings.Get(SettingMaxLoginSessions, "")
	var n int
	if _, err := fmt.Sscanf(raw, "%d", &n); err != nil || n < 1 {
		return DefaultMaxLoginSessions
	}
	return n
}

// Logout implements domain.AuthService. A token that matches no session
// is not an error; logout must always succeed from the caller's side.
func (s *AuthServiceImpl) Logout(ctx context.Context, accessToken string) error {
	if accessToken == "" {
		return nil
	}
	return s.sessionRepo.DeleteByAccessTokenHash(ctx, s.tokenSvc.Digest(accessToken))
}

// GetUserProfile implements domain.AuthService
func (s *AuthServiceImpl) GetUserProfile(ctx context.Context, userID uint) (*domain.User, error) {
	return s.userRepo.FindByID(ctx, userID)
}
