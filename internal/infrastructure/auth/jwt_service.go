package auth

import (
	"crypto/sha256"
	"encoding/hex"
	"os"
	"time"

	"github.com/JitendraSingh9587/TalkNTrade-Api/domain"
	"github.com/golang-jwt/jwt/v5"
)

// Configuration keys and defaults for token signing. The hardcoded
// defaults are a last resort for non-production environments.
const (
	SettingJWTSecret        = "JWT_SECRET"
	SettingJWTRefreshSecret = "JWT_REFRESH_SECRET"

	DefaultAccessTTL  = "1h"
	DefaultRefreshTTL = "7d"

	fallbackAccessSecret  = "your-secret-key-change-in-production"
	fallbackRefreshSecret = "your-refresh-secret-key-change-in-production"
)

// JWTServiceImpl implements domain.TokenService. Signing secrets are
// resolved on every call through the settings cache, so a cache refresh
// rotates them without a restart.
type JWTServiceImpl struct {
	settings domain.SettingsCache
	issuer   string
}

// NewJWTService creates a new JWT service
func NewJWTService(settings domain.SettingsCache, issuer string) domain.TokenService {
	return &JWTServiceImpl{settings: settings, issuer: issuer}
}

// resolveSecret returns the first non-empty value among the ordered
// sources. Keeping the chain explicit keeps the fallback order testable.
func resolveSecret(sources ...func() string) string {
	for _, source := range sources {
		if v := source(); v != "" {
			return v
		}
	}
	return ""
}

func (j *JWTServiceImpl) cached(key string) func() string {
	return func() string { return j.settings.Get(key, "") }
}

func fromEnv(key string) func() string {
	return func() string { return os.Getenv(key) }
}

func literal(v string) func() string {
	return func() string { return v }
}

func (j *JWTServiceImpl) accessSecret() []byte {
	return []byte(resolveSecret(
		j.cached(SettingJWTSecret),
		fromEnv(SettingJWTSecret),
		literal(fallbackAccessSecret),
	))
}

// refreshSecret falls back to the access secret before the hardcoded
// refresh default.
func (j *JWTServiceImpl) refreshSecret() []byte {
	return []byte(resolveSecret(
		j.cached(SettingJWTRefreshSecret),
		fromEnv(SettingJWTRefreshSecret),
		j.cached(SettingJWTSecret),
		fromEnv(SettingJWTSecret),
		literal(fallbackRefreshSecret),
	))
}

// IssueAccessToken implements domain.TokenService
func (j *JWTServiceImpl) IssueAccessToken(payload domain.TokenPayload, ttlSpec string) (string, time.Time, error) {
	if ttlSpec == "" {
		ttlSpec = DefaultAccessTTL
	}
	return j.sign(payload, ttlSpec, j.accessSecret())
}

// IssueRefreshToken implements domain.TokenService
func (j *JWTServiceImpl) IssueRefreshToken(payload domain.TokenPayload, ttlSpec string) (string, time.Time, error) {
	if ttlSpec == "" {
		ttlSpec = DefaultRefreshTTL
	}
	return j.sign(payload, ttlSpec, j.refreshSecret())
}

func (j *JWTServiceImpl) sign(payload domain.TokenPayload, ttlSpec string, secret []byte) (string, time.Time, error) {
	now := time.Now()
	expiresAt := now.Add(ExpiryDuration(ttlSpec))

	claims := jwt.MapClaims{
		"id":    payload.UserID,
		"email": payload.Email,
		"role":  string(payload.Role),
		"iss":   j.issuer,
		"iat":   now.Unix(),
		"exp":   expiresAt.Unix(),
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
	if err != nil {
		return "", time.Time{}, err
	}
	return token, expiresAt, nil
}

// VerifyAccessToken implements domain.TokenService
func (j *JWTServiceImpl) VerifyAccessToken(token string) (*domain.TokenPayload, error) {
	return j.verify(token, j.accessSecret())
}

// VerifyRefreshToken implements domain.TokenService
func (j *JWTServiceImpl) VerifyRefreshToken(token string) (*domain.TokenPayload, error) {
	return j.verify(token, j.refreshSecret())
}

// verify collapses every failure mode into domain.ErrTokenInvalid so the
// caller cannot tell a malformed token from an expired one.
func (j *JWTServiceImpl) verify(tokenString string, secret []byte) (*domain.TokenPayload, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, domain.ErrTokenInvalid
		}
		return secret, nil
	})
	if err != nil || !token.Valid {
		return nil, domain.ErrTokenInvalid
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, domain.ErrTokenInvalid
	}

	id, ok := claims["id"].(float64)
	if !ok {
		return nil, domain.ErrTokenInvalid
	}
	email, ok := claims["email"].(string)
	if !ok {
		return nil, domain.ErrTokenInvalid
	}
	role, ok := claims["role"].(string)
	if !ok {
		return nil, domain.ErrTokenInvalid
	}
	exp, ok := claims["exp"].(float64)
	if !ok || time.Unix(int64(exp), 0).Before(time.Now()) {
		return nil, domain.ErrTokenInvalid
	}

	return &domain.TokenPayload{
		UserID: uint(id),
		Email:  email,
		Role:   domain.Role(role),
	}, nil
}

// Digest implements domain.TokenService
func (j *JWTServiceImpl) Digest(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}
