package handlers

import (
	"log"
	"net/http"

	"github.com/JitendraSingh9587/TalkNTrade-Api/domain"
	"github.com/JitendraSingh9587/TalkNTrade-Api/internal/http/middleware"
	"github.com/JitendraSingh9587/TalkNTrade-Api/internal/infrastructure/auth"
	"github.com/JitendraSingh9587/TalkNTrade-Api/internal/services"
	"github.com/gin-gonic/gin"
)

const cookieRefreshToken = "refreshToken"

// AuthHandlers handles authentication HTTP requests
type AuthHandlers struct {
	authSvc    domain.AuthService
	settings   domain.SettingsCache
	production bool
}

// NewAuthHandlers creates new auth handlers
func NewAuthHandlers(authSvc domain.AuthService, settings domain.SettingsCache, production bool) *AuthHandlers {
	return &AuthHandlers{
		authSvc:    authSvc,
		settings:   settings,
		production: production,
	}
}

// LoginRequest represents login request
type LoginRequest struct {
	Identifier string `json:"identifier" binding:"required"`
	Password   string `json:"password" binding:"required"`
	DeviceID   string `json:"device_id,omitempty"`
	DeviceType string `json:"device_type,omitempty"`
}

// Login handles POST /auth/login
func (h *AuthHandlers) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, http.StatusBadRequest, err.Error())
		return
	}

	device := domain.DeviceInfo{
		DeviceID:   req.DeviceID,
		DeviceType: normalizeDeviceType(req.DeviceType),
		UserAgent:  c.GetHeader("User-Agent"),
		IPAddress:  c.ClientIP(),
	}

	result, err := h.authSvc.Login(c.Request.Context(), req.Identifier, req.Password, device)
	if err != nil {
		switch err {
		case domain.ErrInvalidCredentials:
			sendError(c, http.StatusUnauthorized, err.Error())
		case domain.ErrUserDisabled:
			sendError(c, http.StatusForbidden, err.Error())
		default:
			sendError(c, http.StatusInternalServerError, "Login failed")
		}
		return
	}

	h.setAuthCookies(c, result.Tokens)

	sendSuccess(c, http.StatusOK, "Login successful", gin.H{
		"user":   userPayload(result.User),
		"tokens": result.Tokens,
	})
}

// Logout handles POST /auth/logout. The response is 200 and the cookies
// are cleared no matter what; a failed session delete is only logged.
func (h *AuthHandlers) Logout(c *gin.Context) {
	token := middleware.ExtractToken(c)

	if err := h.authSvc.Logout(c.Request.Context(), token); err != nil {
		log.Printf("LOGOUT_CLEANUP_FAILED: error=%v", err)
	}

	h.clearAuthCookies(c)
	sendSuccess(c, http.StatusOK, "Logout successful", nil)
}

// Me handles GET /auth/me
func (h *AuthHandlers) Me(c *gin.Context) {
	identity, ok := middleware.IdentityFrom(c)
	if !ok {
		sendError(c, http.StatusUnauthorized, domain.ErrAuthRequired.Error())
		return
	}

	user, err := h.authSvc.GetUserProfile(c.Request.Context(), identity.UserID)
	if err != nil {
		if err == domain.ErrUserNotFound {
			sendError(c, http.StatusNotFound, err.Error())
			return
		}
		sendError(c, http.StatusInternalServerError, "Failed to get profile")
		return
	}

	sendSuccess(c, http.StatusOK, "Profile retrieved successfully", userPayload(user))
}

// setAuthCookies mirrors the token bundle into HttpOnly cookies with
// max-age derived from the configured TTL policy.
func (h *AuthHandlers) setAuthCookies(c *gin.Context, tokens domain.TokenBundle) {
	accessMaxAge := auth.ParseExpirySeconds(
		h.settings.Get(services.SettingAccessTokenExpiry, services.DefaultAccessExpiry))
	refreshMaxAge := auth.ParseExpirySeconds(
		h.settings.Get(services.SettingRefreshTokenExpiry, services.DefaultRefreshExpiry))

	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(middleware.CookieAccessToken, tokens.AccessToken, accessMaxAge, "/", "", h.production, true)
	c.SetCookie(cookieRefreshToken, tokens.RefreshToken, refreshMaxAge, "/", "", h.production, true)
}

func (h *AuthHandlers) clearAuthCookies(c *gin.Context) {
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(middleware.CookieAccessToken, "", -1, "/", "", h.production, true)
	c.SetCookie(cookieRefreshToken, "", -1, "/", "", h.production, true)
}

func normalizeDeviceType(deviceType string) string {
	switch deviceType {
	case domain.DeviceWeb, domain.DeviceMobile, domain.DeviceTablet:
		return deviceType
	}
	return ""
}
