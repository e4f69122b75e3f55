package handlers

import (
	"net/http"
	"strings"

	"github.com/JitendraSingh9587/TalkNTrade-Api/domain"
	"github.com/gin-gonic/gin"
)

// SettingsHandlers handles app settings HTTP requests, including the
// settings cache inspection and refresh endpoints.
type SettingsHandlers struct {
	settingsSvc domain.SettingsService
	cache       domain.SettingsCache
	notifySvc   domain.NotificationService
}

// NewSettingsHandlers creates new settings handlers
func NewSettingsHandlers(settingsSvc domain.SettingsService, cache domain.SettingsCache, notifySvc domain.NotificationService) *SettingsHandlers {
	return &SettingsHandlers{
		settingsSvc: settingsSvc,
		cache:       cache,
		notifySvc:   notifySvc,
	}
}

// CreateSettingRequest represents setting creation request
type CreateSettingRequest struct {
	Key         string `json:"key" binding:"required"`
	Value       string `json:"value" binding:"required"`
	Description string `json:"description,omitempty"`
	IsActive    *bool  `json:"is_active,omitempty"`
}

// UpdateSettingRequest represents setting update request
type UpdateSettingRequest struct {
	Value       *string `json:"value,omitempty"`
	Description *string `json:"description,omitempty"`
	IsActive    *bool   `json:"is_active,omitempty"`
}

// TestEmailRequest represents the test email request
type TestEmailRequest struct {
	To string `json:"to" binding:"required,email"`
}

// List handles GET /settings
func (h *SettingsHandlers) List(c *gin.Context) {
	var filter domain.SettingFilter
	if v := c.Query("is_active"); v != "" {
		active := v == "true"
		filter.IsActive = &active
	}
	filter.Search = c.Query("search")

	page := domain.Pagination{
		Page:  queryInt(c, "page", 1),
		Limit: queryInt(c, "limit", 10),
	}

	settings, info, err := h.settingsSvc.List(c.Request.Context(), filter, page)
	if err != nil {
		sendError(c, http.StatusInternalServerError, "Failed to list settings")
		return
	}
	sendSuccess(c, http.StatusOK, "Settings retrieved successfully", gin.H{
		"settings":   settings,
		"pagination": info,
	})
}

// Get handles GET /settings/:id
func (h *SettingsHandlers) Get(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	setting, err := h.settingsSvc.GetByID(c.Request.Context(), id)
	if err != nil {
		if err == domain.ErrSettingNotFound {
			sendError(c, http.StatusNotFound, err.Error())
			return
		}
		sendError(c, http.StatusInternalServerError, "Failed to get setting")
		return
	}
	sendSuccess(c, http.StatusOK, "Setting retrieved successfully", setting)
}

// GetByKey handles GET /settings/key/:key
func (h *SettingsHandlers) GetByKey(c *gin.Context) {
	setting, err := h.settingsSvc.GetByKey(c.Request.Context(), c.Param("key"))
	if err != nil {
		if err == domain.ErrSettingNotFound {
			sendError(c, http.StatusNotFound, err.Error())
			return
		}
		sendError(c, http.StatusInternalServerError, "Failed to get setting")
		return
	}
	sendSuccess(c, http.StatusOK, "Setting retrieved successfully", setting)
}

// Create handles POST /settings
func (h *SettingsHandlers) Create(c *gin.Context) {
	var req CreateSettingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, http.StatusBadRequest, err.Error())
		return
	}

	active := true
	if req.IsActive != nil {
		active = *req.IsActive
	}

	setting, err := h.settingsSvc.Create(c.Request.Context(), &domain.AppSetting{
		Key:         req.Key,
		Value:       req.Value,
		Description: req.Description,
		IsActive:    active,
	})
	if err != nil {
		if err == domain.ErrSettingKeyExists {
			sendError(c, http.StatusConflict, err.Error())
			return
		}
		sendError(c, http.StatusInternalServerError, "Failed to create setting")
		return
	}
	sendSuccess(c, http.StatusCreated, "Setting created successfully", setting)
}

// Update handles PUT /settings/:id
func (h *SettingsHandlers) Update(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	var req UpdateSettingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, http.StatusBadRequest, err.Error())
		return
	}

	setting, err := h.settingsSvc.Update(c.Request.Context(), id, domain.SettingUpdate{
		Value:       req.Value,
		Description: req.Description,
		IsActive:    req.IsActive,
	})
	if err != nil {
		if err == domain.ErrSettingNotFound {
			sendError(c, http.StatusNotFound, err.Error())
			return
		}
		sendError(c, http.StatusInternalServerError, "Failed to update setting")
		return
	}
	sendSuccess(c, http.StatusOK, "Setting updated successfully", setting)
}

// Delete handles DELETE /settings/:id
func (h *SettingsHandlers) Delete(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	if err := h.settingsSvc.Delete(c.Request.Context(), id); err != nil {
		if err == domain.ErrSettingNotFound {
			sendError(c, http.StatusNotFound, err.Error())
			return
		}
		sendError(c, http.StatusInternalServerError, "Failed to delete setting")
		return
	}
	sendSuccess(c, http.StatusOK, "Setting deleted successfully", nil)
}

// GetCache handles GET /settings/cache
func (h *SettingsHandlers) GetCache(c *gin.Context) {
	sendSuccess(c, http.StatusOK, "Settings cache retrieved successfully", gin.H{
		"is_loaded": h.cache.IsLoaded(),
		"settings":  maskSecrets(h.cache.GetAll()),
	})
}

// RefreshCache handles POST /settings/cache/refresh
func (h *SettingsHandlers) RefreshCache(c *gin.Context) {
	if err := h.cache.Refresh(c.Request.Context()); err != nil {
		sendError(c, http.StatusInternalServerError, "Failed to refresh settings cache")
		return
	}
	sendSuccess(c, http.StatusOK, "Settings cache refreshed successfully", gin.H{
		"settings": maskSecrets(h.cache.GetAll()),
	})
}

// TestEmail handles POST /settings/test-email
func (h *SettingsHandlers) TestEmail(c *gin.Context) {
	var req TestEmailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.notifySvc.VerifyConnection(); err != nil {
		sendError(c, http.StatusBadGateway, "SMTP connection failed")
		return
	}
	if err := h.notifySvc.SendEmail(req.To, "Test email", "<p>This is a test email from the admin API.</p>"); err != nil {
		sendError(c, http.StatusBadGateway, "Failed to send test email")
		return
	}
	sendSuccess(c, http.StatusOK, "Test email sent successfully", nil)
}

// maskSecrets hides values of secret-bearing keys in cache payloads.
func maskSecrets(settings map[string]string) map[string]string {
	out := make(map[string]string, len(settings))
	for k, v := range settings {
		if strings.Contains(k, "SECRET") || strings.Contains(k, "PASSWORD") {
			out[k] = "********"
			continue
		}
		out[k] = v
	}
	return out
}
