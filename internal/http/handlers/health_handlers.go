package handlers

import (
	"net/http"

	"github.com/JitendraSingh9587/TalkNTrade-Api/domain"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// HealthHandlers reports process liveness and dependency status.
type HealthHandlers struct {
	db    *gorm.DB
	cache domain.SettingsCache
}

// NewHealthHandlers creates new health handlers
func NewHealthHandlers(db *gorm.DB, cache domain.SettingsCache) *HealthHandlers {
	return &HealthHandlers{db: db, cache: cache}
}

// Health handles GET /health
func (h *HealthHandlers) Health(c *gin.Context) {
	dbStatus := "up"
	if sqlDB, err := h.db.DB(); err != nil || sqlDB.PingContext(c.Request.Context()) != nil {
		dbStatus = "down"
	}

	status := http.StatusOK
	if dbStatus == "down" {
		status = http.StatusServiceUnavailable
	}

	c.JSON(status, gin.H{
		"status":         dbStatus,
		"database":       dbStatus,
		"settings_cache": h.cache.IsLoaded(),
	})
}
