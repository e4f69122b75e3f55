package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/JitendraSingh9587/TalkNTrade-Api/internal/mocks"
)

func healthTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	return db
}

func performHealth(t *testing.T, handlers *HealthHandlers) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.GET("/health", handlers.Health)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
	return w
}

func TestHealthHandlers_Health(t *testing.T) {
	db := healthTestDB(t)
	handlers := NewHealthHandlers(db, mocks.NewMockSettingsCache(nil))

	w := performHealth(t, handlers)
	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}

	var body map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if body["database"] != "up" {
		t.Errorf("expected database up, got %v", body["database"])
	}
	if body["settings_cache"] != true {
		t.Errorf("expected settings_cache true, got %v", body["settings_cache"])
	}
}

func TestHealthHandlers_Health_DatabaseDown(t *testing.T) {
	db := healthTestDB(t)
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to access underlying connection: %v", err)
	}
	if err := sqlDB.Close(); err != nil {
		t.Fatalf("failed to close connection: %v", err)
	}

	handlers := NewHealthHandlers(db, mocks.NewMockSettingsCache(nil))

	w := performHealth(t, handlers)
	if w.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected status 503, got %d", w.Code)
	}

	var body map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if body["database"] != "down" {
		t.Errorf("expected database down, got %v", body["database"])
	}
}
