package e2e

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/JitendraSingh9587/TalkNTrade-Api/domain"
	httpx "github.com/JitendraSingh9587/TalkNTrade-Api/internal/http"
	"github.com/JitendraSingh9587/TalkNTrade-Api/internal/http/handlers"
	"github.com/JitendraSingh9587/TalkNTrade-Api/internal/http/middleware"
	"github.com/JitendraSingh9587/TalkNTrade-Api/internal/infrastructure/auth"
	"github.com/JitendraSingh9587/TalkNTrade-Api/internal/infrastructure/database"
	"github.com/JitendraSingh9587/TalkNTrade-Api/internal/infrastructure/notifications"
	"github.com/JitendraSingh9587/TalkNTrade-Api/internal/infrastructure/repositories"
	"github.com/JitendraSingh9587/TalkNTrade-Api/internal/services"
)

// TestServer runs the full HTTP stack against in-memory backends: the
// real router, middleware, services and repositories over SQLite, with
// the login lock on miniredis.
type TestServer struct {
	Server      *httptest.Server
	DB          *gorm.DB
	UserRepo    domain.UserRepository
	SessionRepo domain.SessionRepository
	SettingRepo domain.SettingRepository
	Settings    domain.SettingsCache
	PasswordSvc domain.PasswordService
	TokenSvc    domain.TokenService

	client *http.Client
}

// NewTestServer wires the complete application for one test. Settings
// rows passed in are seeded before the cache loads.
func NewTestServer(t *testing.T, settings map[string]string) *TestServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err, "test database should open")
	sqlDB, err := db.DB()
	require.NoError(t, err, "underlying connection should be reachable")
	// A single connection keeps all queries on the same in-memory database.
	sqlDB.SetMaxOpenConns(1)

	err = db.AutoMigrate(
		&repositories.DBUser{},
		&repositories.DBUserSession{},
		&repositories.DBAppSetting{},
	)
	require.NoError(t, err, "test schema should migrate")

	userRepo := repositories.NewUserRepository(db)
	sessionRepo := repositories.NewSessionRepository(db)
	settingRepo := repositories.NewSettingRepository(db)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	t.Cleanup(cancel)

	for key, value := range settings {
		row := &domain.AppSetting{Key: key, Value: value, IsActive: true}
		require.NoError(t, settingRepo.Create(ctx, row), "setting %s should seed", key)
	}

	cache := services.NewSettingsCache(settingRepo)
	require.NoError(t, cache.Load(ctx), "settings cache should load")

	mr, err := miniredis.Run()
	require.NoError(t, err, "miniredis should start")
	t.Cleanup(mr.Close)

	passwordSvc := auth.NewPasswordService()
	tokenSvc := auth.NewJWTService(cache, "talkntrade-api")
	loginLock := auth.NewRedisLoginLock(database.NewRedis(mr.Addr(), "", 0))
	notifySvc := notifications.NewMailService(cache)

	authSvc := services.NewAuthService(userRepo, sessionRepo, passwordSvc, tokenSvc, cache, loginLock)
	userSvc := services.NewUserService(userRepo, sessionRepo, passwordSvc)
	settingsSvc := services.NewSettingsService(settingRepo, cache)

	router := httpx.BuildRouter(
		handlers.NewAuthHandlers(authSvc, cache, false),
		handlers.NewUserHandlers(userSvc),
		handlers.NewSettingsHandlers(settingsSvc, cache, notifySvc),
		handlers.NewHealthHandlers(db, cache),
		middleware.NewAuthMW(tokenSvc, userRepo),
	)

	server := httptest.NewServer(router)
	t.Cleanup(server.Close)

	return &TestServer{
		Server:      server,
		DB:          db,
		UserRepo:    userRepo,
		SessionRepo: sessionRepo,
		SettingRepo: settingRepo,
		Settings:    cache,
		PasswordSvc: passwordSvc,
		TokenSvc:    tokenSvc,
		client:      &http.Client{Timeout: 10 * time.Second},
	}
}

// Do sends a JSON request. A non-empty token is attached as a bearer
// header; cookies are deliberately not carried between requests so each
// call authenticates with exactly the token the test chose.
func (s *TestServer) Do(t *testing.T, method, path, token string, body interface{}) (*http.Response, map[string]interface{}) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err, "request body should marshal")
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequest(method, s.Server.URL+path, reader)
	require.NoError(t, err, "request should build")
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := s.client.Do(req)
	require.NoError(t, err, "request %s %s should not error", method, path)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err, "response body should read")

	var decoded map[string]interface{}
	if len(raw) > 0 {
		require.NoError(t, json.Unmarshal(raw, &decoded), "response %q should decode", raw)
	}
	return resp, decoded
}

// Login authenticates and returns the raw access token from the body.
func (s *TestServer) Login(t *testing.T, identifier, password string) string {
	t.Helper()

	resp, body := s.Do(t, http.MethodPost, "/api/auth/login", "", map[string]string{
		"identifier": identifier,
		"password":   password,
	})
	require.Equal(t, http.StatusOK, resp.StatusCode, "login should succeed: %v", body)

	data := body["data"].(map[string]interface{})
	tokens := data["tokens"].(map[string]interface{})
	return tokens["accessToken"].(string)
}
