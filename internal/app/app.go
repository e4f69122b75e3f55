package app

import (
	"context"
	"log"
	"net/http"

	"github.com/JitendraSingh9587/TalkNTrade-Api/internal/config"
	httpx "github.com/JitendraSingh9587/TalkNTrade-Api/internal/http"
	"github.com/JitendraSingh9587/TalkNTrade-Api/internal/http/handlers"
	"github.com/JitendraSingh9587/TalkNTrade-Api/internal/http/middleware"
	"github.com/gin-gonic/gin"
)

// Run wires the container into the HTTP server and serves until the
// listener fails.
func Run(cfg *config.Config) error {
	ctx := context.Background()

	c, err := NewContainer(ctx, cfg)
	if err != nil {
		return err
	}
	defer c.Close()

	// Expired rows only matter for the cap count, which already ignores
	// them; this sweep just keeps the table from growing unbounded.
	if err := c.SessionRepo.DeleteExpired(ctx); err != nil {
		log.Printf("SESSION_SWEEP_FAILED: error=%v", err)
	}

	gin.SetMode(cfg.GinMode)

	authH := handlers.NewAuthHandlers(c.AuthSvc, c.SettingsCache, cfg.Production())
	userH := handlers.NewUserHandlers(c.UserSvc)
	settingsH := handlers.NewSettingsHandlers(c.SettingsSvc, c.SettingsCache, c.NotificationSvc)
	healthH := handlers.NewHealthHandlers(c.DB, c.SettingsCache)

	authMW := middleware.NewAuthMW(c.TokenSvc, c.UserRepo)

	r := httpx.BuildRouter(authH, userH, settingsH, healthH, authMW)

	addr := ":" + cfg.Port
	log.Printf("listening on %s", addr)
	return http.ListenAndServe(addr, r)
}
