package httpx

import (
	"github.com/JitendraSingh9587/TalkNTrade-Api/domain"
	"github.com/JitendraSingh9587/TalkNTrade-Api/internal/http/handlers"
	"github.com/JitendraSingh9587/TalkNTrade-Api/internal/http/middleware"
	"github.com/gin-gonic/gin"
)

// BuildRouter wires every route with its authentication and role gates.
func BuildRouter(
	authH *handlers.AuthHandlers,
	userH *handlers.UserHandlers,
	settingsH *handlers.SettingsHandlers,
	healthH *handlers.HealthHandlers,
	authMW *middleware.AuthMW,
) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	r.GET("/health", healthH.Health)

	api := r.Group("/api")

	auth := api.Group("/auth")
	auth.POST("/login", authH.Login)
	// Logout is public on purpose: it must succeed even with a dead token.
	auth.POST("/logout", authH.Logout)
	auth.GET("/me", authMW.Authenticate(), authH.Me)

	users := api.Group("/users").Use(authMW.Authenticate())
	users.GET("", middleware.RequireRoles(domain.RoleSuperAdmin, domain.RoleAdmin, domain.RoleSupervisor), userH.List)
	users.GET("/:id", middleware.RequireRoles(domain.RoleSuperAdmin, domain.RoleAdmin, domain.RoleSupervisor), userH.Get)
	users.POST("", middleware.RequireRoles(domain.RoleSuperAdmin, domain.RoleAdmin), userH.Create)
	users.PUT("/:id", middleware.RequireRoles(domain.RoleSuperAdmin, domain.RoleAdmin), userH.Update)
	users.PATCH("/:id/disable", middleware.RequireRoles(domain.RoleSuperAdmin, domain.RoleAdmin), userH.Disable)
	users.PATCH("/:id/enable", middleware.RequireRoles(domain.RoleSuperAdmin, domain.RoleAdmin), userH.Enable)
	users.DELETE("/:id", middleware.RequireRoles(domain.RoleSuperAdmin), userH.Delete)

	settings := api.Group("/settings").Use(authMW.Authenticate())
	settings.GET("", middleware.RequireRoles(domain.RoleSuperAdmin, domain.RoleAdmin), settingsH.List)
	settings.GET("/cache", middleware.RequireRoles(domain.RoleSuperAdmin), settingsH.GetCache)
	settings.POST("/cache/refresh", middleware.RequireRoles(domain.RoleSuperAdmin), settingsH.RefreshCache)
	settings.POST("/test-email", middleware.RequireRoles(domain.RoleSuperAdmin), settingsH.TestEmail)
	settings.GET("/key/:key", middleware.RequireRoles(domain.RoleSuperAdmin, domain.RoleAdmin), settingsH.GetByKey)
	settings.GET("/:id", middleware.RequireRoles(domain.RoleSuperAdmin, domain.RoleAdmin), settingsH.Get)
	settings.POST("", middleware.RequireRoles(domain.RoleSuperAdmin), settingsH.Create)
	settings.PUT("/:id", middleware.RequireRoles(domain.RoleSuperAdmin), settingsH.Update)
	settings.DELETE("/:id", middleware.RequireRoles(domain.RoleSuperAdmin), settingsH.Delete)

	return r
}
