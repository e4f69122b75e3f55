package app

import (
	"context"

	"github.com/JitendraSingh9587/TalkNTrade-Api/domain"
	"github.com/JitendraSingh9587/TalkNTrade-Api/internal/config"
	"github.com/JitendraSingh9587/TalkNTrade-Api/internal/infrastructure/auth"
	"github.com/JitendraSingh9587/TalkNTrade-Api/internal/infrastructure/database"
	"github.com/JitendraSingh9587/TalkNTrade-Api/internal/infrastructure/notifications"
	"github.com/JitendraSingh9587/TalkNTrade-Api/internal/infrastructure/repositories"
	"github.com/JitendraSingh9587/TalkNTrade-Api/internal/services"
	"gorm.io/gorm"
)

// Container holds all dependencies
type Container struct {
	// Config
	Config *config.Config

	// Infrastructure
	DB          *gorm.DB
	RedisClient *database.RedisClient

	// Repositories
	UserRepo    domain.UserRepository
	SessionRepo domain.SessionRepository
	SettingRepo domain.SettingRepository

	// Services
	SettingsCache   domain.SettingsCache
	PasswordSvc     domain.PasswordService
	TokenSvc        domain.TokenService
	NotificationSvc domain.NotificationService
	LoginLock       domain.LoginLock
	AuthSvc         domain.AuthService
	UserSvc         domain.UserService
	SettingsSvc     domain.SettingsService
}

// NewContainer creates and initializes all dependencies. The settings
// cache is loaded here, before any listener exists; a load failure is
// fatal and propagates to the caller.
func NewContainer(ctx context.Context, cfg *config.Config) (*Container, error) {
	c := &Container{Config: cfg}

	db, err := database.Open(cfg.DSN)
	if err != nil {
		return nil, err
	}
	if err := database.AutoMigrate(db); err != nil {
		return nil, err
	}
	c.DB = db

	c.initRepositories()

	if err := c.initServices(ctx); err != nil {
		return nil, err
	}

	return c, nil
}

func (c *Container) initRepositories() {
	c.UserRepo = repositories.NewUserRepository(c.DB)
	c.SessionRepo = repositories.NewSessionRepository(c.DB)
	c.SettingRepo = repositories.NewSettingRepository(c.DB)
}

func (c *Container) initServices(ctx context.Context) error {
	cache := services.NewSettingsCache(c.SettingRepo)
	if err := cache.Load(ctx); err != nil {
		return err
	}
	c.SettingsCache = cache

	c.PasswordSvc = auth.NewPasswordService()
	c.TokenSvc = auth.NewJWTService(c.SettingsCache, "talkntrade-api")
	c.NotificationSvc = notifications.NewMailService(c.SettingsCache)

	// Redis only serializes concurrent logins; without it the session
	// cap degrades to the soft baseline behavior.
	c.LoginLock = auth.NoopLoginLock{}
	if c.Config.RedisAddr != "" {
		rdb := database.NewRedis(c.Config.RedisAddr, c.Config.RedisPassword, c.Config.RedisDB)
		if err := rdb.Ping(ctx); err == nil {
			c.RedisClient = rdb
			c.LoginLock = auth.NewRedisLoginLock(rdb)
		}
	}

	c.AuthSvc = services.NewAuthService(
		c.UserRepo,
		c.SessionRepo,
		c.PasswordSvc,
		c.TokenSvc,
		c.SettingsCache,
		c.LoginLock,
	)
	c.UserSvc = services.NewUserService(c.UserRepo, c.SessionRepo, c.PasswordSvc)
	c.SettingsSvc = services.NewSettingsService(c.SettingRepo, c.SettingsCache)

	return nil
}

// Close closes all connections
func (c *Container) Close() error {
	if c.RedisClient != nil {
		c.RedisClient.Close()
	}

	if c.DB != nil {
		sqlDB, err := c.DB.DB()
		if err != nil {
			return err
		}
		return sqlDB.Close()
	}

	return nil
}
