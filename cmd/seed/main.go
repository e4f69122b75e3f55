// Command seed creates the baseline app settings and a bootstrap
// SUPER_ADMIN user. It is idempotent: existing rows are left untouched.
package main

import (
	"context"
	"log"
	"os"

	"github.com/JitendraSingh9587/TalkNTrade-Api/domain"
	"github.com/JitendraSingh9587/TalkNTrade-Api/internal/config"
	"github.com/JitendraSingh9587/TalkNTrade-Api/internal/infrastructure/auth"
	"github.com/JitendraSingh9587/TalkNTrade-Api/internal/infrastructure/database"
	"github.com/JitendraSingh9587/TalkNTrade-Api/internal/infrastructure/repositories"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
)

type seedSetting struct {
	key         string
	value       func() string
	description string
}

var seedSettings = []seedSetting{
	{"JWT_SECRET", uuid.NewString, "JWT access token secret key"},
	{"JWT_REFRESH_SECRET", uuid.NewString, "JWT refresh token secret key"},
	{"MAX_LOGIN_SESSIONS", literal("2"), "Maximum number of concurrent login sessions allowed per user"},
	{"ACCESS_TOKEN_EXPIRY", literal("1h"), "Access token lifetime"},
	{"REFRESH_TOKEN_EXPIRY", literal("7d"), "Refresh token lifetime"},
}

func literal(v string) func() string {
	return func() string { return v }
}

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	db, err := database.Open(cfg.DSN)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	if err := database.AutoMigrate(db); err != nil {
		log.Fatalf("migrate: %v", err)
	}

	ctx := context.Background()
	settingRepo := repositories.NewSettingRepository(db)

	for _, s := range seedSettings {
		if _, err := settingRepo.FindByKey(ctx, s.key); err == nil {
			continue
		}
		setting := &domain.AppSetting{
			Key:         s.key,
			Value:       s.value(),
			Description: s.description,
			IsActive:    true,
		}
		if err := settingRepo.Create(ctx, setting); err != nil {
			log.Fatalf("seed setting %s: %v", s.key, err)
		}
		log.Printf("seeded setting %s", s.key)
	}

	userRepo := repositories.NewUserRepository(db)
	if count, err := userRepo.CountByRole(ctx, domain.RoleSuperAdmin); err != nil {
		log.Fatalf("count super admins: %v", err)
	} else if count > 0 {
		return
	}

	email := envOr("SEED_ADMIN_EMAIL", "admin@talkntrade.com")
	password := envOr("SEED_ADMIN_PASSWORD", "ChangeMe@123")

	hash, err := auth.NewPasswordService().Hash(password)
	if err != nil {
		log.Fatalf("hash admin password: %v", err)
	}

	admin := &domain.User{
		Name:         "Super Admin",
		Email:        email,
		Mobile:       envOr("SEED_ADMIN_MOBILE", "9999999999"),
		PasswordHash: hash,
		Role:         domain.RoleSuperAdmin,
	}
	if err := userRepo.Create(ctx, admin); err != nil {
		log.Fatalf("seed super admin: %v", err)
	}
	log.Printf("seeded super admin %s", email)
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
