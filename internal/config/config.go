package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

type AppConfig struct {
	Port        int    `yaml:"port"`
	GinMode     string `yaml:"gin_mode"`
	Environment string `yaml:"environment"`
}

type DatabaseConfig struct {
	DSN string `yaml:"dsn"`
}

type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

type ConfigFile struct {
	App      AppConfig      `yaml:"app"`
	Database DatabaseConfig `yaml:"database"`
	Redis    RedisConfig    `yaml:"redis"`
}

// Config is the flattened process configuration. Runtime policy (JWT
// secrets, session caps, token TTLs) lives in the app_settings table and
// is served by the settings cache, not here.
type Config struct {
	Port          string
	GinMode       string
	Environment   string
	DSN           string
	RedisAddr     string
	RedisPassword string
	RedisDB       int
}

// Production reports whether cookies must carry the Secure attribute.
func (c *Config) Production() bool {
	return c.Environment == "production"
}

func env(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func envInt(k string, def int) int {
	if v := os.Getenv(k); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

// Load reads config/config.yml when present and lets environment
// variables override every field, so the service also runs with no
// config file at all.
func Load() (*Config, error) {
	var file ConfigFile
	path := env("CONFIG_FILE", "config/config.yml")
	if bytes, err := os.ReadFile(path); err == nil {
		if err := yaml.Unmarshal(bytes, &file); err != nil {
			return nil, fmt.Errorf("could not parse config yaml: %w", err)
		}
	}

	port := file.App.Port
	if port == 0 {
		port = 3000
	}

	cfg := &Config{
		Port:          env("PORT", fmt.Sprintf("%d", port)),
		GinMode:       env("GIN_MODE", defaultStr(file.App.GinMode, "debug")),
		Environment:   env("NODE_ENV", defaultStr(file.App.Environment, "development")),
		DSN:           env("DATABASE_DSN", file.Database.DSN),
		RedisAddr:     env("REDIS_ADDR", file.Redis.Addr),
		RedisPassword: env("REDIS_PASSWORD", file.Redis.Password),
		RedisDB:       envInt("REDIS_DB", file.Redis.DB),
	}

	if cfg.DSN == "" {
		return nil, fmt.Errorf("database DSN is not configured (set DATABASE_DSN or database.dsn in %s)", path)
	}

	return cfg, nil
}

func defaultStr(v, def string) string {
	if v != "" {
		return v
	}
	return def
}
